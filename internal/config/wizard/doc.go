// Package wizard provides an interactive wizard that writes a starter LTM
// configuration document.
//
// RunWizard asks a short series of huh forms and returns a Result.
// BuildDocument turns the answers into a config.Document and WriteDocument
// saves it with a descriptive header.
package wizard
