// Package naming provides consistent names for appliance objects and the
// generated artifacts.
//
// Appliance objects are addressed as /{partition}/{name}. A generated bundle
// lives in a directory named {lac}-{name}-{partition}; components are joined
// verbatim, so an empty LAC leaves a leading hyphen.
package naming
