// Package bundle turns a generation result into the on-disk artifacts an
// operator runs: the configuration script and a README explaining how to
// run it.
//
// A bundle directory is written atomically. Files are staged in a temporary
// directory next to the target and renamed into place once both are
// complete, so an interrupted run never leaves a half-written bundle behind.
// A bundle can also be published to S3-compatible object storage.
package bundle
