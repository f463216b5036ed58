// Package retry retries operations that may fail transiently, such as
// object-storage uploads, with exponential backoff.
//
// Wrap an error with [Fatal] to stop retrying immediately.
package retry
