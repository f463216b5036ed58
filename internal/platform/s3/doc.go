// Package s3 provides a client for S3-compatible object storage, used to
// publish generated bundles.
package s3
