package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/ltmgen/internal/bundle"
	"github.com/imamik/ltmgen/internal/platform/s3"
)

// Environment variables read when publishing.
const (
	envS3Endpoint  = "LTMGEN_S3_ENDPOINT"
	envS3Region    = "LTMGEN_S3_REGION"
	envS3AccessKey = "LTMGEN_S3_ACCESS_KEY"
	envS3SecretKey = "LTMGEN_S3_SECRET_KEY"

	defaultS3Region = "us-east-1"
)

// newObjectStore connects to object storage and makes sure bucket exists.
// Replaced in tests.
var newObjectStore = func(ctx context.Context, opts s3.Options, bucket string) (bundle.ObjectStore, error) {
	client, err := s3.NewClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.EnsureBucket(ctx, bucket); err != nil {
		return nil, err
	}
	return client, nil
}

// extraPublishOptions are appended to every Publish call. Replaced in tests.
var extraPublishOptions []bundle.PublishOption

// s3OptionsFromEnv builds client options from LTMGEN_S3_* variables.
// A custom endpoint implies path-style addressing.
func s3OptionsFromEnv() (s3.Options, error) {
	opts := s3.Options{
		Endpoint:  os.Getenv(envS3Endpoint),
		Region:    os.Getenv(envS3Region),
		AccessKey: os.Getenv(envS3AccessKey),
		SecretKey: os.Getenv(envS3SecretKey),
	}
	if opts.AccessKey == "" || opts.SecretKey == "" {
		return s3.Options{}, fmt.Errorf("%s and %s must be set to publish", envS3AccessKey, envS3SecretKey)
	}
	if opts.Region == "" {
		opts.Region = defaultS3Region
	}
	opts.PathStyle = opts.Endpoint != ""
	return opts, nil
}

// publishBundle uploads b to bucket and returns the uploaded keys.
func publishBundle(ctx context.Context, bucket string, b *bundle.Bundle) ([]string, error) {
	opts, err := s3OptionsFromEnv()
	if err != nil {
		return nil, err
	}

	store, err := newObjectStore(ctx, opts, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}

	publishOpts := append([]bundle.PublishOption{bundle.WithLogger(logger)}, extraPublishOptions...)
	return bundle.Publish(ctx, store, bucket, b, publishOpts...)
}
