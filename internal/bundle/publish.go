package bundle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/ltmgen/internal/platform/s3"
	"github.com/imamik/ltmgen/internal/util/naming"
	"github.com/imamik/ltmgen/internal/util/retry"
)

// ErrRemoteExists is returned when the bundle script is already present in
// the target bucket.
var ErrRemoteExists = errors.New("bundle already published")

// ObjectStore is the subset of object storage used to publish bundles.
// *s3.Client satisfies it.
type ObjectStore interface {
	ObjectExists(ctx context.Context, bucket, key string) (bool, error)
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

var _ ObjectStore = (*s3.Client)(nil)

type publishOptions struct {
	log   logr.Logger
	retry []retry.Option
}

// PublishOption configures Publish.
type PublishOption func(*publishOptions)

// WithLogger logs retried uploads.
func WithLogger(log logr.Logger) PublishOption {
	return func(o *publishOptions) {
		o.log = log
	}
}

// WithRetry overrides the retry policy for each upload.
func WithRetry(opts ...retry.Option) PublishOption {
	return func(o *publishOptions) {
		o.retry = append(o.retry, opts...)
	}
}

// Publish uploads b under bucket/b.Name/ and returns the uploaded keys.
//
// The script is uploaded last so that its presence marks a complete bundle,
// which is also what the overwrite check looks for.
func Publish(ctx context.Context, store ObjectStore, bucket string, b *Bundle, opts ...PublishOption) ([]string, error) {
	o := &publishOptions{log: logr.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	if err := ValidateName(b.Name); err != nil {
		return nil, err
	}

	scriptKey := naming.ObjectKey(b.Name, naming.ScriptFile)
	exists, err := store.ObjectExists(ctx, bucket, scriptKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check remote bundle: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s/%s", ErrRemoteExists, bucket, scriptKey)
	}

	var keys []string
	for _, f := range b.Files() {
		key := naming.ObjectKey(b.Name, f.Name)
		if err := upload(ctx, store, bucket, key, f, o); err != nil {
			return keys, err
		}
		o.log.V(1).Info("uploaded object", "bucket", bucket, "key", key, "bytes", len(f.Data))
		keys = append(keys, key)
	}

	return keys, nil
}

func upload(ctx context.Context, store ObjectStore, bucket, key string, f File, o *publishOptions) error {
	retryOpts := append([]retry.Option{
		retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
			o.log.Info("upload failed, retrying", "key", key, "attempt", attempt, "wait", wait.String(), "error", err.Error())
		}),
	}, o.retry...)

	err := retry.Do(ctx, func(ctx context.Context) error {
		err := store.PutObject(ctx, bucket, key, f.Data, f.ContentType)
		if err != nil && s3.IsAccessDenied(err) {
			return retry.Fatal(err)
		}
		return err
	}, retryOpts...)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
