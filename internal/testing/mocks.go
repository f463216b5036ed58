package testing

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockObjectStore is a mock implementation of the bundle object store.
type MockObjectStore struct {
	mock.Mock
}

// ObjectExists reports whether a key exists.
func (m *MockObjectStore) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	args := m.Called(ctx, bucket, key)
	return args.Bool(0), args.Error(1)
}

// PutObject uploads an object.
func (m *MockObjectStore) PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	args := m.Called(ctx, bucket, key, data, contentType)
	return args.Error(0)
}
