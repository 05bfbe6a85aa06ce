package storage

import (
	"context"
	"io"
)

// BlobStore is the capability the post workflows need from the object
// store: write a public object and best-effort delete it later. Injected
// so the services stay testable against a fake.
type BlobStore interface {
	// Put stores the object under key and returns its public URL.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
