package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("object not found")

// Object is a stored blob streamed back to the caller.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Provider abstracts the blob store. Keys are slash-separated paths under the
// configured bucket.
type Provider interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
