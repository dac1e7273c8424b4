package service

import (
	"context"
	"io"
)

// MediaStorage writes public objects to a bucket.
type MediaStorage interface {
	// Put writes body to path, replacing any existing object.
	Put(ctx context.Context, path string, body io.Reader, contentType string) error

	// PublicURL returns the public address of the object at path.
	PublicURL(path string) string
}
