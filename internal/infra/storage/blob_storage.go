// Package storage implements media storage over gocloud.dev buckets.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the URL scheme of storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.MediaStorage on a gocloud.dev bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	cacheControl  string
}

// Params holds dependencies for the media storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Media bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL, cfg.CacheMaxAge), nil
}

// NewBlobStorage wraps an open bucket. Objects are served from publicBaseURL.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, cacheMaxAge int) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		cacheControl:  fmt.Sprintf("max-age=%d", cacheMaxAge),
	}
}

// Put writes body to path, replacing any existing object.
func (s *blobStorage) Put(ctx context.Context, path string, body io.Reader, contentType string) error {
	writer, err := s.bucket.NewWriter(ctx, path, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: s.cacheControl,
	})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", path)
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return errors.Wrapf(err, "write %s", path)
	}

	if err := writer.Close(); err != nil {
		return errors.Wrapf(err, "commit %s", path)
	}

	return nil
}

// PublicURL returns the public address of the object at path.
func (s *blobStorage) PublicURL(path string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(path, "/")
}
