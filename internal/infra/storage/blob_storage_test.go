package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "https://storage.googleapis.com/recipe-images/", 3600)

	require.NoError(t, storage.Put(ctx, "flags/abc.png", strings.NewReader("first"), "image/png"))
	require.NoError(t, storage.Put(ctx, "flags/abc.png", strings.NewReader("second"), "image/png"))

	data, err := bucket.ReadAll(ctx, "flags/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	attrs, err := bucket.Attributes(ctx, "flags/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, "max-age=3600", attrs.CacheControl)
}

func TestBlobStorage_PublicURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "https://cdn.example.com/images/", 60)

	assert.Equal(t, "https://cdn.example.com/images/recipes/1/2.jpg", storage.PublicURL("recipes/1/2.jpg"))
	assert.Equal(t, "https://cdn.example.com/images/flags/x.png", storage.PublicURL("/flags/x.png"))
}
