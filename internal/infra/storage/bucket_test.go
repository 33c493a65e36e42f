package storage

import (
	"context"
	"testing"

	"pairup/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) (*blob.Bucket, *objectStorage) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{
		PublicBaseURL: "https://media.example.com/",
	}

	store, ok := NewObjectStorage(bucket, cfg).(*objectStorage)
	require.True(t, ok)

	return bucket, store
}

func TestObjectStorage_UploadAndRead(t *testing.T) {
	bucket, store := newTestStorage(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "pairings/abc.jpg", []byte("image-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/pairings/abc.jpg", url)

	data, err := bucket.ReadAll(ctx, "pairings/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	attrs, err := bucket.Attributes(ctx, "pairings/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestObjectStorage_Delete(t *testing.T) {
	bucket, store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, "avatars/a.png", []byte("avatar"), "image/png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "avatars/a.png"))

	exists, err := bucket.Exists(ctx, "avatars/a.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestObjectStorage_DeleteMissingIsIdempotent(t *testing.T) {
	_, store := newTestStorage(t)

	assert.NoError(t, store.Delete(context.Background(), "never-uploaded.jpg"))
}

func TestObjectStorage_PublicURL(t *testing.T) {
	_, store := newTestStorage(t)

	assert.Equal(t, "https://media.example.com/a/b.jpg", store.PublicURL("a/b.jpg"))
	assert.Equal(t, "https://media.example.com/a/b.jpg", store.PublicURL("/a/b.jpg"))
}
