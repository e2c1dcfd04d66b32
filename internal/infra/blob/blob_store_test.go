package blob

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *bucketBlobStore {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	return &bucketBlobStore{
		bucket:    bucket,
		urlPrefix: "https://cdn.example.com/uploads",
		logger:    slog.Default(),
	}
}

func TestBlobStore_Upload(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	data := []byte("\x89PNG fake screenshot bytes")
	url, err := store.Upload(ctx, data, "payment_abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/payment_abc123", url)

	// The object round-trips through the bucket.
	stored, err := store.bucket.ReadAll(ctx, "payment_abc123")
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestBlobStore_UploadEmpty(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Upload(context.Background(), nil, "payment_empty")
	assert.Error(t, err)
	assert.Empty(t, url)
}
