package blobstore

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a Store and counts opens against the backend.
type countingStore struct {
	inner Store
	opens atomic.Int64
}

func (c *countingStore) Open(ctx context.Context, name string) (Blob, error) {
	c.opens.Add(1)
	return c.inner.Open(ctx, name)
}

func TestCachingStore_DownloadsOnce(t *testing.T) {
	ctx := context.Background()

	remote := NewMemoryStore()
	require.NoError(t, remote.Put(ctx, "neos.csv", []byte("pdes,name\n433,Eros\n")))

	counting := &countingStore{inner: remote}
	store := NewCachingStore(counting, t.TempDir())

	for range 3 {
		blob, err := store.Open(ctx, "neos.csv")
		require.NoError(t, err)

		got, err := io.ReadAll(blob)
		require.NoError(t, err)
		require.NoError(t, blob.Close())
		assert.Equal(t, []byte("pdes,name\n433,Eros\n"), got)
	}

	assert.Equal(t, int64(1), counting.opens.Load(), "backend must be hit exactly once")
}

func TestCachingStore_ConcurrentOpensShareDownload(t *testing.T) {
	ctx := context.Background()

	remote := NewMemoryStore()
	require.NoError(t, remote.Put(ctx, "cad.json", []byte(`{"fields":[],"data":[]}`)))

	counting := &countingStore{inner: remote}
	store := NewCachingStore(counting, t.TempDir())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			blob, err := store.Open(ctx, "cad.json")
			if !assert.NoError(t, err) {
				return
			}
			defer blob.Close()

			_, err = io.ReadAll(blob)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), counting.opens.Load())
}

func TestCachingStore_MissPropagates(t *testing.T) {
	store := NewCachingStore(NewMemoryStore(), t.TempDir())

	_, err := store.Open(context.Background(), "nope.csv")
	require.ErrorIs(t, err, ErrNotFound)
}
