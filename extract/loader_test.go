package extract

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureStore(t *testing.T) *blobstore.MemoryStore {
	t.Helper()

	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "neos.csv", []byte(neosCSV)))
	require.NoError(t, store.Put(ctx, "cad.json", []byte(cadJSON)))
	return store
}

func TestLoaderLoad(t *testing.T) {
	ctx := context.Background()
	catalog, err := NewLoader(newFixtureStore(t)).Load(ctx)
	require.NoError(t, err)

	stats := catalog.Stats()
	assert.Equal(t, 3, stats.Objects)
	assert.Equal(t, 3, stats.Approaches)
	assert.Equal(t, 0, stats.Unresolved)

	eros, ok := catalog.FindByName("Eros")
	require.True(t, ok)
	assert.Equal(t, "433", eros.Designation)
}

func TestLoaderCompressedObjects(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(neosCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "neos.csv.gz", buf.Bytes()))
	require.NoError(t, store.Put(ctx, "cad.json", []byte(cadJSON)))

	catalog, err := NewLoader(store).
		ObjectsFile("neos.csv.gz").
		Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Stats().Objects)
}

func TestLoaderMissingFile(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "neos.csv", []byte(neosCSV)))

	_, err := NewLoader(store).Load(ctx)
	require.ErrorIs(t, err, blobstore.ErrNotFound)
	assert.Contains(t, err.Error(), "cad.json")
}

func TestLoaderParseErrorNamesFile(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "neos.csv", []byte("pdes,name\n433,Eros\n")))
	require.NoError(t, store.Put(ctx, "cad.json", []byte(cadJSON)))

	_, err := NewLoader(store).Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neos.csv")
}

func TestLoaderCatalogOptions(t *testing.T) {
	ctx := context.Background()
	metrics := &neodb.BasicMetricsCollector{}

	_, err := NewLoader(newFixtureStore(t)).
		WithCatalogOptions(neodb.WithMetricsCollector(metrics)).
		Load(ctx)
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.LinkCount)
	assert.Equal(t, int64(3), stats.LinkObjects)
	assert.Equal(t, int64(3), stats.LinkApproaches)
}
