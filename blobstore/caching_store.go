package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a Store and caches whole datasets on local disk.
//
// The first Open of a dataset downloads it into the cache directory;
// subsequent opens are served from disk. Datasets are immutable
// snapshots, so a cached file is never revalidated against the inner
// store. Concurrent opens of the same dataset share one download.
type CachingStore struct {
	inner Store
	local *LocalStore
	group singleflight.Group
}

// NewCachingStore creates a new CachingStore that spools datasets from
// inner into dir.
func NewCachingStore(inner Store, dir string) *CachingStore {
	return &CachingStore{
		inner: inner,
		local: NewLocalStore(dir),
	}
}

// Open opens a dataset, downloading it into the cache directory first if
// it is not cached yet.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := s.ensure(ctx, name); err != nil {
		return nil, err
	}
	return s.local.Open(ctx, name)
}

// ensure downloads the dataset unless the cache already holds it.
// singleflight collapses concurrent downloads of the same name.
func (s *CachingStore) ensure(ctx context.Context, name string) error {
	_, err, _ := s.group.Do(name, func() (any, error) {
		path := filepath.Join(s.local.root, filepath.FromSlash(name))
		if _, err := os.Stat(path); err == nil {
			return nil, nil
		}

		src, err := s.inner.Open(ctx, name)
		if err != nil {
			return nil, err
		}
		defer src.Close()

		dst, err := s.local.Create(ctx, name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(dst, src); err != nil {
			_ = dst.Close()
			return nil, err
		}
		return nil, dst.Close()
	})
	return err
}
