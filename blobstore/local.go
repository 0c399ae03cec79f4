package blobstore

import (
	"context"
	"os"
	"path/filepath"
)

// LocalStore implements Store using the local file system.
//
// Datasets are read with plain sequential file I/O; writes go to a
// temporary file in the target directory and are renamed into place on
// Close, so readers never observe a partial dataset.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open opens a dataset for reading.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileBlob{f: f, size: fi.Size()}, nil
}

// Create opens a dataset for writing.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	path := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &localWritableBlob{f: tmp, path: path}, nil
}

// Put writes a dataset atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// fileBlob is a sequential read handle to a local file.
type fileBlob struct {
	f    *os.File
	size int64
}

func (b *fileBlob) Read(p []byte) (int, error) {
	return b.f.Read(p)
}

func (b *fileBlob) Close() error {
	return b.f.Close()
}

func (b *fileBlob) Size() int64 {
	return b.size
}

// localWritableBlob writes to a temp file and renames it into place on a
// clean Close. Any write error turns Close into an abort.
type localWritableBlob struct {
	f    *os.File
	path string
	err  error
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.f.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *localWritableBlob) Close() error {
	cerr := w.f.Close()
	if w.err == nil {
		w.err = cerr
	}
	if w.err != nil {
		_ = os.Remove(w.f.Name())
		return w.err
	}
	if err := os.Rename(w.f.Name(), w.path); err != nil {
		_ = os.Remove(w.f.Name())
		return err
	}
	return nil
}
