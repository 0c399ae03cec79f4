package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a dataset does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading immutable dataset files.
type Store interface {
	// Open opens a dataset for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// WritableStore is implemented by stores that can also persist datasets,
// e.g. for mirroring fetched snapshots.
type WritableStore interface {
	Store

	// Create opens a dataset for writing. The data becomes visible to
	// readers only when the returned blob is closed without error.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a dataset atomically.
	Put(ctx context.Context, name string, data []byte) error
}

// Blob is a read-only handle to a dataset file. Datasets are parsed
// sequentially, so a Blob is a plain reader rather than an io.ReaderAt.
type Blob interface {
	io.Reader
	io.Closer
	// Size returns the size of the dataset in bytes, or -1 if unknown.
	Size() int64
}

// WritableBlob is a write handle returned by Create. Closing commits the
// write; a failed write aborts it on Close.
type WritableBlob interface {
	io.Writer
	io.Closer
}
