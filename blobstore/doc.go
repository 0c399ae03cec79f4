// Package blobstore provides storage abstraction for immutable dataset
// files.
//
// Store is the interface for reading dataset snapshots (the NEO CSV and
// the close-approach JSON); WritableStore adds atomic writes for
// mirroring. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic temp-file writes
//   - MemoryStore: in-memory store for tests
//   - CachingStore: download-once local cache in front of a remote store
//   - s3.Store: Amazon S3
//   - s3.CommitStore: S3 plus a DynamoDB pointer for consistent dataset pairs
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Open(ctx context.Context, name string) (Blob, error)
//	}
//
// A Blob is a plain sequential reader; datasets are parsed front to
// back, so backends do not need to support random access.
package blobstore
