// Package s3 provides an Amazon S3 implementation of the blobstore
// interfaces.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("neodb/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	blob, err := store.Open(ctx, "neos.csv")
//
// Wrap the store in a CommitStore to publish the NEO and close-approach
// files as atomic snapshots coordinated through DynamoDB:
//
//	cs := s3.NewCommitStore(store, dynamodb.NewFromConfig(cfg), "neodb-commits", "s3://my-bucket/neodb")
//	blob, err := cs.Open(ctx, "neos.csv")
//
// # Features
//
//   - Streaming reads of dataset objects
//   - Multipart uploads for large files
//   - Configurable prefix for multi-tenant isolation
//   - Atomic snapshot commits via DynamoDB conditional writes
package s3
