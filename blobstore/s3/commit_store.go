package s3

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/neodb/blobstore"
)

// CommitStore reads dataset files through a DynamoDB commit pointer so
// that the NEO and close-approach files always come from one consistent
// snapshot, even while a newer snapshot is being uploaded.
//
// A snapshot is an immutable set of objects under a common prefix, e.g.
// "2026-08-21/neos.csv" and "2026-08-21/cad.json". Commit publishes a
// snapshot with a DynamoDB conditional write, providing the atomic
// compare-and-swap that S3 lacks: concurrent publishers cannot silently
// overwrite each other, and readers switch between complete snapshots
// only.
//
// Table schema:
//   - Partition key: dataset (string) - e.g. "s3://bucket/prefix"
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name neodb-commits \
//	  --attribute-definitions AttributeName=dataset,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=dataset,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type CommitStore struct {
	store   *Store
	ddb     DDBClient
	table   string
	dataset string // partition key, conventionally "s3://bucket/prefix"
}

// DDBClient is the subset of the DynamoDB API used by CommitStore.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrConcurrentModification is returned by Commit when another publisher
// committed a snapshot first.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// NewCommitStore creates a commit store on top of an S3 store. The
// dataset string identifies the catalog in the commit table and is
// conventionally the "s3://bucket/prefix" the store points at.
func NewCommitStore(store *Store, ddb DDBClient, tableName, dataset string) *CommitStore {
	return &CommitStore{
		store:   store,
		ddb:     ddb,
		table:   tableName,
		dataset: dataset,
	}
}

// Open opens the named file inside the current snapshot. It returns
// blobstore.ErrNotFound before the first commit.
func (s *CommitStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	_, snapshot, err := s.latest(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot == "" {
		return nil, blobstore.ErrNotFound
	}
	return s.store.Open(ctx, path.Join(snapshot, name))
}

// Snapshot returns the currently committed snapshot prefix. It returns
// blobstore.ErrNotFound before the first commit.
func (s *CommitStore) Snapshot(ctx context.Context) (string, error) {
	_, snapshot, err := s.latest(ctx)
	if err != nil {
		return "", err
	}
	if snapshot == "" {
		return "", blobstore.ErrNotFound
	}
	return snapshot, nil
}

// Commit atomically publishes the snapshot under the given prefix. Every
// dataset file must already be uploaded below the prefix; readers see
// either the previous snapshot or this one, never a mix.
func (s *CommitStore) Commit(ctx context.Context, snapshot string) error {
	version, _, err := s.latest(ctx)
	if err != nil {
		return err
	}

	// Conditional put: only succeed if this version doesn't exist yet
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			"dataset":  &types.AttributeValueMemberS{Value: s.dataset},
			"version":  &types.AttributeValueMemberN{Value: strconv.FormatUint(version+1, 10)},
			"snapshot": &types.AttributeValueMemberS{Value: snapshot},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return ErrConcurrentModification
		}
		return fmt.Errorf("failed to commit snapshot to DynamoDB: %w", err)
	}

	return nil
}

// latest queries DynamoDB for the newest committed version. Version zero
// with an empty snapshot means nothing has been committed yet.
func (s *CommitStore) latest(ctx context.Context) (uint64, string, error) {
	resp, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("dataset = :dataset"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dataset": &types.AttributeValueMemberS{Value: s.dataset},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	snapshotAttr, ok := item["snapshot"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid snapshot attribute in DynamoDB")
	}

	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}

	return version, snapshotAttr.Value, nil
}
