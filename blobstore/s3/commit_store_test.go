package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDDBClient is an in-memory DynamoDB mock honoring the conditional
// write and descending query used by CommitStore.
type fakeDDBClient struct {
	mu    sync.RWMutex
	items map[string]map[string]types.AttributeValue // dataset:version -> item
}

func newFakeDDBClient() *fakeDDBClient {
	return &fakeDDBClient{
		items: make(map[string]map[string]types.AttributeValue),
	}
}

func (m *fakeDDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dataset := params.Item["dataset"].(*types.AttributeValueMemberS).Value
	version := params.Item["version"].(*types.AttributeValueMemberN).Value
	key := dataset + ":" + version

	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(version)" {
		if _, exists := m.items[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
		}
	}

	m.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *fakeDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dataset := params.ExpressionAttributeValues[":dataset"].(*types.AttributeValueMemberS).Value

	var items []map[string]types.AttributeValue
	for _, item := range m.items {
		if item["dataset"].(*types.AttributeValueMemberS).Value == dataset {
			items = append(items, item)
		}
	}

	// Sort descending by numeric version
	sort.Slice(items, func(i, j int) bool {
		vi, _ := strconv.ParseUint(items[i]["version"].(*types.AttributeValueMemberN).Value, 10, 64)
		vj, _ := strconv.ParseUint(items[j]["version"].(*types.AttributeValueMemberN).Value, 10, 64)
		return vi > vj
	})

	if params.Limit != nil && int(*params.Limit) < len(items) {
		items = items[:*params.Limit]
	}

	return &dynamodb.QueryOutput{Items: items}, nil
}

func newTestCommitStore(ddb *fakeDDBClient) (*CommitStore, *Store) {
	store := NewStore(newFakeS3Client(), "test-bucket", "neodb")
	return NewCommitStore(store, ddb, "neodb-commits", "s3://test-bucket/neodb"), store
}

func TestCommitStore_NotFoundBeforeCommit(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestCommitStore(newFakeDDBClient())

	_, err := cs.Open(ctx, "neos.csv")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	_, err = cs.Snapshot(ctx)
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestCommitStore_SnapshotSwitch(t *testing.T) {
	ctx := context.Background()
	cs, store := newTestCommitStore(newFakeDDBClient())

	require.NoError(t, store.Put(ctx, "2026-08-20/neos.csv", []byte("old neos")))
	require.NoError(t, store.Put(ctx, "2026-08-20/cad.json", []byte("old cad")))
	require.NoError(t, cs.Commit(ctx, "2026-08-20"))

	snapshot, err := cs.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20", snapshot)

	blob, err := cs.Open(ctx, "neos.csv")
	require.NoError(t, err)
	data, err := io.ReadAll(blob)
	require.NoError(t, err)
	require.NoError(t, blob.Close())
	assert.Equal(t, "old neos", string(data))

	// Publish a new snapshot; readers switch to both new files at once.
	require.NoError(t, store.Put(ctx, "2026-08-21/neos.csv", []byte("new neos")))
	require.NoError(t, store.Put(ctx, "2026-08-21/cad.json", []byte("new cad")))
	require.NoError(t, cs.Commit(ctx, "2026-08-21"))

	for name, want := range map[string]string{
		"neos.csv": "new neos",
		"cad.json": "new cad",
	} {
		blob, err := cs.Open(ctx, name)
		require.NoError(t, err)
		data, err := io.ReadAll(blob)
		require.NoError(t, err)
		require.NoError(t, blob.Close())
		assert.Equal(t, want, string(data))
	}
}

func TestCommitStore_MissingFileInSnapshot(t *testing.T) {
	ctx := context.Background()
	cs, store := newTestCommitStore(newFakeDDBClient())

	require.NoError(t, store.Put(ctx, "v1/neos.csv", []byte("neos")))
	require.NoError(t, cs.Commit(ctx, "v1"))

	_, err := cs.Open(ctx, "cad.json")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestCommitStore_ConcurrentCommits(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestCommitStore(newFakeDDBClient())

	require.NoError(t, cs.Commit(ctx, "v1"))

	// Concurrent publishers
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	conflicts := 0

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			err := cs.Commit(ctx, fmt.Sprintf("v%d", id+2))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrConcurrentModification):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}

	wg.Wait()
	assert.Greater(t, successes, 0, "at least one publisher should succeed")
	assert.Equal(t, 5, successes+conflicts)
}

func TestCommitStore_IsolatedDatasets(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDDBClient()

	storeA := NewStore(newFakeS3Client(), "bucket-a", "")
	storeB := NewStore(newFakeS3Client(), "bucket-b", "")
	csA := NewCommitStore(storeA, ddb, "neodb-commits", "s3://bucket-a/")
	csB := NewCommitStore(storeB, ddb, "neodb-commits", "s3://bucket-b/")

	require.NoError(t, csA.Commit(ctx, "a1"))
	require.NoError(t, csB.Commit(ctx, "b1"))

	snapA, err := csA.Snapshot(ctx)
	require.NoError(t, err)
	snapB, err := csB.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", snapA)
	assert.Equal(t, "b1", snapB)
}
