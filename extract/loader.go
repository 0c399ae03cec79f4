package extract

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/neo"
	"golang.org/x/sync/errgroup"
)

// Loader reads the two NASA dataset files from a blob store and links
// them into a catalog. It provides a fluent interface:
//
//	catalog, err := extract.NewLoader(store).
//	    ObjectsFile("neos.csv.gz").
//	    WithLogger(logger).
//	    Load(ctx)
type Loader struct {
	store          blobstore.Store
	objectsFile    string
	approachesFile string
	logger         *neodb.Logger
	catalogOpts    []neodb.Option
}

// NewLoader creates a dataset loader reading from store. The file names
// default to "neos.csv" and "cad.json".
func NewLoader(store blobstore.Store) *Loader {
	return &Loader{
		store:          store,
		objectsFile:    "neos.csv",
		approachesFile: "cad.json",
		logger:         neodb.NoopLogger(),
	}
}

// ObjectsFile overrides the NEO dataset file name. Compressed files
// (.gz, .zst, .lz4) are decompressed transparently.
func (l *Loader) ObjectsFile(name string) *Loader {
	l.objectsFile = name
	return l
}

// ApproachesFile overrides the close-approach dataset file name.
// Compressed files (.gz, .zst, .lz4) are decompressed transparently.
func (l *Loader) ApproachesFile(name string) *Loader {
	l.approachesFile = name
	return l
}

// WithLogger sets the logger for load progress. A nil logger disables
// logging.
func (l *Loader) WithLogger(logger *neodb.Logger) *Loader {
	if logger == nil {
		logger = neodb.NoopLogger()
	}
	l.logger = logger
	return l
}

// WithCatalogOptions passes options through to the catalog constructor.
func (l *Loader) WithCatalogOptions(optFns ...neodb.Option) *Loader {
	l.catalogOpts = append(l.catalogOpts, optFns...)
	return l
}

// Load fetches and parses both dataset files concurrently, then links
// them into a catalog.
func (l *Loader) Load(ctx context.Context) (*neodb.Catalog, error) {
	var (
		objects    []*neo.Object
		approaches []*neo.Approach
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		objects, err = l.loadObjects(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		approaches, err = l.loadApproaches(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return neodb.New(objects, approaches, l.catalogOpts...)
}

func (l *Loader) loadObjects(ctx context.Context) ([]*neo.Object, error) {
	r, closeFn, err := l.open(ctx, l.objectsFile)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	objects, err := LoadObjects(ctx, r)
	if err != nil {
		return nil, err
	}

	l.logger.LogLoad(l.objectsFile, len(objects))
	return objects, nil
}

func (l *Loader) loadApproaches(ctx context.Context) ([]*neo.Approach, error) {
	r, closeFn, err := l.open(ctx, l.approachesFile)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	approaches, err := LoadApproaches(ctx, r)
	if err != nil {
		return nil, err
	}

	l.logger.LogLoad(l.approachesFile, len(approaches))
	return approaches, nil
}

// open opens a blob and wraps it for transparent decompression. The
// returned close function releases both readers.
func (l *Loader) open(ctx context.Context, name string) (io.Reader, func(), error) {
	blob, err := l.store.Open(ctx, name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	r, err := DecompressReader(name, blob)
	if err != nil {
		blob.Close()
		return nil, nil, fmt.Errorf("failed to decompress %s: %w", name, err)
	}

	return r, func() {
		_ = r.Close()
		_ = blob.Close()
	}, nil
}
