package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/extract"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	neoFile  string
	cadFile  string
	logLevel string
)

// AddGlobalFlags registers the flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Directory holding the dataset files")
	cmd.PersistentFlags().StringVar(&neoFile, "neofile", "neos.csv", "NEO objects file inside the data directory")
	cmd.PersistentFlags().StringVar(&cadFile, "cadfile", "cad.json", "Close approach file inside the data directory")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func newLogger() (*neodb.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	return neodb.NewTextLogger(level), nil
}

// loadCatalog builds the in-memory catalog from the data directory.
func loadCatalog(ctx context.Context) (*neodb.Catalog, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	return extract.NewLoader(blobstore.NewLocalStore(dataDir)).
		ObjectsFile(neoFile).
		ApproachesFile(cadFile).
		WithLogger(logger).
		WithCatalogOptions(neodb.WithLogger(logger)).
		Load(ctx)
}
