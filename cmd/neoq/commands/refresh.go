package commands

import (
	"fmt"

	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/fetch"
	"github.com/spf13/cobra"
)

var refreshBaseURL string

// RefreshCmd represents the refresh command.
var RefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Download fresh datasets from the JPL SSD API",
	Long: `Download the NEO objects and close approach datasets from the JPL SSD
API and land them in the data directory as neos.csv and cad.json.

The full close approach feed is large; expect the download to take a
while. Files are written atomically, so a catalog loading from the same
directory never observes a partial dataset.

Examples:
  neoq refresh                       # Mirror into the default data directory
  neoq refresh --data-dir /var/neodb`,
	RunE: runRefreshCommand,
}

func init() {
	RefreshCmd.Flags().StringVar(&refreshBaseURL, "base-url", fetch.DefaultBaseURL, "Base URL of the JPL SSD API")
}

func runRefreshCommand(cmd *cobra.Command, args []string) error {
	client := fetch.NewClient(fetch.Config{BaseURL: refreshBaseURL})

	if err := client.Mirror(cmd.Context(), blobstore.NewLocalStore(dataDir)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mirrored neos.csv and cad.json into %s\n", dataDir)
	return nil
}
