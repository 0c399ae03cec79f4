package commands

import (
	"fmt"
	"io"

	"github.com/hupe1980/neodb"
	"github.com/spf13/cobra"
)

var statsUnresolved bool

// StatsCmd represents the stats command.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog and link statistics",
	Long: `Show how many objects and close approaches the catalog holds and how
completely the two datasets link up.

Examples:
  neoq stats               # Catalog statistics
  neoq stats --unresolved  # Also list designations without a matching NEO`,
	RunE: runStatsCommand,
}

func init() {
	StatsCmd.Flags().BoolVar(&statsUnresolved, "unresolved", false, "Also list designations without a matching NEO")
}

func runStatsCommand(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	writeStats(cmd.OutOrStdout(), catalog, statsUnresolved)
	return nil
}

func writeStats(w io.Writer, catalog *neodb.Catalog, unresolved bool) {
	stats := catalog.Stats()

	fmt.Fprintf(w, "Objects:      %d\n", stats.Objects)
	fmt.Fprintf(w, "  Named:      %d\n", stats.Named)
	fmt.Fprintf(w, "Approaches:   %d\n", stats.Approaches)
	fmt.Fprintf(w, "  Resolved:   %d\n", stats.Resolved)
	fmt.Fprintf(w, "  Unresolved: %d\n", stats.Unresolved)

	if unresolved && stats.Unresolved > 0 {
		fmt.Fprintln(w, "\nUnresolved designations:")

		seen := make(map[string]struct{})
		for ap := range catalog.Unresolved() {
			if _, ok := seen[ap.Designation]; ok {
				continue
			}
			seen[ap.Designation] = struct{}{}
			fmt.Fprintf(w, "  %s\n", ap.Designation)
		}
	}
}
