package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/neodb/cmd/neoq/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "neoq",
	Short: "neoq - Explore near-Earth objects and their close approaches",
	Long: `neoq - Explore near-Earth objects and their close approaches to Earth.

neoq loads the NASA/JPL small body datasets (neos.csv and cad.json) from
a data directory into an in-memory catalog and answers point lookups and
filtered queries over it.

Available commands:
  inspect - Look up a single NEO by designation or name
  query   - Filter close approaches and print or export them
  stats   - Show catalog and link statistics
  refresh - Download fresh datasets from the JPL SSD API

Examples:
  neoq inspect --pdes 433              # Look up Eros by designation
  neoq inspect --name Eros --verbose   # Same lookup, listing every approach
  neoq query --start-date 2020-01-01 --max-distance 0.1 --limit 5
  neoq query --hazardous --outfile results.csv
  neoq stats                           # Show catalog statistics
  neoq refresh --data-dir data         # Mirror fresh datasets from JPL`,
}

func init() {
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.RefreshCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
