package commands

import (
	"fmt"
	"io"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/neo"
	"github.com/spf13/cobra"
)

var (
	inspectPdes    string
	inspectName    string
	inspectVerbose bool
)

// InspectCmd represents the inspect command.
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Look up a single NEO by designation or name",
	Long: `Look up a single near-Earth object by primary designation or by name.

Examples:
  neoq inspect --pdes 433          # Look up Eros by designation
  neoq inspect --name Eros         # Look up Eros by name
  neoq inspect --pdes 433 -v       # Also list every known close approach`,
	RunE: runInspectCommand,
}

func init() {
	InspectCmd.Flags().StringVarP(&inspectPdes, "pdes", "p", "", "Primary designation of the NEO")
	InspectCmd.Flags().StringVarP(&inspectName, "name", "n", "", "IAU name of the NEO")
	InspectCmd.Flags().BoolVarP(&inspectVerbose, "verbose", "v", false, "Also list every known close approach")
}

func runInspectCommand(cmd *cobra.Command, args []string) error {
	if inspectPdes == "" && inspectName == "" {
		return fmt.Errorf("either --pdes or --name is required")
	}

	catalog, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	return writeInspect(cmd.OutOrStdout(), catalog, inspectPdes, inspectName, inspectVerbose)
}

// writeInspect renders the lookup result. The designation lookup wins
// when both keys are given.
func writeInspect(w io.Writer, catalog *neodb.Catalog, pdes, name string, verbose bool) error {
	var (
		obj *neo.Object
		ok  bool
	)

	if pdes != "" {
		obj, ok = catalog.FindByDesignation(pdes)
	} else {
		obj, ok = catalog.FindByName(name)
	}

	if !ok {
		fmt.Fprintln(w, "No matching NEOs exist in the database.")
		return nil
	}

	fmt.Fprintln(w, obj)

	if verbose {
		for ap := range catalog.ApproachesOf(obj) {
			fmt.Fprintf(w, "- %s\n", ap)
		}
	}

	return nil
}
