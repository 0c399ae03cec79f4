package commands

import (
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/export"
	"github.com/spf13/cobra"
)

var (
	queryDate         string
	queryStartDate    string
	queryEndDate      string
	queryMinDistance  float64
	queryMaxDistance  float64
	queryMinVelocity  float64
	queryMaxVelocity  float64
	queryMinDiameter  float64
	queryMaxDiameter  float64
	queryHazardous    bool
	queryNotHazardous bool
	queryLimit        int
	queryOutfile      string
	queryCodec        string
)

// QueryCmd represents the query command.
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter close approaches and print or export them",
	Long: `Filter close approaches and print them, or export them to a file.

All given filters must match at once. Approaches with an unknown value
never match a filter on that value. Without --outfile, results print as
human-readable lines; with --outfile, the file extension picks the
format (.csv or .json).

Examples:
  neoq query                                       # Every approach
  neoq query --date 2020-01-01                     # A single day
  neoq query --start-date 2020-01-01 --end-date 2020-12-31
  neoq query --max-distance 0.1 --hazardous --limit 5
  neoq query --min-velocity 20 --outfile fast.csv
  neoq query --hazardous --outfile hazard.json`,
	RunE: runQueryCommand,
}

func init() {
	flags := QueryCmd.Flags()

	flags.StringVar(&queryDate, "date", "", "Only approaches on this date (YYYY-MM-DD)")
	flags.StringVar(&queryStartDate, "start-date", "", "Only approaches on or after this date (YYYY-MM-DD)")
	flags.StringVar(&queryEndDate, "end-date", "", "Only approaches on or before this date (YYYY-MM-DD)")
	flags.Float64Var(&queryMinDistance, "min-distance", 0, "Minimum approach distance in au")
	flags.Float64Var(&queryMaxDistance, "max-distance", 0, "Maximum approach distance in au")
	flags.Float64Var(&queryMinVelocity, "min-velocity", 0, "Minimum approach velocity in km/s")
	flags.Float64Var(&queryMaxVelocity, "max-velocity", 0, "Maximum approach velocity in km/s")
	flags.Float64Var(&queryMinDiameter, "min-diameter", 0, "Minimum object diameter in km")
	flags.Float64Var(&queryMaxDiameter, "max-diameter", 0, "Maximum object diameter in km")
	flags.BoolVar(&queryHazardous, "hazardous", false, "Only potentially hazardous objects")
	flags.BoolVar(&queryNotHazardous, "not-hazardous", false, "Only objects not classified hazardous")
	flags.IntVarP(&queryLimit, "limit", "l", 0, "Maximum number of results (0 means all)")
	flags.StringVarP(&queryOutfile, "outfile", "o", "", "Write results to this file (.csv or .json)")
	flags.StringVar(&queryCodec, "codec", codec.Default.Name(), "JSON codec used with --outfile *.json")
}

// queryParams carries the parsed query flags. Nil pointers mean the
// flag was not given.
type queryParams struct {
	date      string
	startDate string
	endDate   string

	minDistance *float64
	maxDistance *float64
	minVelocity *float64
	maxVelocity *float64
	minDiameter *float64
	maxDiameter *float64

	hazardous *bool
	limit     int
}

func runQueryCommand(cmd *cobra.Command, args []string) error {
	params, err := parseQueryFlags(cmd)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	qb, err := buildQuery(catalog, params)
	if err != nil {
		return err
	}

	if queryOutfile == "" {
		return writeLines(cmd.OutOrStdout(), qb.Stream())
	}

	return writeOutfile(queryOutfile, qb.Stream())
}

func parseQueryFlags(cmd *cobra.Command) (queryParams, error) {
	if queryHazardous && queryNotHazardous {
		return queryParams{}, fmt.Errorf("--hazardous and --not-hazardous are mutually exclusive")
	}

	params := queryParams{
		date:      queryDate,
		startDate: queryStartDate,
		endDate:   queryEndDate,
		limit:     queryLimit,
	}

	flags := cmd.Flags()
	if flags.Changed("min-distance") {
		params.minDistance = &queryMinDistance
	}
	if flags.Changed("max-distance") {
		params.maxDistance = &queryMaxDistance
	}
	if flags.Changed("min-velocity") {
		params.minVelocity = &queryMinVelocity
	}
	if flags.Changed("max-velocity") {
		params.maxVelocity = &queryMaxVelocity
	}
	if flags.Changed("min-diameter") {
		params.minDiameter = &queryMinDiameter
	}
	if flags.Changed("max-diameter") {
		params.maxDiameter = &queryMaxDiameter
	}

	if queryHazardous {
		h := true
		params.hazardous = &h
	}
	if queryNotHazardous {
		h := false
		params.hazardous = &h
	}

	return params, nil
}

// buildQuery turns the parsed flags into a catalog query.
func buildQuery(catalog *neodb.Catalog, params queryParams) (*neodb.QueryBuilder, error) {
	qb := catalog.Select()

	if params.date != "" {
		t, err := parseDate("--date", params.date)
		if err != nil {
			return nil, err
		}
		qb = qb.OnDate(t)
	}
	if params.startDate != "" {
		t, err := parseDate("--start-date", params.startDate)
		if err != nil {
			return nil, err
		}
		qb = qb.StartDate(t)
	}
	if params.endDate != "" {
		t, err := parseDate("--end-date", params.endDate)
		if err != nil {
			return nil, err
		}
		qb = qb.EndDate(t)
	}

	if params.minDistance != nil {
		qb = qb.MinDistance(*params.minDistance)
	}
	if params.maxDistance != nil {
		qb = qb.MaxDistance(*params.maxDistance)
	}
	if params.minVelocity != nil {
		qb = qb.MinVelocity(*params.minVelocity)
	}
	if params.maxVelocity != nil {
		qb = qb.MaxVelocity(*params.maxVelocity)
	}
	if params.minDiameter != nil {
		qb = qb.MinDiameter(*params.minDiameter)
	}
	if params.maxDiameter != nil {
		qb = qb.MaxDiameter(*params.maxDiameter)
	}

	if params.hazardous != nil {
		qb = qb.Hazardous(*params.hazardous)
	}

	if params.limit > 0 {
		qb = qb.Limit(params.limit)
	}

	return qb, nil
}

func parseDate(flag, s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", flag, s)
	}
	return t, nil
}

// writeLines prints one line per result with a trailing count.
func writeLines(w io.Writer, results iter.Seq[neodb.Result]) error {
	count := 0
	for res := range results {
		fmt.Fprintln(w, resultLine(res))
		count++
	}

	fmt.Fprintf(w, "\nFound %d close approaches\n", count)
	return nil
}

// resultLine renders a result as a fixed-width line, "?" for unknowns.
func resultLine(res neodb.Result) string {
	when := res.Approach.TimeString()
	if when == "" {
		when = "unknown"
	}

	dist := "?"
	if !math.IsNaN(res.Approach.Distance) {
		dist = fmt.Sprintf("%.2f au", res.Approach.Distance)
	}

	vel := "?"
	if !math.IsNaN(res.Approach.Velocity) {
		vel = fmt.Sprintf("%.2f km/s", res.Approach.Velocity)
	}

	who := res.Approach.Designation
	if res.Object != nil {
		who = res.Object.FullName()
	}

	return fmt.Sprintf("%-16s  %10s  %12s  %s", when, dist, vel, who)
}

func writeOutfile(name string, results iter.Seq[neodb.Result]) error {
	write, err := outfileWriter(name)
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	if err := write(f, results); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// outfileWriter picks the export format from the file extension.
func outfileWriter(name string) (func(io.Writer, iter.Seq[neodb.Result]) error, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return export.WriteCSV, nil
	case ".json":
		c, ok := codec.ByName(queryCodec)
		if !ok {
			return nil, fmt.Errorf("unknown --codec %q", queryCodec)
		}
		return func(w io.Writer, results iter.Seq[neodb.Result]) error {
			return export.WriteJSON(w, results, export.WithCodec(c), export.WithIndent("    "))
		}, nil
	default:
		return nil, fmt.Errorf("unsupported outfile extension %q (expected .csv or .json)", filepath.Ext(name))
	}
}
