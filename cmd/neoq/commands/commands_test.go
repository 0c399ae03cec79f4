package commands

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/neo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testNeosCSV = "pdes,name,diameter,pha\n433,Eros,16.84,N\n2101,Adonis,,Y\n"
	testCadJSON = `{
		"fields": ["des", "cd", "dist", "v_rel"],
		"data": [
			["433", "2020-Jan-01 12:30", "0.25", "18.5"],
			["2101", "2020-Jun-01 00:00", "0.05", "25"]
		]
	}`
)

func testCatalog(t *testing.T) *neodb.Catalog {
	t.Helper()

	eros, err := neo.NewObject("433", "Eros", 16.84, false)
	require.NoError(t, err)
	adonis, err := neo.NewObject("2101", "Adonis", math.NaN(), true)
	require.NoError(t, err)

	a1, err := neo.NewApproach("433", time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC), 0.25, 18.5)
	require.NoError(t, err)
	a2, err := neo.NewApproach("2101", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), 0.05, 25)
	require.NoError(t, err)
	a3, err := neo.NewApproach("99999", time.Time{}, math.NaN(), math.NaN())
	require.NoError(t, err)

	catalog, err := neodb.New([]*neo.Object{eros, adonis}, []*neo.Approach{a1, a2, a3})
	require.NoError(t, err)

	return catalog
}

// setGlobals points the global flags at a dataset directory and restores
// them when the test ends.
func setGlobals(t *testing.T, dir string) {
	t.Helper()

	oldDir, oldNeo, oldCad, oldLevel := dataDir, neoFile, cadFile, logLevel
	t.Cleanup(func() {
		dataDir, neoFile, cadFile, logLevel = oldDir, oldNeo, oldCad, oldLevel
	})

	dataDir = dir
	neoFile = "neos.csv"
	cadFile = "cad.json"
	logLevel = "warn"
}

func writeDataset(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "neos.csv"), []byte(testNeosCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cad.json"), []byte(testCadJSON), 0o644))
}

func TestBuildQuery(t *testing.T) {
	catalog := testCatalog(t)

	minDist := 0.1
	hazardous := true

	tests := []struct {
		name   string
		params queryParams
		want   int
	}{
		{name: "no filters", params: queryParams{}, want: 3},
		{name: "min distance", params: queryParams{minDistance: &minDist}, want: 1},
		{name: "hazardous", params: queryParams{hazardous: &hazardous}, want: 1},
		{name: "date range", params: queryParams{startDate: "2020-01-01", endDate: "2020-03-31"}, want: 1},
		{name: "limit", params: queryParams{limit: 2}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb, err := buildQuery(catalog, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, qb.Count())
		})
	}
}

func TestBuildQueryBadDate(t *testing.T) {
	catalog := testCatalog(t)

	_, err := buildQuery(catalog, queryParams{date: "January 1st"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--date")

	_, err = buildQuery(catalog, queryParams{endDate: "2020-13-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--end-date")
}

func TestParseQueryFlagsExclusive(t *testing.T) {
	queryHazardous = true
	queryNotHazardous = true
	t.Cleanup(func() {
		queryHazardous = false
		queryNotHazardous = false
	})

	_, err := parseQueryFlags(QueryCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestResultLine(t *testing.T) {
	catalog := testCatalog(t)

	res, err := catalog.Select().MinDistance(0.1).First()
	require.NoError(t, err)

	line := resultLine(res)
	assert.Contains(t, line, "2020-01-01 12:30")
	assert.Contains(t, line, "0.25 au")
	assert.Contains(t, line, "18.50 km/s")
	assert.Contains(t, line, "433 (Eros)")
}

func TestResultLineUnknowns(t *testing.T) {
	catalog := testCatalog(t)

	var line string
	for res := range catalog.All() {
		if res.Object == nil {
			line = resultLine(res)
		}
	}

	require.NotEmpty(t, line)
	assert.Contains(t, line, "unknown")
	assert.Contains(t, line, "?")
	assert.Contains(t, line, "99999")
	assert.NotContains(t, line, "km/s")
}

func TestWriteLines(t *testing.T) {
	catalog := testCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, writeLines(&buf, catalog.Select().Limit(1).Stream()))

	out := buf.String()
	assert.Contains(t, out, "433 (Eros)")
	assert.Contains(t, out, "Found 1 close approaches")
}

func TestWriteInspect(t *testing.T) {
	catalog := testCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, writeInspect(&buf, catalog, "433", "", false))
	assert.Contains(t, buf.String(), "433 (Eros)")
	assert.Contains(t, buf.String(), "16.840 km")

	buf.Reset()
	require.NoError(t, writeInspect(&buf, catalog, "", "Eros", true))
	assert.Contains(t, buf.String(), "433 (Eros)")
	assert.Contains(t, buf.String(), "- approach of 433")

	buf.Reset()
	require.NoError(t, writeInspect(&buf, catalog, "1", "", false))
	assert.Equal(t, "No matching NEOs exist in the database.\n", buf.String())
}

func TestWriteStats(t *testing.T) {
	catalog := testCatalog(t)

	var buf bytes.Buffer
	writeStats(&buf, catalog, true)

	out := buf.String()
	assert.Contains(t, out, "Objects:      2")
	assert.Contains(t, out, "Named:      2")
	assert.Contains(t, out, "Approaches:   3")
	assert.Contains(t, out, "Resolved:   2")
	assert.Contains(t, out, "Unresolved: 1")
	assert.Contains(t, out, "99999")
}

func TestOutfileWriter(t *testing.T) {
	write, err := outfileWriter("out.csv")
	require.NoError(t, err)
	assert.NotNil(t, write)

	write, err = outfileWriter("out.JSON")
	require.NoError(t, err)
	assert.NotNil(t, write)

	_, err = outfileWriter("out.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported outfile extension")
}

func TestOutfileWriterUnknownCodec(t *testing.T) {
	old := queryCodec
	queryCodec = "bogus"
	t.Cleanup(func() { queryCodec = old })

	_, err := outfileWriter("out.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown --codec "bogus"`)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	setGlobals(t, dir)

	catalog, err := loadCatalog(context.Background())
	require.NoError(t, err)

	stats := catalog.Stats()
	assert.Equal(t, 2, stats.Objects)
	assert.Equal(t, 2, stats.Approaches)
	assert.Equal(t, 0, stats.Unresolved)
}

func TestLoadCatalogBadLogLevel(t *testing.T) {
	setGlobals(t, t.TempDir())
	logLevel = "loud"

	_, err := loadCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestLoadCatalogMissingDataset(t *testing.T) {
	setGlobals(t, t.TempDir())

	_, err := loadCatalog(context.Background())
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestRunQueryCommandOutfile(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	setGlobals(t, dir)

	oldOut := queryOutfile
	queryOutfile = filepath.Join(dir, "results.csv")
	t.Cleanup(func() { queryOutfile = oldOut })

	// Invoked outside Execute, so the command context must be seeded.
	QueryCmd.SetContext(context.Background())

	require.NoError(t, runQueryCommand(QueryCmd, nil))

	data, err := os.ReadFile(queryOutfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "datetime_utc")
	assert.Contains(t, string(data), "433,Eros")
}
