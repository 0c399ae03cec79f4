package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/neo"
)

// LoadObjects reads near-Earth objects from a NASA small-body CSV
// dataset (neos.csv). Columns are resolved by header name; only pdes,
// name, diameter and pha are consumed, the rest of the row is ignored.
func LoadObjects(ctx context.Context, r io.Reader) ([]*neo.Object, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read neos.csv header: %w", err)
	}

	cols, err := columnIndexes(header, "pdes", "name", "diameter", "pha")
	if err != nil {
		return nil, fmt.Errorf("neos.csv: %w", err)
	}

	var objects []*neo.Object
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read neos.csv row %d: %w", row, err)
		}

		obj, err := objectFromRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("neos.csv row %d: %w", row, err)
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

func objectFromRecord(record []string, cols map[string]int) (*neo.Object, error) {
	designation := record[cols["pdes"]]
	name := record[cols["name"]]

	diameter := math.NaN()
	if s := record[cols["diameter"]]; s != "" {
		var err error
		diameter, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid diameter %q: %w", s, err)
		}
	}

	// The dataset marks hazardous objects with "Y"; "N" and an empty
	// value both mean not hazardous.
	pha := record[cols["pha"]]
	hazardous := pha != "" && pha != "N"

	return neo.NewObject(designation, name, diameter, hazardous)
}

// approachDocument is the envelope of the NASA close-approach dataset
// (cad.json): a fields header naming the columns, and rows of strings.
type approachDocument struct {
	Fields []string    `json:"fields"`
	Data   [][]*string `json:"data"`
}

// LoadApproaches reads close approaches from a NASA CAD JSON dataset
// (cad.json). Columns are resolved from the fields header; only des,
// cd, dist and v_rel are consumed.
func LoadApproaches(ctx context.Context, r io.Reader) ([]*neo.Approach, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read cad.json: %w", err)
	}

	var doc approachDocument
	if err := codec.Default.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse cad.json: %w", err)
	}

	cols, err := columnIndexes(doc.Fields, "des", "cd", "dist", "v_rel")
	if err != nil {
		return nil, fmt.Errorf("cad.json: %w", err)
	}

	approaches := make([]*neo.Approach, 0, len(doc.Data))
	for i, row := range doc.Data {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ap, err := approachFromRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("cad.json row %d: %w", i+1, err)
		}
		approaches = append(approaches, ap)
	}

	return approaches, nil
}

func approachFromRow(row []*string, cols map[string]int) (*neo.Approach, error) {
	field := func(name string) *string {
		i := cols[name]
		if i >= len(row) {
			return nil
		}
		return row[i]
	}

	var designation string
	if s := field("des"); s != nil {
		designation = *s
	}

	var when time.Time
	if s := field("cd"); s != nil {
		var err error
		when, err = neo.ParseCalendarTime(*s)
		if err != nil {
			return nil, fmt.Errorf("invalid cd %q: %w", *s, err)
		}
	}

	distance := math.NaN()
	if s := field("dist"); s != nil && *s != "" {
		var err error
		distance, err = strconv.ParseFloat(*s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dist %q: %w", *s, err)
		}
	}

	velocity := math.NaN()
	if s := field("v_rel"); s != nil && *s != "" {
		var err error
		velocity, err = strconv.ParseFloat(*s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid v_rel %q: %w", *s, err)
		}
	}

	return neo.NewApproach(designation, when, distance, velocity)
}

// columnIndexes resolves the positions of the named columns in a header.
func columnIndexes(header []string, names ...string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}

	cols := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		cols[name] = i
	}
	return cols, nil
}
