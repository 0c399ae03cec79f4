package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/codec"
)

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// WriteCSV streams query results to w as CSV, one row per close
// approach. Unknown values render as empty cells; approaches without a
// matching NEO keep their designation and leave the NEO columns empty.
func WriteCSV(w io.Writer, results iter.Seq[neodb.Result]) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for res := range results {
		if err := cw.Write(csvRow(res)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(res neodb.Result) []string {
	ap := res.Approach

	name, diameter, hazardous := "", "", ""
	if obj := res.Object; obj != nil {
		name = obj.Name
		diameter = formatFloat(obj.Diameter)
		hazardous = strconv.FormatBool(obj.Hazardous)
	}

	return []string{
		ap.TimeString(),
		formatFloat(ap.Distance),
		formatFloat(ap.Velocity),
		ap.Designation,
		name,
		diameter,
		hazardous,
	}
}

// formatFloat renders a value as a plain decimal, or as an empty cell
// when the value is unknown.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type jsonOptions struct {
	codec  codec.Codec
	indent string
}

// JSONOption configures WriteJSON.
type JSONOption func(*jsonOptions)

// WithCodec selects the codec used to encode the output. Defaults to
// codec.Default.
func WithCodec(c codec.Codec) JSONOption {
	return func(o *jsonOptions) {
		o.codec = c
	}
}

// WithIndent pretty-prints the output using the given indent string.
func WithIndent(indent string) JSONOption {
	return func(o *jsonOptions) {
		o.indent = indent
	}
}

// WriteJSON writes query results to w as a JSON array of approach
// records, each carrying its NEO under the "neo" key. Unknown values
// encode as null; approaches without a matching NEO keep their
// designation and null out the remaining NEO fields.
func WriteJSON(w io.Writer, results iter.Seq[neodb.Result], optFns ...JSONOption) error {
	opts := jsonOptions{
		codec: codec.Default,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	records := make([]map[string]any, 0, 64)
	for res := range results {
		records = append(records, jsonRecord(res))
	}

	data, err := opts.codec.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if opts.indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", opts.indent); err != nil {
			return fmt.Errorf("failed to indent results: %w", err)
		}
		data = buf.Bytes()
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func jsonRecord(res neodb.Result) map[string]any {
	rec := res.Approach.Record()

	if obj := res.Object; obj != nil {
		rec["neo"] = obj.Record()
	} else {
		rec["neo"] = map[string]any{
			"designation":           res.Approach.Designation,
			"name":                  nil,
			"diameter_km":           nil,
			"potentially_hazardous": nil,
		}
	}

	return rec
}
