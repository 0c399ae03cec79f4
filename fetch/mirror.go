package fetch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/codec"
	"golang.org/x/sync/errgroup"
)

// Mirror fetches fresh copies of both datasets and lands them in store
// under the conventional names "neos.csv" and "cad.json", ready for
// extraction.
func (c *Client) Mirror(ctx context.Context, store blobstore.WritableStore) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.mirrorObjects(ctx, store)
	})

	g.Go(func() error {
		return c.mirrorApproaches(ctx, store)
	})

	return g.Wait()
}

// mirrorApproaches streams the cad.api response into the store verbatim.
func (c *Client) mirrorApproaches(ctx context.Context, store blobstore.WritableStore) error {
	body, err := c.FetchApproaches(ctx, ApproachParams{})
	if err != nil {
		return err
	}
	defer body.Close()

	w, err := store.Create(ctx, "cad.json")
	if err != nil {
		return fmt.Errorf("failed to create cad.json: %w", err)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to mirror cad.json: %w", err)
	}
	return w.Close()
}

// sbdbDocument is the SBDB query envelope. Data cells are strings,
// numbers or null depending on the column.
type sbdbDocument struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// mirrorObjects converts the SBDB query response to the neos.csv layout.
func (c *Client) mirrorObjects(ctx context.Context, store blobstore.WritableStore) error {
	body, err := c.FetchObjects(ctx)
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read object records: %w", err)
	}

	var doc sbdbDocument
	if err := codec.Default.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse object records: %w", err)
	}

	w, err := store.Create(ctx, "neos.csv")
	if err != nil {
		return fmt.Errorf("failed to create neos.csv: %w", err)
	}

	if err := writeObjectsCSV(w, &doc); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to mirror neos.csv: %w", err)
	}
	return w.Close()
}

func writeObjectsCSV(w io.Writer, doc *sbdbDocument) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(doc.Fields); err != nil {
		return err
	}

	record := make([]string, len(doc.Fields))
	for i, row := range doc.Data {
		if len(row) != len(doc.Fields) {
			return fmt.Errorf("row %d has %d cells, want %d", i+1, len(row), len(doc.Fields))
		}
		for j, v := range row {
			cell, err := formatCell(v)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			record[j] = cell
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("unsupported cell type %T", v)
	}
}
