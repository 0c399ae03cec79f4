// Package neodb provides an in-memory catalog of near-Earth objects and
// their close approaches to Earth.
//
// A Catalog links two independently loaded datasets - NEOs and close
// approach events - into a queryable whole:
//
//   - Constant-time lookup by primary designation or IAU name
//   - Composable attribute filters with AND semantics (package filter)
//   - Lazy, early-terminating query streams built on iter.Seq
//   - Roaring bitmap posting sets for per-NEO approach navigation
//   - Structured logging (log/slog) and pluggable metrics
//
// # Quick Start
//
// Load the NASA datasets and build a catalog:
//
//	store := blobstore.NewLocalStore("data")
//
//	cat, err := extract.NewLoader(store).Load(ctx)
//	if err != nil {
//	    panic(err)
//	}
//
// Or build one directly from entity slices with neodb.New.
//
// Look up a NEO by primary designation or by IAU name:
//
//	eros, ok := cat.FindByDesignation("433")
//	halley, ok := cat.FindByName("Halley")
//
// Query close approaches with the fluent API:
//
//	jan1 := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
//
//	for r := range cat.Select().
//	    StartDate(jan1).
//	    MaxDistance(0.1).
//	    Hazardous(true).
//	    Limit(10).
//	    Stream() {
//	    fmt.Println(r.Approach)
//	}
//
// Or with an explicit filter set:
//
//	fs := filter.NewSet(filter.MaxDistance(0.1))
//	for r := range cat.Query(fs) {
//	    process(r)
//	}
//
// Queries stream lazily in input order; break from the loop to stop
// early without materializing the remaining results.
package neodb

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/neodb/filter"
	"github.com/hupe1980/neodb/internal/bitmap"
	"github.com/hupe1980/neodb/neo"
)

// noLink marks an approach whose designation matched no NEO.
const noLink = ^uint32(0)

// Catalog is an immutable, linked collection of NEOs and close approaches.
//
// Entities carry no link state; the catalog owns the designation and name
// indexes, the approach-to-NEO links, and the per-NEO posting sets. All
// navigation goes through Catalog methods.
type Catalog struct {
	objects    []*neo.Object
	approaches []*neo.Approach

	byDesignation map[string]uint32
	byName        map[string]uint32

	links      []uint32      // approach ordinal -> object ordinal (noLink if unresolved)
	postings   []*bitmap.Set // object ordinal -> approach ordinals
	unresolved *bitmap.Set

	metrics MetricsCollector
	logger  *Logger
}

// New builds a catalog from the given NEOs and close approaches.
//
// Every entity is validated; an invalid entity or a duplicate designation
// or name fails construction. Approaches whose designation matches no NEO
// are kept and tracked as unresolved rather than dropped.
//
// The slices are cloned but the entities themselves are shared: lookups
// return the same *neo.Object pointers that were passed in.
func New(objects []*neo.Object, approaches []*neo.Approach, optFns ...Option) (*Catalog, error) {
	start := time.Now()
	opts := applyOptions(optFns)

	c := &Catalog{
		objects:       slices.Clone(objects),
		approaches:    slices.Clone(approaches),
		byDesignation: make(map[string]uint32, len(objects)),
		byName:        make(map[string]uint32),
		links:         make([]uint32, len(approaches)),
		postings:      make([]*bitmap.Set, len(objects)),
		unresolved:    bitmap.New(),
		metrics:       opts.metricsCollector,
		logger:        opts.logger,
	}

	for i, obj := range c.objects {
		if obj == nil {
			return nil, fmt.Errorf("neodb: object %d: %w", i, ErrNilEntity)
		}
		if err := obj.Validate(); err != nil {
			return nil, fmt.Errorf("neodb: object %d: %w", i, err)
		}
		if _, ok := c.byDesignation[obj.Designation]; ok {
			return nil, &ErrDuplicateKey{Kind: "designation", Key: obj.Designation}
		}
		c.byDesignation[obj.Designation] = uint32(i)

		if obj.HasName() {
			if _, ok := c.byName[obj.Name]; ok {
				return nil, &ErrDuplicateKey{Kind: "name", Key: obj.Name}
			}
			c.byName[obj.Name] = uint32(i)
		}
	}

	for i, ap := range c.approaches {
		if ap == nil {
			return nil, fmt.Errorf("neodb: approach %d: %w", i, ErrNilEntity)
		}
		if err := ap.Validate(); err != nil {
			return nil, fmt.Errorf("neodb: approach %d: %w", i, err)
		}

		ord, ok := c.byDesignation[ap.Designation]
		if !ok {
			c.links[i] = noLink
			c.unresolved.Add(uint32(i))
			continue
		}

		c.links[i] = ord
		if c.postings[ord] == nil {
			c.postings[ord] = bitmap.New()
		}
		c.postings[ord].Add(uint32(i))
	}

	unresolved := c.UnresolvedCount()
	c.metrics.RecordLink(len(c.objects), len(c.approaches), unresolved, time.Since(start))
	c.logger.LogLink(len(c.objects), len(c.approaches), unresolved)

	return c, nil
}

// FindByDesignation retrieves a NEO by its primary designation.
//
// Matching is exact and case-sensitive; callers normalize input if
// needed.
func (c *Catalog) FindByDesignation(designation string) (*neo.Object, bool) {
	ord, ok := c.byDesignation[designation]
	c.metrics.RecordLookup(ok)
	c.logger.LogLookup("designation", designation, ok)
	if !ok {
		return nil, false
	}
	return c.objects[ord], true
}

// FindByName retrieves a NEO by its IAU name.
//
// Unnamed NEOs are not indexed, so the empty string never matches.
// Matching is exact and case-sensitive; callers normalize input if
// needed.
func (c *Catalog) FindByName(name string) (*neo.Object, bool) {
	ord, ok := c.byName[name]
	c.metrics.RecordLookup(ok)
	c.logger.LogLookup("name", name, ok)
	if !ok {
		return nil, false
	}
	return c.objects[ord], true
}

// Result is one close approach yielded by a query, resolved against its
// NEO. Object is nil for an unresolved approach.
type Result struct {
	// ID is the approach ordinal in catalog input order.
	ID uint32

	// Approach is the close approach event.
	Approach *neo.Approach

	// Object is the linked NEO, or nil if the approach is unresolved.
	Object *neo.Object
}

// Query returns an iterator over all approaches matching the filter set,
// in catalog input order. A nil or empty set matches every approach,
// including unresolved ones.
//
// The iterator is lazy: approaches are tested one at a time as the
// consumer advances, and breaking out of the loop stops the scan.
func (c *Catalog) Query(fs *filter.Set) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		start := time.Now()

		count := 0
		for i, ap := range c.approaches {
			obj := c.linked(uint32(i))
			if !fs.Matches(ap, obj) {
				continue
			}

			count++
			if !yield(Result{ID: uint32(i), Approach: ap, Object: obj}) {
				break
			}
		}

		c.metrics.RecordQuery(fs.Len(), count, time.Since(start))
		c.logger.LogQuery(fs.Len(), count)
	}
}

// All returns an iterator over every approach in catalog input order.
func (c *Catalog) All() iter.Seq[Result] {
	return c.Query(nil)
}

// ApproachesOf returns an iterator over the close approaches of the
// given NEO, in catalog input order. A nil or unknown NEO yields
// nothing.
func (c *Catalog) ApproachesOf(obj *neo.Object) iter.Seq[*neo.Approach] {
	return func(yield func(*neo.Approach) bool) {
		if obj == nil {
			return
		}
		ord, ok := c.byDesignation[obj.Designation]
		if !ok || c.postings[ord] == nil {
			return
		}
		for i := range c.postings[ord].Iterator() {
			if !yield(c.approaches[i]) {
				return
			}
		}
	}
}

// ApproachCount returns the number of close approaches linked to the
// given NEO.
func (c *Catalog) ApproachCount(obj *neo.Object) int {
	if obj == nil {
		return 0
	}
	ord, ok := c.byDesignation[obj.Designation]
	if !ok || c.postings[ord] == nil {
		return 0
	}
	return int(c.postings[ord].Cardinality())
}

// Unresolved returns an iterator over the approaches whose designation
// matched no NEO, in catalog input order.
func (c *Catalog) Unresolved() iter.Seq[*neo.Approach] {
	return func(yield func(*neo.Approach) bool) {
		for i := range c.unresolved.Iterator() {
			if !yield(c.approaches[i]) {
				return
			}
		}
	}
}

// UnresolvedCount returns the number of unresolved approaches.
func (c *Catalog) UnresolvedCount() int {
	return int(c.unresolved.Cardinality())
}

// Stats is a snapshot of catalog size and link health.
type Stats struct {
	Objects    int // NEOs in the catalog
	Named      int // NEOs with an IAU name
	Approaches int // close approach events
	Resolved   int // approaches linked to a NEO
	Unresolved int // approaches without a matching NEO
}

// Stats returns statistics about the catalog.
func (c *Catalog) Stats() Stats {
	u := c.UnresolvedCount()
	return Stats{
		Objects:    len(c.objects),
		Named:      len(c.byName),
		Approaches: len(c.approaches),
		Resolved:   len(c.approaches) - u,
		Unresolved: u,
	}
}

// linked resolves an approach ordinal to its NEO, or nil if unresolved.
func (c *Catalog) linked(ord uint32) *neo.Object {
	if c.links[ord] == noLink {
		return nil
	}
	return c.objects[c.links[ord]]
}
