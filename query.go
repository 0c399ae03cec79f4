package neodb

import (
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/neodb/filter"
)

// Select creates a new fluent query builder.
//
// Example:
//
//	results := cat.Select().
//	    MaxDistance(0.1).
//	    Hazardous(true).
//	    Limit(10).
//	    Execute()
//
//	// Or with streaming:
//	for r := range cat.Select().MinVelocity(25).Stream() {
//	    if r.Object == nil { continue } // unresolved
//	    process(r)
//	}
func (c *Catalog) Select() *QueryBuilder {
	return &QueryBuilder{
		catalog: c,
	}
}

// QueryBuilder is a fluent builder for constructing catalog queries.
//
// All bounds are inclusive and combine with AND semantics. The zero
// builder matches every approach.
type QueryBuilder struct {
	catalog  *Catalog
	criteria filter.Criteria
	extra    []filter.Filter
	limit    int
}

// OnDate restricts results to approaches on exactly the given UTC
// calendar date.
func (qb *QueryBuilder) OnDate(t time.Time) *QueryBuilder {
	qb.criteria.Date = &t
	return qb
}

// StartDate restricts results to approaches on or after the given UTC
// calendar date.
func (qb *QueryBuilder) StartDate(t time.Time) *QueryBuilder {
	qb.criteria.StartDate = &t
	return qb
}

// EndDate restricts results to approaches on or before the given UTC
// calendar date.
func (qb *QueryBuilder) EndDate(t time.Time) *QueryBuilder {
	qb.criteria.EndDate = &t
	return qb
}

// MinDistance restricts results to approaches at or beyond the given
// distance in au.
func (qb *QueryBuilder) MinDistance(au float64) *QueryBuilder {
	qb.criteria.DistanceMin = &au
	return qb
}

// MaxDistance restricts results to approaches at or within the given
// distance in au.
func (qb *QueryBuilder) MaxDistance(au float64) *QueryBuilder {
	qb.criteria.DistanceMax = &au
	return qb
}

// MinVelocity restricts results to approaches at or above the given
// velocity in km/s.
func (qb *QueryBuilder) MinVelocity(kms float64) *QueryBuilder {
	qb.criteria.VelocityMin = &kms
	return qb
}

// MaxVelocity restricts results to approaches at or below the given
// velocity in km/s.
func (qb *QueryBuilder) MaxVelocity(kms float64) *QueryBuilder {
	qb.criteria.VelocityMax = &kms
	return qb
}

// MinDiameter restricts results to NEOs at least the given diameter in
// km.
func (qb *QueryBuilder) MinDiameter(km float64) *QueryBuilder {
	qb.criteria.DiameterMin = &km
	return qb
}

// MaxDiameter restricts results to NEOs at most the given diameter in
// km.
func (qb *QueryBuilder) MaxDiameter(km float64) *QueryBuilder {
	qb.criteria.DiameterMax = &km
	return qb
}

// Hazardous restricts results to NEOs whose hazardous flag equals the
// given value.
func (qb *QueryBuilder) Hazardous(h bool) *QueryBuilder {
	qb.criteria.Hazardous = &h
	return qb
}

// Filter appends a raw filter to the query.
func (qb *QueryBuilder) Filter(f filter.Filter) *QueryBuilder {
	qb.extra = append(qb.extra, f)
	return qb
}

// Limit caps the number of results. A non-positive n means no limit.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

// set compiles the accumulated criteria and raw filters into one set.
func (qb *QueryBuilder) set() *filter.Set {
	s := qb.criteria.Compile()
	s.Filters = append(s.Filters, qb.extra...)
	return s
}

// Stream returns an iterator over matching results for memory-efficient
// processing, in catalog input order. Breaking from the loop stops the
// scan.
func (qb *QueryBuilder) Stream() iter.Seq[Result] {
	return Limit(qb.catalog.Query(qb.set()), qb.limit)
}

// Execute runs the query and collects the results.
func (qb *QueryBuilder) Execute() []Result {
	return slices.Collect(qb.Stream())
}

// First returns only the first matching result, or ErrNotFound if
// nothing matches.
func (qb *QueryBuilder) First() (Result, error) {
	for r := range Limit(qb.catalog.Query(qb.set()), 1) {
		return r, nil
	}
	return Result{}, ErrNotFound
}

// Count executes the query and returns the number of results.
func (qb *QueryBuilder) Count() int {
	count := 0
	for range qb.Stream() {
		count++
	}
	return count
}

// Exists checks if at least one result matches the query.
func (qb *QueryBuilder) Exists() bool {
	_, err := qb.First()
	return err == nil
}
