// Package filter provides the composable attribute predicates used to
// query close approaches.
//
// A Filter compares one attribute derived from an approach event (or its
// linked NEO) against a reference value: approach date, nominal distance,
// relative velocity, NEO diameter, or the NEO hazardous flag. Filters are
// plain data, not a type hierarchy; evaluation dispatches on the
// Attribute tag.
//
// A Set combines filters with AND semantics. Filter sets are built either
// directly or through the Criteria factory, which turns a bag of optional
// user-supplied bounds into the matching filters.
//
// Comparisons against unknown values (NaN sentinels, unknown approach
// times) and against the NEO attributes of an unresolved event fail
// closed: the filter reports no match rather than erroring.
package filter

import (
	"fmt"

	"github.com/hupe1980/neodb/neo"
)

// Attribute identifies which event-derived value a Filter compares.
type Attribute uint8

const (
	// AttrInvalid is the zero Attribute. Evaluating a filter with it
	// panics; it exists only to catch uninitialized filters.
	AttrInvalid Attribute = iota
	// AttrDate selects the approach time truncated to its calendar date.
	AttrDate
	// AttrDistance selects the nominal approach distance in au.
	AttrDistance
	// AttrVelocity selects the relative approach velocity in km/s.
	AttrVelocity
	// AttrDiameter selects the linked NEO's diameter in km.
	AttrDiameter
	// AttrHazardous selects the linked NEO's hazardous flag.
	AttrHazardous
)

// String returns the attribute name used in logs and error messages.
func (a Attribute) String() string {
	switch a {
	case AttrDate:
		return "date"
	case AttrDistance:
		return "distance"
	case AttrVelocity:
		return "velocity"
	case AttrDiameter:
		return "diameter"
	case AttrHazardous:
		return "hazardous"
	default:
		return fmt.Sprintf("attribute(%d)", uint8(a))
	}
}

// Operator represents a comparison operator.
type Operator string

const (
	// OpEqual matches when the attribute equals the reference value.
	OpEqual Operator = "eq"
	// OpLessEqual matches when the attribute is at most the reference
	// value.
	OpLessEqual Operator = "lte"
	// OpGreaterEqual matches when the attribute is at least the reference
	// value.
	OpGreaterEqual Operator = "gte"
)

// UnsupportedCriterionError is the panic payload for a filter whose
// attribute this package does not know how to read.
//
// This is a programming-contract violation, not a data condition, so it
// surfaces as a panic instead of an ordinary no-match result.
type UnsupportedCriterionError struct {
	Attribute Attribute
}

func (e *UnsupportedCriterionError) Error() string {
	return fmt.Sprintf("filter: unsupported criterion %s", e.Attribute)
}

// Filter is a single attribute predicate: attribute OP reference value.
type Filter struct {
	Attribute Attribute
	Operator  Operator
	Value     Value
}

// Matches evaluates the filter against an approach and its linked object.
//
// obj is nil for an unresolved event; filters that dereference the NEO
// (diameter, hazardous) then report no match. Matches panics with an
// *UnsupportedCriterionError when the filter names an unknown attribute.
func (f Filter) Matches(ap *neo.Approach, obj *neo.Object) bool {
	v := f.attribute(ap, obj)

	switch f.Operator {
	case OpEqual:
		return compareEqual(v, f.Value)
	case OpLessEqual:
		return compareLess(v, f.Value) || compareEqual(v, f.Value)
	case OpGreaterEqual:
		return compareGreater(v, f.Value) || compareEqual(v, f.Value)
	default:
		return false
	}
}

// attribute reads the filter's attribute from the event. Unknown values
// come back as the invalid Value, which compares false against
// everything.
func (f Filter) attribute(ap *neo.Approach, obj *neo.Object) Value {
	switch f.Attribute {
	case AttrDate:
		if !ap.TimeKnown() {
			return Value{}
		}
		return Date(ap.Time)
	case AttrDistance:
		return Float(ap.Distance)
	case AttrVelocity:
		return Float(ap.Velocity)
	case AttrDiameter:
		if obj == nil {
			return Value{}
		}
		return Float(obj.Diameter)
	case AttrHazardous:
		if obj == nil {
			return Value{}
		}
		return Bool(obj.Hazardous)
	default:
		panic(&UnsupportedCriterionError{Attribute: f.Attribute})
	}
}

// String returns a compact "attribute op value" rendering for logs.
func (f Filter) String() string {
	return fmt.Sprintf("%s %s %s", f.Attribute, f.Operator, f.Value)
}

// Set is a collection of filters combined with AND semantics.
type Set struct {
	Filters []Filter
}

// NewSet creates a filter set from the given filters.
func NewSet(filters ...Filter) *Set {
	return &Set{Filters: filters}
}

// Matches reports whether every filter in the set matches the event.
// Evaluation short-circuits on the first failing filter. A nil or empty
// set matches every event.
func (s *Set) Matches(ap *neo.Approach, obj *neo.Object) bool {
	if s == nil {
		return true
	}
	for _, f := range s.Filters {
		if !f.Matches(ap, obj) {
			return false
		}
	}
	return true
}

// Len returns the number of filters in the set. A nil set has length 0.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Filters)
}
