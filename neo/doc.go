// Package neo defines the entity model for near-Earth objects and their
// close approaches to Earth.
//
// # Entities
//
//   - Object: a near-Earth object with a unique primary designation, an
//     optional IAU name, an optional diameter, and a hazardous flag
//   - Approach: a single recorded or predicted close approach of an NEO,
//     with its time, nominal distance, and relative velocity
//
// Both are plain data holders. Construction validates every field eagerly
// and refuses half-valid entities; a failed constructor returns a
// *FieldError naming the offending field.
//
// # Unknown-Value Sentinels
//
// The upstream NASA datasets omit values, so the model carries explicit
// sentinels instead of pointers:
//
//   - Name: the empty string means "unnamed" (absent and empty are
//     equivalent; no object is ever known by the empty name)
//   - Diameter, Distance, Velocity: math.NaN() means "unknown"
//   - Time: the zero time.Time means "unknown"
//
// NaN sentinels compare false against everything, so query filters over
// unknown values fail closed without special cases.
//
// Entities carry no link state. The two-way association between objects
// and approaches is owned by the neodb.Catalog, which joins the two
// collections by designation after extraction.
package neo
