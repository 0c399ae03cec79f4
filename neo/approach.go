package neo

import (
	"fmt"
	"math"
	"time"
)

// Approach is a single close approach of an NEO to Earth.
//
// The designation names the approaching object; it is resolved to an
// *Object when the collections are linked into a neodb.Catalog. Distance
// is the nominal approach distance in astronomical units, velocity the
// relative approach velocity in km/s.
type Approach struct {
	// Designation is the primary designation of the approaching object.
	Designation string

	// Time is the time of closest approach in UTC. The zero time means
	// unknown.
	Time time.Time

	// Distance is the nominal approach distance in au. NaN means unknown.
	Distance float64

	// Velocity is the relative approach velocity in km/s. NaN means
	// unknown.
	Velocity float64
}

// NewApproach creates a validated Approach.
//
// A zero t marks an unknown approach time; non-zero times are normalized
// to UTC. Pass math.NaN() for an unknown distance or velocity.
func NewApproach(designation string, t time.Time, distance, velocity float64) (*Approach, error) {
	if !t.IsZero() {
		t = t.UTC()
	}
	a := &Approach{
		Designation: designation,
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the field invariants.
func (a *Approach) Validate() error {
	if a.Designation == "" {
		return &FieldError{Entity: "Approach", Field: "designation", Reason: "must not be empty"}
	}
	if !math.IsNaN(a.Distance) && a.Distance < 0 {
		return &FieldError{Entity: "Approach", Field: "distance", Reason: fmt.Sprintf("must be non-negative, got %v", a.Distance)}
	}
	if !math.IsNaN(a.Velocity) && a.Velocity < 0 {
		return &FieldError{Entity: "Approach", Field: "velocity", Reason: fmt.Sprintf("must be non-negative, got %v", a.Velocity)}
	}
	return nil
}

// TimeKnown reports whether the approach time is known.
func (a *Approach) TimeKnown() bool {
	return !a.Time.IsZero()
}

// Date returns the approach time truncated to its calendar date (midnight
// UTC). The zero time is returned unchanged for unknown approach times.
func (a *Approach) Date() time.Time {
	if a.Time.IsZero() {
		return time.Time{}
	}
	return time.Date(a.Time.Year(), a.Time.Month(), a.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// TimeString returns the approach time in the fixed output layout
// "2006-01-02 15:04" (minute precision; the source data carries no
// seconds). Unknown times format as the empty string.
func (a *Approach) TimeString() string {
	return FormatTime(a.Time)
}

// Record returns a dictionary-style serialization of the approach for
// structured output.
//
// Unknown values map to nil so the record stays encodable as JSON.
func (a *Approach) Record() map[string]any {
	var distance any
	if !math.IsNaN(a.Distance) {
		distance = a.Distance
	}
	var velocity any
	if !math.IsNaN(a.Velocity) {
		velocity = a.Velocity
	}
	return map[string]any{
		"datetime_utc":  a.TimeString(),
		"distance_au":   distance,
		"velocity_km_s": velocity,
	}
}

// String returns a one-line human-readable summary.
func (a *Approach) String() string {
	t := a.TimeString()
	if t == "" {
		t = "an unknown time"
	}
	return fmt.Sprintf("approach of %s at %s (distance=%.2f au, velocity=%.2f km/s)", a.Designation, t, a.Distance, a.Velocity)
}
