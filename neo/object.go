package neo

import (
	"fmt"
	"math"
)

// Object is a near-Earth object (NEO).
//
// The primary designation is required and unique across a dataset. The IAU
// name is optional ("" means unnamed) and unique among named objects. The
// diameter is given in kilometers, with NaN as the "unknown" sentinel.
type Object struct {
	// Designation is the primary designation, e.g. "433" or "2020 AB".
	Designation string

	// Name is the IAU name, e.g. "Eros". Empty means unnamed.
	Name string

	// Diameter is the diameter in kilometers. NaN means unknown.
	Diameter float64

	// Hazardous reports whether the object is classified as potentially
	// hazardous.
	Hazardous bool
}

// NewObject creates a validated Object.
//
// Pass math.NaN() for an unknown diameter and "" for an unnamed object.
func NewObject(designation, name string, diameter float64, hazardous bool) (*Object, error) {
	o := &Object{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the field invariants.
//
// It exists separately from NewObject so that a Catalog can re-check
// hand-built literals before indexing them.
func (o *Object) Validate() error {
	if o.Designation == "" {
		return &FieldError{Entity: "Object", Field: "designation", Reason: "must not be empty"}
	}
	if !math.IsNaN(o.Diameter) && o.Diameter < 0 {
		return &FieldError{Entity: "Object", Field: "diameter", Reason: fmt.Sprintf("must be non-negative, got %v", o.Diameter)}
	}
	return nil
}

// HasName reports whether the object has an IAU name.
func (o *Object) HasName() bool {
	return o.Name != ""
}

// DiameterKnown reports whether the diameter has been measured.
func (o *Object) DiameterKnown() bool {
	return !math.IsNaN(o.Diameter)
}

// FullName returns the designation with the name in parentheses, or the
// bare designation for unnamed objects: "433 (Eros)" or "2020 AB".
func (o *Object) FullName() string {
	if o.Name == "" {
		return o.Designation
	}
	return fmt.Sprintf("%s (%s)", o.Designation, o.Name)
}

// Record returns a dictionary-style serialization of the object for
// structured output.
//
// Unknown values map to nil so the record stays encodable as JSON (NaN is
// not valid JSON).
func (o *Object) Record() map[string]any {
	var name any
	if o.Name != "" {
		name = o.Name
	}
	var diameter any
	if !math.IsNaN(o.Diameter) {
		diameter = o.Diameter
	}
	return map[string]any{
		"designation":           o.Designation,
		"name":                  name,
		"diameter_km":           diameter,
		"potentially_hazardous": o.Hazardous,
	}
}

// String returns a one-line human-readable summary.
func (o *Object) String() string {
	diameter := "unknown"
	if !math.IsNaN(o.Diameter) {
		diameter = fmt.Sprintf("%.3f km", o.Diameter)
	}
	return fmt.Sprintf("NEO %s (diameter=%s, hazardous=%t)", o.FullName(), diameter, o.Hazardous)
}
