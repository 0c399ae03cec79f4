package filter

import "time"

// Criteria is a bag of optional query bounds, typically collected from
// user input. A nil field means the criterion was not supplied and
// produces no filter.
//
// All bounds are inclusive. Date restricts matches to approaches on
// exactly that UTC calendar date; StartDate and EndDate bound the date
// range. Supplying Date together with a range is allowed, the results
// then satisfy both.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	DistanceMin *float64
	DistanceMax *float64

	VelocityMin *float64
	VelocityMax *float64

	DiameterMin *float64
	DiameterMax *float64

	Hazardous *bool
}

// Compile turns the supplied criteria into a filter set. Criteria left
// nil contribute nothing; an entirely empty Criteria compiles to an
// empty set that matches every event.
func (c Criteria) Compile() *Set {
	s := &Set{}

	if c.Date != nil {
		s.Filters = append(s.Filters, OnDate(*c.Date))
	}
	if c.StartDate != nil {
		s.Filters = append(s.Filters, StartDate(*c.StartDate))
	}
	if c.EndDate != nil {
		s.Filters = append(s.Filters, EndDate(*c.EndDate))
	}
	if c.DistanceMin != nil {
		s.Filters = append(s.Filters, MinDistance(*c.DistanceMin))
	}
	if c.DistanceMax != nil {
		s.Filters = append(s.Filters, MaxDistance(*c.DistanceMax))
	}
	if c.VelocityMin != nil {
		s.Filters = append(s.Filters, MinVelocity(*c.VelocityMin))
	}
	if c.VelocityMax != nil {
		s.Filters = append(s.Filters, MaxVelocity(*c.VelocityMax))
	}
	if c.DiameterMin != nil {
		s.Filters = append(s.Filters, MinDiameter(*c.DiameterMin))
	}
	if c.DiameterMax != nil {
		s.Filters = append(s.Filters, MaxDiameter(*c.DiameterMax))
	}
	if c.Hazardous != nil {
		s.Filters = append(s.Filters, IsHazardous(*c.Hazardous))
	}

	return s
}

// OnDate matches approaches on exactly the given UTC calendar date.
func OnDate(t time.Time) Filter {
	return Filter{Attribute: AttrDate, Operator: OpEqual, Value: Date(t)}
}

// StartDate matches approaches on or after the given UTC calendar date.
func StartDate(t time.Time) Filter {
	return Filter{Attribute: AttrDate, Operator: OpGreaterEqual, Value: Date(t)}
}

// EndDate matches approaches on or before the given UTC calendar date.
func EndDate(t time.Time) Filter {
	return Filter{Attribute: AttrDate, Operator: OpLessEqual, Value: Date(t)}
}

// MinDistance matches approaches at or beyond the given distance in au.
func MinDistance(au float64) Filter {
	return Filter{Attribute: AttrDistance, Operator: OpGreaterEqual, Value: Float(au)}
}

// MaxDistance matches approaches at or within the given distance in au.
func MaxDistance(au float64) Filter {
	return Filter{Attribute: AttrDistance, Operator: OpLessEqual, Value: Float(au)}
}

// MinVelocity matches approaches at or above the given velocity in km/s.
func MinVelocity(kms float64) Filter {
	return Filter{Attribute: AttrVelocity, Operator: OpGreaterEqual, Value: Float(kms)}
}

// MaxVelocity matches approaches at or below the given velocity in km/s.
func MaxVelocity(kms float64) Filter {
	return Filter{Attribute: AttrVelocity, Operator: OpLessEqual, Value: Float(kms)}
}

// MinDiameter matches approaches of NEOs at least the given diameter in
// km.
func MinDiameter(km float64) Filter {
	return Filter{Attribute: AttrDiameter, Operator: OpGreaterEqual, Value: Float(km)}
}

// MaxDiameter matches approaches of NEOs at most the given diameter in
// km.
func MaxDiameter(km float64) Filter {
	return Filter{Attribute: AttrDiameter, Operator: OpLessEqual, Value: Float(km)}
}

// IsHazardous matches approaches of NEOs whose hazardous flag equals the
// given value.
func IsHazardous(hazardous bool) Filter {
	return Filter{Attribute: AttrHazardous, Operator: OpEqual, Value: Bool(hazardous)}
}
