package filter

import (
	"fmt"
	"time"
)

// Kind identifies the type stored in a Value.
type Kind uint8

const (
	// KindInvalid is the zero Kind. Invalid values compare false against
	// everything, including other invalid values; they stand in for
	// attributes that could not be read (unknown time, unresolved NEO).
	KindInvalid Kind = iota
	// KindDate holds a calendar date (a time truncated to midnight UTC).
	KindDate
	// KindFloat holds a float64.
	KindFloat
	// KindBool holds a bool.
	KindBool
)

// Value is a typed comparison operand. The zero Value is invalid.
type Value struct {
	Kind Kind
	T    time.Time
	F64  float64
	B    bool
}

// Date creates a calendar-date value. The time is truncated to midnight
// UTC so that any two moments on the same UTC day compare equal.
func Date(t time.Time) Value {
	u := t.UTC()
	return Value{Kind: KindDate, T: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// Float creates a float value.
func Float(v float64) Value {
	return Value{Kind: KindFloat, F64: v}
}

// Bool creates a bool value.
func Bool(v bool) Value {
	return Value{Kind: KindBool, B: v}
}

// AsDate returns the date value and whether the Value holds one.
func (v Value) AsDate() (time.Time, bool) {
	if v.Kind != KindDate {
		return time.Time{}, false
	}
	return v.T, true
}

// AsFloat64 returns the float value and whether the Value holds one.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsBool returns the bool value and whether the Value holds one.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.Kind {
	case KindDate:
		return v.T.Format("2006-01-02")
	case KindFloat:
		return fmt.Sprintf("%g", v.F64)
	case KindBool:
		return fmt.Sprintf("%t", v.B)
	default:
		return "<invalid>"
	}
}

// compareEqual reports a == b. Values of different kinds, invalid values
// and NaN floats never compare equal.
func compareEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindDate:
		return a.T.Equal(b.T)
	case KindFloat:
		return a.F64 == b.F64
	case KindBool:
		return a.B == b.B
	default:
		return false
	}
}

// compareLess reports a < b for ordered kinds. Bools and invalid values
// have no order; NaN floats compare false.
func compareLess(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindDate:
		return a.T.Before(b.T)
	case KindFloat:
		return a.F64 < b.F64
	default:
		return false
	}
}

// compareGreater reports a > b for ordered kinds.
func compareGreater(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindDate:
		return a.T.After(b.T)
	case KindFloat:
		return a.F64 > b.F64
	default:
		return false
	}
}
