package neo

import "fmt"

// FieldError reports a single invalid entity field.
//
// Construction validates eagerly: rather than admitting an entity with a
// wrong-shaped attribute, constructors fail with a FieldError naming the
// exact field.
type FieldError struct {
	Entity string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("neo: invalid %s field %q: %s", e.Entity, e.Field, e.Reason)
}
