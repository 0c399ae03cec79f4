package neodb

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup or single-result query matches
	// nothing.
	ErrNotFound = errors.New("not found")

	// ErrNilEntity is returned by New when an input slice contains a nil
	// object or approach.
	ErrNilEntity = errors.New("entity is nil")
)

// ErrDuplicateKey indicates that two NEOs share a primary designation or
// an IAU name. The catalog requires both to be unique.
type ErrDuplicateKey struct {
	Kind string // "designation" or "name"
	Key  string
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Kind, e.Key)
}
