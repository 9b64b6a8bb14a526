// Package guard provides the ConstructorGuard helper used by domain objects,
// commands and queries to detect instances that bypassed their constructor.
package guard

import "errors"

// ErrNotConstructed is the fallback error returned by Validate when the caller
// does not supply its own sentinel.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been built through its designated
// constructor. Embedding a guard and checking it in Validate prevents zero-value
// instances from slipping into handlers and repositories.
//
// The zero value of ConstructorGuard is "not constructed"; only
// NewConstructorGuard produces a passing guard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard that passes validation. Call it from the
// owning type's constructor and nowhere else.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the owning object was properly constructed.
// Otherwise it returns validationError, or ErrNotConstructed when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrNotConstructed
	}
	if !g.constructed {
		return validationError
	}
	return nil
}
