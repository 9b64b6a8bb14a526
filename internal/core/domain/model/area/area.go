// Package area contains the Area entity: a named geographic zone used as an
// endpoint of charge rules and orders. Areas are created by administrators
// and never deleted once referenced.
package area

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrAreaIsNotConstructed is returned when an Area instance was not created
// through NewArea or RestoreArea.
var ErrAreaIsNotConstructed = errors.New("Area must be created via NewArea or RestoreArea")

// Area is a named geographic zone. Names are unique platform-wide; the
// uniqueness is enforced by the store.
type Area struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewArea creates an area with a non-empty name.
func NewArea(id kernel.UUID, name string) (*Area, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Area{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreArea rebuilds an area from persistence.
func RestoreArea(id kernel.UUID, name string) (*Area, error) {
	return NewArea(id, name)
}

// Validate ensures the Area was built through a constructor.
func (a *Area) Validate() error {
	if a == nil {
		return ErrAreaIsNotConstructed
	}
	return a.guard.Validate(ErrAreaIsNotConstructed)
}

// ID returns the area identifier.
func (a *Area) ID() kernel.UUID { return a.id }

// Name returns the unique area name.
func (a *Area) Name() string { return a.name }
