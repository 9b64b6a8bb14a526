package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAreasQueryIsNotConstructed = errors.New(
		"GetAreasQuery must be created via NewGetAreasQuery constructor",
	)
)

// GetAreasQuery lists all areas. Parameterless; used by every dashboard to
// populate area pickers.
type GetAreasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAreasQuery creates the area listing query.
func NewGetAreasQuery() GetAreasQuery {
	return GetAreasQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAreasQuery) Validate() error {
	return q.guard.Validate(ErrGetAreasQueryIsNotConstructed)
}

// GetAreasQueryResponse is one area.
type GetAreasQueryResponse struct {
	ID   kernel.UUID
	Name string
}
