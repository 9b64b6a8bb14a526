package ports

import (
	"context"

	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
)

// AreaRepository is the persistence contract for areas.
type AreaRepository interface {
	// Add persists a new area. Fails with a value-is-invalid error when the
	// name is already taken.
	Add(ctx context.Context, aggregate *area.Area) error

	// Get retrieves an area by id.
	Get(ctx context.Context, id kernel.UUID) (*area.Area, error)

	// GetByName retrieves an area by its unique name. Used by seeding.
	GetByName(ctx context.Context, name string) (*area.Area, error)
}
