package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository is the persistence contract for partner aggregates.
type PartnerRepository interface {
	// Add persists a new partner registration.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner by id.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetForUpdate retrieves a partner by id and locks the row for the rest
	// of the transaction. The accept command locks the partner before
	// counting active orders so that two concurrent accepts by the same
	// partner serialize; the complete transition locks it before crediting
	// the wallet.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// Remove deletes the partner record. Used by the administrator removal
	// operation only.
	Remove(ctx context.Context, id kernel.UUID) error
}
