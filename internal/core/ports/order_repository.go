// Package ports defines the persistence contracts between the core and the
// store adapters. Repositories obtained from a UnitOfWork run inside that
// unit's transaction; the ForUpdate variants additionally take row-level
// locks so check-then-write sequences serialize across processes.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id and locks its row for the rest of
	// the transaction. Concurrent accept and advance attempts on the same
	// order queue up behind this lock, which is what makes the status
	// check-then-write atomic.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountActiveByPartner returns how many orders in an active status
	// (accepted, picked_up, arrived) the partner currently holds. Called
	// inside the accept transaction after the partner row is locked.
	CountActiveByPartner(ctx context.Context, partnerID kernel.UUID) (int64, error)
}
