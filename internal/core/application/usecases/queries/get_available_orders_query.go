// Package queries contains the read side of the dispatch core. Handlers run
// raw SQL against the store and return flat read models; they never load
// aggregates and never write.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the pending orders a partner can accept
// right now: orders whose pickup area matches the partner's current area.
//
// The feed is empty unless the partner is approved, online and idle. This is
// a presentation gate only; the accept command re-checks everything inside
// its transaction, so a stale feed can never produce an invalid accept.
type GetAvailableOrdersQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates the query for one partner's feed.
func NewGetAvailableOrdersQuery(partnerID kernel.UUID) (GetAvailableOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}
	return GetAvailableOrdersQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// PartnerID returns the partner whose feed is requested.
func (q GetAvailableOrdersQuery) PartnerID() kernel.UUID { return q.partnerID }

// GetAvailableOrdersQueryResponse is one acceptable order in the feed.
type GetAvailableOrdersQueryResponse struct {
	ID            kernel.UUID
	PickupAreaID  kernel.UUID
	DropAreaID    kernel.UUID
	PickupAddress string
	DropAddress   string
	Amount        float64
	CreatedAt     time.Time
}
