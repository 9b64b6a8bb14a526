package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetPlatformStatsQueryIsNotConstructed = errors.New(
		"GetPlatformStatsQuery must be created via NewGetPlatformStatsQuery constructor",
	)
)

// GetPlatformStatsQuery aggregates platform-wide numbers for the admin
// dashboard and the periodic settlement report: order counts, the commission
// the platform has earned on completed orders, and per-partner rating
// averages.
type GetPlatformStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlatformStatsQuery creates the stats query.
func NewGetPlatformStatsQuery() GetPlatformStatsQuery {
	return GetPlatformStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPlatformStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformStatsQueryIsNotConstructed)
}

// PartnerRatingStat is one partner's rating summary. AverageRating is zero
// when the partner has no rated orders; RatedOrders disambiguates.
type PartnerRatingStat struct {
	PartnerID     kernel.UUID
	Name          string
	AverageRating float64
	RatedOrders   int64
}

// GetPlatformStatsQueryResponse is the aggregated platform view. Commission
// counts completed orders only; money on orders still in flight is not
// earned yet.
type GetPlatformStatsQueryResponse struct {
	TotalOrders      int64
	CompletedOrders  int64
	CommissionEarned float64
	PartnerRatings   []PartnerRatingStat
}
