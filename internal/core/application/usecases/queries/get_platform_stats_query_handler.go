package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPlatformStatsQueryHandler computes platform aggregates with two scans:
// one over orders, one joining partners to their rated orders.
type GetPlatformStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPlatformStatsQueryHandler creates a handler for platform stats.
func NewGetPlatformStatsQueryHandler(db *gorm.DB) GetPlatformStatsQueryHandler {
	return GetPlatformStatsQueryHandler{db: db}
}

// Handle returns the aggregated platform view.
func (h GetPlatformStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPlatformStatsQuery,
) (GetPlatformStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	var resp GetPlatformStatsQueryResponse

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN commission ELSE 0 END), 0)
		FROM orders
	`, order.Completed, order.Completed).
		Row().Scan(&resp.TotalOrders, &resp.CompletedOrders, &resp.CommissionEarned)
	if err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	resp.PartnerRatings = make([]PartnerRatingStat, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, AVG(o.rating_score), COUNT(o.rating_score)
		FROM partners p
		LEFT JOIN orders o ON o.partner_id = p.id AND o.rating_score IS NOT NULL
		GROUP BY p.id, p.name
		ORDER BY p.name
	`).Rows()
	if err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stat    PartnerRatingStat
			id      uuid.UUID
			average sql.NullFloat64
		)
		if err = rows.Scan(&id, &stat.Name, &average, &stat.RatedOrders); err != nil {
			return GetPlatformStatsQueryResponse{}, err
		}
		if stat.PartnerID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetPlatformStatsQueryResponse{}, err
		}
		if average.Valid {
			stat.AverageRating = average.Float64
		}
		resp.PartnerRatings = append(resp.PartnerRatings, stat)
	}

	if err = rows.Err(); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	return resp, nil
}
