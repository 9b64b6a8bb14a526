package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler builds a partner's feed of acceptable
// orders.
//
// Example:
//
//	handler := NewGetAvailableOrdersQueryHandler(db)
//	query, _ := NewGetAvailableOrdersQuery(partnerID)
//
//	feed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders available\n", len(feed))
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the partner feed.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns the pending orders in the partner's current area, or an
// empty slice when the partner is not eligible to take work.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	feed := make([]GetAvailableOrdersQueryResponse, 0)

	var (
		status        int
		online        bool
		currentAreaID uuid.NullUUID
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT status, online, current_area_id
		FROM partners
		WHERE id = ?
	`, query.PartnerID().Bytes()).Row()
	if err := row.Scan(&status, &online, &currentAreaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("partner", query.PartnerID())
		}
		return nil, err
	}

	if partner.Status(status) != partner.StatusActive || !online || !currentAreaID.Valid {
		return feed, nil
	}

	var activeCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE partner_id = ? AND status IN (?, ?, ?)
	`, query.PartnerID().Bytes(), order.Accepted, order.PickedUp, order.Arrived).
		Row().Scan(&activeCount)
	if err != nil {
		return nil, err
	}
	if activeCount > 0 {
		return feed, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, pickup_area_id, drop_area_id, pickup_address, drop_address, amount, created_at
		FROM orders
		WHERE status = ? AND pickup_area_id = ?
		ORDER BY created_at
	`, order.Pending, currentAreaID.UUID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                 GetAvailableOrdersQueryResponse
			id, pickupID, dropID uuid.UUID
		)
		err = rows.Scan(&id, &pickupID, &dropID,
			&resp.PickupAddress, &resp.DropAddress, &resp.Amount, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.PickupAreaID, err = kernel.UUIDFromBytes(pickupID[:]); err != nil {
			return nil, err
		}
		if resp.DropAreaID, err = kernel.UUIDFromBytes(dropID[:]); err != nil {
			return nil, err
		}
		feed = append(feed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feed, nil
}
