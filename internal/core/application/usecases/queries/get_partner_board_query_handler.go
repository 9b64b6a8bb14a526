package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnerBoardQueryHandler retrieves a partner's in-progress orders.
type GetPartnerBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerBoardQueryHandler creates a handler for the partner board.
func NewGetPartnerBoardQueryHandler(db *gorm.DB) GetPartnerBoardQueryHandler {
	return GetPartnerBoardQueryHandler{db: db}
}

// Handle returns the partner's active orders, oldest first.
func (h GetPartnerBoardQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerBoardQuery,
) ([]GetPartnerBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetPartnerBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, status, pickup_address, drop_address, amount, commission
		FROM orders
		WHERE partner_id = ? AND status IN (?, ?, ?)
		ORDER BY created_at
	`, query.PartnerID().Bytes(), order.Accepted, order.PickedUp, order.Arrived).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp   GetPartnerBoardQueryResponse
			id     uuid.UUID
			status int
		)
		err = rows.Scan(&id, &status,
			&resp.PickupAddress, &resp.DropAddress, &resp.Amount, &resp.Commission)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()
		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
