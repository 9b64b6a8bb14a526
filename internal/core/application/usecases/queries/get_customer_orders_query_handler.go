package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's full order history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer history.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, partner_id, status, pickup_address, drop_address, amount, rating_score, created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetCustomerOrdersQueryResponse
			id          uuid.UUID
			partnerID   uuid.NullUUID
			status      int
			ratingScore sql.NullInt64
		)
		err = rows.Scan(&id, &partnerID, &status,
			&resp.PickupAddress, &resp.DropAddress, &resp.Amount, &ratingScore, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if partnerID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.PartnerID = &assigned
		}
		if ratingScore.Valid {
			score := int(ratingScore.Int64)
			resp.RatingScore = &score
		}
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
