package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerOrdersQueryHandler_ReturnsHistoryNewestFirst(t *testing.T) {
	db := newSqliteDB(t)
	handler := queries.NewGetCustomerOrdersQueryHandler(db)

	customerID := uuid.New()
	partnerID := uuid.New()
	score := 4
	now := time.Now().UTC()

	rated := insertOrderRow(t, db, orderrepo.OrderDTO{
		CustomerID:  customerID,
		PartnerID:   &partnerID,
		Status:      int(order.Completed),
		Amount:      50,
		RatingScore: &score,
		CreatedAt:   now.Add(-time.Hour),
	})
	pending := insertOrderRow(t, db, orderrepo.OrderDTO{
		CustomerID: customerID,
		Status:     int(order.Pending),
		Amount:     30,
		CreatedAt:  now,
	})
	// another customer's order stays out of the history
	insertOrderRow(t, db, orderrepo.OrderDTO{
		Status:    int(order.Pending),
		CreatedAt: now,
	})

	requestingCustomer, err := kernel.UUIDFromBytes(customerID[:])
	require.NoError(t, err)
	query, err := queries.NewGetCustomerOrdersQuery(requestingCustomer)
	require.NoError(t, err)

	history, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, history, 2)

	assert.Equal(t, pending.ID.String(), history[0].ID.String())
	assert.Equal(t, "pending", history[0].Status)
	assert.Nil(t, history[0].PartnerID)
	assert.Nil(t, history[0].RatingScore)

	assert.Equal(t, rated.ID.String(), history[1].ID.String())
	assert.Equal(t, "completed", history[1].Status)
	require.NotNil(t, history[1].PartnerID)
	assert.Equal(t, partnerID.String(), history[1].PartnerID.String())
	require.NotNil(t, history[1].RatingScore)
	assert.Equal(t, 4, *history[1].RatingScore)
}

func TestGetCustomerOrdersQueryHandler_NoOrders(t *testing.T) {
	db := newSqliteDB(t)
	handler := queries.NewGetCustomerOrdersQueryHandler(db)

	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)

	history, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, history)
}
