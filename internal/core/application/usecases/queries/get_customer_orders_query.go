package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves every order a customer has placed, newest
// first, for the customer dashboard.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates the query for one customer's history.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

// GetCustomerOrdersQueryResponse is one order in the customer's history.
// PartnerID is nil while the order is pending; RatingScore is nil until the
// customer rates the completed order.
type GetCustomerOrdersQueryResponse struct {
	ID            kernel.UUID
	PartnerID     *kernel.UUID
	Status        string
	PickupAddress string
	DropAddress   string
	Amount        float64
	RatingScore   *int
	CreatedAt     time.Time
}
