package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetPartnerBoardQueryIsNotConstructed = errors.New(
		"GetPartnerBoardQuery must be created via NewGetPartnerBoardQuery constructor",
	)
)

// GetPartnerBoardQuery retrieves the orders a partner is currently working:
// everything assigned to them that has not completed yet. With the
// single-active-order rule this is at most one row, but the query does not
// assume it.
type GetPartnerBoardQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerBoardQuery creates the query for one partner's board.
func NewGetPartnerBoardQuery(partnerID kernel.UUID) (GetPartnerBoardQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerBoardQuery{}, err
	}
	return GetPartnerBoardQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerBoardQueryIsNotConstructed)
}

// PartnerID returns the partner whose board is requested.
func (q GetPartnerBoardQuery) PartnerID() kernel.UUID { return q.partnerID }

// GetPartnerBoardQueryResponse is one in-progress order on the board.
type GetPartnerBoardQueryResponse struct {
	ID            kernel.UUID
	Status        string
	PickupAddress string
	DropAddress   string
	Amount        float64
	Commission    float64
}
