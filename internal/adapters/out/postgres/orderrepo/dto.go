// Package orderrepo persists order aggregates. It maps between the domain
// aggregate and the relational row, including the nullable partner
// assignment and the nullable rating pair.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order. Status and partner
// are indexed because the admission check and the feed query filter on them.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	PartnerID     *uuid.UUID `gorm:"type:uuid;index"`
	PickupAreaID  uuid.UUID  `gorm:"type:uuid;index"`
	DropAreaID    uuid.UUID  `gorm:"type:uuid"`
	PickupAddress string
	DropAddress   string
	Status        int `gorm:"index"`
	Amount        float64
	Commission    float64
	RatingScore   *int
	RatingComment *string
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	var (
		ratingScore   *int
		ratingComment *string
	)
	if rating := aggregate.Rating(); rating != nil {
		score := rating.Score()
		comment := rating.Comment()
		ratingScore = &score
		ratingComment = &comment
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		PartnerID:     partnerID,
		PickupAreaID:  aggregate.PickupAreaID().Bytes(),
		DropAreaID:    aggregate.DropAreaID().Bytes(),
		PickupAddress: aggregate.PickupAddress(),
		DropAddress:   aggregate.DropAddress(),
		Status:        int(aggregate.Status()),
		Amount:        aggregate.Amount().Amount(),
		Commission:    aggregate.Commission().Amount(),
		RatingScore:   ratingScore,
		RatingComment: ratingComment,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	pickupAreaID, err := kernel.UUIDFromBytes(dto.PickupAreaID[:])
	if err != nil {
		return nil, err
	}
	dropAreaID, err := kernel.UUIDFromBytes(dto.DropAreaID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	commission, err := kernel.NewMoney(dto.Commission)
	if err != nil {
		return nil, err
	}

	var rating *order.Rating
	if dto.RatingScore != nil {
		comment := ""
		if dto.RatingComment != nil {
			comment = *dto.RatingComment
		}
		restored, ratingErr := order.NewRating(*dto.RatingScore, comment)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &restored
	}

	return order.RestoreOrder(id, customerID, partnerID, pickupAreaID, dropAreaID,
		dto.PickupAddress, dto.DropAddress, order.Status(dto.Status),
		amount, commission, rating, dto.CreatedAt)
}
