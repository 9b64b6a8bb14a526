package partnerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing partner. Select("*") writes every column so a
// partner going offline (a zero value) persists.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a partner by ID with a FOR UPDATE row lock. The
// accept command locks the partner before counting active orders; the
// complete transition locks it before crediting the wallet.
func (r *GormPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	return r.get(ctx, id, true)
}

func (r *GormPartnerRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto PartnerDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes the partner record.
func (r *GormPartnerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PartnerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", id.String())
	}

	return nil
}
