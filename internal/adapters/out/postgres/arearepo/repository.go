package arearepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for unique constraint hits.
const pgUniqueViolation = "23505"

// GormAreaRepository implements ports.AreaRepository using GORM.
type GormAreaRepository struct {
	db *gorm.DB
}

// NewGormAreaRepository creates a new GORM area repository.
func NewGormAreaRepository(db *gorm.DB) *GormAreaRepository {
	return &GormAreaRepository{db: db}
}

// Add saves a new area. A duplicate name hits the unique index and is
// reported as a value-is-invalid error rather than a bare driver error.
func (r *GormAreaRepository) Add(ctx context.Context, aggregate *area.Area) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("name", err)
		}
		return err
	}

	return nil
}

// isUniqueViolation reports whether err is a unique index hit. The postgres
// driver rides on pgx, so constraint failures arrive as *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Get retrieves an area by ID.
func (r *GormAreaRepository) Get(ctx context.Context, id kernel.UUID) (*area.Area, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("area", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves an area by its unique name.
func (r *GormAreaRepository) GetByName(ctx context.Context, name string) (*area.Area, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto AreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("area", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
