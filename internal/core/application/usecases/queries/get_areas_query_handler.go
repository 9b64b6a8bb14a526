package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAreasQueryHandler lists areas sorted by name.
type GetAreasQueryHandler struct {
	db *gorm.DB
}

// NewGetAreasQueryHandler creates a handler for area listing.
func NewGetAreasQueryHandler(db *gorm.DB) GetAreasQueryHandler {
	return GetAreasQueryHandler{db: db}
}

// Handle returns every area.
func (h GetAreasQueryHandler) Handle(
	ctx context.Context,
	query GetAreasQuery,
) ([]GetAreasQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	areas := make([]GetAreasQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM areas
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetAreasQueryResponse
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &resp.Name); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		areas = append(areas, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}
