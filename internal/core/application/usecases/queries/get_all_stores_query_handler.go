package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllStoresQueryHandler reads the catalog with plain SQL in catalog order
// (created_at, then name, then id), the same order the geofence check uses.
//
// Example:
//
//	handler := NewGetAllStoresQueryHandler(db)
//	stores, err := handler.Handle(ctx, NewGetAllStoresQuery())
type GetAllStoresQueryHandler struct {
	db *gorm.DB
}

func NewGetAllStoresQueryHandler(db *gorm.DB) GetAllStoresQueryHandler {
	return GetAllStoresQueryHandler{db: db}
}

func (h GetAllStoresQueryHandler) Handle(
	ctx context.Context,
	query GetAllStoresQuery,
) ([]GetAllStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]GetAllStoresQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			latitude,
			longitude,
			created_at
		FROM stores
		ORDER BY created_at, name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s                   GetAllStoresQueryResponse
			id                  uuid.UUID
			latitude, longitude float64
			createdAt           time.Time
		)

		if err = rows.Scan(&id, &s.Name, &latitude, &longitude, &createdAt); err != nil {
			return nil, err
		}

		if s.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if s.Location, err = kernel.NewCoordinate(latitude, longitude); err != nil {
			return nil, err
		}
		s.CreatedAt = createdAt.UTC()

		stores = append(stores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
