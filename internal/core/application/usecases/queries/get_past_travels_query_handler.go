package queries

import (
	"context"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPastTravelsQueryHandler reads a courier's history straight from the
// travel_records table. A courier without records is reported as ErrCourierNotFound.
type GetPastTravelsQueryHandler struct {
	db *gorm.DB
}

func NewGetPastTravelsQueryHandler(db *gorm.DB) GetPastTravelsQueryHandler {
	return GetPastTravelsQueryHandler{db: db}
}

func (h GetPastTravelsQueryHandler) Handle(ctx context.Context, query GetPastTravelsQuery) ([]TravelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			store_name,
			latitude,
			longitude,
			recorded_at
		FROM travel_records
		WHERE courier_id = ?
		ORDER BY recorded_at, id
	`, query.CourierID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	travels := make([]TravelResponse, 0)
	for rows.Next() {
		var (
			tr                  TravelResponse
			id                  uuid.UUID
			latitude, longitude float64
			recordedAt          time.Time
		)

		if err = rows.Scan(&id, &tr.CourierID, &tr.StoreName, &latitude, &longitude, &recordedAt); err != nil {
			return nil, err
		}

		if tr.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if tr.Location, err = kernel.NewCoordinate(latitude, longitude); err != nil {
			return nil, err
		}
		tr.Timestamp = recordedAt.UTC()

		travels = append(travels, tr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(travels) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrCourierNotFound, errs.NewObjectNotFoundError("courierId", query.CourierID()))
	}

	return travels, nil
}
