// Package queries contains the read side of the tracking service.
// Queries return read models and never change state.
package queries

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/domain/model/travel"
)

var (
	// ErrCourierNotFound is returned when a courier has no travel history at all.
	ErrCourierNotFound = errors.New("courier not found")
	// ErrNoTravelHistory is returned when a filtered history lookup is empty.
	ErrNoTravelHistory = errors.New("no travel history")
)

// TravelHistoryReader is the subset of the travel record repository the read
// side needs.
type TravelHistoryReader interface {
	FindByCourier(ctx context.Context, courierID string) ([]*travel.Record, error)
	FindByCourierStoreAndRange(ctx context.Context, courierID, storeName string, start, end time.Time) ([]*travel.Record, error)
}
