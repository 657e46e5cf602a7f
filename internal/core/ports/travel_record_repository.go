package ports

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/travel"
)

// TravelRecordRepository is the append-only log of accepted store entries.
type TravelRecordRepository interface {
	// Append persists an accepted record. Records are never updated.
	Append(ctx context.Context, r *travel.Record) error

	// FindRecent returns the latest record of courierID at storeName with a
	// timestamp in [windowStart, windowEnd], or nil when there is none.
	FindRecent(ctx context.Context, courierID, storeName string, windowStart, windowEnd time.Time) (*travel.Record, error)

	// FindByCourier returns all records of a courier ordered by timestamp ascending.
	FindByCourier(ctx context.Context, courierID string) ([]*travel.Record, error)

	// FindByCourierStoreAndRange returns the records of courierID at storeName
	// with start <= timestamp <= end, newest first.
	FindByCourierStoreAndRange(ctx context.Context, courierID, storeName string, start, end time.Time) ([]*travel.Record, error)

	// LockCourierStore serializes writers for one (courier, store) pair until
	// the surrounding transaction ends.
	LockCourierStore(ctx context.Context, courierID, storeName string) error
}
