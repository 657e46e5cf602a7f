package travelrepo

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// lockKeySeparator joins courier and store into one advisory lock key.
const lockKeySeparator = "|"

type GormTravelRecordRepository struct {
	db *gorm.DB
}

var _ ports.TravelRecordRepository = (*GormTravelRecordRepository)(nil)

func NewGormTravelRecordRepository(db *gorm.DB) *GormTravelRecordRepository {
	return &GormTravelRecordRepository{db: db}
}

func (r *GormTravelRecordRepository) Append(ctx context.Context, record *travel.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTravelRecordRepository) FindRecent(
	ctx context.Context,
	courierID, storeName string,
	windowStart, windowEnd time.Time,
) (*travel.Record, error) {
	var dtos []TravelRecordDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND store_name = ? AND recorded_at >= ? AND recorded_at <= ?",
			courierID, storeName, windowStart.UTC(), windowEnd.UTC()).
		Order("recorded_at DESC").
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil
	}

	return toDomain(dtos[0])
}

func (r *GormTravelRecordRepository) FindByCourier(ctx context.Context, courierID string) ([]*travel.Record, error) {
	var dtos []TravelRecordDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID).
		Order("recorded_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormTravelRecordRepository) FindByCourierStoreAndRange(
	ctx context.Context,
	courierID, storeName string,
	start, end time.Time,
) ([]*travel.Record, error) {
	var dtos []TravelRecordDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND store_name = ? AND recorded_at >= ? AND recorded_at <= ?",
			courierID, storeName, start.UTC(), end.UTC()).
		Order("recorded_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// LockCourierStore takes a transaction-scoped advisory lock. Outside a
// transaction the lock is released as soon as the statement finishes.
func (r *GormTravelRecordRepository) LockCourierStore(ctx context.Context, courierID, storeName string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", courierID+lockKeySeparator+storeName).
		Error
}
