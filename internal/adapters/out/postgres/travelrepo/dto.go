package travelrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/travel"

	"github.com/google/uuid"
)

type TravelRecordDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CourierID  string      `gorm:"type:text;not null;index:ix_travel_records_courier_store_time,priority:1;index:ix_travel_records_courier_time,priority:1"`
	StoreName  string      `gorm:"type:text;not null;index:ix_travel_records_courier_store_time,priority:2"`
	Location   LocationDTO `gorm:"embedded"`
	RecordedAt time.Time   `gorm:"type:timestamptz;not null;index:ix_travel_records_courier_store_time,priority:3;index:ix_travel_records_courier_time,priority:2"`
}

func (TravelRecordDTO) TableName() string {
	return "travel_records"
}

type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(r *travel.Record) TravelRecordDTO {
	return TravelRecordDTO{
		ID:        r.ID().Google(),
		CourierID: r.CourierID(),
		StoreName: r.StoreName(),
		Location: LocationDTO{
			Latitude:  r.Location().Latitude(),
			Longitude: r.Location().Longitude(),
		},
		RecordedAt: r.Timestamp().UTC(),
	}
}

func toDomain(dto TravelRecordDTO) (*travel.Record, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewCoordinate(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return travel.RestoreRecord(id, dto.CourierID, loc, dto.StoreName, dto.RecordedAt.UTC())
}

func toDomainList(dtos []TravelRecordDTO) ([]*travel.Record, error) {
	records := make([]*travel.Record, 0, len(dtos))
	for _, dto := range dtos {
		r, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
