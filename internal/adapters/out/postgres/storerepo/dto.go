package storerepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/store"

	"github.com/google/uuid"
)

type StoreDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string      `gorm:"type:text;not null;uniqueIndex:ux_stores_name"`
	Location  LocationDTO `gorm:"embedded"`
	CreatedAt time.Time   `gorm:"type:timestamptz;not null;autoCreateTime:false"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(s *store.Store) StoreDTO {
	return StoreDTO{
		ID:   s.ID().Google(),
		Name: s.Name(),
		Location: LocationDTO{
			Latitude:  s.Location().Latitude(),
			Longitude: s.Location().Longitude(),
		},
		CreatedAt: s.CreatedAt().UTC(),
	}
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewCoordinate(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, dto.Name, loc, dto.CreatedAt.UTC())
}
