package storerepo

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/store"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

type GormStoreRepository struct {
	db *gorm.DB
}

var _ ports.StoreRepository = (*GormStoreRepository)(nil)

func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// Add inserts the store. A taken name is reported as ports.ErrStoreAlreadyExists
// when the connection was opened with gorm's TranslateError.
func (r *GormStoreRepository) Add(ctx context.Context, s *store.Store) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %q", ports.ErrStoreAlreadyExists, s.Name())
		}
		return err
	}

	return nil
}

func (r *GormStoreRepository) ListAll(ctx context.Context) ([]*store.Store, error) {
	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Order("created_at, name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stores := make([]*store.Store, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, nil
}
