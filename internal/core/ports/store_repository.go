// Package ports defines the contracts between the tracking core and its adapters.
// Adapters implement them; the application layer depends only on these interfaces.
package ports

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/store"
)

// ErrStoreAlreadyExists is returned by StoreRepository.Add for a taken store name.
var ErrStoreAlreadyExists = errors.New("store already exists")

// StoreRepository persists the store catalog.
type StoreRepository interface {
	// Add persists a new store. Names are unique; adding a duplicate fails.
	Add(ctx context.Context, s *store.Store) error

	// ListAll returns every store in catalog order (creation time, then name).
	// The order is significant: the geofence check matches the first store
	// within the radius.
	ListAll(ctx context.Context) ([]*store.Store, error)
}

// StoreCatalog serves the store list the geofence check runs against.
// It may be a cached view of StoreRepository.
type StoreCatalog interface {
	ListAllStores(ctx context.Context) ([]*store.Store, error)
}
