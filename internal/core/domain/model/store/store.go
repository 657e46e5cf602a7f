package store

import (
	"errors"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrStoreIsNotConstructed is returned when a Store was not created via NewStore or RestoreStore.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore constructor")

// Store is a physical location couriers enter and leave.
//
// Invariants:
//   - id is a valid UUID
//   - name is non-empty after trimming and unique across the catalog
//   - location is a constructed Coordinate
//   - createdAt is set; pings older than it are never attributed to the store
type Store struct {
	id        kernel.UUID
	name      string
	location  kernel.Coordinate
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewStore provisions a store with a fresh identifier.
//
// Example:
//
//	loc, _ := kernel.NewCoordinate(40.9923307, 29.1244229)
//	s, err := store.NewStore("Ataşehir MMM Migros", loc, time.Now())
func NewStore(name string, location kernel.Coordinate, createdAt time.Time) (*Store, error) {
	return RestoreStore(kernel.NewUUID(), name, location, createdAt)
}

// RestoreStore rebuilds a store from persistence.
func RestoreStore(id kernel.UUID, name string, location kernel.Coordinate, createdAt time.Time) (*Store, error) {
	s := &Store{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setLocation(location),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// IsEqual compares stores by identity.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Location() kernel.Coordinate {
	return s.location
}

func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Store) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *Store) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}
