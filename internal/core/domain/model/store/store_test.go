package store_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/store"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinate(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return c
}

func TestNewStore(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	location := mustCoordinate(t, 40.9923307, 29.1244229)

	t.Run("valid store", func(t *testing.T) {
		s, err := store.NewStore("  Ataşehir MMM Migros ", location, createdAt)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		require.NoError(t, s.ID().Validate())
		assert.Equal(t, "Ataşehir MMM Migros", s.Name())
		assert.Equal(t, location, s.Location())
		assert.Equal(t, createdAt, s.CreatedAt())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := store.NewStore("   ", location, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("zero location and created at", func(t *testing.T) {
		_, err := store.NewStore("Novada MMM Migros", kernel.Coordinate{}, time.Time{})

		require.ErrorIs(t, err, kernel.ErrCoordinateIsNotConstructed)
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestRestoreStore(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	s, err := store.RestoreStore(id, "Ortaköy MMM Migros", mustCoordinate(t, 41.055783, 29.0210292), createdAt)
	require.NoError(t, err)

	other, err := store.RestoreStore(id, "renamed", mustCoordinate(t, 41, 29), createdAt)
	require.NoError(t, err)

	assert.True(t, s.IsEqual(other))
	assert.False(t, s.IsEqual(nil))

	_, err = store.RestoreStore(kernel.UUID{}, "x", mustCoordinate(t, 41, 29), createdAt)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestStore_ValidateZeroValue(t *testing.T) {
	var s *store.Store
	require.ErrorIs(t, s.Validate(), store.ErrStoreIsNotConstructed)

	require.ErrorIs(t, (&store.Store{}).Validate(), store.ErrStoreIsNotConstructed)
}
