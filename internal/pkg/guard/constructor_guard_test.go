package guard_test

import (
	"errors"
	"sync"
	"testing"

	"tracking/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("store must be created via NewStore")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type waypoint struct {
		lat, lng float64
		guard    guard.ConstructorGuard
	}
	errWaypoint := errors.New("waypoint must be created via newWaypoint")
	newWaypoint := func(lat, lng float64) waypoint {
		return waypoint{lat: lat, lng: lng, guard: guard.NewConstructorGuard()}
	}

	built := newWaypoint(40.0, 29.0)
	copied := built

	require.NoError(t, built.guard.Validate(errWaypoint))
	require.NoError(t, copied.guard.Validate(errWaypoint))
	require.ErrorIs(t, waypoint{lat: 40.0}.guard.Validate(errWaypoint), errWaypoint)
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	for range b.N {
		_ = g.Validate(err)
	}
}
