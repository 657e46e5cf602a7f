package kernel_test

import (
	"math"
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
		errParam  string
	}{
		{name: "store location", latitude: 40.9923307, longitude: 29.1244229},
		{name: "origin", latitude: 0, longitude: 0},
		{name: "min bounds", latitude: kernel.MinLatitude, longitude: kernel.MinLongitude},
		{name: "max bounds", latitude: kernel.MaxLatitude, longitude: kernel.MaxLongitude},
		{name: "latitude too small", latitude: -90.0001, longitude: 29, wantErr: true, errParam: "latitude"},
		{name: "latitude too large", latitude: 90.0001, longitude: 29, wantErr: true, errParam: "latitude"},
		{name: "longitude too small", latitude: 40, longitude: -180.5, wantErr: true, errParam: "longitude"},
		{name: "longitude too large", latitude: 40, longitude: 181, wantErr: true, errParam: "longitude"},
		{name: "latitude is NaN", latitude: math.NaN(), longitude: 29, wantErr: true, errParam: "latitude"},
		{name: "longitude is infinite", latitude: 40, longitude: math.Inf(1), wantErr: true, errParam: "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := kernel.NewCoordinate(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Contains(t, err.Error(), tt.errParam)
				require.ErrorIs(t, c.Validate(), kernel.ErrCoordinateIsNotConstructed)
				return
			}

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.InDelta(t, tt.latitude, c.Latitude(), 0)
			assert.InDelta(t, tt.longitude, c.Longitude(), 0)
		})
	}
}

func TestNewCoordinate_ReportsBothViolations(t *testing.T) {
	_, err := kernel.NewCoordinate(100, 200)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
}

func TestCoordinate_IsEqual(t *testing.T) {
	a, err := kernel.NewCoordinate(40.0, 29.0)
	require.NoError(t, err)
	b, err := kernel.NewCoordinate(40.0, 29.0)
	require.NoError(t, err)
	c, err := kernel.NewCoordinate(40.0, 29.001)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Coordinate{})
	require.ErrorIs(t, err, kernel.ErrCoordinateIsNotConstructed)
}

func TestCoordinate_String(t *testing.T) {
	c, err := kernel.NewCoordinate(40.5, 29.25)
	require.NoError(t, err)

	assert.Equal(t, "Coordinate(40.5,29.25)", c.String())
}
