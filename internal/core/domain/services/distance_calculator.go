package services

import (
	"errors"
	"math"

	"tracking/internal/core/domain/model/kernel"
)

const (
	EarthRadiusKilometers = 6371.0
	EarthRadiusMeters     = EarthRadiusKilometers * 1000
)

// DistanceCalculator computes great-circle distances with the haversine
// formula on a spherical earth of radius EarthRadiusKilometers.
//
// The result is symmetric, never negative, and exactly zero for equal
// coordinates. Antipodal points are handled through atan2.
type DistanceCalculator struct{}

func NewDistanceCalculator() DistanceCalculator {
	return DistanceCalculator{}
}

// Distance returns the distance between a and b in the requested unit.
// Units other than kernel.Meters and kernel.Kilometers yield kernel.ErrInvalidUnit.
func (DistanceCalculator) Distance(a, b kernel.Coordinate, unit kernel.DistanceUnit) (float64, error) {
	if err := errors.Join(a.Validate(), b.Validate()); err != nil {
		return 0, err
	}

	switch unit {
	case kernel.Meters:
		return haversineMeters(a, b), nil
	case kernel.Kilometers:
		return haversineKilometers(a, b), nil
	default:
		return 0, unit.Validate()
	}
}

// TotalDistance sums the distances of consecutive waypoints. Order matters;
// fewer than two waypoints give 0.
func (c DistanceCalculator) TotalDistance(waypoints []kernel.Coordinate, unit kernel.DistanceUnit) (float64, error) {
	if err := unit.Validate(); err != nil {
		return 0, err
	}

	var total float64
	for i := 1; i < len(waypoints); i++ {
		d, err := c.Distance(waypoints[i-1], waypoints[i], unit)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

func haversineMeters(a, b kernel.Coordinate) float64 {
	return EarthRadiusMeters * centralAngle(a, b)
}

func haversineKilometers(a, b kernel.Coordinate) float64 {
	return EarthRadiusKilometers * centralAngle(a, b)
}

func centralAngle(a, b kernel.Coordinate) float64 {
	lat1 := toRadians(a.Latitude())
	lat2 := toRadians(b.Latitude())
	dLat := toRadians(b.Latitude() - a.Latitude())
	dLng := toRadians(b.Longitude() - a.Longitude())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push h slightly above 1 for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
