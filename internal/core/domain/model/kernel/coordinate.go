package kernel

import (
	"errors"
	"fmt"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrCoordinateIsNotConstructed is returned when a zero Coordinate is used.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate")

// Coordinate is a geographic point in decimal degrees (WGS84).
//
// Latitude is bounded to [-90, 90] and longitude to [-180, 180]; NaN and
// infinities are rejected. Two coordinates are equal when both components are
// equal, which is what the distance calculation relies on to return exactly 0.
//
// Example:
//
//	c, err := kernel.NewCoordinate(40.9923307, 29.1244229)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c) // Coordinate(40.9923307,29.1244229)
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinate validates both components and reports every violation at once.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

func (c Coordinate) Latitude() float64 {
	return c.latitude
}

func (c Coordinate) Longitude() float64 {
	return c.longitude
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%v,%v)", c.latitude, c.longitude)
}

// IsEqual compares two constructed coordinates component-wise.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return c.latitude == other.latitude && c.longitude == other.longitude, nil
}

// The comparisons are written so that NaN falls outside the range.
func (c *Coordinate) setLatitude(latitude float64) error {
	if !(latitude >= MinLatitude && latitude <= MaxLatitude) {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinate) setLongitude(longitude float64) error {
	if !(longitude >= MinLongitude && longitude <= MaxLongitude) {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	c.longitude = longitude
	return nil
}
