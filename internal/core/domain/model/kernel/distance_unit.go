package kernel

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

// DistanceUnit is the closed set of units a distance can be reported in.
type DistanceUnit int

const (
	// UnknownUnit is the zero value and is never accepted.
	UnknownUnit DistanceUnit = iota
	Meters
	Kilometers
)

// ErrInvalidUnit is returned for any DistanceUnit outside of Meters and Kilometers.
var ErrInvalidUnit = fmt.Errorf("%w: distance unit", errs.ErrValueIsInvalid)

func (u DistanceUnit) Validate() error {
	if u == Meters || u == Kilometers {
		return nil
	}
	return fmt.Errorf("%w: %d is not a known unit", ErrInvalidUnit, int(u))
}

// String returns the wire name of the unit, "UNKNOWN" for invalid values.
func (u DistanceUnit) String() string {
	switch u {
	case Meters:
		return "METERS"
	case Kilometers:
		return "KILOMETERS"
	default:
		return "UNKNOWN"
	}
}

// ParseDistanceUnit accepts the wire names case-insensitively.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "METERS":
		return Meters, nil
	case "KILOMETERS":
		return Kilometers, nil
	default:
		return UnknownUnit, fmt.Errorf("%w: %q is not a known unit", ErrInvalidUnit, s)
	}
}
