package travel

import (
	"errors"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrLocationPingIsNotConstructed = errs.NewValueIsRequiredError(
	"location ping must be created via NewLocationPing")

// LocationPing is one position report. The courier identifier is opaque to the
// domain; only its presence is checked.
type LocationPing struct { //nolint:recvcheck //using for validation
	courierID string
	location  kernel.Coordinate
	timestamp time.Time
	guard     guard.ConstructorGuard
}

func NewLocationPing(courierID string, location kernel.Coordinate, timestamp time.Time) (LocationPing, error) {
	p := LocationPing{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setCourierID(courierID),
		p.setLocation(location),
		p.setTimestamp(timestamp),
	); err != nil {
		return LocationPing{}, err
	}

	return p, nil
}

func (p LocationPing) Validate() error {
	return p.guard.Validate(ErrLocationPingIsNotConstructed)
}

func (p LocationPing) CourierID() string {
	return p.courierID
}

func (p LocationPing) Location() kernel.Coordinate {
	return p.location
}

func (p LocationPing) Timestamp() time.Time {
	return p.timestamp
}

func (p *LocationPing) setCourierID(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	p.courierID = courierID
	return nil
}

func (p *LocationPing) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *LocationPing) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	p.timestamp = timestamp
	return nil
}
