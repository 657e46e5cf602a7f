package travel

import (
	"errors"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

// Record is an accepted store entry. Once persisted it is never updated; the
// store name is a denormalized copy so history survives catalog edits.
type Record struct {
	id        kernel.UUID
	courierID string
	location  kernel.Coordinate
	storeName string
	timestamp time.Time
	guard     guard.ConstructorGuard
}

// NewRecord turns an accepted ping into a record for storeName.
// The ping fields are copied unchanged.
func NewRecord(ping LocationPing, storeName string) (*Record, error) {
	if err := ping.Validate(); err != nil {
		return nil, err
	}
	return RestoreRecord(kernel.NewUUID(), ping.CourierID(), ping.Location(), storeName, ping.Timestamp())
}

// RestoreRecord rebuilds a record from persistence.
func RestoreRecord(
	id kernel.UUID,
	courierID string,
	location kernel.Coordinate,
	storeName string,
	timestamp time.Time,
) (*Record, error) {
	r := &Record{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setCourierID(courierID),
		r.setLocation(location),
		r.setStoreName(storeName),
		r.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID {
	return r.id
}

func (r *Record) CourierID() string {
	return r.courierID
}

func (r *Record) Location() kernel.Coordinate {
	return r.location
}

func (r *Record) StoreName() string {
	return r.storeName
}

func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setCourierID(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	r.courierID = courierID
	return nil
}

func (r *Record) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *Record) setStoreName(storeName string) error {
	if strings.TrimSpace(storeName) == "" {
		return errs.NewValueIsRequiredError("storeName")
	}
	r.storeName = storeName
	return nil
}

func (r *Record) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	r.timestamp = timestamp
	return nil
}
