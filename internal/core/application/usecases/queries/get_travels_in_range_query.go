package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrGetTravelsInRangeQueryIsNotConstructed = errors.New(
	"GetTravelsInRangeQuery must be created via NewGetTravelsInRangeQuery constructor",
)

// GetTravelsInRangeQuery selects a courier's entries to one store between
// start and end inclusive. start must be strictly before end.
type GetTravelsInRangeQuery struct { //nolint:recvcheck //using for validation
	courierID string
	storeName string
	start     time.Time
	end       time.Time
	guard     guard.ConstructorGuard
}

func NewGetTravelsInRangeQuery(courierID, storeName string, start, end time.Time) (GetTravelsInRangeQuery, error) {
	q := GetTravelsInRangeQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setCourierID(courierID),
		q.setStoreName(storeName),
		q.setRange(start, end),
	); err != nil {
		return GetTravelsInRangeQuery{}, err
	}

	return q, nil
}

func (q GetTravelsInRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetTravelsInRangeQueryIsNotConstructed)
}

func (q GetTravelsInRangeQuery) CourierID() string { return q.courierID }
func (q GetTravelsInRangeQuery) StoreName() string { return q.storeName }
func (q GetTravelsInRangeQuery) Start() time.Time  { return q.start }
func (q GetTravelsInRangeQuery) End() time.Time    { return q.end }

func (q *GetTravelsInRangeQuery) setCourierID(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	q.courierID = courierID
	return nil
}

func (q *GetTravelsInRangeQuery) setStoreName(storeName string) error {
	if strings.TrimSpace(storeName) == "" {
		return errs.NewValueIsRequiredError("storeName")
	}
	q.storeName = storeName
	return nil
}

func (q *GetTravelsInRangeQuery) setRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.NewValueIsRequiredError("start and end")
	}
	if !start.Before(end) {
		return errs.NewValueIsInvalidErrorWithCause("range",
			fmt.Errorf("start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}
	q.start, q.end = start, end
	return nil
}
