package queries

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrGetTotalTravelDistanceQueryIsNotConstructed = errors.New(
	"GetTotalTravelDistanceQuery must be created via NewGetTotalTravelDistanceQuery constructor",
)

// GetTotalTravelDistanceQuery sums the distance between a courier's
// consecutive store entries, reported in unit.
type GetTotalTravelDistanceQuery struct {
	courierID string
	unit      kernel.DistanceUnit
	guard     guard.ConstructorGuard
}

func NewGetTotalTravelDistanceQuery(courierID string, unit kernel.DistanceUnit) (GetTotalTravelDistanceQuery, error) {
	if strings.TrimSpace(courierID) == "" {
		return GetTotalTravelDistanceQuery{}, errs.NewValueIsRequiredError("courierId")
	}
	if err := unit.Validate(); err != nil {
		return GetTotalTravelDistanceQuery{}, err
	}
	return GetTotalTravelDistanceQuery{
		courierID: courierID,
		unit:      unit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetTotalTravelDistanceQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalTravelDistanceQueryIsNotConstructed)
}

func (q GetTotalTravelDistanceQuery) CourierID() string {
	return q.courierID
}

func (q GetTotalTravelDistanceQuery) Unit() kernel.DistanceUnit {
	return q.unit
}

// GetTotalTravelDistanceQueryResponse always carries the kilometre total.
// Distance and Formatted are in the requested unit, e.g. "12.34 km" or "12340.00 m".
type GetTotalTravelDistanceQueryResponse struct {
	CourierID  string
	Kilometers float64
	Unit       kernel.DistanceUnit
	Distance   float64
	Formatted  string
}
