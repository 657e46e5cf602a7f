package queries

import (
	"errors"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrGetPastTravelsQueryIsNotConstructed = errors.New(
	"GetPastTravelsQuery must be created via NewGetPastTravelsQuery constructor",
)

// GetPastTravelsQuery returns every store entry of a courier, oldest first.
type GetPastTravelsQuery struct {
	courierID string
	guard     guard.ConstructorGuard
}

func NewGetPastTravelsQuery(courierID string) (GetPastTravelsQuery, error) {
	if strings.TrimSpace(courierID) == "" {
		return GetPastTravelsQuery{}, errs.NewValueIsRequiredError("courierId")
	}
	return GetPastTravelsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPastTravelsQuery) Validate() error {
	return q.guard.Validate(ErrGetPastTravelsQueryIsNotConstructed)
}

func (q GetPastTravelsQuery) CourierID() string {
	return q.courierID
}

// TravelResponse is the read model of one travel record.
type TravelResponse struct {
	ID        kernel.UUID
	CourierID string
	StoreName string
	Location  kernel.Coordinate
	Timestamp time.Time
}
