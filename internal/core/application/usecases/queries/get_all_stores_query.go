package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetAllStoresQueryIsNotConstructed = errors.New(
	"GetAllStoresQuery must be created via NewGetAllStoresQuery constructor",
)

// GetAllStoresQuery lists the store catalog.
type GetAllStoresQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllStoresQuery() GetAllStoresQuery {
	return GetAllStoresQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStoresQueryIsNotConstructed)
}

// GetAllStoresQueryResponse is the read model of one store.
type GetAllStoresQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Location  kernel.Coordinate
	CreatedAt time.Time
}
