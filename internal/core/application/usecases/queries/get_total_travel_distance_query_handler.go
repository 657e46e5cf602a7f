package queries

import (
	"context"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"

	"github.com/samber/lo"
)

// GetTotalTravelDistanceQueryHandler walks the courier's records in timestamp
// order and sums the segment lengths.
type GetTotalTravelDistanceQueryHandler struct {
	reader     TravelHistoryReader
	calculator services.DistanceCalculator
}

func NewGetTotalTravelDistanceQueryHandler(reader TravelHistoryReader) GetTotalTravelDistanceQueryHandler {
	return GetTotalTravelDistanceQueryHandler{
		reader:     reader,
		calculator: services.NewDistanceCalculator(),
	}
}

func (h GetTotalTravelDistanceQueryHandler) Handle(
	ctx context.Context,
	query GetTotalTravelDistanceQuery,
) (GetTotalTravelDistanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTotalTravelDistanceQueryResponse{}, err
	}

	records, err := h.reader.FindByCourier(ctx, query.CourierID())
	if err != nil {
		return GetTotalTravelDistanceQueryResponse{}, err
	}
	if len(records) == 0 {
		return GetTotalTravelDistanceQueryResponse{}, fmt.Errorf("%w: %w", ErrCourierNotFound,
			errs.NewObjectNotFoundError("courierId", query.CourierID()))
	}

	waypoints := lo.Map(records, func(r *travel.Record, _ int) kernel.Coordinate {
		return r.Location()
	})

	km, err := h.calculator.TotalDistance(waypoints, kernel.Kilometers)
	if err != nil {
		return GetTotalTravelDistanceQueryResponse{}, err
	}

	distance := km
	if query.Unit() != kernel.Kilometers {
		if distance, err = h.calculator.TotalDistance(waypoints, query.Unit()); err != nil {
			return GetTotalTravelDistanceQueryResponse{}, err
		}
	}

	return GetTotalTravelDistanceQueryResponse{
		CourierID:  query.CourierID(),
		Kilometers: km,
		Unit:       query.Unit(),
		Distance:   distance,
		Formatted:  fmt.Sprintf("%.2f %s", distance, unitSymbol(query.Unit())),
	}, nil
}

func unitSymbol(u kernel.DistanceUnit) string {
	if u == kernel.Meters {
		return "m"
	}
	return "km"
}
