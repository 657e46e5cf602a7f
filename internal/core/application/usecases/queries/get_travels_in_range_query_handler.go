package queries

import (
	"context"
	"fmt"

	"tracking/internal/core/domain/model/travel"
	"tracking/internal/pkg/errs"

	"github.com/samber/lo"
)

// GetTravelsInRangeQueryHandler returns matching records newest first, or
// ErrNoTravelHistory when the range is empty.
type GetTravelsInRangeQueryHandler struct {
	reader TravelHistoryReader
}

func NewGetTravelsInRangeQueryHandler(reader TravelHistoryReader) GetTravelsInRangeQueryHandler {
	return GetTravelsInRangeQueryHandler{reader: reader}
}

func (h GetTravelsInRangeQueryHandler) Handle(ctx context.Context, query GetTravelsInRangeQuery) ([]TravelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.reader.FindByCourierStoreAndRange(ctx, query.CourierID(), query.StoreName(), query.Start(), query.End())
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoTravelHistory,
			errs.NewObjectNotFoundError("courierId", query.CourierID()))
	}

	return lo.Map(records, func(r *travel.Record, _ int) TravelResponse {
		return toTravelResponse(r)
	}), nil
}

func toTravelResponse(r *travel.Record) TravelResponse {
	return TravelResponse{
		ID:        r.ID(),
		CourierID: r.CourierID(),
		StoreName: r.StoreName(),
		Location:  r.Location(),
		Timestamp: r.Timestamp(),
	}
}
