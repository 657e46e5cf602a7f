package ports

import (
	"context"

	"tracking/internal/core/domain/model/travel"
)

// TravelEventPublisher notifies other systems that a courier entered a store.
// Publishing happens after the record is committed and is best effort.
type TravelEventPublisher interface {
	PublishTravelRecorded(ctx context.Context, r *travel.Record) error
}
