package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
)

// LogCourierLocationResult describes an accepted ping.
type LogCourierLocationResult struct {
	RecordID  kernel.UUID
	StoreName string
	Timestamp time.Time
}

// LogCourierLocationCommandHandler evaluates a ping against the store catalog
// and appends a travel record when it is accepted.
//
// Rejections come back as the services sentinel errors (ErrStoreNotFound,
// ErrNoStoreNearby, ErrTimestampBeforeStoreCreation, ErrReentryTooSoon).
//
// The reentry lookup and the append share one transaction. With serialize set,
// the lookup first takes a per (courier, store) lock held until commit, so two
// concurrent pings for the same pair cannot both pass the cooldown check.
// Without it the check is best effort.
type LogCourierLocationCommandHandler struct {
	uowFactory TravelUoWFactory
	catalog    ports.StoreCatalog
	publisher  ports.TravelEventPublisher
	evaluator  services.GeofenceEvaluator
	serialize  bool
	logger     *slog.Logger
}

func NewLogCourierLocationCommandHandler(
	uowFactory TravelUoWFactory,
	catalog ports.StoreCatalog,
	publisher ports.TravelEventPublisher,
	serialize bool,
	logger *slog.Logger,
) LogCourierLocationCommandHandler {
	return LogCourierLocationCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		evaluator:  services.NewGeofenceEvaluator(),
		serialize:  serialize,
		logger:     logger.With("component", "log_courier_location_handler"),
	}
}

func (h *LogCourierLocationCommandHandler) Handle(
	ctx context.Context,
	cmd LogCourierLocationCommand,
) (LogCourierLocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return LogCourierLocationResult{}, err
	}

	stores, err := h.catalog.ListAllStores(ctx)
	if err != nil {
		return LogCourierLocationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return LogCourierLocationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TravelRecordRepository()
	lookup := func(courierID, storeName string, start, end time.Time) ([]*travel.Record, error) {
		if h.serialize {
			if lockErr := repo.LockCourierStore(ctx, courierID, storeName); lockErr != nil {
				return nil, lockErr
			}
		}
		recent, findErr := repo.FindRecent(ctx, courierID, storeName, start, end)
		if findErr != nil || recent == nil {
			return nil, findErr
		}
		return []*travel.Record{recent}, nil
	}

	decision, err := h.evaluator.Evaluate(cmd.Ping(), stores, lookup)
	if err != nil {
		return LogCourierLocationResult{}, err
	}
	if !decision.Accepted() {
		if decision.StoreName() != "" {
			return LogCourierLocationResult{}, fmt.Errorf("%w: store %q", decision.Err(), decision.StoreName())
		}
		return LogCourierLocationResult{}, decision.Err()
	}

	record := decision.Record()
	if err = repo.Append(ctx, record); err != nil {
		return LogCourierLocationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LogCourierLocationResult{}, err
	}

	if h.publisher != nil {
		if pubErr := h.publisher.PublishTravelRecorded(ctx, record); pubErr != nil {
			h.logger.WarnContext(ctx, "failed to publish travel recorded event",
				"courier_id", record.CourierID(),
				"store", record.StoreName(),
				"error", pubErr)
		}
	}

	return LogCourierLocationResult{
		RecordID:  record.ID(),
		StoreName: record.StoreName(),
		Timestamp: record.Timestamp(),
	}, nil
}
