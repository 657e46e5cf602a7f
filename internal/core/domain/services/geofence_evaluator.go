package services

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/store"
	"tracking/internal/core/domain/model/travel"
)

// GeofenceRadiusMeters is the inclusive radius within which a ping counts as
// an entry to a store.
const GeofenceRadiusMeters = 100.0

// RecentRecordsLookup returns the records of courierID at storeName whose
// timestamps fall in [windowStart, windowEnd]. A nil lookup means no history.
type RecentRecordsLookup func(courierID, storeName string, windowStart, windowEnd time.Time) ([]*travel.Record, error)

// GeofenceEvaluator decides whether a location ping is a store entry.
//
// The checks run in a fixed order and the first failing one wins:
//  1. the catalog is empty: StoreNotFound
//  2. no store within GeofenceRadiusMeters: NoStoreNearby
//  3. the ping predates the matched store: TimestampBeforeStoreCreation
//  4. the same courier entered the same store within ReentryCooldown: ReentryTooSoon
//
// The matched store is the first one in catalog order that lies within the
// radius, not the closest one.
//
// Example:
//
//	evaluator := services.NewGeofenceEvaluator()
//	decision, err := evaluator.Evaluate(ping, stores, lookup)
//	if err != nil {
//	    return err // lookup failure
//	}
//	if !decision.Accepted() {
//	    return decision.Err()
//	}
//	// persist decision.Record()
type GeofenceEvaluator struct {
	calculator DistanceCalculator
	guard      ReentryGuard
}

func NewGeofenceEvaluator() GeofenceEvaluator {
	return GeofenceEvaluator{
		calculator: NewDistanceCalculator(),
		guard:      NewReentryGuard(),
	}
}

// Evaluate runs the geofence pipeline for one ping. Rejections are reported
// through the Decision; the returned error is reserved for invalid input and
// lookup failures.
func (e GeofenceEvaluator) Evaluate(
	ping travel.LocationPing,
	stores []*store.Store,
	lookup RecentRecordsLookup,
) (Decision, error) {
	if err := ping.Validate(); err != nil {
		return Decision{}, err
	}

	if len(stores) == 0 {
		return reject(StoreNotFound, ""), nil
	}

	matched, err := e.firstStoreWithinRadius(ping.Location(), stores)
	if err != nil {
		return Decision{}, err
	}
	if matched == nil {
		return reject(NoStoreNearby, ""), nil
	}

	if ping.Timestamp().Before(matched.CreatedAt()) {
		return reject(TimestampBeforeStoreCreation, matched.Name()), nil
	}

	var prior []*travel.Record
	if lookup != nil {
		start, end := e.guard.Window(ping.Timestamp())
		prior, err = lookup(ping.CourierID(), matched.Name(), start, end)
		if err != nil {
			return Decision{}, err
		}
	}
	if !e.guard.Allows(ping.Timestamp(), ping.CourierID(), matched.Name(), prior) {
		return reject(ReentryTooSoon, matched.Name()), nil
	}

	record, err := travel.NewRecord(ping, matched.Name())
	if err != nil {
		return Decision{}, err
	}
	return accept(record), nil
}

func (e GeofenceEvaluator) firstStoreWithinRadius(location kernel.Coordinate, stores []*store.Store) (*store.Store, error) {
	for _, s := range stores {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		d, err := e.calculator.Distance(location, s.Location(), kernel.Meters)
		if err != nil {
			return nil, err
		}

		if d <= GeofenceRadiusMeters {
			return s, nil
		}
	}
	return nil, nil //nolint:nilnil // no store within the radius is not an error
}
