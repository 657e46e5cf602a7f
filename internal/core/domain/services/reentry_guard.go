package services

import (
	"time"

	"tracking/internal/core/domain/model/travel"

	"github.com/samber/lo"
)

// ReentryCooldown is the minimum time between two accepted entries of one
// courier to one store. An entry exactly ReentryCooldown after the previous one
// is still rejected.
const ReentryCooldown = time.Minute

// ReentryGuard enforces ReentryCooldown per (courier, store).
type ReentryGuard struct{}

func NewReentryGuard() ReentryGuard {
	return ReentryGuard{}
}

// Window returns the inclusive lookback range for a candidate timestamp.
func (ReentryGuard) Window(candidate time.Time) (start, end time.Time) {
	return candidate.Add(-ReentryCooldown), candidate
}

// Allows reports whether candidate may be accepted for courierID at storeName
// given the records found in the lookback window. Records that do not belong
// to the pair or fall outside the window are ignored, and the most recent of
// the rest is used regardless of the order they were returned in.
func (g ReentryGuard) Allows(candidate time.Time, courierID, storeName string, prior []*travel.Record) bool {
	start, end := g.Window(candidate)

	relevant := lo.Filter(prior, func(r *travel.Record, _ int) bool {
		return r != nil &&
			r.CourierID() == courierID &&
			r.StoreName() == storeName &&
			!r.Timestamp().Before(start) &&
			!r.Timestamp().After(end)
	})
	if len(relevant) == 0 {
		return true
	}

	latest := lo.MaxBy(relevant, func(a, b *travel.Record) bool {
		return a.Timestamp().After(b.Timestamp())
	})

	return candidate.Sub(latest.Timestamp()) > ReentryCooldown
}
