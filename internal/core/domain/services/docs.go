// Package services holds the stateless domain services of the tracking system.
//
// The package includes:
//   - DistanceCalculator: great-circle (haversine) distance between coordinates
//   - ReentryGuard: the one-minute cooldown between entries to the same store
//   - GeofenceEvaluator: decides whether a location ping becomes a travel record
//
// None of them persist or log. History is read through a caller-supplied
// lookup, so the services can be exercised without any infrastructure.
package services
