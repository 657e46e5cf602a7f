// Package travel models what couriers report and what the service keeps.
//
// A LocationPing is a single (courier, coordinate, timestamp) report. A Record
// is an accepted ping attributed to a store; records are append-only and are
// the only history the reentry rule and the distance queries look at.
package travel
