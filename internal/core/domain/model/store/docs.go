// Package store provides the Store entity: a named physical location with a
// creation timestamp. Stores are provisioned once and only read afterwards;
// the geofence check matches location pings against them.
package store
