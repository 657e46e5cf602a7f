// Package kernel holds the value objects shared by every aggregate of the
// tracking domain.
//
// The package includes:
//   - UUID: identifier of stores and travel records
//   - Coordinate: a validated WGS84 latitude/longitude pair
//   - DistanceUnit: the closed set of units a distance can be expressed in
//
// All values are immutable. Their zero values are invalid and fail Validate,
// so they must be obtained through the constructors.
package kernel
