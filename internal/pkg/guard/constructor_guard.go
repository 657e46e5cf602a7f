// Package guard keeps value objects and entities honest about how they were built.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned when Validate is called with a nil error on a zero guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as produced by its constructor.
// Embed it as a field and call Validate from the owner's Validate method:
//
//	type Coordinate struct {
//	    lat, lng float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c Coordinate) Validate() error {
//	    return c.guard.Validate(ErrCoordinateIsNotConstructed)
//	}
//
// The zero value reports "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// unless the guard came from NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
