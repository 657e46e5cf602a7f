// Package errs provides the typed errors shared by the tracking service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the
// offending parameter. The struct unwraps to its sentinel, so callers classify
// failures with errors.Is while the message keeps the details:
//
//	if errors.Is(err, errs.ErrValueIsOutOfRange) {
//	    // map to 400
//	}
//
// Values embedded in messages are flattened to a single line before formatting.
package errs
