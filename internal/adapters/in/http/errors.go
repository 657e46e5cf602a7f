package http

import (
	"errors"
	"net/http"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNoStoreNearby),
		errors.Is(err, services.ErrTimestampBeforeStoreCreation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrReentryTooSoon),
		errors.Is(err, ports.ErrStoreAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrStoreNotFound),
		errors.Is(err, queries.ErrCourierNotFound),
		errors.Is(err, queries.ErrNoTravelHistory),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, kernel.ErrInvalidUnit),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
