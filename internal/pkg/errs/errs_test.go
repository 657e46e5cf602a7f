package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("courierId", "c-1")

		assert.Equal(t, "courierId", err.ParamName)
		assert.Equal(t, "c-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: c-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("no travel records")
		err := errs.NewObjectNotFoundErrorWithCause("courierId", "c-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: courierId, ID is: c-1 (cause: no travel records)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non string identifiers are formatted", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("storeId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("timestamp")

		assert.Equal(t, "timestamp", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: timestamp", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("start must be before end")
		err := errs.NewValueIsInvalidErrorWithCause("range", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: range (cause: start must be before end)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90.0, 90.0)

		assert.Equal(t, "latitude", err.ParamName)
		assert.InDelta(t, 91.5, err.Value, 0)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 91.5 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("courierId")
	assert.Equal(t, "value is required: courierId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("courierId", errors.New("empty"))
	assert.Equal(t, "value is required: courierId (cause: empty)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := fmt.Errorf("query failed: %w", errs.NewObjectNotFoundError("courierId", "c-1"))
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)

	var target *errs.ValueIsOutOfRangeError
	joined := errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsOutOfRangeError("b", 1, 2, 3))
	require.ErrorAs(t, joined, &target)
	assert.Equal(t, "b", target.ParamName)
}
