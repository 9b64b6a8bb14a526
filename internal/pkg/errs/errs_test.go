package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("partnerId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: partnerId, ID is: 42 (cause: connection refused)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("pickupAddress")

		assert.Equal(t, "value is invalid: pickupAddress", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("empty string")
		err := errs.NewValueIsInvalidErrorWithCause("pickupAddress", cause)

		assert.Equal(t, "value is invalid: pickupAddress (cause: empty string)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, 7, err.Value)
		assert.Equal(t, "value is out of range: 7 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("message carries the same sentinel as Unwrap", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Contains(t, err.Error(), errs.ErrValueIsOutOfRange.Error())
		assert.NotContains(t, err.Error(), errs.ErrValueIsInvalid.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("comment", "line\nbreak", 0, 10)

		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "line break")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerId")

	assert.Equal(t, "value is required: customerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestErrorsCanBeClassified(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("name"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 0, 1, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
}
