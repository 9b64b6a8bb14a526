package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		sentinel := errors.New("order not constructed")

		err := g.Validate(sentinel)

		require.Error(t, err)
		assert.Equal(t, sentinel, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrNotConstructed)
	})
}
