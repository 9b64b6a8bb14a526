package kernel_test

import (
	"math"
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.InDelta(t, 0, zero.Amount(), 0)

		fifty, err := kernel.NewMoney(50)
		require.NoError(t, err)
		assert.InDelta(t, 50, fifty.Amount(), 0)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-0.01)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-finite amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(math.NaN())
		require.Error(t, err)

		_, err = kernel.NewMoney(math.Inf(1))
		require.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	a, _ := kernel.NewMoney(30)
	b, _ := kernel.NewMoney(12.5)

	sum := a.Add(b)

	assert.InDelta(t, 42.5, sum.Amount(), 0)
}

func TestMoney_Sub(t *testing.T) {
	t.Run("subtracts smaller amount", func(t *testing.T) {
		amount, _ := kernel.NewMoney(50)
		commission, _ := kernel.NewMoney(10)

		earning, err := amount.Sub(commission)

		require.NoError(t, err)
		assert.InDelta(t, 40, earning.Amount(), 0)
	})

	t.Run("fails when result would be negative", func(t *testing.T) {
		amount, _ := kernel.NewMoney(10)
		commission, _ := kernel.NewMoney(50)

		_, err := amount.Sub(commission)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(40)
	b, _ := kernel.NewMoney(40)
	c, _ := kernel.NewMoney(41)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
