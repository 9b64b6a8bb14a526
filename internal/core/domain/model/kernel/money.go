package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
)

// Money is a non-negative monetary amount. Charges, commissions and wallet
// balances are all expressed as Money; the arithmetic exposed here keeps the
// non-negativity invariant at the type level.
//
// Unlike UUID, the zero value of Money is meaningful (zero amount) and valid.
type Money struct {
	amount float64
}

// NewMoney creates a Money value. Negative, NaN and infinite amounts are
// rejected.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns m minus other. Fails when the result would be negative, which
// keeps wallet credits and commission splits from going below zero.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v cannot be subtracted from %v", other.amount, m.amount))
	}
	return Money{amount: m.amount - other.amount}, nil
}

// IsEqual reports whether both amounts are identical.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}
