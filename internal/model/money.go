package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var (
	wholeDollar = decimal.New(1, 0)
	quarter     = decimal.New(25, -2)
)

// Money is an exact currency amount with at most two fractional digits.
// Arithmetic stays in decimal so the scoring checks are exact to the cent.
type Money struct {
	amount decimal.Decimal
}

func ParseMoney(s string) (Money, error) {
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}

	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}

	if d.Exponent() < -2 {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}

	return Money{amount: d}, nil
}

func (m Money) IsWholeDollar() bool {
	return m.amount.Mod(wholeDollar).IsZero()
}

func (m Money) IsQuarterMultiple() bool {
	return m.amount.Mod(quarter).IsZero()
}

// ScaledCeilingPoints multiplies the amount by factor at full decimal
// precision and rounds toward positive infinity.
func (m Money) ScaledCeilingPoints(factor decimal.Decimal) int64 {
	return m.amount.Mul(factor).Ceil().IntPart()
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
