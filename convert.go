// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"math"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/bfp/internal/mathutil"
)

// Float64 returns a float64 value.
// The result is exact, unless it is out of the float64 normal range.
func (v Value[E]) Float64() float64 {
	raw, e := split(v)
	return math.Ldexp(float64(raw), int(e))
}

// Decimal returns v as a decimal number. The conversion is always exact,
// but it allocates memory proportional to abs(E).
func (v Value[E]) Decimal() decimal.Decimal {
	raw, e := split(v)
	coef, exp := mu.BinaryToDecimal(int64(raw), e)
	return decimal.NewFromBigInt(coef, exp)
}
