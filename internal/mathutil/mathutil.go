package mathutil

import (
	"math/big"
	"math/bits"
)

var (
	big5 = big.NewInt(5)
)

// Pow5 returns 5^pow.
func Pow5(pow uint) *big.Int {
	return new(big.Int).Exp(big5, new(big.Int).SetUint64(uint64(pow)), nil)
}

// TrimMantExp removes trailing zero bits from m, incrementing e for each bit,
// and stops when e reaches eMax.
func TrimMantExp(m int64, e, eMax int32) (int64, int32) {
	if m == 0 || e >= eMax {
		return m, e
	}
	tz := int64(bits.TrailingZeros64(uint64(m)))
	if diff := int64(eMax) - int64(e); tz > diff {
		tz = diff
	}
	return m >> tz, int32(int64(e) + tz)
}

// BinaryToDecimal returns such (coef, exp), that m * 2^e == coef * 10^exp exactly.
// exp is always in [e, 0].
func BinaryToDecimal(m int64, e int32) (coef *big.Int, exp int32) {
	if m == 0 {
		return new(big.Int), 0
	}
	m, e = TrimMantExp(m, e, 0)
	coef = big.NewInt(m)
	if e >= 0 {
		return coef.Lsh(coef, uint(e)), 0
	}
	// m * 2^e = m * 5^-e * 10^e
	return coef.Mul(coef, Pow5(uint(-int64(e)))), e
}
