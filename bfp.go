// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bfp implements a binary fixed-point number, where a signed 32-bit
// significand is stored and the binary exponent is a part of the type.
// Can be used to represent fractional quantities in Q formats
// without floating-point hardware.
package bfp

import (
	"math"
	"unsafe"
)

type number = int32

// Bits is the width of the underlying storage.
const Bits = int(unsafe.Sizeof(number(0)) * 8)

// Value is a fixed-point number equal to significand * 2^E.
// It uses an int32 value as a data type, the exponent is not stored:
//   31                             0
//   |______________________________|
//   smmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Values with different exponents are different types.
// Value is immutable, so it is safe to copy and share it between goroutines.
type Value[E Exp] struct {
	raw number
}

// New returns a value with the given significand.
func New[E Exp](significand int32) Value[E] {
	return Value[E]{raw: significand}
}

// FromBits returns a value, whose significand has the same
// two's-complement bit pattern as 'bits'.
func FromBits[E Exp](bits uint32) Value[E] {
	return Value[E]{raw: number(bits)}
}

// Min returns the minimum possible value, -2^31 * 2^E.
func Min[E Exp]() Value[E] {
	return New[E](math.MinInt32)
}

// Max returns the maximum possible value, (2^31-1) * 2^E.
func Max[E Exp]() Value[E] {
	return New[E](math.MaxInt32)
}

// Significand returns v's significand as is.
func (v Value[E]) Significand() int32 {
	return v.raw
}

// Exponent returns the binary exponent of v's type.
func (v Value[E]) Exponent() int32 {
	return Exponent[E]()
}

// Bits returns v's significand as an unsigned bit pattern.
func (v Value[E]) Bits() uint32 {
	return uint32(v.raw)
}

func split[E Exp](v Value[E]) (significand number, exponent int32) {
	return v.raw, Exponent[E]()
}
