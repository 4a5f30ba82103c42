// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

//go:generate go run ./internal/cmd/genexp -o exp_gen.go -n 32

// Exp is implemented by exponent marker types.
// A marker is a zero-sized type, whose Exponent method returns a constant.
// Markers for exponents in [-32, 32] are predefined, others can be declared like:
//
//	type ExpN40 struct{}
//
//	func (ExpN40) Exponent() int32 { return -40 }
type Exp interface {
	Exponent() int32
}

// Exponent returns the exponent of the marker E.
func Exponent[E Exp]() int32 {
	var e E
	return e.Exponent()
}
