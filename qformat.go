// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

// Common Qm.n layouts, where m bits (including sign) are used for the integer part
// and n bits for the fractional part.
type (
	Q1_31  = Value[ExpN31]
	Q8_24  = Value[ExpN24]
	Q16_16 = Value[ExpN16]
	Q24_8  = Value[ExpN8]
	Q26_6  = Value[ExpN6]
	Q32_0  = Value[Exp0]
)
