// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"fmt"
	"strconv"
	"strings"
)

// max len of "F<-2147483648>(-2147483648)"
const maxDebugLen = 27

// String returns the debug representation of the value, like `F<-8>(300)`.
func (v Value[E]) String() string {
	return string(v.appendDebug(make([]byte, 0, maxDebugLen)))
}

// GoString returns debug string representation.
func (v Value[E]) GoString() string {
	return v.String()
}

func (v Value[E]) appendDebug(b []byte) []byte {
	raw, e := split(v)
	b = append(b, "F<"...)
	b = strconv.AppendInt(b, int64(e), 10)
	b = append(b, ">("...)
	b = strconv.AppendInt(b, int64(raw), 10)
	return append(b, ')')
}

// Format implements fmt.Formatter.
// %b, %o, %O, %x, %X print the unsigned bit pattern, so that -1 is printed as ffffffff.
// %d prints the signed significand, %v, %s, %q print the debug representation.
func (v Value[E]) Format(fs fmt.State, c rune) {
	switch c {
	case 'b', 'o', 'O', 'x', 'X':
		fmt.Fprintf(fs, fmt.FormatString(fs, c), v.Bits())
	case 'd':
		fmt.Fprintf(fs, fmt.FormatString(fs, c), v.raw)
	case 'v', 's':
		directive := strings.TrimSuffix(fmt.FormatString(fs, c), string(c))
		fmt.Fprintf(fs, directive+"s", v.String())
	case 'q':
		fmt.Fprintf(fs, fmt.FormatString(fs, c), v.String())
	default:
		fmt.Fprintf(fs, "%%!%c(bfp.Value=%s)", c, v.String())
	}
}
