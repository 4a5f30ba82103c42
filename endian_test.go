// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestByteOrders(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		significand int32
		be, le      [4]byte
	}{
		{0, [4]byte{0, 0, 0, 0}, [4]byte{0, 0, 0, 0}},
		{1, [4]byte{0, 0, 0, 1}, [4]byte{1, 0, 0, 0}},
		{-1, [4]byte{0xff, 0xff, 0xff, 0xff}, [4]byte{0xff, 0xff, 0xff, 0xff}},
		{300, [4]byte{0, 0, 0x01, 0x2c}, [4]byte{0x2c, 0x01, 0, 0}},
		{-300, [4]byte{0xff, 0xff, 0xfe, 0xd4}, [4]byte{0xd4, 0xfe, 0xff, 0xff}},
		{0x01020304, [4]byte{1, 2, 3, 4}, [4]byte{4, 3, 2, 1}},
		{math.MinInt32, [4]byte{0x80, 0, 0, 0}, [4]byte{0, 0, 0, 0x80}},
		{math.MaxInt32, [4]byte{0x7f, 0xff, 0xff, 0xff}, [4]byte{0xff, 0xff, 0xff, 0x7f}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := New[ExpN8](test.significand)
			a.Equal(test.be, v.BEBytes())
			a.Equal(test.le, v.LEBytes())
			a.Equal(v, FromBEBytes[ExpN8](test.be))
			a.Equal(v, FromLEBytes[ExpN8](test.le))
		})
	}
}

func TestBytesRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, s := range testSignificands() {
		v := New[ExpN12](s)
		a.Equal(v, FromBEBytes[ExpN12](v.BEBytes()))
		a.Equal(v, FromLEBytes[ExpN12](v.LEBytes()))
		a.Equal(v, FromNEBytes[ExpN12](v.NEBytes()))
		a.Equal(s, FromNEBytes[ExpN12](v.NEBytes()).Significand())
	}
}

func TestCrossOrder(t *testing.T) {
	a := assert.New(t)
	for _, s := range []int32{1, 300, -300, 0x01020304, math.MinInt32, math.MaxInt32} {
		v := New[Exp0](s)
		be, le := v.BEBytes(), v.LEBytes()
		a.NotEqual(be, le)
		a.Equal([4]byte{le[3], le[2], le[1], le[0]}, be)
	}
	// byte-symmetric patterns are encoded equally.
	for _, s := range []int32{0, -1, 0x11111111} {
		v := New[Exp0](s)
		a.Equal(v.BEBytes(), v.LEBytes())
	}
}

func TestNativeOrder(t *testing.T) {
	a := assert.New(t)
	for _, s := range testSignificands() {
		v := New[ExpN4](s)
		// native bytes are the in-memory representation of the significand.
		a.Equal(*(*[4]byte)(unsafe.Pointer(&s)), v.NEBytes())
		if nativeOrder == binary.BigEndian {
			a.Equal(v.BEBytes(), v.NEBytes())
		} else {
			a.Equal(v.LEBytes(), v.NEBytes())
		}
	}
}
