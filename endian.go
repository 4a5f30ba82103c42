// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// nativeOrder is the byte order of the executing platform.
var nativeOrder = hostByteOrder()

func hostByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func fromBytes[E Exp](order binary.ByteOrder, b [4]byte) Value[E] {
	return FromBits[E](order.Uint32(b[:]))
}

func toBytes[E Exp](order binary.ByteOrder, v Value[E]) (b [4]byte) {
	order.PutUint32(b[:], v.Bits())
	return b
}

// FromBEBytes decodes a value from its big-endian representation.
func FromBEBytes[E Exp](b [4]byte) Value[E] {
	return fromBytes[E](binary.BigEndian, b)
}

// FromLEBytes decodes a value from its little-endian representation.
func FromLEBytes[E Exp](b [4]byte) Value[E] {
	return fromBytes[E](binary.LittleEndian, b)
}

// FromNEBytes decodes a value from its native-endian representation.
// The result depends on the platform, so the bytes should not leave it.
func FromNEBytes[E Exp](b [4]byte) Value[E] {
	return fromBytes[E](nativeOrder, b)
}

// BEBytes returns v's significand in big-endian byte order.
func (v Value[E]) BEBytes() [4]byte {
	return toBytes(binary.BigEndian, v)
}

// LEBytes returns v's significand in little-endian byte order.
func (v Value[E]) LEBytes() [4]byte {
	return toBytes(binary.LittleEndian, v)
}

// NEBytes returns v's significand in native byte order.
// See FromNEBytes.
func (v Value[E]) NEBytes() [4]byte {
	return toBytes(nativeOrder, v)
}
