// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

// Package endian converts fixed-width integer values between the
// native byte order and an explicit little- or big-endian layout.
package endian // import "github.com/ssbc/binio/endian"

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Order selects the byte order of a multi-byte value.
type Order uint8

const (
	// Little is least-significant byte first.
	Little Order = iota

	// Big is most-significant byte first.
	Big
)

// Native is the byte order of the platform this process runs on,
// resolved once at startup.
var Native = func() Order {
	probe := []byte{0x01, 0x02}
	if binary.NativeEndian.Uint16(probe) == binary.LittleEndian.Uint16(probe) {
		return Little
	}
	return Big
}()

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "invalid"
	}
}

// byteOrder maps an Order onto its encoding/binary implementation.
// Any value other than Little or Big is a caller bug.
func (o Order) byteOrder() binary.ByteOrder {
	switch o {
	case Little:
		return binary.LittleEndian
	case Big:
		return binary.BigEndian
	default:
		panic("endian: invalid byte order")
	}
}

// Integral is the set of value types the codec can move. Named types
// (enum-likes) are covered through their underlying type.
type Integral interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Sizeof returns the encoded width of T in bytes.
func Sizeof[T Integral]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Reverse returns v with its byte order swapped. Reversing twice
// yields the original value; single-byte values pass through.
func Reverse[T Integral](v T) T {
	switch Sizeof[T]() {
	case 1:
		return v
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	default:
		return T(bits.ReverseBytes64(uint64(v)))
	}
}

// Load decodes a value of type T from the first Sizeof[T] bytes of
// src, stored in the given order. Panics if src is shorter than that.
func Load[T Integral](src []byte, o Order) T {
	bo := o.byteOrder()
	switch Sizeof[T]() {
	case 1:
		return T(src[0])
	case 2:
		return T(bo.Uint16(src))
	case 4:
		return T(bo.Uint32(src))
	default:
		return T(bo.Uint64(src))
	}
}

// Store encodes v into the first Sizeof[T] bytes of dst in the given
// order. Panics if dst is shorter than that.
func Store[T Integral](dst []byte, v T, o Order) {
	bo := o.byteOrder()
	switch Sizeof[T]() {
	case 1:
		dst[0] = byte(v)
	case 2:
		bo.PutUint16(dst, uint16(v))
	case 4:
		bo.PutUint32(dst, uint32(v))
	default:
		bo.PutUint64(dst, uint64(v))
	}
}
