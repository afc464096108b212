// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package binio // import "github.com/ssbc/binio"

import (
	"github.com/pkg/errors"

	"github.com/ssbc/binio/endian"
)

// Reader decodes fixed-width values from an input stream.
//
// Reader carries a sticky error: once any read fails, every further
// typed read returns the zero value and Err reports the first
// failure. This makes sequences of typed reads safe to chain without
// checking after each call.
//
// The byte order defaults to the platform's native order and can be
// changed mid-stream with SetOrder.
type Reader struct {
	in    InputStream
	order endian.Order
	tmp   [8]byte
	err   error
}

// NewReader returns a Reader over in, decoding in native byte order.
func NewReader(in InputStream) *Reader {
	return &Reader{in: in, order: endian.Native}
}

// NewReaderOrder returns a Reader over in, decoding in the given byte
// order.
func NewReaderOrder(in InputStream, o endian.Order) *Reader {
	return &Reader{in: in, order: o}
}

// Stream returns the wrapped input stream.
func (r *Reader) Stream() InputStream { return r.in }

// Order returns the current default byte order.
func (r *Reader) Order() endian.Order { return r.order }

// SetOrder changes the default byte order for subsequent reads.
func (r *Reader) SetOrder(o endian.Order) { r.order = o }

// Err returns the error that stopped reading, or nil if no read has
// failed.
func (r *Reader) Err() error { return r.err }

// SetErr latches the error state. The first latched error wins.
func (r *Reader) SetErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// data reads n bytes into the scratch buffer, latching any failure.
func (r *Reader) data(n int) []byte {
	if r.err != nil {
		return nil
	}
	b := r.tmp[:n]
	if err := r.in.ReadBytes(b); err != nil {
		r.err = err
		return nil
	}
	return b
}

// Read decodes one value of type T in the reader's current byte
// order.
func Read[T endian.Integral](r *Reader) T {
	var zero T
	b := r.data(endian.Sizeof[T]())
	if b == nil {
		return zero
	}
	return endian.Load[T](b, r.order)
}

// Bool decodes a single byte; any non-zero value is true.
func (r *Reader) Bool() bool { return r.Uint8() != 0 }

// Int8 decodes a signed 8 bit integer.
func (r *Reader) Int8() int8 { return Read[int8](r) }

// Uint8 decodes an unsigned 8 bit integer.
func (r *Reader) Uint8() uint8 { return Read[uint8](r) }

// Int16 decodes a signed 16 bit integer.
func (r *Reader) Int16() int16 { return Read[int16](r) }

// Uint16 decodes an unsigned 16 bit integer.
func (r *Reader) Uint16() uint16 { return Read[uint16](r) }

// Int32 decodes a signed 32 bit integer.
func (r *Reader) Int32() int32 { return Read[int32](r) }

// Uint32 decodes an unsigned 32 bit integer.
func (r *Reader) Uint32() uint32 { return Read[uint32](r) }

// Int64 decodes a signed 64 bit integer.
func (r *Reader) Int64() int64 { return Read[int64](r) }

// Uint64 decodes an unsigned 64 bit integer.
func (r *Reader) Uint64() uint64 { return Read[uint64](r) }

// Data reads len(dst) raw bytes.
func (r *Reader) Data(dst []byte) {
	if r.err != nil {
		return
	}
	if err := r.in.ReadBytes(dst); err != nil {
		r.err = err
	}
}

// Skip moves the cursor n bytes forward without decoding anything.
func (r *Reader) Skip(n int64) {
	if r.err != nil {
		return
	}
	if _, err := r.in.SeekRelative(n); err != nil {
		r.err = err
	}
}

// ReadMulti decodes a sequence of values in one stream transfer, in
// the reader's current byte order. Each destination must be a pointer
// to one of the eight basic fixed-width integer types. The total byte
// length is read in a single ReadBytes call, then the values are
// decoded in argument order at increasing offsets. An empty argument
// list performs no I/O.
func (r *Reader) ReadMulti(dsts ...interface{}) error {
	return r.ReadMultiOrder(r.order, dsts...)
}

// ReadMultiOrder is ReadMulti with an explicit byte order for the
// whole batch.
func (r *Reader) ReadMultiOrder(o endian.Order, dsts ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(dsts) == 0 {
		return nil
	}

	total := 0
	for _, d := range dsts {
		n := sizeOfDst(d)
		if n == 0 {
			r.err = errors.Errorf("binio: unsupported read destination %T", d)
			return r.err
		}
		total += n
	}

	// A stream that can lend out its buffer saves the copy.
	var buf []byte
	if v, ok := r.in.(ViewInputStream); ok {
		b, err := v.ReadBytesView(total)
		if err != nil {
			r.err = err
			return r.err
		}
		buf = b
	} else {
		buf = make([]byte, total)
		if err := r.in.ReadBytes(buf); err != nil {
			r.err = err
			return r.err
		}
	}

	off := 0
	for _, d := range dsts {
		off += decodeInto(buf[off:], d, o)
	}
	return nil
}

func sizeOfDst(dst interface{}) int {
	switch dst.(type) {
	case *int8, *uint8:
		return 1
	case *int16, *uint16:
		return 2
	case *int32, *uint32:
		return 4
	case *int64, *uint64:
		return 8
	default:
		return 0
	}
}

func decodeInto(buf []byte, dst interface{}, o endian.Order) int {
	switch d := dst.(type) {
	case *int8:
		*d = endian.Load[int8](buf, o)
		return 1
	case *uint8:
		*d = endian.Load[uint8](buf, o)
		return 1
	case *int16:
		*d = endian.Load[int16](buf, o)
		return 2
	case *uint16:
		*d = endian.Load[uint16](buf, o)
		return 2
	case *int32:
		*d = endian.Load[int32](buf, o)
		return 4
	case *uint32:
		*d = endian.Load[uint32](buf, o)
		return 4
	case *int64:
		*d = endian.Load[int64](buf, o)
		return 8
	case *uint64:
		*d = endian.Load[uint64](buf, o)
		return 8
	default:
		panic("binio: unsupported read destination")
	}
}
