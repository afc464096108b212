// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package binio // import "github.com/ssbc/binio"

import (
	"github.com/pkg/errors"

	"github.com/ssbc/binio/endian"
)

// Writer encodes fixed-width values into an output stream.
//
// Like Reader it carries a sticky error: once any write fails, every
// further typed write is a no-op and Err reports the first failure.
// The byte order defaults to the platform's native order.
type Writer struct {
	out   OutputStream
	order endian.Order
	tmp   [8]byte
	err   error
}

// NewWriter returns a Writer over out, encoding in native byte order.
func NewWriter(out OutputStream) *Writer {
	return &Writer{out: out, order: endian.Native}
}

// NewWriterOrder returns a Writer over out, encoding in the given
// byte order.
func NewWriterOrder(out OutputStream, o endian.Order) *Writer {
	return &Writer{out: out, order: o}
}

// Stream returns the wrapped output stream.
func (w *Writer) Stream() OutputStream { return w.out }

// Order returns the current default byte order.
func (w *Writer) Order() endian.Order { return w.order }

// SetOrder changes the default byte order for subsequent writes.
func (w *Writer) SetOrder(o endian.Order) { w.order = o }

// Err returns the error that stopped writing, or nil if no write has
// failed.
func (w *Writer) Err() error { return w.err }

// SetErr latches the error state. The first latched error wins.
func (w *Writer) SetErr(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Flush synchronizes the wrapped stream when it buffers anything.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if f, ok := w.out.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Write encodes one value of type T in the writer's current byte
// order.
func Write[T endian.Integral](w *Writer, v T) {
	if w.err != nil {
		return
	}
	b := w.tmp[:endian.Sizeof[T]()]
	endian.Store(b, v, w.order)
	if err := w.out.WriteBytes(b); err != nil {
		w.err = err
	}
}

// Bool encodes a boolean as a single byte, 1 for true.
func (w *Writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

// Int8 encodes a signed 8 bit integer.
func (w *Writer) Int8(v int8) { Write(w, v) }

// Uint8 encodes an unsigned 8 bit integer.
func (w *Writer) Uint8(v uint8) { Write(w, v) }

// Int16 encodes a signed 16 bit integer.
func (w *Writer) Int16(v int16) { Write(w, v) }

// Uint16 encodes an unsigned 16 bit integer.
func (w *Writer) Uint16(v uint16) { Write(w, v) }

// Int32 encodes a signed 32 bit integer.
func (w *Writer) Int32(v int32) { Write(w, v) }

// Uint32 encodes an unsigned 32 bit integer.
func (w *Writer) Uint32(v uint32) { Write(w, v) }

// Int64 encodes a signed 64 bit integer.
func (w *Writer) Int64(v int64) { Write(w, v) }

// Uint64 encodes an unsigned 64 bit integer.
func (w *Writer) Uint64(v uint64) { Write(w, v) }

// Data writes raw bytes as-is.
func (w *Writer) Data(src []byte) {
	if w.err != nil {
		return
	}
	if err := w.out.WriteBytes(src); err != nil {
		w.err = err
	}
}

// WriteMulti encodes a sequence of values in one stream transfer, in
// the writer's current byte order. Each value must be one of the
// eight basic fixed-width integer types. The values are encoded in
// argument order at increasing offsets into a single buffer, which is
// written with one WriteBytes call. An empty argument list performs
// no I/O.
func (w *Writer) WriteMulti(vals ...interface{}) error {
	return w.WriteMultiOrder(w.order, vals...)
}

// WriteMultiOrder is WriteMulti with an explicit byte order for the
// whole batch.
func (w *Writer) WriteMultiOrder(o endian.Order, vals ...interface{}) error {
	if w.err != nil {
		return w.err
	}
	if len(vals) == 0 {
		return nil
	}

	total := 0
	for _, v := range vals {
		n := sizeOfVal(v)
		if n == 0 {
			w.err = errors.Errorf("binio: unsupported write value %T", v)
			return w.err
		}
		total += n
	}

	buf := make([]byte, total)
	off := 0
	for _, v := range vals {
		off += encodeFrom(buf[off:], v, o)
	}

	if err := w.out.WriteBytes(buf); err != nil {
		w.err = err
		return w.err
	}
	return nil
}

func sizeOfVal(val interface{}) int {
	switch val.(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	case int64, uint64:
		return 8
	default:
		return 0
	}
}

func encodeFrom(buf []byte, val interface{}, o endian.Order) int {
	switch v := val.(type) {
	case int8:
		endian.Store(buf, v, o)
		return 1
	case uint8:
		endian.Store(buf, v, o)
		return 1
	case int16:
		endian.Store(buf, v, o)
		return 2
	case uint16:
		endian.Store(buf, v, o)
		return 2
	case int32:
		endian.Store(buf, v, o)
		return 4
	case uint32:
		endian.Store(buf, v, o)
		return 4
	case int64:
		endian.Store(buf, v, o)
		return 8
	case uint64:
		endian.Store(buf, v, o)
		return 8
	default:
		panic("binio: unsupported write value")
	}
}
