// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

// Package span implements streams over a caller-provided byte slice.
// The streams do not own the slice and never grow it; the slice must
// outlive the stream.
package span // import "github.com/ssbc/binio/span"

import (
	"github.com/ssbc/binio"
)

// Reader is an input stream over a fixed slice. It supports zero-copy
// reads through ReadBytesView.
type Reader struct {
	buf []byte
	cur binio.Cursor
}

var _ binio.ViewInputStream = (*Reader)(nil)

// NewReader returns an input stream positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) SeekAbsolute(pos int64) (int64, error) {
	return r.cur.SeekAbsolute(pos), nil
}

func (r *Reader) SeekRelative(off int64) (int64, error) {
	return r.cur.SeekRelative(off), nil
}

func (r *Reader) Tell() (int64, error) {
	return r.cur.Tell(), nil
}

// ReadBytesView returns the next n bytes as a sub-slice of the
// underlying buffer and advances the cursor. The view stays valid as
// long as the underlying buffer does.
func (r *Reader) ReadBytesView(n int) ([]byte, error) {
	if n < 0 {
		panic("span: negative read count")
	}
	if n == 0 {
		return nil, nil
	}
	pos := r.cur.Tell()
	end := pos + int64(n)
	if end > int64(len(r.buf)) {
		return nil, binio.ErrBufferExhausted
	}
	r.cur.SeekAbsolute(end)
	return r.buf[pos:end:end], nil
}

// ReadBytes copies the next len(dst) bytes into dst and advances the
// cursor.
func (r *Reader) ReadBytes(dst []byte) error {
	view, err := r.ReadBytesView(len(dst))
	if err != nil {
		return err
	}
	copy(dst, view)
	return nil
}

// Buffer exposes the underlying slice.
func (r *Reader) Buffer() []byte {
	return r.buf
}

// Writer is an output stream over a fixed slice. Writing past the end
// of the slice fails with ErrBufferExhausted; the slice cannot grow.
type Writer struct {
	buf []byte
	cur binio.Cursor
}

var _ binio.OutputStream = (*Writer)(nil)

// NewWriter returns an output stream positioned at the start of buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

func (w *Writer) SeekAbsolute(pos int64) (int64, error) {
	return w.cur.SeekAbsolute(pos), nil
}

func (w *Writer) SeekRelative(off int64) (int64, error) {
	return w.cur.SeekRelative(off), nil
}

func (w *Writer) Tell() (int64, error) {
	return w.cur.Tell(), nil
}

// WriteBytes copies src into the buffer at the cursor and advances
// the cursor. The bounds check happens before any byte is copied, so
// a failed write leaves the buffer untouched.
func (w *Writer) WriteBytes(src []byte) error {
	if len(src) == 0 {
		return nil
	}
	pos := w.cur.Tell()
	end := pos + int64(len(src))
	if end > int64(len(w.buf)) {
		return binio.ErrBufferExhausted
	}
	copy(w.buf[pos:end], src)
	w.cur.SeekAbsolute(end)
	return nil
}

// Buffer exposes the underlying slice.
func (w *Writer) Buffer() []byte {
	return w.buf
}
