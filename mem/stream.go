// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

// Package mem implements a stream over an owned, growable byte
// buffer. Writes past the current end grow the buffer; reads
// bounds-check against the current size.
package mem // import "github.com/ssbc/binio/mem"

import (
	"github.com/ssbc/binio"
)

// Stream owns a resizable byte buffer and a cursor. It satisfies both
// the input and output stream contracts.
type Stream struct {
	buf []byte
	cur binio.Cursor
}

var (
	_ binio.ViewInputStream = (*Stream)(nil)
	_ binio.OutputStream    = (*Stream)(nil)
)

// New returns an empty memory stream.
func New() *Stream {
	return &Stream{}
}

// NewBuffer returns a memory stream that takes ownership of buf. The
// caller must not use buf afterwards.
func NewBuffer(buf []byte) *Stream {
	return &Stream{buf: buf}
}

func (s *Stream) SeekAbsolute(pos int64) (int64, error) {
	return s.cur.SeekAbsolute(pos), nil
}

func (s *Stream) SeekRelative(off int64) (int64, error) {
	return s.cur.SeekRelative(off), nil
}

func (s *Stream) Tell() (int64, error) {
	return s.cur.Tell(), nil
}

// ReadBytesView returns the next n bytes as a sub-slice of the
// internal buffer and advances the cursor. The view is invalidated by
// the next growing write.
func (s *Stream) ReadBytesView(n int) ([]byte, error) {
	if n < 0 {
		panic("mem: negative read count")
	}
	if n == 0 {
		return nil, nil
	}
	pos := s.cur.Tell()
	end := pos + int64(n)
	if end > int64(len(s.buf)) {
		return nil, binio.ErrBufferExhausted
	}
	s.cur.SeekAbsolute(end)
	return s.buf[pos:end:end], nil
}

// ReadBytes copies the next len(dst) bytes into dst and advances the
// cursor.
func (s *Stream) ReadBytes(dst []byte) error {
	view, err := s.ReadBytesView(len(dst))
	if err != nil {
		return err
	}
	copy(dst, view)
	return nil
}

// WriteBytes copies src into the buffer at the cursor and advances
// the cursor. When the write reaches past the current end the buffer
// grows to exactly cursor+len(src) bytes; bytes between the old end
// and an over-seeked cursor are zero-filled.
func (s *Stream) WriteBytes(src []byte) error {
	if len(src) == 0 {
		return nil
	}
	pos := s.cur.Tell()
	end := pos + int64(len(src))
	if end > int64(len(s.buf)) {
		s.buf = append(s.buf, make([]byte, end-int64(len(s.buf)))...)
	}
	copy(s.buf[pos:end], src)
	s.cur.SeekAbsolute(end)
	return nil
}

// Buffer exposes the underlying byte buffer. The slice is owned by
// the stream and invalidated by the next growing write.
func (s *Stream) Buffer() []byte {
	return s.buf
}

// Len returns the current buffer size in bytes.
func (s *Stream) Len() int {
	return len(s.buf)
}
