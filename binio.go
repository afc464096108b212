// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

// Package binio provides endian-aware binary reading and writing over
// a family of byte streams: fixed spans, growable memory buffers, OS
// files and a runtime-polymorphic holder over any of them.
//
// Concrete streams live in the span, mem, file and anystream
// subpackages. They all satisfy the capability contracts below, so the
// typed Reader/Writer layer in this package works with every one of
// them. Streams are not safe for concurrent use; distinct instances
// are fully independent.
package binio // import "github.com/ssbc/binio"

// Stream is the minimal contract every stream satisfies: a seekable
// byte cursor. Seeking past the end of the data is legal; the
// out-of-range condition only surfaces on the next read or write.
type Stream interface {
	// SeekAbsolute moves the cursor to pos, counted from the start of
	// the stream, and returns the resulting position.
	SeekAbsolute(pos int64) (int64, error)

	// SeekRelative moves the cursor by off from the current position
	// and returns the resulting position.
	SeekRelative(off int64) (int64, error)

	// Tell returns the current cursor position.
	Tell() (int64, error)
}

// InputStream is a stream bytes can be read from.
type InputStream interface {
	Stream

	// ReadBytes fills dst from the stream at the current cursor and
	// advances the cursor by len(dst). If fewer than len(dst) bytes
	// are available it fails with ErrBufferExhausted. An empty dst is
	// a no-op.
	ReadBytes(dst []byte) error
}

// OutputStream is a stream bytes can be written to.
type OutputStream interface {
	Stream

	// WriteBytes copies src into the stream at the current cursor and
	// advances the cursor by len(src). If the stream cannot take
	// len(src) bytes it fails with ErrBufferExhausted. An empty src is
	// a no-op.
	WriteBytes(src []byte) error
}

// ViewInputStream is an input stream that can hand out borrowed
// sub-slices of its backing buffer instead of copying. The returned
// view is only valid until the backing buffer is invalidated.
type ViewInputStream interface {
	InputStream

	// ReadBytesView returns the next n bytes as a view into the
	// stream's own buffer, advancing the cursor by n.
	ReadBytesView(n int) ([]byte, error)
}

// Flusher is a stream that buffers writes and can be told to
// synchronize them.
type Flusher interface {
	Flush() error
}
