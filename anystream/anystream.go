// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

// Package anystream holds exactly one concrete stream behind the
// capability contracts, for callers that pick the stream type at
// runtime. The holder owns its stream: replacing or resetting it
// closes the previous one, and the original concrete type stays
// recoverable through a checked downcast.
package anystream // import "github.com/ssbc/binio/anystream"

import (
	"fmt"
	"io"

	"github.com/ssbc/binio"
)

// Input owns a runtime-chosen input stream. The zero value is empty;
// calling stream operations on an empty holder is a caller bug and
// panics. Check HasValue first.
type Input struct {
	s binio.InputStream
}

var _ binio.InputStream = (*Input)(nil)

// NewInput returns a holder owning s. A nil s yields an empty holder.
func NewInput(s binio.InputStream) *Input {
	return &Input{s: s}
}

// HasValue reports whether the holder currently owns a stream.
func (a *Input) HasValue() bool {
	return a.s != nil
}

// Reset releases the held stream, closing it when it owns resources,
// and leaves the holder empty.
func (a *Input) Reset() error {
	s := a.s
	a.s = nil
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Emplace releases the currently held stream and takes ownership of s
// in its place.
func (a *Input) Emplace(s binio.InputStream) error {
	err := a.Reset()
	a.s = s
	return err
}

func (a *Input) held() binio.InputStream {
	if a.s == nil {
		panic("anystream: operation on empty stream")
	}
	return a.s
}

func (a *Input) SeekAbsolute(pos int64) (int64, error) {
	return a.held().SeekAbsolute(pos)
}

func (a *Input) SeekRelative(off int64) (int64, error) {
	return a.held().SeekRelative(off)
}

func (a *Input) Tell() (int64, error) {
	return a.held().Tell()
}

func (a *Input) ReadBytes(dst []byte) error {
	return a.held().ReadBytes(dst)
}

// Flush synchronizes the held stream when it buffers anything;
// otherwise it is a no-op.
func (a *Input) Flush() error {
	if f, ok := a.held().(binio.Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Output owns a runtime-chosen output stream. Same contract as Input.
type Output struct {
	s binio.OutputStream
}

var _ binio.OutputStream = (*Output)(nil)

// NewOutput returns a holder owning s. A nil s yields an empty
// holder.
func NewOutput(s binio.OutputStream) *Output {
	return &Output{s: s}
}

// HasValue reports whether the holder currently owns a stream.
func (a *Output) HasValue() bool {
	return a.s != nil
}

// Reset releases the held stream, closing it when it owns resources,
// and leaves the holder empty.
func (a *Output) Reset() error {
	s := a.s
	a.s = nil
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Emplace releases the currently held stream and takes ownership of s
// in its place.
func (a *Output) Emplace(s binio.OutputStream) error {
	err := a.Reset()
	a.s = s
	return err
}

func (a *Output) held() binio.OutputStream {
	if a.s == nil {
		panic("anystream: operation on empty stream")
	}
	return a.s
}

func (a *Output) SeekAbsolute(pos int64) (int64, error) {
	return a.held().SeekAbsolute(pos)
}

func (a *Output) SeekRelative(off int64) (int64, error) {
	return a.held().SeekRelative(off)
}

func (a *Output) Tell() (int64, error) {
	return a.held().Tell()
}

func (a *Output) WriteBytes(src []byte) error {
	return a.held().WriteBytes(src)
}

// Flush synchronizes the held stream when it buffers anything;
// otherwise it is a no-op.
func (a *Output) Flush() error {
	if f, ok := a.held().(binio.Flusher); ok {
		return f.Flush()
	}
	return nil
}

// GetInput returns the held input stream as the concrete type T, or a
// BadCastError when the holder is empty or holds something else.
func GetInput[T binio.InputStream](a *Input) (T, error) {
	s, ok := a.s.(T)
	if !ok {
		var zero T
		return zero, &binio.BadCastError{
			Requested: fmt.Sprintf("%T", zero),
			Held:      fmt.Sprintf("%T", a.s),
		}
	}
	return s, nil
}

// GetInputIf is the non-failing variant of GetInput: it reports a
// mismatch (or an empty holder) through its second return value.
func GetInputIf[T binio.InputStream](a *Input) (T, bool) {
	s, ok := a.s.(T)
	return s, ok
}

// GetOutput returns the held output stream as the concrete type T, or
// a BadCastError when the holder is empty or holds something else.
func GetOutput[T binio.OutputStream](a *Output) (T, error) {
	s, ok := a.s.(T)
	if !ok {
		var zero T
		return zero, &binio.BadCastError{
			Requested: fmt.Sprintf("%T", zero),
			Held:      fmt.Sprintf("%T", a.s),
		}
	}
	return s, nil
}

// GetOutputIf is the non-failing variant of GetOutput: it reports a
// mismatch (or an empty holder) through its second return value.
func GetOutputIf[T binio.OutputStream](a *Output) (T, bool) {
	s, ok := a.s.(T)
	return s, ok
}
