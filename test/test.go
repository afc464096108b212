// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

// Package test holds the stream contract suite. Every concrete
// backend runs it from its own test files, so the shared invariants
// (cursor clamping, legal over-seek, zero-length no-ops, round-trips)
// are asserted uniformly.
package test // import "github.com/ssbc/binio/test"

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/binio"
)

// NewInputFunc constructs an input stream preloaded with data.
// Cleanup runs through t.Cleanup inside the constructor.
type NewInputFunc func(t *testing.T, data []byte) binio.InputStream

// NewOutputFunc constructs an empty output stream with at least size
// bytes of room, plus a readback function returning everything
// written so far.
type NewOutputFunc func(t *testing.T, size int) (binio.OutputStream, func() []byte)

// InputTest exercises the input stream contract against f.
func InputTest(f NewInputFunc) func(*testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}

	return func(t *testing.T) {
		t.Run("negative seek clamps to start", func(t *testing.T) {
			r := require.New(t)
			in := f(t, data)

			pos, err := in.SeekAbsolute(-12)
			r.NoError(err)
			r.EqualValues(0, pos)

			pos, err = in.Tell()
			r.NoError(err)
			r.EqualValues(0, pos)

			_, err = in.SeekAbsolute(3)
			r.NoError(err)
			pos, err = in.SeekRelative(-100)
			r.NoError(err)
			r.EqualValues(0, pos)
		})

		t.Run("relative seek adds up", func(t *testing.T) {
			r := require.New(t)
			in := f(t, data)

			_, err := in.SeekAbsolute(2)
			r.NoError(err)
			pos, err := in.SeekRelative(3)
			r.NoError(err)
			r.EqualValues(5, pos)
		})

		t.Run("over-seek is legal until the next read", func(t *testing.T) {
			r := require.New(t)
			in := f(t, data)

			pos, err := in.SeekAbsolute(int64(len(data) + 16))
			r.NoError(err)
			r.EqualValues(len(data)+16, pos)

			err = in.ReadBytes(make([]byte, 1))
			r.Error(err)
			r.True(binio.IsBufferExhausted(err), "expected exhausted buffer, got %v", err)
		})

		t.Run("zero-length read never fails nor moves", func(t *testing.T) {
			r := require.New(t)
			in := f(t, data)

			_, err := in.SeekAbsolute(int64(len(data) + 16))
			r.NoError(err)
			r.NoError(in.ReadBytes(nil))
			pos, err := in.Tell()
			r.NoError(err)
			r.EqualValues(len(data)+16, pos)
		})

		t.Run("sequential reads advance the cursor", func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)
			in := f(t, data)

			head := make([]byte, 4)
			r.NoError(in.ReadBytes(head))
			a.Equal(data[:4], head)

			pos, err := in.Tell()
			r.NoError(err)
			a.EqualValues(4, pos)

			tail := make([]byte, 4)
			r.NoError(in.ReadBytes(tail))
			a.Equal(data[4:], tail)
		})

		t.Run("short read reports exhaustion", func(t *testing.T) {
			r := require.New(t)
			in := f(t, data)

			_, err := in.SeekAbsolute(int64(len(data) - 2))
			r.NoError(err)
			err = in.ReadBytes(make([]byte, 4))
			r.True(binio.IsBufferExhausted(err), "expected exhausted buffer, got %v", err)
		})
	}
}

// OutputTest exercises the output stream contract against f.
func OutputTest(f NewOutputFunc) func(*testing.T) {
	return func(t *testing.T) {
		t.Run("negative seek clamps to start", func(t *testing.T) {
			r := require.New(t)
			out, _ := f(t, 16)

			pos, err := out.SeekAbsolute(-1)
			r.NoError(err)
			r.EqualValues(0, pos)
		})

		t.Run("zero-length write never fails nor moves", func(t *testing.T) {
			r := require.New(t)
			out, readback := f(t, 16)

			r.NoError(out.WriteBytes(nil))
			pos, err := out.Tell()
			r.NoError(err)
			r.EqualValues(0, pos)
			r.Empty(readback())
		})

		t.Run("write advances the cursor", func(t *testing.T) {
			r := require.New(t)
			out, readback := f(t, 16)

			r.NoError(out.WriteBytes([]byte{1, 2, 3}))
			pos, err := out.Tell()
			r.NoError(err)
			r.EqualValues(3, pos)
			r.Equal([]byte{1, 2, 3}, readback())
		})

		t.Run("write seek-back overwrite", func(t *testing.T) {
			r := require.New(t)
			out, readback := f(t, 16)

			r.NoError(out.WriteBytes([]byte{1, 2, 3, 4}))
			_, err := out.SeekAbsolute(1)
			r.NoError(err)
			r.NoError(out.WriteBytes([]byte{9, 9}))
			r.Equal([]byte{1, 9, 9, 4}, readback())
		})
	}
}

// RoundTrip writes data through out, then asserts in yields it back.
// Used by backends that can connect both directions over the same
// storage.
func RoundTrip(t *testing.T, out binio.OutputStream, in binio.InputStream, data []byte) {
	r := require.New(t)

	r.NoError(out.WriteBytes(data))

	_, err := in.SeekAbsolute(0)
	r.NoError(err)
	got := make([]byte, len(data))
	r.NoError(in.ReadBytes(got))
	r.Equal(data, got)
}
