// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package binio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/binio"
	"github.com/ssbc/binio/endian"
	"github.com/ssbc/binio/mem"
	"github.com/ssbc/binio/span"
)

func TestWriterTypedLittle(t *testing.T) {
	r := require.New(t)

	s := mem.New()
	w := binio.NewWriterOrder(s, endian.Little)

	w.Uint8(0x01)
	w.Uint16(0x0201)
	w.Uint32(0x04030201)
	w.Uint64(0x0807060504030201)

	r.NoError(w.Err())
	r.Equal(scenarioLittle, s.Buffer())
}

func TestWriterTypedBig(t *testing.T) {
	r := require.New(t)

	s := mem.New()
	w := binio.NewWriterOrder(s, endian.Big)

	w.Uint8(0x01)
	w.Uint16(0x0201)
	w.Uint32(0x04030201)
	w.Uint64(0x0807060504030201)

	r.NoError(w.Err())
	r.Equal(scenarioBig, s.Buffer())
}

func TestWriterGeneric(t *testing.T) {
	r := require.New(t)

	type flavor uint16
	s := mem.New()
	w := binio.NewWriterOrder(s, endian.Big)
	binio.Write(w, flavor(0x1234))
	r.NoError(w.Err())
	r.Equal([]byte{0x12, 0x34}, s.Buffer())
}

func TestWriterMulti(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	s := mem.New()
	w := binio.NewWriterOrder(s, endian.Little)

	r.NoError(w.WriteMulti(
		uint8(0x01),
		uint16(0x0201),
		uint32(0x04030201),
		uint64(0x0807060504030201),
	))
	a.Equal(scenarioLittle, s.Buffer(), "batch encodes at increasing offsets")

	pos, err := s.Tell()
	r.NoError(err)
	a.EqualValues(len(scenarioLittle), pos, "batch written in one transfer")
}

func TestWriterMultiExplicitOrder(t *testing.T) {
	r := require.New(t)

	s := mem.New()
	w := binio.NewWriterOrder(s, endian.Little)

	r.NoError(w.WriteMultiOrder(endian.Big, uint16(0x0102), uint16(0x0304)))
	r.Equal([]byte{0x01, 0x02, 0x03, 0x04}, s.Buffer())
}

func TestWriterMultiEmpty(t *testing.T) {
	r := require.New(t)

	s := mem.New()
	w := binio.NewWriter(s)

	r.NoError(w.WriteMulti())
	r.Zero(s.Len(), "empty batch performs no I/O")
}

func TestWriterMultiUnsupported(t *testing.T) {
	r := require.New(t)

	w := binio.NewWriter(mem.New())
	r.Error(w.WriteMulti("not a fixed-width value"))
	r.Error(w.Err(), "unsupported value latches the error")
}

func TestWriterStickyError(t *testing.T) {
	r := require.New(t)

	buf := make([]byte, 2)
	w := binio.NewWriterOrder(span.NewWriter(buf), endian.Little)

	w.Uint16(0x0201)
	w.Uint32(0xdeadbeef)
	r.True(binio.IsBufferExhausted(w.Err()))

	// the failed write must not have clobbered anything
	r.Equal([]byte{0x01, 0x02}, buf)
}

func TestWriterSetOrderMidStream(t *testing.T) {
	r := require.New(t)

	s := mem.New()
	w := binio.NewWriterOrder(s, endian.Little)

	w.Uint16(0x0201)
	w.SetOrder(endian.Big)
	w.Uint16(0x0201)

	r.NoError(w.Err())
	r.Equal([]byte{0x01, 0x02, 0x02, 0x01}, s.Buffer())
}

func TestWriterBoolData(t *testing.T) {
	r := require.New(t)

	s := mem.New()
	w := binio.NewWriter(s)

	w.Bool(true)
	w.Bool(false)
	w.Data([]byte{0xca, 0xfe})

	r.NoError(w.Err())
	r.Equal([]byte{0x01, 0x00, 0xca, 0xfe}, s.Buffer())
}

func TestWriterReaderRoundTrip(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	for _, o := range []endian.Order{endian.Little, endian.Big} {
		s := mem.New()
		w := binio.NewWriterOrder(s, o)

		w.Int8(-5)
		w.Uint16(0xbeef)
		w.Int32(-123456789)
		w.Uint64(0xdeadbeefcafebabe)
		w.Bool(true)
		r.NoError(w.Err())

		_, err := s.SeekAbsolute(0)
		r.NoError(err)

		rd := binio.NewReaderOrder(s, o)
		a.Equal(int8(-5), rd.Int8())
		a.Equal(uint16(0xbeef), rd.Uint16())
		a.Equal(int32(-123456789), rd.Int32())
		a.Equal(uint64(0xdeadbeefcafebabe), rd.Uint64())
		a.True(rd.Bool())
		r.NoError(rd.Err())
	}
}
