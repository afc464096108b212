// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/binio"
	"github.com/ssbc/binio/test"
)

func TestSpanContract(t *testing.T) {
	t.Run("Input", test.InputTest(func(t *testing.T, data []byte) binio.InputStream {
		buf := make([]byte, len(data))
		copy(buf, data)
		return NewReader(buf)
	}))
	t.Run("Output", test.OutputTest(func(t *testing.T, size int) (binio.OutputStream, func() []byte) {
		buf := make([]byte, size)
		w := &trackingWriter{Writer: NewWriter(buf)}
		readback := func() []byte {
			return buf[:w.max]
		}
		return w, readback
	}))
}

// trackingWriter records the high-water mark of successful writes so
// the contract suite can read back everything written, even after the
// cursor moved backwards.
type trackingWriter struct {
	*Writer
	max int64
}

func (w *trackingWriter) WriteBytes(src []byte) error {
	if err := w.Writer.WriteBytes(src); err != nil {
		return err
	}
	pos, err := w.Writer.Tell()
	if err == nil && pos > w.max {
		w.max = pos
	}
	return nil
}

func TestWriterNoGrowth(t *testing.T) {
	r := require.New(t)

	// writing a u64 into a 4-byte span must fail before any copy
	buf := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	w := NewWriter(buf)

	err := w.WriteBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	r.True(binio.IsBufferExhausted(err))
	r.Equal([]byte{0xaa, 0xbb, 0xcc, 0xdd}, buf, "failed write leaves the buffer untouched")

	pos, err := w.Tell()
	r.NoError(err)
	r.EqualValues(0, pos, "failed write leaves the cursor in place")
}

func TestReaderView(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	buf := []byte{1, 2, 3, 4, 5}
	rd := NewReader(buf)

	view, err := rd.ReadBytesView(3)
	r.NoError(err)
	a.Equal([]byte{1, 2, 3}, view)

	// the view aliases the underlying buffer
	buf[0] = 9
	a.Equal(byte(9), view[0])

	pos, err := rd.Tell()
	r.NoError(err)
	a.EqualValues(3, pos)

	_, err = rd.ReadBytesView(3)
	r.True(binio.IsBufferExhausted(err))

	view, err = rd.ReadBytesView(0)
	r.NoError(err)
	a.Nil(view)
}

func TestBufferAccess(t *testing.T) {
	a := assert.New(t)

	buf := []byte{1, 2, 3}
	a.Equal(buf, NewReader(buf).Buffer())
	a.Equal(buf, NewWriter(buf).Buffer())
}

func TestOverwriteRoundTrip(t *testing.T) {
	r := require.New(t)

	buf := make([]byte, 8)
	test.RoundTrip(t, NewWriter(buf), NewReader(buf), []byte{9, 8, 7, 6, 5, 4, 3, 2})
	r.Equal([]byte{9, 8, 7, 6, 5, 4, 3, 2}, buf)
}
