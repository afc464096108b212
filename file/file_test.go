// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package file_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/binio"
	"github.com/ssbc/binio/file"
	"github.com/ssbc/binio/file/fakes"
	"github.com/ssbc/binio/test"
)

func TestFileContract(t *testing.T) {
	t.Run("Input", test.InputTest(func(t *testing.T, data []byte) binio.InputStream {
		path := filepath.Join(t.TempDir(), "input.bin")
		require.NoError(t, os.WriteFile(path, data, 0600))

		in, err := file.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { in.Close() })
		return in
	}))
	t.Run("Output", test.OutputTest(func(t *testing.T, size int) (binio.OutputStream, func() []byte) {
		path := filepath.Join(t.TempDir(), "output.bin")

		out, err := file.Create(path, file.Truncate)
		require.NoError(t, err)
		t.Cleanup(func() { out.Close() })

		readback := func() []byte {
			require.NoError(t, out.Flush())
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			return data
		}
		return out, readback
	}))
}

func TestOpenMissing(t *testing.T) {
	r := require.New(t)

	_, err := file.Open(filepath.Join(t.TempDir(), "nope.bin"))
	r.Error(err)
	r.True(binio.IsFilesystemError(err), "expected filesystem error, got %v", err)
}

func TestOpenDirectory(t *testing.T) {
	r := require.New(t)

	_, err := file.Open(t.TempDir())
	r.Error(err)
	r.True(binio.IsFilesystemError(err))
	r.Contains(err.Error(), "not a regular file")
}

func TestCreateInMissingDirectory(t *testing.T) {
	r := require.New(t)

	_, err := file.Create(filepath.Join(t.TempDir(), "sub", "out.bin"), file.Truncate)
	r.Error(err)
	r.True(binio.IsFilesystemError(err))
}

func TestWriteModes(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "modes.bin")

	w, err := file.Create(path, file.Truncate)
	r.NoError(err)
	r.NoError(w.WriteBytes([]byte("hello")))
	r.NoError(w.Close())

	// append keeps existing contents
	w, err = file.Create(path, file.Append)
	r.NoError(err)
	r.NoError(w.WriteBytes([]byte(" world")))
	r.NoError(w.Close())

	data, err := os.ReadFile(path)
	r.NoError(err)
	r.Equal([]byte("hello world"), data)

	// truncate discards them
	w, err = file.Create(path, file.Truncate)
	r.NoError(err)
	r.NoError(w.WriteBytes([]byte("bye")))
	r.NoError(w.Close())

	data, err = os.ReadFile(path)
	r.NoError(err)
	r.Equal([]byte("bye"), data)
}

func TestClosedStream(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "closed.bin")
	r.NoError(os.WriteFile(path, []byte{1, 2, 3}, 0600))

	in, err := file.Open(path)
	r.NoError(err)
	a.True(in.IsOpen())
	a.Equal(path, in.Name())

	r.NoError(in.Close())
	a.False(in.IsOpen())
	a.Nil(in.Handle())
	r.NoError(in.Close(), "closing twice is a no-op")

	err = in.ReadBytes(make([]byte, 1))
	a.Equal(file.ErrNotOpen, errors.Cause(err))
	_, err = in.Tell()
	a.Equal(file.ErrNotOpen, errors.Cause(err))

	a.NoError(in.ReadBytes(nil), "zero-length read never fails, even closed")
}

func TestShortWriteReportsExhaustion(t *testing.T) {
	r := require.New(t)

	fake := new(fakes.FakeHandle)
	fake.WriteReturns(3, nil)

	w := file.NewWriter(fake)
	err := w.WriteBytes([]byte{1, 2, 3, 4, 5})
	r.True(binio.IsBufferExhausted(err))
	r.Equal(1, fake.WriteCallCount())
}

func TestShortReadReportsExhaustion(t *testing.T) {
	r := require.New(t)

	fake := new(fakes.FakeHandle)
	fake.ReadStub = func(p []byte) (int, error) {
		p[0] = 0xab
		return 1, io.EOF
	}

	in := file.NewReader(fake)
	err := in.ReadBytes(make([]byte, 4))
	r.True(binio.IsBufferExhausted(err))
}

func TestSeekClampsThroughHandle(t *testing.T) {
	r := require.New(t)

	fake := new(fakes.FakeHandle)
	in := file.NewReader(fake)

	_, err := in.SeekAbsolute(-20)
	r.NoError(err)

	pos, whence := fake.SeekArgsForCall(0)
	r.EqualValues(0, pos, "negative absolute seek clamps before reaching the OS")
	r.Equal(io.SeekStart, whence)
}

func TestFlushFailure(t *testing.T) {
	r := require.New(t)

	fake := new(fakes.FakeHandle)
	fake.SyncReturns(errors.New("disk on fire"))

	w := file.NewWriter(fake)
	r.Error(w.Flush())
	r.Equal(1, fake.SyncCallCount())

	r.NoError(w.Close())
	r.NoError(w.Flush(), "flush on a closed stream is a no-op")
}

func TestCloseReleasesHandle(t *testing.T) {
	r := require.New(t)

	fake := new(fakes.FakeHandle)
	w := file.NewWriter(fake)

	r.NoError(w.Close())
	r.Equal(1, fake.CloseCallCount())
	r.NoError(w.Close())
	r.Equal(1, fake.CloseCallCount(), "the handle is closed exactly once")
}

func TestWriteSeekReadRoundTrip(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "roundtrip.bin")

	w, err := file.Create(path, file.Truncate)
	r.NoError(err)
	r.NoError(w.WriteBytes([]byte{0xde, 0xad, 0xbe, 0xef}))
	r.NoError(w.Close())

	in, err := file.Open(path)
	r.NoError(err)
	defer in.Close()

	got := make([]byte, 4)
	r.NoError(in.ReadBytes(got))
	r.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, got)
}
