// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

// Package file implements streams backed by an OS file handle. The
// stream owns its handle: closing the stream closes the handle, and
// at most one stream owns a given handle at a time.
package file // import "github.com/ssbc/binio/file"

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ssbc/binio"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o fakes/fake_handle.go . Handle

// Handle is the set of OS file primitives the streams delegate to.
// *os.File satisfies it; tests substitute a fake.
type Handle interface {
	io.Reader
	io.Writer
	io.Seeker

	Sync() error
	Close() error
}

// ErrNotOpen is returned when an I/O or seek operation is invoked on
// a stream that has no open handle (zero value, closed, or a handle
// that was handed off).
var ErrNotOpen = errors.New("file: stream has no open handle")

// WriteMode selects how an output stream opens its target.
type WriteMode int

const (
	// Truncate discards existing file contents on open ("wb").
	Truncate WriteMode = iota

	// Append keeps existing contents and writes at the end ("ab").
	Append
)

// checkRegular rejects paths that exist but are not regular files
// (directories, devices, sockets). A missing path is fine; the open
// decides whether that is an error.
func checkRegular(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &binio.FilesystemError{Path: path, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return &binio.FilesystemError{
			Path: path,
			Err:  errors.Errorf("not a regular file (mode %s)", fi.Mode()),
		}
	}
	return nil
}

// Reader is an input stream over an OS file opened read-only.
type Reader struct {
	h    Handle
	name string
}

var _ binio.InputStream = (*Reader)(nil)

// Open opens the file at path for reading ("rb"). The path must
// denote a regular file. Failures are reported as a FilesystemError
// carrying the OS error.
func Open(path string) (*Reader, error) {
	if err := checkRegular(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, &binio.FilesystemError{Path: path, Err: err}
	}
	return &Reader{h: f, name: path}, nil
}

// NewReader adopts an already-open handle. Ownership of h transfers
// to the returned stream.
func NewReader(h Handle) *Reader {
	return &Reader{h: h}
}

// Name returns the path the stream was opened with, if any.
func (r *Reader) Name() string { return r.name }

// Handle exposes the owned OS handle, or nil when the stream is not
// open.
func (r *Reader) Handle() Handle { return r.h }

// IsOpen reports whether the stream owns an open handle.
func (r *Reader) IsOpen() bool { return r.h != nil }

// Close closes the handle. Closing an already-closed stream is a
// no-op.
func (r *Reader) Close() error {
	if r.h == nil {
		return nil
	}
	err := r.h.Close()
	r.h = nil
	return errors.Wrap(err, "file: close failed")
}

// Flush is a no-op for read-only streams; there is no write buffer to
// synchronize.
func (r *Reader) Flush() error { return nil }

// SeekAbsolute seeks from the start of the file. Negative targets
// clamp to zero so every stream type reports the same post-seek
// position.
func (r *Reader) SeekAbsolute(pos int64) (int64, error) {
	return seekAbsolute(r.h, pos)
}

// SeekRelative seeks from the current position, clamping at the start
// of the file.
func (r *Reader) SeekRelative(off int64) (int64, error) {
	return seekRelative(r.h, off)
}

// Tell returns the current file offset.
func (r *Reader) Tell() (int64, error) {
	return tell(r.h)
}

// ReadBytes reads exactly len(dst) bytes from the file. A short read
// fails with ErrBufferExhausted; an empty dst is a no-op even on a
// closed stream.
func (r *Reader) ReadBytes(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	if r.h == nil {
		return ErrNotOpen
	}
	_, err := io.ReadFull(r.h, dst)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return binio.ErrBufferExhausted
	}
	return errors.Wrap(err, "file: read failed")
}

// Writer is an output stream over an OS file opened for writing.
type Writer struct {
	h    Handle
	name string
}

var _ binio.OutputStream = (*Writer)(nil)

// Create opens the file at path for writing, truncating or appending
// per mode ("wb" / "ab"). The path must denote a regular file or not
// exist yet.
func Create(path string, mode WriteMode) (*Writer, error) {
	if err := checkRegular(path); err != nil {
		return nil, err
	}
	flag := os.O_WRONLY | os.O_CREATE
	switch mode {
	case Truncate:
		flag |= os.O_TRUNC
	case Append:
		flag |= os.O_APPEND
	default:
		panic("file: invalid write mode")
	}
	f, err := os.OpenFile(path, flag, 0666)
	if err != nil {
		return nil, &binio.FilesystemError{Path: path, Err: err}
	}
	return &Writer{h: f, name: path}, nil
}

// NewWriter adopts an already-open handle. Ownership of h transfers
// to the returned stream.
func NewWriter(h Handle) *Writer {
	return &Writer{h: h}
}

// Name returns the path the stream was opened with, if any.
func (w *Writer) Name() string { return w.name }

// Handle exposes the owned OS handle, or nil when the stream is not
// open.
func (w *Writer) Handle() Handle { return w.h }

// IsOpen reports whether the stream owns an open handle.
func (w *Writer) IsOpen() bool { return w.h != nil }

// Close closes the handle. Closing an already-closed stream is a
// no-op.
func (w *Writer) Close() error {
	if w.h == nil {
		return nil
	}
	err := w.h.Close()
	w.h = nil
	return errors.Wrap(err, "file: close failed")
}

// Flush synchronizes written data with the OS. No-op when the stream
// is not open.
func (w *Writer) Flush() error {
	if w.h == nil {
		return nil
	}
	return errors.Wrap(w.h.Sync(), "file: flush failed")
}

// SeekAbsolute seeks from the start of the file, clamping negative
// targets to zero.
func (w *Writer) SeekAbsolute(pos int64) (int64, error) {
	return seekAbsolute(w.h, pos)
}

// SeekRelative seeks from the current position, clamping at the start
// of the file.
func (w *Writer) SeekRelative(off int64) (int64, error) {
	return seekRelative(w.h, off)
}

// Tell returns the current file offset.
func (w *Writer) Tell() (int64, error) {
	return tell(w.h)
}

// WriteBytes writes all of src to the file. A short write fails with
// ErrBufferExhausted; an empty src is a no-op even on a closed
// stream.
func (w *Writer) WriteBytes(src []byte) error {
	if len(src) == 0 {
		return nil
	}
	if w.h == nil {
		return ErrNotOpen
	}
	n, err := w.h.Write(src)
	if err != nil {
		return errors.Wrap(err, "file: write failed")
	}
	if n != len(src) {
		return binio.ErrBufferExhausted
	}
	return nil
}

func seekAbsolute(h Handle, pos int64) (int64, error) {
	if h == nil {
		return 0, ErrNotOpen
	}
	if pos < 0 {
		pos = 0
	}
	n, err := h.Seek(pos, io.SeekStart)
	return n, errors.Wrap(err, "file: seek failed")
}

func seekRelative(h Handle, off int64) (int64, error) {
	if h == nil {
		return 0, ErrNotOpen
	}
	cur, err := h.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrap(err, "file: seek failed")
	}
	return seekAbsolute(h, cur+off)
}

func tell(h Handle) (int64, error) {
	if h == nil {
		return 0, ErrNotOpen
	}
	n, err := h.Seek(0, io.SeekCurrent)
	return n, errors.Wrap(err, "file: tell failed")
}
