// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package binio // import "github.com/ssbc/binio"

import (
	"fmt"

	"github.com/pkg/errors"
)

type bufferExhausted struct{}

// ErrBufferExhausted is returned when a read or write needs more bytes
// than the stream can currently supply: over-reading a span or memory
// buffer, writing past a fixed capacity, or a short file transfer.
// Callers may seek and retry, or treat it as end-of-data.
var ErrBufferExhausted bufferExhausted

func (bufferExhausted) Error() string {
	return "buffer has been exhausted"
}

// IsBufferExhausted reports whether err is (or wraps) an exhausted
// buffer condition.
func IsBufferExhausted(err error) bool {
	_, ok := errors.Cause(err).(bufferExhausted)
	return ok
}

// FilesystemError reports a failure to open a file stream: the path
// did not denote a regular file, or the OS refused the open. Err holds
// the underlying OS error.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error for %q: %v", e.Path, e.Err)
}

// Cause returns the underlying OS error.
func (e *FilesystemError) Cause() error { return e.Err }

// Unwrap returns the underlying OS error.
func (e *FilesystemError) Unwrap() error { return e.Err }

// IsFilesystemError reports whether err is (or wraps) a
// FilesystemError.
func IsFilesystemError(err error) bool {
	_, ok := errors.Cause(err).(*FilesystemError)
	return ok
}

// BadCastError is returned by the anystream checked downcast when the
// requested concrete stream type does not match the held one.
type BadCastError struct {
	Requested string
	Held      string
}

func (e *BadCastError) Error() string {
	return fmt.Sprintf("bad stream cast: requested %s, holding %s", e.Requested, e.Held)
}

// IsBadCast reports whether err is (or wraps) a BadCastError.
func IsBadCast(err error) bool {
	_, ok := errors.Cause(err).(*BadCastError)
	return ok
}
