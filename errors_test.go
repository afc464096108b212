// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package binio

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBufferExhausted(t *testing.T) {
	a := assert.New(t)

	a.EqualError(ErrBufferExhausted, "buffer has been exhausted")
	a.True(IsBufferExhausted(ErrBufferExhausted))
	a.True(IsBufferExhausted(errors.Wrap(ErrBufferExhausted, "reading header")),
		"matching survives wrapping")
	a.False(IsBufferExhausted(errors.New("something else")))
	a.False(IsBufferExhausted(nil))
}

func TestFilesystemError(t *testing.T) {
	a := assert.New(t)

	fse := &FilesystemError{Path: "/tmp/x", Err: os.ErrPermission}
	a.Contains(fse.Error(), "/tmp/x")
	a.True(IsFilesystemError(fse))
	a.True(IsFilesystemError(errors.Wrap(fse, "opening log")))
	a.ErrorIs(fse, os.ErrPermission, "the OS error stays reachable")
	a.False(IsFilesystemError(os.ErrPermission))
}

func TestBadCast(t *testing.T) {
	a := assert.New(t)

	bce := &BadCastError{Requested: "*mem.Stream", Held: "*span.Reader"}
	a.Contains(bce.Error(), "*mem.Stream")
	a.Contains(bce.Error(), "*span.Reader")
	a.True(IsBadCast(bce))
	a.True(IsBadCast(errors.Wrap(bce, "recovering stream")))
	a.False(IsBadCast(ErrBufferExhausted))
}
