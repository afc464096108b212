// SPDX-FileCopyrightText: 2026 The binio Authors
//
// SPDX-License-Identifier: MIT

package binio // import "github.com/ssbc/binio"

// Cursor tracks the read/write position of an in-memory stream. The
// zero value is a cursor at position 0. Negative targets clamp to the
// start; a cursor never reports a negative position.
type Cursor struct {
	pos int64
}

// SeekAbsolute moves the cursor to max(pos, 0) and returns the
// resulting position.
func (c *Cursor) SeekAbsolute(pos int64) int64 {
	if pos < 0 {
		pos = 0
	}
	c.pos = pos
	return c.pos
}

// SeekRelative moves the cursor by off from its current position.
func (c *Cursor) SeekRelative(off int64) int64 {
	return c.SeekAbsolute(c.pos + off)
}

// Tell returns the current position.
func (c *Cursor) Tell() int64 {
	return c.pos
}
