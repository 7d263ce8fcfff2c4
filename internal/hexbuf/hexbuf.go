// Package hexbuf provides a forward-only cursor over a buffer of hexadecimal
// characters, with fixed-width field extraction and marker seeking.
//
// It is the substrate of the PLM buffer parser: hub status buffers are flat
// strings of hex characters with no length headers, so frames are located by
// fixed-width lookahead and marker scanning.
package hexbuf

import "strings"

// Cursor is a forward-only reader over a buffer of hex characters.
// The zero value is an empty cursor.
type Cursor struct {
	buf string
	pos int
}

// New creates a Cursor positioned at the start of buf.
func New(buf string) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the number of unconsumed characters.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Field returns the width characters starting at offset off past the current
// position, without advancing. It returns false if the remaining buffer is too
// short to hold the field.
func (c *Cursor) Field(off, width int) (string, bool) {
	start := c.pos + off
	if start+width > len(c.buf) {
		return "", false
	}
	return c.buf[start : start+width], true
}

// Skip advances the cursor by n characters, clamped to the end of the buffer.
func (c *Cursor) Skip(n int) {
	c.pos += n
	if c.pos > len(c.buf) {
		c.pos = len(c.buf)
	}
}

// SeekTo advances the cursor to the next occurrence of marker at or after the
// current position, inclusive of the marker itself. It returns the number of
// characters skipped and whether the marker was found. When the marker is
// absent the cursor is advanced to the end of the buffer.
func (c *Cursor) SeekTo(marker string) (int, bool) {
	idx := strings.Index(c.buf[c.pos:], marker)
	if idx < 0 {
		skipped := len(c.buf) - c.pos
		c.pos = len(c.buf)
		return skipped, false
	}
	c.pos += idx
	return idx, true
}
