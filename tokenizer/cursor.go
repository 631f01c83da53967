package tokenizer

import "unicode/utf8"

// Position is a source location reported alongside every parse error and
// queryable from the tokenizer at any time via Line/Column.
type Position struct {
	Line   int
	Column int
}

// cursor advances over a resident byte slice one Unicode scalar value at a
// time, tracking line/column and supporting a single-rune reconsume, per
// the input cursor described in the tokenization algorithm. It does not
// normalize newlines: CR and CR LF sequences are handed to callers exactly
// as they appear in source, since that normalization belongs to the input
// stream stage that feeds this tokenizer, not to the tokenizer itself.
type cursor struct {
	src []byte
	pos int

	line int
	col  int

	lastRune  rune
	lastWidth int
	hasLast   bool

	reconsumePending bool
	eofSeen          bool
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src, line: 1, col: 0}
}

// next returns the next rune, advancing the cursor, honouring a pending
// reconsume. ok is false once the end of source has been reached.
func (c *cursor) next() (r rune, ok bool) {
	if c.reconsumePending {
		c.reconsumePending = false
		if c.eofSeen {
			return 0, false
		}
		return c.lastRune, true
	}

	if c.pos >= len(c.src) {
		c.eofSeen = true
		c.hasLast = false
		return 0, false
	}

	r, width := utf8.DecodeRune(c.src[c.pos:])
	c.pos += width
	c.lastRune, c.lastWidth, c.hasLast = r, width, true

	if r == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return r, true
}

// current returns the last rune returned by next, if any.
func (c *cursor) current() (rune, bool) {
	return c.lastRune, c.hasLast
}

// peek returns the rune that next would return, without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.reconsumePending {
		return c.lastRune, !c.eofSeen
	}
	if c.pos >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRune(c.src[c.pos:])
	return r, true
}

// peekBytes returns up to n raw bytes starting at the position next would
// read from, truncated at end of source. It is used for the literal ASCII
// lookahead matches in MarkupDeclarationOpen and the DOCTYPE states
// (PUBLIC/SYSTEM, "--", "[CDATA[").
func (c *cursor) peekBytes(n int) []byte {
	end := c.pos + n
	if end > len(c.src) {
		end = len(c.src)
	}
	if c.pos > end {
		return nil
	}
	return c.src[c.pos:end]
}

// discard advances past n raw bytes already inspected via peekBytes.
func (c *cursor) discard(n int) {
	for i := 0; i < n && c.pos < len(c.src); i++ {
		if c.src[c.pos] == '\n' {
			c.line++
			c.col = 0
		} else {
			c.col++
		}
		c.pos++
	}
}

// rewindReconsume converts a pending reconsume into a real rewind of the
// byte position, so that peekBytes and discard observe the reconsumed
// rune again. Only the named-character-reference step needs this, and it
// only ever reconsumes ASCII alphanumerics, so the column adjustment
// never has to cross a newline.
func (c *cursor) rewindReconsume() {
	if !c.reconsumePending {
		return
	}
	c.reconsumePending = false
	c.pos -= c.lastWidth
	c.col--
}

// reconsume arranges for the next call to next (or peek) to return the
// current rune again instead of advancing. It is a no-op once end of
// source has been reached, since there is nothing left to reconsume.
func (c *cursor) reconsume() {
	if c.eofSeen {
		return
	}
	c.reconsumePending = true
}

func (c *cursor) eof() bool {
	return c.eofSeen && !c.reconsumePending
}

func (c *cursor) position() Position {
	return Position{Line: c.line, Column: c.col}
}
