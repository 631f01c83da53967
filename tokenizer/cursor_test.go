package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorAdvanceAndPosition(t *testing.T) {
	c := newCursor([]byte("a\nb"))

	r, ok := c.next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, Position{Line: 1, Column: 1}, c.position())

	r, ok = c.next()
	require.True(t, ok)
	assert.Equal(t, '\n', r)
	assert.Equal(t, Position{Line: 2, Column: 0}, c.position())

	r, ok = c.next()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.Equal(t, Position{Line: 2, Column: 1}, c.position())

	_, ok = c.next()
	assert.False(t, ok)
	assert.True(t, c.eof())
}

func TestCursorReconsume(t *testing.T) {
	c := newCursor([]byte("xy"))

	r, _ := c.next()
	assert.Equal(t, 'x', r)

	c.reconsume()
	p, ok := c.peek()
	require.True(t, ok)
	assert.Equal(t, 'x', p, "peek honours a pending reconsume")

	r, ok = c.next()
	require.True(t, ok)
	assert.Equal(t, 'x', r, "next replays the reconsumed rune")

	r, ok = c.next()
	require.True(t, ok)
	assert.Equal(t, 'y', r)
}

func TestCursorReconsumeAfterEOFIsNoOp(t *testing.T) {
	c := newCursor([]byte("a"))
	c.next()
	_, ok := c.next()
	require.False(t, ok)

	c.reconsume()
	_, ok = c.next()
	assert.False(t, ok, "reconsume after end of source must not resurrect input")
	assert.True(t, c.eof())
}

func TestCursorPeekBytesTruncates(t *testing.T) {
	c := newCursor([]byte("<!doc"))
	c.next()
	c.next()
	assert.Equal(t, []byte("doc"), c.peekBytes(7))
}

func TestCursorDiscardTracksNewlines(t *testing.T) {
	c := newCursor([]byte("ab\ncd"))
	c.discard(4)
	assert.Equal(t, Position{Line: 2, Column: 1}, c.position())

	r, ok := c.next()
	require.True(t, ok)
	assert.Equal(t, 'd', r)
}

func TestCursorRewindReconsume(t *testing.T) {
	c := newCursor([]byte("amp;"))

	r, _ := c.next()
	require.Equal(t, 'a', r)
	c.reconsume()

	c.rewindReconsume()
	assert.Equal(t, []byte("amp;"), c.peekBytes(8), "byte lookahead sees the reconsumed rune again")

	c.discard(4)
	_, ok := c.next()
	assert.False(t, ok)
}

func TestCursorMultibyteRunes(t *testing.T) {
	c := newCursor([]byte("é<"))

	r, ok := c.next()
	require.True(t, ok)
	assert.Equal(t, 'é', r)

	r, ok = c.next()
	require.True(t, ok)
	assert.Equal(t, '<', r)
}
