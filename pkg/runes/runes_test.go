package runes

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvdoc/csvdoc/internal/testutil"
)

func drain(s *Stream) string {
	var b strings.Builder
	for s.HasNext() {
		b.WriteRune(s.Next())
	}
	return b.String()
}

func TestStreamYieldsRunesInOrder(t *testing.T) {
	s := NewStringStream("a,b")

	require.True(t, s.HasNext())
	assert.Equal(t, 'a', s.Peek())
	assert.Equal(t, 'a', s.Peek(), "peek must not consume")
	assert.Equal(t, 'a', s.Next())
	assert.Equal(t, ',', s.Next())
	assert.Equal(t, 'b', s.Next())
	assert.False(t, s.HasNext())
	assert.NoError(t, s.Err())
}

func TestStreamEmptyInput(t *testing.T) {
	s := NewStringStream("")

	assert.False(t, s.HasNext())
	assert.NoError(t, s.Err())
}

func TestStreamMultiByteRunes(t *testing.T) {
	const input = "héllo, wörld, 世界"

	s := NewStream(testutil.NewChunkReader(strings.NewReader(input)))

	assert.Equal(t, input, drain(s))
	assert.NoError(t, s.Err())
}

func TestStreamInvalidUTF8IsData(t *testing.T) {
	s := NewStream(strings.NewReader("a\xffb"))

	assert.Equal(t, 'a', s.Next())
	assert.Equal(t, utf8.RuneError, s.Next())
	assert.Equal(t, 'b', s.Next())
	assert.False(t, s.HasNext())
	assert.NoError(t, s.Err(), "invalid bytes are data, not failures")
}

func TestStreamReadFailureIsSticky(t *testing.T) {
	s := NewStream(testutil.NewFaultyReader(strings.NewReader("abcdef"), 3))

	got := drain(s)

	assert.Equal(t, "abc", got)
	assert.False(t, s.HasNext())
	assert.ErrorIs(t, s.Err(), testutil.ErrRead)
}

type recordingCloser struct {
	io.Reader
	closed int
}

func (c *recordingCloser) Close() error {
	c.closed++
	return nil
}

func TestStreamCloseReleasesOwnedSource(t *testing.T) {
	rc := &recordingCloser{Reader: strings.NewReader("x")}
	s := NewOwnedStream(rc)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "double close must be safe")
	assert.Equal(t, 1, rc.closed)
}

func TestStreamCloseWithoutOwnership(t *testing.T) {
	s := NewStringStream("x")

	assert.NoError(t, s.Close())
	assert.True(t, s.HasNext(), "close without ownership must not disturb reading")
}
