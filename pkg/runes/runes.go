package runes

import (
	"bufio"
	"io"
	"strings"
)

// Stream reads runes one at a time with a single rune of lookahead. Invalid
// UTF-8 bytes surface as utf8.RuneError data rather than errors, so binary
// noise in an input does not abort a scan.
type Stream struct {
	br     *bufio.Reader
	closer io.Closer
	next   rune
	ok     bool
	err    error
}

// NewStream returns a stream reading from r. The caller keeps ownership of
// r's lifecycle; Close is a no-op.
func NewStream(r io.Reader) *Stream {
	s := &Stream{br: bufio.NewReader(r)}
	s.advance()
	return s
}

// NewStringStream returns a stream over an in-memory string.
func NewStringStream(s string) *Stream {
	return NewStream(strings.NewReader(s))
}

// NewOwnedStream returns a stream that owns rc and releases it on Close.
func NewOwnedStream(rc io.ReadCloser) *Stream {
	s := NewStream(rc)
	s.closer = rc
	return s
}

func (s *Stream) advance() {
	r, _, err := s.br.ReadRune()
	if err != nil {
		s.ok = false
		if err != io.EOF {
			s.err = err
		}
		return
	}
	s.next, s.ok = r, true
}

// HasNext reports whether another rune is available. It is false at end of
// input and after a read failure; Err tells the two apart.
func (s *Stream) HasNext() bool { return s.ok }

// Peek returns the next rune without consuming it. Only valid while HasNext
// reports true.
func (s *Stream) Peek() rune { return s.next }

// Next consumes and returns the next rune. Only valid while HasNext reports
// true.
func (s *Stream) Next() rune {
	r := s.next
	s.advance()
	return r
}

// Err returns the first read failure encountered, or nil. End of input is
// not a failure.
func (s *Stream) Err() error { return s.err }

// Close releases the underlying source when the stream owns one. It is safe
// to call on any stream and more than once.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}
