package csv

import (
	"fmt"
	"io"

	"github.com/csvdoc/csvdoc/pkg/runes"
)

// Scanner decodes rows one at a time without materializing a Document,
// shaped like bufio.Scanner: call Scan until it returns false, read each row
// with Values, then check Err. Row semantics match Parse exactly; both run
// the same tokenizer.
//
//	sc, err := csv.NewScanner(file, csv.WithSeparator('\t'))
//	if err != nil {
//		return err
//	}
//	for sc.Scan() {
//		process(sc.Values())
//	}
//	if err := sc.Err(); err != nil {
//		return err
//	}
type Scanner struct {
	tok *tokenizer
	src *runes.Stream
	row []string
	err error
}

// NewScanner returns a scanner reading from r. The dialect is validated
// here, before any input is read; the caller retains ownership of r.
func NewScanner(r io.Reader, opts ...Option) (*Scanner, error) {
	o := newOptions(opts...)
	if err := o.dialect.Validate(); err != nil {
		return nil, err
	}
	src := runes.NewStream(r)
	return &Scanner{tok: &tokenizer{src: src, dialect: o.dialect}, src: src}, nil
}

// Scan advances to the next row. It returns false at end of input or on the
// first read failure; Err tells the two apart.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.tok.more() {
		if err := s.src.Err(); err != nil {
			s.err = fmt.Errorf("read input: %w", err)
		}
		return false
	}
	row, err := s.tok.scanRow()
	if err != nil {
		s.err = err
		return false
	}
	s.row = row
	return true
}

// Values returns the most recently scanned row. Each Scan allocates a fresh
// slice, so retaining previous rows is safe.
func (s *Scanner) Values() []string {
	return s.row
}

// Err returns the first failure encountered. End of input is not a failure.
func (s *Scanner) Err() error {
	return s.err
}
