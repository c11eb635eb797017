package csv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// needsEscape reports whether v must be quoted: it contains the escape
// character, the separator, or a line break.
func (d Dialect) needsEscape(v string) bool {
	return strings.ContainsRune(v, d.Escaper) ||
		strings.ContainsRune(v, d.Separator) ||
		strings.ContainsAny(v, "\r\n")
}

// appendValue writes v's encoded form: wrapped in escape characters with
// embedded escape characters doubled when escaping is required, the value
// unchanged otherwise. No trimming happens on the encode path.
func appendValue(b *strings.Builder, v string, d Dialect) {
	if !d.needsEscape(v) {
		b.WriteString(v)
		return
	}
	b.WriteRune(d.Escaper)
	for _, c := range v {
		if c == d.Escaper {
			b.WriteRune(d.Escaper)
		}
		b.WriteRune(c)
	}
	b.WriteRune(d.Escaper)
}

func appendRow(b *strings.Builder, values []string, d Dialect) {
	for i, v := range values {
		if i > 0 {
			b.WriteRune(d.Separator)
		}
		appendValue(b, v, d)
	}
}

// EncodeValue returns the encoded form of a single value.
func EncodeValue(v string, opts ...Option) (string, error) {
	o := newOptions(opts...)
	if err := o.dialect.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	appendValue(&b, v, o.dialect)
	return b.String(), nil
}

// Encode serializes rows to CSV text: values joined by the separator, rows
// joined by '\n' regardless of platform, no terminator after the last row.
// It accepts any ordered rows-of-values shape, so callers are not forced
// through a Document.
func Encode(rows [][]string, opts ...Option) (string, error) {
	o := newOptions(opts...)
	if err := o.dialect.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		appendRow(&b, row, o.dialect)
	}
	return b.String(), nil
}

// Encoder writes rows incrementally to a writer, for output too large to
// assemble in memory. Output matches Encode row for row.
type Encoder struct {
	w       *bufio.Writer
	dialect Dialect
	rows    int
}

// NewEncoder returns an encoder writing to w. The dialect is validated here;
// the caller retains ownership of w and must call Flush when done.
func NewEncoder(w io.Writer, opts ...Option) (*Encoder, error) {
	o := newOptions(opts...)
	if err := o.dialect.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{w: bufio.NewWriter(w), dialect: o.dialect}, nil
}

// WriteRow encodes one row. Rows are separated by '\n'; nothing is written
// after the final row.
func (e *Encoder) WriteRow(values ...string) error {
	var b strings.Builder
	if e.rows > 0 {
		b.WriteByte('\n')
	}
	appendRow(&b, values, e.dialect)
	if _, err := e.w.WriteString(b.String()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	e.rows++
	return nil
}

// WriteDocument streams every row of d through WriteRow.
func (e *Encoder) WriteDocument(d *Document) error {
	for _, row := range d.Rows() {
		if err := e.WriteRow(row.Values()...); err != nil {
			return err
		}
	}
	return nil
}

// Flush drains buffered output to the underlying writer.
func (e *Encoder) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
