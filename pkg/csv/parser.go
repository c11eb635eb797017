package csv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/csvdoc/csvdoc/pkg/chars"
	"github.com/csvdoc/csvdoc/pkg/runes"
)

// tokenizer turns a rune stream into rows of decoded values. The stream
// itself only ever exposes one rune of lookahead; the tentative-close rule
// for escaped values buffers its own pending text instead of rewinding.
type tokenizer struct {
	src     *runes.Stream
	dialect Dialect
}

// newTokenizer validates the dialect before any input is read.
func newTokenizer(src *runes.Stream, d Dialect) (*tokenizer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &tokenizer{src: src, dialect: d}, nil
}

// more reports whether another row can be scanned.
func (t *tokenizer) more() bool {
	return t.src.HasNext()
}

// scanRow reads one row: values separated by the separator, terminated by a
// line break or end of input. The terminator is consumed; a '\r\n' pair
// counts as one.
func (t *tokenizer) scanRow() ([]string, error) {
	var values []string
	for {
		values = append(values, t.scanValue())
		if err := t.src.Err(); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if !t.src.HasNext() {
			return values, nil
		}
		if t.src.Peek() == t.dialect.Separator {
			t.src.Next()
			continue
		}
		t.consumeLineBreak()
		return values, nil
	}
}

func (t *tokenizer) consumeLineBreak() {
	if t.src.Next() == '\r' && t.src.HasNext() && t.src.Peek() == '\n' {
		t.src.Next()
	}
}

// padding reports whether c is inline whitespace with no structural meaning
// in this dialect. A whitespace separator or escaper, tab-separated input
// being the common case, keeps its structural role and is never buffered as
// padding.
func (t *tokenizer) padding(c rune) bool {
	return chars.IsInlineWhitespace(c) && c != t.dialect.Separator && c != t.dialect.Escaper
}

// scanValue decodes one value starting at the current position. Leading
// inline whitespace is buffered first: it belongs to an unescaped value but
// is dropped when an escape character follows it. Line breaks never count as
// leading whitespace; they must stay visible to row scanning.
func (t *tokenizer) scanValue() string {
	var out strings.Builder

	var lead strings.Builder
	for t.src.HasNext() && t.padding(t.src.Peek()) {
		lead.WriteRune(t.src.Next())
	}

	if !t.src.HasNext() || t.src.Peek() != t.dialect.Escaper {
		out.WriteString(lead.String())
		t.scanBare(&out)
		return out.String()
	}

	t.src.Next()
	t.scanEscaped(&out)
	return out.String()
}

// scanBare accumulates until the next separator or line break, leaving that
// character unconsumed.
func (t *tokenizer) scanBare(out *strings.Builder) {
	for t.src.HasNext() {
		c := t.src.Peek()
		if c == t.dialect.Separator || chars.IsLineBreak(c) {
			return
		}
		out.WriteRune(t.src.Next())
	}
}

// scanEscaped accumulates an escaped value. Separators and line breaks are
// literal content here. A doubled escape character appends one literal
// escape character. A lone escape character tentatively closes the value:
// inline whitespace after it is buffered, and when end of input, a
// separator, or a line break follows, the value ends and the buffered
// whitespace is discarded as separator decoration. Anything else disproves
// the close, the quote has reopened mid-field: the escape character and the
// buffered whitespace become literal content and the scan continues. An
// unterminated value ends at end of input with the text scanned so far.
func (t *tokenizer) scanEscaped(out *strings.Builder) {
	esc := t.dialect.Escaper
	for t.src.HasNext() {
		c := t.src.Next()
		if c != esc {
			out.WriteRune(c)
			continue
		}
		if t.src.HasNext() && t.src.Peek() == esc {
			t.src.Next()
			out.WriteRune(esc)
			continue
		}

		var pending strings.Builder
		for t.src.HasNext() && t.padding(t.src.Peek()) {
			pending.WriteRune(t.src.Next())
		}
		if !t.src.HasNext() {
			return
		}
		if next := t.src.Peek(); next == t.dialect.Separator || chars.IsLineBreak(next) {
			return
		}
		out.WriteRune(esc)
		out.WriteString(pending.String())
	}
}

// Parse decodes CSV from r into a frozen Document. The caller retains
// ownership of r's lifecycle.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	return parse(runes.NewStream(r), opts...)
}

// ParseString decodes CSV held in memory into a frozen Document.
func ParseString(s string, opts ...Option) (*Document, error) {
	return parse(runes.NewStringStream(s), opts...)
}

// ParseFile opens path, decodes it, and closes the file on every path out.
func ParseFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	src := runes.NewOwnedStream(f)
	defer src.Close()
	return parse(src, opts...)
}

// parse runs the tokenizer to completion. No partial document escapes: the
// document is only returned once fully scanned and frozen.
func parse(src *runes.Stream, opts ...Option) (*Document, error) {
	o := newOptions(opts...)
	tok, err := newTokenizer(src, o.dialect)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for tok.more() {
		row, err := tok.scanRow()
		if err != nil {
			return nil, err
		}
		if _, err := doc.Append(row...); err != nil {
			return nil, err
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return doc.Freeze(), nil
}
