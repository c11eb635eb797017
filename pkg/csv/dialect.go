package csv

import "github.com/csvdoc/csvdoc/pkg/chars"

// Dialect carries the two characters that shape a CSV stream: the value
// separator and the escape character used for quoting.
type Dialect struct {
	Separator rune
	Escaper   rune
}

// DefaultDialect returns the RFC4180 pairing of comma and double quote.
func DefaultDialect() Dialect {
	return Dialect{Separator: ',', Escaper: '"'}
}

// Validate rejects separator/escaper combinations that cannot be told apart
// from data: the two characters must differ, must be set, and neither may be
// a line-break character.
func (d Dialect) Validate() error {
	reject := func(reason string) error {
		return &DialectError{Separator: d.Separator, Escaper: d.Escaper, Reason: reason}
	}
	switch {
	case d.Separator == 0 || d.Escaper == 0:
		return reject("separator and escaper must be set")
	case d.Separator == d.Escaper:
		return reject("separator and escaper must differ")
	case chars.IsLineBreak(d.Separator):
		return reject("separator collides with line termination")
	case chars.IsLineBreak(d.Escaper):
		return reject("escaper collides with line termination")
	}
	return nil
}

// options collects the adjustable behavior of the parse, scan, encode, and
// detect entry points.
type options struct {
	dialect     Dialect
	previewRows int
	candidates  []rune
}

func newOptions(opts ...Option) options {
	o := options{
		dialect:     DefaultDialect(),
		previewRows: defaultPreviewRows,
		candidates:  detectCandidates,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Option adjusts the behavior of a parse, scan, encode, or detect call.
type Option func(*options)

// WithSeparator sets the value separator (default ',').
func WithSeparator(r rune) Option {
	return func(o *options) {
		o.dialect.Separator = r
	}
}

// WithEscaper sets the escape character (default '"').
func WithEscaper(r rune) Option {
	return func(o *options) {
		o.dialect.Escaper = r
	}
}

// WithDialect replaces both dialect characters at once.
func WithDialect(d Dialect) Option {
	return func(o *options) {
		o.dialect = d
	}
}
