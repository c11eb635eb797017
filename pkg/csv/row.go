package csv

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/csvdoc/csvdoc/pkg/seq"
)

// Row is a handle to one row of a Document: the owning document plus the
// row's fixed, zero-based index. Copying a Row is cheap and aliases the same
// storage. Rows come from a Document; the zero Row is not usable.
//
// A Row never has independent write permission. Mutations go through the
// document's shared flag, so a Row is writable exactly while its Document
// is.
type Row struct {
	doc   *Document
	index int
}

func (r Row) store() *seq.List[string] {
	return r.doc.rows.At(r.index)
}

// Index returns the row's position within its document.
func (r Row) Index() int {
	return r.index
}

// Document returns the owning document.
func (r Row) Document() *Document {
	return r.doc
}

// Len returns the number of values in this row.
func (r Row) Len() int {
	return r.store().Len()
}

// Values returns a copy of the row's values.
func (r Row) Values() []string {
	return r.store().Values()
}

// Value returns the value at column col. ok is false when col is out of
// range; out-of-range reads on rows are not errors.
func (r Row) Value(col int) (string, bool) {
	if col < 0 || col >= r.store().Len() {
		return "", false
	}
	return r.store().At(col), true
}

// Get resolves name against the document's header row (first occurrence
// wins) and returns this row's value in that column. ok is false when the
// name is absent from the header or the resolved column lies beyond this
// row's length. An absent name is "no value", never an error.
func (r Row) Get(name string) (string, bool) {
	col := r.doc.headerIndex(name)
	if col < 0 {
		return "", false
	}
	return r.Value(col)
}

// Map returns this row's values keyed by the document's header names. For a
// duplicated header name the first column wins; values beyond the header's
// width are dropped, and header columns beyond this row's width are absent.
func (r Row) Map() map[string]string {
	headers := r.doc.Headers()
	m := make(map[string]string, len(headers))
	for col, name := range headers {
		v, ok := r.Value(col)
		if !ok {
			break
		}
		if _, dup := m[name]; dup {
			continue
		}
		m[name] = v
	}
	return m
}

// Int returns the named column converted to an int64.
func (r Row) Int(name string) (int64, error) {
	v, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return n, nil
}

// Float returns the named column converted to a float64.
func (r Row) Float(name string) (float64, error) {
	v, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return f, nil
}

// Bool returns the named column converted to a bool.
func (r Row) Bool(name string) (bool, error) {
	v, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("column %q: %w", name, err)
	}
	return b, nil
}

// Time returns the named column converted to a time.Time.
func (r Row) Time(name string) (time.Time, error) {
	v, err := r.lookup(name)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %q: %w", name, err)
	}
	return ts, nil
}

func (r Row) lookup(name string) (string, error) {
	v, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoValue, name)
	}
	return v, nil
}

// SetValue replaces the value at column col, subject to the document's
// mutability.
func (r Row) SetValue(col int, v string) error {
	if col < 0 || col >= r.store().Len() {
		return newValueIndexError(col, r.store().Len())
	}
	return r.store().Set(col, v)
}

// Append adds a value at the end of this row, subject to the document's
// mutability.
func (r Row) Append(v string) error {
	return r.store().Append(v)
}
