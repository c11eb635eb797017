package csv

import "github.com/csvdoc/csvdoc/pkg/seq"

// Document is an ordered collection of CSV rows. It owns all row storage;
// Row values are lightweight handles into it. A single mutability flag
// guards the document and every row, so freezing the document freezes the
// rows in the same step.
//
// Mutation keeps row indices gapless: rows are appended at the tail,
// replaced in place, or removed from the tail. Inserting at an index is not
// supported. Once frozen, a document is permanently read-only and safe for
// unsynchronized concurrent reads.
type Document struct {
	flag *seq.Flag
	rows *seq.List[*seq.List[string]]
}

// NewDocument returns an empty, mutable document.
func NewDocument() *Document {
	flag := seq.NewFlag()
	return &Document{
		flag: flag,
		rows: seq.NewList[*seq.List[string]](flag),
	}
}

// Append adds a row of values at the tail and returns its handle, stamped
// with this document and the new row's index.
func (d *Document) Append(values ...string) (Row, error) {
	if err := d.rows.Append(seq.NewList[string](d.flag, values...)); err != nil {
		return Row{}, err
	}
	return Row{doc: d, index: d.rows.Len() - 1}, nil
}

// Insert always fails with ErrNonAppendInsert. Only appends and tail
// removals are permitted, so row indices stay gapless and monotonic.
func (d *Document) Insert(index int, values ...string) error {
	return ErrNonAppendInsert
}

// SetRow replaces the row at index with fresh storage and returns a freshly
// stamped handle for the same index.
func (d *Document) SetRow(index int, values ...string) (Row, error) {
	if d.flag.Frozen() {
		return Row{}, ErrFrozen
	}
	if index < 0 || index >= d.rows.Len() {
		return Row{}, newRowIndexError(index, d.rows.Len())
	}
	if err := d.rows.Set(index, seq.NewList[string](d.flag, values...)); err != nil {
		return Row{}, err
	}
	return Row{doc: d, index: index}, nil
}

// Remove drops the row at index, which must be the last row. Removing any
// other index fails with ErrNonTailRemove so earlier indices never shift.
func (d *Document) Remove(index int) error {
	if d.flag.Frozen() {
		return ErrFrozen
	}
	n := d.rows.Len()
	if index < 0 || index >= n {
		return newRowIndexError(index, n)
	}
	if index != n-1 {
		return ErrNonTailRemove
	}
	return d.rows.Remove(index)
}

// Row returns the handle for the row at index.
func (d *Document) Row(index int) (Row, error) {
	if index < 0 || index >= d.rows.Len() {
		return Row{}, newRowIndexError(index, d.rows.Len())
	}
	return Row{doc: d, index: index}, nil
}

// Rows returns handles for every row in order.
func (d *Document) Rows() []Row {
	out := make([]Row, d.rows.Len())
	for i := range out {
		out[i] = Row{doc: d, index: i}
	}
	return out
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return d.rows.Len()
}

// Headers returns the first row's values, or nil when the document has no
// rows. The first row is the header row for named lookup.
func (d *Document) Headers() []string {
	if d.rows.Len() == 0 {
		return nil
	}
	return d.rows.At(0).Values()
}

// headerIndex resolves name against the header row, first occurrence wins.
// It returns -1 when the document has no rows or the name is absent.
func (d *Document) headerIndex(name string) int {
	if d.rows.Len() == 0 {
		return -1
	}
	header := d.rows.At(0)
	for i := 0; i < header.Len(); i++ {
		if header.At(i) == name {
			return i
		}
	}
	return -1
}

// Values returns a copy of every row as plain string slices.
func (d *Document) Values() [][]string {
	out := make([][]string, d.rows.Len())
	for i := range out {
		out[i] = d.rows.At(i).Values()
	}
	return out
}

// Freeze makes the document and all of its rows permanently read-only and
// returns the document for chaining. Freezing twice is harmless.
func (d *Document) Freeze() *Document {
	d.flag.Freeze()
	return d
}

// Frozen reports whether Freeze has been called.
func (d *Document) Frozen() bool {
	return d.flag.Frozen()
}

// Encode serializes the document to CSV text. Rows are joined with '\n'
// regardless of platform.
func (d *Document) Encode(opts ...Option) (string, error) {
	return Encode(d.Values(), opts...)
}

// String encodes with the default dialect, which always validates.
func (d *Document) String() string {
	s, _ := d.Encode()
	return s
}
