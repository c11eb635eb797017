package arrowconv

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

// ErrNotHeaded is returned when a document has no heading row to derive
// field names from.
var ErrNotHeaded = errors.New("document has no heading row")

// ConvertError reports the column, and when known the document row, where a
// conversion failed.
type ConvertError struct {
	Column string
	Row    int
	Err    error
}

// Error implements the error interface
func (e *ConvertError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("column %q row %d: %v", e.Column, e.Row, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As
func (e *ConvertError) Unwrap() error {
	return e.Err
}

type options struct {
	strings bool
	alloc   memory.Allocator
}

func newOptions(opts ...Option) options {
	o := options{alloc: memory.DefaultAllocator}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Option adjusts schema derivation and record building.
type Option func(*options)

// WithStrings skips type inference and maps every column to utf8.
func WithStrings() Option {
	return func(o *options) {
		o.strings = true
	}
}

// WithAllocator sets the memory allocator backing built records (default
// memory.DefaultAllocator).
func WithAllocator(alloc memory.Allocator) Option {
	return func(o *options) {
		if alloc != nil {
			o.alloc = alloc
		}
	}
}

// Schema derives an Arrow schema from the document's heading row and the
// cells beneath it. Every field is nullable; column names repeat as-is when
// the heading repeats them.
func Schema(doc *csv.Document, opts ...Option) (*arrow.Schema, error) {
	o := newOptions(opts...)
	rows := doc.Values()
	if len(rows) == 0 {
		return nil, ErrNotHeaded
	}
	return buildSchema(rows, o), nil
}

func buildSchema(rows [][]string, o options) *arrow.Schema {
	heading := rows[0]
	fields := make([]arrow.Field, len(heading))
	for col, name := range heading {
		fields[col] = arrow.Field{
			Name:     name,
			Type:     inferColumn(rows[1:], col, o),
			Nullable: true,
		}
	}
	return arrow.NewSchema(fields, nil)
}

// inferColumn returns the narrowest Arrow type every non-empty cell of the
// column parses as. Missing and empty cells are nulls and carry no type
// evidence; a column with no evidence at all stays utf8.
func inferColumn(rows [][]string, col int, o options) arrow.DataType {
	if o.strings {
		return arrow.BinaryTypes.String
	}

	isInt, isFloat, isBool := true, true, true
	sawValue := false
	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		v := row[col]
		sawValue = true
		if isInt {
			_, err := strconv.ParseInt(v, 10, 64)
			isInt = err == nil
		}
		if isFloat {
			_, err := strconv.ParseFloat(v, 64)
			isFloat = err == nil
		}
		if isBool {
			_, err := strconv.ParseBool(v)
			isBool = err == nil
		}
		if !isInt && !isFloat && !isBool {
			break
		}
	}

	switch {
	case !sawValue:
		return arrow.BinaryTypes.String
	case isInt:
		return arrow.PrimitiveTypes.Int64
	case isFloat:
		return arrow.PrimitiveTypes.Float64
	case isBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// ToRecord converts the rows beneath the heading into an Arrow record with
// the schema Schema would derive. Cells missing from short rows and empty
// cells become nulls; cells beyond the heading's width are dropped. The
// caller owns the returned record and must Release it.
func ToRecord(doc *csv.Document, opts ...Option) (arrow.Record, error) {
	o := newOptions(opts...)
	rows := doc.Values()
	if len(rows) == 0 {
		return nil, ErrNotHeaded
	}
	schema := buildSchema(rows, o)

	builder := array.NewRecordBuilder(o.alloc, schema)
	defer builder.Release()

	heading := rows[0]
	for i, row := range rows[1:] {
		for col := range heading {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			if err := appendCell(builder.Field(col), cell); err != nil {
				return nil, &ConvertError{Column: heading[col], Row: i + 1, Err: err}
			}
		}
	}
	return builder.NewRecord(), nil
}

func appendCell(b array.Builder, cell string) error {
	if cell == "" {
		b.AppendNull()
		return nil
	}
	switch b := b.(type) {
	case *array.StringBuilder:
		b.Append(cell)
	case *array.Int64Builder:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return err
		}
		b.Append(n)
	case *array.Float64Builder:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return err
		}
		b.Append(f)
	case *array.BooleanBuilder:
		v, err := strconv.ParseBool(cell)
		if err != nil {
			return err
		}
		b.Append(v)
	default:
		return fmt.Errorf("unsupported builder %T", b)
	}
	return nil
}

// FromRecord converts a record of utf8, int64, float64, and boolean columns
// into a document: field names become the heading row, nulls become empty
// cells. The document is returned mutable.
func FromRecord(rec arrow.Record) (*csv.Document, error) {
	doc := csv.NewDocument()
	schema := rec.Schema()
	heading := make([]string, schema.NumFields())
	for i := range heading {
		heading[i] = schema.Field(i).Name
	}
	if _, err := doc.Append(heading...); err != nil {
		return nil, err
	}

	for pos := 0; pos < int(rec.NumRows()); pos++ {
		row := make([]string, len(heading))
		for col := range heading {
			v, err := formatCell(rec.Column(col), pos)
			if err != nil {
				return nil, &ConvertError{Column: heading[col], Row: -1, Err: err}
			}
			row[col] = v
		}
		if _, err := doc.Append(row...); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func formatCell(col arrow.Array, pos int) (string, error) {
	if col.IsNull(pos) {
		return "", nil
	}
	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos), nil
	case arrow.INT64:
		return strconv.FormatInt(col.(*array.Int64).Value(pos), 10), nil
	case arrow.FLOAT64:
		return strconv.FormatFloat(col.(*array.Float64).Value(pos), 'g', -1, 64), nil
	case arrow.BOOL:
		return strconv.FormatBool(col.(*array.Boolean).Value(pos)), nil
	default:
		return "", fmt.Errorf("unsupported arrow type %s", col.DataType())
	}
}
