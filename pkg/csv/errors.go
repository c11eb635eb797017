package csv

import (
	"errors"
	"fmt"

	"github.com/csvdoc/csvdoc/pkg/seq"
)

var (
	// ErrInvalidDialect indicates a separator/escaper combination the
	// tokenizer and encoder cannot distinguish from data. It is returned at
	// construction time, never per row.
	ErrInvalidDialect = errors.New("invalid dialect")

	// ErrFrozen is returned by every mutating operation on a frozen
	// Document or one of its rows. It is the sequence guard's error value,
	// so errors.Is matches across both packages.
	ErrFrozen = seq.ErrFrozen

	// ErrNonAppendInsert is returned by Insert: rows can only be appended,
	// keeping row indices gapless and monotonic.
	ErrNonAppendInsert = errors.New("rows can only be appended")

	// ErrNonTailRemove is returned when removing any row but the last.
	ErrNonTailRemove = errors.New("only the last row can be removed")

	// ErrIndexOutOfRange is wrapped by errors reporting an unresolvable row
	// or value index.
	ErrIndexOutOfRange = seq.ErrIndexOutOfRange

	// ErrNoValue is returned by typed accessors when the named column is
	// absent from the header row or beyond the row's length. The untyped
	// Get reports the same condition with ok == false instead.
	ErrNoValue = errors.New("no value for column")
)

// DialectError describes why a separator/escaper combination was rejected.
type DialectError struct {
	Separator rune
	Escaper   rune
	Reason    string
}

// Error implements the error interface
func (e *DialectError) Error() string {
	return fmt.Sprintf("invalid dialect (separator %q, escaper %q): %s",
		e.Separator, e.Escaper, e.Reason)
}

// Unwrap matches DialectError to ErrInvalidDialect under errors.Is
func (e *DialectError) Unwrap() error {
	return ErrInvalidDialect
}

// IndexError reports a row or value index that does not resolve.
type IndexError struct {
	What  string
	Index int
	Len   int
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Len)
}

// Unwrap matches IndexError to ErrIndexOutOfRange under errors.Is
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func newRowIndexError(index, length int) error {
	return &IndexError{What: "row", Index: index, Len: length}
}

func newValueIndexError(index, length int) error {
	return &IndexError{What: "value", Index: index, Len: length}
}

// IsInvalidDialect checks if an error stems from dialect validation
func IsInvalidDialect(err error) bool {
	return errors.Is(err, ErrInvalidDialect)
}
