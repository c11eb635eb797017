package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrFrozen is returned by every mutating operation once the guarding
	// flag has been frozen.
	ErrFrozen = errors.New("sequence is frozen")

	// ErrIndexOutOfRange is returned when an index does not resolve to an
	// element. Returned errors wrap it together with the offending index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Flag is a shared mutability cell. Its zero value is unfrozen. Freezing is
// a one-way operation; there is no thaw.
type Flag struct {
	frozen bool
}

// NewFlag returns an unfrozen flag.
func NewFlag() *Flag { return &Flag{} }

// Freeze flips the flag permanently.
func (f *Flag) Freeze() { f.frozen = true }

// Frozen reports whether Freeze has been called.
func (f *Flag) Frozen() bool { return f.frozen }

// List is an ordered sequence guarded by a Flag. Several lists may share one
// flag; freezing it freezes them all at once. The zero value is an empty
// list with a private, unfrozen flag.
type List[T any] struct {
	flag  *Flag
	items []T
}

// NewList returns a list guarded by flag, seeded with items. A nil flag
// allocates a private one.
func NewList[T any](flag *Flag, items ...T) *List[T] {
	if flag == nil {
		flag = NewFlag()
	}
	l := &List[T]{flag: flag}
	if len(items) > 0 {
		l.items = append(l.items, items...)
	}
	return l
}

// Flag returns the guarding flag so that other sequences can share it.
func (l *List[T]) Flag() *Flag {
	if l.flag == nil {
		l.flag = NewFlag()
	}
	return l.flag
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the element at index i. Like a slice access, it panics when i
// is out of range; reads are otherwise always permitted.
func (l *List[T]) At(i int) T { return l.items[i] }

// Values returns a copy of the elements.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds v at the tail.
func (l *List[T]) Append(v T) error {
	if l.Frozen() {
		return ErrFrozen
	}
	l.items = append(l.items, v)
	return nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) error {
	if l.Frozen() {
		return ErrFrozen
	}
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.items))
	}
	l.items[i] = v
	return nil
}

// Remove deletes the element at index i, shifting any later elements down.
// Positional policy, such as tail-only removal, is for callers to enforce.
func (l *List[T]) Remove(i int) error {
	if l.Frozen() {
		return ErrFrozen
	}
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.items))
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Freeze freezes the guarding flag, making this list and every list sharing
// the flag permanently read-only.
func (l *List[T]) Freeze() { l.Flag().Freeze() }

// Frozen reports whether the guarding flag has been frozen.
func (l *List[T]) Frozen() bool { return l.flag != nil && l.flag.Frozen() }
