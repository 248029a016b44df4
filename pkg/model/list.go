package model

import (
	"fmt"
	"slices"

	"github.com/go-drift/sheet/pkg/axis"
)

// List is a slice-backed item source. Every mutation is announced to
// listeners as a single change.
type List[T any] struct {
	notifier
	items []T
}

// NewList creates a list holding items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Item returns item i as an any.
func (l *List[T]) Item(i int) any {
	return l.items[i]
}

// At returns item i.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Items returns a copy of the contents.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// Append adds items at the end.
func (l *List[T]) Append(items ...T) {
	_ = l.Splice(len(l.items), 0, items...)
}

// Insert adds items before position i.
func (l *List[T]) Insert(i int, items ...T) error {
	return l.Splice(i, 0, items...)
}

// Remove deletes n items starting at i.
func (l *List[T]) Remove(i, n int) error {
	return l.Splice(i, n)
}

// Set replaces item i.
func (l *List[T]) Set(i int, item T) error {
	return l.Splice(i, 1, item)
}

// Splice replaces removed items at position with items.
func (l *List[T]) Splice(position, removed int, items ...T) error {
	if position < 0 || removed < 0 || position+removed > len(l.items) {
		return fmt.Errorf("model.List.Splice: %w: [%d, %d) of %d",
			axis.ErrOutOfRange, position, position+removed, len(l.items))
	}
	l.items = slices.Replace(l.items, position, position+removed, items...)
	l.notify(axis.Change{Position: position, Removed: removed, Added: len(items)})
	return nil
}
