package axis

import "fmt"

// OverrideSize fixes the size of index, replacing its natural size, and
// rebuilds the window. The item at the leading edge of the viewport keeps
// its pixel position.
func (e *Engine) OverrideSize(index, size int) error {
	const op = "axis.OverrideSize"
	if n := e.source.Len(); index < 0 || index >= n {
		return fmt.Errorf("%s: %w: %d not in [0, %d)", op, ErrOutOfRange, index, n)
	}
	if size < 1 {
		return fmt.Errorf("%s: %w: %d", op, ErrInvalidSize, size)
	}
	e.overrides[index] = size
	return e.reanchor(op)
}

// SizeOverride returns the override recorded for index.
func (e *Engine) SizeOverride(index int) (int, bool) {
	size, ok := e.overrides[index]
	return size, ok
}

// ClearSizeOverride restores the natural size of index.
func (e *Engine) ClearSizeOverride(index int) error {
	if _, ok := e.overrides[index]; !ok {
		return nil
	}
	delete(e.overrides, index)
	return e.reanchor("axis.ClearSizeOverride")
}

// ResizeBy grows the materialized item index by delta pixels in widget
// coordinates, as an interactive drag of its trailing edge would. Under
// right-to-left layout dragging left grows the item. The result is at
// least one pixel.
func (e *Engine) ResizeBy(index, delta int) error {
	entry, where := e.FindItemBounds(index)
	if where != Within {
		return fmt.Errorf("axis.ResizeBy: %w: %d is not materialized", ErrOutOfRange, index)
	}
	if e.rtl() {
		delta = -delta
	}
	return e.OverrideSize(index, max(entry.Size+delta, 1))
}

// reanchor rebuilds the window and restores the pixel position of the item
// that was at the leading edge.
func (e *Engine) reanchor(op string) error {
	anchor, ok := e.leadingEntry()
	e.ensureVisible(true)
	if !ok || e.page <= 0 {
		return nil
	}
	index := min(anchor.Index, e.Extent()-1)
	return e.jumpStart(op, index, anchor.Position)
}

// leadingEntry returns the left-to-right entry covering pixel 0.
func (e *Engine) leadingEntry() (Entry, bool) {
	if len(e.canon) == 0 {
		return Entry{}, false
	}
	for i := len(e.canon) - 1; i >= 0; i-- {
		if e.canon[i].Position <= 0 {
			return e.canon[i], true
		}
	}
	return e.canon[0], true
}
