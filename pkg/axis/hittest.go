package axis

// FindItemAtPixel returns the entry covering pixel pos in widget
// coordinates. It reports false when nothing is materialized or pos lies
// before the first entry; positions past the last entry resolve to it.
func (e *Engine) FindItemAtPixel(pos int) (Entry, bool) {
	return e.table.Locate(pos)
}

// FindItemBounds returns the widget-coordinate geometry of index when it is
// materialized, and otherwise whether it lies before or after the window.
func (e *Engine) FindItemBounds(index int) (Entry, Placement) {
	if index >= e.to {
		return Entry{}, After
	}
	if index < e.from {
		return Entry{}, Before
	}
	k := index - e.from
	if e.rtl() {
		k = e.table.Len() - 1 - k
	}
	return e.table.At(k), Within
}

// bounds is FindItemBounds in left-to-right coordinates.
func (e *Engine) bounds(index int) (Entry, Placement) {
	if index >= e.to {
		return Entry{}, After
	}
	if index < e.from {
		return Entry{}, Before
	}
	return e.canon[index-e.from], Within
}

// FirstVisible returns the first fully visible index.
func (e *Engine) FirstVisible() int {
	if len(e.canon) == 0 {
		return 0
	}
	for _, c := range e.canon {
		if c.Position >= 0 {
			return c.Index
		}
	}
	return e.canon[len(e.canon)-1].Index + 1
}

// LastVisible returns the last fully visible index.
func (e *Engine) LastVisible() int {
	if len(e.canon) == 0 {
		return e.source.Len()
	}
	for i := len(e.canon) - 1; i >= 0; i-- {
		if e.canon[i].End() <= e.page {
			return e.canon[i].Index
		}
	}
	return e.canon[0].Index - 1
}

// VisibleCount returns the number of fully visible slots, 0 when nothing
// is materialized.
func (e *Engine) VisibleCount() int {
	if len(e.canon) == 0 {
		return 0
	}
	return max(e.LastVisible()-e.FirstVisible()+1, 0)
}

// ResizeHandleAt reports the item whose trailing edge lies within the
// resize threshold of pixel pos. Under right-to-left layout the trailing
// edge of an item is its left side.
func (e *Engine) ResizeHandleAt(pos int) (int, bool) {
	entry, ok := e.table.Locate(pos)
	if !ok {
		return 0, false
	}
	nearStart := abs(entry.Position-pos) < abs(entry.End()-pos)
	boundary := entry.End()
	if nearStart {
		boundary = entry.Position
	}
	if boundary <= 0 || abs(boundary-pos) >= e.tunables.ResizeThreshold {
		return 0, false
	}
	target := entry.Index
	if nearStart != e.rtl() {
		// The leading edge belongs to the previous item.
		target--
	}
	if target < 0 || target >= e.source.Len() {
		return 0, false
	}
	return target, true
}

// DropTarget returns the destination index for a drag-to-reorder released
// at pixel pos. Drops past the last item land at Len.
func (e *Engine) DropTarget(pos int) (int, bool) {
	entry, ok := e.table.Locate(pos)
	if !ok {
		return 0, false
	}
	return min(entry.Index, e.source.Len()), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
