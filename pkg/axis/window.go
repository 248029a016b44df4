package axis

import (
	sheeterrors "github.com/go-drift/sheet/pkg/errors"
)

// ensureVisible brings the window, the adjustment and the geometry table in
// line with the current value and viewport, then notifies listeners.
func (e *Engine) ensureVisible(force bool) {
	if e.busy {
		return
	}
	e.update(force)
	for e.stale {
		// The list changed while the window was being filled.
		e.stale = false
		e.releaseAll()
		e.update(true)
	}
	e.notifyListeners()
}

func (e *Engine) update(force bool) {
	e.busy = true
	defer func() { e.busy = false }()

	if e.page <= 0 {
		e.releaseAll()
		e.layout()
		return
	}
	for pass := 0; pass < maxPasses; pass++ {
		e.fill(force)
		force = false
		// The estimate, and with it the extent, is fixed after the first pass.
		if !e.settle(pass == 0) {
			break
		}
	}
	for e.to > e.Extent() && len(e.items) > 0 {
		e.popBack()
	}
	e.layout()
}

// fill grows and trims the window so that it covers [0, page) in pixel
// coordinates, rebuilding it from scratch when the value has moved out of
// sight of the current window.
func (e *Engine) fill(force bool) {
	extent := e.Extent()
	v := e.value()
	margin := e.tunables.OutOfSightMargin

	outOfSight := force || e.from > extent
	if !outOfSight {
		bs := e.origin - v
		if len(e.items) > 0 {
			outOfSight = bs+e.binSize < -margin || bs >= e.page+margin
		} else {
			outOfSight = bs < -e.page || bs >= e.page
		}
	}
	if outOfSight {
		e.releaseAll()
		start := e.proportionalStart(extent)
		if start > extent {
			sheeterrors.Invariant("axis.fill", "start %d beyond extent %d", start, extent)
		}
		e.from, e.to = start, start
		e.origin = v
		if start == extent {
			// Nothing follows the end; build backwards from the bottom edge.
			e.origin = v + e.page
		}
	}

	for e.to > extent && len(e.items) > 0 {
		e.popBack()
	}
	if e.to > extent {
		e.from, e.to = extent, extent
	}

	e.trimHead(v)
	for e.from > 0 && e.origin-v > 0 {
		e.pushFront(e.bind(e.from - 1))
	}
	e.trimTail(v)
	for e.origin-v+e.binSize < e.page && e.to < extent {
		e.pushBack(e.bind(e.to))
	}
	e.trimHead(v)
}

// trimHead drops leading slots that end at or before pixel 0.
func (e *Engine) trimHead(v int) {
	for len(e.items) > 0 && e.origin-v+e.items[0].size <= 0 {
		e.popFront()
	}
}

// trimTail drops trailing slots that start at or after the viewport end.
func (e *Engine) trimTail(v int) {
	for len(e.items) > 0 && e.origin-v+e.binSize-e.items[len(e.items)-1].size >= e.page {
		e.popBack()
	}
}

// proportionalStart maps the current value to a slot index by its fraction
// of the scrollable range.
func (e *Engine) proportionalStart(extent int) int {
	span := e.adj.Upper() - e.adj.PageSize()
	if span <= 0 {
		return 0
	}
	ratio := min(max(float64(e.value())/span, 0), 1)
	return int(float64(extent) * ratio)
}

// reestimate stores the mean size of the window as the estimate. An empty
// window keeps the last known mean.
func (e *Engine) reestimate() {
	if len(e.items) > 0 {
		e.estimate = max(e.binSize/len(e.items), 1)
	}
}

// settle re-estimates the content size and moves the window origin to the
// estimated position of item from, shifting the value by the same amount so
// nothing moves on screen. The estimate is refreshed only when measure is
// set. It reports whether another fill is due: the value had to be clamped,
// or the extent no longer matches the window.
func (e *Engine) settle(measure bool) bool {
	if measure {
		e.reestimate()
	}
	avg := e.estimate
	extent := e.Extent()
	startPart := e.from * avg
	endPart := max(extent-e.to, 0) * avg
	upper := max(startPart+e.binSize+endPart, e.page)

	bs := e.origin - e.value()
	e.origin = startPart
	want := startPart - bs
	if e.holdUpper && want > upper-e.page {
		upper = want + e.page
	}
	got := min(max(want, 0), upper-e.page)
	e.writeAdjustment(upper, e.page, got)
	short := e.to < extent && e.origin-got+e.binSize < e.page
	return got != want || e.to > extent || short
}

// layout rebuilds the canonical entries and the display table.
func (e *Engine) layout() {
	pos := e.origin - e.value()
	canon := e.canon[:0]
	for _, m := range e.items {
		canon = append(canon, Entry{Index: m.index, Position: pos, Size: m.size})
		pos += m.size
	}
	e.canon = canon

	display := make([]Entry, len(canon))
	if e.rtl() {
		last := len(canon) - 1
		for i, c := range canon {
			display[last-i] = Entry{Index: c.Index, Position: e.page - c.Position - c.Size, Size: c.Size}
		}
	} else {
		copy(display, canon)
	}
	e.table.reset(display)
}
