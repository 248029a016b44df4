package axis

// Widget is a materialized header or cell presentation.
type Widget interface {
	// NaturalSize returns the preferred extent along orientation o when
	// the widget is given cross pixels on the other axis.
	NaturalSize(o Orientation, cross int) int
	// Reset clears all per-item state so the widget can present another
	// item.
	Reset()
}

// Factory produces the widget for a slot. When recycled is non-nil it is a
// reset widget from the pool, and the factory may rebind and return it.
// Ownership of recycled passes to the factory either way.
type Factory interface {
	Bind(slot Slot, recycled Widget) Widget
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc func(slot Slot, recycled Widget) Widget

// Bind calls f(slot, recycled).
func (f FactoryFunc) Bind(slot Slot, recycled Widget) Widget {
	return f(slot, recycled)
}

// Pool holds idle widgets for reuse. Widgets are reset when returned, and
// the most recently returned widget is handed out first.
type Pool struct {
	free  []Widget
	limit int
}

// NewPool creates a pool that retains at most limit idle widgets.
func NewPool(limit int) *Pool {
	return &Pool{limit: limit}
}

// Get takes an idle widget out of the pool, or returns nil when empty.
func (p *Pool) Get() Widget {
	n := len(p.free)
	if n == 0 {
		return nil
	}
	w := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	return w
}

// Put resets w and keeps it for reuse. Widgets beyond the limit are
// dropped after the reset.
func (p *Pool) Put(w Widget) {
	if w == nil {
		return
	}
	w.Reset()
	if len(p.free) >= p.limit {
		return
	}
	p.free = append(p.free, w)
}

// Len returns the number of idle widgets.
func (p *Pool) Len() int {
	return len(p.free)
}

// Limit returns the retention cap.
func (p *Pool) Limit() int {
	return p.limit
}
