package axis

// Adjustment is the scroll state shared between an engine and the widget
// that hosts it: the current value, the upper bound of the content, and the
// size of the visible page. Values are in pixels; the usable range of value
// is [0, upper-page].
//
// The engine both reads and writes the adjustment. Listeners registered with
// AddListener fire when the value changes.
type Adjustment interface {
	Value() float64
	SetValue(v float64)
	Upper() float64
	SetUpper(u float64)
	PageSize() float64
	SetPageSize(p float64)
	// AddListener registers a callback for value changes and returns a
	// function that removes it.
	AddListener(listener func()) func()
}

// ScrollAdjustment is the stock Adjustment. It keeps its value clamped to
// [0, upper-page] and notifies listeners whenever the value moves.
type ScrollAdjustment struct {
	value          float64
	upper          float64
	page           float64
	listeners      map[int]func()
	nextListenerID int
}

// NewScrollAdjustment creates an adjustment with the given bounds.
func NewScrollAdjustment(value, upper, page float64) *ScrollAdjustment {
	a := &ScrollAdjustment{upper: max(upper, 0), page: max(page, 0)}
	a.value = a.clamp(value)
	return a
}

// Value returns the current scroll value.
func (a *ScrollAdjustment) Value() float64 {
	return a.value
}

// Upper returns the upper bound of the scrollable content.
func (a *ScrollAdjustment) Upper() float64 {
	return a.upper
}

// PageSize returns the visible extent.
func (a *ScrollAdjustment) PageSize() float64 {
	return a.page
}

// MaxValue returns the largest value the adjustment accepts.
func (a *ScrollAdjustment) MaxValue() float64 {
	return max(a.upper-a.page, 0)
}

// SetValue moves the adjustment, clamping to the valid range.
func (a *ScrollAdjustment) SetValue(v float64) {
	a.setValue(a.clamp(v))
}

// SetUpper updates the content bound and re-clamps the value.
func (a *ScrollAdjustment) SetUpper(u float64) {
	a.upper = max(u, 0)
	a.setValue(a.clamp(a.value))
}

// SetPageSize updates the visible extent and re-clamps the value.
func (a *ScrollAdjustment) SetPageSize(p float64) {
	a.page = max(p, 0)
	a.setValue(a.clamp(a.value))
}

// AddListener registers a callback for value changes.
func (a *ScrollAdjustment) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if a.listeners == nil {
		a.listeners = make(map[int]func())
	}
	id := a.nextListenerID
	a.nextListenerID++
	a.listeners[id] = listener
	return func() {
		delete(a.listeners, id)
	}
}

func (a *ScrollAdjustment) setValue(v float64) {
	if v == a.value {
		return
	}
	a.value = v
	a.notifyListeners()
}

func (a *ScrollAdjustment) clamp(v float64) float64 {
	return min(max(v, 0), a.MaxValue())
}

func (a *ScrollAdjustment) notifyListeners() {
	for _, listener := range a.listeners {
		listener()
	}
}
