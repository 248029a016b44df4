package axis

import (
	"fmt"
	"math"
	"slices"

	sheeterrors "github.com/go-drift/sheet/pkg/errors"
)

// maxPasses bounds the fill/settle iterations of a single update.
const maxPasses = 4

// materialized is a slot in the window together with its measured size.
type materialized struct {
	index  int
	widget Widget
	size   int
}

// Options configure a new Engine.
type Options struct {
	Orientation Orientation
	Direction   Direction
	// Adjustment is the scroll state. Nil creates a ScrollAdjustment.
	Adjustment Adjustment
	// Factory builds widgets for slots. Required.
	Factory Factory
	// Source is the item list. Nil behaves as an empty list.
	Source ItemSource
	// Tunables are the numeric knobs. Zero fields take the values of
	// DefaultTunables.
	Tunables Tunables
	// Name identifies the axis in error reports, e.g. "rows".
	Name string
}

// Engine virtualizes one axis of a sheet.
//
// The engine keeps a window [From, To) of materialized slots that covers the
// viewport. Indices from Len up to Extent are synthetic slots that pad the
// space after the last item. Any change of scroll value, viewport, item list
// or size overrides runs an update that grows and trims the window, settles
// the adjustment, and rebuilds the geometry table.
type Engine struct {
	orientation Orientation
	direction   Direction
	name        string
	tunables    Tunables

	adj     Adjustment
	factory Factory
	source  ItemSource
	pool    *Pool

	page  int
	cross int

	// Window state in left-to-right coordinates. origin is the content
	// position of item from; its pixel position is origin - value.
	from    int
	to      int
	origin  int
	binSize int
	items   []materialized
	canon   []Entry
	table   Table

	estimate  int
	overrides map[int]int

	// holdUpper lets seeks extend upper so the target can reach the
	// requested edge. Cleared by external scrolling and list changes.
	holdUpper bool
	busy      bool
	stale     bool

	removeSourceListener func()
	removeAdjListener    func()
	listeners            map[int]func()
	nextListenerID       int
}

// New creates an engine. The engine has no viewport until SetViewport is
// called, and materializes nothing before that.
func New(opts Options) *Engine {
	if opts.Factory == nil {
		sheeterrors.Invariant("axis.New", "nil factory")
	}
	adj := opts.Adjustment
	if adj == nil {
		adj = NewScrollAdjustment(0, 0, 0)
	}
	tunables := opts.Tunables.withDefaults()
	e := &Engine{
		orientation: opts.Orientation,
		direction:   opts.Direction,
		name:        opts.Name,
		tunables:    tunables,
		adj:         adj,
		factory:     opts.Factory,
		pool:        NewPool(tunables.PoolLimit),
		estimate:    tunables.DefaultItemSize,
		overrides:   make(map[int]int),
	}
	e.removeAdjListener = adj.AddListener(e.onAdjustmentChanged)
	e.attachSource(opts.Source)
	return e
}

// Orientation returns the layout axis.
func (e *Engine) Orientation() Orientation {
	return e.orientation
}

// Direction returns the text direction.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Name returns the name used in error reports.
func (e *Engine) Name() string {
	return e.name
}

// Tunables returns the effective settings.
func (e *Engine) Tunables() Tunables {
	return e.tunables
}

// Adjustment returns the scroll state the engine drives.
func (e *Engine) Adjustment() Adjustment {
	return e.adj
}

// Source returns the item list.
func (e *Engine) Source() ItemSource {
	return e.source
}

// Pool returns the widget pool.
func (e *Engine) Pool() *Pool {
	return e.pool
}

// From returns the first materialized index.
func (e *Engine) From() int {
	return e.from
}

// To returns one past the last materialized index.
func (e *Engine) To() int {
	return e.to
}

// Len returns the number of real items.
func (e *Engine) Len() int {
	return e.source.Len()
}

// PageSize returns the viewport extent along the axis.
func (e *Engine) PageSize() int {
	return e.page
}

// CrossSize returns the viewport extent across the axis.
func (e *Engine) CrossSize() int {
	return e.cross
}

// EstimatedItemSize returns the average item size used for everything
// outside the window.
func (e *Engine) EstimatedItemSize() int {
	return e.estimate
}

// Extent returns the number of addressable slots: the items (at least one)
// plus enough synthetic slots to fill the overshoot fraction of the
// viewport past the last item.
func (e *Engine) Extent() int {
	n := e.source.Len()
	overshoot := e.page
	if n == 0 {
		n = 1
	} else {
		overshoot = int(float64(e.page) * e.tunables.Overshoot)
	}
	return n + overshoot/e.estimate
}

// Table returns the geometry of the window. It is rebuilt by every update
// and must not be retained across updates.
func (e *Engine) Table() *Table {
	return &e.table
}

// Widget returns the widget materialized for index.
func (e *Engine) Widget(index int) (Widget, bool) {
	if index < e.from || index >= e.to {
		return nil, false
	}
	return e.items[index-e.from].widget, true
}

// Each calls fn for every materialized slot in display order.
func (e *Engine) Each(fn func(Entry, Widget)) {
	n := e.table.Len()
	for j := 0; j < n; j++ {
		k := j
		if e.rtl() {
			k = n - 1 - j
		}
		fn(e.table.At(j), e.items[k].widget)
	}
}

// AddListener registers a callback invoked after every update.
func (e *Engine) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func())
	}
	id := e.nextListenerID
	e.nextListenerID++
	e.listeners[id] = listener
	return func() {
		delete(e.listeners, id)
	}
}

// SetViewport sets the viewport size: page along the axis and cross on the
// other axis. A change of cross size re-measures the window in place.
func (e *Engine) SetViewport(page, cross int) {
	page, cross = max(page, 0), max(cross, 0)
	if page == e.page && cross == e.cross {
		return
	}
	crossChanged := cross != e.cross
	e.page, e.cross = page, cross
	if crossChanged {
		for i := range e.items {
			m := &e.items[i]
			size := e.measure(m.index, m.widget)
			e.binSize += size - m.size
			m.size = size
		}
	}
	e.ensureVisible(false)
}

// SetSource replaces the item list and rebuilds the window.
func (e *Engine) SetSource(src ItemSource) {
	if e.removeSourceListener != nil {
		e.removeSourceListener()
	}
	e.attachSource(src)
	e.holdUpper = false
	e.ensureVisible(true)
}

// SetDirection changes the text direction. For horizontal axes the
// adjustment value is mirrored so the same content stays in view.
func (e *Engine) SetDirection(d Direction) {
	if d == e.direction {
		return
	}
	wasRTL := e.rtl()
	e.direction = d
	if e.rtl() != wasRTL {
		mirrored := e.adj.Upper() - e.adj.PageSize() - e.adj.Value()
		e.busy = true
		e.adj.SetValue(mirrored)
		e.busy = false
	}
	e.ensureVisible(false)
}

// Refresh discards the window and rebuilds it from the current value.
func (e *Engine) Refresh() {
	e.ensureVisible(true)
}

// Close detaches the engine from its source and adjustment and returns all
// widgets to the pool.
func (e *Engine) Close() {
	if e.removeSourceListener != nil {
		e.removeSourceListener()
		e.removeSourceListener = nil
	}
	if e.removeAdjListener != nil {
		e.removeAdjListener()
		e.removeAdjListener = nil
	}
	e.releaseAll()
	e.canon = e.canon[:0]
	e.table.reset(nil)
}

func (e *Engine) attachSource(src ItemSource) {
	if src == nil {
		src = emptySource{}
	}
	e.source = src
	e.removeSourceListener = src.AddListener(e.onItemsChanged)
}

func (e *Engine) rtl() bool {
	return e.orientation == Horizontal && e.direction == RightToLeft
}

// value returns the scroll value in left-to-right coordinates.
func (e *Engine) value() int {
	v := e.adj.Value()
	if e.rtl() {
		v = e.adj.Upper() - e.adj.PageSize() - v
	}
	return int(math.Round(v))
}

// writeAdjustment stores a left-to-right value without reacting to the
// resulting notifications.
func (e *Engine) writeAdjustment(upper, page, value int) {
	prev := e.busy
	e.busy = true
	defer func() { e.busy = prev }()

	e.adj.SetPageSize(float64(page))
	e.adj.SetUpper(float64(upper))
	if e.rtl() {
		value = upper - page - value
	}
	e.adj.SetValue(float64(value))
}

func (e *Engine) onAdjustmentChanged() {
	if e.busy {
		return
	}
	e.holdUpper = false
	e.ensureVisible(false)
}

func (e *Engine) onItemsChanged(c Change) {
	if e.busy {
		e.stale = true
		return
	}
	e.holdUpper = false
	n := e.source.Len()
	if c.Position < 0 || c.Removed < 0 || c.Added < 0 || c.Position+c.Added > n {
		sheeterrors.Warn("axis.itemsChanged", sheeterrors.KindModel,
			fmt.Errorf("inconsistent change %+v for %d items", c, n))
		e.ensureVisible(true)
		return
	}
	if c.Position > e.to && e.windowFull() {
		e.ensureVisible(false)
		return
	}
	e.releaseAll()
	e.ensureVisible(false)
}

func (e *Engine) windowFull() bool {
	return e.origin-e.value()+e.binSize > e.page || e.to-e.from == e.Extent()
}

func (e *Engine) notifyListeners() {
	for _, listener := range e.listeners {
		listener()
	}
}

// measure returns the size of a bound widget, honoring overrides.
func (e *Engine) measure(index int, w Widget) int {
	if size, ok := e.overrides[index]; ok {
		return size
	}
	return max(w.NaturalSize(e.orientation, e.cross), 1)
}

func (e *Engine) bind(index int) materialized {
	slot := Slot{Index: index}
	if index < e.source.Len() {
		slot.Item = e.source.Item(index)
	} else {
		slot.Synthetic = true
	}
	w := e.factory.Bind(slot, e.pool.Get())
	if w == nil {
		sheeterrors.Invariant("axis.bind", "factory returned no widget for slot %d", index)
	}
	return materialized{index: index, widget: w, size: e.measure(index, w)}
}

func (e *Engine) pushFront(m materialized) {
	e.items = slices.Insert(e.items, 0, m)
	e.from--
	e.origin -= m.size
	e.binSize += m.size
}

func (e *Engine) popFront() {
	m := e.items[0]
	e.items = slices.Delete(e.items, 0, 1)
	e.from++
	e.origin += m.size
	e.binSize -= m.size
	e.pool.Put(m.widget)
}

func (e *Engine) pushBack(m materialized) {
	e.items = append(e.items, m)
	e.to++
	e.binSize += m.size
}

func (e *Engine) popBack() {
	last := len(e.items) - 1
	m := e.items[last]
	e.items[last] = materialized{}
	e.items = e.items[:last]
	e.to--
	e.binSize -= m.size
	e.pool.Put(m.widget)
}

func (e *Engine) releaseAll() {
	for _, m := range e.items {
		e.pool.Put(m.widget)
	}
	clear(e.items)
	e.items = e.items[:0]
	e.to = e.from
	e.binSize = 0
}
