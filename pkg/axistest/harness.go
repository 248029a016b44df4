package axistest

import (
	"testing"

	"github.com/go-drift/sheet/pkg/axis"
	"github.com/go-drift/sheet/pkg/model"
)

// Harness is an engine over a uniform list with its collaborators exposed.
type Harness struct {
	Engine     *axis.Engine
	Factory    *Factory
	Adjustment *axis.ScrollAdjustment
	Items      *model.List[int]
	// Updates counts engine change notifications.
	Updates int
}

// NewHarness creates an engine over n items of size pixels with a page by
// cross viewport. The engine is closed by t.Cleanup.
func NewHarness(t testing.TB, opts axis.Options, n, size, page, cross int) *Harness {
	t.Helper()
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	h := &Harness{
		Factory:    NewFactory(size),
		Adjustment: axis.NewScrollAdjustment(0, 0, 0),
		Items:      model.NewList(items...),
	}
	if opts.Factory == nil {
		opts.Factory = h.Factory
	}
	opts.Adjustment = h.Adjustment
	opts.Source = h.Items
	h.Engine = axis.New(opts)
	h.Engine.AddListener(func() { h.Updates++ })
	t.Cleanup(h.Engine.Close)
	h.Engine.SetViewport(page, cross)
	return h
}

// ScrollTo sets the adjustment value as a user scroll would.
func (h *Harness) ScrollTo(v float64) {
	h.Adjustment.SetValue(v)
}

// CheckInvariants reports violations of the window invariants: the window
// lies within the extent, the table is consistent with it, and unless the
// window touches either end of the extent it covers the whole viewport.
func (h *Harness) CheckInvariants(t testing.TB) {
	t.Helper()
	e := h.Engine
	from, to, extent := e.From(), e.To(), e.Extent()
	if from < 0 || from > to || to > extent {
		t.Fatalf("window [%d, %d) outside [0, %d]", from, to, extent)
	}
	table := e.Table()
	if table.Len() != to-from {
		t.Fatalf("table has %d entries for window [%d, %d)", table.Len(), from, to)
	}
	if table.Len() == 0 {
		return
	}
	first, last := table.At(0), table.At(table.Len()-1)
	for i := 1; i < table.Len(); i++ {
		prev, cur := table.At(i-1), table.At(i)
		if cur.Position != prev.End() {
			t.Fatalf("entry %d at %d does not follow entry %d ending at %d", cur.Index, cur.Position, prev.Index, prev.End())
		}
	}
	page := e.PageSize()
	if from > 0 && to < extent {
		if first.Position > 0 || last.End() < page {
			t.Fatalf("window [%d, %d) spans [%d, %d), viewport is [0, %d)", from, to, first.Position, last.End(), page)
		}
	}
	if first.End() <= 0 || last.Position >= page {
		t.Fatalf("window [%d, %d) has slots outside the viewport: [%d, %d)", from, to, first.Position, last.End())
	}
}
