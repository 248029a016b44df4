package axistest

import "github.com/go-drift/sheet/pkg/axis"

// Widget is an axis.Widget with a fixed natural size.
type Widget struct {
	Index     int
	Size      int
	Synthetic bool
	// Resets counts calls to Reset.
	Resets int
}

// NaturalSize returns Size regardless of orientation.
func (w *Widget) NaturalSize(axis.Orientation, int) int {
	return w.Size
}

// Reset clears the bound slot.
func (w *Widget) Reset() {
	w.Index = -1
	w.Size = 0
	w.Synthetic = false
	w.Resets++
}

// Factory binds Widgets sized by SizeOf.
type Factory struct {
	// SizeOf returns the natural size of slot index.
	SizeOf func(index int) int
	// Created counts allocations, Reused counts recycled widgets.
	Created int
	Reused  int
	// Bound records every slot passed to Bind.
	Bound []axis.Slot
}

// NewFactory creates a factory whose widgets are all size pixels.
func NewFactory(size int) *Factory {
	return &Factory{SizeOf: func(int) int { return size }}
}

// Bind implements axis.Factory.
func (f *Factory) Bind(slot axis.Slot, recycled axis.Widget) axis.Widget {
	w, ok := recycled.(*Widget)
	if ok {
		f.Reused++
	} else {
		w = &Widget{}
		f.Created++
	}
	w.Index = slot.Index
	w.Synthetic = slot.Synthetic
	w.Size = f.SizeOf(slot.Index)
	f.Bound = append(f.Bound, slot)
	return w
}
