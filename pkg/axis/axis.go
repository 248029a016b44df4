// Package axis implements the virtualized axis engine of a spreadsheet grid.
//
// An [Engine] manages one axis (the row header or the column header) over an
// item list that may be far larger than anything that could be materialized.
// At any moment only the items overlapping the viewport have widgets; those
// widgets are drawn from a [Pool], measured, and laid out into a geometry
// [Table] that hit-testing and cell placement read.
//
// The engine keeps a scroll [Adjustment] consistent with an estimated total
// size: the materialized part is measured exactly and everything outside it
// is estimated from the average item size. Jumps to arbitrary items converge
// with a coarse halving search followed by a pixel-exact correction.
//
// Internally all arithmetic uses left-to-right coordinates. Right-to-left
// layout is applied only when the geometry table is built and when the
// adjustment is read or written.
//
// The engine is not safe for concurrent use; it is driven from the UI thread.
package axis

import (
	"errors"
	"fmt"
)

// Orientation selects the axis an engine lays out along.
// Vertical is the zero value.
type Orientation int

const (
	// Vertical lays items out top to bottom (row headers).
	Vertical Orientation = iota
	// Horizontal lays items out along the x axis (column headers).
	Horizontal
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Direction is the text direction of the surrounding widget.
type Direction int

const (
	// LeftToRight is the default direction.
	LeftToRight Direction = iota
	// RightToLeft mirrors horizontal axes. Vertical axes ignore it.
	RightToLeft
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ErrOutOfRange is returned when an index argument lies outside the
// addressable range of the axis.
var ErrOutOfRange = errors.New("index out of range")

// ErrInvalidSize is returned for non-positive size overrides.
var ErrInvalidSize = errors.New("invalid size")

// Tunables are the numeric knobs of the engine.
type Tunables struct {
	// DefaultItemSize is the size estimate used before any item has been
	// measured.
	DefaultItemSize int
	// Overshoot is the fraction of the viewport that synthetic slots fill
	// beyond the last item.
	Overshoot float64
	// OutOfSightMargin widens the band around the viewport inside which an
	// incremental update is still attempted.
	OutOfSightMargin int
	// PoolLimit caps the number of idle widgets kept for reuse.
	PoolLimit int
	// MaxSeekSteps bounds each phase of a jump.
	MaxSeekSteps int
	// ResizeThreshold is the distance in pixels from an item edge within
	// which a pointer grabs the resize handle.
	ResizeThreshold int
}

// DefaultTunables returns the stock engine settings.
func DefaultTunables() Tunables {
	return Tunables{
		DefaultItemSize:  28,
		Overshoot:        0.9,
		OutOfSightMargin: 0,
		PoolLimit:        64,
		MaxSeekSteps:     128,
		ResizeThreshold:  5,
	}
}

// Validate reports the first invalid field.
func (t Tunables) Validate() error {
	switch {
	case t.DefaultItemSize < 1:
		return fmt.Errorf("default item size must be positive, got %d", t.DefaultItemSize)
	case t.Overshoot <= 0 || t.Overshoot > 1:
		return fmt.Errorf("overshoot must be within (0, 1], got %g", t.Overshoot)
	case t.OutOfSightMargin < 0:
		return fmt.Errorf("out-of-sight margin must not be negative, got %d", t.OutOfSightMargin)
	case t.PoolLimit < 1:
		return fmt.Errorf("pool limit must be positive, got %d", t.PoolLimit)
	case t.MaxSeekSteps < 1:
		return fmt.Errorf("max seek steps must be positive, got %d", t.MaxSeekSteps)
	case t.ResizeThreshold < 1:
		return fmt.Errorf("resize threshold must be positive, got %d", t.ResizeThreshold)
	}
	return nil
}

// withDefaults fills the fields Validate requires to be positive. Every value
// it replaces is one Validate rejects.
func (t Tunables) withDefaults() Tunables {
	d := DefaultTunables()
	if t.DefaultItemSize <= 0 {
		t.DefaultItemSize = d.DefaultItemSize
	}
	if t.Overshoot <= 0 {
		t.Overshoot = d.Overshoot
	}
	if t.PoolLimit <= 0 {
		t.PoolLimit = d.PoolLimit
	}
	if t.MaxSeekSteps <= 0 {
		t.MaxSeekSteps = d.MaxSeekSteps
	}
	if t.ResizeThreshold <= 0 {
		t.ResizeThreshold = d.ResizeThreshold
	}
	return t
}
