package axis

import (
	"fmt"
	"math"

	sheeterrors "github.com/go-drift/sheet/pkg/errors"
)

// JumpStart scrolls so that index starts at the leading edge of the
// viewport.
func (e *Engine) JumpStart(index int) error {
	return e.jumpStart("axis.JumpStart", index, 0)
}

// JumpStartWithOffset scrolls so that index starts offset pixels after the
// leading edge. A negative offset leaves the item partly scrolled off.
func (e *Engine) JumpStartWithOffset(index, offset int) error {
	return e.jumpStart("axis.JumpStartWithOffset", index, offset)
}

// JumpEnd scrolls so that index ends at the trailing edge of the viewport.
func (e *Engine) JumpEnd(index int) error {
	return e.jumpEnd("axis.JumpEnd", index, 0)
}

// JumpEndWithOffset scrolls so that index ends offset pixels after the
// trailing edge.
func (e *Engine) JumpEndWithOffset(index, offset int) error {
	return e.jumpEnd("axis.JumpEndWithOffset", index, offset)
}

// JumpCenter scrolls so that index sits approximately in the middle of the
// viewport.
func (e *Engine) JumpCenter(index int) error {
	const op = "axis.JumpCenter"
	if err := e.checkIndex(op, index); err != nil {
		return err
	}
	if e.page <= 0 {
		return nil
	}
	e.holdUpper = true
	e.scrollTo(e.proportionalValue(index))
	if err := e.coarse(op, index); err != nil {
		return err
	}
	entry, where := e.bounds(index)
	if where != Within {
		return nil
	}
	delta := e.page/2 - (entry.Position + entry.Size/2)
	if delta != 0 {
		e.scrollTo(e.value() - delta)
	}
	return nil
}

// Reveal scrolls the minimum needed to make index fully visible: to the
// trailing edge when it lies after the visible items, to the leading edge
// when it lies before them.
func (e *Engine) Reveal(index int) error {
	const op = "axis.Reveal"
	if err := e.checkIndex(op, index); err != nil {
		return err
	}
	switch {
	case index > e.LastVisible():
		return e.jumpEnd(op, index, 0)
	case index < e.FirstVisible():
		return e.jumpStart(op, index, 0)
	}
	return nil
}

func (e *Engine) jumpStart(op string, index, offset int) error {
	if err := e.checkIndex(op, index); err != nil {
		return err
	}
	if e.page <= 0 {
		return nil
	}
	e.holdUpper = true
	e.scrollTo(e.proportionalValue(index))
	if err := e.coarse(op, index); err != nil {
		return err
	}
	return e.fine(op, index, offset, alignStart)
}

func (e *Engine) jumpEnd(op string, index, offset int) error {
	if err := e.checkIndex(op, index); err != nil {
		return err
	}
	if e.page <= 0 {
		return nil
	}
	e.holdUpper = true
	e.scrollTo(e.proportionalValue(index + 1))
	if err := e.coarse(op, index); err != nil {
		return err
	}
	return e.fine(op, index, offset, e.alignEnd)
}

func (e *Engine) checkIndex(op string, index int) error {
	if extent := e.Extent(); index < 0 || index >= extent {
		return fmt.Errorf("%s: %w: %d not in [0, %d)", op, ErrOutOfRange, index, extent)
	}
	return nil
}

// alignStart is the distance that moves an item's start to pixel 0.
func alignStart(entry Entry) int {
	return -entry.Position
}

// alignEnd is the distance that moves an item's end to the viewport end.
func (e *Engine) alignEnd(entry Entry) int {
	return e.page - entry.End()
}

// proportionalValue estimates the value at which index begins.
func (e *Engine) proportionalValue(index int) int {
	span := e.adj.Upper() - e.adj.PageSize()
	return int(span * float64(index) / float64(e.Extent()))
}

// scrollTo moves to value v and updates the window. While a seek holds the
// upper bound, upper grows to admit v.
func (e *Engine) scrollTo(v int) {
	upper := int(math.Round(e.adj.Upper()))
	if e.holdUpper && v > upper-e.page {
		upper = v + e.page
	}
	v = min(max(v, 0), max(upper-e.page, 0))
	e.writeAdjustment(upper, e.page, v)
	e.ensureVisible(false)
}

// coarse materializes index with a halving-step search. Each step moves by
// k pages toward the target; k starts at upper/page and halves whenever the
// direction flips.
func (e *Engine) coarse(op string, index int) error {
	k := e.adj.Upper() / float64(e.page)
	oldDir := Within
	for steps := 0; ; steps++ {
		_, dir := e.bounds(index)
		if dir == Within {
			return nil
		}
		if steps >= e.tunables.MaxSeekSteps {
			return e.seekFailed(op, index, "coarse", steps, 0)
		}
		step := float64(e.page) * k * float64(dir)
		if math.Abs(step) < 1 {
			step = float64(dir)
		}
		e.scrollTo(e.value() + int(step))
		if oldDir == -dir {
			k /= 2
		}
		oldDir = dir
	}
}

// fine nudges the value by the remaining distance until align reports zero.
// Reaching the start of the content ends the seek early.
func (e *Engine) fine(op string, index, offset int, align func(Entry) int) error {
	entry, _ := e.bounds(index)
	delta := align(entry) + offset
	oldDelta, oldV := delta+1, -1
	for steps := 0; delta != 0; steps++ {
		if steps >= e.tunables.MaxSeekSteps {
			return e.seekFailed(op, index, "fine", steps, delta)
		}
		v := e.value()
		if v == 0 && delta > 0 {
			return nil
		}
		e.scrollTo(v - delta)
		if err := e.coarse(op, index); err != nil {
			return err
		}
		entry, _ = e.bounds(index)
		delta = align(entry) + offset
		if delta == oldDelta && v == oldV {
			return e.seekFailed(op, index, "fine", steps+1, delta)
		}
		oldDelta, oldV = delta, v
	}
	return nil
}

func (e *Engine) seekFailed(op string, index int, phase string, steps, residual int) error {
	err := &sheeterrors.SeekError{Index: index, Phase: phase, Steps: steps, Residual: residual}
	sheeterrors.Report(&sheeterrors.SheetError{
		Op:       op,
		Kind:     sheeterrors.KindSeek,
		Severity: sheeterrors.SeverityWarning,
		Axis:     e.name,
		Err:      err,
	})
	return err
}
