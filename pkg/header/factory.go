package header

import (
	"fmt"
	"strconv"

	"github.com/go-drift/sheet/pkg/axis"
	"github.com/go-drift/sheet/pkg/model"
)

// Factory binds items to Labels. It implements axis.Factory.
//
// Items may be model.Datum, string, fmt.Stringer, or anything fmt can
// print. Synthetic slots get placeholder text, are insensitive, and carry
// no tooltip.
type Factory struct {
	Style Style
	// Placeholder returns the text of synthetic slot index. Nil numbers
	// the slot from one.
	Placeholder func(index int) string

	// Created counts labels allocated because the pool was empty.
	Created int
}

// NewFactory creates a factory producing labels with style.
func NewFactory(style Style) *Factory {
	return &Factory{Style: style}
}

// Bind presents slot on recycled when it is a Label, or on a new Label.
func (f *Factory) Bind(slot axis.Slot, recycled axis.Widget) axis.Widget {
	l, ok := recycled.(*Label)
	if !ok {
		l = NewLabel(f.Style)
		f.Created++
	}
	l.Style = f.Style
	l.Index = slot.Index
	if slot.Synthetic {
		l.Text = f.placeholder(slot.Index)
		l.Tooltip = ""
		l.Sensitive = false
		return l
	}

	l.Sensitive = true
	switch item := slot.Item.(type) {
	case model.Datum:
		l.Text = item.Text
		l.Tooltip = item.Label
		l.Strike = item.Strike
		l.Wide = item.Wide
		l.Sensitive = item.Sensitive
	case string:
		l.Text = item
		l.Tooltip = item
	case fmt.Stringer:
		l.Text = item.String()
		l.Tooltip = l.Text
	default:
		l.Text = fmt.Sprint(item)
		l.Tooltip = l.Text
	}
	return l
}

func (f *Factory) placeholder(index int) string {
	if f.Placeholder != nil {
		return f.Placeholder(index)
	}
	return strconv.Itoa(index + 1)
}
