package header

import (
	"golang.org/x/image/font"

	"github.com/go-drift/sheet/pkg/axis"
)

// Label is a header button. It implements axis.Widget.
type Label struct {
	Style     Style
	Index     int
	Text      string
	Tooltip   string
	Strike    bool
	Wide      bool
	Sensitive bool
}

// NewLabel creates an empty label using style.
func NewLabel(style Style) *Label {
	return &Label{Style: style, Index: -1}
}

// NaturalSize returns the text advance plus padding along the horizontal
// axis, tripled (by default) for wide labels, and the line height plus
// padding along the vertical axis. The cross size does not matter for a
// single-line label.
func (l *Label) NaturalSize(o axis.Orientation, cross int) int {
	face := l.Style.face()
	pad := 2 * l.Style.Padding
	if o == axis.Horizontal {
		width := font.MeasureString(face, l.Text).Ceil() + pad
		if l.Wide && l.Style.WideFactor > 1 {
			width *= l.Style.WideFactor
		}
		return width
	}
	return face.Metrics().Height.Ceil() + pad
}

// Reset clears everything but the style.
func (l *Label) Reset() {
	*l = Label{Style: l.Style, Index: -1}
}
