// Package header provides measurable header widgets for sheet axes and the
// factory that binds items to them.
package header

import (
	"fmt"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// DefaultFontName is the face used when none is configured.
const DefaultFontName = "7x13"

var faces = map[string]font.Face{
	"7x13":             basicfont.Face7x13,
	"inconsolata":      inconsolata.Regular8x16,
	"inconsolata-bold": inconsolata.Bold8x16,
}

// LookupFace returns the bundled face registered under name.
func LookupFace(name string) (font.Face, error) {
	face, ok := faces[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q (available: %v)", name, FaceNames())
	}
	return face, nil
}

// FaceNames lists the bundled faces in sorted order.
func FaceNames() []string {
	names := make([]string, 0, len(faces))
	for name := range faces {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Style controls how labels measure themselves.
type Style struct {
	// Face measures label text. Nil uses the default face.
	Face font.Face
	// Padding is added on both sides of the text along each axis.
	Padding int
	// WideFactor multiplies the width of wide labels.
	WideFactor int
}

// DefaultStyle returns the stock header style.
func DefaultStyle() Style {
	return Style{
		Face:       basicfont.Face7x13,
		Padding:    4,
		WideFactor: 3,
	}
}

func (s Style) face() font.Face {
	if s.Face == nil {
		return basicfont.Face7x13
	}
	return s.Face
}
