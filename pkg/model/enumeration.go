package model

import (
	"fmt"
	"strconv"

	"github.com/go-drift/sheet/pkg/axis"
)

// DefaultOffset is the number of the first item of a new Enumeration.
const DefaultOffset = 1

// Enumeration is the stock header model: Size items numbered from Offset.
// Items are computed on demand. Every item whose number is 4 modulo 5 is
// struck through when striking is enabled, and every item whose number is
// 6 modulo 7 is wide.
type Enumeration struct {
	notifier
	size   int
	offset int
	strike bool
}

// NewEnumeration creates an enumeration of size items numbered from
// DefaultOffset.
func NewEnumeration(size int) *Enumeration {
	return &Enumeration{size: max(size, 0), offset: DefaultOffset}
}

// Len returns the number of items.
func (m *Enumeration) Len() int {
	return m.size
}

// Item returns the Datum at position i.
func (m *Enumeration) Item(i int) any {
	return m.Datum(i)
}

// Datum returns the header for position i.
func (m *Enumeration) Datum(i int) Datum {
	id := i + m.offset
	return Datum{
		Text:      strconv.Itoa(id),
		Label:     fmt.Sprintf("Number %d", id),
		Strike:    m.strike && id%5 == 4,
		Wide:      id%7 == 6,
		Sensitive: true,
	}
}

// Offset returns the number of the first item.
func (m *Enumeration) Offset() int {
	return m.offset
}

// SetOffset renumbers every item.
func (m *Enumeration) SetOffset(offset int) {
	if offset == m.offset {
		return
	}
	m.offset = offset
	m.notify(axis.Change{Position: 0, Removed: m.size, Added: m.size})
}

// Strike reports whether striking is enabled.
func (m *Enumeration) Strike() bool {
	return m.strike
}

// SetStrike enables or disables striking.
func (m *Enumeration) SetStrike(strike bool) {
	if strike == m.strike {
		return
	}
	m.strike = strike
	m.notify(axis.Change{Position: 0, Removed: m.size, Added: m.size})
}

// SetSize grows or shrinks the enumeration at its end.
func (m *Enumeration) SetSize(size int) {
	size = max(size, 0)
	old := m.size
	m.size = size
	m.notify(tailChange(old, size))
}

// tailChange describes resizing a list from old to size items at its end.
func tailChange(old, size int) axis.Change {
	if size >= old {
		return axis.Change{Position: old, Added: size - old}
	}
	return axis.Change{Position: size, Removed: old - size}
}
