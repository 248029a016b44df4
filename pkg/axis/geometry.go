package axis

import (
	"fmt"

	sheeterrors "github.com/go-drift/sheet/pkg/errors"
)

// Entry is the geometry of one materialized slot in widget coordinates.
type Entry struct {
	Index    int `json:"index"`
	Position int `json:"position"`
	Size     int `json:"size"`
}

// End returns the coordinate just past the entry.
func (e Entry) End() int {
	return e.Position + e.Size
}

// Contains reports whether pixel pos lies inside the entry.
func (e Entry) Contains(pos int) bool {
	return pos >= e.Position && pos < e.End()
}

// Placement locates an item relative to the materialized window.
type Placement int

const (
	// Before means the item precedes the window.
	Before Placement = -1
	// Within means the item is materialized.
	Within Placement = 0
	// After means the item follows the window.
	After Placement = 1
)

func (p Placement) String() string {
	switch p {
	case Before:
		return "before"
	case Within:
		return "within"
	case After:
		return "after"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// Table is the geometry of the materialized window in display order, so
// positions increase along the table. Under right-to-left layout the
// highest index comes first.
type Table struct {
	entries []Entry
}

// NewTable wraps entries, which must be in display order.
func NewTable(entries []Entry) *Table {
	return &Table{entries: entries}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns entry i in display order.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of the entries in display order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Locate returns the entry covering pos: scanning from the display end, the
// first entry whose position is at or before pos. It reports false when the
// table is empty or pos precedes every entry.
//
// Positions must strictly increase along the table; a violation is an
// invariant fault.
func (t *Table) Locate(pos int) (Entry, bool) {
	n := len(t.entries)
	for i := n - 1; i >= 0; i-- {
		e := t.entries[i]
		if i < n-1 && e.Position >= t.entries[i+1].Position {
			sheeterrors.Invariant("axis.Locate",
				"geometry not monotonic: entry %d at %d, next at %d",
				e.Index, e.Position, t.entries[i+1].Position)
		}
		if e.Position <= pos {
			return e, true
		}
	}
	return Entry{}, false
}

func (t *Table) reset(entries []Entry) {
	t.entries = entries
}
