package axis

// Change describes a mutation of an item list: at Position, Removed items
// were replaced by Added new ones.
type Change struct {
	Position int
	Removed  int
	Added    int
}

// ItemSource is the list an engine virtualizes. Indices are stable between
// change notifications, and Item returns the same value for the same index
// until a change is announced.
type ItemSource interface {
	// Len returns the number of items.
	Len() int
	// Item returns the item at index i, 0 <= i < Len().
	Item(i int) any
	// AddListener registers a callback for list mutations and returns a
	// function that removes it.
	AddListener(listener func(Change)) func()
}

// Slot is what a factory is asked to present. Synthetic slots pad the
// axis beyond the last item; they have no Item.
type Slot struct {
	Index     int
	Item      any
	Synthetic bool
}

// emptySource stands in for a nil ItemSource.
type emptySource struct{}

func (emptySource) Len() int                        { return 0 }
func (emptySource) Item(int) any                    { return nil }
func (emptySource) AddListener(func(Change)) func() { return func() {} }
