package model

// Datum is a header item: what the header shows, its tooltip, and how it
// is decorated.
type Datum struct {
	Text      string
	Label     string
	Strike    bool
	Wide      bool
	Sensitive bool
}

// String returns the header text.
func (d Datum) String() string {
	return d.Text
}
