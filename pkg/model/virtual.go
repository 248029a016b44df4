package model

import (
	"fmt"
	"strconv"

	"github.com/go-drift/sheet/pkg/axis"
)

// Virtual is a rows by columns table whose cells are synthesized from
// their coordinates. Rows and Columns expose the two dimensions as item
// sources for the row and column axes.
type Virtual struct {
	rows    dimension
	columns dimension
}

// NewVirtual creates a table of the given size.
func NewVirtual(rows, columns int) *Virtual {
	return &Virtual{
		rows:    dimension{kind: "Row", n: max(rows, 0)},
		columns: dimension{kind: "Column", n: max(columns, 0)},
	}
}

// Rows returns the row dimension.
func (v *Virtual) Rows() axis.ItemSource {
	return &v.rows
}

// Columns returns the column dimension.
func (v *Virtual) Columns() axis.ItemSource {
	return &v.columns
}

// SetRows resizes the table at its bottom edge.
func (v *Virtual) SetRows(n int) {
	v.rows.resize(n)
}

// SetColumns resizes the table at its trailing edge.
func (v *Virtual) SetColumns(n int) {
	v.columns.resize(n)
}

// Cell returns the text of the cell at row, column.
func (v *Virtual) Cell(row, column int) (string, error) {
	if row < 0 || row >= v.rows.n || column < 0 || column >= v.columns.n {
		return "", fmt.Errorf("model.Virtual.Cell: %w: (%d, %d) in %dx%d",
			axis.ErrOutOfRange, row, column, v.rows.n, v.columns.n)
	}
	return fmt.Sprintf("r%dc%d", row, column), nil
}

// dimension is one axis of a Virtual table. Its items are Datum headers
// numbered from one.
type dimension struct {
	notifier
	kind string
	n    int
}

func (d *dimension) Len() int {
	return d.n
}

func (d *dimension) Item(i int) any {
	return Datum{
		Text:      strconv.Itoa(i + 1),
		Label:     fmt.Sprintf("%s %d", d.kind, i+1),
		Sensitive: true,
	}
}

func (d *dimension) resize(n int) {
	n = max(n, 0)
	old := d.n
	d.n = n
	d.notify(tailChange(old, n))
}
