package cmd

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-drift/sheet/pkg/axis"
	"github.com/go-drift/sheet/pkg/header"
	"github.com/go-drift/sheet/pkg/model"
)

func init() {
	RegisterCommand(&Command{
		Name:  "grid",
		Short: "Print the visible cells of a virtual table",
		Long: `Build row and column axes over a virtual table, scroll both and
print the cells whose row and column are materialized.

Column labels follow the configured direction; rows always run top to
bottom.`,
		Usage: "sheet grid [-rows N] [-columns N] [-width PX] [-height PX] [-x PX] [-y PX]",
		Run:   runGrid,
	})
}

func runGrid(args []string) error {
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	rows := fs.Int("rows", 1000, "Number of rows")
	columns := fs.Int("columns", 100, "Number of columns")
	width := fs.Int("width", 320, "Viewport width in pixels")
	height := fs.Int("height", 200, "Viewport height in pixels")
	x := fs.Float64("x", 0, "Horizontal scroll value")
	y := fs.Float64("y", 0, "Vertical scroll value")
	direction := fs.String("direction", "", "Text direction: ltr or rtl (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *direction != "" {
		cfg.Axis.Direction = *direction
	}
	res, err := cfg.Resolve()
	if err != nil {
		return err
	}

	table := model.NewVirtual(*rows, *columns)
	// The header engines take each other's viewport extent as cross size.
	rowEngine := newHeaderEngine(res, axis.Vertical, "rows", table.Rows(), *height, *width)
	defer rowEngine.Close()
	colEngine := newHeaderEngine(res, axis.Horizontal, "columns", table.Columns(), *width, *height)
	defer colEngine.Close()

	rowEngine.Adjustment().SetValue(*y)
	colEngine.Adjustment().SetValue(*x)

	var cols []int
	var head []string
	colEngine.Each(func(entry axis.Entry, w axis.Widget) {
		if entry.Index >= table.Columns().Len() {
			return
		}
		cols = append(cols, entry.Index)
		head = append(head, labelText(w))
	})

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(head, "\t"))
	var cellErr error
	rowEngine.Each(func(entry axis.Entry, w axis.Widget) {
		if entry.Index >= table.Rows().Len() || cellErr != nil {
			return
		}
		cells := make([]string, len(cols))
		for i, c := range cols {
			text, err := table.Cell(entry.Index, c)
			if err != nil {
				cellErr = err
				return
			}
			cells[i] = text
		}
		fmt.Fprintf(tw, "%s\t%s\n", labelText(w), strings.Join(cells, "\t"))
	})
	if err := tw.Flush(); err != nil {
		return err
	}
	return cellErr
}

func labelText(w axis.Widget) string {
	if label, ok := w.(*header.Label); ok {
		return label.Text
	}
	return ""
}
