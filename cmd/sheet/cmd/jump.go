package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/go-drift/sheet/pkg/axis"
)

func init() {
	RegisterCommand(&Command{
		Name:  "jump",
		Short: "Jump to an item and print the window",
		Long: `Jump a header axis to an item and print the materialized labels.

Alignments:
  start    the item starts at the leading edge (default)
  end      the item ends at the trailing edge
  center   the item sits in the middle of the viewport
  reveal   scroll only as far as needed to show the item

-offset shifts the start and end alignments by the given pixels.`,
		Usage: "sheet jump [-align start|end|center|reveal] [-offset PX] [flags] <index>",
		Run:   runJump,
	})
}

func runJump(args []string) error {
	fs := flag.NewFlagSet("jump", flag.ContinueOnError)
	var af axisFlags
	af.register(fs)
	align := fs.String("align", "start", "Alignment: start, end, center or reveal")
	offset := fs.Int("offset", 0, "Pixel offset for start and end alignment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("jump requires exactly one index")
	}
	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", fs.Arg(0), err)
	}

	e, err := af.build("jump")
	if err != nil {
		return err
	}
	defer e.Close()

	jump, err := jumpFunc(e, *align, *offset)
	if err != nil {
		return err
	}
	if err := jump(index); err != nil {
		return err
	}

	printWindow(out, e)
	if entry, where := e.FindItemBounds(index); where == axis.Within {
		fmt.Fprintf(out, "\nitem %d at %d, %dpx\n", index, entry.Position, entry.Size)
	}
	return nil
}

func jumpFunc(e *axis.Engine, align string, offset int) (func(int) error, error) {
	switch align {
	case "start":
		return func(i int) error { return e.JumpStartWithOffset(i, offset) }, nil
	case "end":
		return func(i int) error { return e.JumpEndWithOffset(i, offset) }, nil
	case "center":
		return e.JumpCenter, nil
	case "reveal":
		return e.Reveal, nil
	}
	return nil, fmt.Errorf("unknown alignment %q", align)
}
