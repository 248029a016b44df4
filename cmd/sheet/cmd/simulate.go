package cmd

import (
	"flag"
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Scroll a header axis and print its window",
		Long: `Build a header axis over numbered labels, scroll it and print the
materialized labels with their positions.

The value is in adjustment units, so under right-to-left layout 0 shows the
end of a horizontal axis. Repeating -step scrolls in increments and prints
the window after each one.`,
		Usage: "sheet simulate [-items N] [-page PX] [-value PX] [-step PX -steps N] [-size i=px,...]",
		Run:   runSimulate,
	})
}

func runSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	var af axisFlags
	af.register(fs)
	value := fs.Float64("value", 0, "Scroll value to move to")
	step := fs.Float64("step", 0, "Additional scroll distance per step")
	steps := fs.Int("steps", 0, "Number of additional steps")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	e, err := af.build("simulate")
	if err != nil {
		return err
	}
	defer e.Close()

	adj := e.Adjustment()
	adj.SetValue(*value)
	printWindow(out, e)
	for i := 0; i < *steps; i++ {
		adj.SetValue(adj.Value() + *step)
		fmt.Fprintln(out)
		printWindow(out, e)
	}
	return nil
}
