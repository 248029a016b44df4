package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/go-drift/sheet/pkg/config"
	"github.com/go-drift/sheet/pkg/header"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults have been applied.

The configuration is read from sheet.yaml or sheet.toml in the working
directory, or from the path given with --config. With -format yaml or
-format toml the output is a complete configuration file.`,
		Usage: "sheet config [-format text|yaml|toml]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	format := fs.String("format", "text", "Output format: text, yaml or toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := cfg.Resolve()
	if err != nil {
		return err
	}

	if *format != "text" {
		data, err := res.Config().Marshal(*format)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	source := res.Path
	if source == "" {
		source = "defaults (no " + config.YAMLFile + " or " + config.TOMLFile + ")"
	}
	t := res.Tunables
	fmt.Fprintf(out, "Source:              %s\n", source)
	fmt.Fprintf(out, "Schema:              %s\n", res.Version)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Axis:")
	fmt.Fprintf(out, "  orientation        %s\n", res.Orientation)
	fmt.Fprintf(out, "  direction          %s\n", res.Direction)
	fmt.Fprintf(out, "  default item size  %dpx\n", t.DefaultItemSize)
	fmt.Fprintf(out, "  overshoot          %g\n", t.Overshoot)
	fmt.Fprintf(out, "  out-of-sight       %dpx\n", t.OutOfSightMargin)
	fmt.Fprintf(out, "  pool limit         %d\n", t.PoolLimit)
	fmt.Fprintf(out, "  max seek steps     %d\n", t.MaxSeekSteps)
	fmt.Fprintf(out, "  resize threshold   %dpx\n", t.ResizeThreshold)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Header:")
	fmt.Fprintf(out, "  font               %s (available: %s)\n", res.FontName, strings.Join(header.FaceNames(), ", "))
	fmt.Fprintf(out, "  padding            %dpx\n", res.Style.Padding)
	fmt.Fprintf(out, "  wide factor        %d\n", res.Style.WideFactor)
	return nil
}
