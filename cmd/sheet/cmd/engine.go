package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-drift/sheet/pkg/axis"
	"github.com/go-drift/sheet/pkg/config"
	"github.com/go-drift/sheet/pkg/header"
	"github.com/go-drift/sheet/pkg/model"
)

// axisFlags are the flags shared by commands that build a header engine.
type axisFlags struct {
	items       int
	page        int
	cross       int
	offset      int
	strike      bool
	orientation string
	direction   string
	overrides   string
}

func (a *axisFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&a.items, "items", 1000, "Number of items on the axis")
	fs.IntVar(&a.page, "page", 400, "Viewport size along the axis in pixels")
	fs.IntVar(&a.cross, "cross", 80, "Viewport size across the axis in pixels")
	fs.IntVar(&a.offset, "offset-label", 1, "Number shown on the first label")
	fs.BoolVar(&a.strike, "strike", false, "Strike through every fifth label")
	fs.StringVar(&a.orientation, "orientation", "", "Axis orientation: vertical or horizontal (default from config)")
	fs.StringVar(&a.direction, "direction", "", "Text direction: ltr or rtl (default from config)")
	fs.StringVar(&a.overrides, "size", "", "Size overrides as index=px pairs, comma separated")
}

// settings resolves the configuration with the orientation and direction
// flags applied on top.
func (a *axisFlags) settings() (*config.Resolved, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if a.orientation != "" {
		cfg.Axis.Orientation = a.orientation
	}
	if a.direction != "" {
		cfg.Axis.Direction = a.direction
	}
	return cfg.Resolve()
}

// build creates a header engine over an enumeration as the flags describe.
func (a *axisFlags) build(name string) (*axis.Engine, error) {
	if a.items < 0 {
		return nil, fmt.Errorf("-items must not be negative")
	}
	res, err := a.settings()
	if err != nil {
		return nil, err
	}
	enum := model.NewEnumeration(a.items)
	enum.SetOffset(a.offset)
	enum.SetStrike(a.strike)

	e := newHeaderEngine(res, res.Orientation, name, enum, a.page, a.cross)
	overrides, err := parseOverrides(a.overrides)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		if err := e.OverrideSize(o.index, o.size); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// loadConfig reads the configuration named by --config, or the one in the
// working directory.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return config.LoadOptional(dir)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if info.IsDir() {
		return config.LoadOptional(path)
	}
	return config.Load(path)
}

func newHeaderEngine(res *config.Resolved, o axis.Orientation, name string, src axis.ItemSource, page, cross int) *axis.Engine {
	e := axis.New(axis.Options{
		Orientation: o,
		Direction:   res.Direction,
		Factory:     header.NewFactory(res.Style),
		Source:      src,
		Tunables:    res.Tunables,
		Name:        name,
	})
	e.SetViewport(page, cross)
	return e
}

type sizeOverride struct {
	index int
	size  int
}

// parseOverrides parses "3=40,10=12".
func parseOverrides(s string) ([]sizeOverride, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var overrides []sizeOverride
	for _, part := range strings.Split(s, ",") {
		index, size, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("invalid size override %q (want index=px)", part)
		}
		i, err := strconv.Atoi(index)
		if err != nil {
			return nil, fmt.Errorf("invalid size override %q: %w", part, err)
		}
		px, err := strconv.Atoi(size)
		if err != nil {
			return nil, fmt.Errorf("invalid size override %q: %w", part, err)
		}
		overrides = append(overrides, sizeOverride{index: i, size: px})
	}
	return overrides, nil
}

// printWindow writes the scroll state and the materialized labels of e in
// display order.
func printWindow(w io.Writer, e *axis.Engine) {
	adj := e.Adjustment()
	fmt.Fprintf(w, "%s %s axis: value=%g upper=%g page=%g\n",
		e.Direction(), e.Orientation(), adj.Value(), adj.Upper(), adj.PageSize())
	fmt.Fprintf(w, "window [%d, %d) of %d slots (%d items, estimate %dpx)\n",
		e.From(), e.To(), e.Extent(), e.Len(), e.EstimatedItemSize())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tPOS\tSIZE\tLABEL")
	e.Each(func(entry axis.Entry, widget axis.Widget) {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", entry.Index, entry.Position, entry.Size, describe(widget))
	})
	tw.Flush()
}

func describe(w axis.Widget) string {
	label, ok := w.(*header.Label)
	if !ok {
		return fmt.Sprintf("%T", w)
	}
	text := label.Text
	if label.Strike {
		text = "~" + text + "~"
	}
	if label.Wide {
		text += " (wide)"
	}
	if !label.Sensitive {
		text += " (placeholder)"
	}
	return text
}
