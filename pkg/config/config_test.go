package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/inconsolata"

	"github.com/go-drift/sheet/pkg/axis"
	sheeterrors "github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/header"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" || cfg.Version != "" {
		t.Errorf("cfg = %+v, want empty", cfg)
	}

	res, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if res.Tunables != axis.DefaultTunables() {
		t.Errorf("Tunables = %+v", res.Tunables)
	}
	if res.Version != SchemaVersion || res.FontName != header.DefaultFontName {
		t.Errorf("version %q font %q", res.Version, res.FontName)
	}
	if res.Style.Padding != 4 || res.Style.WideFactor != 3 {
		t.Errorf("Style = %+v", res.Style)
	}
}

func TestResolveYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, `version: "1.0"
axis:
  orientation: horizontal
  direction: rtl
  default_item_size: 40
  overshoot: 0.5
  pool_limit: 16
header:
  font: inconsolata
  padding: 0
  wide_factor: 2
`)

	res, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != filepath.Join(dir, YAMLFile) {
		t.Errorf("Path = %q", res.Path)
	}
	if res.Version != "v1.0.0" {
		t.Errorf("Version = %q", res.Version)
	}
	if res.Orientation != axis.Horizontal || res.Direction != axis.RightToLeft {
		t.Errorf("orientation %v direction %v", res.Orientation, res.Direction)
	}
	want := axis.DefaultTunables()
	want.DefaultItemSize = 40
	want.Overshoot = 0.5
	want.PoolLimit = 16
	if res.Tunables != want {
		t.Errorf("Tunables = %+v, want %+v", res.Tunables, want)
	}
	if res.Style.Face != inconsolata.Regular8x16 || res.Style.Padding != 0 || res.Style.WideFactor != 2 {
		t.Errorf("Style = %+v", res.Style)
	}
}

func TestResolveTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLFile, `version = "v1.0.0"

[axis]
max_seek_steps = 32
resize_threshold = 8

[header]
font = "inconsolata-bold"
`)

	res, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tunables.MaxSeekSteps != 32 || res.Tunables.ResizeThreshold != 8 {
		t.Errorf("Tunables = %+v", res.Tunables)
	}
	if res.FontName != "inconsolata-bold" || res.Style.Face != inconsolata.Bold8x16 {
		t.Errorf("font %q face %v", res.FontName, res.Style.Face)
	}
	if res.Orientation != axis.Vertical {
		t.Errorf("Orientation = %v", res.Orientation)
	}
}

func TestYAMLPreferredOverTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "axis:\n  pool_limit: 7\n")
	writeFile(t, dir, TOMLFile, "[axis]\npool_limit = 9\n")

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Axis.PoolLimit == nil || *cfg.Axis.PoolLimit != 7 {
		t.Errorf("PoolLimit = %v, want the yaml value", cfg.Axis.PoolLimit)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.toml", "[axis]\npool_limit = 9\n")

	cfg, err := Load(filepath.Join(dir, "custom.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Axis.PoolLimit == nil || *cfg.Axis.PoolLimit != 9 {
		t.Errorf("PoolLimit = %v", cfg.Axis.PoolLimit)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}
}

func TestEmptyYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "")
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path == "" {
		t.Error("Path should name the empty file")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"yaml syntax", YAMLFile, "axis: [", "failed to parse sheet.yaml"},
		{"yaml unknown key", YAMLFile, "axis:\n  bogus: 1\n", "failed to parse sheet.yaml"},
		{"toml syntax", TOMLFile, "[axis", "failed to parse sheet.toml"},
		{"toml unknown key", TOMLFile, "[axis]\nbogus = 1\n", "failed to parse sheet.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)
			_, err := LoadOptional(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestResolveValidation(t *testing.T) {
	padding := -1
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"bad version", Config{Version: "one"}, "invalid version"},
		{"major version", Config{Version: "v2.0.0"}, "unsupported schema version"},
		{"newer minor", Config{Version: "v1.3.0"}, "newer than supported"},
		{"orientation", Config{Axis: AxisConfig{Orientation: "diagonal"}}, "unknown orientation"},
		{"direction", Config{Axis: AxisConfig{Direction: "up"}}, "unknown direction"},
		{"overshoot", Config{Axis: AxisConfig{Overshoot: ref(2.0)}}, "overshoot"},
		{"zero overshoot", Config{Axis: AxisConfig{Overshoot: ref(0.0)}}, "overshoot"},
		{"item size", Config{Axis: AxisConfig{DefaultItemSize: ref(-3)}}, "default item size"},
		{"zero resize threshold", Config{Axis: AxisConfig{ResizeThreshold: ref(0)}}, "resize threshold"},
		{"zero pool limit", Config{Axis: AxisConfig{PoolLimit: ref(0)}}, "pool limit"},
		{"font", Config{Header: HeaderConfig{Font: "comic"}}, "unknown font"},
		{"padding", Config{Header: HeaderConfig{Padding: &padding}}, "padding"},
		{"wide factor", Config{Header: HeaderConfig{WideFactor: -2}}, "wide factor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Resolve()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
			var sheetErr *sheeterrors.SheetError
			if !errors.As(err, &sheetErr) || sheetErr.Kind != sheeterrors.KindConfig {
				t.Errorf("err = %#v, want a config SheetError", err)
			}
		})
	}
}

func TestResolveErrorNamesFile(t *testing.T) {
	cfg := &Config{Version: "v9", Path: "/tmp/x/sheet.toml"}
	_, err := cfg.Resolve()
	if err == nil || !strings.Contains(err.Error(), "config.Resolve(sheet.toml)") {
		t.Errorf("err = %v", err)
	}
}

func TestResolvedConfigResolvesToItself(t *testing.T) {
	cfg := &Config{
		Axis:   AxisConfig{Orientation: "horizontal", Direction: "rtl", PoolLimit: ref(5)},
		Header: HeaderConfig{Font: "inconsolata"},
	}
	res, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	again, err := res.Config().Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if *again != *res {
		t.Errorf("resolved twice = %+v, want %+v", again, res)
	}
}

func TestMarshalFormats(t *testing.T) {
	res, err := (&Config{}).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	cfg := res.Config()

	data, err := cfg.Marshal("yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "pool_limit: 64") {
		t.Errorf("yaml output:\n%s", data)
	}

	data, err = cfg.Marshal("toml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "pool_limit = 64") {
		t.Errorf("toml output:\n%s", data)
	}

	if _, err := cfg.Marshal("ini"); err == nil {
		t.Error("Marshal(ini) should fail")
	}
}

func TestExplicitZeroIsNotDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "axis:\n  overshoot: 0\n")
	if _, err := Resolve(dir); err == nil || !strings.Contains(err.Error(), "overshoot") {
		t.Errorf("err = %v, want the zero overshoot rejected", err)
	}

	writeFile(t, dir, YAMLFile, "axis:\n  out_of_sight_margin: 0\n")
	res, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tunables.OutOfSightMargin != 0 {
		t.Errorf("OutOfSightMargin = %d", res.Tunables.OutOfSightMargin)
	}
}
