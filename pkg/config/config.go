// Package config loads the optional sheet.yaml or sheet.toml file that
// tunes the axis engine and header measurement.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sheet/pkg/axis"
	sheeterrors "github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/header"
)

// SchemaVersion is the newest configuration schema this package reads.
// Files declaring any v1.x version are accepted.
const SchemaVersion = "v1.0.0"

// File names searched by LoadOptional, in order.
const (
	YAMLFile = "sheet.yaml"
	TOMLFile = "sheet.toml"
)

// Config represents the optional sheet configuration file.
type Config struct {
	Version string       `yaml:"version,omitempty" toml:"version,omitempty"`
	Axis    AxisConfig   `yaml:"axis" toml:"axis"`
	Header  HeaderConfig `yaml:"header" toml:"header"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

// AxisConfig contains engine settings. Absent keys select the defaults;
// present ones, including zeros, are validated as given.
type AxisConfig struct {
	Orientation      string   `yaml:"orientation,omitempty" toml:"orientation,omitempty"`
	Direction        string   `yaml:"direction,omitempty" toml:"direction,omitempty"`
	DefaultItemSize  *int     `yaml:"default_item_size,omitempty" toml:"default_item_size,omitempty"`
	Overshoot        *float64 `yaml:"overshoot,omitempty" toml:"overshoot,omitempty"`
	OutOfSightMargin *int     `yaml:"out_of_sight_margin,omitempty" toml:"out_of_sight_margin,omitempty"`
	PoolLimit        *int     `yaml:"pool_limit,omitempty" toml:"pool_limit,omitempty"`
	MaxSeekSteps     *int     `yaml:"max_seek_steps,omitempty" toml:"max_seek_steps,omitempty"`
	ResizeThreshold  *int     `yaml:"resize_threshold,omitempty" toml:"resize_threshold,omitempty"`
}

// HeaderConfig contains header label settings.
type HeaderConfig struct {
	Font string `yaml:"font,omitempty" toml:"font,omitempty"`
	// Padding is nil when absent; an explicit 0 removes the padding.
	Padding    *int `yaml:"padding,omitempty" toml:"padding,omitempty"`
	WideFactor int  `yaml:"wide_factor,omitempty" toml:"wide_factor,omitempty"`
}

// Resolved contains validated configuration values ready for use.
type Resolved struct {
	Path        string
	Version     string
	Orientation axis.Orientation
	Direction   axis.Direction
	Tunables    axis.Tunables
	FontName    string
	Style       header.Style
}

// LoadOptional reads sheet.yaml or, failing that, sheet.toml from dir. When
// neither exists it returns an empty Config.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := load(filepath.Join(dir, YAMLFile), decodeYAML)
	if cfg != nil || err != nil {
		return cfg, err
	}
	cfg, err = load(filepath.Join(dir, TOMLFile), decodeTOML)
	if cfg != nil || err != nil {
		return cfg, err
	}
	return &Config{}, nil
}

// Load reads a configuration file, choosing the format by extension.
func Load(path string) (*Config, error) {
	decode := decodeYAML
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decode = decodeTOML
	}
	cfg, err := load(path, decode)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), os.ErrNotExist)
	}
	return cfg, nil
}

// Resolve loads the configuration in dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve validates the configuration and fills in defaults.
func (c *Config) Resolve() (*Resolved, error) {
	version, err := checkVersion(c.Version)
	if err != nil {
		return nil, c.fail(err)
	}
	orientation, err := parseOrientation(c.Axis.Orientation)
	if err != nil {
		return nil, c.fail(err)
	}
	direction, err := parseDirection(c.Axis.Direction)
	if err != nil {
		return nil, c.fail(err)
	}

	tunables := axis.DefaultTunables()
	override(&tunables.DefaultItemSize, c.Axis.DefaultItemSize)
	override(&tunables.Overshoot, c.Axis.Overshoot)
	override(&tunables.OutOfSightMargin, c.Axis.OutOfSightMargin)
	override(&tunables.PoolLimit, c.Axis.PoolLimit)
	override(&tunables.MaxSeekSteps, c.Axis.MaxSeekSteps)
	override(&tunables.ResizeThreshold, c.Axis.ResizeThreshold)
	if err := tunables.Validate(); err != nil {
		return nil, c.fail(fmt.Errorf("axis: %w", err))
	}

	fontName := strings.TrimSpace(c.Header.Font)
	if fontName == "" {
		fontName = header.DefaultFontName
	}
	style := header.DefaultStyle()
	face, err := header.LookupFace(fontName)
	if err != nil {
		return nil, c.fail(fmt.Errorf("header: %w", err))
	}
	style.Face = face
	if c.Header.Padding != nil {
		if *c.Header.Padding < 0 {
			return nil, c.fail(fmt.Errorf("header: padding must not be negative, got %d", *c.Header.Padding))
		}
		style.Padding = *c.Header.Padding
	}
	if c.Header.WideFactor != 0 {
		if c.Header.WideFactor < 1 {
			return nil, c.fail(fmt.Errorf("header: wide factor must be positive, got %d", c.Header.WideFactor))
		}
		style.WideFactor = c.Header.WideFactor
	}

	return &Resolved{
		Path:        c.Path,
		Version:     version,
		Orientation: orientation,
		Direction:   direction,
		Tunables:    tunables,
		FontName:    fontName,
		Style:       style,
	}, nil
}

// fail wraps a validation error as a configuration error.
func (c *Config) fail(err error) error {
	op := "config.Resolve"
	if c.Path != "" {
		op = fmt.Sprintf("config.Resolve(%s)", filepath.Base(c.Path))
	}
	return &sheeterrors.SheetError{
		Op:   op,
		Kind: sheeterrors.KindConfig,
		Err:  err,
	}
}

type decodeFunc func(data []byte, cfg *Config) error

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// load returns nil and no error when path does not exist.
func load(path string, decode decodeFunc) (*Config, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg Config
	if err := decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	cfg.Path = path
	return &cfg, nil
}

// checkVersion normalizes v to canonical semver and rejects other major
// versions than the one this package understands.
func checkVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SchemaVersion, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return "", fmt.Errorf("unsupported schema version %s (want %s.x)", v, semver.Major(SchemaVersion))
	}
	if semver.Compare(v, SchemaVersion) > 0 {
		return "", fmt.Errorf("schema version %s is newer than supported %s", v, SchemaVersion)
	}
	return semver.Canonical(v), nil
}

func parseOrientation(s string) (axis.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "rows":
		return axis.Vertical, nil
	case "horizontal", "columns":
		return axis.Horizontal, nil
	}
	return 0, fmt.Errorf("axis: unknown orientation %q", s)
}

func parseDirection(s string) (axis.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return axis.LeftToRight, nil
	case "rtl":
		return axis.RightToLeft, nil
	}
	return 0, fmt.Errorf("axis: unknown direction %q", s)
}

// override stores *v in dst when the key was present.
func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func ref[T any](v T) *T {
	return &v
}

// Config returns the fully populated configuration equivalent to r.
func (r *Resolved) Config() *Config {
	return &Config{
		Version: r.Version,
		Axis: AxisConfig{
			Orientation:      r.Orientation.String(),
			Direction:        r.Direction.String(),
			DefaultItemSize:  ref(r.Tunables.DefaultItemSize),
			Overshoot:        ref(r.Tunables.Overshoot),
			OutOfSightMargin: ref(r.Tunables.OutOfSightMargin),
			PoolLimit:        ref(r.Tunables.PoolLimit),
			MaxSeekSteps:     ref(r.Tunables.MaxSeekSteps),
			ResizeThreshold:  ref(r.Tunables.ResizeThreshold),
		},
		Header: HeaderConfig{
			Font:       r.FontName,
			Padding:    ref(r.Style.Padding),
			WideFactor: r.Style.WideFactor,
		},
		Path: r.Path,
	}
}

// Marshal encodes c in the named format, "yaml" or "toml".
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(c)
	case "toml":
		return toml.Marshal(c)
	}
	return nil, fmt.Errorf("unknown config format %q", format)
}
