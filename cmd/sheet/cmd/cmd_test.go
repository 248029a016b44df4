package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// capture redirects command output for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldConfig := out, configPath
	out = &buf
	configPath = t.TempDir()
	t.Cleanup(func() {
		out, configPath = oldOut, oldConfig
	})
	return &buf
}

func TestVersion(t *testing.T) {
	buf := capture(t)
	if err := run([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "sheet version "+Version) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestHelpListsCommands(t *testing.T) {
	buf := capture(t)
	if err := run(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"simulate", "jump", "grid", "config"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("help does not mention %s", name)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	capture(t)
	if err := run([]string{"frobnicate"}); err == nil {
		t.Error("expected an error")
	}
}

func TestConfigFlagRequiresPath(t *testing.T) {
	capture(t)
	if err := run([]string{"--config"}); err == nil {
		t.Error("expected an error")
	}
}

func TestSimulate(t *testing.T) {
	buf := capture(t)
	if err := run([]string{"simulate"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "window [0, 20) of 1017 slots (1000 items, estimate 21px)") {
		t.Errorf("output:\n%s", got)
	}
	if !strings.Contains(got, "INDEX") {
		t.Errorf("missing table header:\n%s", got)
	}
}

func TestSimulateSteps(t *testing.T) {
	buf := capture(t)
	if err := run([]string{"simulate", "-items", "50", "-step", "21", "-steps", "2"}); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "window ["); n != 3 {
		t.Errorf("printed %d windows, want 3", n)
	}
	if !strings.Contains(buf.String(), "window [2, ") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestJump(t *testing.T) {
	buf := capture(t)
	if err := run([]string{"jump", "-align", "start", "500"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "item 500 at 0, 21px") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestJumpErrors(t *testing.T) {
	capture(t)
	tests := [][]string{
		{"jump"},
		{"jump", "abc"},
		{"jump", "-align", "sideways", "3"},
		{"jump", "-items", "10", "5000"},
	}
	for _, args := range tests {
		if err := run(args); err == nil {
			t.Errorf("run(%v) should fail", args)
		}
	}
}

func TestGrid(t *testing.T) {
	buf := capture(t)
	if err := run([]string{"grid", "-rows", "10", "-columns", "3"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"r0c0", "r9c2"} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %s:\n%s", want, got)
		}
	}
	if strings.Contains(got, "r10c") || strings.Contains(got, "c3") {
		t.Errorf("output contains cells past the table:\n%s", got)
	}
}

func TestConfigCommand(t *testing.T) {
	buf := capture(t)
	if err := os.WriteFile(filepath.Join(configPath, "sheet.toml"), []byte("[axis]\norientation = \"horizontal\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run([]string{"config"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "orientation        horizontal") {
		t.Errorf("output:\n%s", buf.String())
	}

	buf.Reset()
	if err := run([]string{"config", "-format", "yaml"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "orientation: horizontal") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestParseOverrides(t *testing.T) {
	got, err := parseOverrides(" 3=40, 10=12 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != (sizeOverride{3, 40}) || got[1] != (sizeOverride{10, 12}) {
		t.Errorf("parseOverrides = %+v", got)
	}
	for _, bad := range []string{"3", "a=1", "1=b"} {
		if _, err := parseOverrides(bad); err == nil {
			t.Errorf("parseOverrides(%q) should fail", bad)
		}
	}
}
