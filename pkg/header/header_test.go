package header

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/sheet/pkg/axis"
	"github.com/go-drift/sheet/pkg/model"
)

func TestLabelNaturalSize(t *testing.T) {
	style := DefaultStyle()
	tests := []struct {
		name string
		text string
		wide bool
		o    axis.Orientation
		want int
	}{
		{"vertical", "10", false, axis.Vertical, 13 + 8},
		{"horizontal", "10", false, axis.Horizontal, 2*7 + 8},
		{"wide", "10", true, axis.Horizontal, (2*7 + 8) * 3},
		{"empty", "", false, axis.Horizontal, 8},
		{"wide vertical", "10", true, axis.Vertical, 13 + 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLabel(style)
			l.Text = tt.text
			l.Wide = tt.wide
			if got := l.NaturalSize(tt.o, 100); got != tt.want {
				t.Errorf("NaturalSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLabelFaces(t *testing.T) {
	face, err := LookupFace("inconsolata")
	if err != nil {
		t.Fatal(err)
	}
	narrow := NewLabel(DefaultStyle())
	wide := NewLabel(Style{Face: face, Padding: 4, WideFactor: 3})
	narrow.Text, wide.Text = "12345", "12345"
	if wide.NaturalSize(axis.Horizontal, 0) <= narrow.NaturalSize(axis.Horizontal, 0) {
		t.Error("inconsolata should be wider than 7x13")
	}

	if _, err := LookupFace("comic"); err == nil {
		t.Error("expected an error for an unknown face")
	}
	names := FaceNames()
	if len(names) != 3 || names[0] != "7x13" {
		t.Errorf("FaceNames() = %v", names)
	}
}

func TestLabelReset(t *testing.T) {
	l := NewLabel(DefaultStyle())
	l.Text, l.Tooltip, l.Strike, l.Wide, l.Sensitive, l.Index = "x", "y", true, true, true, 4
	l.Reset()
	if l.Text != "" || l.Tooltip != "" || l.Strike || l.Wide || l.Sensitive || l.Index != -1 {
		t.Errorf("after Reset: %+v", l)
	}
	if l.Style.Face != basicfont.Face7x13 {
		t.Error("Reset should keep the style")
	}
}

func TestFactoryBind(t *testing.T) {
	f := NewFactory(DefaultStyle())

	w := f.Bind(axis.Slot{Index: 3, Item: model.Datum{Text: "4", Label: "Number 4", Strike: true, Sensitive: true}}, nil)
	l := w.(*Label)
	if l.Text != "4" || l.Tooltip != "Number 4" || !l.Strike || !l.Sensitive || l.Index != 3 {
		t.Errorf("datum label = %+v", l)
	}
	if f.Created != 1 {
		t.Errorf("Created = %d, want 1", f.Created)
	}

	l.Reset()
	w = f.Bind(axis.Slot{Index: 12, Synthetic: true}, l)
	if w != l {
		t.Error("expected the recycled label to be reused")
	}
	if l.Text != "13" || l.Tooltip != "" || l.Sensitive {
		t.Errorf("synthetic label = %+v", l)
	}
	if f.Created != 1 {
		t.Errorf("Created = %d, want 1", f.Created)
	}

	w = f.Bind(axis.Slot{Index: 0, Item: "Name"}, nil)
	if got := w.(*Label); got.Text != "Name" || got.Tooltip != "Name" || !got.Sensitive {
		t.Errorf("string label = %+v", got)
	}
	w = f.Bind(axis.Slot{Index: 0, Item: 42}, nil)
	if got := w.(*Label).Text; got != "42" {
		t.Errorf("int label text = %q", got)
	}
}

func TestFactoryPlaceholder(t *testing.T) {
	f := NewFactory(DefaultStyle())
	f.Placeholder = func(int) string { return "" }
	l := f.Bind(axis.Slot{Index: 5, Synthetic: true}, nil).(*Label)
	if l.Text != "" {
		t.Errorf("placeholder text = %q", l.Text)
	}
}

func TestRowHeaderEngine(t *testing.T) {
	rows := model.NewEnumeration(1000)
	e := axis.New(axis.Options{
		Orientation: axis.Vertical,
		Factory:     NewFactory(DefaultStyle()),
		Source:      rows,
		Name:        "rows",
	})
	t.Cleanup(e.Close)

	e.SetViewport(210, 80)
	if e.From() != 0 || e.To() != 10 {
		t.Fatalf("window = [%d, %d), want [0, 10)", e.From(), e.To())
	}
	entry, where := e.FindItemBounds(3)
	if where != axis.Within || entry.Position != 63 || entry.Size != 21 {
		t.Errorf("bounds(3) = %+v %v", entry, where)
	}
	w, ok := e.Widget(3)
	if !ok || w.(*Label).Text != "4" {
		t.Errorf("widget 3 = %+v", w)
	}
	if err := e.JumpStart(500); err != nil {
		t.Fatalf("JumpStart: %v", err)
	}
	if got, _ := e.FindItemBounds(500); got.Position != 0 {
		t.Errorf("item 500 at %d, want 0", got.Position)
	}
}
