package screen

import (
	"image/color"
	"testing"
)

func TestBleed(t *testing.T) {
	buf := NewBuffer(8, 4)
	g, err := Partition(buf, 4, EdgeDrop)
	if err != nil {
		t.Fatal(err)
	}
	colors := []color.Color{color.Gray{Y: 0}, color.Gray{Y: 200}}
	out, err := Composite(g, colors, buf.Size(), nil)
	if err != nil {
		t.Fatal(err)
	}

	Bleed(out, g, colors, 2)

	near := func(got, want uint8) bool {
		d := int(got) - int(want)
		return d >= -1 && d <= 1
	}
	if got := out.RGBAAt(0, 0).R; got != 0 {
		t.Errorf("first block must not change, got %d", got)
	}
	if got := out.RGBAAt(4, 2).R; !near(got, 100) {
		t.Errorf("seam column: expected ~100, got %d", got)
	}
	if got := out.RGBAAt(5, 2).R; !near(got, 150) {
		t.Errorf("second column: expected ~150, got %d", got)
	}
	if got := out.RGBAAt(6, 2).R; got != 200 {
		t.Errorf("past the bleed: expected 200, got %d", got)
	}
}

func TestBleedDisabled(t *testing.T) {
	buf := NewBuffer(8, 4)
	g, _ := Partition(buf, 4, EdgeDrop)
	colors := []color.Color{color.Gray{Y: 0}, color.Gray{Y: 200}}
	out, _ := Composite(g, colors, buf.Size(), nil)

	Bleed(out, g, colors, 0)
	if got := out.RGBAAt(4, 0).R; got != 200 {
		t.Errorf("expected 200, got %d", got)
	}
}
