package screen

import (
	"errors"
	"image"
	"testing"
)

func TestPartition100x100(t *testing.T) {
	buf := NewBuffer(100, 100)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(i * 7)
	}

	g, err := Partition(buf, 20, EdgeDrop)
	if err != nil {
		t.Fatal(err)
	}
	if g.Cols != 5 || g.Rows != 5 || len(g.Blocks) != 25 {
		t.Fatalf("expected 5x5 grid, got %dx%d (%d blocks)", g.Cols, g.Rows, len(g.Blocks))
	}
	for _, b := range g.Blocks {
		if b.Rect.Dx() != 20 || b.Rect.Dy() != 20 {
			t.Errorf("block (%d,%d): unexpected rect %v", b.Col, b.Row, b.Rect)
		}
	}
}

func TestPartitionMeanTruncatesOnce(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.Pix[0], buf.Pix[1], buf.Pix[2], buf.Pix[3] = 1, 2, 2, 2

	g, err := Partition(buf, 2, EdgeDrop)
	if err != nil {
		t.Fatal(err)
	}
	// 7/4 truncates to 1; truncating each pixel's quarter would give 0.
	if g.Blocks[0].Mean != 1 {
		t.Errorf("expected mean 1, got %d", g.Blocks[0].Mean)
	}
}

func TestPartitionEdgePolicy(t *testing.T) {
	buf := NewBuffer(25, 15)
	buf.Fill(40)

	drop, err := Partition(buf, 10, EdgeDrop)
	if err != nil {
		t.Fatal(err)
	}
	if drop.Cols != 2 || drop.Rows != 1 {
		t.Errorf("drop: expected 2x1, got %dx%d", drop.Cols, drop.Rows)
	}
	if drop.Covered() != image.Rect(0, 0, 20, 10) {
		t.Errorf("drop: unexpected coverage %v", drop.Covered())
	}

	clip, err := Partition(buf, 10, EdgeClip)
	if err != nil {
		t.Fatal(err)
	}
	if clip.Cols != 3 || clip.Rows != 2 {
		t.Fatalf("clip: expected 3x2, got %dx%d", clip.Cols, clip.Rows)
	}
	last, _ := clip.At(2, 1)
	if last.Rect != image.Rect(20, 10, 25, 15) {
		t.Errorf("clip: unexpected trailing block %v", last.Rect)
	}
	if last.Mean != 40 {
		t.Errorf("clip: expected mean 40, got %d", last.Mean)
	}
}

func TestPartitionInvalid(t *testing.T) {
	buf := NewBuffer(15, 15)
	if _, err := Partition(buf, 0, EdgeClip); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
	if _, err := Partition(buf, 20, EdgeDrop); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
	if g, err := Partition(buf, 20, EdgeClip); err != nil || len(g.Blocks) != 1 {
		t.Errorf("expected a single clipped block, got %v", err)
	}
}

func TestGridAt(t *testing.T) {
	g, err := Partition(NewBuffer(4, 4), 2, EdgeDrop)
	if err != nil {
		t.Fatal(err)
	}
	if b, ok := g.At(1, 0); !ok || b.Col != 1 || b.Row != 0 {
		t.Errorf("unexpected block %+v", b)
	}
	if _, ok := g.At(2, 0); ok {
		t.Error("expected out of range")
	}
	if _, ok := g.At(0, -1); ok {
		t.Error("expected out of range")
	}
}

func TestParseEdgePolicy(t *testing.T) {
	for name, want := range map[string]EdgePolicy{"clip": EdgeClip, " Drop": EdgeDrop} {
		got, err := ParseEdgePolicy(name)
		if err != nil || got != want {
			t.Errorf("ParseEdgePolicy(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseEdgePolicy("wrap"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}
