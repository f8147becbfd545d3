package screen

import (
	"fmt"
	"image"
	"strings"
)

// EdgePolicy decides what happens to pixels past the last full block
// when the block size does not divide the buffer.
type EdgePolicy uint8

const (
	// EdgeClip keeps a smaller trailing block so the whole buffer is covered.
	EdgeClip EdgePolicy = iota
	// EdgeDrop leaves remainder pixels out of the grid.
	EdgeDrop
)

func (e EdgePolicy) String() string {
	switch e {
	case EdgeClip:
		return "clip"
	case EdgeDrop:
		return "drop"
	}
	return fmt.Sprintf("EdgePolicy(%d)", uint8(e))
}

// ParseEdgePolicy accepts "clip" or "drop", case-insensitively.
func ParseEdgePolicy(name string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clip":
		return EdgeClip, nil
	case "drop":
		return EdgeDrop, nil
	}
	return 0, fmt.Errorf("screen: unknown edge policy %q", name)
}

// Block is one tile of a Grid. It refers to the source buffer by
// rectangle only.
type Block struct {
	Col, Row int
	Rect     image.Rectangle
	Mean     uint8
}

// Grid is a partition of a buffer into square blocks, stored row-major.
type Grid struct {
	Cols, Rows int
	Size       int
	Bounds     image.Rectangle
	Blocks     []Block
}

// Partition divides buf into size×size blocks and computes each block's
// mean intensity.
func Partition(buf *Buffer, size int, edge EdgePolicy) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidScale, size)
	}

	w, h := buf.Width(), buf.Height()
	cols, rows := w/size, h/size
	if edge == EdgeClip {
		cols, rows = ceilDiv(w, size), ceilDiv(h, size)
	}
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: block size %d on %dx%d", ErrInvalidScale, size, w, h)
	}

	g := &Grid{
		Cols:   cols,
		Rows:   rows,
		Size:   size,
		Bounds: buf.Rect,
		Blocks: make([]Block, 0, cols*rows),
	}

	origin := buf.Rect.Min
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			r := image.Rect(i*size, j*size, (i+1)*size, (j+1)*size).Add(origin).Intersect(buf.Rect)
			g.Blocks = append(g.Blocks, Block{
				Col:  i,
				Row:  j,
				Rect: r,
				Mean: buf.mean(r),
			})
		}
	}

	return g, nil
}

// mean sums the whole rectangle before dividing once.
func (buf *Buffer) mean(r image.Rectangle) uint8 {
	n := r.Dx() * r.Dy()
	if n <= 0 {
		return 0
	}
	var sum uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		offset := buf.PixOffset(r.Min.X, y)
		for _, v := range buf.Pix[offset : offset+r.Dx()] {
			sum += uint64(v)
		}
	}
	return uint8(sum / uint64(n))
}

// Contains reports whether (col, row) is a cell of the grid.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// At returns the block at (col, row).
func (g *Grid) At(col, row int) (Block, bool) {
	if !g.Contains(col, row) {
		return Block{}, false
	}
	return g.Blocks[row*g.Cols+col], true
}

// Covered is the union of all block rectangles.
func (g *Grid) Covered() image.Rectangle {
	if len(g.Blocks) == 0 {
		return image.Rectangle{}
	}
	return g.Blocks[0].Rect.Union(g.Blocks[len(g.Blocks)-1].Rect)
}
