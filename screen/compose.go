package screen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Composite paints colors[i] into the rectangle of g.Blocks[i] on a new
// image of the given size. Pixels no block covers get bg.
func Composite(g *Grid, colors []color.Color, size image.Point, bg color.Color) (*image.RGBA, error) {
	if len(colors) != len(g.Blocks) {
		return nil, fmt.Errorf("screen: %d colours for %d blocks", len(colors), len(g.Blocks))
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	if bg != nil {
		draw.Draw(dst, dst.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	}

	origin := g.Bounds.Min
	for i, b := range g.Blocks {
		r := b.Rect.Sub(origin).Intersect(dst.Rect)
		if r.Empty() {
			continue
		}
		draw.Draw(dst, r, image.NewUniform(colors[i]), image.Point{}, draw.Src)
	}
	return dst, nil
}

// StackVertical places a above b. The result is as wide as the wider
// of the two; uncovered pixels are transparent black.
func StackVertical(a, b image.Image) *image.NRGBA {
	ab, bb := a.Bounds(), b.Bounds()
	dst := imaging.New(maxInt(ab.Dx(), bb.Dx()), ab.Dy()+bb.Dy(), color.Transparent)
	dst = imaging.Paste(dst, a, image.Pt(0, 0))
	return imaging.Paste(dst, b, image.Pt(0, ab.Dy()))
}

// SideBySide places a to the left of b.
func SideBySide(a, b image.Image) *image.NRGBA {
	ab, bb := a.Bounds(), b.Bounds()
	dst := imaging.New(ab.Dx()+bb.Dx(), maxInt(ab.Dy(), bb.Dy()), color.Transparent)
	dst = imaging.Paste(dst, a, image.Pt(0, 0))
	return imaging.Paste(dst, b, image.Pt(ab.Dx(), 0))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
