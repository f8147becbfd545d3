package screen

import (
	"image"
	"image/color"
)

// Bleed softens the vertical seams between neighbouring blocks the way
// light bleeds between the phosphors of a shadow mask: the first width
// columns of every block are mixed from its left neighbour's colour
// into its own. width is limited to one less than the block size.
func Bleed(dst *image.RGBA, g *Grid, colors []color.Color, width int) {
	if width <= 0 || len(colors) != len(g.Blocks) {
		return
	}
	width = clampInt(0, g.Size-1, width)

	origin := g.Bounds.Min
	for i, b := range g.Blocks {
		if b.Col == 0 {
			continue
		}
		lc, c := colors[i-1], colors[i]
		r := b.Rect.Sub(origin).Intersect(dst.Rect)
		for ix := 0; ix < width && r.Min.X+ix < r.Max.X; ix++ {
			co := rgbMix(lc, c, 0.5+0.5*float64(ix)/float64(width))
			for y := r.Min.Y; y < r.Max.Y; y++ {
				dst.Set(r.Min.X+ix, y, co)
			}
		}
	}
}
