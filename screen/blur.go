package screen

import (
	"image"

	"github.com/disintegration/gift"
)

// Blur applies a Gaussian blur of the given sigma. A sigma of zero or
// less returns a copy.
func Blur(buf *Buffer, sigma float64) *Buffer {
	if sigma <= 0 {
		return buf.Clone()
	}
	g := gift.New(gift.GaussianBlur(float32(sigma)))
	dst := image.NewGray(g.Bounds(buf.Rect))
	g.Draw(dst, buf.Gray)
	return FromImage(dst)
}
