package screen

import (
	"image"
	"image/color"
)

// Buffer is an 8-bit intensity raster. Reads through Intensity are
// clamped to the buffer bounds.
type Buffer struct {
	*image.Gray
}

// NewBuffer returns a black w×h buffer. Negative sizes give an empty one.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{Gray: image.NewGray(image.Rect(0, 0, w, h))}
}

// FromImage converts img to intensities using Luma. The result is always
// anchored at the origin.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	buf := NewBuffer(b.Dx(), b.Dy())

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < b.Dy(); y++ {
			src := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(buf.Pix[y*buf.Stride:y*buf.Stride+b.Dx()], src[:b.Dx()])
		}
		return buf
	}

	for y := 0; y < b.Dy(); y++ {
		offset := y * buf.Stride
		for x := 0; x < b.Dx(); x++ {
			buf.Pix[offset+x] = Luma(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return buf
}

// Luma returns the greyscale intensity of c:
//
//	I = 0.2989*R + 0.5870*G + 0.1140*B
//
// truncated. The weights are normalised by their sum (0.9999) so that a
// grey input maps onto itself and white stays 255. Alpha is dropped: the
// straight colour channels are used, not the premultiplied ones.
func Luma(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return LumaRGB(n.R, n.G, n.B)
}

// LumaRGB is Luma over 8-bit channels.
func LumaRGB(r, g, b uint8) uint8 {
	return uint8((2989*uint32(r) + 5870*uint32(g) + 1140*uint32(b)) / 9999)
}

func (buf *Buffer) Width() int  { return buf.Rect.Dx() }
func (buf *Buffer) Height() int { return buf.Rect.Dy() }

func (buf *Buffer) Size() image.Point { return buf.Rect.Size() }

// Intensity returns the sample at (x, y), clamping the coordinates into
// the buffer. An empty buffer reads as 0.
func (buf *Buffer) Intensity(x, y int) uint8 {
	if buf.Rect.Empty() {
		return 0
	}
	x = clampInt(buf.Rect.Min.X, buf.Rect.Max.X-1, x)
	y = clampInt(buf.Rect.Min.Y, buf.Rect.Max.Y-1, y)
	return buf.Pix[buf.PixOffset(x, y)]
}

// Crop copies the part of buf inside r. The rectangle is clamped to the
// buffer bounds; a rectangle outside the buffer yields an empty buffer.
func (buf *Buffer) Crop(r image.Rectangle) *Buffer {
	r = r.Intersect(buf.Rect)
	out := NewBuffer(r.Dx(), r.Dy())
	for y := 0; y < r.Dy(); y++ {
		src := buf.PixOffset(r.Min.X, r.Min.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+r.Dx()], buf.Pix[src:src+r.Dx()])
	}
	return out
}

// Clone returns a deep copy of buf.
func (buf *Buffer) Clone() *Buffer {
	return buf.Crop(buf.Rect)
}

// Fill sets every sample to c.
func (buf *Buffer) Fill(c uint8) {
	for i, max := 0, len(buf.Pix); i < max; i++ {
		buf.Pix[i] = c
	}
}
