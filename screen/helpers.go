package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// rgbMix blends c1 toward c2 by t. Blending involving a grey is done in
// RGB so a neutral colour never picks up a hue; anything else goes
// through Lab.
func rgbMix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

func clampInt(min, max, i int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
