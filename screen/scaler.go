package screen

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned when a factor or block size would produce
// a zero-sized intermediate image or grid.
var ErrInvalidScale = errors.New("screen: scale too large")

// Kernel selects the interpolation filter used by Resample.
type Kernel uint8

const (
	KernelNearest Kernel = iota
	KernelBox
	KernelLinear
	KernelHamming
	KernelLanczos
	KernelCatmullRom
	KernelBiLinear
)

var kernelNames = [...]string{
	KernelNearest:    "nearest",
	KernelBox:        "box",
	KernelLinear:     "linear",
	KernelHamming:    "hamming",
	KernelLanczos:    "lanczos",
	KernelCatmullRom: "catmullrom",
	KernelBiLinear:   "bilinear",
}

func (k Kernel) String() string {
	if int(k) < len(kernelNames) {
		return kernelNames[k]
	}
	return fmt.Sprintf("Kernel(%d)", uint8(k))
}

// ParseKernel maps a kernel name, as printed by String, to a Kernel.
func ParseKernel(name string) (Kernel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kernelNames {
		if n == name {
			return Kernel(k), nil
		}
	}
	return 0, fmt.Errorf("screen: unknown kernel %q", name)
}

// Scaler resizes an image to an exact size.
type Scaler interface {
	Scale(src image.Image, size image.Point) image.Image
}

type imagingScaler struct {
	filter imaging.ResampleFilter
}

func (s imagingScaler) Scale(src image.Image, size image.Point) image.Image {
	return imaging.Resize(src, size.X, size.Y, s.filter)
}

type xdrawScaler struct {
	interp draw.Interpolator
}

func (s xdrawScaler) Scale(src image.Image, size image.Point) image.Image {
	dst := image.NewGray(image.Rect(0, 0, size.X, size.Y))
	s.interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Scaler returns the implementation behind k. Nearest and bilinear go
// through x/image/draw, which replicates source pixels into exact tiles
// on integer growth; the windowed filters go through imaging.
func (k Kernel) Scaler() Scaler {
	switch k {
	case KernelNearest:
		return xdrawScaler{interp: draw.NearestNeighbor}
	case KernelBiLinear:
		return xdrawScaler{interp: draw.BiLinear}
	case KernelBox:
		return imagingScaler{filter: imaging.Box}
	case KernelLinear:
		return imagingScaler{filter: imaging.Linear}
	case KernelLanczos:
		return imagingScaler{filter: imaging.Lanczos}
	case KernelCatmullRom:
		return imagingScaler{filter: imaging.CatmullRom}
	default:
		return imagingScaler{filter: imaging.Hamming}
	}
}

// Resample returns buf scaled to size with kernel k.
func Resample(buf *Buffer, size image.Point, k Kernel) (*Buffer, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidScale, size.X, size.Y)
	}
	if size == buf.Size() {
		return buf.Clone(), nil
	}
	return FromImage(k.Scaler().Scale(buf.Gray, size)), nil
}

// DownsampleSize is floor(size/factor) per axis.
func DownsampleSize(size image.Point, factor int) (image.Point, error) {
	if factor <= 0 {
		return image.Point{}, fmt.Errorf("%w: factor %d", ErrInvalidScale, factor)
	}
	small := image.Pt(size.X/factor, size.Y/factor)
	if small.X == 0 || small.Y == 0 {
		return image.Point{}, fmt.Errorf("%w: factor %d on %dx%d", ErrInvalidScale, factor, size.X, size.Y)
	}
	return small, nil
}

// Antialias shrinks buf by factor with the smoothing kernel and grows
// it back to its original size with nearest-neighbour, giving softened
// but hard-edged blocks.
func Antialias(buf *Buffer, factor int, shrink Kernel) (*Buffer, error) {
	small, err := DownsampleSize(buf.Size(), factor)
	if err != nil {
		return nil, err
	}
	down, err := Resample(buf, small, shrink)
	if err != nil {
		return nil, err
	}
	return Resample(down, buf.Size(), KernelNearest)
}

// Widen grows buf with nearest-neighbour so every pixel spans three
// subpixel columns, rounding both axes up to a multiple of factor so the
// block grid is aligned.
func Widen(buf *Buffer, factor int) (*Buffer, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: factor %d", ErrInvalidScale, factor)
	}
	size := image.Pt(
		ceilDiv(3*buf.Width(), factor)*factor,
		ceilDiv(buf.Height(), factor)*factor,
	)
	return Resample(buf, size, KernelNearest)
}
