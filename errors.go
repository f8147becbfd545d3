package subpixel

import (
	"errors"

	"github.com/32bitkid/subpixel/screen"
)

var (
	// ErrInvalidScale is returned when the scale leaves no room for a
	// single block or downsampled pixel.
	ErrInvalidScale = screen.ErrInvalidScale

	// ErrNoForeground is returned by foreground cropping when no pixel
	// is dark enough to count as foreground.
	ErrNoForeground = errors.New("subpixel: no foreground pixel found")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("subpixel: invalid config")
)
