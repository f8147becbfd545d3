package subpixel

import (
	"fmt"
	"strings"

	"github.com/32bitkid/subpixel/resource"
	"github.com/32bitkid/subpixel/screen"
)

// Comparison selects whether, and how, the source is placed next to the
// result in an extra output.
type Comparison uint8

const (
	CompareNone Comparison = iota
	// CompareVertical stacks the source above the result.
	CompareVertical
	// CompareHorizontal puts the source left of the result.
	CompareHorizontal
)

func (c Comparison) String() string {
	switch c {
	case CompareNone:
		return "none"
	case CompareVertical:
		return "vertical"
	case CompareHorizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Comparison(%d)", uint8(c))
}

// ParseComparison accepts "none", "vertical" or "horizontal", plus the
// short forms "stack" and "side". An empty name means none.
func ParseComparison(name string) (Comparison, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompareNone, nil
	case "vertical", "stack":
		return CompareVertical, nil
	case "horizontal", "side":
		return CompareHorizontal, nil
	}
	return 0, fmt.Errorf("%w: comparison %q", ErrInvalidConfig, name)
}

const (
	// DefaultScale is the default block size.
	DefaultScale = 10
	// DefaultForegroundLevel is the darkest-only cut used when cropping
	// to the foreground.
	DefaultForegroundLevel = 0
)

// Config holds every parameter of a run.
type Config struct {
	// Scale is the block size in pixels and the downsample factor.
	Scale int

	// DarkThreshold is the mean below which a neighbouring block counts
	// as dark.
	DarkThreshold int
	// NeutralThreshold is the mean at or above which a block is painted
	// white in rotation mode.
	NeutralThreshold int

	Mode   screen.Mode
	Kernel screen.Kernel
	Edge   screen.EdgePolicy

	// WarmShift and Dampen tune chroma mode.
	WarmShift int
	Dampen    float64

	Comparison Comparison

	Widen           bool
	Crop            bool
	ForegroundLevel int
	Blur            float64
	Bleed           int
	Workers         int

	// AntialiasOnly stops after the resampling pass.
	AntialiasOnly bool

	Quality int
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Scale:            DefaultScale,
		DarkThreshold:    screen.DefaultDarkThreshold,
		NeutralThreshold: screen.DefaultNeutralThreshold,
		Mode:             screen.ModeRotation,
		Kernel:           screen.KernelHamming,
		Edge:             screen.EdgeClip,
		WarmShift:        screen.DefaultWarmShift,
		Dampen:           screen.DefaultDampen,
		Comparison:       CompareNone,
		ForegroundLevel:  DefaultForegroundLevel,
		Workers:          1,
		Quality:          resource.DefaultQuality,
	}
}

// Validate reports the first out-of-range parameter.
func (c Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalidConfig, c.Scale)
	case c.DarkThreshold < 0 || c.DarkThreshold > 255:
		return fmt.Errorf("%w: dark threshold %d outside [0,255]", ErrInvalidConfig, c.DarkThreshold)
	case c.NeutralThreshold < 0 || c.NeutralThreshold > 255:
		return fmt.Errorf("%w: neutral threshold %d outside [0,255]", ErrInvalidConfig, c.NeutralThreshold)
	case c.Mode > screen.ModeIdentity:
		return fmt.Errorf("%w: mode %v", ErrInvalidConfig, c.Mode)
	case c.Kernel > screen.KernelBiLinear:
		return fmt.Errorf("%w: kernel %v", ErrInvalidConfig, c.Kernel)
	case c.Edge > screen.EdgeDrop:
		return fmt.Errorf("%w: edge policy %v", ErrInvalidConfig, c.Edge)
	case c.WarmShift < 0 || c.WarmShift > 127:
		return fmt.Errorf("%w: warm shift %d outside [0,127]", ErrInvalidConfig, c.WarmShift)
	case c.Dampen < 0 || c.Dampen > 1:
		return fmt.Errorf("%w: dampen %g outside [0,1]", ErrInvalidConfig, c.Dampen)
	case c.Comparison > CompareHorizontal:
		return fmt.Errorf("%w: comparison %v", ErrInvalidConfig, c.Comparison)
	case c.ForegroundLevel < 0 || c.ForegroundLevel > 255:
		return fmt.Errorf("%w: foreground level %d outside [0,255]", ErrInvalidConfig, c.ForegroundLevel)
	case c.Blur < 0:
		return fmt.Errorf("%w: blur %g is negative", ErrInvalidConfig, c.Blur)
	case c.Bleed < 0:
		return fmt.Errorf("%w: bleed %d is negative", ErrInvalidConfig, c.Bleed)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	case c.Quality < 0 || c.Quality > 100:
		return fmt.Errorf("%w: quality %d outside [0,100]", ErrInvalidConfig, c.Quality)
	}
	return nil
}

// Colorizer builds the colorization strategy for c.Mode.
func (c Config) Colorizer() screen.Colorizer {
	switch c.Mode {
	case screen.ModeChroma:
		return screen.ChromaShift{Warm: uint8(c.WarmShift), Dampen: c.Dampen}
	case screen.ModeIdentity:
		return screen.Identity{}
	}
	return screen.ChannelRotation{Neutral: uint8(c.NeutralThreshold)}
}

// Option adjusts a Config.
type Option func(*Config)

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithScale sets the block size in pixels.
func WithScale(scale int) Option {
	return func(c *Config) { c.Scale = scale }
}

// WithThresholds sets the dark and neutral intensity cuts.
func WithThresholds(dark, neutral int) Option {
	return func(c *Config) {
		c.DarkThreshold = dark
		c.NeutralThreshold = neutral
	}
}

// WithMode selects the colorization strategy.
func WithMode(m screen.Mode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithChroma sets the chroma-mode tuning and switches to chroma mode.
func WithChroma(warm int, dampen float64) Option {
	return func(c *Config) {
		c.Mode = screen.ModeChroma
		c.WarmShift = warm
		c.Dampen = dampen
	}
}

// WithKernel selects the shrink filter of the antialias pass.
func WithKernel(k screen.Kernel) Option {
	return func(c *Config) { c.Kernel = k }
}

// WithEdge sets how partial trailing blocks are handled.
func WithEdge(e screen.EdgePolicy) Option {
	return func(c *Config) { c.Edge = e }
}

// WithComparison requests a source/result comparison image.
func WithComparison(cmp Comparison) Option {
	return func(c *Config) { c.Comparison = cmp }
}

// WithWiden triples the width so each pixel spans three subpixels.
func WithWiden(widen bool) Option {
	return func(c *Config) { c.Widen = widen }
}

// WithCrop crops the input to the columns holding pixels at or below
// level before anything else happens.
func WithCrop(level int) Option {
	return func(c *Config) {
		c.Crop = true
		c.ForegroundLevel = level
	}
}

// WithBlur blurs the intensity buffer with the given sigma before
// downsampling.
func WithBlur(sigma float64) Option {
	return func(c *Config) { c.Blur = sigma }
}

// WithBleed blends width columns across each vertical block seam.
func WithBleed(width int) Option {
	return func(c *Config) { c.Bleed = width }
}

// WithWorkers sets how many grid rows are coloured concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithQuality sets the JPEG quality used when saving.
func WithQuality(q int) Option {
	return func(c *Config) { c.Quality = q }
}

// WithAntialiasOnly stops the pipeline after the antialias pass.
func WithAntialiasOnly(only bool) Option {
	return func(c *Config) { c.AntialiasOnly = only }
}
