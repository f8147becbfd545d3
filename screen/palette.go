package screen

import (
	"fmt"
	"image/color"
	"strings"
)

// Colorizer assigns a colour to a classified block.
type Colorizer interface {
	Colorize(b Block, c Classification) color.Color
}

// Channel is one subpixel track of an LCD column triple.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "Channel(Red)"
	case Green:
		return "Channel(Green)"
	case Blue:
		return "Channel(Blue)"
	}
	return "Channel(UNKNOWN)"
}

// ChannelFor returns the subpixel track for a block column.
func ChannelFor(col int) Channel {
	m := col % 3
	if m < 0 {
		m += 3
	}
	return Channel(m)
}

// Tint returns a colour carrying v on ch only.
func (ch Channel) Tint(v uint8) color.RGBA {
	switch ch {
	case Green:
		return rgb(0, v, 0)
	case Blue:
		return rgb(0, 0, v)
	default:
		return rgb(v, 0, 0)
	}
}

const (
	DefaultNeutralThreshold = 250
	DefaultWarmShift        = 48
	DefaultDampen           = 1.0 / 5.0
)

var white = rgb(0xff, 0xff, 0xff)

// ChannelRotation routes each block's mean to red, green or blue by
// column. Blocks at or above Neutral are painted white.
type ChannelRotation struct {
	Neutral uint8
}

func (cr ChannelRotation) Colorize(b Block, _ Classification) color.Color {
	if b.Mean >= cr.Neutral {
		return white
	}
	return ChannelFor(b.Col).Tint(b.Mean)
}

// ChromaShift works in YCbCr: luma carries the block mean, chroma
// carries the bias. Blocks with dark neighbours on the right lean warm,
// blocks with dark neighbours on the left have their luma scaled by
// Dampen.
type ChromaShift struct {
	Warm   uint8
	Dampen float64
}

func (cs ChromaShift) Colorize(b Block, c Classification) color.Color {
	switch c.Role {
	case RoleRightDark:
		warm := int(cs.Warm)
		return color.YCbCr{
			Y:  b.Mean,
			Cb: uint8(clampInt(0, 255, 128-warm)),
			Cr: uint8(clampInt(0, 255, 128+warm)),
		}
	case RoleLeftDark:
		y := clampInt(0, 255, int(float64(b.Mean)*cs.Dampen))
		return color.YCbCr{Y: uint8(y), Cb: 128, Cr: 128}
	}
	return color.YCbCr{Y: b.Mean, Cb: 128, Cr: 128}
}

// Identity returns the block mean unchanged.
type Identity struct{}

func (Identity) Colorize(b Block, _ Classification) color.Color {
	return color.Gray{Y: b.Mean}
}

// Mode names a colorization strategy.
type Mode uint8

const (
	ModeRotation Mode = iota
	ModeChroma
	ModeIdentity
)

func (m Mode) String() string {
	switch m {
	case ModeRotation:
		return "rotation"
	case ModeChroma:
		return "chroma"
	case ModeIdentity:
		return "identity"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts a mode name. "rgb" and "ycbcr" are aliases for
// rotation and chroma.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rotation", "rgb":
		return ModeRotation, nil
	case "chroma", "ycbcr":
		return ModeChroma, nil
	case "identity":
		return ModeIdentity, nil
	}
	return 0, fmt.Errorf("screen: unknown mode %q", name)
}
