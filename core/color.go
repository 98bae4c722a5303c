package core

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color value.
// The zero value has Default set to false and is opaque black; use
// ColorNone (or the Default flag) for "unset / inherit" positions such
// as per-glyph color overrides.
type Color struct {
	R, G, B, A uint8
	// Default indicates the absence of an explicit color. Consumers
	// fall through to a span-level or caller-supplied color.
	Default bool
}

// ColorNone is the "no explicit color" value.
var ColorNone = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
	ColorRed   = Color{R: 255, G: 0, B: 0, A: 255}
	ColorGreen = Color{R: 0, G: 255, B: 0, A: 255}
	ColorBlue  = Color{R: 0, G: 0, B: 255, A: 255}
	ColorCyan  = Color{R: 0, G: 255, B: 255, A: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128, A: 255}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromHex creates a color from a hex string like "#RGB" or
// "#RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color: %s", hex)
		}
		return uint8(v), nil
	}

	switch len(hex) {
	case 3:
		r, err := parse(string(hex[0]) + string(hex[0]))
		if err != nil {
			return Color{}, err
		}
		g, err := parse(string(hex[1]) + string(hex[1]))
		if err != nil {
			return Color{}, err
		}
		b, err := parse(string(hex[2]) + string(hex[2]))
		if err != nil {
			return Color{}, err
		}
		return RGB(r, g, b), nil
	case 6:
		r, err := parse(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parse(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parse(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return RGB(r, g, b), nil
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
}

// IsDefault returns true if this is the "no explicit color" value.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equal returns true if two colors are equal. All unset colors compare
// equal regardless of their channel values.
func (c Color) Equal(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	return c.R == other.R && c.G == other.G && c.B == other.B && c.A == other.A
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// colorfulValue converts to a go-colorful color, dropping alpha.
func (c Color) colorfulValue() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful converts back, keeping the receiver's alpha.
func (c Color) fromColorful(v colorful.Color) Color {
	v = v.Clamped()
	return Color{
		R: uint8(v.R*255.0 + 0.5),
		G: uint8(v.G*255.0 + 0.5),
		B: uint8(v.B*255.0 + 0.5),
		A: c.A,
	}
}

// Lighten returns the color blended toward white in Lab space.
// amount is in [0, 1].
func (c Color) Lighten(amount float64) Color {
	if c.Default {
		return c
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.fromColorful(c.colorfulValue().BlendLab(white, amount))
}

// Darken returns the color blended toward black in Lab space.
// amount is in [0, 1].
func (c Color) Darken(amount float64) Color {
	if c.Default {
		return c
	}
	black := colorful.Color{}
	return c.fromColorful(c.colorfulValue().BlendLab(black, amount))
}

// Blend blends two colors in Lab space. amount 0 yields c, 1 yields
// other. Unset colors pick whichever side amount favors.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	blended := c.fromColorful(c.colorfulValue().BlendLab(other.colorfulValue(), amount))
	blended.A = uint8(float64(c.A)*(1-amount) + float64(other.A)*amount + 0.5)
	return blended
}
