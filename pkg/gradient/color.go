// Package gradient maintains position-keyed color stops and interpolates
// between them.
// This file implements the Color value type and its conversions to and
// from the stdlib and go-colorful color representations.
package gradient

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a four-channel color value. R, G and B are conventionally in
// [0, 255] and A in [0, 1], but no range is enforced: channels store and
// blend whatever values they are given. Clamping happens only at the
// conversion boundaries (RGBA, Hex), never in storage.
type Color struct {
	R, G, B, A float64
}

// RGBA implements the [image/color.Color] interface, returning
// alpha-premultiplied 16-bit channels. Out-of-range channel values are
// clamped to the displayable range.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp(c.A, 0, 1)
	r = uint32(clamp(c.R, 0, 255) / 255 * alpha * 0xffff)
	g = uint32(clamp(c.G, 0, 255) / 255 * alpha * 0xffff)
	b = uint32(clamp(c.B, 0, 255) / 255 * alpha * 0xffff)
	a = uint32(alpha * 0xffff)
	return r, g, b, a
}

// FromColor converts any stdlib color into a Color, undoing the alpha
// premultiplication of the [image/color.Color] contract.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	return Color{
		R: float64(r) / float64(a) * 255,
		G: float64(g) / float64(a) * 255,
		B: float64(b) / float64(a) * 255,
		A: float64(a) / 0xffff,
	}
}

// Colorful converts c to a go-colorful color for callers working in its
// color spaces. The alpha channel is dropped; channels are rescaled to
// colorful's [0, 1] convention but not clamped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// FromColorful converts a go-colorful color and an alpha value into a
// Color, rescaling the channels to the [0, 255] convention.
func FromColorful(c colorful.Color, alpha float64) Color {
	return Color{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: alpha}
}

// Parse parses a color string. Supported formats:
//   - SVG 1.1 color names: "red", "navy", "gold", etc. (case-insensitive)
//   - Hex: "#RGB" or "#RRGGBB"
//
// Named and hex colors are fully opaque. Returns an error if the string
// cannot be parsed.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color string")
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return FromColorful(c, 1), nil
	}

	return Color{}, fmt.Errorf("unrecognized color format: %q", s)
}

// MustParse parses a color string and panics if parsing fails.
// Use this only for known-good color values in initialization code.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb". Channels are clamped to the displayable
// range first; the alpha channel is not represented.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
