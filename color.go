package ink

import (
	"fmt"

	"golang.org/x/image/colornames"
)

// RGB returns an opaque Rgba from channels in [0, 1].
func RGB(r, g, b float32) Rgba {
	return Rgba{R: r, G: g, B: b, A: 1}
}

// RGBA returns an Rgba from channels in [0, 1].
func RGBA(r, g, b, a float32) Rgba {
	return Rgba{R: r, G: g, B: b, A: a}
}

// Hex parses a CSS-style hex color ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA",
// with or without the leading '#') into an Rgba.
func Hex(s string) (Rgba, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b, a uint32 = 0, 0, 0, 255
	switch len(s) {
	case 3:
		r, g, b = hexNibble(s[0])*17, hexNibble(s[1])*17, hexNibble(s[2])*17
	case 4:
		r, g, b, a = hexNibble(s[0])*17, hexNibble(s[1])*17, hexNibble(s[2])*17, hexNibble(s[3])*17
	case 6:
		r, g, b = hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6])
	case 8:
		r, g, b, a = hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6]), hexByte(s[6:8])
	default:
		return Transparent, fmt.Errorf("ink: invalid hex color %q", s)
	}
	return Rgba{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

func hexNibble(c byte) uint32 {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0')
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10
	default:
		return 0
	}
}

func hexByte(s string) uint32 {
	return hexNibble(s[0])*16 + hexNibble(s[1])
}

// Named looks up a CSS/SVG color keyword (e.g. "cornflowerblue") via
// golang.org/x/image/colornames, converting it to a straight-alpha Rgba.
// The second return value reports whether the name was found.
func Named(name string) (Rgba, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Transparent, false
	}
	return Rgba{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}, true
}
