package model

import (
	"fmt"
	"strings"
)

// RGB is a 24-bit color value. It is the common currency between the
// theme loader (which parses hex strings from theme JSON) and the
// artifact generators (which format colors for each target tool).
type RGB struct {
	R, G, B uint8
}

// Hex returns the lowercase "#rrggbb" representation of the color.
// All generated artifacts use this form except LS_COLORS, which needs
// the raw channel values (see Channels).
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Channels returns the raw r, g, b channel values. LS_COLORS and other
// SGR-based formats embed these as decimal "38;2;r;g;b" parameters.
func (c RGB) Channels() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// Luma returns the average channel brightness (0-255). Used to decide
// whether a palette is dark or light.
func (c RGB) Luma() int {
	return (int(c.R) + int(c.G) + int(c.B)) / 3
}

// Brighten returns a copy of the color with each channel increased by
// amount, saturating at 255. Used to derive "bright" ANSI variants.
func (c RGB) Brighten(amount int) RGB {
	return RGB{
		R: satAdd(c.R, amount),
		G: satAdd(c.G, amount),
		B: satAdd(c.B, amount),
	}
}

// Darken returns a copy of the color with each channel decreased by
// amount, saturating at 0.
func (c RGB) Darken(amount int) RGB {
	return RGB{
		R: satAdd(c.R, -amount),
		G: satAdd(c.G, -amount),
		B: satAdd(c.B, -amount),
	}
}

// satAdd adds delta to a channel value, clamping the result to [0, 255].
func satAdd(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}

// ParseHex parses a "#rrggbb" (or "rrggbb") hex string into an RGB.
// Short-form "#rgb" is expanded by doubling each digit. Returns an
// error for any other shape.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	// Expand "#abc" to "aabbcc" before parsing.
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want #rrggbb", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(h), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// MustHex parses a hex color string and panics on failure. Only for
// package-level default palette literals, which are fixed at compile time.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
