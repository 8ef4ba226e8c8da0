// Package colour provides the colour science used by palette generation:
// sRGB colour space conversions, perceptual difference metrics, and
// colour vision deficiency simulation.
package colour

import (
	"fmt"
	"strconv"
)

// ErrInvalidColour indicates a malformed colour value, such as a hex
// string that is not of the form #rrggbb.
var ErrInvalidColour = fmt.Errorf("invalid colour")

// RGB is a colour in gamma-encoded sRGB with each channel in [0, 1].
// It is a plain value type; derived representations (HSL, XYZ, Lab, LCH)
// are computed on demand and never cached.
type RGB struct {
	R, G, B float64
}

// Hex returns the canonical lowercase #rrggbb representation, with each
// channel rounded to 8 bits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// String returns the hex representation.
func (c RGB) String() string {
	return c.Hex()
}

// channelByte rounds a [0,1] channel to its 8-bit value.
// Out-of-range channels are clamped here: hex output is a display
// format and must stay within gamut.
func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ParseHex parses a colour of the form #rrggbb (case-insensitive).
// Shorthand (#rgb), alpha channels, and bare rrggbb are rejected.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q is not of the form #rrggbb", ErrInvalidColour, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q is not of the form #rrggbb", ErrInvalidColour, s)
	}
	return RGB{
		R: float64(v>>16&0xff) / 255.0,
		G: float64(v>>8&0xff) / 255.0,
		B: float64(v&0xff) / 255.0,
	}, nil
}

// FromBytes builds an RGB from 8-bit channel values.
func FromBytes(r, g, b uint8) RGB {
	return RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
