package panel

import (
	"fmt"
	"image/color"
)

// PixelSize is the number of bytes per Pixel.
const PixelSize = 4

// Pixel is a single pixel value in the form [r, g, b, a].
//
// Pixels are copied verbatim by all compositing operations; the alpha
// channel is carried along but never used for blending.
type Pixel [PixelSize]uint8

// Common pixel values.
var (
	Black       = Pixel{0x00, 0x00, 0x00, 0xff}
	White       = Pixel{0xff, 0xff, 0xff, 0xff}
	Transparent = Pixel{}
)

// RGB creates an opaque pixel from 8-bit RGB components.
func RGB(r, g, b uint8) Pixel {
	return Pixel{r, g, b, 0xff}
}

// Color converts the pixel to the standard color.Color interface.
func (p Pixel) Color() color.Color {
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// FromColor converts a standard color.Color to a Pixel.
func FromColor(c color.Color) Pixel {
	r, g, b, a := c.RGBA()
	return Pixel{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Hex parses a pixel from a hex string with an optional leading '#'.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) (Pixel, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	a := uint32(0xff)

	switch len(s) {
	case 3: // RGB
		if err := parseHexDigits(s, &r, &g, &b); err != nil {
			return Pixel{}, fmt.Errorf("panel: invalid hex color %q: %w", hex, err)
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		var err error
		if err = parseHexDigits(s[:3], &r, &g, &b); err == nil {
			err = parseHexByte(s[3:4], &a)
		}
		if err != nil {
			return Pixel{}, fmt.Errorf("panel: invalid hex color %q: %w", hex, err)
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if err := parseHexBytes(s, &r, &g, &b); err != nil {
			return Pixel{}, fmt.Errorf("panel: invalid hex color %q: %w", hex, err)
		}
	case 8: // RRGGBBAA
		var err error
		if err = parseHexBytes(s[:6], &r, &g, &b); err == nil {
			err = parseHexByte(s[6:8], &a)
		}
		if err != nil {
			return Pixel{}, fmt.Errorf("panel: invalid hex color %q: %w", hex, err)
		}
	default:
		return Pixel{}, fmt.Errorf("panel: invalid hex color %q: bad length", hex)
	}

	return Pixel{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// parseHexDigits parses three single hex digits into r, g, b.
func parseHexDigits(s string, r, g, b *uint32) error {
	if err := parseHexByte(s[0:1], r); err != nil {
		return err
	}
	if err := parseHexByte(s[1:2], g); err != nil {
		return err
	}
	return parseHexByte(s[2:3], b)
}

// parseHexBytes parses three two-digit hex bytes into r, g, b.
func parseHexBytes(s string, r, g, b *uint32) error {
	if err := parseHexByte(s[0:2], r); err != nil {
		return err
	}
	if err := parseHexByte(s[2:4], g); err != nil {
		return err
	}
	return parseHexByte(s[4:6], b)
}

// parseHexByte parses a one- or two-digit hex value into out.
func parseHexByte(s string, out *uint32) error {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return fmt.Errorf("bad digit %q", c)
		}
		v = v<<4 | d
	}
	*out = v
	return nil
}
