package particles

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is cyan, violet, pink, emerald and orange.
var DefaultPalette = []color.RGBA{
	{R: 0x00, G: 0xD4, B: 0xFF, A: 0xFF},
	{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF},
	{R: 0xF4, G: 0x72, B: 0xB6, A: 0xFF},
	{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
	{R: 0xF9, G: 0x73, B: 0x16, A: 0xFF},
}

// ParsePalette converts "#RRGGBB" strings into opaque colours.
func ParsePalette(hex []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 0xFF})
	}
	return out, nil
}

// WithAlpha returns c with straight alpha a in [0,1], premultiplied as image/color expects.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
