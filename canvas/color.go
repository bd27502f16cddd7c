package canvas

import (
	"image/color"
	"strconv"
	"strings"
)

// namedColors maps the color tokens the editor hands out by default.
var namedColors = map[string]color.NRGBA{
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"black":   {A: 255},
	"red":     {R: 255, A: 255},
	"green":   {G: 128, A: 255},
	"lime":    {G: 255, A: 255},
	"blue":    {B: 255, A: 255},
	"yellow":  {R: 255, G: 255, A: 255},
	"cyan":    {G: 255, B: 255, A: 255},
	"magenta": {R: 255, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
}

// ParseColor interprets a color token: a named color or a hex string in
// "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" form, with or without a leading
// '#'. The core stores tokens opaquely; interpreting them is the viewer's
// business, and unknown tokens fall back to opaque black.
func ParseColor(token string) color.Color {
	if c, ok := namedColors[strings.ToLower(token)]; ok {
		return c
	}
	if c, ok := parseHex(token); ok {
		return c
	}
	return color.NRGBA{A: 255}
}

func parseHex(token string) (color.NRGBA, bool) {
	hex := strings.TrimPrefix(token, "#")

	ok := true
	component := func(s string) uint8 {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			ok = false
		}
		return uint8(v)
	}

	var r, g, b uint8
	a := uint8(255)
	switch len(hex) {
	case 3: // RGB
		r, g, b = component(hex[0:1])*17, component(hex[1:2])*17, component(hex[2:3])*17
	case 4: // RGBA
		r, g, b = component(hex[0:1])*17, component(hex[1:2])*17, component(hex[2:3])*17
		a = component(hex[3:4]) * 17
	case 6: // RRGGBB
		r, g, b = component(hex[0:2]), component(hex[2:4]), component(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b = component(hex[0:2]), component(hex[2:4]), component(hex[4:6])
		a = component(hex[6:8])
	default:
		return color.NRGBA{}, false
	}
	if !ok {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}
