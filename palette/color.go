package palette

import (
	"math"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// Color is a hue/saturation/lightness triple rounded to whole numbers.
// SourceHex is the string the color was parsed from, kept verbatim.
type Color struct {
	Hue        int    `json:"h"`
	Saturation int    `json:"s"`
	Lightness  int    `json:"l"`
	SourceHex  string `json:"hex"`
}

// Scheme is an ordered palette in load order.
type Scheme []Color

// HexToHSL parses a 6 digit hex color, with or without a leading '#'.
func HexToHSL(hex string) (Color, error) {
	groups := hexPattern.FindStringSubmatch(hex)
	if groups == nil {
		return Color{}, &ColorError{Input: hex}
	}

	var channels [3]float64
	for i, group := range groups[1:] {
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return Color{}, &ColorError{Input: hex}
		}
		channels[i] = float64(v) / 255
	}
	r, g, b := channels[0], channels[1], channels[2]

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	var h, s float64
	l := (max + min) / 2

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return Color{
		Hue:        int(math.Round(h * 360)),
		Saturation: int(math.Round(s * 100)),
		Lightness:  int(math.Round(l * 100)),
		SourceHex:  hex,
	}, nil
}

// MustHexToHSL is HexToHSL for literals known to be valid.
func MustHexToHSL(hex string) Color {
	c, err := HexToHSL(hex)
	if err != nil {
		panic(err)
	}
	return c
}
