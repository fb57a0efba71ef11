package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// HSL is a colour in hue (degrees), saturation and lightness.
type HSL struct {
	H, S, L float64
}

var stageColors = map[string]string{
	"rut":      "#2200ffff",
	"emerging": "#f51870ff",
	"growing":  "#13d266ff",
	"taste":    "#fffcebff",
}

var stageHSL = func() map[string]HSL {
	m := map[string]HSL{}
	for id, hex := range stageColors {
		m[id] = ParseHex(hex)
	}
	return m
}()

// StageColor returns the base colour of a stage id, case-insensitively,
// defaulting to Rut's.
func StageColor(id string) HSL {
	if c, ok := stageHSL[strings.ToLower(id)]; ok {
		return c
	}
	return stageHSL["rut"]
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa (alpha is ignored).  Bad
// digits read as zero.
func ParseHex(hex string) HSL {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	for len(h) < 6 {
		h += "0"
	}
	comp := func(s string) float64 {
		v, _ := strconv.ParseUint(s, 16, 8)
		return float64(v) / 255
	}
	return RGBToHSL(comp(h[0:2]), comp(h[2:4]), comp(h[4:6]))
}

func RGBToHSL(r, g, b float64) HSL {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2
	if max == min {
		return HSL{0, 0, l}
	}
	d := max - min
	s := d / (max + min)
	if l > 0.5 {
		s = d / (2 - max - min)
	}
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return HSL{h * 60, s, l}
}

func (c HSL) RGBA(alpha float64) color.NRGBA {
	hue := func(p, q, t float64) float64 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		switch {
		case t < 1.0/6:
			return p + (q-p)*6*t
		case t < 1.0/2:
			return q
		case t < 2.0/3:
			return p + (q-p)*(2.0/3-t)*6
		}
		return p
	}
	r, g, b := c.L, c.L, c.L
	if c.S != 0 {
		q := c.L * (1 + c.S)
		if c.L >= 0.5 {
			q = c.L + c.S - c.L*c.S
		}
		p := 2*c.L - q
		h := c.H / 360
		r, g, b = hue(p, q, h+1.0/3), hue(p, q, h), hue(p, q, h-1.0/3)
	}
	return color.NRGBA{R: byteOf(r), G: byteOf(g), B: byteOf(b), A: byteOf(alpha)}
}

func byteOf(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}
