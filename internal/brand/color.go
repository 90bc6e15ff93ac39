// Package brand turns a brand description into an Infima-flavoured stylesheet.
//
// Everything in this package is pure: the same Brand always produces the
// same bytes, and nothing here touches the filesystem except Load.
package brand

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidColorFormat is returned for colors that are not #RRGGBB.
var ErrInvalidColorFormat = errors.New("invalid color format")

// ParseHex decodes a #RRGGBB string (digits are case-insensitive).
func ParseHex(hex string) (r, g, b uint8, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
		channels[i] = uint8(v)
	}

	return channels[0], channels[1], channels[2], nil
}

// HexToHSL converts a #RRGGBB color to integer HSL
func HexToHSL(hex string) (HSL, error) {
	ri, gi, bi, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}

	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
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
		h /= 6
	}

	return HSL{
		H: roundHalfUp(h*360) % 360,
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}, nil
}

// HSLToHex converts integer HSL to an uppercase #RRGGBB string.
// Hue is expected in [0,360); sector boundaries belong to the sector they open.
func HSLToHex(h, s, l int) string {
	sf := float64(s) / 100
	lf := float64(l) / 100
	hf := float64(h)

	c := float64(1-math.Abs(2*lf-1)) * sf
	x := c * float64(1-math.Abs(math.Mod(hf/60, 2)-1))
	m := lf - c/2

	var r, g, b float64
	switch {
	case hf < 60:
		r, g = c, x
	case hf < 120:
		r, g = x, c
	case hf < 180:
		g, b = c, x
	case hf < 240:
		g, b = x, c
	case hf < 300:
		r, b = x, c
	default:
		r, b = c, x
	}

	return fmt.Sprintf("#%02X%02X%02X", toChannel(r+m), toChannel(g+m), toChannel(b+m))
}

func toChannel(v float64) int {
	n := roundHalfUp(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// roundHalfUp rounds .5 towards positive infinity
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
