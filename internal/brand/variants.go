package brand

// Lightness offsets in percentage points, ordered darkest to lightest.
// The zero step is the base color.
var rampOffsets = [7]int{-12, -8, -5, 0, 5, 8, 12}

// Ramp returns the seven lightness steps of c, darkest first.
// Lightness is clamped to [0,100], so extremes may repeat.
func Ramp(c HSL) [7]HSL {
	var steps [7]HSL
	for i, off := range rampOffsets {
		steps[i] = HSL{H: c.H, S: c.S, L: clampPercent(c.L + off)}
	}
	return steps
}

// GenerateColorVariants derives the Infima tonal ramp for a base color.
// Base keeps the caller's spelling; the other six are re-encoded.
func GenerateColorVariants(hex string) (ColorVariants, error) {
	c, err := HexToHSL(hex)
	if err != nil {
		return ColorVariants{}, err
	}

	steps := Ramp(c)
	enc := func(i int) string {
		return HSLToHex(steps[i].H, steps[i].S, steps[i].L)
	}

	return ColorVariants{
		Darkest:  enc(0),
		Darker:   enc(1),
		Dark:     enc(2),
		Base:     hex,
		Light:    enc(4),
		Lighter:  enc(5),
		Lightest: enc(6),
	}, nil
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
