package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateColorVariants(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want ColorVariants
	}{
		{
			name: "brand green",
			hex:  "#2E8555",
			want: ColorVariants{
				Base:     "#2E8555",
				Dark:     "#277249",
				Darker:   "#236741",
				Darkest:  "#1E5738",
				Light:    "#349861",
				Lighter:  "#38A368",
				Lightest: "#3DB372",
			},
		},
		{
			name: "base keeps caller casing",
			hex:  "#25c2a0",
			want: ColorVariants{
				Base:     "#25c2a0",
				Dark:     "#21AB8D",
				Darker:   "#1E9F83",
				Darkest:  "#1B8D75",
				Light:    "#29D6B1",
				Lighter:  "#36D9B5",
				Lightest: "#47DCBC",
			},
		},
		{
			name: "near black clamps dark steps",
			hex:  "#0A0A0A",
			want: ColorVariants{
				Base:     "#0A0A0A",
				Dark:     "#000000",
				Darker:   "#000000",
				Darkest:  "#000000",
				Light:    "#171717",
				Lighter:  "#1F1F1F",
				Lightest: "#292929",
			},
		},
		{
			name: "near white clamps light steps",
			hex:  "#F5F5F5",
			want: ColorVariants{
				Base:     "#F5F5F5",
				Dark:     "#E8E8E8",
				Darker:   "#E0E0E0",
				Darkest:  "#D6D6D6",
				Light:    "#FFFFFF",
				Lighter:  "#FFFFFF",
				Lightest: "#FFFFFF",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateColorVariants(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateColorVariants_InvalidColor(t *testing.T) {
	_, err := GenerateColorVariants("green")
	require.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestRamp_Clamping(t *testing.T) {
	t.Run("dark base clamps darkest to 0", func(t *testing.T) {
		for l := 0; l <= 12; l++ {
			steps := Ramp(HSL{H: 200, S: 40, L: l})
			assert.Equal(t, 0, steps[0].L, "base lightness %d", l)
		}
	})

	t.Run("light base clamps lightest to 100", func(t *testing.T) {
		for l := 88; l <= 100; l++ {
			steps := Ramp(HSL{H: 200, S: 40, L: l})
			assert.Equal(t, 100, steps[6].L, "base lightness %d", l)
		}
	})

	t.Run("hue and saturation are untouched", func(t *testing.T) {
		for _, step := range Ramp(HSL{H: 147, S: 49, L: 35}) {
			assert.Equal(t, 147, step.H)
			assert.Equal(t, 49, step.S)
		}
	})
}

func TestRamp_Monotonic(t *testing.T) {
	for l := 0; l <= 100; l++ {
		steps := Ramp(HSL{H: 10, S: 80, L: l})
		assert.Equal(t, l, steps[3].L)
		for i := 1; i < len(steps); i++ {
			assert.LessOrEqual(t, steps[i-1].L, steps[i].L, "base lightness %d step %s", l, VariantNames[i])
			assert.GreaterOrEqual(t, steps[i].L, 0)
			assert.LessOrEqual(t, steps[i].L, 100)
		}
	}
}

func TestGenerateColorVariants_LightnessOrder(t *testing.T) {
	bases := []string{
		"#2E8555", "#25C2A0", "#FFCC00", "#3578E5", "#1A237E", "#000000", "#FFFFFF",
		"#0A0A0A", "#F5F5F5", "#808080", "#E91E63", "#7B1FA2", "#00BCD4", "#795548",
	}

	for _, base := range bases {
		t.Run(base, func(t *testing.T) {
			v, err := GenerateColorVariants(base)
			require.NoError(t, err)

			prev := -1
			for i, hex := range v.Ordered() {
				c, err := HexToHSL(hex)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, c.L, prev, "%s out of order", VariantNames[i])
				prev = c.L
			}
		})
	}
}
