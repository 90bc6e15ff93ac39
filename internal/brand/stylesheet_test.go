package brand

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBrand(navbar NavbarStyle) Brand {
	b := Default()
	b.Colors = Colors{Primary: "#2E8555", Accent: "#FFCC00", Neutral: "#25C2A0"}
	b.Navbar = navbar
	b.DarkMode = ""
	return b
}

func TestGenerateCSS_Root(t *testing.T) {
	css, err := GenerateCSS(testBrand(NavbarAuto))
	require.NoError(t, err)

	for _, want := range []string{
		"@import url('https://fonts.googleapis.com/css2?family=Inter:wght@600&family=Inter:wght@400;700&display=swap');",
		"--brand-primary: #2E8555;",
		"--brand-accent: #FFCC00;",
		"--brand-neutral: #25C2A0;",
		"--ifm-color-primary: #2E8555;",
		"--ifm-color-primary-dark: #277249;",
		"--ifm-color-primary-darker: #236741;",
		"--ifm-color-primary-darkest: #1E5738;",
		"--ifm-color-primary-light: #349861;",
		"--ifm-color-primary-lighter: #38A368;",
		"--ifm-color-primary-lightest: #3DB372;",
		"--ifm-font-family-base: 'Inter', sans-serif;",
		"--ifm-heading-font-family: 'Inter', sans-serif;",
		"--ifm-heading-font-weight: 600;",
		"--ifm-code-font-size: 95%;",
	} {
		assert.Contains(t, css, want)
	}
}

func TestGenerateCSS_DarkThemeUsesNeutralRamp(t *testing.T) {
	css, err := GenerateCSS(testBrand(NavbarAuto))
	require.NoError(t, err)

	idx := strings.Index(css, "[data-theme='dark'] {")
	require.NotEqual(t, -1, idx)
	dark := css[idx:]

	assert.Contains(t, dark, "--ifm-background-color: var(--brand-primary);")
	assert.Contains(t, dark, "--ifm-background-surface-color: #349861;")
	assert.Contains(t, dark, "--ifm-color-primary: var(--brand-neutral);")
	assert.Contains(t, dark, "--ifm-color-primary-light: #29D6B1;")
	assert.Contains(t, dark, "--ifm-color-primary-lighter: #36D9B5;")
	assert.Contains(t, dark, "--ifm-color-primary-lightest: #47DCBC;")
}

func TestGenerateCSS_SectionOrder(t *testing.T) {
	css, err := GenerateCSS(testBrand(NavbarDark))
	require.NoError(t, err)

	order := []string{"/**", "@import url(", ":root {", "[data-theme='dark'] {", ".navbar {"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(css, marker)
		require.NotEqual(t, -1, idx, marker)
		assert.Greater(t, idx, last, marker)
		last = idx
	}
}

func TestGenerateCSS_Navbar(t *testing.T) {
	tests := []struct {
		navbar   NavbarStyle
		wantNav  bool
		mustHave []string
	}{
		{
			navbar:  NavbarDark,
			wantNav: true,
			mustHave: []string{
				".navbar {\n  background-color: var(--brand-primary);\n}",
				".navbar__title,\n.navbar__link {\n  font-family: var(--ifm-heading-font-family);\n  color: #FFFFFF !important;\n}",
				".navbar__link:hover,\n.navbar__link--active {\n  color: var(--brand-accent) !important;\n}",
				".navbar .clean-btn:hover {\n  color: var(--brand-accent);\n}",
			},
		},
		{navbar: NavbarLight},
		{navbar: NavbarAuto},
	}

	for _, tt := range tests {
		t.Run(string(tt.navbar), func(t *testing.T) {
			css, err := GenerateCSS(testBrand(tt.navbar))
			require.NoError(t, err)

			assert.Equal(t, tt.wantNav, strings.Contains(css, ".navbar {"))
			assert.Equal(t, tt.wantNav, strings.Contains(css, ".navbar__title"))
			for _, s := range tt.mustHave {
				assert.Contains(t, css, s)
			}
		})
	}
}

func TestGenerateCSS_DarkModeLabel(t *testing.T) {
	b := testBrand(NavbarLight)
	plain, err := GenerateCSS(b)
	require.NoError(t, err)
	assert.Contains(t, plain, "/* Dark mode */")

	b.DarkMode = DarkModeBranded
	labelled, err := GenerateCSS(b)
	require.NoError(t, err)
	assert.Contains(t, labelled, "/* Dark mode (branded) */")

	// Only the comment differs
	assert.Equal(t, plain, strings.Replace(labelled, "Dark mode (branded)", "Dark mode", 1))
}

func TestGenerateCSS_Deterministic(t *testing.T) {
	b := testBrand(NavbarDark)
	first, err := GenerateCSS(b)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = GenerateCSS(b)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, first, got)
	}
}

func TestGenerateCSS_InvalidColors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Brand)
		want   string
	}{
		{name: "primary", mutate: func(b *Brand) { b.Colors.Primary = "#12345" }, want: "primary color"},
		{name: "neutral", mutate: func(b *Brand) { b.Colors.Neutral = "teal" }, want: "neutral color"},
		{name: "accent", mutate: func(b *Brand) { b.Colors.Accent = "#ZZZZZZ" }, want: "accent color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBrand(NavbarDark)
			tt.mutate(&b)
			_, err := GenerateCSS(b)
			require.ErrorIs(t, err, ErrInvalidColorFormat)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenerateCSS_IsValidCSS(t *testing.T) {
	for _, navbar := range []NavbarStyle{NavbarDark, NavbarLight} {
		t.Run(string(navbar), func(t *testing.T) {
			css, err := GenerateCSS(testBrand(navbar))
			require.NoError(t, err)

			stats, err := ValidateCSS(css)
			require.NoError(t, err)
			assert.Equal(t, 1, stats.Imports)
			assert.GreaterOrEqual(t, stats.CustomProperties, 20)
		})
	}
}
