package brand

import (
	"fmt"
	"strings"
)

const stylesheetHeader = `/**
 * Brand CSS - Auto-generated from brand configuration
 * Do not edit manually - run: brandcss generate
 */
`

// GenerateCSS renders the brand stylesheet.
//
// Sections are emitted in a fixed order: font import, :root variables,
// dark theme overrides, then the navbar block when Navbar is dark.
// In dark mode the primary variables are remapped onto the neutral ramp.
func GenerateCSS(b Brand) (string, error) {
	primary, err := GenerateColorVariants(b.Colors.Primary)
	if err != nil {
		return "", fmt.Errorf("primary color: %w", err)
	}
	neutral, err := GenerateColorVariants(b.Colors.Neutral)
	if err != nil {
		return "", fmt.Errorf("neutral color: %w", err)
	}
	if _, _, _, err := ParseHex(b.Colors.Accent); err != nil {
		return "", fmt.Errorf("accent color: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(stylesheetHeader)
	writeFontImport(&sb, GoogleFontsURL(b.Fonts))
	writeRoot(&sb, b, primary)
	writeDarkTheme(&sb, b.DarkMode, primary, neutral)

	if b.Navbar == NavbarDark {
		sb.WriteString(darkNavbarCSS)
	}

	return sb.String(), nil
}

func writeFontImport(sb *strings.Builder, url string) {
	fmt.Fprintf(sb, "\n/* Fonts */\n@import url('%s');\n", url)
}

func writeRoot(sb *strings.Builder, b Brand, primary ColorVariants) {
	fmt.Fprintf(sb, `
:root {
  /* Brand colors */
  --brand-primary: %s;
  --brand-accent: %s;
  --brand-neutral: %s;

  /* Infima primary color variants */
  --ifm-color-primary: %s;
  --ifm-color-primary-dark: %s;
  --ifm-color-primary-darker: %s;
  --ifm-color-primary-darkest: %s;
  --ifm-color-primary-light: %s;
  --ifm-color-primary-lighter: %s;
  --ifm-color-primary-lightest: %s;

  /* Typography */
  --ifm-font-family-base: '%s', sans-serif;
  --ifm-heading-font-family: '%s', sans-serif;
  --ifm-heading-font-weight: %d;

  --ifm-code-font-size: 95%%;
}
`,
		b.Colors.Primary, b.Colors.Accent, b.Colors.Neutral,
		primary.Base, primary.Dark, primary.Darker, primary.Darkest,
		primary.Light, primary.Lighter, primary.Lightest,
		b.Fonts.Body.Family, b.Fonts.Heading.Family, b.Fonts.Heading.Weight,
	)
}

func writeDarkTheme(sb *strings.Builder, mode DarkModeStyle, primary, neutral ColorVariants) {
	label := "Dark mode"
	if mode != "" {
		label = fmt.Sprintf("Dark mode (%s)", mode)
	}

	fmt.Fprintf(sb, `
/* %s */
[data-theme='dark'] {
  --ifm-background-color: var(--brand-primary);
  --ifm-background-surface-color: %s;
  --ifm-color-primary: var(--brand-neutral);
  --ifm-color-primary-light: %s;
  --ifm-color-primary-lighter: %s;
  --ifm-color-primary-lightest: %s;
}
`, label, primary.Light, neutral.Light, neutral.Lighter, neutral.Lightest)
}

const darkNavbarCSS = `
/* Dark navbar */
.navbar {
  background-color: var(--brand-primary);
}

.navbar__title,
.navbar__link {
  font-family: var(--ifm-heading-font-family);
  color: #FFFFFF !important;
}

.navbar__link:hover,
.navbar__link--active {
  color: var(--brand-accent) !important;
}

.navbar .clean-btn {
  color: #FFFFFF;
}

.navbar .clean-btn:hover {
  color: var(--brand-accent);
}
`
