package brand

// NavbarStyle selects how the navbar is themed
type NavbarStyle string

// Navbar styles
const (
	NavbarDark  NavbarStyle = "dark"  // White text on the primary color
	NavbarLight NavbarStyle = "light" // Left to the site theme
	NavbarAuto  NavbarStyle = "auto"  // Follows the active color mode
)

// DarkModeStyle selects the dark mode background treatment
type DarkModeStyle string

// Dark mode styles
const (
	DarkModeBranded DarkModeStyle = "branded" // Brand color as background
	DarkModeNeutral DarkModeStyle = "neutral" // Dark gray background
)

// Valid reports whether s is a known navbar style.
func (s NavbarStyle) Valid() bool {
	switch s {
	case NavbarDark, NavbarLight, NavbarAuto:
		return true
	}
	return false
}

// Valid reports whether s is a known dark mode style. The empty style is valid.
func (s DarkModeStyle) Valid() bool {
	switch s {
	case "", DarkModeBranded, DarkModeNeutral:
		return true
	}
	return false
}

// Colors holds the three brand colors as #RRGGBB strings
type Colors struct {
	Primary string `koanf:"primary" yaml:"primary" json:"primary"` // Navbar background, links
	Accent  string `koanf:"accent" yaml:"accent" json:"accent"`    // Hover states, highlights
	Neutral string `koanf:"neutral" yaml:"neutral" json:"neutral"` // Primary color in dark mode
}

// HeadingFont is a font family loaded with a single weight
type HeadingFont struct {
	Family string `koanf:"family" yaml:"family" json:"family"`
	Weight int    `koanf:"weight" yaml:"weight" json:"weight"`
}

// BodyFont is a font family loaded with one or more weights
type BodyFont struct {
	Family  string `koanf:"family" yaml:"family" json:"family"`
	Weights []int  `koanf:"weights" yaml:"weights" json:"weights"`
}

// Fonts groups heading and body typography
type Fonts struct {
	Heading HeadingFont `koanf:"heading" yaml:"heading" json:"heading"`
	Body    BodyFont    `koanf:"body" yaml:"body" json:"body"`
}

// Brand is the declarative brand description the stylesheet is built from
type Brand struct {
	Colors   Colors        `koanf:"colors" yaml:"colors" json:"colors"`
	Fonts    Fonts         `koanf:"fonts" yaml:"fonts" json:"fonts"`
	Navbar   NavbarStyle   `koanf:"navbar" yaml:"navbar" json:"navbar"`
	DarkMode DarkModeStyle `koanf:"darkMode" yaml:"darkMode" json:"darkMode,omitempty"`
}

// HSL is a color in integer hue degrees and saturation/lightness percent
type HSL struct {
	H int `json:"h"` // [0,360)
	S int `json:"s"` // [0,100]
	L int `json:"l"` // [0,100]
}

// ColorVariants is the seven-step tonal ramp derived from one base color
type ColorVariants struct {
	Base     string `json:"base"`
	Dark     string `json:"dark"`
	Darker   string `json:"darker"`
	Darkest  string `json:"darkest"`
	Light    string `json:"light"`
	Lighter  string `json:"lighter"`
	Lightest string `json:"lightest"`
}

// Ordered returns the variants from darkest to lightest.
func (v ColorVariants) Ordered() []string {
	return []string{v.Darkest, v.Darker, v.Dark, v.Base, v.Light, v.Lighter, v.Lightest}
}

// VariantNames lists variant labels in the same order as Ordered.
var VariantNames = []string{"darkest", "darker", "dark", "base", "light", "lighter", "lightest"}
