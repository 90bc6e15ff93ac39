package brand

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a YAML brand file.
// Fields are not validated here; Lint reports problems with positions.
func Load(path string) (Brand, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Brand{}, fmt.Errorf("loading brand file %s: %w", path, err)
	}

	var b Brand
	if err := k.UnmarshalWithConf("", &b, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Brand{}, fmt.Errorf("decoding brand file %s: %w", path, err)
	}

	return b, nil
}

// Default returns the stock brand written by `brandcss init`.
func Default() Brand {
	return Brand{
		Colors: Colors{
			Primary: "#2e8555",
			Accent:  "#25c2a0",
			Neutral: "#25c2a0",
		},
		Fonts: Fonts{
			Heading: HeadingFont{Family: "Inter", Weight: 600},
			Body:    BodyFont{Family: "Inter", Weights: []int{400, 700}},
		},
		Navbar:   NavbarDark,
		DarkMode: DarkModeNeutral,
	}
}

// DefaultYAML is Default rendered as a commented brand file.
const DefaultYAML = `# Brand configuration
# The stylesheet is generated from these values: brandcss generate

colors:
  # Main brand color - navbar background, links, primary UI elements
  primary: "#2e8555"
  # Accent color - hover states, highlights
  accent: "#25c2a0"
  # Neutral color - becomes the primary color in dark mode
  neutral: "#25c2a0"

fonts:
  # Heading font - h1-h6 and navbar
  heading:
    family: Inter
    weight: 600
  # Body font - paragraphs and general text
  body:
    family: Inter
    weights: [400, 700]

# dark  = white text on the primary color
# light = dark text on a light background
# auto  = follows the current theme
navbar: dark

# branded | neutral
darkMode: neutral
`
