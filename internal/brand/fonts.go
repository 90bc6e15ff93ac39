package brand

import (
	"strconv"
	"strings"
)

const googleFontsBase = "https://fonts.googleapis.com/css2"

// GoogleFontsURL builds the css2 import URL for the heading and body fonts.
// Body weights keep the order they were declared in.
func GoogleFontsURL(fonts Fonts) string {
	bodyWeights := make([]string, len(fonts.Body.Weights))
	for i, w := range fonts.Body.Weights {
		bodyWeights[i] = strconv.Itoa(w)
	}

	families := []string{
		familySegment(fonts.Heading.Family, strconv.Itoa(fonts.Heading.Weight)),
		familySegment(fonts.Body.Family, strings.Join(bodyWeights, ";")),
	}

	return googleFontsBase + "?" + strings.Join(families, "&") + "&display=swap"
}

// familySegment renders family=Open+Sans:wght@400;700
func familySegment(family, weights string) string {
	return "family=" + strings.ReplaceAll(family, " ", "+") + ":wght@" + weights
}
