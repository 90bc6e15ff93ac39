package brandcss

// Issue represents a single brand file problem in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "brandlint"
	Text        string   `json:"Text"`        // "colors.primary \"#2e855\" is not a #RRGGBB hex color"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the brand file with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "brands/acme.yaml"
	Line     int    `json:"Line"`     // 3
	Column   int    `json:"Column"`   // 3 (1-based, start of the key)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName tags every issue produced by Lint
const LinterName = "brandlint"

// Issue message formats
const (
	IssueUnreadable         = "brand file could not be read: %v"
	IssueInvalidColor       = "%s %q is not a #RRGGBB hex color"
	IssueUnknownNavbar      = "navbar %q must be one of dark, light, auto"
	IssueUnknownDarkMode    = "darkMode %q must be one of branded, neutral"
	IssueEmptyFamily        = "%s is empty"
	IssueNoWeights          = "fonts.body.weights must list at least one weight"
	IssueWeightRange        = "%s %d is not a multiple of 100 between 100 and 900"
	IssueDuplicateWeight    = "fonts.body.weights lists %d more than once"
	IssueDarkModeRecorded   = "darkMode %q is recorded in the stylesheet comment but does not change colors"
	IssueMalformedGenerated = "generated stylesheet is malformed: %v"
)
