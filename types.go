package brandcss

import "github.com/yacobolo/brandcss/internal/brand"

// Brand is the brand description consumed by the generator
type Brand = brand.Brand

// ColorVariants is the seven-step tonal ramp of one color
type ColorVariants = brand.ColorVariants

// Config holds generator configuration
type Config struct {
	SourceDir string   // "." (base directory for Includes)
	Includes  []string // ["brand.yaml"] or ["brands/**/*.yaml"]
	OutputDir string   // "src/css"
	Suffix    string   // ".generated.css" (appended to the brand file stem)
	Validate  bool     // Lex generated CSS before writing (default: true)
	Verbose   bool     // Progress logging on stdout
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned       int
	FilesSkipped       int      // Ignored by .gitignore or not YAML
	StylesheetsWritten int
	Outputs            []string // Written stylesheet paths, in brand file order
	Warnings           []string
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and derived palettes only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + palettes
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
