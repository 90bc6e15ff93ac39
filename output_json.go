package brandcss

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/yacobolo/brandcss/internal/brand"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Brands    []JSONBrand `json:"brands"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Notes        int `json:"notes"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// JSONBrand is the derived data for one brand file
type JSONBrand struct {
	File      string                   `json:"file"`
	Navbar    string                   `json:"navbar"`
	DarkMode  string                   `json:"dark_mode,omitempty"`
	FontsURL  string                   `json:"fonts_url,omitempty"`
	Palettes  map[string]ColorVariants `json:"palettes"`
	Generated bool                     `json:"generated"`
}

// JSONPalette is one entry of `brandcss palette --format json`
type JSONPalette struct {
	Color    string        `json:"color"`
	HSL      brand.HSL     `json:"hsl"`
	Variants ColorVariants `json:"variants"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	brands := make([]JSONBrand, len(result.Brands))
	for i, b := range result.Brands {
		palettes := make(map[string]ColorVariants, len(b.Palettes))
		for _, p := range b.Palettes {
			palettes[p.Name] = p.Variants
		}
		brands[i] = JSONBrand{
			File:      b.File,
			Navbar:    string(b.Brand.Navbar),
			DarkMode:  string(b.Brand.DarkMode),
			FontsURL:  b.FontsURL,
			Palettes:  palettes,
			Generated: b.Generated,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Notes:        result.InfoCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Issues: jsonIssues,
		Brands: brands,
	}
}

// Palettes derives the ramp for each hex color, in argument order
func Palettes(hexes []string) ([]JSONPalette, error) {
	palettes := make([]JSONPalette, 0, len(hexes))
	for _, hex := range hexes {
		c, err := brand.HexToHSL(hex)
		if err != nil {
			return nil, err
		}
		v, err := brand.GenerateColorVariants(hex)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, JSONPalette{Color: hex, HSL: c, Variants: v})
	}
	return palettes, nil
}

// WritePalettes prints ramps as text swatches or JSON
func WritePalettes(w io.Writer, palettes []JSONPalette, asJSON, useColors bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(palettes)
	}

	reporter := NewVerboseReporter(w, useColors)
	for _, p := range palettes {
		fmt.Fprintf(w, "%s  hsl(%d, %d%%, %d%%)\n", p.Color, p.HSL.H, p.HSL.S, p.HSL.L)
		reporter.PrintPalette("ramp", p.Variants)
	}
	return nil
}
