package brandcss

import (
	"fmt"
	"io"

	"github.com/yacobolo/brandcss/internal/brand"
)

// VerboseReporter prints statistics and derived palettes
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	generated := 0
	for _, b := range result.Brands {
		if b.Generated {
			generated++
		}
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Brand Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Brand Files Scanned:  %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:        %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Stylesheets Rendered: %d\n", generated)
	fmt.Fprintf(r.w, "Errors:               %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:             %d\n", result.WarningCount)
	fmt.Fprintf(r.w, "Notes:                %d\n", result.InfoCount)
}

// PrintBrands shows the palettes and font URL of every brand
func (r *VerboseReporter) PrintBrands(result LintResult) {
	for _, b := range result.Brands {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, b.File, r.useColors))

		for _, p := range b.Palettes {
			r.PrintPalette(p.Name, p.Variants)
		}

		if b.FontsURL != "" {
			fmt.Fprintf(r.w, "  fonts     %s\n", b.FontsURL)
		}
		if b.Generated {
			fmt.Fprintf(r.w, "  css       %d blocks, %d custom properties\n",
				b.Stylesheet.Blocks, b.Stylesheet.CustomProperties)
		}
	}
}

// PrintPalette prints one ramp on a single line, darkest first
func (r *VerboseReporter) PrintPalette(name string, v ColorVariants) {
	fmt.Fprintf(r.w, "  %-9s", name)
	for i, hex := range v.Ordered() {
		label := brand.VariantNames[i]
		if label == "base" {
			label = RenderStyle(StyleGreen, label, r.useColors)
		}
		fmt.Fprintf(r.w, " %s=%s", label, Swatch(hex, r.useColors))
	}
	fmt.Fprintln(r.w, "")
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
