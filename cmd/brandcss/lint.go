package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/brandcss"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint brand files",
	Long: `Check brand files for malformed colors, unknown navbar or dark mode
styles and font weights that Google Fonts cannot serve.
Errors fail the run; --strict also fails on warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd, buildLintConfig())
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{"brand.yaml"}, "Brand file patterns to lint")
	f.Bool("strict", false, "Fail on warnings as well as errors (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (brandlint) suffix on issues")
}

// runLint is shared between `brandcss lint` and `brandcss generate --lint`.
func runLint(cmd *cobra.Command, lintConfig brandcss.LintConfig) error {
	lintResult, err := brandcss.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := brandcss.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		brandcss.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig)
	}

	// Soft gate: errors always fail, warnings only in strict mode
	if lintResult.Failed(lintConfig.Strict) {
		return fmt.Errorf("lint failed: %s, %s",
			plural(lintResult.ErrorCount, "error"),
			plural(lintResult.WarningCount, "warning"))
	}

	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
