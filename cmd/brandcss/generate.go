package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/brandcss"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate brand stylesheets from brand files",
	Long: `Read brand YAML files and write one CSS stylesheet per brand.
Output is deterministic: the same brand always produces the same bytes.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", ".", "Base directory for --include patterns")
	f.StringSlice("include", nil, "Glob patterns for brand files (default brand.yaml)")
	f.String("output-dir", "src/css", "Output directory for generated stylesheets")
	f.String("suffix", brandcss.DefaultSuffix, "Suffix appended to the brand file stem")
	f.Bool("validate", true, "Lex generated CSS before writing")
	f.Bool("stdout", false, "Print stylesheets instead of writing them")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	out := cmd.OutOrStdout()

	stdout := getBoolWithFallback("stdout", "generate.stdout", false)
	if stdout {
		return printStylesheets(cmd, config)
	}

	result, err := brandcss.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		fmt.Fprintf(out, "Generated stylesheets in %s\n", config.OutputDir)
		fmt.Fprintf(out, "  Brand files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Stylesheets written: %d\n", result.StylesheetsWritten)

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  Warning: %s\n", w)
		}
	}

	// Run lint after generate if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		lintConfig := buildLintConfig()
		lintConfig.ScanPaths = config.Patterns()
		return runLint(cmd, lintConfig)
	}

	return nil
}

// printStylesheets renders every matched brand file to stdout without writing.
func printStylesheets(cmd *cobra.Command, config brandcss.Config) error {
	files, _, err := brandcss.ScanBrandFiles(config.Patterns())
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no brand files matched %v", config.Patterns())
	}

	for _, file := range files {
		css, err := brandcss.Render(file)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), css)
	}

	return nil
}
