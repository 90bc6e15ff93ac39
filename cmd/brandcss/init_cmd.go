package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/brandcss/internal/brand"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .brandcss.yaml and brand.yaml",
	Long: `Create a .brandcss.yaml configuration file and a starter brand.yaml
in the current directory. Existing files are kept unless --force is given.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		files := []struct {
			path    string
			content string
		}{
			{defaultConfigPath, defaultConfig},
			{"brand.yaml", brand.DefaultYAML},
		}

		// Check everything first so a refusal leaves the directory untouched
		if !force {
			for _, f := range files {
				if _, err := os.Stat(f.path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", f.path)
				}
			}
		}

		for _, f := range files {
			if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", f.path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", f.path)
		}
		return nil
	},
}

const defaultConfig = `# brandcss configuration
# Docs: https://github.com/yacobolo/brandcss

verbose: false

# Generation settings
generate:
  source: .
  include:
    - "brand.yaml"
  output-dir: src/css
  suffix: .generated.css
  validate: true

# Linting settings
lint:
  paths:
    - "brand.yaml"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Palette settings
palette:
  brand: brand.yaml
  format: text             # text | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
}
