package brandcss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/brandcss/internal/brand"
)

// DefaultSuffix is appended to the brand file stem to name its stylesheet
const DefaultSuffix = ".generated.css"

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	result := &GenerateResult{}

	// 1. Find brand files
	patterns := config.Patterns()
	files, stats, err := ScanBrandFiles(patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped

	if config.Verbose {
		fmt.Printf("Found %d brand files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	if len(files) == 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no brand files matched %s", strings.Join(patterns, ", ")))
		return result, nil
	}

	// 2. Plan outputs up front so two brands never overwrite each other
	outputs := make(map[string]string, len(files))
	for _, file := range files {
		out := OutputPath(file, config.OutputDir, config.Suffix)
		if prev, ok := outputs[out]; ok {
			return nil, fmt.Errorf("%s and %s both generate %s", prev, file, out)
		}
		outputs[out] = file
	}

	// 3. Render everything before touching the filesystem
	rendered := make([]string, len(files))
	for i, file := range files {
		if config.Verbose {
			fmt.Printf("Rendering %s\n", file)
		}

		css, err := Render(file)
		if err != nil {
			return nil, err
		}

		if config.Validate {
			if _, err := brand.ValidateCSS(css); err != nil {
				return nil, fmt.Errorf("validate %s: %w", file, err)
			}
		}
		rendered[i] = css
	}

	// 4. Write
	for i, file := range files {
		out := OutputPath(file, config.OutputDir, config.Suffix)
		if err := WriteStylesheet(out, rendered[i]); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		result.Outputs = append(result.Outputs, out)
		result.StylesheetsWritten++

		if config.Verbose {
			fmt.Printf("Wrote %s\n", out)
		}
	}

	return result, nil
}

// Patterns joins every include glob onto SourceDir
func (c Config) Patterns() []string {
	patterns := make([]string, 0, len(c.Includes))
	for _, include := range c.Includes {
		patterns = append(patterns, filepath.Join(c.SourceDir, include))
	}
	return patterns
}

// Render loads one brand file and returns its stylesheet without writing it
func Render(path string) (string, error) {
	b, err := brand.Load(path)
	if err != nil {
		return "", err
	}

	css, err := brand.GenerateCSS(b)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", path, err)
	}

	return css, nil
}

// OutputPath maps brands/acme.yaml to <outputDir>/acme<suffix>
func OutputPath(brandFile, outputDir, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	base := filepath.Base(brandFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+suffix)
}

// WriteStylesheet creates parent directories and overwrites path with css
func WriteStylesheet(path, css string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	// #nosec G306 - stylesheets are public build artifacts
	if err := os.WriteFile(path, []byte(css), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
