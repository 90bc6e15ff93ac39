// Package brandcss generates Infima brand stylesheets for documentation sites.
//
// A small YAML brand description (three colors, two fonts, a navbar style)
// is turned into a deterministic CSS file plus a Google Fonts import.
//
// # Generation
//
// Generate stylesheets from brand files:
//
//	config := brandcss.Config{
//		SourceDir: ".",
//		Includes:  []string{"brand.yaml"},
//		OutputDir: "src/css",
//		Suffix:    ".generated.css",
//	}
//	result, err := brandcss.Generate(config)
//
// # Linting
//
// Check brand files before generating:
//
//	lintConfig := brandcss.LintConfig{
//		ScanPaths: []string{"brands/**/*.yaml"},
//	}
//	result, err := brandcss.Lint(lintConfig)
//
// # CLI Tool
//
// Install the CLI with:
//
//	go install github.com/yacobolo/brandcss/cmd/brandcss@latest
package brandcss
