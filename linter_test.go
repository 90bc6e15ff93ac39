package brandcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/brandcss/internal/brand"
)

const brokenBrand = `colors:
  primary: "#2e855"
  accent: "#FFCC00"
  neutral: teal
fonts:
  heading:
    family: ""
    weight: 650
  body:
    family: Inter
    weights: [400, 400, 1000]
navbar: transparent
darkMode: midnight
`

func writeBrand(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLint_BrokenBrand(t *testing.T) {
	dir := t.TempDir()
	path := writeBrand(t, dir, "brand.yaml", brokenBrand)

	result, err := Lint(LintConfig{ScanPaths: []string{path}})
	require.NoError(t, err)

	type want struct {
		line, col int
		severity  string
		text      string
	}
	expected := []want{
		{2, 3, SeverityError, `colors.primary "#2e855" is not a #RRGGBB hex color`},
		{4, 3, SeverityError, `colors.neutral "teal" is not a #RRGGBB hex color`},
		{6, 3, SeverityError, "fonts.heading.family is empty"},
		{8, 5, SeverityWarning, "fonts.heading.weight 650 is not a multiple of 100 between 100 and 900"},
		{11, 5, SeverityWarning, "fonts.body.weights lists 400 more than once"},
		{11, 5, SeverityWarning, "fonts.body.weights 1000 is not a multiple of 100 between 100 and 900"},
		{12, 1, SeverityError, `navbar "transparent" must be one of dark, light, auto`},
		{13, 1, SeverityError, `darkMode "midnight" must be one of branded, neutral`},
	}

	require.Len(t, result.Issues, len(expected))
	for i, w := range expected {
		issue := result.Issues[i]
		assert.Equal(t, path, issue.Pos.Filename)
		assert.Equal(t, w.line, issue.Pos.Line, w.text)
		assert.Equal(t, w.col, issue.Pos.Column, w.text)
		assert.Equal(t, w.severity, issue.Severity, w.text)
		assert.Equal(t, w.text, issue.Text)
		assert.Equal(t, LinterName, issue.FromLinter)
		require.Len(t, issue.SourceLines, 1)
	}

	assert.Equal(t, 5, result.ErrorCount)
	assert.Equal(t, 3, result.WarningCount)
	assert.True(t, result.Failed(false))

	require.Len(t, result.Brands, 1)
	assert.False(t, result.Brands[0].Generated)
	require.Len(t, result.Brands[0].Palettes, 1)
	assert.Equal(t, "accent", result.Brands[0].Palettes[0].Name)
}

func TestLint_DefaultBrandIsClean(t *testing.T) {
	dir := t.TempDir()
	path := writeBrand(t, dir, "brand.yaml", brand.DefaultYAML)

	result, err := Lint(LintConfig{ScanPaths: []string{filepath.Join(dir, "*.yaml")}})
	require.NoError(t, err)

	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 0, result.WarningCount)
	assert.False(t, result.Failed(true))

	// darkMode is reported as a note only
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityInfo, result.Issues[0].Severity)
	assert.Equal(t, "darkMode: neutral", result.Issues[0].SourceLines[0])

	require.Len(t, result.Brands, 1)
	report := result.Brands[0]
	assert.Equal(t, path, report.File)
	assert.True(t, report.Generated)
	assert.Equal(t, 1, report.Stylesheet.Imports)
	assert.Len(t, report.Palettes, 3)
	assert.Equal(t, "https://fonts.googleapis.com/css2?family=Inter:wght@600&family=Inter:wght@400;700&display=swap", report.FontsURL)
}

func TestLint_FlowStylePositions(t *testing.T) {
	dir := t.TempDir()
	path := writeBrand(t, dir, "brand.yaml", `colors: {primary: "#2e855", accent: "#ffcc00", neutral: "#25c2a0"}
fonts:
  heading: {family: Inter, weight: 600}
  body: {family: Inter, weights: [400]}
navbar: light
`)

	result, err := Lint(LintConfig{ScanPaths: []string{path}})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, 1, result.Issues[0].Pos.Line)
	assert.Equal(t, 10, result.Issues[0].Pos.Column)
}

func TestLint_UnparseableFile(t *testing.T) {
	dir := t.TempDir()
	path := writeBrand(t, dir, "brand.yaml", "colors: [\n")

	result, err := Lint(LintConfig{ScanPaths: []string{path}})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Equal(t, 1, result.Issues[0].Pos.Line)
	assert.Contains(t, result.Issues[0].Text, "could not be read")
}

func TestLint_NoFiles(t *testing.T) {
	result, err := Lint(LintConfig{ScanPaths: []string{filepath.Join(t.TempDir(), "*.yaml")}})
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no brand files matched")
}

func TestLint_IssueLimits(t *testing.T) {
	dir := t.TempDir()
	path := writeBrand(t, dir, "brand.yaml", brokenBrand)

	result, err := Lint(LintConfig{ScanPaths: []string{path}, MaxIssuesPerLinter: 2})
	require.NoError(t, err)

	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 6, result.TruncatedCount)
	assert.Equal(t, 5, result.ErrorCount, "counts are taken before limits")
}

func TestDeduplicateSameIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "a"},
	}
	got := deduplicateSameIssues(issues, 1)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "b", got[1].Text)
}

func TestFindKey(t *testing.T) {
	tests := []struct {
		name string
		line string
		key  string
		from int
		want int
	}{
		{name: "block key", line: "  primary: x", key: "primary", want: 2},
		{name: "flow key", line: "colors: {primary: x}", key: "primary", from: 7, want: 9},
		{name: "suffix of longer key", line: "  xprimary: x", key: "primary", want: -1},
		{name: "weight is not weights", line: "  weights: [400]", key: "weight", want: -1},
		{name: "comment line", line: "# primary: x", key: "primary", want: -1},
		{name: "from past end", line: "a:", key: "a", from: 5, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findKey(tt.line, tt.key, tt.from))
		})
	}
}

func TestValidWeight(t *testing.T) {
	for _, w := range []int{100, 400, 900} {
		assert.True(t, validWeight(w), w)
	}
	for _, w := range []int{0, 50, 450, 1000} {
		assert.False(t, validWeight(w), w)
	}
}
