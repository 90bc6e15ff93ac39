package brandcss

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/brandcss/internal/brand"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Patterns to scan (e.g., "brands/**/*.yaml")
	Verbose   bool
	Strict    bool // Warnings fail the build too

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (brandlint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting results for every scanned brand file
type LintResult struct {
	Issues []Issue        // All issues found (after limits)
	Brands []BrandReport  // One per brand file, in scan order

	FilesScanned   int
	FilesSkipped   int
	ErrorCount     int // Counted before limits are applied
	WarningCount   int
	InfoCount      int
	TruncatedCount int // Issues removed due to limits

	Warnings []string
}

// NamedPalette is the derived ramp for one brand color
type NamedPalette struct {
	Name     string // "primary"
	Variants ColorVariants
}

// BrandReport summarises one brand file
type BrandReport struct {
	File       string
	Brand      Brand
	Palettes   []NamedPalette // Only colors that parsed
	FontsURL   string
	Stylesheet brand.CSSStats // Zero unless the stylesheet could be generated
	Generated  bool
}

// Failed reports whether the result should fail the build.
// Errors always fail; strict mode also fails on warnings.
func (r *LintResult) Failed(strict bool) bool {
	if r.ErrorCount > 0 {
		return true
	}
	return strict && r.WarningCount > 0
}

// Lint checks brand files for problems the generator would not catch
func Lint(config LintConfig) (*LintResult, error) {
	files, stats, err := ScanBrandFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := &LintResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}

	if len(files) == 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no brand files matched %s", strings.Join(config.ScanPaths, ", ")))
	}

	for _, file := range files {
		if config.Verbose {
			fmt.Printf("Linting %s\n", file)
		}
		issues, report := lintFile(file)
		result.Issues = append(result.Issues, issues...)
		result.Brands = append(result.Brands, report)
	}

	sortIssues(result.Issues)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		default:
			result.InfoCount++
		}
	}

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// fileLinter collects issues for one brand file
type fileLinter struct {
	file   string
	lines  []string
	issues []Issue
}

func lintFile(path string) ([]Issue, BrandReport) {
	report := BrandReport{File: path}

	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		l := &fileLinter{file: path}
		l.add(SeverityError, l.locate(), fmt.Sprintf(IssueUnreadable, err))
		return l.issues, report
	}

	l := &fileLinter{file: path, lines: strings.Split(string(content), "\n")}

	b, err := brand.Load(path)
	if err != nil {
		l.add(SeverityError, l.locate(), fmt.Sprintf(IssueUnreadable, err))
		return l.issues, report
	}
	report.Brand = b

	l.checkColors(b, &report)
	l.checkFonts(b)

	if !b.Navbar.Valid() {
		l.add(SeverityError, l.locate("navbar"), fmt.Sprintf(IssueUnknownNavbar, b.Navbar))
	}

	if !b.DarkMode.Valid() {
		l.add(SeverityError, l.locate("darkMode"), fmt.Sprintf(IssueUnknownDarkMode, b.DarkMode))
	} else if b.DarkMode != "" {
		l.add(SeverityInfo, l.locate("darkMode"), fmt.Sprintf(IssueDarkModeRecorded, b.DarkMode))
	}

	report.FontsURL = brand.GoogleFontsURL(b.Fonts)

	if !l.hasErrors() {
		css, err := brand.GenerateCSS(b)
		if err == nil {
			report.Stylesheet, err = brand.ValidateCSS(css)
		}
		if err != nil {
			l.add(SeverityError, l.locate(), fmt.Sprintf(IssueMalformedGenerated, err))
		} else {
			report.Generated = true
		}
	}

	return l.issues, report
}

func (l *fileLinter) checkColors(b Brand, report *BrandReport) {
	colors := []struct {
		key   string
		value string
	}{
		{"primary", b.Colors.Primary},
		{"accent", b.Colors.Accent},
		{"neutral", b.Colors.Neutral},
	}

	for _, c := range colors {
		variants, err := brand.GenerateColorVariants(c.value)
		if err != nil {
			l.add(SeverityError, l.locate("colors", c.key),
				fmt.Sprintf(IssueInvalidColor, "colors."+c.key, c.value))
			continue
		}
		report.Palettes = append(report.Palettes, NamedPalette{Name: c.key, Variants: variants})
	}
}

func (l *fileLinter) checkFonts(b Brand) {
	heading, body := b.Fonts.Heading, b.Fonts.Body

	if strings.TrimSpace(heading.Family) == "" {
		l.add(SeverityError, l.locate("fonts", "heading"), fmt.Sprintf(IssueEmptyFamily, "fonts.heading.family"))
	}
	if !validWeight(heading.Weight) {
		l.add(SeverityWarning, l.locate("fonts", "heading", "weight"),
			fmt.Sprintf(IssueWeightRange, "fonts.heading.weight", heading.Weight))
	}

	if strings.TrimSpace(body.Family) == "" {
		l.add(SeverityError, l.locate("fonts", "body"), fmt.Sprintf(IssueEmptyFamily, "fonts.body.family"))
	}
	if len(body.Weights) == 0 {
		l.add(SeverityError, l.locate("fonts", "body"), IssueNoWeights)
		return
	}

	seen := make(map[int]bool, len(body.Weights))
	for _, w := range body.Weights {
		pos := l.locate("fonts", "body", "weights")
		if !validWeight(w) {
			l.add(SeverityWarning, pos, fmt.Sprintf(IssueWeightRange, "fonts.body.weights", w))
		}
		if seen[w] {
			l.add(SeverityWarning, pos, fmt.Sprintf(IssueDuplicateWeight, w))
		}
		seen[w] = true
	}
}

// validWeight accepts the nine static weights Google Fonts serves
func validWeight(w int) bool {
	return w >= 100 && w <= 900 && w%100 == 0
}

func (l *fileLinter) add(severity string, pos IssuePos, text string) {
	issue := Issue{
		FromLinter: LinterName,
		Text:       text,
		Severity:   severity,
		Pos:        pos,
	}
	if pos.Line >= 1 && pos.Line <= len(l.lines) {
		issue.SourceLines = []string{l.lines[pos.Line-1]}
	}
	l.issues = append(l.issues, issue)
}

func (l *fileLinter) hasErrors() bool {
	for _, issue := range l.issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// locate walks a YAML key path (block or flow style) and returns the
// position of the deepest key found. Unresolved paths fall back to 1:1.
func (l *fileLinter) locate(keys ...string) IssuePos {
	pos := IssuePos{Filename: l.file, Line: 1, Column: 1}

	line, col := 0, 0
	for _, key := range keys {
		found := false
		for i := line; i < len(l.lines); i++ {
			from := 0
			if i == line {
				from = col
			}
			if c := findKey(l.lines[i], key, from); c >= 0 {
				line, col = i, c+len(key)+1
				pos.Line, pos.Column = i+1, c+1
				found = true
				break
			}
		}
		if !found {
			break
		}
	}

	return pos
}

// findKey returns the byte offset of "key:" in line at or after from, or -1
func findKey(line, key string, from int) int {
	if strings.HasPrefix(strings.TrimSpace(line), "#") || from > len(line) {
		return -1
	}

	needle := key + ":"
	for off := from; off < len(line); {
		idx := strings.Index(line[off:], needle)
		if idx < 0 {
			return -1
		}
		idx += off
		if idx == 0 || !isKeyChar(line[idx-1]) {
			return idx
		}
		off = idx + 1
	}
	return -1
}

func isKeyChar(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Deduplication by message text
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
