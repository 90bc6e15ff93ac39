package brand

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrMalformedStylesheet is returned when generated CSS fails to lex cleanly.
var ErrMalformedStylesheet = errors.New("malformed stylesheet")

// CSSStats summarises a lexed stylesheet
type CSSStats struct {
	Blocks           int // Top-level and nested { } blocks
	CustomProperties int // --name declarations and references
	Imports          int // @import rules
}

// ValidateCSS lexes css and checks that strings, urls and braces are well formed.
func ValidateCSS(content string) (CSSStats, error) {
	var stats CSSStats
	lexer := css.NewLexer(parse.NewInputString(content))

	depth := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return stats, fmt.Errorf("%w: %v", ErrMalformedStylesheet, err)
			}
			break
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
			stats.Blocks++
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return stats, fmt.Errorf("%w: unexpected '}'", ErrMalformedStylesheet)
			}
		case css.BadStringToken, css.BadURLToken:
			return stats, fmt.Errorf("%w: bad token %q", ErrMalformedStylesheet, text)
		case css.AtKeywordToken:
			if string(text) == "@import" {
				stats.Imports++
			}
		case css.CustomPropertyNameToken:
			stats.CustomProperties++
		case css.IdentToken:
			if bytes.HasPrefix(text, []byte("--")) {
				stats.CustomProperties++
			}
		}
	}

	if depth != 0 {
		return stats, fmt.Errorf("%w: %d unclosed block(s)", ErrMalformedStylesheet, depth)
	}

	return stats, nil
}
