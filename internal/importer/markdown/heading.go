package markdown

import (
	"strings"

	"github.com/badele/mdlex/internal/types"
)

const (
	h1Prefix = "#"
	h2Prefix = "##"
)

// HeadingMatcher recognizes "#" and "##" prefixed lines.
type HeadingMatcher struct{}

func (HeadingMatcher) Validate(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), h1Prefix)
}

// Tokens strips every occurrence of the matched prefix, not only the
// leading run, so "# C# notes" yields "C notes".
func (HeadingMatcher) Tokens(line string) []types.Token {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, h2Prefix):
		return []types.Token{headingToken(types.TokenHeaderH2, trimmed, h2Prefix)}
	case strings.HasPrefix(trimmed, h1Prefix):
		return []types.Token{headingToken(types.TokenHeaderH1, trimmed, h1Prefix)}
	default:
		return []types.Token{types.NewToken(types.TokenUnknown, "")}
	}
}

func headingToken(tokenType types.TokenType, line, prefix string) types.Token {
	text := strings.TrimSpace(strings.ReplaceAll(line, prefix, ""))
	return types.NewToken(tokenType, text)
}
