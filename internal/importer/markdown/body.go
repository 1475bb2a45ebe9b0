package markdown

import (
	"strings"

	"github.com/badele/mdlex/internal/types"
)

// Inline code fence markers.
const (
	CodeOpenMarker  = "<code>"
	CodeCloseMarker = "</code>"
)

// BodyMatcher accepts every line: blank lines become NewLine, anything
// else becomes a Paragraph preceded by one token per fence marker.
//
// Fence detection is line-local. A marker does not open a region that
// changes how later lines are read.
type BodyMatcher struct{}

func (BodyMatcher) Validate(line string) bool {
	return true
}

func (BodyMatcher) Tokens(line string) []types.Token {
	if strings.TrimSpace(line) == "" {
		return []types.Token{types.NewToken(types.TokenNewLine, "")}
	}

	var tokens []types.Token
	for _, word := range strings.Fields(line) {
		tokens = appendFenceTokens(tokens, word, line)
	}

	return append(tokens, types.NewToken(types.TokenParagraph, line))
}

// appendFenceTokens emits a token for each marker found in word, in the
// order the markers appear. Fence tokens carry the whole line as text.
func appendFenceTokens(tokens []types.Token, word, line string) []types.Token {
	for word != "" {
		openAt := strings.Index(word, CodeOpenMarker)
		closeAt := strings.Index(word, CodeCloseMarker)

		switch {
		case openAt < 0 && closeAt < 0:
			return tokens
		case closeAt < 0 || (openAt >= 0 && openAt < closeAt):
			tokens = append(tokens, types.NewToken(types.TokenCodeBlockOpen, line))
			word = word[openAt+len(CodeOpenMarker):]
		default:
			tokens = append(tokens, types.NewToken(types.TokenCodeBlockClose, line))
			word = word[closeAt+len(CodeCloseMarker):]
		}
	}
	return tokens
}
