package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/badele/mdlex/internal/types"
)

func TestBodyMatcherAcceptsEverything(t *testing.T) {
	matcher := BodyMatcher{}
	for _, line := range []string{"", " ", "\t", "Hello", "# Title", "héllo ∞", "<code>"} {
		if !matcher.Validate(line) {
			t.Errorf("expected %q to be accepted", line)
		}
	}
}

func TestBodyMatcherTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []types.Token
	}{
		{
			name:     "Empty line",
			line:     "",
			expected: []types.Token{types.NewToken(types.TokenNewLine, "")},
		},
		{
			name:     "Whitespace only",
			line:     " \t ",
			expected: []types.Token{types.NewToken(types.TokenNewLine, "")},
		},
		{
			name:     "Plain paragraph",
			line:     "Hello World",
			expected: []types.Token{types.NewToken(types.TokenParagraph, "Hello World")},
		},
		{
			name:     "Paragraph keeps original spacing",
			line:     "  Hello   World ",
			expected: []types.Token{types.NewToken(types.TokenParagraph, "  Hello   World ")},
		},
		{
			name: "Inline fence",
			line: "<code>Hello World</code>",
			expected: []types.Token{
				types.NewToken(types.TokenCodeBlockOpen, "<code>Hello World</code>"),
				types.NewToken(types.TokenCodeBlockClose, "<code>Hello World</code>"),
				types.NewToken(types.TokenParagraph, "<code>Hello World</code>"),
			},
		},
		{
			name: "Standalone open marker",
			line: "<code>",
			expected: []types.Token{
				types.NewToken(types.TokenCodeBlockOpen, "<code>"),
				types.NewToken(types.TokenParagraph, "<code>"),
			},
		},
		{
			name: "Close before open",
			line: "end</code> then <code>start",
			expected: []types.Token{
				types.NewToken(types.TokenCodeBlockClose, "end</code> then <code>start"),
				types.NewToken(types.TokenCodeBlockOpen, "end</code> then <code>start"),
				types.NewToken(types.TokenParagraph, "end</code> then <code>start"),
			},
		},
		{
			name: "Both markers in one word",
			line: "<code>x</code>",
			expected: []types.Token{
				types.NewToken(types.TokenCodeBlockOpen, "<code>x</code>"),
				types.NewToken(types.TokenCodeBlockClose, "<code>x</code>"),
				types.NewToken(types.TokenParagraph, "<code>x</code>"),
			},
		},
		{
			name:     "Look-alike tag",
			line:     "<codex> is not a fence",
			expected: []types.Token{types.NewToken(types.TokenParagraph, "<codex> is not a fence")},
		},
		{
			name:     "Unicode text",
			line:     "Héllo àüé ∞",
			expected: []types.Token{types.NewToken(types.TokenParagraph, "Héllo àüé ∞")},
		},
	}

	matcher := BodyMatcher{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.Tokens(tt.line)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tokens(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestBodyMatcherIsIdempotent(t *testing.T) {
	matcher := BodyMatcher{}
	line := "<code>Hello World</code>"

	if diff := cmp.Diff(matcher.Tokens(line), matcher.Tokens(line)); diff != "" {
		t.Errorf("repeated calls differ (-first +second):\n%s", diff)
	}
}
