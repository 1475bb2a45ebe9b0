package markdown

import "github.com/badele/mdlex/internal/types"

// Matchers returns the matchers in priority order. HeadingMatcher must come
// first: BodyMatcher accepts every line and would read headings as
// paragraphs.
func Matchers() []types.Matcher {
	return []types.Matcher{
		HeadingMatcher{},
		BodyMatcher{},
	}
}

// match returns the tokens of the first matcher accepting line.
func match(matchers []types.Matcher, line string) (types.Matcher, []types.Token, bool) {
	for _, m := range matchers {
		if m.Validate(line) {
			return m, m.Tokens(line), true
		}
	}
	return nil, nil, false
}
