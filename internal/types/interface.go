package types

type Tokenizer interface {
	Tokenize() []Token
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() TokenStats
}

// Matcher decides whether it can interpret a single line and, if so,
// which tokens the line produces. Implementations hold no state between
// calls; Tokens is only called after Validate returned true for the line.
type Matcher interface {
	Validate(line string) bool
	Tokens(line string) []Token
}
