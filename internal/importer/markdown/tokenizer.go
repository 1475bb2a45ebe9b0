package markdown

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/badele/mdlex/internal/types"
)

// ErrUnmatchedLine is reported when no matcher accepts a line. It cannot
// happen with Matchers(), whose BodyMatcher accepts everything.
var ErrUnmatchedLine = errors.New("no matcher accepted line")

type Tokenizer struct {
	input    string
	matchers []types.Matcher
	logger   *slog.Logger
	err      error
	Tokens   []types.Token    `json:"tokens"`
	Stats    types.TokenStats `json:"stats"`
}

type Option func(*Tokenizer)

// WithMatchers replaces the default registry.
func WithMatchers(matchers []types.Matcher) Option {
	return func(t *Tokenizer) {
		t.matchers = matchers
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tokenizer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func NewTokenizer(input string, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		input:    input,
		matchers: Matchers(),
		logger:   slog.New(slog.DiscardHandler),
		Tokens:   make([]types.Token, 0),
		Stats:    types.NewTokenStats(int64(len(input))),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Parse tokenizes a whole document with the default registry.
func Parse(document string) []types.Token {
	return NewTokenizer(document).Tokenize()
}

// Tokenize runs every line through the registry and returns the
// concatenated tokens. Tokenizing stops at the first line no matcher
// accepts; Err then reports which one.
func (t *Tokenizer) Tokenize() []types.Token {
	lines := t.reset()

	for i, line := range lines {
		matcher, tokens, ok := match(t.matchers, line)
		if !t.accept(i, line, len(lines), matcher, tokens, ok) {
			return t.Tokens
		}
	}

	t.finish()
	return t.Tokens
}

// reset clears the previous run and returns the lines to tokenize.
func (t *Tokenizer) reset() []string {
	t.Tokens = make([]types.Token, 0)
	t.Stats = types.NewTokenStats(int64(len(t.input)))
	t.err = nil

	lines := SplitLines(t.input)
	t.Stats.TotalLines = len(lines)
	return lines
}

// accept appends the tokens of line i, or records the interruption and
// reports false when no matcher accepted it.
func (t *Tokenizer) accept(i int, line string, lineCount int, matcher types.Matcher, tokens []types.Token, ok bool) bool {
	lineNumber := i + 1

	if !ok {
		t.err = fmt.Errorf("line %d: %w", lineNumber, ErrUnmatchedLine)
		t.Stats.FirstUnmatchedLine = lineNumber
		t.Stats.ParsedPercent = float64(i) / float64(lineCount) * 100
		t.logger.Warn("tokenizing interrupted", "line", lineNumber, "text", line)
		t.calculateStats()
		return false
	}

	t.logger.Debug("line matched",
		"line", lineNumber,
		"matcher", fmt.Sprintf("%T", matcher),
		"tokens", len(tokens))

	t.Tokens = append(t.Tokens, tokens...)
	return true
}

func (t *Tokenizer) finish() {
	t.Stats.ParsedPercent = 100
	t.calculateStats()
}

func (t *Tokenizer) GetStats() types.TokenStats {
	return t.Stats
}

// Err returns the error that interrupted the last Tokenize call, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

func (t *Tokenizer) calculateStats() {
	t.Stats.TotalTokens = len(t.Tokens)
	for _, token := range t.Tokens {
		t.Stats.TokensByType[token.Type]++
		t.Stats.TotalTextLength += len(token.Text)
	}
}

// SplitLines splits a document on "\n". The terminator is not part of the
// line, a trailing "\r" is dropped, and a final unterminated segment is a
// line of its own. The empty document has no lines.
func SplitLines(document string) []string {
	if document == "" {
		return nil
	}

	lines := strings.Split(document, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
