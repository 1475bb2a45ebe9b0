// Package mdlex provides a public API for tokenizing markdown documents.
//
// This package provides functions to:
//   - Split a document into typed tokens (headings, paragraphs, blank lines, code fences)
//   - Tokenize large documents on a bounded worker pool
//   - Load documents from disk, decoding legacy encodings (CP437, CP850, ISO-8859-1)
//
// Example usage:
//
//	import "github.com/badele/mdlex/pkg/mdlex"
//
//	doc, _ := mdlex.ReadDocument("README.md", "utf8")
//	for _, token := range mdlex.Parse(doc) {
//		fmt.Println(token.Type, token.Text)
//	}
package mdlex

import (
	"context"

	"github.com/badele/mdlex/internal/importer/markdown"
	"github.com/badele/mdlex/internal/source"
	"github.com/badele/mdlex/internal/types"
)

// Type aliases for public API
type (
	// Token is an immutable (type, text) pair
	Token = types.Token

	// TokenType represents the type of a token
	TokenType = types.TokenType

	// TokenStats contains statistics about parsed tokens
	TokenStats = types.TokenStats

	// Matcher is the line matching capability
	Matcher = types.Matcher

	// Tokenizer is the document tokenizer
	Tokenizer = markdown.Tokenizer

	// Option configures a Tokenizer
	Option = markdown.Option
)

// Token type constants
const (
	TokenHeaderH1       = types.TokenHeaderH1
	TokenHeaderH2       = types.TokenHeaderH2
	TokenParagraph      = types.TokenParagraph
	TokenNewLine        = types.TokenNewLine
	TokenCodeBlockOpen  = types.TokenCodeBlockOpen
	TokenCodeBlockClose = types.TokenCodeBlockClose
	TokenUnknown        = types.TokenUnknown
)

var (
	ErrUnmatchedLine       = markdown.ErrUnmatchedLine
	ErrNotMarkdown         = source.ErrNotMarkdown
	ErrUnsupportedEncoding = source.ErrUnsupportedEncoding
)

// Parse converts a document into its ordered token sequence.
func Parse(document string) []Token {
	return markdown.Parse(document)
}

// ParseParallel is Parse on a bounded worker pool; the output is identical.
func ParseParallel(ctx context.Context, document string, workers int) ([]Token, error) {
	return markdown.ParseParallel(ctx, document, workers)
}

// NewTokenizer creates a tokenizer that also collects statistics.
func NewTokenizer(document string, opts ...Option) *Tokenizer {
	return markdown.NewTokenizer(document, opts...)
}

// Matchers returns the default matchers in priority order.
func Matchers() []Matcher {
	return markdown.Matchers()
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	return source.ConvertToUTF8(data, sourceEncoding)
}

// ReadDocument loads a file as a UTF-8 document.
func ReadDocument(path, sourceEncoding string) (string, error) {
	return source.ReadFile(path, sourceEncoding)
}

// IsMarkdownFile reports whether path has the .md suffix.
func IsMarkdownFile(path string) bool {
	return source.IsMarkdownFile(path)
}
