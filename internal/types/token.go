package types

import (
	"encoding/json"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// TOKEN TYPE
/////////////////////////////////////////////////////////////////////////////

type TokenType int

const (
	TokenHeaderH1 TokenType = iota
	TokenHeaderH2
	TokenParagraph
	TokenNewLine
	TokenCodeBlockOpen
	TokenCodeBlockClose
	TokenUnknown
)

// TokenTypes lists every token type in declaration order.
func TokenTypes() []TokenType {
	return []TokenType{
		TokenHeaderH1,
		TokenHeaderH2,
		TokenParagraph,
		TokenNewLine,
		TokenCodeBlockOpen,
		TokenCodeBlockClose,
		TokenUnknown,
	}
}

// String returns the display name presenters key on. These names are
// stable and must not change.
func (t TokenType) String() string {
	switch t {
	case TokenHeaderH1:
		return "H1"
	case TokenHeaderH2:
		return "H2"
	case TokenParagraph:
		return "Paragraph"
	case TokenNewLine:
		return "NewLine"
	case TokenCodeBlockOpen:
		return "CodeBlockOpen"
	case TokenCodeBlockClose:
		return "CodeBlockClose"
	case TokenUnknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("TokenType(%d)", t)
	}
}

// ParseTokenType is the inverse of String.
func ParseTokenType(s string) (TokenType, error) {
	switch s {
	case "H1":
		return TokenHeaderH1, nil
	case "H2":
		return TokenHeaderH2, nil
	case "Paragraph":
		return TokenParagraph, nil
	case "NewLine":
		return TokenNewLine, nil
	case "CodeBlockOpen":
		return TokenCodeBlockOpen, nil
	case "CodeBlockClose":
		return TokenCodeBlockClose, nil
	case "UNKNOWN":
		return TokenUnknown, nil
	default:
		return 0, fmt.Errorf("unknown TokenType: %s", s)
	}
}

func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TokenType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

// MarshalText lets TokenType be used as a JSON map key.
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TokenType) UnmarshalText(data []byte) error {
	parsed, err := ParseTokenType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

// Token is an immutable (type, text) pair emitted by a matcher for one line.
type Token struct {
	Type TokenType `json:"type"`
	Text string    `json:"text"`
}

func NewToken(tokenType TokenType, text string) Token {
	return Token{Type: tokenType, Text: text}
}

func (t Token) String() string {
	return t.Type.String() + ": " + t.Text
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	TotalTokens        int               `json:"total_tokens"`
	TokensByType       map[TokenType]int `json:"tokens_by_type"`
	TotalLines         int               `json:"total_lines"`
	TotalTextLength    int               `json:"total_text_length"`
	InputSize          int64             `json:"input_size"`
	ParsedPercent      float64           `json:"parsed_percent"`
	FirstUnmatchedLine int               `json:"first_unmatched_line,omitempty"`
}

func NewTokenStats(inputSize int64) TokenStats {
	return TokenStats{
		TokensByType: make(map[TokenType]int),
		InputSize:    inputSize,
	}
}
