package exporter

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/badele/mdlex/internal/types"
)

const tableValueWidth = 50

func ExportTokensToTable(tokens []types.Token, writer io.Writer) error {
	fmt.Fprintln(writer, "┌─────────┬────────────────┬────────────────────────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-7s │ %-14s │ %-50s │\n", "#", "Token", "Value")
	fmt.Fprintln(writer, "├─────────┼────────────────┼────────────────────────────────────────────────────┤")

	for i, token := range tokens {
		value := truncate(token.Text, tableValueWidth)
		if token.Text == "" {
			value = "-"
		}

		fmt.Fprintf(writer, "│ %-7d │ %-14s │ %s │\n",
			i+1, token.Type.String(), padRight(value, tableValueWidth))
	}

	_, err := fmt.Fprintln(writer, "└─────────┴────────────────┴────────────────────────────────────────────────────┘")
	return err
}

// truncate quotes s the way %q does, without the surrounding quotes, and
// shortens it to maxLen runes.
func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// padRight pads by rune count; %-50s pads by bytes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + fmt.Sprintf("%*s", width-n, "")
}
