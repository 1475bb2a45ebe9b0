package exporter

import (
	"fmt"
	"io"

	"github.com/badele/mdlex/internal/types"
)

// ExportTokensToText writes one "Token: <name>  Value: <text>" line per token.
func ExportTokensToText(tokens []types.Token, writer io.Writer, colored bool) error {
	palette := NewPalette(colored)

	for _, token := range tokens {
		if _, err := fmt.Fprintf(writer, "Token: %s  Value: %s\n",
			palette.Type(token.Type), palette.Value(token.Text)); err != nil {
			return fmt.Errorf("error writing token: %w", err)
		}
	}

	return nil
}
