package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/mdlex/internal/types"
)

type TokenizerJSONOutput struct {
	Tokens []types.Token    `json:"tokens"`
	Stats  types.TokenStats `json:"stats"`
}

func ExportTokensJSON(tokens []types.Token, stats types.TokenStats, writer io.Writer) error {
	if tokens == nil {
		tokens = []types.Token{}
	}

	output := TokenizerJSONOutput{
		Tokens: tokens,
		Stats:  stats,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(data))
	return err
}
