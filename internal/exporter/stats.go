package exporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/badele/mdlex/internal/types"
)

func ExportStats(stats types.TokenStats, writer io.Writer) error {
	type typeCount struct {
		Type  types.TokenType
		Count int
	}

	var b strings.Builder

	fmt.Fprintf(&b, "=== Token Statistics ===\n\n")
	fmt.Fprintf(&b, "  Input size: %d bytes\n", stats.InputSize)
	fmt.Fprintf(&b, "  Total lines: %d\n", stats.TotalLines)
	fmt.Fprintf(&b, "  Total tokens: %d\n", stats.TotalTokens)
	fmt.Fprintf(&b, "  Parsed: %.1f%%\n", stats.ParsedPercent)
	if stats.FirstUnmatchedLine > 0 {
		fmt.Fprintf(&b, "  First unmatched line: %d\n", stats.FirstUnmatchedLine)
	}

	fmt.Fprintf(&b, "\n--- Tokens by Type\n")

	var typeCounts []typeCount
	for t, count := range stats.TokensByType {
		if count > 0 {
			typeCounts = append(typeCounts, typeCount{t, count})
		}
	}
	sort.Slice(typeCounts, func(i, j int) bool {
		if typeCounts[i].Count != typeCounts[j].Count {
			return typeCounts[i].Count > typeCounts[j].Count
		}
		return typeCounts[i].Type < typeCounts[j].Type
	})

	for _, tc := range typeCounts {
		percentage := float64(tc.Count) / float64(stats.TotalTokens) * 100
		fmt.Fprintf(&b, "  %-16s:  %5d (%.1f%%)\n", tc.Type.String(), tc.Count, percentage)
	}

	// Writes to b cannot fail.
	_, err := io.WriteString(writer, b.String())
	return err
}
