package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/badele/mdlex/internal/types"
)

const DefaultPreviewWidth = 80

var (
	styleH1     = tcell.StyleDefault.Bold(true).Underline(true)
	styleH2     = tcell.StyleDefault.Bold(true)
	styleFenced = tcell.StyleDefault.Reverse(true)
)

// ScreenBuffer lays tokens out on an off-screen terminal, one row per
// heading, paragraph or blank line, wrapping at the screen width.
type ScreenBuffer struct {
	screen  tcell.SimulationScreen
	width   int
	height  int
	cursorY int
	fenced  bool
}

func NewScreenBuffer(width, height int) (*ScreenBuffer, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}

	screen.SetSize(width, height)

	return &ScreenBuffer{
		screen: screen,
		width:  width,
		height: height,
	}, nil
}

func (sb *ScreenBuffer) ApplyTokens(tokens []types.Token) error {
	for _, token := range tokens {
		sb.applyToken(token)
	}
	sb.screen.Show()
	return nil
}

func (sb *ScreenBuffer) applyToken(token types.Token) {
	switch token.Type {
	case types.TokenHeaderH1:
		sb.writeLine(token.Text, styleH1)
	case types.TokenHeaderH2:
		sb.writeLine(token.Text, styleH2)
	case types.TokenNewLine:
		sb.writeLine("", tcell.StyleDefault)
	case types.TokenCodeBlockOpen, types.TokenCodeBlockClose:
		// Fence tokens precede the paragraph of their own line.
		sb.fenced = true
	case types.TokenParagraph:
		style := tcell.StyleDefault
		if sb.fenced {
			style = styleFenced
		}
		sb.writeLine(token.Text, style)
		sb.fenced = false
	}
}

func (sb *ScreenBuffer) writeLine(text string, style tcell.Style) {
	rows := layoutLine(text, sb.width, func(x, row int, cluster []rune) {
		if y := sb.cursorY + row; y < sb.height {
			sb.screen.SetContent(x, y, cluster[0], cluster[1:], style)
		}
	})
	sb.cursorY += rows
}

// layoutLine places the grapheme clusters of text on rows of the given
// width, calling place for each one, and returns the number of rows used.
// A cluster never straddles two rows; empty text still uses one row.
func layoutLine(text string, width int, place func(x, row int, cluster []rune)) int {
	x, row := 0, 0

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := max(1, gr.Width())
		if x > 0 && x+w > width {
			x = 0
			row++
		}
		if place != nil {
			place(x, row, gr.Runes())
		}
		x += w
	}

	return row + 1
}

// StyleAt returns the style of the cell at (x, y).
func (sb *ScreenBuffer) StyleAt(x, y int) tcell.Style {
	_, _, style, _ := sb.screen.GetContent(x, y)
	return style
}

func (sb *ScreenBuffer) GetPlainText() string {
	var builder strings.Builder

	rows := min(sb.cursorY, sb.height)
	for y := 0; y < rows; y++ {
		var line strings.Builder
		for x := 0; x < sb.width; {
			mainc, combc, _, w := sb.screen.GetContent(x, y)
			// Convert 0 (empty cell) to space to avoid null bytes in output
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, r := range combc {
				line.WriteRune(r)
			}
			x += max(1, w)
		}

		builder.WriteString(strings.TrimRight(line.String(), " "))
		if y < rows-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

func (sb *ScreenBuffer) GetActualWidth() int {
	maxWidth := 0

	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; {
			mainc, _, _, w := sb.screen.GetContent(x, y)
			w = max(1, w)
			if mainc != 0 && mainc != ' ' && x+w > maxWidth {
				maxWidth = x + w
			}
			x += w
		}
	}

	return maxWidth
}

func (sb *ScreenBuffer) GetActualHeight() int {
	return min(sb.cursorY, sb.height)
}

func (sb *ScreenBuffer) Close() {
	sb.screen.Fini()
}

// previewRows counts the rows ApplyTokens will use at the given width.
func previewRows(tokens []types.Token, width int) int {
	rows := 0
	for _, token := range tokens {
		switch token.Type {
		case types.TokenHeaderH1, types.TokenHeaderH2, types.TokenParagraph:
			rows += layoutLine(token.Text, width, nil)
		case types.TokenNewLine:
			rows++
		}
	}
	return rows
}

// ScreenPreview renders tokens as wrapped plain text.
func ScreenPreview(tokens []types.Token, width int) (string, error) {
	if width <= 0 {
		width = DefaultPreviewWidth
	}

	buffer, err := NewScreenBuffer(width, max(1, previewRows(tokens, width)))
	if err != nil {
		return "", err
	}
	defer buffer.Close()

	if err := buffer.ApplyTokens(tokens); err != nil {
		return "", fmt.Errorf("error applying tokens: %w", err)
	}

	return buffer.GetPlainText(), nil
}

func ExportPreview(tokens []types.Token, writer io.Writer, width int) error {
	text, err := ScreenPreview(tokens, width)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writer, text)
	return err
}
