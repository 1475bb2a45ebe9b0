package exporter

import (
	"github.com/fatih/color"

	"github.com/badele/mdlex/internal/types"
)

// Palette maps token types to ANSI colours for console presenters.
type Palette struct {
	enabled bool
	byType  map[types.TokenType]*color.Color
	value   *color.Color
}

func NewPalette(enabled bool) *Palette {
	p := &Palette{
		enabled: enabled,
		byType: map[types.TokenType]*color.Color{
			types.TokenHeaderH1:       color.New(color.FgHiMagenta, color.Bold),
			types.TokenHeaderH2:       color.New(color.FgMagenta, color.Bold),
			types.TokenParagraph:      color.New(color.FgGreen),
			types.TokenNewLine:        color.New(color.FgHiBlack),
			types.TokenCodeBlockOpen:  color.New(color.FgCyan),
			types.TokenCodeBlockClose: color.New(color.FgCyan),
			types.TokenUnknown:        color.New(color.FgRed),
		},
		value: color.New(color.FgWhite),
	}

	// Override fatih/color's global stdout detection.
	for _, c := range p.byType {
		p.toggle(c)
	}
	p.toggle(p.value)

	return p
}

func (p *Palette) toggle(c *color.Color) {
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Type renders the display name of a token type.
func (p *Palette) Type(t types.TokenType) string {
	c, ok := p.byType[t]
	if !ok {
		return t.String()
	}
	return c.Sprint(t.String())
}

func (p *Palette) Value(s string) string {
	return p.value.Sprint(s)
}
