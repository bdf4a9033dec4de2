package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/czz/discolor/core/composer"
	"github.com/czz/discolor/core/palette"
)

// Preview renders committed segments the way they are meant to look, using
// each entry's CSS colour. Unlike the exported markdown it shows backgrounds.
func (t *Tui) Preview(segs []composer.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		style := t.renderer.NewStyle()
		if e, ok := seg.FG.Entry(); ok {
			style = style.Foreground(lipgloss.Color(e.Hex))
		}
		if e, ok := seg.BG.Entry(); ok {
			style = style.Background(lipgloss.Color(e.Hex))
		}
		// Style lines separately so lipgloss does not pad them to one width.
		lines := strings.Split(seg.Text, "\n")
		for i, line := range lines {
			if line != "" {
				lines[i] = style.Render(line)
			}
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	return b.String()
}

// Swatch renders the entry name in its own colour.
func (t *Tui) Swatch(e palette.Entry) string {
	style := t.renderer.NewStyle().Padding(0, 1)
	if e.Axis == palette.AxisBackground {
		style = style.Background(lipgloss.Color(e.Hex))
	} else {
		style = style.Foreground(lipgloss.Color(e.Hex))
	}
	return style.Render(e.Name)
}
