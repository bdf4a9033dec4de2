package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tui renders console messages, tables and segment previews.
type Tui struct {
	effects  bool               // Whether colors are emitted at all
	prompt   string             // Prompt string displayed before user input
	renderer *lipgloss.Renderer // Renderer for CSS-coloured previews
}

// NewTui creates a new Tui instance.
// Passing a value forces effects on or off; otherwise they are enabled unless
// TERM is unset or dumb, or NO_COLOR is set.
func NewTui(effects ...bool) *Tui {
	enabled := true
	if len(effects) == 1 {
		enabled = effects[0]
	} else {
		if term := os.Getenv("TERM"); term == "" || term == "dumb" {
			enabled = false
		}
		if termenv.EnvNoColor() {
			enabled = false
		}
	}

	return &Tui{
		effects:  enabled,
		prompt:   "dc>",
		renderer: newRenderer(os.Stdout, enabled),
	}
}

func newRenderer(w io.Writer, effects bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if effects {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// HasEffectsEnable returns whether terminal effects are enabled.
func (t *Tui) HasEffectsEnable() bool {
	return t.effects
}

// SetEffects switches colors on or off.
func (t *Tui) SetEffects(enabled bool) {
	t.effects = enabled
	t.renderer = newRenderer(os.Stdout, enabled)
}

// SetPrompt sets the terminal prompt to the given string.
func (t *Tui) SetPrompt(s string) {
	t.prompt = s
}

// GetPrompt returns the current terminal prompt string.
func (t *Tui) GetPrompt() string {
	return t.prompt
}
