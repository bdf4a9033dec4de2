package tui

import "strings"

// Pack wraps text in a single style when effects are on.
func (t *Tui) Pack(style, text string) string {
	if t.effects {
		return style + text + RESET
	}
	return text
}

// Style wraps text in every given style when effects are on.
func (t *Tui) Style(text string, styles ...string) string {
	if !t.effects {
		return text
	}
	return strings.Join(styles, "") + text + RESET
}

func (t *Tui) Bold(text string) string    { return t.Pack(BOLD, text) }
func (t *Tui) Dim(text string) string     { return t.Pack(DIM, text) }
func (t *Tui) Red(text string) string     { return t.Pack(RED, text) }
func (t *Tui) Green(text string) string   { return t.Pack(GREEN, text) }
func (t *Tui) Blue(text string) string    { return t.Pack(BLUE, text) }
func (t *Tui) Yellow(text string) string  { return t.Pack(YELLOW, text) }
func (t *Tui) Cyan(text string) string    { return t.Pack(CYAN, text) }
func (t *Tui) Magenta(text string) string { return t.Pack(MAGENTA, text) }

// Visible makes control characters and line breaks readable in one table cell.
func Visible(s string) string {
	r := strings.NewReplacer("\x1b", `\e`, "\n", `\n`, "\t", `\t`, "\r", `\r`)
	return r.Replace(s)
}
