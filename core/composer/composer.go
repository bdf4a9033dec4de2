// Package composer holds the state of one composition: the source text,
// the committed coloured segments and the pending colour selection.
package composer

import (
	"unicode/utf8"

	"github.com/czz/discolor/core/palette"
)

// Segment is a committed slice of source text with its colour pair.
type Segment struct {
	Text string
	FG   Color
	BG   Color
}

// Len returns the segment length in runes.
func (s Segment) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Composer is not safe for concurrent use; one instance belongs to one session.
type Composer struct {
	text     string
	segments []Segment
	fg       Color
	bg       Color
}

// New returns an empty composer.
func New() *Composer {
	return &Composer{}
}

// SetText replaces the source text. Segments and the pending selection are kept.
func (c *Composer) SetText(text string) {
	c.text = text
}

// Text returns the current source text.
func (c *Composer) Text() string {
	return c.text
}

// ToggleForeground sets the pending foreground to e, or clears it if e is
// already selected.
func (c *Composer) ToggleForeground(e palette.Entry) {
	c.fg = c.fg.toggle(e)
}

// ToggleBackground is the background counterpart of ToggleForeground.
func (c *Composer) ToggleBackground(e palette.Entry) {
	c.bg = c.bg.toggle(e)
}

// Pending returns the not yet committed selection.
func (c *Composer) Pending() (fg, bg Color) {
	return c.fg, c.bg
}

// Consumed returns how many runes of source text the segments cover.
func (c *Composer) Consumed() int {
	n := 0
	for _, s := range c.segments {
		n += s.Len()
	}
	return n
}

// Remaining returns the source text not yet covered by a segment.
func (c *Composer) Remaining() string {
	return suffixFrom(c.text, c.Consumed())
}

// Commit appends a segment holding the remaining source text and the pending
// colours, then clears the selection. With no colour selected it does nothing
// and returns false. When the text is fully consumed the segment is empty but
// still appended.
func (c *Composer) Commit() (Segment, bool) {
	if !c.fg.IsPresent() && !c.bg.IsPresent() {
		return Segment{}, false
	}

	seg := Segment{
		Text: c.Remaining(),
		FG:   c.fg,
		BG:   c.bg,
	}
	c.segments = append(c.segments, seg)
	c.fg, c.bg = Absent, Absent
	return seg, true
}

// Reset returns the composer to its initial state.
func (c *Composer) Reset() {
	c.text = ""
	c.segments = nil
	c.fg, c.bg = Absent, Absent
}

// Segments returns a copy of the committed segments in commit order.
func (c *Composer) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// suffixFrom returns s starting at rune offset n, or "" past the end.
func suffixFrom(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
