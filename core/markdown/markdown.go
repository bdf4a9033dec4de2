// Package markdown turns committed segments into a Discord message.
package markdown

import (
	"strings"

	"github.com/czz/discolor/core/composer"
)

const (
	esc       = "\x1b"
	fenceOpen = "```ansi\n"
	fenceEnd  = "```"
	reset     = esc + "[0m"
)

// Options controls rendering.
type Options struct {
	// EmitBackground adds the background code to the escape sequence.
	// Off by default: background picks then have no visible effect.
	EmitBackground bool
}

// Render returns the exportable markdown for segs, joined by single spaces.
// It does not modify segs.
func Render(segs []composer.Segment, opts Options) string {
	parts := make([]string, len(segs))
	for i, seg := range segs {
		parts[i] = renderSegment(seg, opts)
	}
	return strings.Join(parts, " ")
}

func renderSegment(seg composer.Segment, opts Options) string {
	params := make([]string, 0, 2)
	if opts.EmitBackground && seg.BG.IsPresent() {
		params = append(params, seg.BG.Code())
	}
	if seg.FG.IsPresent() {
		params = append(params, seg.FG.Code())
	}
	if len(params) == 0 {
		return seg.Text
	}
	return Fence(Escape(params...) + seg.Text + reset)
}

// Escape builds an SGR escape sequence from the given parameters.
func Escape(params ...string) string {
	return esc + "[" + strings.Join(params, ";") + "m"
}

// Fence wraps s in a Discord ansi code block.
func Fence(s string) string {
	return fenceOpen + s + fenceEnd
}
