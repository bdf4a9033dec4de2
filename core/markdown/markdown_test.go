package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/czz/discolor/core/composer"
	"github.com/czz/discolor/core/palette"
)

func present(p *palette.Palette, name string) composer.Color {
	e, ok := p.Lookup(name)
	if !ok {
		panic("unknown colour " + name)
	}
	return composer.Present(e)
}

func TestRender_Empty(t *testing.T) {
	require.Equal(t, "", Render(nil, Options{}))
	require.Equal(t, "", Render([]composer.Segment{}, Options{}))
}

func TestRender_ForegroundSegment(t *testing.T) {
	segs := []composer.Segment{{
		Text: "Hello World",
		FG:   present(palette.Foreground, "red"),
	}}

	got := Render(segs, Options{})
	require.Equal(t, "```ansi\n\x1b[31mHello World\x1b[0m```", got)
}

func TestRender_BackgroundOnlyIsRawText(t *testing.T) {
	segs := []composer.Segment{{
		Text: "plain",
		BG:   present(palette.Background, "navy"),
	}}

	require.Equal(t, "plain", Render(segs, Options{}))
}

func TestRender_ForegroundIgnoresBackgroundByDefault(t *testing.T) {
	segs := []composer.Segment{{
		Text: "x",
		FG:   present(palette.Foreground, "cyan"),
		BG:   present(palette.Background, "orange"),
	}}

	require.Equal(t, "```ansi\n\x1b[36mx\x1b[0m```", Render(segs, Options{}))
}

func TestRender_EmptySegmentStillFenced(t *testing.T) {
	segs := []composer.Segment{{FG: present(palette.Foreground, "white")}}
	require.Equal(t, "```ansi\n\x1b[37m\x1b[0m```", Render(segs, Options{}))
}

func TestRender_JoinsWithSpace(t *testing.T) {
	// "AB" committed red, then a background-only commit over nothing.
	segs := []composer.Segment{
		{Text: "AB", FG: present(palette.Foreground, "red")},
		{Text: "", BG: present(palette.Background, "navy")},
	}

	require.Equal(t, "```ansi\n\x1b[31mAB\x1b[0m``` ", Render(segs, Options{}))
}

func TestRender_EmitBackground(t *testing.T) {
	segs := []composer.Segment{
		{Text: "both", FG: present(palette.Foreground, "yellow"), BG: present(palette.Background, "purple")},
		{Text: "bg", BG: present(palette.Background, "beige")},
		{Text: "fg", FG: present(palette.Foreground, "lime")},
	}

	got := Render(segs, Options{EmitBackground: true})
	want := strings.Join([]string{
		"```ansi\n\x1b[45;33mboth\x1b[0m```",
		"```ansi\n\x1b[47mbg\x1b[0m```",
		"```ansi\n\x1b[1;32mfg\x1b[0m```",
	}, " ")
	require.Equal(t, want, got)
}

func TestEscapeAndFence(t *testing.T) {
	require.Equal(t, "\x1b[40;31m", Escape("40", "31"))
	require.Equal(t, "```ansi\nx```", Fence("x"))
}

func segmentGen() *rapid.Generator[composer.Segment] {
	fgNames := append([]string{""}, palette.Foreground.Names()...)
	bgNames := append([]string{""}, palette.Background.Names()...)
	return rapid.Custom(func(t *rapid.T) composer.Segment {
		seg := composer.Segment{Text: rapid.String().Draw(t, "text")}
		if name := rapid.SampledFrom(fgNames).Draw(t, "fg"); name != "" {
			seg.FG = present(palette.Foreground, name)
		}
		if name := rapid.SampledFrom(bgNames).Draw(t, "bg"); name != "" {
			seg.BG = present(palette.Background, name)
		}
		return seg
	})
}

func TestProperty_RenderIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segs := rapid.SliceOf(segmentGen()).Draw(t, "segments")
		opts := Options{EmitBackground: rapid.Bool().Draw(t, "emitBackground")}

		snapshot := make([]composer.Segment, len(segs))
		copy(snapshot, segs)

		first := Render(segs, opts)
		second := Render(segs, opts)
		require.Equal(t, first, second)
		require.Equal(t, snapshot, segs)
	})
}

func TestProperty_BackgroundOnlyRendersRaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		name := rapid.SampledFrom(palette.Background.Names()).Draw(t, "bg")
		seg := composer.Segment{Text: text, BG: present(palette.Background, name)}

		require.Equal(t, text, Render([]composer.Segment{seg}, Options{}))
	})
}
