package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czz/discolor/core/composer"
	"github.com/czz/discolor/core/palette"
)

func TestPack_RespectsEffects(t *testing.T) {
	on := NewTui(true)
	off := NewTui(false)

	require.Equal(t, RED+"x"+RESET, on.Red("x"))
	require.Equal(t, "x", off.Red("x"))
	require.Equal(t, BOLD+GREEN+"x"+RESET, on.Style("x", BOLD, GREEN))
	require.Equal(t, "x", off.Style("x", BOLD, GREEN))
}

func TestNewTui_NoColor(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "1")
	require.False(t, NewTui().HasEffectsEnable())
}

func TestNewTui_DumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	require.False(t, NewTui().HasEffectsEnable())
}

func TestTable_Aligned(t *testing.T) {
	tu := NewTui(false)
	out := tu.Table(&Table{Padding: 1}, [][]string{
		{"Name", "Code"},
		{"red", "31"},
		{"lightgray", "46"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, len(lines[0]), len(l), "row %q", l)
	}
}

func TestTable_StyledCellsKeepAlignment(t *testing.T) {
	tu := NewTui(true)
	out := tu.Table(&Table{Padding: 1, LineSeparator: true}, [][]string{
		{"a", tu.Red("red")},
		{"bb", "plain"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, l := range lines {
		assert.Equal(t, ansi.StringWidth(lines[0]), ansi.StringWidth(l), "row %q", l)
	}
}

func TestTable_NonUniform(t *testing.T) {
	out := NewTui(false).Table(&Table{}, [][]string{{"a", "b"}, {"c"}})
	require.Contains(t, out, "has not uniform columns")
}

func TestTable_WrapsToMaxWidth(t *testing.T) {
	out := NewTui(false).Table(&Table{Padding: 1, MaxWidth: 6}, [][]string{{"abcdefghij"}})
	require.Equal(t, " abcd \n efgh \n ij   \n", out)
}

func TestVisible(t *testing.T) {
	require.Equal(t, `\e[31mA\nB`, Visible("\x1b[31mA\nB"))
}

func TestPreview_PlainWithoutEffects(t *testing.T) {
	red, _ := palette.Foreground.Lookup("red")
	navy, _ := palette.Background.Lookup("navy")
	segs := []composer.Segment{
		{Text: "Hello ", FG: composer.Present(red)},
		{Text: "World", BG: composer.Present(navy)},
	}

	require.Equal(t, "Hello World", NewTui(false).Preview(segs))
}

func TestPreview_ColoredWithEffects(t *testing.T) {
	red, _ := palette.Foreground.Lookup("red")
	segs := []composer.Segment{{Text: "a\nb", FG: composer.Present(red)}}

	out := NewTui(true).Preview(segs)
	require.Contains(t, out, "\x1b[")
	require.Equal(t, "a\nb", ansi.Strip(out))
}

func TestSwatch(t *testing.T) {
	beige, _ := palette.Background.Lookup("beige")
	require.Equal(t, " beige ", NewTui(false).Swatch(beige))
}
