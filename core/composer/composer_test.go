package composer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/czz/discolor/core/palette"
)

func fg(t require.TestingT, name string) palette.Entry {
	e, ok := palette.Foreground.Lookup(name)
	require.True(t, ok, "foreground %q", name)
	return e
}

func bg(t require.TestingT, name string) palette.Entry {
	e, ok := palette.Background.Lookup(name)
	require.True(t, ok, "background %q", name)
	return e
}

func TestNew_IsEmpty(t *testing.T) {
	c := New()
	require.Empty(t, c.Text())
	require.Empty(t, c.Segments())
	f, b := c.Pending()
	require.False(t, f.IsPresent())
	require.False(t, b.IsPresent())
}

func TestCommit_WithoutSelectionIsNoop(t *testing.T) {
	c := New()
	c.SetText("hello")

	_, ok := c.Commit()
	require.False(t, ok)
	require.Empty(t, c.Segments())
	require.Equal(t, "hello", c.Text())
}

func TestCommit_SingleForeground(t *testing.T) {
	c := New()
	c.SetText("Hello World")
	c.ToggleForeground(fg(t, "red"))

	seg, ok := c.Commit()
	require.True(t, ok)
	require.Equal(t, "Hello World", seg.Text)
	require.Equal(t, "red", seg.FG.Name())
	require.False(t, seg.BG.IsPresent())
	require.Equal(t, []Segment{seg}, c.Segments())

	f, b := c.Pending()
	require.False(t, f.IsPresent(), "commit clears pending foreground")
	require.False(t, b.IsPresent())
}

func TestCommit_OverConsumptionAppendsEmptySegment(t *testing.T) {
	c := New()
	c.SetText("AB")
	c.ToggleForeground(fg(t, "red"))
	_, ok := c.Commit()
	require.True(t, ok)

	c.ToggleBackground(bg(t, "navy"))
	seg, ok := c.Commit()
	require.True(t, ok)
	require.Equal(t, "", seg.Text)
	require.Equal(t, "navy", seg.BG.Name())
	require.Len(t, c.Segments(), 2)
	require.Equal(t, 2, c.Consumed())
}

func TestCommit_SlicesFromConsumedOffset(t *testing.T) {
	c := New()
	c.SetText("Hello")
	c.ToggleForeground(fg(t, "red"))
	c.Commit()

	c.SetText("Hello World")
	c.ToggleForeground(fg(t, "cyan"))
	seg, _ := c.Commit()

	require.Equal(t, " World", seg.Text)
	require.Equal(t, "Hello", c.Segments()[0].Text, "earlier segments are not rewritten")
}

func TestCommit_EditShorterThanConsumed(t *testing.T) {
	c := New()
	c.SetText("Hello World")
	c.ToggleForeground(fg(t, "red"))
	c.Commit()

	c.SetText("Hi")
	c.ToggleForeground(fg(t, "red"))
	seg, ok := c.Commit()
	require.True(t, ok)
	require.Empty(t, seg.Text)
	require.Equal(t, "Hello World", c.Segments()[0].Text)
}

func TestCommit_CountsRunes(t *testing.T) {
	c := New()
	c.SetText("héllo")
	c.ToggleForeground(fg(t, "red"))
	c.Commit()
	require.Equal(t, 5, c.Consumed())

	c.SetText("héllo wörld")
	require.Equal(t, " wörld", c.Remaining())
}

func TestSetText_KeepsSelectionAndSegments(t *testing.T) {
	c := New()
	c.SetText("a")
	c.ToggleForeground(fg(t, "red"))
	c.Commit()
	c.ToggleBackground(bg(t, "beige"))

	c.SetText("")

	require.Len(t, c.Segments(), 1)
	_, b := c.Pending()
	require.Equal(t, "beige", b.Name())
}

func TestToggle_SameEntryClears(t *testing.T) {
	c := New()
	c.ToggleForeground(fg(t, "lime"))
	c.ToggleForeground(fg(t, "lime"))

	f, _ := c.Pending()
	require.False(t, f.IsPresent())

	c.SetText("text")
	_, ok := c.Commit()
	require.False(t, ok)
	require.Empty(t, c.Segments())
}

func TestToggle_OtherEntryReplaces(t *testing.T) {
	c := New()
	c.ToggleForeground(fg(t, "lime"))
	c.ToggleForeground(fg(t, "red"))

	f, _ := c.Pending()
	require.Equal(t, "red", f.Name())
}

func TestToggle_AxesAreIndependent(t *testing.T) {
	c := New()
	c.ToggleForeground(fg(t, "red"))
	c.ToggleBackground(bg(t, "navy"))
	c.ToggleBackground(bg(t, "navy"))

	f, b := c.Pending()
	require.Equal(t, "red", f.Name())
	require.False(t, b.IsPresent())
}

func TestReset(t *testing.T) {
	c := New()
	c.SetText("AB")
	c.ToggleForeground(fg(t, "red"))
	c.Commit()
	c.ToggleBackground(bg(t, "navy"))
	c.Commit()
	c.ToggleForeground(fg(t, "white"))

	c.Reset()

	require.Equal(t, "", c.Text())
	require.Empty(t, c.Segments())
	f, b := c.Pending()
	require.False(t, f.IsPresent())
	require.False(t, b.IsPresent())
}

func TestSegments_ReturnsCopy(t *testing.T) {
	c := New()
	c.SetText("abc")
	c.ToggleForeground(fg(t, "red"))
	c.Commit()

	segs := c.Segments()
	segs[0].Text = "zzz"
	require.Equal(t, "abc", c.Segments()[0].Text)
}

func TestColor_Absent(t *testing.T) {
	require.Equal(t, "none", Absent.Name())
	require.Equal(t, "", Absent.Code())
	_, ok := Absent.Entry()
	require.False(t, ok)
}

func TestProperty_CommitGuard(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New()
		c.SetText(rapid.String().Draw(t, "text"))
		n := rapid.IntRange(0, 5).Draw(t, "commits")
		for i := 0; i < n; i++ {
			c.ToggleForeground(fg(t, "red"))
			c.Commit()
		}
		before := len(c.Segments())

		_, ok := c.Commit()
		require.False(t, ok)
		require.Len(t, c.Segments(), before)
	})
}

func TestProperty_ToggleSymmetry(t *testing.T) {
	names := palette.Foreground.Names()
	rapid.Check(t, func(t *rapid.T) {
		c := New()
		picks := rapid.SliceOf(rapid.SampledFrom(names)).Draw(t, "picks")

		var want Color
		for _, name := range picks {
			e := fg(t, name)
			c.ToggleForeground(e)
			if want.IsPresent() && want.Name() == name {
				want = Absent
			} else {
				want = Present(e)
			}
			got, _ := c.Pending()
			require.Equal(t, want, got)
		}
	})
}

func TestProperty_SliceContinuity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New()
		chunks := rapid.SliceOfN(rapid.String(), 1, 6).Draw(t, "chunks")

		var text strings.Builder
		for i, chunk := range chunks {
			text.WriteString(chunk)
			c.SetText(text.String())
			if i%2 == 0 {
				c.ToggleForeground(fg(t, "yellow"))
			} else {
				c.ToggleBackground(bg(t, "purple"))
			}
			c.Commit()
		}

		var joined strings.Builder
		for _, seg := range c.Segments() {
			joined.WriteString(seg.Text)
		}
		require.Equal(t, text.String(), joined.String())
		require.Len(t, c.Segments(), len(chunks))
	})
}
