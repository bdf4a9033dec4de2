package composer

import "github.com/czz/discolor/core/palette"

// Color is an optional palette entry: either Present(entry) or Absent.
type Color struct {
	entry   palette.Entry
	present bool
}

// Absent is the unset colour.
var Absent = Color{}

// Present wraps e as a set colour.
func Present(e palette.Entry) Color {
	return Color{entry: e, present: true}
}

// Entry returns the wrapped entry and whether it is set.
func (c Color) Entry() (palette.Entry, bool) {
	return c.entry, c.present
}

// IsPresent reports whether the colour is set.
func (c Color) IsPresent() bool {
	return c.present
}

// Name returns the entry name, or "none" when absent.
func (c Color) Name() string {
	if !c.present {
		return "none"
	}
	return c.entry.Name
}

// Code returns the ANSI parameter, or "" when absent.
func (c Color) Code() string {
	if !c.present {
		return ""
	}
	return c.entry.Code
}

func (c Color) toggle(e palette.Entry) Color {
	if c.present && c.entry == e {
		return Absent
	}
	return Present(e)
}
