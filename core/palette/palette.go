package palette

import "strings"

// Axis tells which side of a colour pair an entry belongs to.
type Axis int

const (
	AxisForeground Axis = iota
	AxisBackground
)

func (a Axis) String() string {
	if a == AxisBackground {
		return "background"
	}
	return "foreground"
}

// Entry is one selectable colour.
type Entry struct {
	Name string // Identifier shown to the user
	Code string // ANSI SGR parameter understood by Discord's ansi blocks
	Hex  string // CSS colour used for the terminal preview
	Axis Axis
}

// Palette is an ordered, immutable set of entries for one axis.
type Palette struct {
	axis    Axis
	entries []Entry
	byName  map[string]int
}

func newPalette(axis Axis, entries ...Entry) *Palette {
	p := &Palette{
		axis:    axis,
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.Axis = axis
		p.byName[strings.ToLower(e.Name)] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p
}

// Foreground holds the text colours, in display order.
var Foreground = newPalette(AxisForeground,
	Entry{Name: "red", Code: "31", Hex: "#ff0000"},
	Entry{Name: "lime", Code: "1;32", Hex: "#00ff00"},
	Entry{Name: "yellow", Code: "33", Hex: "#ffff00"},
	Entry{Name: "cyan", Code: "36", Hex: "#00ffff"},
	Entry{Name: "magenta", Code: "35", Hex: "#ff00ff"},
	Entry{Name: "green", Code: "32", Hex: "#008000"},
	Entry{Name: "white", Code: "37", Hex: "#ffffff"},
)

// Background holds the highlight colours, in display order.
var Background = newPalette(AxisBackground,
	Entry{Name: "navy", Code: "40", Hex: "#000080"},
	Entry{Name: "orange", Code: "41", Hex: "#ffa500"},
	Entry{Name: "gray", Code: "44", Hex: "#808080"},
	Entry{Name: "darkgray", Code: "43", Hex: "#a9a9a9"},
	Entry{Name: "lightgray", Code: "46", Hex: "#d3d3d3"},
	Entry{Name: "purple", Code: "45", Hex: "#800080"},
	Entry{Name: "silver", Code: "42", Hex: "#c0c0c0"},
	Entry{Name: "beige", Code: "47", Hex: "#f5f5dc"},
)

// For returns the palette of the given axis.
func For(axis Axis) *Palette {
	if axis == AxisBackground {
		return Background
	}
	return Foreground
}

// Axis returns the axis every entry of p belongs to.
func (p *Palette) Axis() Axis {
	return p.axis
}

// Lookup finds an entry by name, ignoring case.
func (p *Palette) Lookup(name string) (Entry, bool) {
	i, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Entries returns a copy of the entries in declaration order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Names returns the entry names in declaration order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}
