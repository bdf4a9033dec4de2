package help

import "strings"

// HelpEntry documents one console command.
type HelpEntry struct {
	Name        string     // Command name
	Syntax      string     // Usage line, e.g. "fg <color>"
	Description string     // One-line summary
	Examples    [][]string // Optional rows: example, what it does
}

// HelpManager keeps command help in registration order.
type HelpManager struct {
	entries map[string]*HelpEntry
	order   []string
}

// NewHelpManager initializes and returns a new HelpManager instance.
func NewHelpManager() *HelpManager {
	return &HelpManager{entries: make(map[string]*HelpEntry)}
}

// Register adds or replaces the help for a command.
func (h *HelpManager) Register(name, syntax, description string, examples ...[]string) {
	if _, exists := h.entries[name]; !exists {
		h.order = append(h.order, name)
	}
	h.entries[name] = &HelpEntry{
		Name:        name,
		Syntax:      syntax,
		Description: description,
		Examples:    examples,
	}
}

// Summary returns a two-column table of every command.
func (h *HelpManager) Summary(title string) [][]string {
	res := [][]string{
		{title, ""},
		{strings.Repeat("=", len(title)), ""},
		{"  Command", "Description"},
		{"  -------", "-----------"},
	}
	for _, name := range h.order {
		e := h.entries[name]
		res = append(res, []string{"  " + e.Syntax, e.Description})
	}
	return res
}

// Get returns the detailed help table for one command.
// The first column of each row is always prefixed with exactly two spaces.
func (h *HelpManager) Get(name string) ([][]string, bool) {
	entry, ok := h.entries[strings.ToLower(name)]
	if !ok {
		return nil, false
	}

	res := [][]string{
		{"Command " + entry.Name, ""},
		{"========" + strings.Repeat("=", len(entry.Name)), ""},
		{"  " + entry.Syntax, entry.Description},
	}
	if len(entry.Examples) > 0 {
		res = append(res, []string{"", ""}, []string{"  Example", "Effect"}, []string{"  -------", "------"})
	}
	for _, row := range entry.Examples {
		newRow := []string{"", ""}
		copy(newRow, row)
		newRow[0] = "  " + strings.TrimLeft(newRow[0], " ")
		res = append(res, newRow)
	}
	return res, true
}

// List returns all entries in registration order.
func (h *HelpManager) List() []*HelpEntry {
	list := make([]*HelpEntry, 0, len(h.order))
	for _, name := range h.order {
		list = append(list, h.entries[name])
	}
	return list
}
