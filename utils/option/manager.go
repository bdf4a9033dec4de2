package option

import "strings"

// OptionManager manages a collection of options in registration order.
type OptionManager struct {
	options map[string]*Option
	order   []string
}

// NewOptionManager creates a new OptionManager instance.
func NewOptionManager() *OptionManager {
	return &OptionManager{options: make(map[string]*Option)}
}

// Register adds an option. Names are stored upper-case.
func (m *OptionManager) Register(opt *Option) {
	opt.Name = strings.ToUpper(opt.Name)
	if _, exists := m.options[opt.Name]; !exists {
		m.order = append(m.order, opt.Name)
	}
	m.options[opt.Name] = opt
}

// Get retrieves an option by name, ignoring case.
func (m *OptionManager) Get(name string) (*Option, bool) {
	opt, ok := m.options[strings.ToUpper(name)]
	return opt, ok
}

// List returns all options in registration order.
func (m *OptionManager) List() []*Option {
	opts := make([]*Option, 0, len(m.order))
	for _, name := range m.order {
		opts = append(opts, m.options[name])
	}
	return opts
}

// Names returns option names in registration order.
func (m *OptionManager) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
