package clipboard

// Manager keeps the available backends, in registration order.
type Manager struct {
	backends map[string]Clipboard
	order    []string
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{backends: make(map[string]Clipboard)}
}

// Register adds a backend under its name, replacing one with the same name.
func (m *Manager) Register(c Clipboard) {
	if _, exists := m.backends[c.Name()]; !exists {
		m.order = append(m.order, c.Name())
	}
	m.backends[c.Name()] = c
}

// Get retrieves a backend by name.
func (m *Manager) Get(name string) (Clipboard, bool) {
	c, ok := m.backends[name]
	return c, ok
}

// List returns backend names in registration order.
func (m *Manager) List() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
