package config

import (
	"fmt"
	"sync"
)

// Section is one independently validated group of settings.
type Section interface {
	ID() string
	Title() string
	Description() string
	Data() map[string]interface{}
	SetData(data map[string]interface{}) error
	Validate() error
	Reset()
}

// Manager binds registered sections to a Store.
type Manager struct {
	mu       sync.RWMutex
	store    Store
	sections map[string]Section
	order    []string
}

// NewManager creates a manager with no sections.
func NewManager(store Store) *Manager {
	return &Manager{
		store:    store,
		sections: make(map[string]Section),
	}
}

// Store returns the backing store.
func (m *Manager) Store() Store {
	return m.store
}

// RegisterSection adds s. Section IDs must be unique.
func (m *Manager) RegisterSection(s Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sections[s.ID()]; exists {
		return fmt.Errorf("section %q already registered", s.ID())
	}
	m.sections[s.ID()] = s
	m.order = append(m.order, s.ID())
	return nil
}

// GetSection looks up a section by ID.
func (m *Manager) GetSection(id string) (Section, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sections[id]
	return s, ok
}

// GetSections returns sections in registration order.
func (m *Manager) GetSections() []Section {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Section, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sections[id])
	}
	return out
}

// LoadAll reads the store and applies it to every section. Sections with no
// stored data keep their defaults. Each section is validated after loading.
func (m *Manager) LoadAll() error {
	if err := m.store.Load(); err != nil {
		return err
	}

	for _, s := range m.GetSections() {
		data, err := m.store.GetSection(s.ID())
		if err != nil {
			return fmt.Errorf("failed to read section %q: %w", s.ID(), err)
		}
		if len(data) > 0 {
			if err := s.SetData(data); err != nil {
				return fmt.Errorf("failed to apply section %q: %w", s.ID(), err)
			}
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("invalid section %q: %w", s.ID(), err)
		}
	}
	return nil
}

// SaveAll validates every section and writes them to the store.
func (m *Manager) SaveAll() error {
	sections := m.GetSections()

	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("invalid section %q: %w", s.ID(), err)
		}
	}
	for _, s := range sections {
		if err := m.store.SetSection(s.ID(), s.Data()); err != nil {
			return fmt.Errorf("failed to store section %q: %w", s.ID(), err)
		}
	}
	return m.store.Save()
}

// ResetAll restores every section to its defaults.
func (m *Manager) ResetAll() {
	for _, s := range m.GetSections() {
		s.Reset()
	}
}
