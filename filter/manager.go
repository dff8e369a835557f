package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Manager keeps named filter presets
type Manager struct {
	compiler Compiler
	filters  map[string]Filter
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewCompiler(),
		filters:  make(map[string]Filter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilter registers a new preset or replaces an existing one
func (m *Manager) RegisterFilter(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers several presets; nothing is registered if any fails
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]Filter, len(filters))

	for _, name := range slices.Sorted(maps.Keys(filters)) {
		filter, err := m.compiler.Compile(filters[name])
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// GetFilter returns a preset by name
func (m *Manager) GetFilter(name string) (Filter, bool) {
	m.mu.RLock()
	filter, exists := m.filters[name]
	m.mu.RUnlock()
	return filter, exists
}

// ListFilters returns the registered preset names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve picks the filter to use.
// Priority: expression > preset > defaultExpression. Nil means no filtering.
func (m *Manager) Resolve(expression, preset, defaultExpression string) (Filter, error) {
	if strings.TrimSpace(expression) != "" {
		return m.compiler.Compile(expression)
	}

	if preset != "" {
		filter, ok := m.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, preset)
		}
		return filter, nil
	}

	if strings.TrimSpace(defaultExpression) != "" {
		return m.compiler.Compile(defaultExpression)
	}

	return nil, nil
}
