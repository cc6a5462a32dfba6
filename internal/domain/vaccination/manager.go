package vaccination

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicateVaxType = errors.New("vaccination type already exists")
	ErrVaxTypeNotFound  = errors.New("vaccination type not found")
)

// Manager holds vaccination types keyed by name.
type Manager struct {
	types map[string]VaxType
}

func NewManager() *Manager {
	return &Manager{types: make(map[string]VaxType)}
}

// Add stores a new vaccination type. Names are unique.
func (m *Manager) Add(v VaxType) error {
	if _, ok := m.types[v.Name.String()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVaxType, v.Name)
	}
	m.types[v.Name.String()] = v
	return nil
}

// Get looks a vaccination type up by exact name.
func (m *Manager) Get(name string) (VaxType, bool) {
	v, ok := m.types[name]
	return v, ok
}

// Contains reports whether a vaccination type with the name exists.
func (m *Manager) Contains(name string) bool {
	_, ok := m.types[name]
	return ok
}

// Remove deletes the named vaccination type.
func (m *Manager) Remove(name string) (VaxType, error) {
	v, ok := m.types[name]
	if !ok {
		return VaxType{}, fmt.Errorf("%w: %s", ErrVaxTypeNotFound, name)
	}
	delete(m.types, name)
	return v, nil
}

func (m *Manager) Len() int { return len(m.types) }

// All returns every vaccination type ordered by name.
func (m *Manager) All() []VaxType {
	out := make([]VaxType, 0, len(m.types))
	for _, v := range m.types {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b VaxType) int { return strings.Compare(a.Name.String(), b.Name.String()) })
	return out
}

// Filter returns the vaccination types, ordered by name, that satisfy pred.
func (m *Manager) Filter(pred func(VaxType) bool) []VaxType {
	all := m.All()
	out := all[:0]
	for _, v := range all {
		if pred == nil || pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Equal compares the contents of two managers.
func (m *Manager) Equal(o *Manager) bool {
	if m.Len() != o.Len() {
		return false
	}
	for name, v := range m.types {
		ov, ok := o.types[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// NameContainsKeyword matches vaccination types whose name contains keyword,
// ignoring case.
func NameContainsKeyword(keyword string) func(VaxType) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	return func(v VaxType) bool {
		return strings.Contains(strings.ToLower(v.Name.String()), kw)
	}
}
