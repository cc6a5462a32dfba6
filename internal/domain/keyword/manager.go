// Package keyword keeps user-defined aliases for the main command words.
// Each main word (a category) owns a set of keywords; a keyword belongs to at
// most one category.
package keyword

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrInvalidKeyword  = errors.New("keyword must be a single non-blank word")
	ErrInvalidCategory = errors.New("category must be a single non-blank word")
	ErrKeywordTaken    = errors.New("keyword is already in use")
	ErrKeywordNotFound = errors.New("keyword not found")
)

// Manager maps categories to keyword sets.
type Manager struct {
	categories map[string]map[string]struct{}
}

func NewManager() *Manager {
	return &Manager{categories: make(map[string]map[string]struct{})}
}

// Add registers keyword under category. A keyword may not shadow a category
// or be registered twice.
func (m *Manager) Add(category, keyword string) error {
	category = strings.TrimSpace(category)
	keyword = strings.TrimSpace(keyword)
	if !isWord(category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if !isWord(keyword) {
		return fmt.Errorf("%w: %q", ErrInvalidKeyword, keyword)
	}
	if _, ok := m.categories[keyword]; ok || keyword == category {
		return fmt.Errorf("%w: %q is a main command word", ErrKeywordTaken, keyword)
	}
	if owner, ok := m.Resolve(keyword); ok {
		return fmt.Errorf("%w: %q maps to %q", ErrKeywordTaken, keyword, owner)
	}
	set, ok := m.categories[category]
	if !ok {
		set = make(map[string]struct{})
		m.categories[category] = set
	}
	set[keyword] = struct{}{}
	return nil
}

// Remove deletes keyword from whichever category holds it and returns that
// category. Empty categories are dropped.
func (m *Manager) Remove(keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	for category, set := range m.categories {
		if _, ok := set[keyword]; ok {
			delete(set, keyword)
			if len(set) == 0 {
				delete(m.categories, category)
			}
			return category, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrKeywordNotFound, keyword)
}

// Resolve returns the category a keyword maps to.
func (m *Manager) Resolve(keyword string) (string, bool) {
	for category, set := range m.categories {
		if _, ok := set[keyword]; ok {
			return category, true
		}
	}
	return "", false
}

// Categories returns the category names in sorted order.
func (m *Manager) Categories() []string {
	return slices.Sorted(maps.Keys(m.categories))
}

// Keywords returns the sorted keywords of one category.
func (m *Manager) Keywords(category string) []string {
	return slices.Sorted(maps.Keys(m.categories[category]))
}

// Suggest returns, sorted, every keyword and category that starts with
// prefix, for input completion.
func (m *Manager) Suggest(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for category, set := range m.categories {
		if strings.HasPrefix(strings.ToLower(category), prefix) {
			out = append(out, category)
		}
		for kw := range set {
			if strings.HasPrefix(strings.ToLower(kw), prefix) {
				out = append(out, kw)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Len returns the total number of keywords.
func (m *Manager) Len() int {
	n := 0
	for _, set := range m.categories {
		n += len(set)
	}
	return n
}

// Equal compares the full mapping.
func (m *Manager) Equal(o *Manager) bool {
	if len(m.categories) != len(o.categories) {
		return false
	}
	for category, set := range m.categories {
		if !maps.Equal(set, o.categories[category]) {
			return false
		}
	}
	return true
}

func isWord(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n")
}
