package storage

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vms/vms/internal/domain/keyword"
	"github.com/vms/vms/internal/logic/command"
)

type jsonKeywords struct {
	Keywords map[string][]string `json:"keywords"`
}

func newJSONKeywords(m *keyword.Manager) jsonKeywords {
	doc := jsonKeywords{Keywords: make(map[string][]string)}
	for _, category := range m.Categories() {
		doc.Keywords[category] = m.Keywords(category)
	}
	return doc
}

// toModelType rebuilds the manager. Every category must be a main word and
// no keyword may reuse a category or reserved word anywhere in the document.
// Categories are replayed in sorted order so the outcome does not depend on
// map iteration. Any invalid mapping is reported as an i/o failure of the
// keyword file.
func (j jsonKeywords) toModelType(path string) (*keyword.Manager, error) {
	categories := slices.Sorted(maps.Keys(j.Keywords))
	for _, category := range categories {
		if !slices.Contains(command.Groups, category) {
			return nil, ioError(path, fmt.Errorf("invalid keyword mapping: %q is not a main command word", category))
		}
		for _, kw := range j.Keywords[category] {
			if command.IsReservedWord(kw) {
				return nil, ioError(path, fmt.Errorf("invalid keyword mapping: %q under %q is a reserved word", kw, category))
			}
		}
	}

	m := keyword.NewManager()
	for _, category := range categories {
		for _, kw := range j.Keywords[category] {
			if err := m.Add(category, kw); err != nil {
				return nil, ioError(path, fmt.Errorf("invalid keyword mapping: %w", err))
			}
		}
	}
	return m, nil
}
