package patient

import (
	"slices"
	"strings"
)

// Predicate is a test over a patient used to narrow the patient listing.
type Predicate interface {
	Test(Patient) bool
}

// NameContainsKeywordsPredicate matches patients whose name has a word equal
// to any of the keywords, ignoring case.
type NameContainsKeywordsPredicate struct {
	Keywords []string
}

func (p NameContainsKeywordsPredicate) Test(pat Patient) bool {
	words := strings.Fields(pat.Name.String())
	for _, kw := range p.Keywords {
		for _, w := range words {
			if strings.EqualFold(w, kw) {
				return true
			}
		}
	}
	return false
}

func (p NameContainsKeywordsPredicate) Equal(o NameContainsKeywordsPredicate) bool {
	return slices.Equal(p.Keywords, o.Keywords)
}

// All combines predicates by conjunction. No predicates match everything.
func All(preds ...Predicate) func(Patient) bool {
	return func(pat Patient) bool {
		for _, pred := range preds {
			if !pred.Test(pat) {
				return false
			}
		}
		return true
	}
}
