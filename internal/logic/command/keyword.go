package command

import (
	"slices"

	"github.com/vms/vms/internal/model"
)

const (
	MessageAddKeywordSuccess    = "New keyword %s added for %s"
	MessageDeleteKeywordSuccess = "Keyword %s removed from %s"
	MessageInvalidMainWord      = "Main word must be one of: patient, appointment, vaccination, keyword"
	MessageKeywordIsMainWord    = "Keyword %s is already a main command word"
	MessageKeywordsListed       = "%d keywords listed!"
)

// IsReservedWord reports whether w is a main word, help or exit. None of
// them may be used as an alias.
func IsReservedWord(w string) bool {
	return slices.Contains(Groups, w) || w == WordHelp || w == WordExit
}

// AddKeywordCommand makes Keyword an alias of MainWord.
type AddKeywordCommand struct {
	MainWord string
	Keyword  string
}

func (c AddKeywordCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if !slices.Contains(Groups, c.MainWord) {
		return Result{}, failf(MessageInvalidMainWord)
	}
	if IsReservedWord(c.Keyword) {
		return Result{}, failf(MessageKeywordIsMainWord, c.Keyword)
	}
	if err := m.Keywords().Add(c.MainWord, c.Keyword); err != nil {
		return Result{}, fail("Cannot add keyword", err)
	}
	res := mutated(MessageAddKeywordSuccess, c.Keyword, c.MainWord)
	res.View = ViewKeywords
	return res, nil
}

// DeleteKeywordCommand removes an alias.
type DeleteKeywordCommand struct {
	Keyword string
}

func (c DeleteKeywordCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	category, err := m.Keywords().Remove(c.Keyword)
	if err != nil {
		return Result{}, fail("Cannot delete keyword", err)
	}
	res := mutated(MessageDeleteKeywordSuccess, c.Keyword, category)
	res.View = ViewKeywords
	return res, nil
}

// ListKeywordsCommand shows every alias grouped by main word.
type ListKeywordsCommand struct{}

func (ListKeywordsCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	return Result{
		Message: sprintf(MessageKeywordsListed, m.Keywords().Len()),
		View:    ViewKeywords,
	}, nil
}
