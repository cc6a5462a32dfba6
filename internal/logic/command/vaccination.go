package command

import (
	"errors"

	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/pkg/pagination"
)

const (
	MessageAddVaxTypeSuccess    = "New vaccination type added: %s"
	MessageDeleteVaxTypeSuccess = "Deleted vaccination type: %s"
	MessageDuplicateVaxType     = "Vaccination type %s already exists"
	MessageVaxTypeInUse         = "Vaccination type %s is used by existing appointments"
)

// AddVaxTypeCommand registers a vaccination type.
type AddVaxTypeCommand struct {
	VaxType vaccination.VaxType
}

func (c AddVaxTypeCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if err := m.AddVaxType(c.VaxType); err != nil {
		return Result{}, failf(MessageDuplicateVaxType, c.VaxType.Name)
	}
	res := mutated(MessageAddVaxTypeSuccess, c.VaxType)
	res.View = ViewVaccinations
	return res, nil
}

// DeleteVaxTypeCommand removes an unused vaccination type.
type DeleteVaxTypeCommand struct {
	Name vaccination.VaxName
}

func (c DeleteVaxTypeCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	removed, err := m.DeleteVaxType(c.Name.String())
	switch {
	case errors.Is(err, model.ErrVaxTypeInUse):
		return Result{}, failf(MessageVaxTypeInUse, c.Name)
	case err != nil:
		return Result{}, failf(MessageUnknownVaccination, c.Name)
	}
	res := mutated(MessageDeleteVaxTypeSuccess, removed.Name)
	res.View = ViewVaccinations
	return res, nil
}

// FindVaxTypeCommand narrows the vaccination listing by name.
type FindVaxTypeCommand struct {
	Keyword string
}

func (c FindVaxTypeCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	m.SetVaxTypeFilter(vaccination.NameContainsKeyword(c.Keyword))
	return Result{
		Message: sprintf(MessageVaxTypesListed, len(m.FilteredVaxTypes())),
		View:    ViewVaccinations,
		Page:    firstPage(),
	}, nil
}

// ListVaxTypesCommand clears the vaccination filter.
type ListVaxTypesCommand struct {
	Page pagination.Params
}

func (c ListVaxTypesCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	m.SetVaxTypeFilter(nil)
	return Result{
		Message: sprintf(MessageVaxTypesListed, len(m.FilteredVaxTypes())),
		View:    ViewVaccinations,
		Page:    c.Page,
	}, nil
}
