package command

import (
	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/pkg/index"
	"github.com/vms/vms/pkg/pagination"
)

const (
	MessageAddPatientSuccess    = "New patient added: %s"
	MessageEditPatientSuccess   = "Edited patient #%s: %s"
	MessageDeletePatientSuccess = "Deleted patient #%s: %s (%d appointments removed)"
	MessageDuplicatePatient     = "This patient already exists"
)

// AddPatientCommand adds a patient.
type AddPatientCommand struct {
	Patient patient.Patient
}

func (c AddPatientCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	for _, e := range m.Patients().Entries() {
		if e.Value.IsSamePatient(c.Patient) {
			return Result{}, failf(MessageDuplicatePatient)
		}
	}
	m.AddPatient(c.Patient)
	res := mutated(MessageAddPatientSuccess, c.Patient.Name)
	res.View = ViewPatients
	return res, nil
}

// EditPatientDescriptor holds the fields to change. A nil field is left as
// is; a non-nil empty set clears it.
type EditPatientDescriptor struct {
	Name      *patient.Name
	Phone     *patient.Phone
	Dob       *patient.Dob
	BloodType *patient.BloodType
	Allergies *[]patient.Allergy
	Vaccines  *[]patient.Vaccine
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPatientDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Dob != nil || d.BloodType != nil ||
		d.Allergies != nil || d.Vaccines != nil
}

// Apply returns p with the descriptor's fields applied.
func (d EditPatientDescriptor) Apply(p patient.Patient) patient.Patient {
	name, phone, dob, bt := p.Name, p.Phone, p.Dob, p.BloodType
	allergies, vaccines := p.Allergies, p.Vaccines
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Dob != nil {
		dob = *d.Dob
	}
	if d.BloodType != nil {
		bt = *d.BloodType
	}
	if d.Allergies != nil {
		allergies = *d.Allergies
	}
	if d.Vaccines != nil {
		vaccines = *d.Vaccines
	}
	return patient.New(name, phone, dob, bt, allergies, vaccines, p.VaxRecords)
}

// EditPatientCommand edits the patient at Index.
type EditPatientCommand struct {
	Index      index.Index
	Descriptor EditPatientDescriptor
}

func (c EditPatientCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, failf(MessageNotEdited)
	}
	current, err := m.Patient(c.Index)
	if err != nil {
		return Result{}, fail(MessageInvalidPatientIndex, err)
	}
	edited := c.Descriptor.Apply(current)
	for _, e := range m.Patients().Entries() {
		if e.ID != c.Index.ZeroBased() && e.Value.IsSamePatient(edited) {
			return Result{}, failf(MessageDuplicatePatient)
		}
	}
	if err := m.SetPatient(c.Index, edited); err != nil {
		return Result{}, fail(MessageInvalidPatientIndex, err)
	}
	res := mutated(MessageEditPatientSuccess, c.Index, edited)
	res.View = ViewPatients
	return res, nil
}

// DeletePatientCommand deletes the patient at Index and its appointments.
type DeletePatientCommand struct {
	Index index.Index
}

func (c DeletePatientCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	removed, dropped, err := m.DeletePatient(c.Index)
	if err != nil {
		return Result{}, fail(MessageInvalidPatientIndex, err)
	}
	res := mutated(MessageDeletePatientSuccess, c.Index, removed.Name, dropped)
	res.View = ViewPatients
	return res, nil
}

// FindPatientCommand narrows the patient listing to the predicate's matches.
type FindPatientCommand struct {
	Predicate patient.NameContainsKeywordsPredicate
}

func (c FindPatientCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	m.SetPatientFilters(c.Predicate)
	return Result{
		Message: sprintf(MessagePatientsListed, len(m.FilteredPatients())),
		View:    ViewPatients,
		Page:    firstPage(),
	}, nil
}

// Equal compares the keyword lists.
func (c FindPatientCommand) Equal(o FindPatientCommand) bool {
	return c.Predicate.Equal(o.Predicate)
}

// ListPatientsCommand clears the patient filter and shows one page.
type ListPatientsCommand struct {
	Page pagination.Params
}

func (c ListPatientsCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	m.SetPatientFilters()
	return Result{
		Message: sprintf(MessagePatientsListed, len(m.FilteredPatients())),
		View:    ViewPatients,
		Page:    c.Page,
	}, nil
}
