package command

import (
	"time"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/pkg/index"
)

// FindAppointmentDescriptor holds the optional search fields of an
// appointment search.
type FindAppointmentDescriptor struct {
	Patient   *index.Index
	StartTime *time.Time
	EndTime   *time.Time
	Vaccine   *vaccination.GroupName
	Completed *bool
}

// IsAnyFieldSet reports whether at least one search field is present.
func (d FindAppointmentDescriptor) IsAnyFieldSet() bool {
	return d.Patient != nil || d.StartTime != nil || d.EndTime != nil || d.Vaccine != nil || d.Completed != nil
}

// Equal compares all five fields.
func (d FindAppointmentDescriptor) Equal(o FindAppointmentDescriptor) bool {
	return equalPtr(d.Patient, o.Patient, func(a, b index.Index) bool { return a == b }) &&
		equalPtr(d.StartTime, o.StartTime, time.Time.Equal) &&
		equalPtr(d.EndTime, o.EndTime, time.Time.Equal) &&
		equalPtr(d.Vaccine, o.Vaccine, vaccination.GroupName.Equal) &&
		equalPtr(d.Completed, o.Completed, func(a, b bool) bool { return a == b })
}

// FindAppointmentCommand narrows the appointment listing.
//
// Only the patient-index and vaccine predicates are installed as the active
// filter. The start-time, end-time and completion predicates are built from
// the descriptor but are not applied, and command equality ignores them.
type FindAppointmentCommand struct {
	indexPredicate      *appointment.IndexPredicate
	startTimePredicate  *appointment.StartTimePredicate
	endTimePredicate    *appointment.EndTimePredicate
	vaccinePredicate    *appointment.VaccineContainsKeywordsPredicate
	completionPredicate *appointment.CompletionPredicate
}

// NewFindAppointmentByIndex searches by patient only.
func NewFindAppointmentByIndex(pred appointment.IndexPredicate) *FindAppointmentCommand {
	return &FindAppointmentCommand{indexPredicate: &pred}
}

// NewFindAppointmentCommand builds one predicate per present descriptor field.
func NewFindAppointmentCommand(d FindAppointmentDescriptor) *FindAppointmentCommand {
	c := &FindAppointmentCommand{}
	if d.Patient != nil {
		c.indexPredicate = &appointment.IndexPredicate{Index: *d.Patient}
	}
	if d.StartTime != nil {
		c.startTimePredicate = &appointment.StartTimePredicate{Start: *d.StartTime}
	}
	if d.EndTime != nil {
		c.endTimePredicate = &appointment.EndTimePredicate{End: *d.EndTime}
	}
	if d.Vaccine != nil {
		c.vaccinePredicate = &appointment.VaccineContainsKeywordsPredicate{Keyword: *d.Vaccine}
	}
	if d.Completed != nil {
		c.completionPredicate = &appointment.CompletionPredicate{Completed: *d.Completed}
	}
	return c
}

func (c *FindAppointmentCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	var filters []appointment.Predicate
	if c.indexPredicate != nil {
		filters = append(filters, *c.indexPredicate)
	}
	if c.vaccinePredicate != nil {
		filters = append(filters, *c.vaccinePredicate)
	}
	m.SetAppointmentFilters(filters)
	return Result{
		Message: sprintf(MessageAppointmentsListed, len(m.FilteredAppointments())),
		View:    ViewAppointments,
		Page:    firstPage(),
	}, nil
}

// Equal compares the index and vaccine predicates only.
func (c *FindAppointmentCommand) Equal(o *FindAppointmentCommand) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return equalPtr(c.indexPredicate, o.indexPredicate, func(a, b appointment.IndexPredicate) bool { return a == b }) &&
		equalPtr(c.vaccinePredicate, o.vaccinePredicate, func(a, b appointment.VaccineContainsKeywordsPredicate) bool {
			return a.Keyword.Equal(b.Keyword)
		})
}

// Predicates returns every predicate the command built, applied or not.
func (c *FindAppointmentCommand) Predicates() []appointment.Predicate {
	var out []appointment.Predicate
	if c.indexPredicate != nil {
		out = append(out, *c.indexPredicate)
	}
	if c.startTimePredicate != nil {
		out = append(out, *c.startTimePredicate)
	}
	if c.endTimePredicate != nil {
		out = append(out, *c.endTimePredicate)
	}
	if c.vaccinePredicate != nil {
		out = append(out, *c.vaccinePredicate)
	}
	if c.completionPredicate != nil {
		out = append(out, *c.completionPredicate)
	}
	return out
}

func equalPtr[T any](a, b *T, eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(*a, *b)
}
