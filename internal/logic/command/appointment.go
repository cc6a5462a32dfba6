package command

import (
	"time"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/pkg/index"
	"github.com/vms/vms/pkg/pagination"
)

const (
	MessageAddAppointmentSuccess    = "New appointment added: %s"
	MessageEditAppointmentSuccess   = "Edited appointment #%s: %s"
	MessageDeleteAppointmentSuccess = "Deleted appointment #%s: %s"
	MessageMarkAppointmentSuccess   = "Marked appointment #%s as completed"
	MessageUnmarkAppointmentSuccess = "Marked appointment #%s as not completed"
	MessageAlreadyCompleted         = "Appointment #%s is already marked as completed"
	MessageNotCompleted             = "Appointment #%s is not marked as completed"
	MessageCompletedNotEditable     = "Completed appointments cannot be edited"
	MessageAgeNotAllowed            = "Patient is %d years old at the appointment, outside the allowed range %d-%d for %s"
	MessageAllergic                 = "Patient is allergic to an ingredient of %s"
	MessageOverlappingAppointment   = "Patient already has appointment #%s at that time"
)

// checkAppointment validates the references and scheduling constraints of a,
// ignoring the appointment stored under self (when editing).
func checkAppointment(m *model.Model, a appointment.Appointment, self *index.Index) error {
	p, err := m.Patient(a.Patient())
	if err != nil {
		return fail(MessageInvalidPatientIndex, err)
	}
	vax, ok := m.Vaccinations().Get(a.Vaccine().String())
	if !ok {
		return failf(MessageUnknownVaccination, a.Vaccine())
	}
	if age := p.Dob.AgeAt(a.Start()); !vax.AllowsAge(age) {
		return failf(MessageAgeNotAllowed, age, vax.MinAge, vax.MaxAge, vax.Name)
	}
	if p.IsAllergicToAny(vax.Ingredients) {
		return failf(MessageAllergic, vax.Name)
	}
	for _, e := range m.Appointments().Entries() {
		if self != nil && e.ID == self.ZeroBased() {
			continue
		}
		if e.Value.Overlaps(a) {
			return failf(MessageOverlappingAppointment, index.FromZeroBased(e.ID))
		}
	}
	return nil
}

// AddAppointmentCommand schedules a new appointment.
type AddAppointmentCommand struct {
	Appointment appointment.Appointment
}

func (c AddAppointmentCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if err := checkAppointment(m, c.Appointment, nil); err != nil {
		return Result{}, err
	}
	m.AddAppointment(c.Appointment)
	res := mutated(MessageAddAppointmentSuccess, c.Appointment)
	res.View = ViewAppointments
	return res, nil
}

// EditAppointmentDescriptor holds the appointment fields to change.
type EditAppointmentDescriptor struct {
	Patient *index.Index
	Start   *time.Time
	End     *time.Time
	Vaccine *vaccination.GroupName
}

func (d EditAppointmentDescriptor) IsAnyFieldEdited() bool {
	return d.Patient != nil || d.Start != nil || d.End != nil || d.Vaccine != nil
}

// Apply returns a with the descriptor's fields applied. The result is
// re-validated, so an edit cannot break the start <= end invariant.
func (d EditAppointmentDescriptor) Apply(a appointment.Appointment) (appointment.Appointment, error) {
	p, start, end, vaccine := a.Patient(), a.Start(), a.End(), a.Vaccine()
	if d.Patient != nil {
		p = *d.Patient
	}
	if d.Start != nil {
		start = *d.Start
	}
	if d.End != nil {
		end = *d.End
	}
	if d.Vaccine != nil {
		vaccine = *d.Vaccine
	}
	return appointment.New(p, start, end, vaccine, a.IsCompleted())
}

// EditAppointmentCommand edits the appointment at Index.
type EditAppointmentCommand struct {
	Index      index.Index
	Descriptor EditAppointmentDescriptor
}

func (c EditAppointmentCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, failf(MessageNotEdited)
	}
	current, err := m.Appointment(c.Index)
	if err != nil {
		return Result{}, fail(MessageInvalidAppointmentIndex, err)
	}
	if current.IsCompleted() {
		return Result{}, failf(MessageCompletedNotEditable)
	}
	edited, err := c.Descriptor.Apply(current)
	if err != nil {
		return Result{}, fail("Invalid appointment", err)
	}
	if err := checkAppointment(m, edited, &c.Index); err != nil {
		return Result{}, err
	}
	if err := m.SetAppointment(c.Index, edited); err != nil {
		return Result{}, fail(MessageInvalidAppointmentIndex, err)
	}
	res := mutated(MessageEditAppointmentSuccess, c.Index, edited)
	res.View = ViewAppointments
	return res, nil
}

// DeleteAppointmentCommand deletes the appointment at Index.
type DeleteAppointmentCommand struct {
	Index index.Index
}

func (c DeleteAppointmentCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	removed, err := m.DeleteAppointment(c.Index)
	if err != nil {
		return Result{}, fail(MessageInvalidAppointmentIndex, err)
	}
	res := mutated(MessageDeleteAppointmentSuccess, c.Index, removed)
	res.View = ViewAppointments
	return res, nil
}

// MarkAppointmentCommand sets the completion flag of the appointment at
// Index. Completing an appointment records the vaccination in the patient's
// history; reverting removes that record.
type MarkAppointmentCommand struct {
	Index     index.Index
	Completed bool
}

func (c MarkAppointmentCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	a, err := m.Appointment(c.Index)
	if err != nil {
		return Result{}, fail(MessageInvalidAppointmentIndex, err)
	}
	if a.IsCompleted() == c.Completed {
		if c.Completed {
			return Result{}, failf(MessageAlreadyCompleted, c.Index)
		}
		return Result{}, failf(MessageNotCompleted, c.Index)
	}
	p, err := m.Patient(a.Patient())
	if err != nil {
		return Result{}, fail(MessageInvalidPatientIndex, err)
	}
	key, err := recordKey(m, a)
	if err != nil {
		return Result{}, err
	}

	msg := MessageUnmarkAppointmentSuccess
	if c.Completed {
		msg = MessageMarkAppointmentSuccess
		if err := m.SetPatient(a.Patient(), p.WithVaxRecord(key)); err != nil {
			return Result{}, fail(MessageInvalidPatientIndex, err)
		}
	} else if p.HasVaxRecord(key) {
		// A hand-edited patients file may have dropped the record already.
		if err := m.SetPatient(a.Patient(), p.WithoutVaxRecord(key)); err != nil {
			return Result{}, fail(MessageInvalidPatientIndex, err)
		}
	}
	if err := m.SetAppointment(c.Index, a.WithCompleted(c.Completed)); err != nil {
		return Result{}, fail(MessageInvalidAppointmentIndex, err)
	}
	res := mutated(msg, c.Index)
	res.View = ViewAppointments
	return res, nil
}

func recordKey(m *model.Model, a appointment.Appointment) (vaccination.VaxRecordKey, error) {
	vax, ok := m.Vaccinations().Get(a.Vaccine().String())
	if !ok {
		return vaccination.VaxRecordKey{}, failf(MessageUnknownVaccination, a.Vaccine())
	}
	key, err := vaccination.NewVaxRecordKey(vax.Name, a.Start())
	if err != nil {
		return vaccination.VaxRecordKey{}, fail("Cannot record vaccination", err)
	}
	return key, nil
}

// ListAppointmentsCommand clears the appointment filter and shows one page.
type ListAppointmentsCommand struct {
	Page pagination.Params
}

func (c ListAppointmentsCommand) Execute(m *model.Model) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	m.SetAppointmentFilters(nil)
	return Result{
		Message: sprintf(MessageAppointmentsListed, len(m.FilteredAppointments())),
		View:    ViewAppointments,
		Page:    c.Page,
	}, nil
}
