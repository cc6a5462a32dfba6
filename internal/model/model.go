// Package model is the in-memory state of a running session: the patient and
// appointment registries, the vaccination types, the keyword aliases, and the
// filters that define what listings currently show.
package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/keyword"
	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/registry"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/pkg/index"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrVaxTypeInUse        = errors.New("vaccination type is referenced by appointments")
)

type (
	PatientEntry     = registry.Entry[patient.Patient]
	AppointmentEntry = registry.Entry[appointment.Appointment]
)

// Model aggregates every collection of the session.
type Model struct {
	patients     *registry.Registry[patient.Patient]
	appointments *registry.Registry[appointment.Appointment]
	vaccinations *vaccination.Manager
	keywords     *keyword.Manager

	patientFilter     func(patient.Patient) bool
	appointmentFilter func(appointment.Appointment) bool
	vaxFilter         func(vaccination.VaxType) bool
}

// New returns an empty model.
func New() *Model {
	return From(registry.New[patient.Patient](), registry.New[appointment.Appointment](),
		vaccination.NewManager(), keyword.NewManager())
}

// From wraps already populated collections, as produced by storage.
func From(
	patients *registry.Registry[patient.Patient],
	appointments *registry.Registry[appointment.Appointment],
	vaccinations *vaccination.Manager,
	keywords *keyword.Manager,
) *Model {
	return &Model{
		patients:     patients,
		appointments: appointments,
		vaccinations: vaccinations,
		keywords:     keywords,
	}
}

func (m *Model) Patients() *registry.Registry[patient.Patient]             { return m.patients }
func (m *Model) Appointments() *registry.Registry[appointment.Appointment] { return m.appointments }
func (m *Model) Vaccinations() *vaccination.Manager                        { return m.vaccinations }
func (m *Model) Keywords() *keyword.Manager                                { return m.keywords }

// -- Patients --

// AddPatient stores p and returns its index.
func (m *Model) AddPatient(p patient.Patient) index.Index {
	return index.FromZeroBased(m.patients.Add(p))
}

func (m *Model) Patient(i index.Index) (patient.Patient, error) {
	p, ok := m.patients.Get(i.ZeroBased())
	if !ok {
		return patient.Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, i)
	}
	return p, nil
}

func (m *Model) HasPatient(i index.Index) bool {
	return m.patients.Contains(i.ZeroBased())
}

func (m *Model) SetPatient(i index.Index, p patient.Patient) error {
	if err := m.patients.Set(i.ZeroBased(), p); err != nil {
		return fmt.Errorf("%w: %s", ErrPatientNotFound, i)
	}
	return nil
}

// DeletePatient removes the patient and every appointment that references it.
// It returns the removed patient and the number of appointments dropped.
func (m *Model) DeletePatient(i index.Index) (patient.Patient, int, error) {
	p, err := m.patients.Remove(i.ZeroBased())
	if err != nil {
		return patient.Patient{}, 0, fmt.Errorf("%w: %s", ErrPatientNotFound, i)
	}
	owned := appointment.IndexPredicate{Index: i}
	dropped := 0
	for _, e := range m.appointments.Filter(owned.Test) {
		if _, err := m.appointments.Remove(e.ID); err == nil {
			dropped++
		}
	}
	return p, dropped, nil
}

// SetPatientFilters installs the conjunction of preds as the patient filter.
func (m *Model) SetPatientFilters(preds ...patient.Predicate) {
	m.patientFilter = patient.All(preds...)
}

// FilteredPatients returns the patients passing the active filter, in id order.
func (m *Model) FilteredPatients() []PatientEntry {
	return m.patients.Filter(m.patientFilter)
}

// -- Appointments --

// AddAppointment stores a and returns its index.
func (m *Model) AddAppointment(a appointment.Appointment) index.Index {
	return index.FromZeroBased(m.appointments.Add(a))
}

func (m *Model) Appointment(i index.Index) (appointment.Appointment, error) {
	a, ok := m.appointments.Get(i.ZeroBased())
	if !ok {
		return appointment.Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, i)
	}
	return a, nil
}

func (m *Model) SetAppointment(i index.Index, a appointment.Appointment) error {
	if err := m.appointments.Set(i.ZeroBased(), a); err != nil {
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, i)
	}
	return nil
}

func (m *Model) DeleteAppointment(i index.Index) (appointment.Appointment, error) {
	a, err := m.appointments.Remove(i.ZeroBased())
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, i)
	}
	return a, nil
}

// SetAppointmentFilters installs the conjunction of preds as the appointment
// filter. An empty list shows every appointment.
func (m *Model) SetAppointmentFilters(preds []appointment.Predicate) {
	m.appointmentFilter = appointment.All(slices.Clone(preds)...)
}

// FilteredAppointments returns the appointments passing the active filter, in
// id order.
func (m *Model) FilteredAppointments() []AppointmentEntry {
	return m.appointments.Filter(m.appointmentFilter)
}

// -- Vaccinations --

func (m *Model) AddVaxType(v vaccination.VaxType) error {
	return m.vaccinations.Add(v)
}

// DeleteVaxType removes a vaccination type that no appointment references.
func (m *Model) DeleteVaxType(name string) (vaccination.VaxType, error) {
	for _, e := range m.appointments.Entries() {
		if e.Value.Vaccine().String() == name {
			return vaccination.VaxType{}, fmt.Errorf("%w: %s", ErrVaxTypeInUse, name)
		}
	}
	return m.vaccinations.Remove(name)
}

func (m *Model) SetVaxTypeFilter(pred func(vaccination.VaxType) bool) {
	m.vaxFilter = pred
}

func (m *Model) FilteredVaxTypes() []vaccination.VaxType {
	return m.vaccinations.Filter(m.vaxFilter)
}

// ResetFilters makes every listing show all records.
func (m *Model) ResetFilters() {
	m.patientFilter = nil
	m.appointmentFilter = nil
	m.vaxFilter = nil
}

// Equal compares the persisted state of two models; filters are ignored.
func (m *Model) Equal(o *Model) bool {
	return m.patients.Equal(o.patients, patient.Patient.Equal) &&
		m.appointments.Equal(o.appointments, appointment.Appointment.Equal) &&
		m.vaccinations.Equal(o.vaccinations) &&
		m.keywords.Equal(o.keywords)
}
