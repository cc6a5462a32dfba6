package model

import (
	"errors"
	"testing"
	"time"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/pkg/index"
)

func newPatient(t *testing.T, name string) patient.Patient {
	t.Helper()
	n, err := patient.NewName(name)
	if err != nil {
		t.Fatal(err)
	}
	phone, _ := patient.NewPhone("98765432")
	dob, _ := patient.NewDob(time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC))
	bt, _ := patient.NewBloodType("O+")
	return patient.New(n, phone, dob, bt, nil, nil, nil)
}

func newVaxType(t *testing.T, name string) vaccination.VaxType {
	t.Helper()
	n, err := vaccination.NewVaxName(name)
	if err != nil {
		t.Fatal(err)
	}
	v, err := vaccination.NewVaxType(n, nil, vaccination.NoMinAge, vaccination.NoMaxAge, nil)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func newAppt(t *testing.T, p index.Index, vaccine string, day int) appointment.Appointment {
	t.Helper()
	g, _ := vaccination.NewGroupName(vaccine)
	start := time.Date(2024, 5, day, 9, 0, 0, 0, time.UTC)
	a, err := appointment.New(p, start, start.Add(time.Hour), g, false)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestModel_DeletePatientCascadesAppointments(t *testing.T) {
	m := New()
	alice := m.AddPatient(newPatient(t, "Alice"))
	bob := m.AddPatient(newPatient(t, "Bob"))
	m.AddAppointment(newAppt(t, alice, "Pfizer", 1))
	m.AddAppointment(newAppt(t, alice, "Pfizer", 2))
	m.AddAppointment(newAppt(t, bob, "Pfizer", 3))

	_, dropped, err := m.DeletePatient(alice)
	if err != nil {
		t.Fatal(err)
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if m.Appointments().Len() != 1 {
		t.Errorf("appointments left = %d, want 1", m.Appointments().Len())
	}
	if _, _, err := m.DeletePatient(alice); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("second delete err = %v, want ErrPatientNotFound", err)
	}
}

func TestModel_AppointmentFilters(t *testing.T) {
	m := New()
	alice := m.AddPatient(newPatient(t, "Alice"))
	bob := m.AddPatient(newPatient(t, "Bob"))
	m.AddAppointment(newAppt(t, alice, "Pfizer", 1))
	m.AddAppointment(newAppt(t, bob, "Moderna", 2))
	m.AddAppointment(newAppt(t, bob, "Pfizer", 3))

	if got := len(m.FilteredAppointments()); got != 3 {
		t.Fatalf("unfiltered = %d, want 3", got)
	}

	kw, _ := vaccination.NewGroupName("pfizer")
	m.SetAppointmentFilters([]appointment.Predicate{
		appointment.IndexPredicate{Index: bob},
		appointment.VaccineContainsKeywordsPredicate{Keyword: kw},
	})
	got := m.FilteredAppointments()
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("filtered = %+v, want only id 2", got)
	}

	m.ResetFilters()
	if len(m.FilteredAppointments()) != 3 {
		t.Error("ResetFilters should show every appointment")
	}
}

func TestModel_PatientFilters(t *testing.T) {
	m := New()
	m.AddPatient(newPatient(t, "Alice Tan"))
	m.AddPatient(newPatient(t, "Bob Lee"))

	m.SetPatientFilters(patient.NameContainsKeywordsPredicate{Keywords: []string{"lee"}})
	got := m.FilteredPatients()
	if len(got) != 1 || got[0].Value.Name.String() != "Bob Lee" {
		t.Errorf("filtered = %+v", got)
	}
}

func TestModel_DeleteVaxTypeInUse(t *testing.T) {
	m := New()
	if err := m.AddVaxType(newVaxType(t, "Pfizer")); err != nil {
		t.Fatal(err)
	}
	alice := m.AddPatient(newPatient(t, "Alice"))
	m.AddAppointment(newAppt(t, alice, "Pfizer", 1))

	if _, err := m.DeleteVaxType("Pfizer"); !errors.Is(err, ErrVaxTypeInUse) {
		t.Errorf("err = %v, want ErrVaxTypeInUse", err)
	}
	if _, err := m.DeleteAppointment(index.FromZeroBased(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := m.DeleteVaxType("Pfizer"); err != nil {
		t.Errorf("delete after appointment removal: %v", err)
	}
}

func TestModel_Equal(t *testing.T) {
	a, b := New(), New()
	a.AddPatient(newPatient(t, "Alice"))
	b.AddPatient(newPatient(t, "Alice"))
	if !a.Equal(b) {
		t.Error("expected models to be equal")
	}
	b.SetPatientFilters(patient.NameContainsKeywordsPredicate{Keywords: []string{"x"}})
	if !a.Equal(b) {
		t.Error("filters must not affect equality")
	}
	_ = b.Keywords().Add("patient", "pat")
	if a.Equal(b) {
		t.Error("expected models with different keywords to differ")
	}
}
