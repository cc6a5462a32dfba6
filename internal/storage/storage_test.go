package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/pkg/index"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	dir := t.TempDir()
	return New(Paths{
		Patients:     filepath.Join(dir, "data", "patients.json"),
		Appointments: filepath.Join(dir, "data", "appointments.json"),
		Vaccinations: filepath.Join(dir, "data", "vaccinations.json"),
		Keywords:     filepath.Join(dir, "data", "keywords.json"),
	}, zerolog.Nop())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func sampleModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New()

	vaxName, _ := vaccination.NewVaxName("Pfizer")
	group, _ := vaccination.NewGroupName("mRNA")
	ingredient, _ := vaccination.NewIngredient("ALC-0315")
	vt, err := vaccination.NewVaxType(vaxName, []vaccination.GroupName{group}, 5, 90, []vaccination.Ingredient{ingredient})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddVaxType(vt); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"Alice", "Bob Tan", "Carol"} {
		n, _ := patient.NewName(name)
		phone, _ := patient.NewPhone("91234567")
		dob, _ := patient.NewDob(time.Date(1980, 2, 29, 0, 0, 0, 0, time.UTC))
		bt, _ := patient.NewBloodType("AB-")
		allergy, _ := patient.NewAllergy("nuts")
		m.AddPatient(patient.New(n, phone, dob, bt, []patient.Allergy{allergy}, nil, nil))
	}
	// leave a gap in the ids
	if _, _, err := m.DeletePatient(index.FromOneBased(2)); err != nil {
		t.Fatal(err)
	}

	taken := time.Date(2023, 11, 4, 9, 30, 0, 0, time.UTC)
	key, err := vaccination.NewVaxRecordKey(vaxName, taken)
	if err != nil {
		t.Fatal(err)
	}
	alice, _ := m.Patient(index.FromOneBased(1))
	if err := m.SetPatient(index.FromOneBased(1), alice.WithVaxRecord(key)); err != nil {
		t.Fatal(err)
	}

	vaccine, _ := vaccination.NewGroupName("Pfizer")
	start := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	a, err := appointment.New(index.FromOneBased(3), start, start.Add(time.Hour), vaccine, true)
	if err != nil {
		t.Fatal(err)
	}
	m.AddAppointment(a)

	if err := m.Keywords().Add("patient", "pa"); err != nil {
		t.Fatal(err)
	}
	if err := m.Keywords().Add("appointment", "appt"); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestStorage_RoundTrip(t *testing.T) {
	s := testStorage(t)
	want := sampleModel(t)
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip mismatch:\n%s", cmp.Diff(want.Patients().Entries(), got.Patients().Entries()))
	}
	if got.Patients().NextID() != want.Patients().NextID() {
		t.Errorf("next id = %d, want %d", got.Patients().NextID(), want.Patients().NextID())
	}

	// saving again must not leave temp files behind
	if err := s.Save(got); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Dir(s.Paths().Patients))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	wantNames := []string{"appointments.json", "keywords.json", "patients.json", "vaccinations.json"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("data dir mismatch (-want +got):\n%s", diff)
	}
}

func TestStorage_MissingFilesLoadEmpty(t *testing.T) {
	s := testStorage(t)
	m, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(model.New()) {
		t.Error("expected an empty model")
	}

	err = readJSON(s.Paths().Patients, &jsonPatients{})
	if !errors.Is(err, ErrIO) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrIO wrapping fs.ErrNotExist, got %v", err)
	}
}

func TestStorage_DuplicatePatientID(t *testing.T) {
	s := testStorage(t)
	writeFile(t, s.Paths().Patients, `{"patients":[
		{"id":0,"name":"Alice","phone":"123","dob":"1990-01-01","bloodType":"A+","allergies":[],"vaccines":[],"vaxRecords":[]},
		{"id":0,"name":"Bob","phone":"456","dob":"1991-01-01","bloodType":"B+","allergies":[],"vaccines":[],"vaxRecords":[]}
	]}`)

	_, err := s.Load()
	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if dup.ID != "0" {
		t.Errorf("duplicate id = %q", dup.ID)
	}
}

func TestStorage_DuplicateVaxRecord(t *testing.T) {
	s := testStorage(t)
	writeFile(t, s.Paths().Patients, `{"patients":[
		{"id":0,"name":"Alice","phone":"123","dob":"1990-01-01","bloodType":"A+","allergies":[],"vaccines":[],
		 "vaxRecords":[{"name":"Pfizer","timeTaken":"2023-01-01T10:00"},{"name":"Pfizer","timeTaken":"2023-01-01T10:00"}]}
	]}`)
	var dup *DuplicateIDError
	if _, err := s.Load(); !errors.As(err, &dup) {
		t.Errorf("expected DuplicateIDError, got %v", err)
	}
}

func TestStorage_IllegalValues(t *testing.T) {
	tests := []struct {
		name  string
		file  func(Paths) string
		body  string
		field string
	}{
		{
			name:  "blood type",
			file:  func(p Paths) string { return p.Patients },
			body:  `{"patients":[{"id":0,"name":"Alice","phone":"123","dob":"1990-01-01","bloodType":"Z","allergies":[],"vaccines":[],"vaxRecords":[]}]}`,
			field: "patient 0 bloodType",
		},
		{
			name:  "unknown patient",
			file:  func(p Paths) string { return p.Appointments },
			body:  `{"appointments":[{"id":0,"patientId":4,"start":"2024-01-01T10:00","end":"2024-01-01T11:00","vaccine":"Pfizer","isCompleted":false}]}`,
			field: "appointment 0 patientId",
		},
		{
			name:  "inverted age range",
			file:  func(p Paths) string { return p.Vaccinations },
			body:  `{"types":[{"name":"Pfizer","groups":[],"minAge":50,"maxAge":10,"ingredients":[]}]}`,
			field: "age",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStorage(t)
			writeFile(t, tt.file(s.Paths()), tt.body)
			_, err := s.Load()
			var ive *IllegalValueError
			if !errors.As(err, &ive) {
				t.Fatalf("expected IllegalValueError, got %v", err)
			}
			if ive.Field != tt.field {
				t.Errorf("field = %q, want %q", ive.Field, tt.field)
			}
		})
	}
}

func TestStorage_AppointmentStartAfterEnd(t *testing.T) {
	s := testStorage(t)
	writeFile(t, s.Paths().Vaccinations, `{"types":[{"name":"Pfizer","groups":[],"minAge":0,"maxAge":200,"ingredients":[]}]}`)
	writeFile(t, s.Paths().Patients, `{"patients":[{"id":0,"name":"Alice","phone":"123","dob":"1990-01-01","bloodType":"A+","allergies":[],"vaccines":[],"vaxRecords":[]}]}`)
	writeFile(t, s.Paths().Appointments, `{"appointments":[{"id":0,"patientId":0,"start":"2024-01-01T12:00","end":"2024-01-01T11:00","vaccine":"Pfizer","isCompleted":false}]}`)

	_, err := s.Load()
	if !errors.Is(err, appointment.ErrStartAfterEnd) {
		t.Errorf("expected ErrStartAfterEnd, got %v", err)
	}
	var ive *IllegalValueError
	if !errors.As(err, &ive) {
		t.Errorf("expected IllegalValueError, got %T", err)
	}
}

func TestStorage_MalformedAndKeywordFailuresAreIO(t *testing.T) {
	s := testStorage(t)
	writeFile(t, s.Paths().Patients, `{"patients":[`)
	if _, err := s.Load(); !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO for malformed json, got %v", err)
	}

	s = testStorage(t)
	writeFile(t, s.Paths().Keywords, `{"keywords":{"patient":["two words"]}}`)
	if _, err := s.Load(); !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO for invalid keyword, got %v", err)
	}
}

func TestStorage_KeywordDocumentValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid", `{"keywords":{"patient":["pt","pa"],"appointment":["appt"]}}`, false},
		{"unknown category", `{"keywords":{"patient":["pt"],"bogus":["zz"]}}`, true},
		{"keyword is a later category", `{"keywords":{"appointment":["patient"],"patient":["pt"]}}`, true},
		{"keyword is an absent main word", `{"keywords":{"patient":["vaccination"]}}`, true},
		{"keyword is help", `{"keywords":{"keyword":["help"]}}`, true},
		{"keyword under two categories", `{"keywords":{"patient":["p"],"appointment":["p"]}}`, true},
		{"everything wrong", `{"keywords":{"patient":["pt"],"appointment":["patient"],"bogus":["zz"]}}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStorage(t)
			writeFile(t, s.Paths().Keywords, tt.doc)
			// Map order varies between runs; the verdict must not.
			for range 50 {
				_, err := s.LoadKeywords()
				if gotErr := err != nil; gotErr != tt.wantErr {
					t.Fatalf("LoadKeywords() error = %v, wantErr %v", err, tt.wantErr)
				}
				if err != nil && !errors.Is(err, ErrIO) {
					t.Fatalf("expected ErrIO, got %v", err)
				}
			}
		})
	}
}

func TestStorage_SavedFilesAreWorldReadable(t *testing.T) {
	s := testStorage(t)
	if err := s.Save(sampleModel(t)); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Dir(s.Paths().Patients))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			t.Fatal(err)
		}
		if got := info.Mode().Perm(); got != 0o644 {
			t.Errorf("%s mode = %v, want %v", e.Name(), got, fs.FileMode(0o644))
		}
	}
}
