// Package storage persists the model as four JSON documents: patients,
// appointments, vaccination types and keyword aliases.
package storage

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/keyword"
	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/registry"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/model"
)

// Paths locates the data files.
type Paths struct {
	Patients     string
	Appointments string
	Vaccinations string
	Keywords     string
}

// Storage loads and saves a model.
type Storage struct {
	paths  Paths
	logger zerolog.Logger
}

func New(paths Paths, logger zerolog.Logger) *Storage {
	return &Storage{paths: paths, logger: logger.With().Str("component", "storage").Logger()}
}

func (s *Storage) Paths() Paths { return s.paths }

// Load reads every document and builds a model. A missing file is an empty
// collection; any other failure aborts the load and no model is returned.
func (s *Storage) Load() (*model.Model, error) {
	vaccinations, err := s.LoadVaccinations()
	if err != nil {
		return nil, err
	}
	patients, err := s.LoadPatients()
	if err != nil {
		return nil, err
	}
	appointments, err := s.LoadAppointments(patients, vaccinations)
	if err != nil {
		return nil, err
	}
	keywords, err := s.LoadKeywords()
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Int("patients", patients.Len()).
		Int("appointments", appointments.Len()).
		Int("vaccinations", vaccinations.Len()).
		Int("keywords", keywords.Len()).
		Msg("model loaded")
	return model.From(patients, appointments, vaccinations, keywords), nil
}

func (s *Storage) LoadVaccinations() (*vaccination.Manager, error) {
	var doc jsonVaccinations
	ok, err := s.read(s.paths.Vaccinations, &doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return vaccination.NewManager(), nil
	}
	return doc.toModelType()
}

func (s *Storage) LoadPatients() (*registry.Registry[patient.Patient], error) {
	var doc jsonPatients
	ok, err := s.read(s.paths.Patients, &doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return registry.New[patient.Patient](), nil
	}
	return doc.toModelType()
}

// LoadAppointments resolves every appointment against the given patients and
// vaccination types.
func (s *Storage) LoadAppointments(
	patients *registry.Registry[patient.Patient],
	vaccinations *vaccination.Manager,
) (*registry.Registry[appointment.Appointment], error) {
	var doc jsonAppointments
	ok, err := s.read(s.paths.Appointments, &doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return registry.New[appointment.Appointment](), nil
	}
	return doc.toModelType(patients, vaccinations)
}

func (s *Storage) LoadKeywords() (*keyword.Manager, error) {
	var doc jsonKeywords
	ok, err := s.read(s.paths.Keywords, &doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return keyword.NewManager(), nil
	}
	return doc.toModelType(s.paths.Keywords)
}

// read decodes path into v. It reports false without error when the file
// does not exist.
func (s *Storage) read(path string, v any) (bool, error) {
	err := readJSON(path, v)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("path", path).Msg("data file missing, starting empty")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Save writes every document of m.
func (s *Storage) Save(m *model.Model) error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrIO)
	}
	docs := []struct {
		path string
		doc  any
	}{
		{s.paths.Vaccinations, newJSONVaccinations(m.Vaccinations())},
		{s.paths.Patients, newJSONPatients(m.Patients())},
		{s.paths.Appointments, newJSONAppointments(m.Appointments())},
		{s.paths.Keywords, newJSONKeywords(m.Keywords())},
	}
	for _, d := range docs {
		if err := writeJSON(d.path, d.doc); err != nil {
			return err
		}
		s.logger.Debug().Str("path", d.path).Msg("data file saved")
	}
	return nil
}

func stringsOf[T fmt.Stringer](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String())
	}
	return out
}
