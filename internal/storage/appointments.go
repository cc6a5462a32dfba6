package storage

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/registry"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/pkg/index"
)

const appointmentsFile = "appointments"

type jsonAppointment struct {
	ID          int    `json:"id"`
	PatientID   int    `json:"patientId"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Vaccine     string `json:"vaccine"`
	IsCompleted bool   `json:"isCompleted"`
}

type jsonAppointments struct {
	Appointments []jsonAppointment `json:"appointments"`
}

func newJSONAppointments(r *registry.Registry[appointment.Appointment]) jsonAppointments {
	doc := jsonAppointments{Appointments: []jsonAppointment{}}
	for _, e := range r.Entries() {
		a := e.Value
		doc.Appointments = append(doc.Appointments, jsonAppointment{
			ID:          e.ID,
			PatientID:   a.Patient().ZeroBased(),
			Start:       a.Start().Format(TimeLayout),
			End:         a.End().Format(TimeLayout),
			Vaccine:     a.Vaccine().String(),
			IsCompleted: a.IsCompleted(),
		})
	}
	return doc
}

// toModelType checks the record on its own and against the loaded patients
// and vaccination types.
func (j jsonAppointment) toModelType(
	patients *registry.Registry[patient.Patient],
	vaccinations *vaccination.Manager,
) (appointment.Appointment, error) {
	field := func(name string) string { return fmt.Sprintf("appointment %d %s", j.ID, name) }

	if j.PatientID < 0 || !patients.Contains(j.PatientID) {
		return appointment.Appointment{}, illegal(appointmentsFile, field("patientId"),
			fmt.Errorf("no patient with id %d", j.PatientID))
	}
	start, err := time.Parse(TimeLayout, j.Start)
	if err != nil {
		return appointment.Appointment{}, illegal(appointmentsFile, field("start"), err)
	}
	end, err := time.Parse(TimeLayout, j.End)
	if err != nil {
		return appointment.Appointment{}, illegal(appointmentsFile, field("end"), err)
	}
	vaccine, err := vaccination.NewGroupName(j.Vaccine)
	if err != nil {
		return appointment.Appointment{}, illegal(appointmentsFile, field("vaccine"), err)
	}
	if !vaccinations.Contains(vaccine.String()) {
		return appointment.Appointment{}, illegal(appointmentsFile, field("vaccine"),
			fmt.Errorf("%w: %s", vaccination.ErrVaxTypeNotFound, vaccine))
	}
	a, err := appointment.New(index.FromZeroBased(j.PatientID), start, end, vaccine, j.IsCompleted)
	if err != nil {
		return appointment.Appointment{}, illegal(appointmentsFile, field("time"), err)
	}
	return a, nil
}

func (j jsonAppointments) toModelType(
	patients *registry.Registry[patient.Patient],
	vaccinations *vaccination.Manager,
) (*registry.Registry[appointment.Appointment], error) {
	r := registry.New[appointment.Appointment]()
	for _, ja := range j.Appointments {
		a, err := ja.toModelType(patients, vaccinations)
		if err != nil {
			return nil, err
		}
		err = r.Put(ja.ID, a)
		switch {
		case errors.Is(err, registry.ErrDuplicateID):
			return nil, &DuplicateIDError{File: appointmentsFile, ID: strconv.Itoa(ja.ID)}
		case err != nil:
			return nil, illegal(appointmentsFile, fmt.Sprintf("appointment %d id", ja.ID), err)
		}
	}
	return r, nil
}
