package appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/pkg/index"
)

// TimeLayout is the persisted and displayed form of appointment times.
const TimeLayout = "2006-01-02T15:04"

var ErrStartAfterEnd = errors.New("appointment start time must not be after its end time")

// Appointment is a scheduled vaccination for one patient.
type Appointment struct {
	patient   index.Index
	start     time.Time
	end       time.Time
	vaccine   vaccination.GroupName
	completed bool
}

// New builds an appointment, enforcing start <= end. Times are kept in UTC.
func New(patient index.Index, start, end time.Time, vaccine vaccination.GroupName, completed bool) (Appointment, error) {
	if start.After(end) {
		return Appointment{}, fmt.Errorf("%w: %s > %s", ErrStartAfterEnd, start.Format(TimeLayout), end.Format(TimeLayout))
	}
	return Appointment{
		patient:   patient,
		start:     start.UTC().Round(0),
		end:       end.UTC().Round(0),
		vaccine:   vaccine,
		completed: completed,
	}, nil
}

func (a Appointment) Patient() index.Index           { return a.patient }
func (a Appointment) Start() time.Time               { return a.start }
func (a Appointment) End() time.Time                 { return a.end }
func (a Appointment) Vaccine() vaccination.GroupName { return a.vaccine }
func (a Appointment) IsCompleted() bool              { return a.completed }

// WithCompleted returns a copy with the completion flag set to done.
func (a Appointment) WithCompleted(done bool) Appointment {
	a.completed = done
	return a
}

// Equal compares every field.
func (a Appointment) Equal(o Appointment) bool {
	return a.patient == o.patient &&
		a.start.Equal(o.start) &&
		a.end.Equal(o.end) &&
		a.vaccine.Equal(o.vaccine) &&
		a.completed == o.completed
}

// Overlaps reports whether both appointments belong to the same patient and
// their time ranges intersect.
func (a Appointment) Overlaps(o Appointment) bool {
	return a.patient == o.patient && !a.start.After(o.end) && !o.start.After(a.end)
}

func (a Appointment) String() string {
	status := "pending"
	if a.completed {
		status = "completed"
	}
	return fmt.Sprintf("Patient #%s; %s; %s to %s; %s",
		a.patient, a.vaccine, a.start.Format(TimeLayout), a.end.Format(TimeLayout), status)
}
