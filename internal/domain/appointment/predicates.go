package appointment

import (
	"strings"
	"time"

	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/pkg/index"
)

// Predicate is a pure test over an appointment.
type Predicate interface {
	Test(Appointment) bool
}

// IndexPredicate matches appointments of one patient.
type IndexPredicate struct {
	Index index.Index
}

func (p IndexPredicate) Test(a Appointment) bool {
	return a.patient == p.Index
}

// StartTimePredicate matches appointments starting at or after Start.
type StartTimePredicate struct {
	Start time.Time
}

func (p StartTimePredicate) Test(a Appointment) bool {
	return !a.start.Before(p.Start)
}

func (p StartTimePredicate) Equal(o StartTimePredicate) bool {
	return p.Start.Equal(o.Start)
}

// EndTimePredicate matches appointments ending at or before End.
type EndTimePredicate struct {
	End time.Time
}

func (p EndTimePredicate) Test(a Appointment) bool {
	return !a.end.After(p.End)
}

func (p EndTimePredicate) Equal(o EndTimePredicate) bool {
	return p.End.Equal(o.End)
}

// VaccineContainsKeywordsPredicate matches appointments whose vaccine name
// contains the keyword, ignoring case.
type VaccineContainsKeywordsPredicate struct {
	Keyword vaccination.GroupName
}

func (p VaccineContainsKeywordsPredicate) Test(a Appointment) bool {
	return strings.Contains(strings.ToLower(a.vaccine.String()), strings.ToLower(p.Keyword.String()))
}

// CompletionPredicate matches appointments by completion status.
type CompletionPredicate struct {
	Completed bool
}

func (p CompletionPredicate) Test(a Appointment) bool {
	return a.completed == p.Completed
}

// All combines predicates by conjunction. No predicates match everything.
func All(preds ...Predicate) func(Appointment) bool {
	return func(a Appointment) bool {
		for _, pred := range preds {
			if !pred.Test(a) {
				return false
			}
		}
		return true
	}
}
