package appointment

import (
	"testing"
	"time"

	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/pkg/index"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func mustAppt(t *testing.T, patient int, start, end time.Time, vaccine string, done bool) Appointment {
	t.Helper()
	g, err := vaccination.NewGroupName(vaccine)
	if err != nil {
		t.Fatal(err)
	}
	a, err := New(index.FromZeroBased(patient), start, end, g, done)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNew_StartAfterEnd(t *testing.T) {
	g, _ := vaccination.NewGroupName("Pfizer")
	if _, err := New(index.FromZeroBased(0), at(2, 10), at(1, 10), g, false); err == nil {
		t.Fatal("expected error when start is after end")
	}
	if _, err := New(index.FromZeroBased(0), at(2, 10), at(2, 10), g, false); err != nil {
		t.Fatalf("start == end should be accepted: %v", err)
	}
}

func TestIndexPredicate(t *testing.T) {
	a := mustAppt(t, 2, at(1, 9), at(1, 10), "Pfizer", false)
	if !(IndexPredicate{Index: index.FromOneBased(3)}).Test(a) {
		t.Error("expected match for the same patient")
	}
	if (IndexPredicate{Index: index.FromOneBased(1)}).Test(a) {
		t.Error("expected no match for another patient")
	}
}

func TestTimePredicates(t *testing.T) {
	a := mustAppt(t, 0, at(10, 9), at(10, 10), "Pfizer", false)

	tests := []struct {
		name string
		pred Predicate
		want bool
	}{
		{"start before appointment", StartTimePredicate{Start: at(9, 0)}, true},
		{"start equal to appointment", StartTimePredicate{Start: at(10, 9)}, true},
		{"start after appointment", StartTimePredicate{Start: at(10, 10)}, false},
		{"end after appointment", EndTimePredicate{End: at(11, 0)}, true},
		{"end equal to appointment", EndTimePredicate{End: at(10, 10)}, true},
		{"end before appointment", EndTimePredicate{End: at(10, 9)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred.Test(a); got != tt.want {
				t.Errorf("Test() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVaccineContainsKeywordsPredicate(t *testing.T) {
	a := mustAppt(t, 0, at(1, 9), at(1, 10), "Pfizer (Dose 1)", false)
	kw, _ := vaccination.NewGroupName("pfizer")
	if !(VaccineContainsKeywordsPredicate{Keyword: kw}).Test(a) {
		t.Error("expected case-insensitive substring match")
	}
	kw, _ = vaccination.NewGroupName("moderna")
	if (VaccineContainsKeywordsPredicate{Keyword: kw}).Test(a) {
		t.Error("expected no match")
	}
}

func TestAll(t *testing.T) {
	a := mustAppt(t, 0, at(1, 9), at(1, 10), "Pfizer", true)
	kw, _ := vaccination.NewGroupName("pfi")

	if !All()(a) {
		t.Error("empty conjunction should match")
	}
	if !All(IndexPredicate{Index: index.FromZeroBased(0)}, VaccineContainsKeywordsPredicate{Keyword: kw}, CompletionPredicate{Completed: true})(a) {
		t.Error("expected all predicates to match")
	}
	if All(IndexPredicate{Index: index.FromZeroBased(0)}, CompletionPredicate{Completed: false})(a) {
		t.Error("expected conjunction to fail when one predicate fails")
	}
}

func TestAppointment_Overlaps(t *testing.T) {
	a := mustAppt(t, 0, at(1, 9), at(1, 11), "Pfizer", false)
	b := mustAppt(t, 0, at(1, 10), at(1, 12), "Moderna", false)
	c := mustAppt(t, 1, at(1, 10), at(1, 12), "Moderna", false)
	if !a.Overlaps(b) {
		t.Error("expected overlap for the same patient")
	}
	if a.Overlaps(c) {
		t.Error("appointments of different patients never overlap")
	}
}

func TestAppointment_WithCompleted(t *testing.T) {
	a := mustAppt(t, 0, at(1, 9), at(1, 11), "Pfizer", false)
	done := a.WithCompleted(true)
	if !done.IsCompleted() || a.IsCompleted() {
		t.Error("WithCompleted should return a modified copy")
	}
	if a.Equal(done) {
		t.Error("appointments with different status should not be equal")
	}
}
