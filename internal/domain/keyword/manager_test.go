package keyword

import (
	"errors"
	"slices"
	"testing"
)

func TestManager_AddResolve(t *testing.T) {
	m := NewManager()
	if err := m.Add("patient", "pat"); err != nil {
		t.Fatal(err)
	}
	if err := m.Add("patient", "p"); err != nil {
		t.Fatal(err)
	}
	if got, ok := m.Resolve("pat"); !ok || got != "patient" {
		t.Errorf("Resolve(pat) = %q, %v; want patient, true", got, ok)
	}
	if _, ok := m.Resolve("appt"); ok {
		t.Error("Resolve(appt) should fail")
	}
	if got := m.Keywords("patient"); !slices.Equal(got, []string{"p", "pat"}) {
		t.Errorf("Keywords = %v", got)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestManager_AddRejects(t *testing.T) {
	m := NewManager()
	_ = m.Add("patient", "pat")

	tests := []struct {
		name     string
		category string
		keyword  string
		want     error
	}{
		{"blank keyword", "patient", " ", ErrInvalidKeyword},
		{"keyword with space", "patient", "a b", ErrInvalidKeyword},
		{"blank category", "", "x", ErrInvalidCategory},
		{"keyword reused", "appointment", "pat", ErrKeywordTaken},
		{"keyword is a category", "appointment", "patient", ErrKeywordTaken},
		{"keyword equals own category", "vaccination", "vaccination", ErrKeywordTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.Add(tt.category, tt.keyword); !errors.Is(err, tt.want) {
				t.Errorf("Add(%q, %q) err = %v, want %v", tt.category, tt.keyword, err, tt.want)
			}
		})
	}
}

func TestManager_Remove(t *testing.T) {
	m := NewManager()
	_ = m.Add("patient", "pat")

	category, err := m.Remove("pat")
	if err != nil || category != "patient" {
		t.Fatalf("Remove(pat) = %q, %v", category, err)
	}
	if len(m.Categories()) != 0 {
		t.Errorf("empty category should be dropped, got %v", m.Categories())
	}
	if _, err := m.Remove("pat"); !errors.Is(err, ErrKeywordNotFound) {
		t.Errorf("second Remove err = %v, want ErrKeywordNotFound", err)
	}
}

func TestManager_Suggest(t *testing.T) {
	m := NewManager()
	_ = m.Add("patient", "pat")
	_ = m.Add("appointment", "appt")
	_ = m.Add("appointment", "pa")

	if got := m.Suggest("pa"); !slices.Equal(got, []string{"pa", "pat", "patient"}) {
		t.Errorf("Suggest(pa) = %v", got)
	}
	if got := m.Suggest("zz"); len(got) != 0 {
		t.Errorf("Suggest(zz) = %v, want empty", got)
	}
}

func TestManager_Equal(t *testing.T) {
	a, b := NewManager(), NewManager()
	_ = a.Add("patient", "pat")
	_ = b.Add("patient", "pat")
	if !a.Equal(b) {
		t.Error("expected managers to be equal")
	}
	_ = b.Add("patient", "p")
	if a.Equal(b) {
		t.Error("expected managers to differ")
	}
}
