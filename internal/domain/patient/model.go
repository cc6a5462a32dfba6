package patient

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/platform/apperr"
)

const (
	NameConstraints      = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints     = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	DobConstraints       = "Date of birth should be a valid date not in the future and not before 1900"
	BloodTypeConstraints = "Blood type should only be A+, A-, B+, B-, AB+, AB-, O+ or O-"
	AllergyConstraints   = "Allergy should not be blank"
	VaccineConstraints   = "Vaccine should not be blank"

	// DateLayout is the persisted form of a Dob.
	DateLayout = "2006-01-02"
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRegex = regexp.MustCompile(`^\d{3,}$`)

	validBloodTypes = map[string]bool{
		"A+": true, "A-": true, "B+": true, "B-": true,
		"AB+": true, "AB-": true, "O+": true, "O-": true,
	}

	minDob = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Name is a patient's full name.
type Name struct{ value string }

func NewName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidName(trimmed) {
		return Name{}, apperr.NewFormatError("name", s, NameConstraints)
	}
	return Name{value: trimmed}, nil
}

func IsValidName(s string) bool { return nameRegex.MatchString(s) }

func (n Name) String() string    { return n.value }
func (n Name) Equal(o Name) bool { return n.value == o.value }

// Phone is a contact number of at least three digits.
type Phone struct{ value string }

func NewPhone(s string) (Phone, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidPhone(trimmed) {
		return Phone{}, apperr.NewFormatError("phone", s, PhoneConstraints)
	}
	return Phone{value: trimmed}, nil
}

func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

func (p Phone) String() string     { return p.value }
func (p Phone) Equal(o Phone) bool { return p.value == o.value }

// Dob is a date of birth, stored as midnight UTC.
type Dob struct{ value time.Time }

// NewDob truncates t to its calendar date and checks it lies between
// 1900-01-01 and today.
func NewDob(t time.Time) (Dob, error) {
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if !IsValidDob(date) {
		return Dob{}, apperr.NewFormatError("date of birth", t.Format(DateLayout), DobConstraints)
	}
	return Dob{value: date}, nil
}

func IsValidDob(date time.Time) bool {
	return !date.Before(minDob) && !date.After(time.Now().UTC())
}

// ParseDob reads the persisted YYYY-MM-DD form.
func ParseDob(s string) (Dob, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Dob{}, apperr.NewFormatError("date of birth", s, DobConstraints)
	}
	return NewDob(t)
}

func (d Dob) Time() time.Time  { return d.value }
func (d Dob) String() string   { return d.value.Format(DateLayout) }
func (d Dob) Equal(o Dob) bool { return d.value.Equal(o.value) }

// AgeAt returns the age in whole years on the given date.
func (d Dob) AgeAt(at time.Time) int {
	years := at.Year() - d.value.Year()
	if at.Month() < d.value.Month() || (at.Month() == d.value.Month() && at.Day() < d.value.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// BloodType is one of the eight ABO/Rh groups.
type BloodType struct{ value string }

func NewBloodType(s string) (BloodType, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidBloodType(trimmed) {
		return BloodType{}, apperr.NewFormatError("blood type", s, BloodTypeConstraints)
	}
	return BloodType{value: trimmed}, nil
}

func IsValidBloodType(s string) bool { return validBloodTypes[s] }

func (b BloodType) String() string         { return b.value }
func (b BloodType) Equal(o BloodType) bool { return b.value == o.value }

// Allergy is a substance the patient reacts to.
type Allergy struct{ value string }

func NewAllergy(s string) (Allergy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Allergy{}, apperr.NewFormatError("allergy", s, AllergyConstraints)
	}
	return Allergy{value: trimmed}, nil
}

func (a Allergy) String() string       { return a.value }
func (a Allergy) Equal(o Allergy) bool { return a.value == o.value }

// Vaccine is the name of a vaccine the patient has received.
type Vaccine struct{ value string }

func NewVaccine(s string) (Vaccine, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Vaccine{}, apperr.NewFormatError("vaccine", s, VaccineConstraints)
	}
	return Vaccine{value: trimmed}, nil
}

func (v Vaccine) String() string       { return v.value }
func (v Vaccine) Equal(o Vaccine) bool { return v.value == o.value }

// Patient is a person tracked by the system. Allergies, Vaccines and
// VaxRecords are sets kept sorted and free of duplicates; build patients with
// New or With* helpers to preserve that.
type Patient struct {
	Name       Name
	Phone      Phone
	Dob        Dob
	BloodType  BloodType
	Allergies  []Allergy
	Vaccines   []Vaccine
	VaxRecords []vaccination.VaxRecordKey
}

// New builds a patient, normalising its sets.
func New(name Name, phone Phone, dob Dob, bloodType BloodType, allergies []Allergy, vaccines []Vaccine, records []vaccination.VaxRecordKey) Patient {
	return Patient{
		Name:       name,
		Phone:      phone,
		Dob:        dob,
		BloodType:  bloodType,
		Allergies:  uniqueSorted(allergies, Allergy.String),
		Vaccines:   uniqueSorted(vaccines, Vaccine.String),
		VaxRecords: sortedRecords(records),
	}
}

// WithVaxRecord returns a copy of p with the record and its vaccine added.
func (p Patient) WithVaxRecord(key vaccination.VaxRecordKey) Patient {
	vaccine := Vaccine{value: key.VaxTypeKey()}
	return New(p.Name, p.Phone, p.Dob, p.BloodType, p.Allergies,
		append(slices.Clone(p.Vaccines), vaccine),
		append(slices.Clone(p.VaxRecords), key))
}

// WithoutVaxRecord returns a copy of p without the record. The vaccine set is
// left untouched.
func (p Patient) WithoutVaxRecord(key vaccination.VaxRecordKey) Patient {
	records := slices.DeleteFunc(slices.Clone(p.VaxRecords), key.Equal)
	return New(p.Name, p.Phone, p.Dob, p.BloodType, p.Allergies, p.Vaccines, records)
}

// HasVaxRecord reports whether the record is part of the patient's history.
func (p Patient) HasVaxRecord(key vaccination.VaxRecordKey) bool {
	return slices.Contains(p.VaxRecords, key)
}

// IsAllergicToAny reports whether any ingredient matches an allergy,
// ignoring case.
func (p Patient) IsAllergicToAny(ingredients []vaccination.Ingredient) bool {
	for _, a := range p.Allergies {
		for _, in := range ingredients {
			if strings.EqualFold(a.value, in.String()) {
				return true
			}
		}
	}
	return false
}

// IsSamePatient reports whether o describes the same person: same name
// (ignoring case) and same date of birth.
func (p Patient) IsSamePatient(o Patient) bool {
	return strings.EqualFold(p.Name.value, o.Name.value) && p.Dob.Equal(o.Dob)
}

// Equal compares every field, including the sets.
func (p Patient) Equal(o Patient) bool {
	return p.Name.Equal(o.Name) &&
		p.Phone.Equal(o.Phone) &&
		p.Dob.Equal(o.Dob) &&
		p.BloodType.Equal(o.BloodType) &&
		slices.EqualFunc(p.Allergies, o.Allergies, Allergy.Equal) &&
		slices.EqualFunc(p.Vaccines, o.Vaccines, Vaccine.Equal) &&
		slices.Equal(p.VaxRecords, o.VaxRecords)
}

func (p Patient) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s; Phone: %s; Date of birth: %s; Blood type: %s", p.Name, p.Phone, p.Dob, p.BloodType)
	if len(p.Allergies) > 0 {
		sb.WriteString("; Allergies: ")
		sb.WriteString(join(p.Allergies))
	}
	if len(p.Vaccines) > 0 {
		sb.WriteString("; Vaccines: ")
		sb.WriteString(join(p.Vaccines))
	}
	return sb.String()
}

func join[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}

func uniqueSorted[T any](items []T, key func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b T) int { return strings.Compare(key(a), key(b)) })
	return out
}

func sortedRecords(records []vaccination.VaxRecordKey) []vaccination.VaxRecordKey {
	out := make([]vaccination.VaxRecordKey, 0, len(records))
	for _, r := range records {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, vaccination.VaxRecordKey.Compare)
	return out
}
