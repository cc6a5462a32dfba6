package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/pkg/index"
)

const (
	MessageInvalidIndex    = "Index is not a non-zero unsigned integer."
	MessageInvalidPage     = "Page is not a non-zero unsigned integer."
	MessageInvalidDate     = "Date is of an invalid format"
	MessageInvalidBool     = "Completion status should be true or false"
	MessageDuplicateFields = "Multiple values specified for the following single-valued field(s): "
)

const (
	dateTimeLayout = "2006-01-02T15:04"
	spacedLayout   = "2006-1-2 1504"
)

var (
	digitsRegex   = regexp.MustCompile(`^\d+$`)
	dateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`)
	spacedRegex   = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2} \d{4}$`)
	dateOnlyRegex = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
)

// ParseIndex reads a 1-based index: digits only, greater than zero.
func ParseIndex(s string) (index.Index, error) {
	s = strings.TrimSpace(s)
	if !digitsRegex.MatchString(s) {
		return index.Index{}, newParseError(MessageInvalidIndex)
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n <= 0 {
		return index.Index{}, newParseError(MessageInvalidIndex)
	}
	return index.FromOneBased(int(n)), nil
}

// ParsePage reads an optional 1-based page number; blank means the first page.
func ParsePage(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	if !digitsRegex.MatchString(s) {
		return 0, newParseError(MessageInvalidPage)
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n <= 0 {
		return 0, newParseError(MessageInvalidPage)
	}
	return int(n), nil
}

// ParseDate accepts, in order, 2006-01-02T15:04, 2006-1-2 1504 and a bare
// 2006-1-2 (midnight). Times are UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var (
		t   time.Time
		err error
	)
	switch {
	case dateTimeRegex.MatchString(s):
		t, err = time.Parse(dateTimeLayout, s)
	case spacedRegex.MatchString(s):
		t, err = time.Parse(spacedLayout, s)
	case dateOnlyRegex.MatchString(s):
		t, err = time.Parse(spacedLayout, s+" 0000")
	default:
		return time.Time{}, newParseError(MessageInvalidDate)
	}
	if err != nil {
		return time.Time{}, &ParseError{Message: MessageInvalidDate, Err: err}
	}
	return t, nil
}

func ParseName(s string) (patient.Name, error) {
	n, err := patient.NewName(strings.TrimSpace(s))
	if err != nil {
		return patient.Name{}, wrap(err)
	}
	return n, nil
}

func ParsePhone(s string) (patient.Phone, error) {
	p, err := patient.NewPhone(strings.TrimSpace(s))
	if err != nil {
		return patient.Phone{}, wrap(err)
	}
	return p, nil
}

// ParseDob accepts any ParseDate format; the time of day is dropped.
func ParseDob(s string) (patient.Dob, error) {
	t, err := ParseDate(s)
	if err != nil {
		return patient.Dob{}, err
	}
	d, err := patient.NewDob(t)
	if err != nil {
		return patient.Dob{}, wrap(err)
	}
	return d, nil
}

func ParseBloodType(s string) (patient.BloodType, error) {
	b, err := patient.NewBloodType(strings.TrimSpace(s))
	if err != nil {
		return patient.BloodType{}, wrap(err)
	}
	return b, nil
}

func ParseAllergy(s string) (patient.Allergy, error) {
	a, err := patient.NewAllergy(strings.TrimSpace(s))
	if err != nil {
		return patient.Allergy{}, wrap(err)
	}
	return a, nil
}

func ParseVaccine(s string) (patient.Vaccine, error) {
	v, err := patient.NewVaccine(strings.TrimSpace(s))
	if err != nil {
		return patient.Vaccine{}, wrap(err)
	}
	return v, nil
}

func ParseGroupName(s string) (vaccination.GroupName, error) {
	g, err := vaccination.NewGroupName(strings.TrimSpace(s))
	if err != nil {
		return vaccination.GroupName{}, wrap(err)
	}
	return g, nil
}

func ParseVaxName(s string) (vaccination.VaxName, error) {
	n, err := vaccination.NewVaxName(strings.TrimSpace(s))
	if err != nil {
		return vaccination.VaxName{}, wrap(err)
	}
	return n, nil
}

func ParseIngredient(s string) (vaccination.Ingredient, error) {
	in, err := vaccination.NewIngredient(strings.TrimSpace(s))
	if err != nil {
		return vaccination.Ingredient{}, wrap(err)
	}
	return in, nil
}

// ParseAge reads a whole number of years within the accepted age bounds.
func ParseAge(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !digitsRegex.MatchString(s) {
		return 0, newParseError(vaccination.AgeConstraints)
	}
	n, err := strconv.Atoi(s)
	if err != nil || !vaccination.IsValidAge(n) {
		return 0, newParseError(vaccination.AgeConstraints)
	}
	return n, nil
}

// ParseBool accepts true or false in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, newParseError(MessageInvalidBool)
}

func ParseAllergies(values []string) ([]patient.Allergy, error) {
	return parseAll(values, ParseAllergy)
}

func ParseVaccines(values []string) ([]patient.Vaccine, error) {
	return parseAll(values, ParseVaccine)
}

func ParseGroupNames(values []string) ([]vaccination.GroupName, error) {
	return parseAll(values, ParseGroupName)
}

func ParseIngredients(values []string) ([]vaccination.Ingredient, error) {
	return parseAll(values, ParseIngredient)
}

// parseAll parses each value; the first failure aborts the whole list.
func parseAll[T any](values []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(values))
	for _, v := range values {
		item, err := parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// clearsSet reports whether a repeatable field was given once with no value,
// which empties the set on edit.
func clearsSet(values []string) bool {
	return len(values) == 1 && strings.TrimSpace(values[0]) == ""
}
