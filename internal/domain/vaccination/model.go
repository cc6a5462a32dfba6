package vaccination

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/vms/vms/internal/platform/apperr"
)

const (
	MaxVaxNameLength = 30

	VaxNameConstraints = "Vaccination names should only contain alphanumeric characters, spaces, " +
		"'-', '(', ')' or '_', should not be blank and should be at most 30 characters long"
	GroupNameConstraints  = "Group names should not be blank"
	IngredientConstraints = "Ingredients should not be blank"
	AgeConstraints        = "Ages should be whole numbers between 0 and 200"
	AgeRangeConstraints   = "Minimum age should not be greater than maximum age"
)

var vaxNameRegex = regexp.MustCompile(`^[\p{L}\p{N} ()\-_]+$`)

// VaxName is the unique name of a vaccination type.
type VaxName struct {
	value string
}

// NewVaxName trims and validates name.
func NewVaxName(name string) (VaxName, error) {
	trimmed := strings.TrimSpace(name)
	if !IsValidVaxName(trimmed) {
		return VaxName{}, apperr.NewFormatError("vaccination name", name, VaxNameConstraints)
	}
	return VaxName{value: trimmed}, nil
}

// IsValidVaxName reports whether name is an acceptable vaccination name.
func IsValidVaxName(name string) bool {
	return name != "" && len([]rune(name)) <= MaxVaxNameLength && vaxNameRegex.MatchString(name)
}

func (n VaxName) String() string { return n.value }

func (n VaxName) Equal(o VaxName) bool { return n.value == o.value }

// GroupName names a vaccination group, e.g. "DOSE 1" or "COVID-19". Appointments
// reference vaccination types through a GroupName.
type GroupName struct {
	value string
}

// NewGroupName trims and validates name.
func NewGroupName(name string) (GroupName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return GroupName{}, apperr.NewFormatError("group name", name, GroupNameConstraints)
	}
	return GroupName{value: trimmed}, nil
}

func (g GroupName) String() string { return g.value }

func (g GroupName) Equal(o GroupName) bool { return g.value == o.value }

// Ingredient is a component of a vaccine a patient may be allergic to.
type Ingredient struct {
	value string
}

// NewIngredient trims and validates name.
func NewIngredient(name string) (Ingredient, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Ingredient{}, apperr.NewFormatError("ingredient", name, IngredientConstraints)
	}
	return Ingredient{value: trimmed}, nil
}

func (i Ingredient) String() string { return i.value }

func (i Ingredient) Equal(o Ingredient) bool { return i.value == o.value }

// VaxRecordKey identifies one historical vaccination event. Keys are
// normalised to UTC without a monotonic reading, so == and map lookups
// compare vaccine name and time taken exactly.
type VaxRecordKey struct {
	name      VaxName
	timeTaken time.Time
}

// NewVaxRecordKey builds a key. Both fields are required.
func NewVaxRecordKey(name VaxName, timeTaken time.Time) (VaxRecordKey, error) {
	if name.value == "" {
		return VaxRecordKey{}, fmt.Errorf("vax record key: vaccination name is required")
	}
	if timeTaken.IsZero() {
		return VaxRecordKey{}, fmt.Errorf("vax record key: time taken is required")
	}
	return VaxRecordKey{name: name, timeTaken: timeTaken.UTC().Round(0)}, nil
}

func (k VaxRecordKey) Name() VaxName { return k.name }

// VaxTypeKey returns the name of the vaccination type the record refers to.
func (k VaxRecordKey) VaxTypeKey() string { return k.name.value }

func (k VaxRecordKey) TimeTaken() time.Time { return k.timeTaken }

func (k VaxRecordKey) Equal(o VaxRecordKey) bool { return k == o }

func (k VaxRecordKey) String() string {
	return fmt.Sprintf("%s @ %s", k.name.value, k.timeTaken.Format("2006-01-02T15:04"))
}

// Compare orders keys by time taken, then by name.
func (k VaxRecordKey) Compare(o VaxRecordKey) int {
	if c := k.timeTaken.Compare(o.timeTaken); c != 0 {
		return c
	}
	return strings.Compare(k.name.value, o.name.value)
}

// Age bounds are inclusive. NoMinAge and NoMaxAge leave a side open.
const (
	NoMinAge = 0
	NoMaxAge = 200
)

// VaxType describes a vaccination that can be scheduled.
type VaxType struct {
	Name        VaxName
	Groups      []GroupName
	MinAge      int
	MaxAge      int
	Ingredients []Ingredient
}

// NewVaxType validates the age range and normalises the group and ingredient
// sets (deduplicated, sorted).
func NewVaxType(name VaxName, groups []GroupName, minAge, maxAge int, ingredients []Ingredient) (VaxType, error) {
	if name.value == "" {
		return VaxType{}, apperr.NewFormatError("vaccination name", "", VaxNameConstraints)
	}
	if !isValidAge(minAge) {
		return VaxType{}, apperr.NewFormatError("minimum age", fmt.Sprint(minAge), AgeConstraints)
	}
	if !isValidAge(maxAge) {
		return VaxType{}, apperr.NewFormatError("maximum age", fmt.Sprint(maxAge), AgeConstraints)
	}
	if minAge > maxAge {
		return VaxType{}, apperr.NewFormatError("age range", fmt.Sprintf("%d-%d", minAge, maxAge), AgeRangeConstraints)
	}
	return VaxType{
		Name:        name,
		Groups:      uniqueSorted(groups, func(g GroupName) string { return g.value }),
		MinAge:      minAge,
		MaxAge:      maxAge,
		Ingredients: uniqueSorted(ingredients, func(i Ingredient) string { return i.value }),
	}, nil
}

// IsValidAge reports whether age is within the accepted bounds.
func IsValidAge(age int) bool { return isValidAge(age) }

func isValidAge(age int) bool {
	return age >= NoMinAge && age <= NoMaxAge
}

// AllowsAge reports whether a patient of the given age may take the vaccine.
func (v VaxType) AllowsAge(age int) bool {
	return age >= v.MinAge && age <= v.MaxAge
}

// Equal compares two vaccination types field by field.
func (v VaxType) Equal(o VaxType) bool {
	return v.Name.Equal(o.Name) &&
		v.MinAge == o.MinAge && v.MaxAge == o.MaxAge &&
		slices.EqualFunc(v.Groups, o.Groups, GroupName.Equal) &&
		slices.EqualFunc(v.Ingredients, o.Ingredients, Ingredient.Equal)
}

func (v VaxType) String() string {
	var sb strings.Builder
	sb.WriteString(v.Name.value)
	if len(v.Groups) > 0 {
		sb.WriteString(" groups: ")
		sb.WriteString(joinStrings(v.Groups))
	}
	fmt.Fprintf(&sb, " age: %d-%d", v.MinAge, v.MaxAge)
	if len(v.Ingredients) > 0 {
		sb.WriteString(" ingredients: ")
		sb.WriteString(joinStrings(v.Ingredients))
	}
	return sb.String()
}

func joinStrings[T fmt.Stringer](items []T) string {
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
