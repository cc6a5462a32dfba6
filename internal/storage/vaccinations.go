package storage

import (
	"github.com/vms/vms/internal/domain/vaccination"
)

const vaccinationsFile = "vaccinations"

type jsonVaxType struct {
	Name        string   `json:"name"`
	Groups      []string `json:"groups"`
	MinAge      int      `json:"minAge"`
	MaxAge      int      `json:"maxAge"`
	Ingredients []string `json:"ingredients"`
}

type jsonVaccinations struct {
	Types []jsonVaxType `json:"types"`
}

func newJSONVaccinations(m *vaccination.Manager) jsonVaccinations {
	doc := jsonVaccinations{Types: []jsonVaxType{}}
	for _, v := range m.All() {
		doc.Types = append(doc.Types, jsonVaxType{
			Name:        v.Name.String(),
			Groups:      stringsOf(v.Groups),
			MinAge:      v.MinAge,
			MaxAge:      v.MaxAge,
			Ingredients: stringsOf(v.Ingredients),
		})
	}
	return doc
}

func (j jsonVaxType) toModelType() (vaccination.VaxType, error) {
	name, err := vaccination.NewVaxName(j.Name)
	if err != nil {
		return vaccination.VaxType{}, illegal(vaccinationsFile, "name", err)
	}
	groups := make([]vaccination.GroupName, 0, len(j.Groups))
	for _, s := range j.Groups {
		g, err := vaccination.NewGroupName(s)
		if err != nil {
			return vaccination.VaxType{}, illegal(vaccinationsFile, "groups", err)
		}
		groups = append(groups, g)
	}
	ingredients := make([]vaccination.Ingredient, 0, len(j.Ingredients))
	for _, s := range j.Ingredients {
		in, err := vaccination.NewIngredient(s)
		if err != nil {
			return vaccination.VaxType{}, illegal(vaccinationsFile, "ingredients", err)
		}
		ingredients = append(ingredients, in)
	}
	v, err := vaccination.NewVaxType(name, groups, j.MinAge, j.MaxAge, ingredients)
	if err != nil {
		return vaccination.VaxType{}, illegal(vaccinationsFile, "age", err)
	}
	return v, nil
}

func (j jsonVaccinations) toModelType() (*vaccination.Manager, error) {
	m := vaccination.NewManager()
	for _, jv := range j.Types {
		v, err := jv.toModelType()
		if err != nil {
			return nil, err
		}
		if m.Contains(v.Name.String()) {
			return nil, &DuplicateIDError{File: vaccinationsFile, ID: v.Name.String()}
		}
		if err := m.Add(v); err != nil {
			return nil, illegal(vaccinationsFile, "name", err)
		}
	}
	return m, nil
}
