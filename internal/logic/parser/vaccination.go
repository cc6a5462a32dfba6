package parser

import (
	"strings"

	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/logic/command"
)

func parseAddVaxType(args string) (command.Command, error) {
	m := Tokenize(args, PrefixGroup, PrefixMinAge, PrefixMaxAge, PrefixIngredient)
	if m.Preamble() == "" {
		return nil, invalidFormat(command.UsageAddVaxType)
	}
	if err := m.VerifyNoDuplicates(PrefixMinAge, PrefixMaxAge); err != nil {
		return nil, err
	}
	name, err := ParseVaxName(m.Preamble())
	if err != nil {
		return nil, err
	}
	groups, err := ParseGroupNames(m.All(PrefixGroup))
	if err != nil {
		return nil, err
	}
	minAge, maxAge := vaccination.NoMinAge, vaccination.NoMaxAge
	if v, ok := m.Value(PrefixMinAge); ok {
		if minAge, err = ParseAge(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m.Value(PrefixMaxAge); ok {
		if maxAge, err = ParseAge(v); err != nil {
			return nil, err
		}
	}
	ingredients, err := ParseIngredients(m.All(PrefixIngredient))
	if err != nil {
		return nil, err
	}
	vt, err := vaccination.NewVaxType(name, groups, minAge, maxAge, ingredients)
	if err != nil {
		return nil, wrap(err)
	}
	return command.AddVaxTypeCommand{VaxType: vt}, nil
}

func parseDeleteVaxType(args string) (command.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(command.UsageDeleteVaxType)
	}
	name, err := ParseVaxName(args)
	if err != nil {
		return nil, err
	}
	return command.DeleteVaxTypeCommand{Name: name}, nil
}

func parseFindVaxType(args string) (command.Command, error) {
	kw := strings.TrimSpace(args)
	if kw == "" {
		return nil, invalidFormat(command.UsageFindVaxType)
	}
	return command.FindVaxTypeCommand{Keyword: kw}, nil
}

func (p *Parser) parseListVaxTypes(args string) (command.Command, error) {
	page, err := p.parsePage(args, command.UsageListVaxTypes)
	if err != nil {
		return nil, err
	}
	return command.ListVaxTypesCommand{Page: page}, nil
}
