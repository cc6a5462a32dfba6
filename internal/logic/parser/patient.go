package parser

import (
	"strings"

	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/logic/command"
)

var patientPrefixes = []Prefix{PrefixName, PrefixPhone, PrefixDob, PrefixBloodType, PrefixAllergy, PrefixVaccine}

func parseAddPatient(args string) (command.Command, error) {
	m := Tokenize(args, patientPrefixes...)
	if !m.HasAll(PrefixName, PrefixPhone, PrefixDob, PrefixBloodType) || m.Preamble() != "" {
		return nil, invalidFormat(command.UsageAddPatient)
	}
	if err := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixDob, PrefixBloodType); err != nil {
		return nil, err
	}
	v, _ := m.Value(PrefixName)
	name, err := ParseName(v)
	if err != nil {
		return nil, err
	}
	v, _ = m.Value(PrefixPhone)
	phone, err := ParsePhone(v)
	if err != nil {
		return nil, err
	}
	v, _ = m.Value(PrefixDob)
	dob, err := ParseDob(v)
	if err != nil {
		return nil, err
	}
	v, _ = m.Value(PrefixBloodType)
	bt, err := ParseBloodType(v)
	if err != nil {
		return nil, err
	}
	allergies, err := ParseAllergies(m.All(PrefixAllergy))
	if err != nil {
		return nil, err
	}
	vaccines, err := ParseVaccines(m.All(PrefixVaccine))
	if err != nil {
		return nil, err
	}
	return command.AddPatientCommand{
		Patient: patient.New(name, phone, dob, bt, allergies, vaccines, nil),
	}, nil
}

func parseEditPatient(args string) (command.Command, error) {
	m := Tokenize(args, patientPrefixes...)
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(command.UsageEditPatient)
	}
	if err := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixDob, PrefixBloodType); err != nil {
		return nil, err
	}

	var d command.EditPatientDescriptor
	if v, ok := m.Value(PrefixName); ok {
		name, err := ParseName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if v, ok := m.Value(PrefixPhone); ok {
		phone, err := ParsePhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if v, ok := m.Value(PrefixDob); ok {
		dob, err := ParseDob(v)
		if err != nil {
			return nil, err
		}
		d.Dob = &dob
	}
	if v, ok := m.Value(PrefixBloodType); ok {
		bt, err := ParseBloodType(v)
		if err != nil {
			return nil, err
		}
		d.BloodType = &bt
	}
	if m.Has(PrefixAllergy) {
		allergies := []patient.Allergy{}
		if values := m.All(PrefixAllergy); !clearsSet(values) {
			if allergies, err = ParseAllergies(values); err != nil {
				return nil, err
			}
		}
		d.Allergies = &allergies
	}
	if m.Has(PrefixVaccine) {
		vaccines := []patient.Vaccine{}
		if values := m.All(PrefixVaccine); !clearsSet(values) {
			if vaccines, err = ParseVaccines(values); err != nil {
				return nil, err
			}
		}
		d.Vaccines = &vaccines
	}
	if !d.IsAnyFieldEdited() {
		return nil, newParseError(command.MessageNotEdited)
	}
	return command.EditPatientCommand{Index: idx, Descriptor: d}, nil
}

func parseDeletePatient(args string) (command.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.UsageDeletePatient)
	}
	return command.DeletePatientCommand{Index: idx}, nil
}

func parseFindPatient(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.UsageFindPatient)
	}
	return command.FindPatientCommand{
		Predicate: patient.NameContainsKeywordsPredicate{Keywords: keywords},
	}, nil
}

func (p *Parser) parseListPatients(args string) (command.Command, error) {
	page, err := p.parsePage(args, command.UsageListPatients)
	if err != nil {
		return nil, err
	}
	return command.ListPatientsCommand{Page: page}, nil
}
