package storage

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/registry"
	"github.com/vms/vms/internal/domain/vaccination"
)

const patientsFile = "patients"

// TimeLayout is the persisted form of timestamps.
const TimeLayout = "2006-01-02T15:04"

type jsonVaxRecord struct {
	Name      string `json:"name"`
	TimeTaken string `json:"timeTaken"`
}

type jsonPatient struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Dob        string          `json:"dob"`
	BloodType  string          `json:"bloodType"`
	Allergies  []string        `json:"allergies"`
	Vaccines   []string        `json:"vaccines"`
	VaxRecords []jsonVaxRecord `json:"vaxRecords"`
}

type jsonPatients struct {
	Patients []jsonPatient `json:"patients"`
}

func newJSONPatients(r *registry.Registry[patient.Patient]) jsonPatients {
	doc := jsonPatients{Patients: []jsonPatient{}}
	for _, e := range r.Entries() {
		p := e.Value
		records := make([]jsonVaxRecord, 0, len(p.VaxRecords))
		for _, k := range p.VaxRecords {
			records = append(records, jsonVaxRecord{Name: k.Name().String(), TimeTaken: k.TimeTaken().Format(TimeLayout)})
		}
		doc.Patients = append(doc.Patients, jsonPatient{
			ID:         e.ID,
			Name:       p.Name.String(),
			Phone:      p.Phone.String(),
			Dob:        p.Dob.String(),
			BloodType:  p.BloodType.String(),
			Allergies:  stringsOf(p.Allergies),
			Vaccines:   stringsOf(p.Vaccines),
			VaxRecords: records,
		})
	}
	return doc
}

func (j jsonPatient) toModelType() (patient.Patient, error) {
	field := func(name string) string { return fmt.Sprintf("patient %d %s", j.ID, name) }

	name, err := patient.NewName(j.Name)
	if err != nil {
		return patient.Patient{}, illegal(patientsFile, field("name"), err)
	}
	phone, err := patient.NewPhone(j.Phone)
	if err != nil {
		return patient.Patient{}, illegal(patientsFile, field("phone"), err)
	}
	dob, err := patient.ParseDob(j.Dob)
	if err != nil {
		return patient.Patient{}, illegal(patientsFile, field("dob"), err)
	}
	bt, err := patient.NewBloodType(j.BloodType)
	if err != nil {
		return patient.Patient{}, illegal(patientsFile, field("bloodType"), err)
	}
	allergies := make([]patient.Allergy, 0, len(j.Allergies))
	for _, s := range j.Allergies {
		a, err := patient.NewAllergy(s)
		if err != nil {
			return patient.Patient{}, illegal(patientsFile, field("allergies"), err)
		}
		allergies = append(allergies, a)
	}
	vaccines := make([]patient.Vaccine, 0, len(j.Vaccines))
	for _, s := range j.Vaccines {
		v, err := patient.NewVaccine(s)
		if err != nil {
			return patient.Patient{}, illegal(patientsFile, field("vaccines"), err)
		}
		vaccines = append(vaccines, v)
	}

	seen := make(map[vaccination.VaxRecordKey]bool, len(j.VaxRecords))
	records := make([]vaccination.VaxRecordKey, 0, len(j.VaxRecords))
	for _, jr := range j.VaxRecords {
		key, err := jr.toModelType()
		if err != nil {
			return patient.Patient{}, illegal(patientsFile, field("vaxRecords"), err)
		}
		if seen[key] {
			return patient.Patient{}, &DuplicateIDError{File: patientsFile, ID: fmt.Sprintf("%d/%s", j.ID, key)}
		}
		seen[key] = true
		records = append(records, key)
	}
	return patient.New(name, phone, dob, bt, allergies, vaccines, records), nil
}

func (j jsonVaxRecord) toModelType() (vaccination.VaxRecordKey, error) {
	name, err := vaccination.NewVaxName(j.Name)
	if err != nil {
		return vaccination.VaxRecordKey{}, err
	}
	taken, err := time.Parse(TimeLayout, j.TimeTaken)
	if err != nil {
		return vaccination.VaxRecordKey{}, fmt.Errorf("time taken %q: %w", j.TimeTaken, err)
	}
	return vaccination.NewVaxRecordKey(name, taken)
}

func (j jsonPatients) toModelType() (*registry.Registry[patient.Patient], error) {
	r := registry.New[patient.Patient]()
	for _, jp := range j.Patients {
		p, err := jp.toModelType()
		if err != nil {
			return nil, err
		}
		if r.Contains(jp.ID) {
			return nil, &DuplicateIDError{File: patientsFile, ID: strconv.Itoa(jp.ID)}
		}
		if err := r.Put(jp.ID, p); err != nil {
			return nil, illegal(patientsFile, fmt.Sprintf("patient %d id", jp.ID), err)
		}
	}
	return r, nil
}
