package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/domain/keyword"
	"github.com/vms/vms/internal/domain/patient"
	"github.com/vms/vms/internal/domain/vaccination"
	"github.com/vms/vms/internal/logic/command"
	"github.com/vms/vms/pkg/index"
	"github.com/vms/vms/pkg/pagination"
)

func mustParse(t *testing.T, p *Parser, line string) command.Command {
	t.Helper()
	c, err := p.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return c
}

func TestParse_AddPatient(t *testing.T) {
	p := New(nil, 0)
	got := mustParse(t, p, "patient add --n John Doe --p 98765432 --d 1990-01-31 --b B+ --a catfur --v Pfizer")

	name, _ := patient.NewName("John Doe")
	phone, _ := patient.NewPhone("98765432")
	dob, _ := patient.NewDob(time.Date(1990, 1, 31, 0, 0, 0, 0, time.UTC))
	bt, _ := patient.NewBloodType("B+")
	allergy, _ := patient.NewAllergy("catfur")
	vaccine, _ := patient.NewVaccine("Pfizer")
	want := command.AddPatientCommand{
		Patient: patient.New(name, phone, dob, bt, []patient.Allergy{allergy}, []patient.Vaccine{vaccine}, nil),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EditPatientClearsSets(t *testing.T) {
	p := New(nil, 0)
	got := mustParse(t, p, "patient edit 2 --p 91234567 --a")

	phone, _ := patient.NewPhone("91234567")
	empty := []patient.Allergy{}
	want := command.EditPatientCommand{
		Index:      index.FromOneBased(2),
		Descriptor: command.EditPatientDescriptor{Phone: &phone, Allergies: &empty},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_AddAppointment(t *testing.T) {
	p := New(nil, 0)
	got := mustParse(t, p, "appointment add --p 1 --s 2024-03-05 0700 --e 2024-03-05T08:00 --v Pfizer")

	g, _ := vaccination.NewGroupName("Pfizer")
	a, _ := appointment.New(index.FromOneBased(1),
		time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC), time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), g, false)
	if diff := cmp.Diff(command.AddAppointmentCommand{Appointment: a}, got); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}

	_, err := p.Parse("appointment add --p 1 --s 2024-03-05 0900 --e 2024-03-05 0800 --v Pfizer")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Message != MessageStartAfterEnd {
		t.Errorf("expected start-after-end error, got %v", err)
	}
}

func TestParse_FindAppointment(t *testing.T) {
	p := New(nil, 0)
	got := mustParse(t, p, "appointment find --p 1 --v pfizer --s 2024-01-01 --c true")

	patientIdx := index.FromOneBased(1)
	vaccine, _ := vaccination.NewGroupName("pfizer")
	want := command.NewFindAppointmentCommand(command.FindAppointmentDescriptor{Patient: &patientIdx, Vaccine: &vaccine})
	find, ok := got.(*command.FindAppointmentCommand)
	if !ok {
		t.Fatalf("got %T", got)
	}
	if !want.Equal(find) {
		t.Error("expected equal find commands")
	}
	if len(find.Predicates()) != 4 {
		t.Errorf("expected 4 predicates, got %d", len(find.Predicates()))
	}

	_, err := p.Parse("appointment find")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Message != command.MessageNoFindField {
		t.Errorf("expected missing field error, got %v", err)
	}
	if _, err := p.Parse("appointment find --c maybe"); err == nil {
		t.Error("expected invalid completion status to fail")
	}
}

func TestParse_AddVaxType(t *testing.T) {
	p := New(nil, 0)
	got := mustParse(t, p, "vaccination add Pfizer (Dose 1) --g Pfizer --g DOSE 1 --min 5 --i ALC-0315")

	name, _ := vaccination.NewVaxName("Pfizer (Dose 1)")
	g1, _ := vaccination.NewGroupName("Pfizer")
	g2, _ := vaccination.NewGroupName("DOSE 1")
	in, _ := vaccination.NewIngredient("ALC-0315")
	vt, _ := vaccination.NewVaxType(name, []vaccination.GroupName{g1, g2}, 5, vaccination.NoMaxAge, []vaccination.Ingredient{in})
	if diff := cmp.Diff(command.AddVaxTypeCommand{VaxType: vt}, got); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}

	if _, err := p.Parse("vaccination add Pfizer --min 10 --max 5"); err == nil {
		t.Error("expected inverted age range to fail")
	}
}

func TestParse_ListPages(t *testing.T) {
	p := New(nil, 10)
	got := mustParse(t, p, "patient list 3")
	want := command.ListPatientsCommand{Page: pagination.Params{Limit: 10, Offset: 20}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
	if _, err := p.Parse("appointment list zero"); err == nil {
		t.Error("expected invalid page to fail")
	}
}

func TestParse_Aliases(t *testing.T) {
	kw := keyword.NewManager()
	if err := kw.Add(command.GroupPatient, "pa"); err != nil {
		t.Fatal(err)
	}
	p := New(kw, 0)
	got := mustParse(t, p, "pa delete 3")
	if diff := cmp.Diff(command.DeletePatientCommand{Index: index.FromOneBased(3)}, got); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
	if _, ok := mustParse(t, p, "PATIENT LIST").(command.ListPatientsCommand); !ok {
		t.Error("main words should match ignoring case")
	}
}

func TestParse_Errors(t *testing.T) {
	p := New(nil, 0)
	tests := []struct {
		line string
		want string
	}{
		{"", "Invalid command format!"},
		{"nurse add", command.MessageUnknownCommand},
		{"patient fly", command.MessageUnknownCommand},
		{"patient add --n John", "Invalid command format!"},
		{"patient add --n John --n Jane --p 123 --d 1990-01-01 --b A+", MessageDuplicateFields},
		{"patient delete 0", "Invalid command format!"},
		{"patient edit 1", command.MessageNotEdited},
		{"patient find", "Invalid command format!"},
		{"appointment mark abc", "Invalid command format!"},
		{"keyword add --m patient", "Invalid command format!"},
		{"keyword delete a b", "Invalid command format!"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := p.Parse(tt.line)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if !strings.Contains(pe.Message, tt.want) {
				t.Errorf("message %q does not contain %q", pe.Message, tt.want)
			}
		})
	}
}

func TestParse_GeneralCommands(t *testing.T) {
	p := New(nil, 0)
	if _, ok := mustParse(t, p, "help").(command.HelpCommand); !ok {
		t.Error("expected help")
	}
	if _, ok := mustParse(t, p, " exit ").(command.ExitCommand); !ok {
		t.Error("expected exit")
	}
	if _, ok := mustParse(t, p, "keyword add --m Appointment --k ap").(command.AddKeywordCommand); !ok {
		t.Error("expected keyword add")
	}
}
