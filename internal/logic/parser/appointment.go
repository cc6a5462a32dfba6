package parser

import (
	"errors"

	"github.com/vms/vms/internal/domain/appointment"
	"github.com/vms/vms/internal/logic/command"
)

func parseAddAppointment(args string) (command.Command, error) {
	m := Tokenize(args, PrefixPatient, PrefixStart, PrefixEnd, PrefixVaccine)
	if !m.HasAll(PrefixPatient, PrefixStart, PrefixEnd, PrefixVaccine) || m.Preamble() != "" {
		return nil, invalidFormat(command.UsageAddAppointment)
	}
	if err := m.VerifyNoDuplicates(PrefixPatient, PrefixStart, PrefixEnd, PrefixVaccine); err != nil {
		return nil, err
	}
	v, _ := m.Value(PrefixPatient)
	idx, err := ParseIndex(v)
	if err != nil {
		return nil, err
	}
	v, _ = m.Value(PrefixStart)
	start, err := ParseDate(v)
	if err != nil {
		return nil, err
	}
	v, _ = m.Value(PrefixEnd)
	end, err := ParseDate(v)
	if err != nil {
		return nil, err
	}
	v, _ = m.Value(PrefixVaccine)
	vaccine, err := ParseGroupName(v)
	if err != nil {
		return nil, err
	}
	a, err := appointment.New(idx, start, end, vaccine, false)
	if err != nil {
		return nil, appointmentError(err)
	}
	return command.AddAppointmentCommand{Appointment: a}, nil
}

func appointmentError(err error) error {
	if errors.Is(err, appointment.ErrStartAfterEnd) {
		return &ParseError{Message: MessageStartAfterEnd, Err: err}
	}
	return wrap(err)
}

const MessageStartAfterEnd = "Appointment start time should not be after its end time"

func parseEditAppointment(args string) (command.Command, error) {
	m := Tokenize(args, PrefixPatient, PrefixStart, PrefixEnd, PrefixVaccine)
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(command.UsageEditAppointment)
	}
	if err := m.VerifyNoDuplicates(PrefixPatient, PrefixStart, PrefixEnd, PrefixVaccine); err != nil {
		return nil, err
	}

	var d command.EditAppointmentDescriptor
	if v, ok := m.Value(PrefixPatient); ok {
		p, err := ParseIndex(v)
		if err != nil {
			return nil, err
		}
		d.Patient = &p
	}
	if v, ok := m.Value(PrefixStart); ok {
		t, err := ParseDate(v)
		if err != nil {
			return nil, err
		}
		d.Start = &t
	}
	if v, ok := m.Value(PrefixEnd); ok {
		t, err := ParseDate(v)
		if err != nil {
			return nil, err
		}
		d.End = &t
	}
	if v, ok := m.Value(PrefixVaccine); ok {
		g, err := ParseGroupName(v)
		if err != nil {
			return nil, err
		}
		d.Vaccine = &g
	}
	if !d.IsAnyFieldEdited() {
		return nil, newParseError(command.MessageNotEdited)
	}
	if d.Start != nil && d.End != nil && d.Start.After(*d.End) {
		return nil, newParseError(MessageStartAfterEnd)
	}
	return command.EditAppointmentCommand{Index: idx, Descriptor: d}, nil
}

func parseDeleteAppointment(args string) (command.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.UsageDeleteAppointment)
	}
	return command.DeleteAppointmentCommand{Index: idx}, nil
}

func parseFindAppointment(args string) (command.Command, error) {
	m := Tokenize(args, PrefixPatient, PrefixStart, PrefixEnd, PrefixVaccine, PrefixCompleted)
	if m.Preamble() != "" {
		return nil, invalidFormat(command.UsageFindAppointment)
	}
	if err := m.VerifyNoDuplicates(PrefixPatient, PrefixStart, PrefixEnd, PrefixVaccine, PrefixCompleted); err != nil {
		return nil, err
	}

	var d command.FindAppointmentDescriptor
	if v, ok := m.Value(PrefixPatient); ok {
		p, err := ParseIndex(v)
		if err != nil {
			return nil, err
		}
		d.Patient = &p
	}
	if v, ok := m.Value(PrefixStart); ok {
		t, err := ParseDate(v)
		if err != nil {
			return nil, err
		}
		d.StartTime = &t
	}
	if v, ok := m.Value(PrefixEnd); ok {
		t, err := ParseDate(v)
		if err != nil {
			return nil, err
		}
		d.EndTime = &t
	}
	if v, ok := m.Value(PrefixVaccine); ok {
		g, err := ParseGroupName(v)
		if err != nil {
			return nil, err
		}
		d.Vaccine = &g
	}
	if v, ok := m.Value(PrefixCompleted); ok {
		done, err := ParseBool(v)
		if err != nil {
			return nil, err
		}
		d.Completed = &done
	}
	if !d.IsAnyFieldSet() {
		return nil, newParseError(command.MessageNoFindField)
	}
	return command.NewFindAppointmentCommand(d), nil
}

func parseMarkAppointment(args string, completed bool) (command.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		usage := command.UsageMarkAppointment
		if !completed {
			usage = command.UsageUnmarkAppointment
		}
		return nil, invalidFormat(usage)
	}
	return command.MarkAppointmentCommand{Index: idx, Completed: completed}, nil
}

func (p *Parser) parseListAppointments(args string) (command.Command, error) {
	page, err := p.parsePage(args, command.UsageListAppointments)
	if err != nil {
		return nil, err
	}
	return command.ListAppointmentsCommand{Page: page}, nil
}
