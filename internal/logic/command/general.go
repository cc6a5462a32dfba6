package command

import (
	"strings"

	"github.com/vms/vms/internal/model"
)

const MessageExit = "Exiting VMS..."

// HelpText is the full command reference shown by help.
var HelpText = strings.Join([]string{
	UsageAddPatient, UsageEditPatient, UsageDeletePatient, UsageFindPatient, UsageListPatients,
	UsageAddAppointment, UsageEditAppointment, UsageDeleteAppointment, UsageFindAppointment,
	UsageMarkAppointment, UsageUnmarkAppointment, UsageListAppointments,
	UsageAddVaxType, UsageDeleteVaxType, UsageFindVaxType, UsageListVaxTypes,
	UsageAddKeyword, UsageDeleteKeyword, UsageListKeywords,
	UsageHelp, UsageExit,
}, "\n\n")

type HelpCommand struct{}

func (HelpCommand) Execute(*model.Model) (Result, error) {
	return Result{Message: HelpText}, nil
}

type ExitCommand struct{}

func (ExitCommand) Execute(*model.Model) (Result, error) {
	return Result{Message: MessageExit, Exit: true}, nil
}
