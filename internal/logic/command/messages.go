package command

const (
	GroupPatient     = "patient"
	GroupAppointment = "appointment"
	GroupVaccination = "vaccination"
	GroupKeyword     = "keyword"

	WordAdd    = "add"
	WordEdit   = "edit"
	WordDelete = "delete"
	WordFind   = "find"
	WordList   = "list"
	WordMark   = "mark"
	WordUnmark = "unmark"
	WordHelp   = "help"
	WordExit   = "exit"
)

// Groups lists the main command words in display order.
var Groups = []string{GroupPatient, GroupAppointment, GroupVaccination, GroupKeyword}

const (
	MessageUnknownCommand          = "Unknown command"
	MessageInvalidCommandFormat    = "Invalid command format!\n%s"
	MessageInvalidPatientIndex     = "The patient index provided is invalid"
	MessageInvalidAppointmentIndex = "The appointment index provided is invalid"
	MessageUnknownVaccination      = "Vaccination type %q does not exist"
	MessagePatientsListed          = "%d patients listed!"
	MessageAppointmentsListed      = "%d appointments listed!"
	MessageVaxTypesListed          = "%d vaccinations listed!"
	MessageNotEdited               = "At least one field to edit must be provided."
	MessageNoFindField             = "At least one field to find must be provided."
)

const (
	UsageAddPatient = GroupPatient + " " + WordAdd + ": Adds a patient.\n" +
		"Parameters: --n NAME --p PHONE --d DATE_OF_BIRTH --b BLOOD_TYPE [--a ALLERGY]... [--v VACCINE]...\n" +
		"Example: patient add --n John Doe --p 98765432 --d 1990-01-31 --b B+ --a catfur --v Pfizer"
	UsageEditPatient = GroupPatient + " " + WordEdit + ": Edits the patient identified by the index number.\n" +
		"Existing values are overwritten; an empty --a or --v clears that set.\n" +
		"Parameters: INDEX [--n NAME] [--p PHONE] [--d DATE_OF_BIRTH] [--b BLOOD_TYPE] [--a ALLERGY]... [--v VACCINE]...\n" +
		"Example: patient edit 1 --p 91234567"
	UsageDeletePatient = GroupPatient + " " + WordDelete + ": Deletes the patient identified by the index number, " +
		"together with the patient's appointments.\n" +
		"Parameters: INDEX\n" +
		"Example: patient delete 1"
	UsageFindPatient = GroupPatient + " " + WordFind + ": Finds all patients whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: patient find alice bob charlie"
	UsageListPatients = GroupPatient + " " + WordList + ": Lists all patients.\n" +
		"Parameters: [PAGE]"

	UsageAddAppointment = GroupAppointment + " " + WordAdd + ": Adds an appointment.\n" +
		"Parameters: --p PATIENT_INDEX --s START_TIME --e END_TIME --v VACCINATION\n" +
		"Example: appointment add --p 1 --s 2024-03-05 0700 --e 2024-03-05 0800 --v Pfizer"
	UsageEditAppointment = GroupAppointment + " " + WordEdit + ": Edits the appointment identified by the index number.\n" +
		"Parameters: INDEX [--p PATIENT_INDEX] [--s START_TIME] [--e END_TIME] [--v VACCINATION]\n" +
		"Example: appointment edit 1 --s 2024-03-05 0900 --e 2024-03-05 1000"
	UsageDeleteAppointment = GroupAppointment + " " + WordDelete + ": Deletes the appointment identified by the index number.\n" +
		"Parameters: INDEX\n" +
		"Example: appointment delete 1"
	UsageFindAppointment = GroupAppointment + " " + WordFind + ": Finds all appointments matching the given fields " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: [--p PATIENT_INDEX] [--s START_TIME] [--e END_TIME] [--v VACCINE_KEYWORD] [--c true|false]\n" +
		"Example: appointment find --p 1 --v pfizer"
	UsageMarkAppointment = GroupAppointment + " " + WordMark + ": Marks the appointment identified by the index number as completed.\n" +
		"Parameters: INDEX\n" +
		"Example: appointment mark 1"
	UsageUnmarkAppointment = GroupAppointment + " " + WordUnmark + ": Marks the appointment identified by the index number as not completed.\n" +
		"Parameters: INDEX\n" +
		"Example: appointment unmark 1"
	UsageListAppointments = GroupAppointment + " " + WordList + ": Lists all appointments.\n" +
		"Parameters: [PAGE]"

	UsageAddVaxType = GroupVaccination + " " + WordAdd + ": Adds a vaccination type.\n" +
		"Parameters: NAME [--g GROUP]... [--min MIN_AGE] [--max MAX_AGE] [--i INGREDIENT]...\n" +
		"Example: vaccination add Pfizer (Dose 1) --g Pfizer --g DOSE 1 --min 5 --i ALC-0315"
	UsageDeleteVaxType = GroupVaccination + " " + WordDelete + ": Deletes the named vaccination type.\n" +
		"Parameters: NAME\n" +
		"Example: vaccination delete Pfizer (Dose 1)"
	UsageFindVaxType = GroupVaccination + " " + WordFind + ": Finds vaccination types whose name contains the keyword.\n" +
		"Parameters: KEYWORD\n" +
		"Example: vaccination find pfizer"
	UsageListVaxTypes = GroupVaccination + " " + WordList + ": Lists all vaccination types.\n" +
		"Parameters: [PAGE]"

	UsageAddKeyword = GroupKeyword + " " + WordAdd + ": Adds an alias for a main command word.\n" +
		"Parameters: --m MAIN_WORD --k KEYWORD\n" +
		"Example: keyword add --m patient --k pa"
	UsageDeleteKeyword = GroupKeyword + " " + WordDelete + ": Deletes an alias.\n" +
		"Parameters: KEYWORD\n" +
		"Example: keyword delete pa"
	UsageListKeywords = GroupKeyword + " " + WordList + ": Lists all aliases."

	UsageHelp = WordHelp + ": Shows the command reference."
	UsageExit = WordExit + ": Exits the program."
)
