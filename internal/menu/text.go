package menu

// Menu choices, in the order they are listed
const (
	ChoiceView = iota + 1
	ChoiceAdd
	ChoiceRemove
	ChoiceAssignTrack
	ChoiceAssignDelay
	ChoiceSelect
	ChoiceSearch
	ChoiceChangeTime
	ChoiceExit
	ChoiceHelp
)

const (
	textTitle           = "Train Dispatch System"
	textSelectedHeader  = "Selected train departure:"
	textSearchFirst     = "Please search for a train departure using its train-number."
	textNoSelection     = "No train departure selected. " + textSearchFirst
	textEnterChoice     = "Enter choice: "
	textEnterNumber     = "Enter train number: "
	textEnterHour       = "Enter hour: "
	textEnterMinute     = "Enter minute: "
	textEnterTrack      = "Enter track: "
	textEnterLine       = "Enter line: "
	textEnterDest       = "Enter destination: "
	textEnterDepHour    = "Enter departure hour: "
	textEnterDepMinute  = "Enter departure minute: "
	textEnterTrackUnset = textEnterTrack + "\n-1 for unset"

	textAddTitle      = "Add train departure."
	textOverride      = "Train number already exists. Do you want to override it? (Y/n)\n(-1 to cancel): "
	textCancelAdd     = "Exiting procedure to add train departure."
	textTryAgain      = "Please try again."
	textAddedFormat   = "Train departure for %s with train number %d successfully added."
	textRemoveTitle   = "Remove train departure: "
	textConfirmRemove = "Do you want to remove this train departure? (Y/n)"
	textRemoved       = "Train departure successfully removed."
	textNotRemoved    = "Not removing train departure."

	textTrackTitle    = "Assign track to train departure."
	textTrackAssigned = "Track successfully assigned to train departure."
	textDelayTitle    = "Assign delay to train departure."
	textDelayAssigned = "Delay successfully assigned to train departure."

	textSelectTitle    = "Select train departure by number"
	textSelected       = "Train successfully selected."
	textNotFoundFormat = "No train departure with number %d found. " + textSearchFirst

	textSearchTitle         = "Search train departure by destination. Not case sensitive."
	textFound               = "Train departure found:"
	textNoneFoundFormat     = "No train departure found with destination %s."
	textChangeTimeTitle     = "Changing time of station."
	textTimeNotLater        = "Time must be later than current time."
	textTimeChangedFormat   = "Time changed successfully to %s"
	textDepartedFormat      = "%d departure(s) have left the station."
	textExit                = "Exiting application."
	textHelpTitle           = "In this program, you can:"
	textHelpModifyTitle     = "How to modify a train departure:"
	textHelpModifyLeadIn    = "To modify a train departure, you "
	textHelpModifyEmphasis  = "must"
	textHelpModifyRemainder = " first select it."
)

var menuOptions = []struct {
	choice int
	label  string
}{
	{ChoiceView, "View train departures"},
	{ChoiceAdd, "Add train departure"},
	{ChoiceRemove, "Remove selected train departure"},
	{ChoiceAssignTrack, "Assign track to selected train departure"},
	{ChoiceAssignDelay, "Assign delay to selected train departure"},
	{ChoiceSelect, "Select train departure by number"},
	{ChoiceSearch, "Search train departure by destination"},
	{ChoiceChangeTime, "Change time"},
	{ChoiceExit, "Exit"},
	{ChoiceHelp, "Help"},
}

var helpAbilities = []string{
	"View train departures from a station",
	"Add a departure of your liking to the station",
	"Search for train departures by destination (full or partial)",
	"Select a departure by its train number",
	"Assign a track to a selected departure",
	"Assign a delay to a selected departure",
	"Change the time of the station",
}

var helpModifyLines = []string{
	"You can search for a train departure by its unique train-number.",
	"When you have found the train departure you want to modify, you can modify it.",
	"The selected train departure is shown above the menu.",
	"You can modify the track and delay of a train departure.",
}
