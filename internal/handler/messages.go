package handler

import (
	"errors"

	"calendarbot/internal/domain"
)

const (
	msgNeedsDate          = "Needs a date. Try again."
	msgNeedsDescription   = "Needs a description. Try again."
	msgNeedsRemoveTarget  = "Needs a date or a description. Try again."
	msgInvalidDateFormat  = "Invalid format of date. Try again."
	msgInvalidDayOrMonth  = "Invalid day or month. Try again."
	msgDescriptionTooLong = "Description is too long. Try again."
	msgInvalidCommand     = "Invalid command. Try again."
	msgNoEvents           = "No events matching the criteria."
	msgRemoved            = "Matching events removed."
	msgFailure            = "Something went wrong. Try again later."
	msgAddedPrefix        = "Event added: "
)

var validationMessages = []struct {
	err  error
	text string
}{
	{domain.ErrMissingDate, msgNeedsDate},
	{domain.ErrMissingDescription, msgNeedsDescription},
	{domain.ErrMissingRemoveTarget, msgNeedsRemoveTarget},
	{domain.ErrInvalidDateFormat, msgInvalidDateFormat},
	{domain.ErrInvalidCalendarDate, msgInvalidDayOrMonth},
	{domain.ErrDescriptionTooLong, msgDescriptionTooLong},
	{domain.ErrUnknownSubcommand, msgInvalidCommand},
}

func validationMessage(err error) (string, bool) {
	for _, m := range validationMessages {
		if errors.Is(err, m.err) {
			return m.text, true
		}
	}
	return "", false
}

const helpText = `Help window

To add an event, write:
/add <day.month.> <description>

The year is %d, and the description should not exceed %d characters.

To list all upcoming events, use command /list.
Or:
/list month - events for the next 30 days
/list week - events for the next 7 days
/list day - events for today and tomorrow
/list past - events that have already happened

To remove events, write either:
/remove <day.month.> - clears all events from given date
/remove <description> - deletes all events with given description
/remove <day.month.> <description> - removes the events with given date and description

Use /export to download your calendar as an .ics file.

Use command /examples to see an example of each available command.

Use command /help to access this text again.`

const examplesText = `Example commands:

/add 13.2. Going to Helsinki

/list
/list past
/list day
/list week
/list month

/remove 13.2.
/remove Going to Helsinki
/remove 13.2. Going to Helsinki

/export`
