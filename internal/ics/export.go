// Package ics renders a user's calendar as an iCalendar document.
package ics

import (
	"strconv"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"calendarbot/internal/domain"
)

const productID = "-//calendarbot//Telegram calendar//EN"

// uidNamespace scopes event UIDs so that exporting twice yields the same UIDs
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://t.me/calendarbot/events"))

// Encode renders events as all-day VEVENTs. stamp is used for DTSTAMP.
func Encode(events []domain.Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		ev := cal.AddEvent(EventUID(e))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetAllDayStartAt(e.Date.Time())
		ev.SetAllDayEndAt(e.Date.AddDays(1).Time())
		ev.SetSummary(e.Description)
	}

	return cal.Serialize()
}

// EventUID derives a stable UID from the event's owner and row id
func EventUID(e domain.Event) string {
	name := strconv.FormatInt(e.UserID, 10) + "/" + strconv.FormatInt(e.ID, 10)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@calendarbot"
}
