package domain

import "fmt"

// MaxDescriptionLength is the limit on event descriptions, in characters
const MaxDescriptionLength = 50

// Event represents a dated note in a user's calendar
type Event struct {
	ID          int64
	UserID      int64
	Date        CalendarDate
	Description string
}

// Display returns the list line for the event, e.g. "13.02. Going to Helsinki"
func (e Event) Display() string {
	return fmt.Sprintf("%s %s", e.Date.Display(), e.Description)
}

// RangeKind selects which side of today a listing covers
type RangeKind int

const (
	RangeUpcoming RangeKind = iota
	RangePast
	RangeNextDays
)

// ListMode describes a date window relative to today
type ListMode struct {
	Kind RangeKind
	Days int // only for RangeNextDays
}

var (
	ModeUpcoming = ListMode{Kind: RangeUpcoming}
	ModePast     = ListMode{Kind: RangePast}
)

// NextDays returns the window [today, today+n]
func NextDays(n int) ListMode {
	return ListMode{Kind: RangeNextDays, Days: n}
}

// Contains reports whether date falls into the window for the given today
func (m ListMode) Contains(date, today CalendarDate) bool {
	switch m.Kind {
	case RangePast:
		return !date.After(today)
	case RangeNextDays:
		return !date.Before(today) && !date.After(today.AddDays(m.Days))
	default:
		return !date.Before(today)
	}
}

func (m ListMode) String() string {
	switch m.Kind {
	case RangePast:
		return "past"
	case RangeNextDays:
		return fmt.Sprintf("next_%d_days", m.Days)
	default:
		return "upcoming"
	}
}
