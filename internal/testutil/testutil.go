package testutil

import (
	"time"

	"calendarbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestDate creates a calendar date
func NewTestDate(year int, month time.Month, day int) domain.CalendarDate {
	return domain.CalendarDate{Year: year, Month: month, Day: day}
}

// NewTestEvent creates a test event
func NewTestEvent(id, userID int64, date domain.CalendarDate, description string) domain.Event {
	return domain.Event{
		ID:          id,
		UserID:      userID,
		Date:        date,
		Description: description,
	}
}
