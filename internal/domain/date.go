package domain

import (
	"fmt"
	"strings"
	"time"
)

const canonicalLayout = "2006-01-02"

// CalendarDate is a day of a year without time of day or location
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseDate parses a "day.month." expression for the given year.
// Trailing separators are ignored, components after the month are dropped.
func ParseDate(expr string, year int) (CalendarDate, error) {
	parts := strings.Split(expr, ".")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) < 2 {
		return CalendarDate{}, ErrInvalidDateFormat
	}

	return NormalizeDate(parts[0], parts[1], year)
}

// NormalizeDate builds a CalendarDate from numeric day and month tokens.
// Impossible dates such as 30.2. or 1.13. fail with ErrInvalidCalendarDate.
func NormalizeDate(dayToken, monthToken string, year int) (CalendarDate, error) {
	if !isDigits(dayToken) || !isDigits(monthToken) {
		return CalendarDate{}, ErrInvalidDateFormat
	}

	day := zeroPad(dayToken)
	month := zeroPad(monthToken)

	t, err := time.Parse(canonicalLayout, fmt.Sprintf("%04d-%s-%s", year, month, day))
	if err != nil {
		return CalendarDate{}, ErrInvalidCalendarDate
	}

	return DateOf(t), nil
}

// String returns the canonical YYYY-MM-DD form used for storage
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Display returns the DD.MM. form shown to users
func (d CalendarDate) Display() string {
	return fmt.Sprintf("%02d.%02d.", d.Day, int(d.Month))
}

// Time returns midnight UTC of the date
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier for negative n)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Time().After(other.Time())
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
