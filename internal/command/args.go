package command

import (
	"strings"

	"calendarbot/internal/domain"
)

// List keywords accepted by /list
const (
	ListPast  = "past"
	ListDay   = "day"
	ListWeek  = "week"
	ListMonth = "month"
)

// ParseListKeyword translates the optional /list argument into a date window.
// No keyword means every upcoming event.
func ParseListKeyword(keyword string) (domain.ListMode, error) {
	switch strings.ToLower(keyword) {
	case "":
		return domain.ModeUpcoming, nil
	case ListPast:
		return domain.ModePast, nil
	case ListDay:
		return domain.NextDays(1), nil
	case ListWeek:
		return domain.NextDays(7), nil
	case ListMonth:
		return domain.NextDays(30), nil
	default:
		return domain.ListMode{}, domain.ErrUnknownSubcommand
	}
}

// RemoveKind tells which fields of a RemoveTarget filter the deletion
type RemoveKind int

const (
	RemoveByDate RemoveKind = iota + 1
	RemoveByDescription
	RemoveByDateAndDescription
)

func (k RemoveKind) String() string {
	switch k {
	case RemoveByDate:
		return "date"
	case RemoveByDescription:
		return "description"
	case RemoveByDateAndDescription:
		return "date_and_description"
	default:
		return "unknown"
	}
}

// RemoveTarget selects the events a /remove deletes
type RemoveTarget struct {
	Kind        RemoveKind
	Date        domain.CalendarDate
	Description string
}

// ClassifyRemoveArgs decides how /remove arguments are read.
//
// A single argument that parses as a date removes by date. Two or more arguments
// whose first one parses as a date remove by date and description. Anything else,
// including a lone token that fails to parse as a date, is taken as a description.
func ClassifyRemoveArgs(args []string, year int) (RemoveTarget, error) {
	if len(args) == 0 {
		return RemoveTarget{}, domain.ErrMissingRemoveTarget
	}

	date, err := domain.ParseDate(args[0], year)
	if err == nil {
		if len(args) == 1 {
			return RemoveTarget{Kind: RemoveByDate, Date: date}, nil
		}
		return RemoveTarget{
			Kind:        RemoveByDateAndDescription,
			Date:        date,
			Description: strings.Join(args[1:], " "),
		}, nil
	}

	return RemoveTarget{
		Kind:        RemoveByDescription,
		Description: strings.Join(args, " "),
	}, nil
}
