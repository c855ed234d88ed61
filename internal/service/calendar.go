package service

import (
	"fmt"
	"time"
	"unicode/utf8"

	"calendarbot/internal/command"
	"calendarbot/internal/domain"
	"calendarbot/internal/repository"
)

// CalendarSettings configures how dates are read and what "today" is
type CalendarSettings struct {
	// Year is applied to every "day.month." expression
	Year     int
	Location *time.Location
	Now      func() time.Time
}

// CalendarService handles event business logic
type CalendarService struct {
	eventRepo repository.EventRepository
	year      int
	location  *time.Location
	now       func() time.Time
}

// NewCalendarService creates a new calendar service
func NewCalendarService(eventRepo repository.EventRepository, settings CalendarSettings) *CalendarService {
	s := &CalendarService{
		eventRepo: eventRepo,
		year:      settings.Year,
		location:  settings.Location,
		now:       settings.Now,
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.year == 0 {
		s.year = s.now().In(s.location).Year()
	}
	return s
}

// Year returns the year applied to user supplied dates
func (s *CalendarService) Year() int {
	return s.year
}

// Now returns the current time in the configured location
func (s *CalendarService) Now() time.Time {
	return s.now().In(s.location)
}

// Today returns the current date in the configured location
func (s *CalendarService) Today() domain.CalendarDate {
	return domain.DateOf(s.now().In(s.location))
}

// PrepareEvent validates /add arguments and returns the date the event goes on.
// The description is checked before the date token.
func (s *CalendarService) PrepareEvent(dateToken, description string) (domain.CalendarDate, error) {
	if description == "" {
		return domain.CalendarDate{}, domain.ErrMissingDescription
	}
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return domain.CalendarDate{}, domain.ErrDescriptionTooLong
	}
	if dateToken == "" {
		return domain.CalendarDate{}, domain.ErrMissingDate
	}

	return domain.ParseDate(dateToken, s.year)
}

// AddEvent stores an event prepared by PrepareEvent
func (s *CalendarService) AddEvent(p domain.Partition, date domain.CalendarDate, description string) (domain.Event, error) {
	if err := s.eventRepo.Insert(p, date, description); err != nil {
		return domain.Event{}, fmt.Errorf("insert event: %w", err)
	}

	return domain.Event{
		UserID:      p.UserID,
		Date:        date,
		Description: description,
	}, nil
}

// ListMode resolves a /list keyword
func (s *CalendarService) ListMode(keyword string) (domain.ListMode, error) {
	return command.ParseListKeyword(keyword)
}

// ListEvents returns the events inside the window, oldest first
func (s *CalendarService) ListEvents(p domain.Partition, mode domain.ListMode) ([]domain.Event, error) {
	events, err := s.eventRepo.QueryRange(p, mode, s.Today())
	if err != nil {
		return nil, fmt.Errorf("query %s events: %w", mode, err)
	}
	return events, nil
}

// RemoveTarget resolves /remove arguments against the calendar year
func (s *CalendarService) RemoveTarget(args []string) (command.RemoveTarget, error) {
	return command.ClassifyRemoveArgs(args, s.year)
}

// RemoveEvents deletes every event selected by target and returns how many were removed
func (s *CalendarService) RemoveEvents(p domain.Partition, target command.RemoveTarget) (int64, error) {
	var (
		removed int64
		err     error
	)
	switch target.Kind {
	case command.RemoveByDate:
		removed, err = s.eventRepo.DeleteByDate(p, target.Date)
	case command.RemoveByDateAndDescription:
		removed, err = s.eventRepo.DeleteByDateAndDescription(p, target.Date, target.Description)
	default:
		removed, err = s.eventRepo.DeleteByDescription(p, target.Description)
	}
	if err != nil {
		return 0, fmt.Errorf("delete events by %s: %w", target.Kind, err)
	}

	return removed, nil
}

// ExportEvents returns every event of the partition, oldest first
func (s *CalendarService) ExportEvents(p domain.Partition) ([]domain.Event, error) {
	events, err := s.eventRepo.ListAll(p)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
