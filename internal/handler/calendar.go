package handler

import (
	"fmt"
	"strings"

	"calendarbot/internal/command"
	"calendarbot/internal/domain"
	"calendarbot/internal/ics"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const exportFileName = "calendar.ics"

func (h *Handler) help(int64, command.Command) (string, error) {
	return fmt.Sprintf(helpText, h.calendar.Year(), domain.MaxDescriptionLength), nil
}

func (h *Handler) examples(int64, command.Command) (string, error) {
	return examplesText, nil
}

// addEvent handles /add <day.month.> <description>
func (h *Handler) addEvent(userID int64, cmd command.Command) (string, error) {
	description := cmd.Description()
	date, err := h.calendar.PrepareEvent(cmd.DateToken(), description)
	if err != nil {
		return "", err
	}

	p, err := h.partitions.EnsurePartition(userID)
	if err != nil {
		return "", err
	}

	event, err := h.calendar.AddEvent(p, date, description)
	if err != nil {
		return "", err
	}

	h.logger.Info("Event added",
		zap.Int64("user_id", userID),
		zap.String("date", event.Date.String()),
	)
	return msgAddedPrefix + event.Display(), nil
}

// listEvents handles /list [past|day|week|month]
func (h *Handler) listEvents(userID int64, cmd command.Command) (string, error) {
	keyword := ""
	if len(cmd.Args) > 0 {
		keyword = cmd.Args[0]
	}

	mode, err := h.calendar.ListMode(keyword)
	if err != nil {
		return "", err
	}

	p, err := h.partitions.EnsurePartition(userID)
	if err != nil {
		return "", err
	}

	events, err := h.calendar.ListEvents(p, mode)
	if err != nil {
		return "", err
	}
	return formatEvents(events), nil
}

// removeEvents handles /remove with a date, a description, or both
func (h *Handler) removeEvents(userID int64, cmd command.Command) (string, error) {
	target, err := h.calendar.RemoveTarget(cmd.Args)
	if err != nil {
		return "", err
	}

	p, err := h.partitions.EnsurePartition(userID)
	if err != nil {
		return "", err
	}

	removed, err := h.calendar.RemoveEvents(p, target)
	if err != nil {
		return "", err
	}

	h.logger.Info("Events removed",
		zap.Int64("user_id", userID),
		zap.String("by", target.Kind.String()),
		zap.Int64("count", removed),
	)
	return msgRemoved, nil
}

func formatEvents(events []domain.Event) string {
	if len(events) == 0 {
		return msgNoEvents
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, e.Display())
	}
	return strings.Join(lines, "\n")
}

// handleExport sends the user's events as an iCalendar attachment
func (h *Handler) handleExport(c tele.Context) error {
	doc, text := h.Export(c.Sender().ID)
	if doc == nil {
		return c.Send(text)
	}
	return c.Send(doc)
}

// Export builds the calendar file for a user.
// When there is nothing to attach the document is nil and text holds the reply.
func (h *Handler) Export(userID int64) (doc *tele.Document, text string) {
	p, err := h.partitions.EnsurePartition(userID)
	if err != nil {
		return nil, h.errorReply(userID, "/export", err)
	}

	events, err := h.calendar.ExportEvents(p)
	if err != nil {
		return nil, h.errorReply(userID, "/export", err)
	}
	if len(events) == 0 {
		return nil, msgNoEvents
	}

	body := ics.Encode(events, h.calendar.Now())
	return &tele.Document{
		File:     tele.FromReader(strings.NewReader(body)),
		FileName: exportFileName,
		MIME:     "text/calendar",
	}, ""
}
