package handler

import (
	"calendarbot/internal/command"
	"calendarbot/internal/domain"
	"calendarbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// commandFunc runs one chat command for the sender and returns the reply.
// Commands resolve the sender's partition only after their arguments validate.
type commandFunc func(userID int64, cmd command.Command) (string, error)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	partitions *service.PartitionService
	calendar   *service.CalendarService
	logger     *zap.Logger

	commands map[string]commandFunc
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	partitions *service.PartitionService,
	calendar *service.CalendarService,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:        bot,
		partitions: partitions,
		calendar:   calendar,
		logger:     logger,
	}

	h.commands = map[string]commandFunc{
		"/start":    h.help,
		"/help":     h.help,
		"/examples": h.examples,
		"/add":      h.addEvent,
		"/list":     h.listEvents,
		"/remove":   h.removeEvents,
	}

	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	for verb := range h.commands {
		h.bot.Handle(verb, h.handleCommand)
	}
	h.bot.Handle("/export", h.handleExport)

	// Unknown commands and plain text
	h.bot.Handle(tele.OnText, h.handleCommand)
}

func (h *Handler) handleCommand(c tele.Context) error {
	return c.Send(h.Reply(c.Sender().ID, c.Text()))
}

// Reply runs a chat command for a user and returns the text to send back.
// It never returns an empty string.
func (h *Handler) Reply(userID int64, text string) string {
	cmd := command.Tokenize(text)

	run, ok := h.commands[cmd.Verb]
	if !ok {
		return msgInvalidCommand
	}

	reply, err := run(userID, cmd)
	if err != nil {
		return h.errorReply(userID, cmd.Verb, err)
	}
	return reply
}

// errorReply maps validation errors to their message; anything else is a storage failure
func (h *Handler) errorReply(userID int64, verb string, err error) string {
	if text, ok := validationMessage(err); ok {
		h.logger.Debug("Rejected command",
			zap.Int64("user_id", userID),
			zap.String("command", verb),
			zap.String("reason", err.Error()),
		)
		return text
	}

	h.logger.Error("Failed to handle command",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("partition", domain.PartitionFor(userID).Key()),
		zap.String("command", verb),
	)
	return msgFailure
}
