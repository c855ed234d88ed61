package middleware

import (
	"time"

	"calendarbot/internal/command"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every update with its duration and outcome
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()

			fields := []zap.Field{
				zap.String("request_id", uuid.NewString()),
				zap.String("command", command.Tokenize(c.Text()).Verb),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			err := next(c)
			fields = append(fields, zap.Duration("duration", time.Since(start)))

			if err != nil {
				logger.Error("Failed to handle update", append(fields, zap.Error(err))...)
				return err
			}

			logger.Info("Handled update", fields...)
			return nil
		}
	}
}
