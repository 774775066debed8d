package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logger logs one line per update with the sender, duration and handler error
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("kind", updateKind(c.Text())),
				zap.Duration("duration", time.Since(start)),
			}
			if user := c.Sender(); user != nil {
				fields = append(fields, zap.Int64("user_id", user.ID))
				if user.Username != "" {
					fields = append(fields, zap.String("username", user.Username))
				}
			}

			if err != nil {
				logger.Warn("Update handled with error", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
