package middleware

import (
	"strings"
	"time"

	"tarjimon/internal/conversation"
	"tarjimon/internal/metrics"

	tele "gopkg.in/telebot.v3"
)

// Metrics records the count and duration of handled updates
func Metrics(m *metrics.Metrics) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)
			m.ObserveUpdate(updateKind(c.Text()), err, time.Since(start))
			return err
		}
	}
}

// updateKind maps message text to start, help, command or text
func updateKind(text string) string {
	cmd, ok := conversation.ParseCommand(text)
	if !ok {
		return "text"
	}
	switch cmd {
	case conversation.CommandStart, conversation.CommandHelp:
		return strings.TrimPrefix(cmd, "/")
	default:
		return "command"
	}
}
