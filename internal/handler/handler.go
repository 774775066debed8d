package handler

import (
	"context"
	"fmt"

	"tarjimon/internal/conversation"
	"tarjimon/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Conversation advances a user's conversation by one message
type Conversation interface {
	Handle(ctx context.Context, userID int64, text string) ([]domain.Reply, error)
}

// Handler manages all bot interactions
type Handler struct {
	// ctx is the process root context; cancelling it aborts in-flight gateway calls
	ctx          context.Context
	bot          *tele.Bot
	conversation Conversation
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(ctx context.Context, bot *tele.Bot, conv Conversation, logger *zap.Logger) *Handler {
	return &Handler{
		ctx:          ctx,
		bot:          bot,
		conversation: conv,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle(conversation.CommandStart, h.handleMessage)
	h.bot.Handle(conversation.CommandHelp, h.handleMessage)

	// Text messages, including unknown commands and keyboard labels
	h.bot.Handle(tele.OnText, h.handleMessage)
}

// handleMessage feeds the message into the conversation and answers it with
// the replies, in order, quoting the user's message
func (h *Handler) handleMessage(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	replies, err := h.conversation.Handle(h.ctx, sender.ID, c.Text())
	if err != nil {
		h.logger.Error("Failed to handle message",
			zap.Int64("user_id", sender.ID),
			zap.Error(err),
		)
		return c.Reply(conversation.MsgInternalError)
	}

	for _, reply := range replies {
		if err := respond(c, reply); err != nil {
			return fmt.Errorf("send reply to %d: %w", sender.ID, err)
		}
	}
	return nil
}

func respond(c tele.Context, reply domain.Reply) error {
	if markup := replyMarkup(reply); markup != nil {
		return c.Reply(reply.Text, markup)
	}
	return c.Reply(reply.Text)
}
