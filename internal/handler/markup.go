package handler

import (
	"tarjimon/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// replyMarkup renders the reply's keyboard instruction, nil when the reply leaves the keyboard alone
func replyMarkup(reply domain.Reply) *tele.ReplyMarkup {
	if reply.Keyboard != nil && len(reply.Keyboard.Buttons) > 0 {
		menu := &tele.ReplyMarkup{ResizeKeyboard: true}
		rows := make([]tele.Row, 0, len(reply.Keyboard.Buttons))
		for _, label := range reply.Keyboard.Buttons {
			rows = append(rows, menu.Row(menu.Text(label)))
		}
		menu.Reply(rows...)
		return menu
	}

	if reply.RemoveKeyboard {
		return &tele.ReplyMarkup{RemoveKeyboard: true}
	}
	return nil
}
