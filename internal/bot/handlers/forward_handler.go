package handlers

import (
	"context"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/wastelandbot/wastelandbot/internal/parser"
)

// NewForwardHandler returns the default handler that feeds forwarded game
// screens through the parser and publishes the results to the listeners.
func NewForwardHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return forwardHandler{deps}.Handle
}

// forwardHandler processes non-command messages using injected dependencies.
type forwardHandler struct {
	deps HandlerDeps
}

func (h forwardHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "forward")

	msg := update.Message
	if msg == nil {
		return
	}

	pm := messageFromTelegram(msg)
	if pm.Body() == "" {
		return
	}

	res, group := h.deps.Parser.Parse(pm)
	if (res == nil || res.Empty()) && (group == nil || group.Empty()) {
		log.DebugContext(ctx, "Message not recognized", "message_id", msg.ID, "chat_id", msg.Chat.ID)
		return
	}

	h.deps.Listeners.Publish(ctx, res, group)
}

// messageFromTelegram converts a Telegram message into the parser's view of it.
func messageFromTelegram(msg *models.Message) *parser.Message {
	pm := &parser.Message{
		ID:      int64(msg.ID),
		Text:    msg.Text,
		Caption: msg.Caption,
		Date:    time.Unix(int64(msg.Date), 0),
		Photo:   len(msg.Photo) > 0,
	}
	if msg.From != nil {
		pm.SenderID = msg.From.ID
	}
	if len(msg.Entities) > 0 {
		pm.HTMLText = htmlFromEntities(msg.Text, msg.Entities)
	}
	if d := forwardDate(msg.ForwardOrigin); d > 0 {
		pm.ForwardDate = time.Unix(int64(d), 0)
	}
	return pm
}

func forwardDate(origin *models.MessageOrigin) int {
	if origin == nil {
		return 0
	}
	switch origin.Type {
	case models.MessageOriginTypeUser:
		if origin.MessageOriginUser != nil {
			return origin.MessageOriginUser.Date
		}
	case models.MessageOriginTypeHiddenUser:
		if origin.MessageOriginHiddenUser != nil {
			return origin.MessageOriginHiddenUser.Date
		}
	case models.MessageOriginTypeChat:
		if origin.MessageOriginChat != nil {
			return origin.MessageOriginChat.Date
		}
	case models.MessageOriginTypeChannel:
		if origin.MessageOriginChannel != nil {
			return origin.MessageOriginChannel.Date
		}
	}
	return 0
}
