package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
)

// sendText sends a plain text reply and logs a failure instead of returning it.
func sendText(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// commandArgument strips the command itself (and an optional @botname suffix)
// from the message text and returns the trimmed remainder.
func commandArgument(text, command string) string {
	rest := strings.TrimPrefix(text, command)
	if strings.HasPrefix(rest, "@") {
		if i := strings.IndexAny(rest, " \n"); i >= 0 {
			rest = rest[i:]
		} else {
			rest = ""
		}
	}
	return strings.TrimSpace(rest)
}
