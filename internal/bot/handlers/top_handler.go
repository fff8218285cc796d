package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const topLimit = 20

// NewTopHandler returns a handler for the /top command.
func NewTopHandler(deps HandlerDeps) bot.HandlerFunc {
	return topHandler{deps}.Handle
}

// topHandler prints the leaderboard ordered by the sum of trainable stats.
type topHandler struct {
	deps HandlerDeps
}

func (h topHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "top")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Top handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	players, err := h.deps.Store.TopPlayersBySumStat(ctx, topLimit)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load top players", "error", err)
		sendText(ctx, b, log, chatID, "Не получилось достать топ игроков.")
		return
	}
	if len(players) == 0 {
		sendText(ctx, b, log, chatID, "Я пока не знаю ни одного игрока. Перешли мне свой 📟 Пип-бой.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Топ по сумме характеристик:\n")
	for i, p := range players {
		fmt.Fprintf(&sb, "%2d. %s — %d", i+1, p.Nickname, p.SumStat())
		if p.Gang.Valid {
			fmt.Fprintf(&sb, " (%s)", p.Gang.String)
		}
		sb.WriteString("\n")
	}

	sendText(ctx, b, log, chatID, sb.String())
}
