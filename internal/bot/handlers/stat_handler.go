package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/wastelandbot/wastelandbot/internal/database"
)

// NewStatHandler returns a handler for the /stat command.
func NewStatHandler(deps HandlerDeps) bot.HandlerFunc {
	return statHandler{deps}.Handle
}

// statHandler processes the /stat command. Without an argument it looks up
// the caller's player row by telegram id; the id is learned from forwarded
// profiles that carry the hidden id cipher.
type statHandler struct {
	deps HandlerDeps
}

func (h statHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stat")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Stat handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	arg := commandArgument(update.Message.Text, "/stat")

	var (
		player *database.Player
		err    error
	)
	if arg != "" {
		player, err = h.deps.Store.GetPlayerByNickname(ctx, arg)
	} else {
		player, err = h.deps.Store.GetPlayerByTelegramID(ctx, userID)
	}
	if err != nil {
		log.ErrorContext(ctx, "Failed to look up player", "error", err, "user_id", userID)
		sendText(ctx, b, log, chatID, "Не получилось достать профиль, попробуй ещё раз.")
		return
	}
	if player == nil {
		if arg != "" {
			sendText(ctx, b, log, chatID, fmt.Sprintf("Игрок «%s» мне не знаком.", arg))
		} else {
			sendText(ctx, b, log, chatID, "Я тебя ещё не знаю. Перешли мне свой 📟 Пип-бой.")
		}
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 %s", player.Nickname)
	if player.Gang.Valid {
		fmt.Fprintf(&sb, " из банды %s", player.Gang.String)
	}
	sb.WriteString("\n")
	if player.Fraction != "" {
		fmt.Fprintf(&sb, "⚜️ Фракция: %s\n", player.Fraction)
	}
	fmt.Fprintf(&sb, "❤️ Здоровье: %d\n", player.MaxHP)
	fmt.Fprintf(&sb, "⚔️ Урон: %d\n🛡 Броня: %d\n", player.Attack, player.Defence)
	fmt.Fprintf(&sb, "💪 Сила: %d\n🏃 Ловкость: %d\n🗣 Харизма: %d\n🎯 Меткость: %d\n🔋 Выносливость: %d\n",
		player.Power, player.Agility, player.Oratory, player.Accuracy, player.Stamina)
	if player.Dzen > 0 {
		fmt.Fprintf(&sb, "🏵 Дзен: %d\n", player.Dzen)
	}
	fmt.Fprintf(&sb, "\nСумма: %d", player.SumStat())
	if !player.StatsUpdatedAt.IsZero() {
		fmt.Fprintf(&sb, "\nОбновлено: %s", player.StatsUpdatedAt.Format("02.01.2006 15:04"))
	}

	sendText(ctx, b, log, chatID, sb.String())
}
