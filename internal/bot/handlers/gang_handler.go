package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/wastelandbot/wastelandbot/internal/database"
)

// NewGangHandler returns a handler for the /gang command.
func NewGangHandler(deps HandlerDeps) bot.HandlerFunc {
	return gangHandler{deps}.Handle
}

// gangHandler prints the last seen roster of a gang. Without an argument it
// uses the gang of the caller's own player row.
type gangHandler struct {
	deps HandlerDeps
}

func (h gangHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "gang")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Gang handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	name := commandArgument(update.Message.Text, "/gang")
	if name == "" {
		player, err := h.deps.Store.GetPlayerByTelegramID(ctx, update.Message.From.ID)
		if err != nil {
			log.ErrorContext(ctx, "Failed to look up player", "error", err, "user_id", update.Message.From.ID)
			sendText(ctx, b, log, chatID, "Не получилось достать данные о банде.")
			return
		}
		if player == nil || !player.Gang.Valid {
			sendText(ctx, b, log, chatID, "Укажи банду: /gang <название>.")
			return
		}
		name = player.Gang.String
	}

	group, members, err := h.deps.Store.GetGroup(ctx, database.GroupKindGang, name)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load gang", "error", err, "gang", name)
		sendText(ctx, b, log, chatID, "Не получилось достать данные о банде.")
		return
	}
	if group == nil {
		sendText(ctx, b, log, chatID, fmt.Sprintf("Банда «%s» мне не знакома. Перешли мне её панель 🤟.", name))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🤟 %s\n", group.Name)
	if group.Leader.Valid {
		fmt.Fprintf(&sb, "👑 Главарь: %s\n", group.Leader.String)
	}
	if group.Parent.Valid {
		fmt.Fprintf(&sb, "🐐 Козёл: %s\n", group.Parent.String)
	}
	if group.League.Valid {
		fmt.Fprintf(&sb, "🏅 Лига: %s\n", group.League.String)
	}
	if len(members) > 0 {
		fmt.Fprintf(&sb, "\nСостав (%d):\n", len(members))
		for _, m := range members {
			fmt.Fprintf(&sb, "• %s", m.Nick)
			if m.Ears > 0 {
				fmt.Fprintf(&sb, " 👂%d", m.Ears)
			}
			if m.KM > 0 {
				fmt.Fprintf(&sb, " 📍%dкм", m.KM)
			}
			sb.WriteString("\n")
		}
	}
	fmt.Fprintf(&sb, "\nОбновлено: %s", group.UpdatedAt.Format("02.01.2006 15:04"))

	sendText(ctx, b, log, chatID, sb.String())
}
