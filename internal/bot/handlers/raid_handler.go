package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/wastelandbot/wastelandbot/internal/world"
)

// NewRaidHandler returns a handler for the /raid command.
func NewRaidHandler(deps HandlerDeps) bot.HandlerFunc {
	return raidHandler{deps}.Handle
}

// raidHandler reports the last recorded raid, its roster, and the time of
// the next raid cycle.
type raidHandler struct {
	deps HandlerDeps
}

func (h raidHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "raid")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Raid handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	raid, err := h.deps.Store.LatestRaid(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load latest raid", "error", err)
		sendText(ctx, b, log, chatID, "Не получилось достать данные о рейде.")
		return
	}

	now := time.Now()
	next := h.deps.World.LastRaidTime(now).Add(world.RaidCycle)

	if raid == nil {
		sendText(ctx, b, log, chatID,
			fmt.Sprintf("Про прошлые рейды я ничего не знаю.\nСледующий рейд в %s.", next.Format("15:04")))
		return
	}

	roster, err := h.deps.Store.RaidRoster(ctx, raid.Time)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load raid roster", "error", err, "raid_time", raid.Time)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "⚔️ Рейд %s", raid.Time.Format("02.01 15:04"))
	if raid.KM > 0 {
		fmt.Fprintf(&sb, ", 📍%dкм", raid.KM)
	}
	sb.WriteString("\n")
	if raid.Cups > 0 || raid.Boxes > 0 {
		fmt.Fprintf(&sb, "🏆 %d  📦 %d\n", raid.Cups, raid.Boxes)
	}
	if len(roster) > 0 {
		fmt.Fprintf(&sb, "\nНа точке стояли (%d):\n", len(roster))
		for _, nick := range roster {
			fmt.Fprintf(&sb, "• %s\n", nick)
		}
	}
	fmt.Fprintf(&sb, "\nСледующий рейд в %s.", next.Format("15:04"))

	sendText(ctx, b, log, chatID, sb.String())
}
