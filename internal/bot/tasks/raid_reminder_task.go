package tasks

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/wastelandbot/wastelandbot/internal/world"
)

// newRaidReminderTask creates the scheduled task that announces an upcoming
// raid to the configured chat. The task is meant to run every minute; it
// sends at most one message per raid cycle, when the next raid is exactly
// the configured number of minutes away.
func newRaidReminderTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "raid_reminder")
	var lastAnnounced time.Time

	return func(ctx context.Context) error {
		chatID := deps.Config.Game.AnnounceChatID
		if chatID == 0 {
			return nil
		}

		now := time.Now()
		next := deps.World.LastRaidTime(now).Add(world.RaidCycle)
		lead := time.Duration(deps.Config.Game.RaidReminderMinutes) * time.Minute

		until := next.Sub(now)
		if until > lead || until <= lead-time.Minute {
			return nil
		}
		if lastAnnounced.Equal(next) {
			return nil
		}

		text := fmt.Sprintf("⚔️ Рейд в %s, через %d мин. Встаём на точки!",
			next.Format("15:04"), int(until.Minutes()))
		_, err := deps.Bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: text})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send raid reminder", "error", err, "chat_id", chatID)
			return fmt.Errorf("raid reminder send failed: %w", err)
		}

		lastAnnounced = next
		log.InfoContext(ctx, "Raid reminder sent", "raid_time", next, "chat_id", chatID)
		return nil
	}
}
