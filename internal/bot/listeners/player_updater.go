package listeners

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wastelandbot/wastelandbot/internal/database"
	"github.com/wastelandbot/wastelandbot/internal/parser"
)

// PlayerUpdater maps player-scoped parse results onto the store: profile
// forwards update the player row, raid banners record raids and attendance,
// notebook dumps update diary counters, stock dumps replace the sender's
// inventory.
type PlayerUpdater struct {
	logger *slog.Logger
	store  database.Store
}

// NewPlayerUpdater creates the updater.
func NewPlayerUpdater(logger *slog.Logger, store database.Store) *PlayerUpdater {
	return &PlayerUpdater{
		logger: logger.With("listener", "player_updater"),
		store:  store,
	}
}

// Name implements PlayerListener.
func (u *PlayerUpdater) Name() string { return "player_updater" }

// HandlePlayer implements PlayerListener.
func (u *PlayerUpdater) HandlePlayer(ctx context.Context, res *parser.Result) error {
	if res.Empty() {
		return nil
	}

	if res.Profile != nil {
		if err := u.saveProfile(ctx, res); err != nil {
			return err
		}
	}
	if res.Raid != nil {
		if err := u.saveRaid(ctx, res); err != nil {
			return err
		}
	}
	if res.Notebook != nil && res.Profile != nil {
		if err := u.store.SaveNotebookStats(ctx, res.Profile.Nickname, res.Notebook.Stats); err != nil {
			return fmt.Errorf("saving notebook stats: %w", err)
		}
	}
	if len(res.Stock) > 0 && res.Msg.SenderID != 0 {
		records := make([]database.StockRecord, 0, len(res.Stock))
		for _, item := range res.Stock {
			records = append(records, database.StockRecord{
				Name:     item.Name,
				Amount:   item.Amount,
				Category: string(item.Category),
			})
		}
		if err := u.store.ReplaceStock(ctx, res.Msg.SenderID, records); err != nil {
			return fmt.Errorf("replacing stock: %w", err)
		}
	}
	return nil
}

func (u *PlayerUpdater) saveProfile(ctx context.Context, res *parser.Result) error {
	prof := res.Profile
	player := &database.Player{
		Nickname:       prof.Nickname,
		Fraction:       string(prof.Fraction),
		MaxHP:          prof.Stats.HP,
		Stamina:        prof.Stats.Stamina,
		Agility:        prof.Stats.Agility,
		Oratory:        prof.Stats.Oratory,
		Accuracy:       prof.Stats.Accuracy,
		Power:          prof.Stats.Power,
		Attack:         prof.Stats.Attack,
		Defence:        prof.Stats.Defence,
		Dzen:           prof.Stats.Dzen,
		Hunger:         prof.Hunger,
		Distance:       prof.Distance,
		Location:       prof.Location,
		OnRaid:         prof.OnRaid,
		StatsUpdatedAt: prof.Stats.Timestamp,
	}
	if prof.Gang != "" {
		player.Gang = sql.NullString{String: prof.Gang, Valid: true}
	}
	if prof.TelegramID != 0 {
		player.TelegramID = sql.NullInt64{Int64: prof.TelegramID, Valid: true}
	}
	if err := u.store.UpsertPlayer(ctx, player); err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}
	u.logger.DebugContext(ctx, "Player updated from profile",
		"nickname", player.Nickname, "stats_at", player.StatsUpdatedAt)
	return nil
}

func (u *PlayerUpdater) saveRaid(ctx context.Context, res *parser.Result) error {
	raid := &database.Raid{
		Time:  res.Raid.Time,
		KM:    res.Raid.KM,
		Cups:  res.Raid.Cups,
		Boxes: res.Raid.Boxes,
		Text:  res.Raid.Text,
	}
	if err := u.store.SaveRaid(ctx, raid); err != nil {
		return fmt.Errorf("saving raid: %w", err)
	}
	// A profile forwarded with the raid flag set records attendance.
	if res.Profile != nil && res.Profile.OnRaid {
		if err := u.store.MarkRaidAttendance(ctx, raid.Time, res.Profile.Nickname); err != nil {
			return fmt.Errorf("marking raid attendance: %w", err)
		}
	}
	return nil
}
