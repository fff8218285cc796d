package listeners

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wastelandbot/wastelandbot/internal/database"
	"github.com/wastelandbot/wastelandbot/internal/parser"
)

// GroupUpdater maps group-scoped parse results onto the store: gang panels
// update the gang row and replace its roster, goat panels update the goat
// row and its member gangs.
type GroupUpdater struct {
	logger *slog.Logger
	store  database.Store
}

// NewGroupUpdater creates the updater.
func NewGroupUpdater(logger *slog.Logger, store database.Store) *GroupUpdater {
	return &GroupUpdater{
		logger: logger.With("listener", "group_updater"),
		store:  store,
	}
}

// Name implements GroupListener.
func (u *GroupUpdater) Name() string { return "group_updater" }

// HandleGroup implements GroupListener.
func (u *GroupUpdater) HandleGroup(ctx context.Context, res *parser.GroupResult) error {
	if res.Empty() {
		return nil
	}
	if res.Gang != nil {
		if err := u.saveGang(ctx, res.Gang); err != nil {
			return err
		}
	}
	if res.Goat != nil {
		if err := u.saveGoat(ctx, res.Goat); err != nil {
			return err
		}
	}
	return nil
}

func (u *GroupUpdater) saveGang(ctx context.Context, panel *parser.GangPanel) error {
	group := &database.Group{
		Kind:   database.GroupKindGang,
		Name:   panel.Name,
		Leader: nullString(panel.Leader),
		Parent: nullString(panel.Goat),
		League: nullString(panel.League),
	}
	id, err := u.store.UpsertGroup(ctx, group)
	if err != nil {
		return fmt.Errorf("upserting gang: %w", err)
	}

	members := make([]database.GroupMember, 0, len(panel.Members))
	for _, m := range panel.Members {
		members = append(members, database.GroupMember{
			Nick:   m.Nickname,
			Ears:   m.Ears,
			Status: m.Status,
			KM:     m.KM,
		})
	}
	if err := u.store.ReplaceGroupMembers(ctx, id, members); err != nil {
		return fmt.Errorf("replacing gang roster: %w", err)
	}
	u.logger.DebugContext(ctx, "Gang updated", "gang", panel.Name, "members", len(members))
	return nil
}

func (u *GroupUpdater) saveGoat(ctx context.Context, panel *parser.GoatPanel) error {
	group := &database.Group{
		Kind:   database.GroupKindGoat,
		Name:   panel.Name,
		Leader: nullString(panel.Leader),
		League: nullString(panel.League),
		Rating: panel.Rating,
	}
	if _, err := u.store.UpsertGroup(ctx, group); err != nil {
		return fmt.Errorf("upserting goat: %w", err)
	}
	// Member gangs get their parent link refreshed from the goat panel.
	for _, gang := range panel.Gangs {
		member := &database.Group{
			Kind:   database.GroupKindGang,
			Name:   gang.Name,
			Parent: nullString(panel.Name),
		}
		if _, err := u.store.UpsertGroup(ctx, member); err != nil {
			return fmt.Errorf("upserting member gang %q: %w", gang.Name, err)
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
