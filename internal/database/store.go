package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the data access layer the game-logic listeners and command
// handlers talk to. Methods accept context.Context for cancellation and
// timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// UpsertPlayer inserts or updates a player keyed by nickname. A stored
	// snapshot newer than the incoming one is kept as-is.
	UpsertPlayer(ctx context.Context, player *Player) error

	// GetPlayerByNickname retrieves a player. Returns nil, nil when absent.
	GetPlayerByNickname(ctx context.Context, nickname string) (*Player, error)

	// GetPlayerByTelegramID retrieves a player by the decoded hidden id.
	// Returns nil, nil when absent.
	GetPlayerByTelegramID(ctx context.Context, telegramID int64) (*Player, error)

	// TopPlayersBySumStat returns up to limit players ordered by the sum of
	// their trainable stats.
	TopPlayersBySumStat(ctx context.Context, limit int) ([]Player, error)

	// UpsertGroup inserts or updates a gang/goat snapshot keyed by
	// (kind, name) and returns its row id.
	UpsertGroup(ctx context.Context, group *Group) (uint, error)

	// ReplaceGroupMembers swaps the stored roster of a group in one
	// transaction.
	ReplaceGroupMembers(ctx context.Context, groupID uint, members []GroupMember) error

	// GetGroup retrieves a group with its roster. Returns nil, nil, nil
	// when absent.
	GetGroup(ctx context.Context, kind, name string) (*Group, []GroupMember, error)

	// SaveRaid records a raid occurrence; raids are unique by start time
	// and repeated forwards of the same raid update the reward fields.
	SaveRaid(ctx context.Context, raid *Raid) error

	// LatestRaid returns the most recent recorded raid. Returns nil, nil
	// when none exist yet.
	LatestRaid(ctx context.Context) (*Raid, error)

	// MarkRaidAttendance records a player standing on a raid point. Marking
	// the same player twice for one raid is a no-op.
	MarkRaidAttendance(ctx context.Context, raidTime time.Time, nickname string) error

	// RaidRoster lists the players recorded on a raid.
	RaidRoster(ctx context.Context, raidTime time.Time) ([]string, error)

	// DeleteRaidsBefore drops raids (and their attendance) older than the
	// cutoff. Returns the number of raids removed.
	DeleteRaidsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// ReplaceStock swaps the stored inventory of a sender in one
	// transaction.
	ReplaceStock(ctx context.Context, senderID int64, items []StockRecord) error

	// GetStock lists the stored inventory of a sender.
	GetStock(ctx context.Context, senderID int64) ([]StockRecord, error)

	// SaveNotebookStats upserts survival-diary counters for a player.
	SaveNotebookStats(ctx context.Context, nickname string, stats map[string]int) error

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore implements Store on sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store implementation backed by sqlx. It requires a
// connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) UpsertPlayer(ctx context.Context, player *Player) error {
	if player == nil {
		return fmt.Errorf("cannot save nil player")
	}
	if player.Nickname == "" {
		return fmt.Errorf("player must have a non-empty nickname")
	}

	now := time.Now().UTC()
	player.UpdatedAt = now
	if player.CreatedAt.IsZero() {
		player.CreatedAt = now
	}

	query := `
        INSERT INTO players (
            telegram_id, nickname, fraction, gang,
            max_hp, stamina, agility, oratory, accuracy, power, attack, defence, dzen,
            hunger, distance, location, on_raid, stats_updated_at,
            created_at, updated_at
        ) VALUES (
            :telegram_id, :nickname, :fraction, :gang,
            :max_hp, :stamina, :agility, :oratory, :accuracy, :power, :attack, :defence, :dzen,
            :hunger, :distance, :location, :on_raid, :stats_updated_at,
            :created_at, :updated_at
        )
        ON CONFLICT (nickname) DO UPDATE SET
            telegram_id      = COALESCE(excluded.telegram_id, players.telegram_id),
            fraction         = excluded.fraction,
            gang             = excluded.gang,
            max_hp           = excluded.max_hp,
            stamina          = excluded.stamina,
            agility          = excluded.agility,
            oratory          = excluded.oratory,
            accuracy         = excluded.accuracy,
            power            = excluded.power,
            attack           = excluded.attack,
            defence          = excluded.defence,
            dzen             = excluded.dzen,
            hunger           = excluded.hunger,
            distance         = excluded.distance,
            location         = excluded.location,
            on_raid          = excluded.on_raid,
            stats_updated_at = excluded.stats_updated_at,
            updated_at       = excluded.updated_at
        WHERE excluded.stats_updated_at >= players.stats_updated_at;
    `
	if _, err := s.db.NamedExecContext(ctx, query, player); err != nil {
		s.logger.ErrorContext(ctx, "Error saving player", "nickname", player.Nickname, "error", err)
		return fmt.Errorf("failed to save player %q: %w", player.Nickname, err)
	}
	return nil
}

func (s *sqlxStore) GetPlayerByNickname(ctx context.Context, nickname string) (*Player, error) {
	var player Player
	err := s.db.GetContext(ctx, &player,
		`SELECT * FROM players WHERE nickname = ?;`, nickname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %q: %w", nickname, err)
	}
	return &player, nil
}

func (s *sqlxStore) GetPlayerByTelegramID(ctx context.Context, telegramID int64) (*Player, error) {
	var player Player
	err := s.db.GetContext(ctx, &player,
		`SELECT * FROM players WHERE telegram_id = ?;`, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by telegram id %d: %w", telegramID, err)
	}
	return &player, nil
}

func (s *sqlxStore) TopPlayersBySumStat(ctx context.Context, limit int) ([]Player, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var players []Player
	query := `
        SELECT * FROM players
        ORDER BY (stamina + agility + oratory + accuracy + power) DESC
        LIMIT ?;
    `
	if err := s.db.SelectContext(ctx, &players, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	return players, nil
}

func (s *sqlxStore) UpsertGroup(ctx context.Context, group *Group) (uint, error) {
	if group == nil {
		return 0, fmt.Errorf("cannot save nil group")
	}
	if group.Name == "" || group.Kind == "" {
		return 0, fmt.Errorf("group must have kind and name")
	}

	now := time.Now().UTC()
	group.UpdatedAt = now
	if group.CreatedAt.IsZero() {
		group.CreatedAt = now
	}

	query := `
        INSERT INTO groups (kind, name, leader, parent, league, rating, created_at, updated_at)
        VALUES (:kind, :name, :leader, :parent, :league, :rating, :created_at, :updated_at)
        ON CONFLICT (kind, name) DO UPDATE SET
            leader     = COALESCE(excluded.leader, groups.leader),
            parent     = COALESCE(excluded.parent, groups.parent),
            league     = COALESCE(excluded.league, groups.league),
            rating     = CASE WHEN excluded.rating > 0 THEN excluded.rating ELSE groups.rating END,
            updated_at = excluded.updated_at;
    `
	if _, err := s.db.NamedExecContext(ctx, query, group); err != nil {
		return 0, fmt.Errorf("failed to save group %q: %w", group.Name, err)
	}

	var id uint
	err := s.db.GetContext(ctx, &id,
		`SELECT id FROM groups WHERE kind = ? AND name = ?;`, group.Kind, group.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to read back group id for %q: %w", group.Name, err)
	}
	group.ID = id
	return id, nil
}

func (s *sqlxStore) ReplaceGroupMembers(ctx context.Context, groupID uint, members []GroupMember) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx, s.logger)

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = ?;`, groupID); err != nil {
		return fmt.Errorf("failed to clear group members: %w", err)
	}
	for i := range members {
		members[i].GroupID = groupID
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO group_members (group_id, nickname, ears, status, km)
            VALUES (:group_id, :nickname, :ears, :status, :km);
        `, members[i]); err != nil {
			return fmt.Errorf("failed to insert group member %q: %w", members[i].Nick, err)
		}
	}
	return tx.Commit()
}

func (s *sqlxStore) GetGroup(ctx context.Context, kind, name string) (*Group, []GroupMember, error) {
	var group Group
	err := s.db.GetContext(ctx, &group,
		`SELECT * FROM groups WHERE kind = ? AND name = ?;`, kind, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get group %q: %w", name, err)
	}

	var members []GroupMember
	err = s.db.SelectContext(ctx, &members,
		`SELECT * FROM group_members WHERE group_id = ? ORDER BY nickname;`, group.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get members of %q: %w", name, err)
	}
	return &group, members, nil
}

func (s *sqlxStore) SaveRaid(ctx context.Context, raid *Raid) error {
	if raid == nil {
		return fmt.Errorf("cannot save nil raid")
	}
	if raid.Time.IsZero() {
		return fmt.Errorf("raid must have a resolved time")
	}
	if raid.CreatedAt.IsZero() {
		raid.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO raids (raid_time, km, cups, boxes, text, created_at)
        VALUES (:raid_time, :km, :cups, :boxes, :text, :created_at)
        ON CONFLICT (raid_time) DO UPDATE SET
            km    = CASE WHEN excluded.km    > 0 THEN excluded.km    ELSE raids.km    END,
            cups  = CASE WHEN excluded.cups  > 0 THEN excluded.cups  ELSE raids.cups  END,
            boxes = CASE WHEN excluded.boxes > 0 THEN excluded.boxes ELSE raids.boxes END;
    `
	if _, err := s.db.NamedExecContext(ctx, query, raid); err != nil {
		return fmt.Errorf("failed to save raid at %s: %w", raid.Time, err)
	}
	return nil
}

func (s *sqlxStore) LatestRaid(ctx context.Context) (*Raid, error) {
	var raid Raid
	err := s.db.GetContext(ctx, &raid,
		`SELECT * FROM raids ORDER BY raid_time DESC LIMIT 1;`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest raid: %w", err)
	}
	return &raid, nil
}

func (s *sqlxStore) MarkRaidAttendance(ctx context.Context, raidTime time.Time, nickname string) error {
	if nickname == "" {
		return fmt.Errorf("attendance requires a nickname")
	}
	query := `
        INSERT INTO raid_attendance (raid_time, nickname, seen_at)
        VALUES (?, ?, ?)
        ON CONFLICT (raid_time, nickname) DO NOTHING;
    `
	if _, err := s.db.ExecContext(ctx, query, raidTime, nickname, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark attendance of %q: %w", nickname, err)
	}
	return nil
}

func (s *sqlxStore) RaidRoster(ctx context.Context, raidTime time.Time) ([]string, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names,
		`SELECT nickname FROM raid_attendance WHERE raid_time = ? ORDER BY nickname;`, raidTime)
	if err != nil {
		return nil, fmt.Errorf("failed to list raid roster: %w", err)
	}
	return names, nil
}

func (s *sqlxStore) DeleteRaidsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx, s.logger)

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM raid_attendance WHERE raid_time < ?;`, cutoff); err != nil {
		return 0, fmt.Errorf("failed to delete stale attendance: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM raids WHERE raid_time < ?;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale raids: %w", err)
	}
	n, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit raid cleanup: %w", err)
	}
	return n, nil
}

func (s *sqlxStore) ReplaceStock(ctx context.Context, senderID int64, items []StockRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx, s.logger)

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM stock WHERE sender_id = ?;`, senderID); err != nil {
		return fmt.Errorf("failed to clear stock: %w", err)
	}
	now := time.Now().UTC()
	for i := range items {
		items[i].SenderID = senderID
		if items[i].SeenAt.IsZero() {
			items[i].SeenAt = now
		}
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO stock (sender_id, name, amount, category, seen_at)
            VALUES (:sender_id, :name, :amount, :category, :seen_at);
        `, items[i]); err != nil {
			return fmt.Errorf("failed to insert stock item %q: %w", items[i].Name, err)
		}
	}
	return tx.Commit()
}

func (s *sqlxStore) GetStock(ctx context.Context, senderID int64) ([]StockRecord, error) {
	var items []StockRecord
	err := s.db.SelectContext(ctx, &items,
		`SELECT * FROM stock WHERE sender_id = ? ORDER BY category, name;`, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	return items, nil
}

func (s *sqlxStore) SaveNotebookStats(ctx context.Context, nickname string, stats map[string]int) error {
	if nickname == "" {
		return fmt.Errorf("notebook stats require a nickname")
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx, s.logger)

	now := time.Now().UTC()
	for key, value := range stats {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO notebook_stats (nickname, key, value, updated_at)
            VALUES (?, ?, ?, ?)
            ON CONFLICT (nickname, key) DO UPDATE SET
                value      = excluded.value,
                updated_at = excluded.updated_at;
        `, nickname, key, value, now); err != nil {
			return fmt.Errorf("failed to save notebook stat %q: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Running SQL maintenance")
	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		return fmt.Errorf("vacuum failed: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "ANALYZE;"); err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}
	return nil
}

// rollback rolls a transaction back, tolerating an already-committed one.
func rollback(tx *sqlx.Tx, logger *slog.Logger) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Warn("Error rolling back transaction", "error", err)
	}
}
