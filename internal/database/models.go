package database

import (
	"database/sql"
	"time"
)

// Player is the persisted state of one game character, updated from parsed
// profile forwards. Correlation between forwards and rows is by nickname, or
// by telegram id when the hidden cipher was present.
type Player struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	TelegramID sql.NullInt64  `db:"telegram_id"`
	Nickname   string         `db:"nickname"`
	Fraction   string         `db:"fraction"`
	Gang       sql.NullString `db:"gang"`

	MaxHP    int `db:"max_hp"`
	Stamina  int `db:"stamina"`
	Agility  int `db:"agility"`
	Oratory  int `db:"oratory"`
	Accuracy int `db:"accuracy"`
	Power    int `db:"power"`
	Attack   int `db:"attack"`
	Defence  int `db:"defence"`
	Dzen     int `db:"dzen"`

	Hunger   int    `db:"hunger"`
	Distance int    `db:"distance"`
	Location string `db:"location"`
	OnRaid   bool   `db:"on_raid"`

	// StatsUpdatedAt is the forward date of the profile the stat snapshot
	// came from; older forwards never overwrite newer state.
	StatsUpdatedAt time.Time `db:"stats_updated_at"`
}

// SumStat is the leaderboard metric: the sum of the trainable stats.
func (p *Player) SumStat() int {
	return p.Stamina + p.Agility + p.Oratory + p.Accuracy + p.Power
}

// Group is a persisted gang or goat snapshot.
type Group struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Kind   string         `db:"kind"` // "gang" or "goat"
	Name   string         `db:"name"`
	Leader sql.NullString `db:"leader"`
	Parent sql.NullString `db:"parent"` // goat name for gangs
	League sql.NullString `db:"league"`
	Rating int            `db:"rating"`
}

// Group kinds.
const (
	GroupKindGang = "gang"
	GroupKindGoat = "goat"
)

// GroupMember is one roster row of a gang snapshot.
type GroupMember struct {
	ID      uint   `db:"id"`
	GroupID uint   `db:"group_id"`
	Nick    string `db:"nickname"`
	Ears    int    `db:"ears"`
	Status  string `db:"status"`
	KM      int    `db:"km"`
}

// Raid is one raid occurrence, keyed by its resolved start time.
type Raid struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Time  time.Time `db:"raid_time"`
	KM    int       `db:"km"`
	Cups  int       `db:"cups"`
	Boxes int       `db:"boxes"`
	Text  string    `db:"text"`
}

// RaidAttendance marks one player standing on a raid point.
type RaidAttendance struct {
	ID       uint      `db:"id"`
	RaidTime time.Time `db:"raid_time"`
	Nickname string    `db:"nickname"`
	SeenAt   time.Time `db:"seen_at"`
}

// StockRecord is one inventory line from the latest stock forward of a user.
type StockRecord struct {
	ID       uint      `db:"id"`
	SenderID int64     `db:"sender_id"`
	Name     string    `db:"name"`
	Amount   int       `db:"amount"`
	Category string    `db:"category"`
	SeenAt   time.Time `db:"seen_at"`
}

// NotebookStat is one accumulated survival-diary counter for a player.
type NotebookStat struct {
	ID        uint      `db:"id"`
	Nickname  string    `db:"nickname"`
	Key       string    `db:"key"`
	Value     int       `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
