package parser

import (
	"time"

	"github.com/wastelandbot/wastelandbot/internal/world"
)

// Result is the player-scoped aggregate produced by one dispatch pass. Each
// slot is either nil (the extractor did not match) or holds exactly one value
// of its type; a message may populate zero, one, or many slots. A Result is
// created fresh per message, handed to the listeners, and discarded.
type Result struct {
	Msg  *Message
	When time.Time

	Profile       *Profile
	Raid          *Raid
	Info          *InfoLine
	PVE           *PVE
	PVP           *PVP
	Loot          *Loot
	Loss          *Loss
	Meeting       *Meeting
	Getto         *Getto
	View          *View
	Taking        *TakingDunge
	TakingSuccess *TakingResult
	TakingFail    *TakingResult
	SumStatTop    *SumStatTop
	Notebook      *Notebook
	Dome          *Dome
	BossFight     *BossFight
	PokemobDead   *PokemobDead
	Scuffle       *Scuffle
	Lynch         []LynchVerdict
	Stock         []StockItem
}

// Empty reports whether no extractor fired.
func (r *Result) Empty() bool {
	return r.Profile == nil && r.Raid == nil && r.Info == nil && r.PVE == nil &&
		r.PVP == nil && r.Loot == nil && r.Loss == nil && r.Meeting == nil &&
		r.Getto == nil && r.View == nil && r.Taking == nil &&
		r.TakingSuccess == nil && r.TakingFail == nil && r.SumStatTop == nil &&
		r.Notebook == nil && r.Dome == nil && r.BossFight == nil &&
		r.PokemobDead == nil && r.Scuffle == nil && len(r.Lynch) == 0 &&
		len(r.Stock) == 0
}

// GroupResult is the group-scoped aggregate: gang and goat panel snapshots.
// It shares the underlying message and timestamp with the player-scoped
// Result of the same dispatch pass but is delivered to different listeners.
type GroupResult struct {
	Msg  *Message
	When time.Time

	Gang *GangPanel
	Goat *GoatPanel
}

// Empty reports whether no group extractor fired.
func (r *GroupResult) Empty() bool {
	return r.Gang == nil && r.Goat == nil
}

// PipboyStats is the stat snapshot carried by a profile parse. Timestamp is
// the forward date of the message the stats were read from.
type PipboyStats struct {
	HP        int
	Stamina   int
	Agility   int
	Oratory   int
	Accuracy  int
	Power     int
	Attack    int
	Defence   int
	Dzen      int
	Timestamp time.Time
}

// Profile is the normalized pipboy screen. Both profile dialects resolve to
// this shape.
type Profile struct {
	Nickname string // emoji-stripped, HTML-escaped
	Fraction world.Fraction
	// FractionLabel keeps the literal icon or name when the fraction tables
	// have no entry for it.
	FractionLabel string
	Gang          string
	Stats         PipboyStats

	CurrentHP      int
	CurrentStamina int
	Hunger         int
	Distance       int
	Location       string
	OnRaid         bool

	// TelegramID is decoded from the hidden tag-digit cipher in the trailing
	// text, 0 when absent.
	TelegramID int64
}

// Raid is a raid banner with its resolved start time and the reward
// classification of the banner text.
type Raid struct {
	Time  time.Time
	Text  string
	KM    int
	Cups  int
	Boxes int
}

// InfoLine is the short status footer the game appends to most messages.
type InfoLine struct {
	HP         int
	MaxHP      int
	Hunger     int
	Stamina    int
	MaxStamina int
	KM         int
}

// PVE is a monster fight summary. Only extracted when the info line of the
// same message already matched.
type PVE struct {
	Mob         string
	DamageDealt int
	DamageTaken int
	Win         bool
}

// PVPLine is one exchange of a PvP log.
type PVPLine struct {
	Player string
	HP     int
	Damage int
	Regen  int
	// Drone is the damage dealt by a combat drone sub-event, nil when the
	// line has none.
	Drone *int
}

// PVP is a parsed duel log.
type PVP struct {
	Winner string
	Looser string
	// WinnerToken and LooserToken keep the raw leading-space run + name
	// tokens from the header; combat lines are attributed by exact equality
	// against these.
	WinnerToken  string
	LooserToken  string
	Lines        []PVPLine
	DefeatPhrase string
}

// Loot is a found-item line with its classified kilometer.
type Loot struct {
	What string
	KM   int
}

// Loss is a lost-item line.
type Loss struct {
	What string
}

// Meeting is a random encounter with another player.
type Meeting struct {
	Nickname     string
	FractionIcon string
}

// Getto is a getto roster dump.
type Getto struct {
	Players []string
}

// Sighting is one row of a view/scan screen.
type Sighting struct {
	Nickname     string
	FractionIcon string
	KM           int
}

// View is an area-scan screen.
type View struct {
	Sightings []Sighting
}

// TakingMember is one participant of a capture event. HP is only present on
// the final (success) variant, -1 otherwise.
type TakingMember struct {
	Nickname string
	HP       int
}

// TakingDunge is a capture-start snapshot.
type TakingDunge struct {
	Gang     string
	Location string
	KM       int
	Members  []TakingMember
}

// TakingResult is a finished capture, successful or failed.
type TakingResult struct {
	Gang     string
	Location string
	KM       int
	Members  []TakingMember
}

// SumStatRow is one leaderboard row.
type SumStatRow struct {
	Rank     int
	Nickname string
	Sum      int
}

// SumStatTop is the sum-stat leaderboard screen.
type SumStatTop struct {
	Rows []SumStatRow
}

// NotebookEntry is one survival-diary line. Key is the resolved stat key,
// world.SinkKey for labels outside the table.
type NotebookEntry struct {
	Label  string
	Value  int
	Suffix string
	Key    string
}

// Notebook is a parsed survival diary.
type Notebook struct {
	Entries []NotebookEntry
	// Stats accumulates entry values by resolved key; unmatched labels sum
	// into the sink key.
	Stats map[string]int
}

// Dome is a dome-of-thunder roster.
type Dome struct {
	Fighters []string
}

// BossPlayer is the accumulated per-player history of a boss fight.
type BossPlayer struct {
	Name     string
	Attacks  []int
	Incoming []int
	// FinalHP is the negated last recorded incoming hit when the player
	// died, 0 otherwise.
	FinalHP int
	Dead    bool
}

// BossPhase is one blank-line separated block of the fight log.
type BossPhase struct {
	Players []BossPlayer
}

// BossFight is a parsed boss fight log.
type BossFight struct {
	Phases []BossPhase
}

// PokemobDead is a pokemob kill notice, extracted from the HTML variant.
type PokemobDead struct {
	Mob     string
	LastHit string
}

// Scuffle is a chat scuffle outcome, extracted from the HTML variant.
type Scuffle struct {
	Winner string
	Looser string
}

// LynchVerdict is one lynch-mob verdict, extracted from the HTML variant.
type LynchVerdict struct {
	Victim    string
	Initiator string
}

// StockCategory tags a parsed inventory item with the list it came from.
type StockCategory string

// Stock item categories.
const (
	StockOther    StockCategory = "OTHER"
	StockFood     StockCategory = "FOOD"
	StockResource StockCategory = "RESOURCE"
	StockStuff    StockCategory = "STUFF"
)

// StockItem is one inventory line. Amount defaults to 1 when the list omits
// an explicit count.
type StockItem struct {
	Name     string
	Amount   int
	Category StockCategory
}

// GangMember is one roster row of a gang panel.
type GangMember struct {
	Nickname string
	Ears     int
	Status   string
	KM       int
}

// GangPanel is a gang snapshot.
type GangPanel struct {
	Name    string
	Leader  string
	Goat    string
	League  string
	Members []GangMember
}

// GoatGang is one member gang row of a goat panel. ID is the optional
// numeric tag, 0 when absent.
type GoatGang struct {
	Name  string
	Power int
	ID    int
}

// GoatPanel is a goat (alliance) snapshot.
type GoatPanel struct {
	Name   string
	League string
	Rating int
	Leader string
	Gangs  []GoatGang
}
