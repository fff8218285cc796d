// Package parser implements the text-to-structured-event engine: a bank of
// per-screen grammars, one extractor per game screen type, and a dispatcher
// that runs every applicable extractor against an inbound chat message and
// accumulates all matches into one player-scoped and one group-scoped
// aggregate result.
//
// The engine is stateless across messages and performs no I/O; a constructed
// Parser is safe for concurrent use.
package parser

import (
	"io"
	"log/slog"

	"github.com/wastelandbot/wastelandbot/internal/world"
)

// Parser holds the compiled grammar bank and the world lookup tables. Build
// one with New at startup and share it.
type Parser struct {
	g     *grammar
	world *world.Data
	log   *slog.Logger
}

// New creates a Parser over the given world tables.
func New(w *world.Data, log *slog.Logger) *Parser {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{
		g:     newGrammar(),
		world: w,
		log:   log.With("component", "parser"),
	}
}

// step is one extractor of the dispatch pipeline. Steps run in slice order;
// the order only matters where a step reads a slot an earlier step populates
// (info line before pve, profile before the embedded raid).
type step struct {
	name string
	fn   func(p *Parser, m *Message, r *Result)
}

// textSteps run against the plain text of a regular message.
var textSteps = []step{
	{"profile", (*Parser).extractProfile},
	{"raid", (*Parser).extractRaid},
	{"info_line", (*Parser).extractInfoLine},
	{"pve", (*Parser).extractPVE},
	{"pvp", (*Parser).extractPVP},
	{"loot", (*Parser).extractLoot},
	{"loss", (*Parser).extractLoss},
	{"meeting", (*Parser).extractMeeting},
	{"getto", (*Parser).extractGetto},
	{"view", (*Parser).extractView},
	{"taking", (*Parser).extractTaking},
	{"taking_success", (*Parser).extractTakingSuccess},
	{"taking_fail", (*Parser).extractTakingFail},
	{"sum_stat_top", (*Parser).extractSumStatTop},
	{"notebook", (*Parser).extractNotebook},
	{"dome", (*Parser).extractDome},
	{"boss_fight", (*Parser).extractBossFight},
	{"stock", (*Parser).extractStock},
	{"scuffle", (*Parser).extractScuffle},
	{"lynch", (*Parser).extractLynch},
	{"pokemob_dead", (*Parser).extractPokemobDead},
}

// captionSteps run against a photo caption. The game only attaches a few
// screen types to photos.
var captionSteps = []step{
	{"profile", (*Parser).extractProfile},
	{"raid", (*Parser).extractRaid},
	{"loot", (*Parser).extractLoot},
	{"stock", (*Parser).extractStock},
}

// groupSteps populate the group-scoped result.
var groupSteps = []struct {
	name string
	fn   func(p *Parser, m *Message, r *GroupResult)
}{
	{"gang_panel", (*Parser).extractGangPanel},
	{"goat_panel", (*Parser).extractGoatPanel},
}

// Parse runs the full extractor set over one inbound message. It always
// returns both results; for photo messages the group result stays empty.
// A message with neither text nor caption produces two empty results.
//
// Any single extractor fault is isolated: it is logged with the message id
// and extractor name and the rest of the pass continues. The grammars are
// heuristic and occasionally mis-fire on unrelated chat text; one bad forward
// must never suppress the other extractors.
func (p *Parser) Parse(m *Message) (*Result, *GroupResult) {
	res := &Result{Msg: m, When: m.When()}
	grp := &GroupResult{Msg: m, When: m.When()}

	if m.Body() == "" && m.HTMLText == "" {
		return res, grp
	}

	steps := textSteps
	if m.Photo {
		steps = captionSteps
	}
	for _, s := range steps {
		p.runStep(s.name, m, func() { s.fn(p, m, res) })
	}

	if !m.Photo {
		for _, s := range groupSteps {
			p.runStep(s.name, m, func() { s.fn(p, m, grp) })
		}
	}

	return res, grp
}

// runStep executes one extractor behind a recover boundary.
func (p *Parser) runStep(name string, m *Message, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("extractor fault",
				"extractor", name,
				"message_id", m.ID,
				"panic", r)
		}
	}()
	fn()
}
