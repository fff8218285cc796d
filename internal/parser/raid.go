package parser

import (
	"strings"
	"time"

	"github.com/wastelandbot/wastelandbot/internal/world"
)

// rollbackGrace is how far into the future a resolved raid time may sit
// before the rollback correction steps it back one period. Forwards arrive a
// few seconds after the screen renders, so a small grace is needed.
const rollbackGrace = 5 * time.Second

// extractRaid parses a raid banner. Three branches by specificity: an
// hour-only time (assumed same day as the forward), hour plus day and month
// (assumed same year), or a current-interval marker. The first two apply a
// rollback: a resolved time in the future relative to the forward date means
// the raid was reported just after a period boundary, so step back one day
// (or one year).
func (p *Parser) extractRaid(m *Message, r *Result) {
	text := m.Body()
	now := m.When()

	if g := firstGroups(p.g.raid, text); g != nil {
		hour := atoi(g["hour"])
		if hour > 23 {
			return
		}
		var at time.Time
		if g["day"] != "" {
			day, month := atoi(g["day"]), atoi(g["month"])
			if month < 1 || month > 12 || day < 1 || day > 31 {
				return
			}
			at = time.Date(now.Year(), time.Month(month), day, hour, 0, 0, 0, now.Location())
			if at.After(now.Add(rollbackGrace)) {
				at = at.AddDate(-1, 0, 0)
			}
		} else {
			at = time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
			if at.After(now.Add(rollbackGrace)) {
				at = at.Add(-24 * time.Hour)
			}
		}
		r.Raid = p.classifyRaid(at, text)
		return
	}

	if p.g.raidNow.MatchString(text) {
		r.Raid = p.classifyRaid(p.world.LastRaidTime(now), text)
	}
}

// classifyRaid derives km, cups and boxes from the raid message text: the km
// via the location reward-icon table, the rewards by glyph count.
func (p *Parser) classifyRaid(at time.Time, text string) *Raid {
	raid := &Raid{
		Time:  at,
		Text:  text,
		Cups:  strings.Count(text, "🏆"),
		Boxes: strings.Count(text, "📦"),
	}
	for _, loc := range p.world.Locations {
		if strings.Contains(text, loc.Icon) {
			raid.KM = loc.KM
			break
		}
	}
	return raid
}

// lootStep is one stage of the loot location classifier.
type lootStep struct {
	name string
	fn   func(what string) (int, bool)
}

// extractLoot parses a found-item line and classifies its source location in
// two stages: the exact reward-icon table first, then food/drug set
// membership with a fixed km per class. Unclassifiable loot keeps km 0.
func (p *Parser) extractLoot(m *Message, r *Result) {
	g := firstGroups(p.g.loot, m.Body())
	if g == nil {
		return
	}
	what := strings.TrimSpace(g["what"])

	chain := []lootStep{
		{"icon_table", func(string) (int, bool) {
			for _, loc := range p.world.Locations {
				if strings.Contains(m.Body(), loc.Icon) {
					return loc.KM, true
				}
			}
			return 0, false
		}},
		{"item_class", func(name string) (int, bool) {
			if p.world.IsFood(name) {
				return world.FoodKM, true
			}
			if p.world.IsDrug(name) {
				return world.DrugsKM, true
			}
			return 0, false
		}},
	}

	loot := &Loot{What: what}
	for _, s := range chain {
		if km, ok := s.fn(what); ok {
			loot.KM = km
			break
		}
	}
	r.Loot = loot
}

// extractLoss parses a lost-item line.
func (p *Parser) extractLoss(m *Message, r *Result) {
	g := firstGroups(p.g.loss, m.Body())
	if g == nil {
		return
	}
	r.Loss = &Loss{What: strings.TrimSpace(g["what"])}
}
