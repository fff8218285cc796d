package parser

import (
	"strings"

	"github.com/wastelandbot/wastelandbot/internal/world"
)

// extractProfile tries the verbose pipboy dialect first, then the compact
// tree dialect. Both normalize to the same Profile shape.
func (p *Parser) extractProfile(m *Message, r *Result) {
	if prof := p.parseLongProfile(m); prof != nil {
		r.Profile = prof
		return
	}
	if prof := p.parseShortProfile(m); prof != nil {
		r.Profile = prof
	}
}

func (p *Parser) parseLongProfile(m *Message) *Profile {
	text := m.Body()
	head := p.g.profileHead.FindStringSubmatchIndex(text)
	if head == nil {
		return nil
	}
	nick := string(p.g.profileHead.ExpandString(nil, "$nick", text, head))
	tail := text[head[1]:]

	prof := &Profile{
		Nickname:   cleanNickname(nick),
		TelegramID: decodeHiddenID(text),
	}
	prof.Stats.Timestamp = m.When()

	if g := firstGroups(p.g.profileGang, text); g != nil {
		prof.Gang = strings.TrimSpace(g["gang"])
	}
	if g := firstGroups(p.g.profileFraction, text); g != nil {
		p.resolveFraction(prof, g["icon"], strings.TrimSpace(g["name"]))
	}
	if g := firstGroups(p.g.profileHP, text); g != nil {
		prof.CurrentHP = atoi(g["cur"])
		prof.Stats.HP = atoi(g["max"])
	}
	if g := firstGroups(p.g.profileHunger, text); g != nil {
		prof.Hunger = atoi(g["val"])
	}
	if g := firstGroups(p.g.profileAttack, text); g != nil {
		prof.Stats.Attack = atoi(g["val"])
	}
	if g := firstGroups(p.g.profileDefence, text); g != nil {
		prof.Stats.Defence = atoi(g["val"])
	}
	if g := firstGroups(p.g.profilePower, text); g != nil {
		prof.Stats.Power = atoi(g["val"])
	}
	if g := firstGroups(p.g.profileAgility, text); g != nil {
		prof.Stats.Agility = atoi(g["val"])
	}
	if g := firstGroups(p.g.profileOratory, text); g != nil {
		prof.Stats.Oratory = atoi(g["val"])
	}
	if g := firstGroups(p.g.profileAccuracy, text); g != nil {
		prof.Stats.Accuracy = atoi(g["val"])
	}
	if g := firstGroups(p.g.profileStamina, text); g != nil {
		prof.CurrentStamina = atoi(g["cur"])
		prof.Stats.Stamina = atoi(g["max"])
	}
	if g := firstGroups(p.g.profileLocation, text); g != nil {
		prof.Distance = atoi(g["km"])
		prof.Location = strings.TrimSpace(g["loc"])
	}
	prof.OnRaid = p.g.profileRaidFlag.MatchString(text)

	inline := -1
	if g := firstGroups(p.g.profileDzen, text); g != nil {
		inline = atoi(g["val"])
	}
	prof.Stats.Dzen = p.resolveDzen(inline, tail)

	return prof
}

func (p *Parser) parseShortProfile(m *Message) *Profile {
	text := m.Body()
	head := p.g.shortHead.FindStringSubmatchIndex(text)
	if head == nil {
		return nil
	}
	hg := groups(p.g.shortHead, matchStrings(p.g.shortHead, text, head))

	prof := &Profile{
		Nickname:   cleanNickname(hg["nick"]),
		TelegramID: decodeHiddenID(text),
	}
	prof.Stats.Timestamp = m.When()

	// A bare "👤 Name" line appears on several roster screens; the short
	// dialect is only a profile when tree lines follow.
	fields := 0
	tail := text[head[1]:]
	for _, line := range strings.Split(tail, "\n") {
		if !strings.HasPrefix(line, "├") && !strings.HasPrefix(line, "└") {
			continue
		}
		fields++
		switch {
		case p.g.shortGang.MatchString(line):
			g := firstGroups(p.g.shortGang, line)
			prof.Gang = strings.TrimSpace(g["gang"])
		case p.g.shortHP.MatchString(line):
			g := firstGroups(p.g.shortHP, line)
			prof.CurrentHP = atoi(g["cur"])
			prof.Stats.HP = atoi(g["max"])
		case p.g.shortHunger.MatchString(line):
			g := firstGroups(p.g.shortHunger, line)
			prof.Hunger = atoi(g["val"])
		case p.g.shortCombat.MatchString(line):
			g := firstGroups(p.g.shortCombat, line)
			prof.Stats.Attack = atoi(g["att"])
			prof.Stats.Defence = atoi(g["def"])
		case p.g.shortBody.MatchString(line):
			g := firstGroups(p.g.shortBody, line)
			prof.Stats.Power = atoi(g["pow"])
			prof.Stats.Agility = atoi(g["agi"])
		case p.g.shortMind.MatchString(line):
			g := firstGroups(p.g.shortMind, line)
			prof.Stats.Oratory = atoi(g["ora"])
			prof.Stats.Accuracy = atoi(g["acc"])
		case p.g.shortStamina.MatchString(line):
			g := firstGroups(p.g.shortStamina, line)
			prof.CurrentStamina = atoi(g["cur"])
			prof.Stats.Stamina = atoi(g["max"])
		case p.g.shortKM.MatchString(line):
			g := firstGroups(p.g.shortKM, line)
			prof.Distance = atoi(g["km"])
		case p.g.shortFraction.MatchString(line):
			g := firstGroups(p.g.shortFraction, line)
			p.resolveFraction(prof, g["icon"], strings.TrimSpace(g["name"]))
		}
	}
	if fields == 0 {
		return nil
	}
	prof.OnRaid = p.g.profileRaidFlag.MatchString(text)

	inline := -1
	if medals := hg["medals"]; medals != "" {
		inline = strings.Count(medals, "🏵")
	}
	prof.Stats.Dzen = p.resolveDzen(inline, tail)

	return prof
}

// resolveFraction maps an icon/name pair through the fraction tables. An
// icon or name the tables don't know passes through as a literal label.
func (p *Parser) resolveFraction(prof *Profile, icon, name string) {
	if f, ok := p.world.FractionByIcon[icon]; ok {
		prof.Fraction = f
		return
	}
	if f, ok := p.world.FractionByName[name]; ok {
		prof.Fraction = f
		return
	}
	prof.Fraction = world.UnknownFraction
	prof.FractionLabel = strings.TrimSpace(icon + name)
}

// dzenStep is one encoding of the dzen fallback chain.
type dzenStep struct {
	name string
	fn   func() (int, bool)
}

// resolveDzen resolves the prestige counter from its three independent
// encodings, in fixed precedence: the inline capture on the profile match
// itself, then a medal run (optionally digit-suffixed) in the trailing text,
// then the progress-bar form. First successful encoding wins.
//
// The bar form reports one more filled cell than the actual value; the
// decrement below reproduces the game's rendering off-by-one and must not be
// "fixed" without checking live output. inline is -1 when the profile match
// had no inline encoding.
func (p *Parser) resolveDzen(inline int, tail string) int {
	chain := []dzenStep{
		{"inline", func() (int, bool) {
			return inline, inline >= 0
		}},
		{"medals", func() (int, bool) {
			return p.dzenFromMedals(tail)
		}},
		{"bar", func() (int, bool) {
			g := firstGroups(p.g.dzenBar, tail)
			if g == nil {
				return 0, false
			}
			return strings.Count(g["bar"], "▓") - 1, true
		}},
	}
	for _, s := range chain {
		if v, ok := s.fn(); ok {
			return v
		}
	}
	return 0
}

// dzenFromMedals scans for a medal run of 1–3 or a medal followed by a
// digit. A lone medal that opens a progress bar belongs to the bar encoding
// and is skipped here so the chain order stays meaningful.
func (p *Parser) dzenFromMedals(tail string) (int, bool) {
	loc := p.g.dzenMedals.FindStringSubmatchIndex(tail)
	if loc == nil {
		return 0, false
	}
	g := groups(p.g.dzenMedals, matchStrings(p.g.dzenMedals, tail, loc))
	if g["digit"] != "" {
		return atoi(g["digit"]), true
	}
	rest := strings.TrimLeft(tail[loc[1]:], " ")
	if strings.HasPrefix(rest, "[") {
		return 0, false
	}
	return strings.Count(g["run"], "🏵"), true
}
