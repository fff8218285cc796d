package parser

import "strings"

// extractInfoLine parses the short status footer the game appends to most
// messages. Several other extractors key off its presence.
func (p *Parser) extractInfoLine(m *Message, r *Result) {
	g := firstGroups(p.g.infoLine, m.Body())
	if g == nil {
		return
	}
	r.Info = &InfoLine{
		HP:         atoi(g["hp"]),
		MaxHP:      atoi(g["maxhp"]),
		Hunger:     atoi(g["hunger"]),
		Stamina:    atoi(g["st"]),
		MaxStamina: atoi(g["maxst"]),
		KM:         atoi(g["km"]),
	}
}

// extractPVE classifies a monster fight. It only fires when the info-line
// extractor already populated its slot: the damage lines alone also appear
// in raid and boss logs where they mean something else.
func (p *Parser) extractPVE(m *Message, r *Result) {
	if r.Info == nil {
		return
	}
	text := m.Body()

	dealt := firstGroups(p.g.pveDealt, text)
	taken := firstGroups(p.g.pveTaken, text)
	win := firstGroups(p.g.pveWin, text)
	if dealt == nil && taken == nil && win == nil {
		return
	}

	pve := &PVE{}
	if dealt != nil {
		pve.DamageDealt = atoi(dealt["dmg"])
	}
	if taken != nil {
		pve.DamageTaken = atoi(taken["dmg"])
	}
	if win != nil {
		pve.Mob = strings.TrimSpace(win["mob"])
		pve.Win = true
	}
	r.PVE = pve
}

// extractMeeting parses a random player encounter.
func (p *Parser) extractMeeting(m *Message, r *Result) {
	g := firstGroups(p.g.meeting, m.Body())
	if g == nil {
		return
	}
	r.Meeting = &Meeting{
		Nickname:     cleanNickname(g["nick"]),
		FractionIcon: g["icon"],
	}
}

// extractGetto parses a getto roster dump.
func (p *Parser) extractGetto(m *Message, r *Result) {
	text := m.Body()
	loc := p.g.getto.FindStringIndex(text)
	if loc == nil {
		return
	}
	getto := &Getto{}
	for _, match := range p.g.gettoRow.FindAllStringSubmatch(text[loc[1]:], -1) {
		g := groups(p.g.gettoRow, match)
		getto.Players = append(getto.Players, cleanNickname(g["nick"]))
	}
	if len(getto.Players) == 0 {
		return
	}
	r.Getto = getto
}

// extractView parses an area-scan screen: who is visible, their faction
// icon, and how far out they stand.
func (p *Parser) extractView(m *Message, r *Result) {
	text := m.Body()
	loc := p.g.view.FindStringIndex(text)
	if loc == nil {
		return
	}
	view := &View{}
	for _, match := range p.g.viewRow.FindAllStringSubmatch(text[loc[1]:], -1) {
		g := groups(p.g.viewRow, match)
		view.Sightings = append(view.Sightings, Sighting{
			Nickname:     cleanNickname(g["nick"]),
			FractionIcon: g["icon"],
			KM:           atoi(g["km"]),
		})
	}
	if len(view.Sightings) == 0 {
		return
	}
	r.View = view
}

// extractSumStatTop parses the sum-stat leaderboard.
func (p *Parser) extractSumStatTop(m *Message, r *Result) {
	text := m.Body()
	loc := p.g.sumStat.FindStringIndex(text)
	if loc == nil {
		return
	}
	top := &SumStatTop{}
	for _, match := range p.g.sumStatRow.FindAllStringSubmatch(text[loc[1]:], -1) {
		g := groups(p.g.sumStatRow, match)
		top.Rows = append(top.Rows, SumStatRow{
			Rank:     atoi(g["rank"]),
			Nickname: cleanNickname(g["nick"]),
			Sum:      atoi(g["sum"]),
		})
	}
	if len(top.Rows) == 0 {
		return
	}
	r.SumStatTop = top
}

// extractDome parses a dome-of-thunder roster.
func (p *Parser) extractDome(m *Message, r *Result) {
	text := m.Body()
	loc := p.g.dome.FindStringIndex(text)
	if loc == nil {
		return
	}
	dome := &Dome{}
	for _, match := range p.g.domeRow.FindAllStringSubmatch(text[loc[1]:], -1) {
		g := groups(p.g.domeRow, match)
		dome.Fighters = append(dome.Fighters, cleanNickname(g["nick"]))
	}
	if len(dome.Fighters) == 0 {
		return
	}
	r.Dome = dome
}

// The scuffle, lynch and pokemob screens bold the actor names; plain text
// loses which token is the name, so these three run on the HTML render.

// extractScuffle parses a chat scuffle outcome from the HTML variant.
func (p *Parser) extractScuffle(m *Message, r *Result) {
	g := firstGroups(p.g.scuffle, m.HTMLText)
	if g == nil {
		return
	}
	r.Scuffle = &Scuffle{
		Winner: cleanNickname(g["winner"]),
		Looser: cleanNickname(g["looser"]),
	}
}

// extractLynch parses lynch-mob verdicts from the HTML variant. One message
// may carry several.
func (p *Parser) extractLynch(m *Message, r *Result) {
	for _, match := range p.g.lynch.FindAllStringSubmatch(m.HTMLText, -1) {
		g := groups(p.g.lynch, match)
		r.Lynch = append(r.Lynch, LynchVerdict{
			Victim:    cleanNickname(g["victim"]),
			Initiator: cleanNickname(g["init"]),
		})
	}
}

// extractPokemobDead parses a pokemob kill notice from the HTML variant.
func (p *Parser) extractPokemobDead(m *Message, r *Result) {
	g := firstGroups(p.g.pokemob, m.HTMLText)
	if g == nil {
		return
	}
	r.PokemobDead = &PokemobDead{
		Mob:     strings.TrimSpace(g["mob"]),
		LastHit: cleanNickname(g["nick"]),
	}
}
