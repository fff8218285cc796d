package parser

import "strings"

// extractGangPanel parses a gang snapshot into the group-scoped result. The
// gang and goat panels share the 🐐 header line, so a message that opens with
// the goat header is left to the goat extractor.
func (p *Parser) extractGangPanel(m *Message, r *GroupResult) {
	text := m.Body()
	g := firstGroups(p.g.gangHead, text)
	if g == nil {
		return
	}
	panel := &GangPanel{Name: strings.TrimSpace(g["name"])}

	if lg := firstGroups(p.g.gangLeader, text); lg != nil {
		panel.Leader = cleanNickname(lg["nick"])
	}
	if gg := firstGroups(p.g.gangGoat, text); gg != nil {
		panel.Goat = strings.TrimSpace(gg["name"])
	}
	if lg := firstGroups(p.g.gangLeague, text); lg != nil {
		panel.League = strings.TrimSpace(lg["name"])
	}
	for _, match := range p.g.gangMember.FindAllStringSubmatch(text, -1) {
		mg := groups(p.g.gangMember, match)
		panel.Members = append(panel.Members, GangMember{
			Nickname: cleanNickname(mg["nick"]),
			Status:   mg["status"],
			Ears:     atoi(mg["ears"]),
			KM:       atoi(mg["km"]),
		})
	}

	r.Gang = panel
}

// extractGoatPanel parses a goat (alliance) snapshot. A goat panel opens
// with the 🐐 header; a gang panel that merely references its parent goat
// opens with the 🤟 header instead, so the two never double-fire.
func (p *Parser) extractGoatPanel(m *Message, r *GroupResult) {
	text := m.Body()
	if strings.Contains(text, "🤟 Банда:") || strings.Contains(text, "🤟Банда:") {
		return
	}
	g := firstGroups(p.g.goatHead, text)
	if g == nil {
		return
	}
	panel := &GoatPanel{Name: strings.TrimSpace(g["name"])}

	if lg := firstGroups(p.g.goatLeague, text); lg != nil {
		panel.League = strings.TrimSpace(lg["name"])
	}
	if rg := firstGroups(p.g.goatRating, text); rg != nil {
		panel.Rating = atoi(rg["val"])
	}
	if lg := firstGroups(p.g.goatLeader, text); lg != nil {
		panel.Leader = cleanNickname(lg["nick"])
	}
	for _, match := range p.g.goatGang.FindAllStringSubmatch(text, -1) {
		gg := groups(p.g.goatGang, match)
		panel.Gangs = append(panel.Gangs, GoatGang{
			Name:  strings.TrimSpace(gg["name"]),
			Power: atoi(gg["power"]),
			ID:    atoi(gg["id"]),
		})
	}

	r.Goat = panel
}
