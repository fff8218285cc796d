package parser

import "strings"

// extractPVP parses a duel log. The game prefixes the winner and looser
// names with a variable run of leading spaces in the header, and repeats the
// exact same run+name token in every combat line; attribution is done by
// string equality against the two header tokens, never by line position.
func (p *Parser) extractPVP(m *Message, r *Result) {
	text := m.Body()
	head := p.g.pvpHead.FindStringSubmatchIndex(text)
	if head == nil {
		return
	}
	hg := groups(p.g.pvpHead, matchStrings(p.g.pvpHead, text, head))

	pvp := &PVP{
		WinnerToken: hg["winner"],
		LooserToken: hg["looser"],
		Winner:      cleanNickname(hg["winner"]),
		Looser:      cleanNickname(hg["looser"]),
	}

	for _, line := range strings.Split(text[head[1]:], "\n") {
		g := firstGroups(p.g.pvpLine, line)
		if g == nil {
			continue
		}
		var player string
		switch g["who"] {
		case pvp.WinnerToken:
			player = pvp.Winner
		case pvp.LooserToken:
			player = pvp.Looser
		default:
			// A combat-looking line naming neither combatant is noise
			// from surrounding chat text.
			continue
		}
		pl := PVPLine{
			Player: player,
			Damage: atoi(g["dmg"]),
			Regen:  atoi(g["regen"]),
			HP:     atoi(g["hp"]),
		}
		if g["drone"] != "" {
			d := atoi(g["drone"])
			pl.Drone = &d
		}
		pvp.Lines = append(pvp.Lines, pl)
	}

	if phrase := p.g.pvpDefeat.FindString(text); phrase != "" {
		pvp.DefeatPhrase = strings.TrimSpace(phrase)
	}

	r.PVP = pvp
}
