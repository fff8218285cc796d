package parser

import (
	"regexp"
	"strings"
)

// extractTaking parses a capture-start banner: the acting gang, the target
// location resolved through the name→km table, and the participant roster.
func (p *Parser) extractTaking(m *Message, r *Result) {
	if t := p.parseTaking(m.Body(), p.g.takingStart); t != nil {
		r.Taking = &TakingDunge{
			Gang:     t.Gang,
			Location: t.Location,
			KM:       t.KM,
			Members:  t.Members,
		}
	}
}

// extractTakingSuccess parses the final (successful) capture variant; its
// roster rows carry the participants' resulting hp.
func (p *Parser) extractTakingSuccess(m *Message, r *Result) {
	if t := p.parseTaking(m.Body(), p.g.takingSuccess); t != nil {
		r.TakingSuccess = t
	}
}

// extractTakingFail parses a failed capture.
func (p *Parser) extractTakingFail(m *Message, r *Result) {
	if t := p.parseTaking(m.Body(), p.g.takingFail); t != nil {
		r.TakingFail = t
	}
}

func (p *Parser) parseTaking(text string, banner *regexp.Regexp) *TakingResult {
	loc := banner.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	g := groups(banner, matchStrings(banner, text, loc))

	t := &TakingResult{
		Gang:     strings.TrimSpace(g["gang"]),
		Location: strings.TrimSpace(g["loc"]),
	}
	if km, ok := p.world.KMByName[t.Location]; ok {
		t.KM = km
	}

	for _, match := range p.g.takingMember.FindAllStringSubmatch(text[loc[1]:], -1) {
		mg := groups(p.g.takingMember, match)
		member := TakingMember{
			Nickname: cleanNickname(mg["nick"]),
			HP:       -1,
		}
		if mg["hp"] != "" {
			member.HP = atoi(mg["hp"])
		}
		t.Members = append(t.Members, member)
	}
	return t
}
