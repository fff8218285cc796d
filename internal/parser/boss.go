package parser

import "strings"

// extractBossFight parses a boss fight log. The text must start with the
// fixed banner; the remainder splits into per-phase blocks on blank lines.
// Each block accumulates a running per-player attack/defend history. The log
// never prints a dead player's hp, but the death always follows their last
// incoming hit, so the final hp is inferred as −1 × that hit.
func (p *Parser) extractBossFight(m *Message, r *Result) {
	text := m.Body()
	if !strings.HasPrefix(text, bossBanner) {
		return
	}
	rest := strings.TrimLeft(strings.TrimPrefix(text, bossBanner), "\n")

	fight := &BossFight{}
	for _, block := range strings.Split(rest, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		fight.Phases = append(fight.Phases, p.parseBossPhase(block))
	}
	if len(fight.Phases) == 0 {
		return
	}
	r.BossFight = fight
}

func (p *Parser) parseBossPhase(block string) BossPhase {
	byName := make(map[string]*BossPlayer)
	var order []string

	player := func(name string) *BossPlayer {
		name = cleanNickname(name)
		if pl, ok := byName[name]; ok {
			return pl
		}
		pl := &BossPlayer{Name: name}
		byName[name] = pl
		order = append(order, name)
		return pl
	}

	for _, line := range strings.Split(block, "\n") {
		if g := firstGroups(p.g.bossAttack, line); g != nil {
			pl := player(g["who"])
			pl.Attacks = append(pl.Attacks, atoi(g["dmg"]))
			continue
		}
		if g := firstGroups(p.g.bossHit, line); g != nil {
			pl := player(g["who"])
			pl.Incoming = append(pl.Incoming, atoi(g["dmg"]))
			continue
		}
		if g := firstGroups(p.g.bossDeath, line); g != nil {
			pl := player(g["who"])
			pl.Dead = true
			if n := len(pl.Incoming); n > 0 {
				pl.FinalHP = -pl.Incoming[n-1]
			}
		}
	}

	phase := BossPhase{Players: make([]BossPlayer, 0, len(order))}
	for _, name := range order {
		phase.Players = append(phase.Players, *byName[name])
	}
	return phase
}
