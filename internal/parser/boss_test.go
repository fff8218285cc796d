package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bossLogText = `☠️ БОЙ С БОССОМ ☠️
Ivan наносит 50
Ivan получает 30
Petr наносит 20

Ivan наносит 10
Ivan получает 80
Ivan погибает`

func TestExtractBossFight(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage(bossLogText))
	require.NotNil(t, res.BossFight)
	require.Len(t, res.BossFight.Phases, 2)

	first := res.BossFight.Phases[0]
	require.Len(t, first.Players, 2)
	assert.Equal(t, "Ivan", first.Players[0].Name)
	assert.Equal(t, []int{50}, first.Players[0].Attacks)
	assert.Equal(t, []int{30}, first.Players[0].Incoming)
	assert.False(t, first.Players[0].Dead)
	assert.Equal(t, "Petr", first.Players[1].Name)
	assert.Equal(t, []int{20}, first.Players[1].Attacks)

	second := res.BossFight.Phases[1]
	require.Len(t, second.Players, 1)
	ivan := second.Players[0]
	assert.True(t, ivan.Dead)
	// The log never prints a dead player's hp; it is inferred from the last
	// hit they took.
	assert.Equal(t, -80, ivan.FinalHP)
}

func TestExtractBossFight_RequiresBannerFirst(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("Ivan наносит 50\n☠️ БОЙ С БОССОМ ☠️"))
	assert.Nil(t, res.BossFight)
}

func TestExtractBossFight_DeathWithoutHitsKeepsZeroHP(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("☠️ БОЙ С БОССОМ ☠️\nIvan погибает"))
	require.NotNil(t, res.BossFight)
	require.Len(t, res.BossFight.Phases, 1)
	require.Len(t, res.BossFight.Phases[0].Players, 1)
	assert.True(t, res.BossFight.Phases[0].Players[0].Dead)
	assert.Zero(t, res.BossFight.Phases[0].Players[0].FinalHP)
}
