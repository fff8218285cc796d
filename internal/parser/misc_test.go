package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractInfoLine(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("❤️89/100 🍗10% 🔋4/5 📍12км"))
	require.NotNil(t, res.Info)

	assert.Equal(t, &InfoLine{HP: 89, MaxHP: 100, Hunger: 10, Stamina: 4, MaxStamina: 5, KM: 12}, res.Info)
}

func TestExtractPVE(t *testing.T) {
	p := newTestParser()

	text := "💥Ты нанёс 45 урона\n🩸Ты получил 30 урона\n😵Радтаракан повержен\n\n❤️89/100 🍗10% 🔋4/5 📍12км"
	res, _ := p.Parse(textMessage(text))
	require.NotNil(t, res.PVE)

	assert.Equal(t, 45, res.PVE.DamageDealt)
	assert.Equal(t, 30, res.PVE.DamageTaken)
	assert.Equal(t, "Радтаракан", res.PVE.Mob)
	assert.True(t, res.PVE.Win)
}

// The damage lines alone also appear in raid and boss logs, so the pve
// extractor only fires on messages carrying the status footer.
func TestExtractPVE_RequiresInfoLine(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("💥Ты нанёс 45 урона"))
	assert.Nil(t, res.PVE)
}

func TestExtractMeeting(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("🤝 Ты встретил ⚙️ Vasya"))
	require.NotNil(t, res.Meeting)
	assert.Equal(t, "Vasya", res.Meeting.Nickname)
	assert.Equal(t, "⚙️", res.Meeting.FractionIcon)
}

func TestExtractGetto(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("🏚 Гетто\n👤 Boris\n👤 Vasya"))
	require.NotNil(t, res.Getto)
	assert.Equal(t, []string{"Boris", "Vasya"}, res.Getto.Players)
}

func TestExtractView(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("🔭 Осмотр местности\n👤 Vasya ⚛️ 📍12км\n👤 Boris 🔰 📍8км"))
	require.NotNil(t, res.View)
	require.Len(t, res.View.Sightings, 2)

	assert.Equal(t, Sighting{Nickname: "Vasya", FractionIcon: "⚛️", KM: 12}, res.View.Sightings[0])
	assert.Equal(t, Sighting{Nickname: "Boris", FractionIcon: "🔰", KM: 8}, res.View.Sightings[1])
}

func TestExtractView_EmptyRoster(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("🔭 Осмотр местности\nВокруг ни души."))
	assert.Nil(t, res.View)
}

func TestExtractSumStatTop(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("🏆 Топ игроков по сумме характеристик\n1. Ivan — 520\n2. Petr — 480"))
	require.NotNil(t, res.SumStatTop)
	require.Len(t, res.SumStatTop.Rows, 2)

	assert.Equal(t, SumStatRow{Rank: 1, Nickname: "Ivan", Sum: 520}, res.SumStatTop.Rows[0])
	assert.Equal(t, SumStatRow{Rank: 2, Nickname: "Petr", Sum: 480}, res.SumStatTop.Rows[1])
}

func TestExtractScuffle_HTMLVariant(t *testing.T) {
	p := newTestParser()

	m := &Message{
		ID:       6,
		Text:     "Ivan отвесил тумаков Petr",
		HTMLText: "<b>Ivan</b> отвесил тумаков <b>Petr</b>",
		Date:     testDate,
	}
	res, _ := p.Parse(m)
	require.NotNil(t, res.Scuffle)
	assert.Equal(t, "Ivan", res.Scuffle.Winner)
	assert.Equal(t, "Petr", res.Scuffle.Looser)
}

// Without the HTML render the actor names are indistinguishable from the
// surrounding copy, so the plain text alone must not match.
func TestExtractScuffle_PlainTextDoesNotMatch(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("Ivan отвесил тумаков Petr"))
	assert.Nil(t, res.Scuffle)
}

func TestExtractLynch(t *testing.T) {
	p := newTestParser()

	m := &Message{
		ID:       7,
		HTMLText: "<b>Vasya</b> вздёрнут толпой (<i>инициатор: Ivan</i>)\n<b>Boris</b> вздёрнут толпой",
		Date:     testDate,
	}
	res, _ := p.Parse(m)
	require.Len(t, res.Lynch, 2)

	assert.Equal(t, LynchVerdict{Victim: "Vasya", Initiator: "Ivan"}, res.Lynch[0])
	assert.Equal(t, LynchVerdict{Victim: "Boris"}, res.Lynch[1])
}

func TestExtractPokemobDead(t *testing.T) {
	p := newTestParser()

	m := &Message{
		ID:       8,
		HTMLText: "Покемоб <b>Гекко</b> повержен! Последний удар: <b>Ivan</b>",
		Date:     testDate,
	}
	res, _ := p.Parse(m)
	require.NotNil(t, res.PokemobDead)
	assert.Equal(t, "Гекко", res.PokemobDead.Mob)
	assert.Equal(t, "Ivan", res.PokemobDead.LastHit)
}

func TestMessageWhen_PrefersForwardDate(t *testing.T) {
	fwd := testDate.Add(-2 * time.Hour)
	m := &Message{ID: 9, Text: "x", Date: testDate, ForwardDate: fwd}
	assert.Equal(t, fwd, m.When())

	m2 := &Message{ID: 10, Text: "x", Date: testDate}
	assert.Equal(t, testDate, m2.When())
}
