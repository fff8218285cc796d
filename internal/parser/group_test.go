package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gangPanelText = `🤟 Банда: Батары
👑 Ivan
🐐 Козёл: Рогатые
🏅 Лига: Золото
├👤 Ivan 🟢 👂3 📍12км
└👤 Petr 🔴 👂1 📍5км`

const goatPanelText = `🐐 Козёл: Рогатые
🏅 Лига: Золото
🏆 Рейтинг: 1234
👑 Ivan
├🤟 Батары 💪12345 #42
└🤟 Шакалы 💪999`

func TestExtractGangPanel(t *testing.T) {
	p := newTestParser()

	_, grp := p.Parse(textMessage(gangPanelText))
	require.NotNil(t, grp.Gang)
	// The gang panel references its goat in a header line; that must not
	// also fire the goat extractor.
	assert.Nil(t, grp.Goat)

	gang := grp.Gang
	assert.Equal(t, "Батары", gang.Name)
	assert.Equal(t, "Ivan", gang.Leader)
	assert.Equal(t, "Рогатые", gang.Goat)
	assert.Equal(t, "Золото", gang.League)

	require.Len(t, gang.Members, 2)
	assert.Equal(t, GangMember{Nickname: "Ivan", Status: "🟢", Ears: 3, KM: 12}, gang.Members[0])
	assert.Equal(t, GangMember{Nickname: "Petr", Status: "🔴", Ears: 1, KM: 5}, gang.Members[1])
}

func TestExtractGoatPanel(t *testing.T) {
	p := newTestParser()

	_, grp := p.Parse(textMessage(goatPanelText))
	require.NotNil(t, grp.Goat)
	assert.Nil(t, grp.Gang)

	goat := grp.Goat
	assert.Equal(t, "Рогатые", goat.Name)
	assert.Equal(t, "Золото", goat.League)
	assert.Equal(t, 1234, goat.Rating)
	assert.Equal(t, "Ivan", goat.Leader)

	require.Len(t, goat.Gangs, 2)
	assert.Equal(t, GoatGang{Name: "Батары", Power: 12345, ID: 42}, goat.Gangs[0])
	assert.Equal(t, GoatGang{Name: "Шакалы", Power: 999}, goat.Gangs[1])
}

// Panels never come as photo captions; the group extractors skip photos.
func TestExtractGroup_SkipsPhotos(t *testing.T) {
	p := newTestParser()

	m := &Message{ID: 5, Caption: gangPanelText, Photo: true, Date: testDate}
	_, grp := p.Parse(m)
	assert.True(t, grp.Empty())
}
