package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastelandbot/wastelandbot/internal/world"
)

var testDate = time.Date(2026, 6, 21, 15, 30, 0, 0, time.UTC)

func newTestParser() *Parser {
	return New(world.New(), nil)
}

func textMessage(text string) *Message {
	return &Message{ID: 1, Text: text, Date: testDate}
}

const longProfileText = `📟 Пип-бой 3000
👤 Ivan
🤟 Банда: TestGang
⚜️ Фракция: ⚛️ Республика
❤️ Здоровье: 100/150
🍗 Голод: 10%
⚔️ Урон: 45 (+10)
🛡 Броня: 30
💪 Сила: 30
🏃 Ловкость: 20
🗣 Харизма: 15
🎯 Меткость: 25
🔋 Выносливость: 4/5
🏵 Дзен: 3
📍 12км`

const shortProfileText = `👤Ivan🏵🏵🏵
├🤟 TestGang
├⚛️Республика
├❤️100/150
├🍗10%
├⚔️45(+10) 🛡30
├💪30 🏃20
├🗣15 🎯25
├🔋4/5
└📍12км`

func TestExtractProfile_LongDialect(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage(longProfileText))
	require.NotNil(t, res.Profile)

	prof := res.Profile
	assert.Equal(t, "Ivan", prof.Nickname)
	assert.Equal(t, "TestGang", prof.Gang)
	assert.Equal(t, world.FractionRepublic, prof.Fraction)
	assert.Empty(t, prof.FractionLabel)
	assert.Equal(t, 100, prof.CurrentHP)
	assert.Equal(t, 150, prof.Stats.HP)
	assert.Equal(t, 10, prof.Hunger)
	assert.Equal(t, 45, prof.Stats.Attack)
	assert.Equal(t, 30, prof.Stats.Defence)
	assert.Equal(t, 30, prof.Stats.Power)
	assert.Equal(t, 20, prof.Stats.Agility)
	assert.Equal(t, 15, prof.Stats.Oratory)
	assert.Equal(t, 25, prof.Stats.Accuracy)
	assert.Equal(t, 4, prof.CurrentStamina)
	assert.Equal(t, 5, prof.Stats.Stamina)
	assert.Equal(t, 3, prof.Stats.Dzen)
	assert.Equal(t, 12, prof.Distance)
	assert.False(t, prof.OnRaid)
	assert.Equal(t, testDate, prof.Stats.Timestamp)
}

func TestExtractProfile_ShortDialect(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage(shortProfileText))
	require.NotNil(t, res.Profile)

	prof := res.Profile
	assert.Equal(t, "Ivan", prof.Nickname)
	assert.Equal(t, "TestGang", prof.Gang)
	assert.Equal(t, world.FractionRepublic, prof.Fraction)
	assert.Equal(t, 3, prof.Stats.Dzen)
	assert.Equal(t, 12, prof.Distance)
}

// The two dialects render the same underlying state and must normalize to
// the same Profile.
func TestExtractProfile_DialectEquivalence(t *testing.T) {
	p := newTestParser()

	long, _ := p.Parse(textMessage(longProfileText))
	short, _ := p.Parse(textMessage(shortProfileText))

	require.NotNil(t, long.Profile)
	require.NotNil(t, short.Profile)
	assert.Equal(t, long.Profile, short.Profile)
}

func TestExtractProfile_MinimalShort(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("👤Ivan🏵🏵🏵\n├🤟 TestGang\n├⚛️Republic\n├❤️100/150"))
	require.NotNil(t, res.Profile)

	assert.Equal(t, "Ivan", res.Profile.Nickname)
	assert.Equal(t, 3, res.Profile.Stats.Dzen)
	assert.Equal(t, world.FractionRepublic, res.Profile.Fraction)
	assert.Equal(t, "TestGang", res.Profile.Gang)
	assert.Equal(t, 100, res.Profile.CurrentHP)
	assert.Equal(t, 150, res.Profile.Stats.HP)
}

// A bare "👤 Name" roster line must not be mistaken for a short profile.
func TestExtractProfile_RosterLineIsNotProfile(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("⚡️ Купол Грома ⚡️\n👤 Boris\n👤 Vasya"))
	assert.Nil(t, res.Profile)
	require.NotNil(t, res.Dome)
	assert.Equal(t, []string{"Boris", "Vasya"}, res.Dome.Fighters)
}

func TestExtractProfile_Dzen(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "inline counter wins over later encodings",
			text: "📟 Пип-бой\n👤 Ivan\n🏵 Дзен: 5\n🏵 [▓▓░░]",
			want: 5,
		},
		{
			name: "medal run",
			text: "📟 Пип-бой\n👤 Ivan\n🏵🏵",
			want: 2,
		},
		{
			name: "medal with digit",
			text: "📟 Пип-бой\n👤 Ivan\n🏵7",
			want: 7,
		},
		{
			name: "progress bar renders one extra cell",
			text: "📟 Пип-бой\n👤 Ivan\n🏵 [▓▓▓▓░░]",
			want: 3,
		},
		{
			name: "no encoding at all",
			text: "📟 Пип-бой\n👤 Ivan\n❤️ Здоровье: 10/10",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := p.Parse(textMessage(tt.text))
			require.NotNil(t, res.Profile)
			assert.Equal(t, tt.want, res.Profile.Stats.Dzen)
		})
	}
}

func TestExtractProfile_UnknownFractionKeepsLabel(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("📟 Пип-бой\n👤 Ivan\n⚜️ Фракция: Дикари"))
	require.NotNil(t, res.Profile)
	assert.Equal(t, world.UnknownFraction, res.Profile.Fraction)
	assert.Equal(t, "Дикари", res.Profile.FractionLabel)
}

func TestExtractProfile_OnRaidFlag(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("📟 Пип-бой\n👤 Ivan\n📍 12км ⚔️Рейд"))
	require.NotNil(t, res.Profile)
	assert.True(t, res.Profile.OnRaid)
}

func TestExtractProfile_HiddenTelegramID(t *testing.T) {
	p := newTestParser()

	text := "📟 Пип-бой\n👤 Ivan\n❤️ Здоровье: 10/10" + EncodeHiddenID(123456789)
	res, _ := p.Parse(textMessage(text))
	require.NotNil(t, res.Profile)
	assert.Equal(t, int64(123456789), res.Profile.TelegramID)
}

func TestExtractProfile_NicknameEmojiStripped(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("📟 Пип-бой\n👤 🔥Ivan🔥\n❤️ Здоровье: 10/10"))
	require.NotNil(t, res.Profile)
	assert.Equal(t, "Ivan", res.Profile.Nickname)
}

func TestParse_UnrelatedTextYieldsNothing(t *testing.T) {
	p := newTestParser()

	for _, text := range []string{
		"Привет, как дела?",
		"go run main.go",
		"🏆 поздравляю с победой!",
		"👤",
	} {
		res, grp := p.Parse(textMessage(text))
		assert.True(t, res.Empty(), "unexpected match for %q", text)
		assert.True(t, grp.Empty(), "unexpected group match for %q", text)
	}
}

func TestParse_EmptyMessage(t *testing.T) {
	p := newTestParser()

	res, grp := p.Parse(&Message{ID: 7, Date: testDate})
	assert.True(t, res.Empty())
	assert.True(t, grp.Empty())
}

func TestHiddenIDRoundTrip(t *testing.T) {
	assert.Equal(t, int64(42), decodeHiddenID("hello"+EncodeHiddenID(42)+"world"))
	assert.Equal(t, int64(0), decodeHiddenID("no cipher here"))
	assert.Empty(t, EncodeHiddenID(0))
}
