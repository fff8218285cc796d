package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raidMessage(text string, at time.Time) *Message {
	return &Message{ID: 2, Text: text, Date: at}
}

func TestExtractRaid_HourOnly(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name string
		text string
		at   time.Time
		want time.Time
	}{
		{
			name: "same day when hour already passed",
			text: "Рейд в 14:00",
			at:   time.Date(2026, 6, 21, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 6, 21, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "rolls back a day when hour is still ahead",
			text: "Рейд в 23:00",
			at:   time.Date(2026, 6, 21, 0, 30, 0, 0, time.UTC),
			want: time.Date(2026, 6, 20, 23, 0, 0, 0, time.UTC),
		},
		{
			name: "exact boundary stays on the same day",
			text: "Рейд в 15:00",
			at:   time.Date(2026, 6, 21, 15, 0, 0, 0, time.UTC),
			want: time.Date(2026, 6, 21, 15, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := p.Parse(raidMessage(tt.text, tt.at))
			require.NotNil(t, res.Raid)
			assert.Equal(t, tt.want, res.Raid.Time)
		})
	}
}

func TestExtractRaid_WithDate(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(raidMessage("Рейд в 14:00 21.06", time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)))
	require.NotNil(t, res.Raid)
	assert.Equal(t, time.Date(2026, 6, 21, 14, 0, 0, 0, time.UTC), res.Raid.Time)
}

func TestExtractRaid_WithDateRollsBackYear(t *testing.T) {
	p := newTestParser()

	// Forwarded before the named date: the banner is from last year.
	res, _ := p.Parse(raidMessage("Рейд в 14:00 21.06", time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)))
	require.NotNil(t, res.Raid)
	assert.Equal(t, time.Date(2025, 6, 21, 14, 0, 0, 0, time.UTC), res.Raid.Time)
}

func TestExtractRaid_CurrentInterval(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(raidMessage("Ты уже стоишь на точке", time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)))
	require.NotNil(t, res.Raid)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), res.Raid.Time)
}

// A profile forward can carry the raid banner at the bottom; one pass fills
// both slots.
func TestExtractRaid_EmbeddedInProfile(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage(longProfileText + "\nРейд в 14:00"))
	require.NotNil(t, res.Profile)
	require.NotNil(t, res.Raid)
	assert.Equal(t, "Ivan", res.Profile.Nickname)
	assert.Equal(t, time.Date(2026, 6, 21, 14, 0, 0, 0, time.UTC), res.Raid.Time)
}

func TestExtractRaid_Rewards(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(raidMessage("Рейд в 14:00\n💉 Госпиталь наш!\n🏆🏆 📦", testDate))
	require.NotNil(t, res.Raid)
	assert.Equal(t, 2, res.Raid.Cups)
	assert.Equal(t, 1, res.Raid.Boxes)
	assert.Equal(t, 16, res.Raid.KM)
}

func TestExtractRaid_InvalidValues(t *testing.T) {
	p := newTestParser()

	for _, text := range []string{"Рейд в 77:00", "Рейд в 14:00 40.13"} {
		res, _ := p.Parse(raidMessage(text, testDate))
		assert.Nil(t, res.Raid, "unexpected raid for %q", text)
	}
}

func TestExtractLoot(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		text     string
		wantWhat string
		wantKM   int
	}{
		{
			name:     "reward icon pins the location",
			text:     "💾 Датацентр\n🕸Ты нашёл: Микросхема",
			wantWhat: "Микросхема",
			wantKM:   24,
		},
		{
			name:     "food classifies to the food location",
			text:     "🕸Ты нашёл: Тушёнка",
			wantWhat: "Тушёнка",
			wantKM:   20,
		},
		{
			name:     "drugs classify to the hospital",
			text:     "🕸Ты нашёл: Стимулятор",
			wantWhat: "Стимулятор",
			wantKM:   16,
		},
		{
			name:     "unknown item keeps km zero",
			text:     "🕸Ты нашёл: Сломанный тостер",
			wantWhat: "Сломанный тостер",
			wantKM:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := p.Parse(textMessage(tt.text))
			require.NotNil(t, res.Loot)
			assert.Equal(t, tt.wantWhat, res.Loot.What)
			assert.Equal(t, tt.wantKM, res.Loot.KM)
		})
	}
}

func TestExtractLoss(t *testing.T) {
	p := newTestParser()

	res, _ := p.Parse(textMessage("🕳Ты потерял: Доска"))
	require.NotNil(t, res.Loss)
	assert.Equal(t, "Доска", res.Loss.What)
}
