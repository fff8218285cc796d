package handlers

import (
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFromTelegram(t *testing.T) {
	msg := &models.Message{
		ID:   127,
		Text: "Ivan отвесил тумаков Petr",
		Date: 1750519800,
		From: &models.User{ID: 555},
		Entities: []models.MessageEntity{
			{Type: models.MessageEntityTypeBold, Offset: 0, Length: 4},
		},
	}

	pm := messageFromTelegram(msg)

	assert.Equal(t, int64(127), pm.ID)
	assert.Equal(t, msg.Text, pm.Text)
	assert.Equal(t, int64(555), pm.SenderID)
	assert.Equal(t, time.Unix(1750519800, 0), pm.Date)
	assert.Equal(t, "<b>Ivan</b> отвесил тумаков Petr", pm.HTMLText)
	assert.False(t, pm.Photo)
	assert.True(t, pm.ForwardDate.IsZero())
	assert.Equal(t, msg.Text, pm.Body())
}

func TestMessageFromTelegramPhotoCaption(t *testing.T) {
	msg := &models.Message{
		ID:      128,
		Caption: "🎒 Запасы:",
		Date:    1750519800,
		Photo:   []models.PhotoSize{{FileID: "x"}},
	}

	pm := messageFromTelegram(msg)

	require.True(t, pm.Photo)
	assert.Equal(t, msg.Caption, pm.Body())
	assert.Zero(t, pm.SenderID)
}

func TestMessageFromTelegramForwardDate(t *testing.T) {
	msg := &models.Message{
		ID:   129,
		Text: "Рейд в 14:00",
		Date: 1750519800,
		ForwardOrigin: &models.MessageOrigin{
			Type:              models.MessageOriginTypeUser,
			MessageOriginUser: &models.MessageOriginUser{Date: 1750516200},
		},
	}

	pm := messageFromTelegram(msg)

	assert.Equal(t, time.Unix(1750516200, 0), pm.ForwardDate)
	assert.Equal(t, time.Unix(1750516200, 0), pm.When())
}
