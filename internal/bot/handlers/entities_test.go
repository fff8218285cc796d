package handlers

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func TestHTMLFromEntities(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		entities []models.MessageEntity
		want     string
	}{
		{
			name: "single bold span",
			text: "Ivan wins",
			entities: []models.MessageEntity{
				{Type: models.MessageEntityTypeBold, Offset: 0, Length: 4},
			},
			want: "<b>Ivan</b> wins",
		},
		{
			name: "cyrillic with two bold names",
			text: "Ivan отвесил тумаков Petr",
			entities: []models.MessageEntity{
				{Type: models.MessageEntityTypeBold, Offset: 0, Length: 4},
				{Type: models.MessageEntityTypeBold, Offset: 21, Length: 4},
			},
			want: "<b>Ivan</b> отвесил тумаков <b>Petr</b>",
		},
		{
			name: "italic initiator",
			text: "Vasya вздёрнут толпой (инициатор: Ivan)",
			entities: []models.MessageEntity{
				{Type: models.MessageEntityTypeItalic, Offset: 23, Length: 15},
			},
			want: "Vasya вздёрнут толпой (<i>инициатор: Ivan</i>)",
		},
		{
			name:     "no entities escapes markup",
			text:     "a < b & c",
			entities: nil,
			want:     "a &lt; b &amp; c",
		},
		{
			name: "entity beyond text is dropped",
			text: "short",
			entities: []models.MessageEntity{
				{Type: models.MessageEntityTypeBold, Offset: 2, Length: 50},
			},
			want: "short",
		},
		{
			name: "emoji offsets are utf16 units",
			text: "🏆 Ivan wins",
			entities: []models.MessageEntity{
				{Type: models.MessageEntityTypeBold, Offset: 3, Length: 4},
			},
			want: "🏆 <b>Ivan</b> wins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlFromEntities(tt.text, tt.entities))
		})
	}
}

func TestCommandArgument(t *testing.T) {
	assert.Equal(t, "", commandArgument("/stat", "/stat"))
	assert.Equal(t, "Ivan", commandArgument("/stat Ivan", "/stat"))
	assert.Equal(t, "Ivan", commandArgument("/stat@wastelandbot Ivan", "/stat"))
	assert.Equal(t, "", commandArgument("/stat@wastelandbot", "/stat"))
}
