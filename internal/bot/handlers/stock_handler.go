package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/wastelandbot/wastelandbot/internal/parser"
)

var stockCategoryTitles = map[string]string{
	string(parser.StockFood):     "🍱 Еда и препараты",
	string(parser.StockResource): "📦 Ресурсы",
	string(parser.StockStuff):    "🗑 Хлам",
	string(parser.StockOther):    "🎒 Прочее",
}

var stockCategoryOrder = []string{
	string(parser.StockFood),
	string(parser.StockResource),
	string(parser.StockStuff),
	string(parser.StockOther),
}

// NewStockHandler returns a handler for the /stock command.
func NewStockHandler(deps HandlerDeps) bot.HandlerFunc {
	return stockHandler{deps}.Handle
}

// stockHandler prints the caller's last forwarded inventory grouped by category.
type stockHandler struct {
	deps HandlerDeps
}

func (h stockHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stock")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Stock handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	items, err := h.deps.Store.GetStock(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load stock", "error", err, "user_id", userID)
		sendText(ctx, b, log, chatID, "Не получилось достать припасы.")
		return
	}
	if len(items) == 0 {
		sendText(ctx, b, log, chatID, "Припасов не нашлось. Перешли мне свой 🎒 Рюкзак.")
		return
	}

	byCategory := make(map[string][]string)
	for _, it := range items {
		line := it.Name
		if it.Amount > 1 {
			line = fmt.Sprintf("%s (x%d)", it.Name, it.Amount)
		}
		byCategory[it.Category] = append(byCategory[it.Category], line)
	}

	var sb strings.Builder
	for _, cat := range stockCategoryOrder {
		lines := byCategory[cat]
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s:\n", stockCategoryTitles[cat])
		for _, line := range lines {
			fmt.Fprintf(&sb, "▫️ %s\n", line)
		}
		sb.WriteString("\n")
	}

	sendText(ctx, b, log, chatID, strings.TrimRight(sb.String(), "\n"))
}
