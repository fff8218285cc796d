package handlers

import (
	"log/slog"

	"github.com/wastelandbot/wastelandbot/internal/bot/listeners"
	"github.com/wastelandbot/wastelandbot/internal/config"
	"github.com/wastelandbot/wastelandbot/internal/database"
	"github.com/wastelandbot/wastelandbot/internal/parser"
	"github.com/wastelandbot/wastelandbot/internal/world"
)

// HandlerDeps provides dependencies for Telegram command and message handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Store     database.Store
	World     *world.Data
	Parser    *parser.Parser
	Listeners *listeners.Registry
}
