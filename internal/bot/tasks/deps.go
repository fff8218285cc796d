// Package tasks implements scheduled tasks for the wasteland stats bot.
// It includes task definitions, dependencies, and registration mechanisms.
package tasks

import (
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/wastelandbot/wastelandbot/internal/config"
	"github.com/wastelandbot/wastelandbot/internal/database"
	"github.com/wastelandbot/wastelandbot/internal/world"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
	World  *world.Data
	Bot    *tgbot.Bot
}
