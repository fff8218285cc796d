// Package listeners implements the event fan-out boundary: parse results are
// broadcast to every registered game-logic listener, each of which reads only
// the slots it cares about.
package listeners

import (
	"context"
	"log/slog"

	"github.com/wastelandbot/wastelandbot/internal/parser"
)

// PlayerListener consumes the player-scoped aggregate result.
type PlayerListener interface {
	Name() string
	HandlePlayer(ctx context.Context, res *parser.Result) error
}

// GroupListener consumes the group-scoped aggregate result.
type GroupListener interface {
	Name() string
	HandleGroup(ctx context.Context, res *parser.GroupResult) error
}

// Registry holds the registered listeners and broadcasts results to them.
type Registry struct {
	logger  *slog.Logger
	players []PlayerListener
	groups  []GroupListener
}

// NewRegistry creates an empty listener registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger.With("component", "listeners")}
}

// RegisterPlayer adds a player-scoped listener.
func (r *Registry) RegisterPlayer(l PlayerListener) {
	r.players = append(r.players, l)
}

// RegisterGroup adds a group-scoped listener.
func (r *Registry) RegisterGroup(l GroupListener) {
	r.groups = append(r.groups, l)
}

// Publish delivers both aggregate results. A failing listener is logged and
// skipped; one listener must never suppress another. Listeners tolerate
// all-slots-absent results, so empty results are delivered too.
func (r *Registry) Publish(ctx context.Context, res *parser.Result, grp *parser.GroupResult) {
	for _, l := range r.players {
		if err := l.HandlePlayer(ctx, res); err != nil {
			r.logger.ErrorContext(ctx, "Player listener failed",
				"listener", l.Name(), "message_id", res.Msg.ID, "error", err)
		}
	}
	for _, l := range r.groups {
		if err := l.HandleGroup(ctx, grp); err != nil {
			r.logger.ErrorContext(ctx, "Group listener failed",
				"listener", l.Name(), "message_id", grp.Msg.ID, "error", err)
		}
	}
}
