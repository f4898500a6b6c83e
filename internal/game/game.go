package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crawler/internal/entity"
	"github.com/samdwyer/crawler/internal/telemetry"
	"github.com/samdwyer/crawler/internal/world"
)

// Game is one run: a player on a map.
type Game struct {
	Player *entity.Player
	Map    *world.Map
	state  State
	turn   int
}

// New wraps an existing player and map in a running game.
func New(player *entity.Player, m *world.Map) *Game {
	return &Game{
		Player: player,
		Map:    m,
		state:  StateRunning,
	}
}

// NewGame creates a fresh player and a map with one centered room.
func NewGame(ctx context.Context, cfg Config) *Game {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new")
	defer span.End()

	m := world.NewMap(cfg.MapWidth, cfg.MapHeight)
	m.Generate(ctx, world.NewRoom(cfg.RoomWidth, cfg.RoomHeight))

	span.SetAttributes(
		attribute.String("player.name", cfg.PlayerName),
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
	)

	return New(entity.NewPlayer(cfg.PlayerName), m)
}

// State returns the current run state.
func (g *Game) State() State {
	return g.state
}

// Turn returns how many turns have been played.
func (g *Game) Turn() int {
	return g.turn
}

// Update advances the run by one turn. Only running games advance; there
// is no per-turn simulation yet.
func (g *Game) Update(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.update")
	defer span.End()

	span.SetAttributes(attribute.String("game.state", g.state.String()))
	if g.state != StateRunning {
		return
	}
	g.turn++
	span.SetAttributes(attribute.Int("game.turn", g.turn))
}

// Pause suspends a running game.
func (g *Game) Pause() error {
	return g.transition(StateRunning, StatePaused)
}

// Resume continues a paused game.
func (g *Game) Resume() error {
	return g.transition(StatePaused, StateRunning)
}

// ResolveDeath ends the run if the player is dead. It returns true if the
// game moved to StateGameOver.
func (g *Game) ResolveDeath() bool {
	if g.state == StateGameOver || g.Player.IsAlive() {
		return false
	}
	g.state = StateGameOver
	return true
}

func (g *Game) transition(from, to State) error {
	if g.state != from {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, g.state, to)
	}
	g.state = to
	return nil
}
