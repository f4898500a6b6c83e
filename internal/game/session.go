package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/crawler/internal/entity"
	"github.com/samdwyer/crawler/internal/gamedata"
	"github.com/samdwyer/crawler/internal/telemetry"
)

// ErrNotRunning is returned for item actions while the game is paused or over.
var ErrNotRunning = errors.New("game is not running")

// ErrUnknownItemID is returned when the starting kit names an item the
// catalog does not have.
var ErrUnknownItemID = errors.New("unknown item id")

// Mode is the top-level state of a session.
type Mode int

const (
	// ModeMenu has no active game.
	ModeMenu Mode = iota
	// ModeInGame owns an active game.
	ModeInGame
	// ModeTerminated ignores all further input.
	ModeTerminated
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeInGame:
		return "in_game"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session switches between the menu and an active game in response to
// input tokens. It is the only owner of the game it creates.
type Session struct {
	cfg    Config
	kit    []entity.Item
	logger *zap.Logger
	mode   Mode
	game   *Game
}

// NewSession creates a session in the menu. Starting kit IDs are resolved
// against the catalog up front.
func NewSession(cfg Config, catalog *gamedata.ItemRegistry, logger *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	kit := make([]entity.Item, 0, len(cfg.StartingKit))
	for _, id := range cfg.StartingKit {
		var def *gamedata.ItemDef
		if catalog != nil {
			def = catalog.GetByID(id)
		}
		if def == nil {
			return nil, fmt.Errorf("starting kit: %w: %q", ErrUnknownItemID, id)
		}
		item, err := entity.NewItemFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("starting kit: %w", err)
		}
		kit = append(kit, item)
	}

	return &Session{
		cfg:    cfg,
		kit:    kit,
		logger: logger,
		mode:   ModeMenu,
	}, nil
}

// Mode returns the current session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Game returns the active game, or nil outside ModeInGame.
// Renderers must treat it as read-only.
func (s *Session) Game() *Game {
	return s.game
}

// Handle interprets one input token and applies it.
func (s *Session) Handle(ctx context.Context, token string) Outcome {
	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "session.handle")
	defer span.End()

	token = strings.TrimSpace(token)
	from := s.mode

	var out Outcome
	switch s.mode {
	case ModeMenu:
		out = s.handleMenu(ctx, token)
	case ModeInGame:
		out = s.handleInGame(ctx, token)
	default:
		out = Outcome{Kind: OutcomeQuit}
	}
	out.Token = token

	span.SetAttributes(
		attribute.String("session.mode_from", from.String()),
		attribute.String("session.mode_to", s.mode.String()),
		attribute.String("session.outcome", out.Kind.String()),
	)
	if out.Err != nil {
		span.RecordError(out.Err)
	}

	s.logger.Debug("handled token",
		zap.String("token", token),
		zap.Stringer("from", from),
		zap.Stringer("to", s.mode),
		zap.Stringer("outcome", out.Kind),
		zap.Error(out.Err),
	)
	return out
}

func (s *Session) handleMenu(ctx context.Context, token string) Outcome {
	switch strings.ToLower(token) {
	case "1", "n", "new":
		s.startGame(ctx)
		return Outcome{Kind: OutcomeStarted}
	case "2", "l", "load":
		return Outcome{Kind: OutcomeNotImplemented}
	case "3", "q", "quit", "exit":
		s.mode = ModeTerminated
		s.logger.Info("session terminated")
		return Outcome{Kind: OutcomeQuit}
	default:
		return Outcome{Kind: OutcomeInvalid}
	}
}

func (s *Session) handleInGame(ctx context.Context, token string) Outcome {
	fields := strings.Fields(strings.ToLower(token))
	var command, arg string
	if len(fields) > 0 {
		command = fields[0]
	}
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch command {
	case "q", "quit":
		s.logger.Info("left game",
			zap.Int("turn", s.game.Turn()),
			zap.Int("level", s.game.Player.Level),
		)
		s.game = nil
		s.mode = ModeMenu
		return Outcome{Kind: OutcomeLeftGame}
	case "e", "equip":
		return s.equip(ctx, arg)
	case "u", "use":
		return s.use(ctx, arg)
	case "p", "pause":
		return s.togglePause()
	default:
		s.game.Update(ctx)
		if s.game.ResolveDeath() {
			s.logger.Info("game over", zap.Int("turn", s.game.Turn()))
		}
		return Outcome{Kind: OutcomeAdvanced}
	}
}

func (s *Session) togglePause() Outcome {
	if s.game.State() == StatePaused {
		if err := s.game.Resume(); err != nil {
			return Outcome{Kind: OutcomeActionFailed, Err: err}
		}
		return Outcome{Kind: OutcomeResumed}
	}
	if err := s.game.Pause(); err != nil {
		return Outcome{Kind: OutcomeActionFailed, Err: err}
	}
	return Outcome{Kind: OutcomePaused}
}

func (s *Session) startGame(ctx context.Context) {
	g := NewGame(ctx, s.cfg)
	for _, item := range s.kit {
		g.Player.AddItem(item)
	}
	s.game = g
	s.mode = ModeInGame
	s.logger.Info("started game",
		zap.String("player", g.Player.Name),
		zap.Int("map_width", g.Map.Width),
		zap.Int("map_height", g.Map.Height),
		zap.Int("starting_items", len(s.kit)),
	)
}

func (s *Session) equip(ctx context.Context, arg string) Outcome {
	_, span := telemetry.Tracer("session").Start(ctx, "player.equip")
	defer span.End()

	if state := s.game.State(); state != StateRunning {
		span.SetAttributes(attribute.Bool("failed", true))
		return Outcome{Kind: OutcomeActionFailed, Err: fmt.Errorf("%w: %s", ErrNotRunning, state)}
	}

	p := s.game.Player
	index := parseSlot(arg)
	item, _ := itemAt(p, index)
	if err := p.EquipAt(index); err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return Outcome{Kind: OutcomeActionFailed, Err: err}
	}

	span.SetAttributes(
		attribute.String("item.name", item.Name),
		attribute.Int("player.attack", p.Attack()),
		attribute.Int("player.defense", p.Defense()),
	)
	return Outcome{Kind: OutcomeEquipped, Item: item}
}

func (s *Session) use(ctx context.Context, arg string) Outcome {
	_, span := telemetry.Tracer("session").Start(ctx, "player.use")
	defer span.End()

	if state := s.game.State(); state != StateRunning {
		span.SetAttributes(attribute.Bool("failed", true))
		return Outcome{Kind: OutcomeActionFailed, Err: fmt.Errorf("%w: %s", ErrNotRunning, state)}
	}

	p := s.game.Player
	index := parseSlot(arg)
	item, _ := itemAt(p, index)
	if err := p.UseAt(index); err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return Outcome{Kind: OutcomeActionFailed, Err: err}
	}

	span.SetAttributes(
		attribute.String("item.name", item.Name),
		attribute.Int("player.health", p.Health),
	)
	return Outcome{Kind: OutcomeUsed, Item: item}
}

// parseSlot converts a 1-based slot number into an inventory index.
// Anything unparsable maps to -1, which the player rejects.
func parseSlot(arg string) int {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return -1
	}
	return n - 1
}

func itemAt(p *entity.Player, index int) (entity.Item, bool) {
	inv := p.Inventory()
	if index < 0 || index >= len(inv) {
		return entity.Item{}, false
	}
	return inv[index].Item, true
}
