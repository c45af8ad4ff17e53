// Package leopard implements Ninja Leopard, a side-view arena where the
// player dodges enemy bombs and fires thunder until every enemy is down.
// Losing the last life restores full lives after a short pause; the run
// only ends when the player quits.
package leopard

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/core"
	"github.com/vovakirdan/ninja-leopard/internal/logging"
	"github.com/vovakirdan/ninja-leopard/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "leopard"

// Game adapts a World to the registry.Game interface.
type Game struct {
	world      *World
	sprites    PoseProvider
	configPath string
	logger     *log.Logger
	runtime    core.RuntimeConfig
}

// Option configures a Game.
type Option func(*Game)

// WithConfigPath makes Reset load path instead of the default locations.
func WithConfigPath(path string) Option {
	return func(g *Game) {
		g.configPath = path
	}
}

// WithLogger sets the logger handed to new worlds.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSprites renders with p instead of the terminal glyphs.
func WithSprites(p PoseProvider) Option {
	return func(g *Game) {
		g.sprites = p
	}
}

// New creates a game drawn with the terminal glyph sprites unless
// WithSprites says otherwise.
func New(opts ...Option) *Game {
	g := &Game{
		sprites: GlyphSprites(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ninja Leopard"
}

// Reset loads the config and starts a fresh world. On error the previous
// world, if any, keeps running.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return fmt.Errorf("leopard: %w", err)
	}
	return g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh world from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.LeopardConfig) error {
	if err := ValidateProvider(g.sprites); err != nil {
		return err
	}

	world, err := NewWorld(cfg, runtime.Seed, g.logger)
	if err != nil {
		return err
	}

	g.world = world
	g.runtime = runtime
	g.logger.Info("game reset", "enemies", len(cfg.Spawns), "seed", runtime.Seed)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}
	g.world.Step(in)
	return core.StepResult{State: g.world.State()}
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	RenderSnapshot(dst, g.world.Snapshot(), g.sprites)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return g.world.State()
}

// Snapshot returns the current render snapshot. It is the zero value
// before the first successful Reset.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}

// Sprites returns the game's pose provider.
func (g *Game) Sprites() PoseProvider {
	return g.sprites
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
