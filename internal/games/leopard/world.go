package leopard

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/core"
	"github.com/vovakirdan/ninja-leopard/internal/logging"
)

// World owns every entity and advances them one frame at a time.
// The simulation is deterministic for a given config, seed and input
// sequence.
type World struct {
	cfg      config.LeopardConfig
	viewport core.Box
	logger   *log.Logger

	player   *Player
	enemies  []*Enemy
	bombs    []*Projectile
	thunders []*Projectile

	tick     int // Gameplay frames simulated
	cooldown int // Frames left in the life-lost pause
	paused   bool
	quit     bool
	defeated int
	resets   int
}

// NewWorld validates cfg and builds the initial layout: the player on the
// ground and one enemy per spawn point. seed only picks enemy variants.
func NewWorld(cfg config.LeopardConfig, seed int64, logger *log.Logger) (*World, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("leopard: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:      cfg,
		viewport: core.NewBox(0, 0, cfg.Viewport.Width, cfg.Viewport.Height),
		logger:   logger,
		player:   NewPlayer(cfg),
		enemies:  make([]*Enemy, 0, len(cfg.Spawns)),
	}
	for _, sp := range cfg.Spawns {
		w.enemies = append(w.enemies, NewEnemy(sp, cfg, rng.Intn(cfg.Enemy.Variants)))
	}

	logger.Debug("world created", "enemies", len(w.enemies), "seed", seed)
	return w, nil
}

// Step advances the world by one frame.
//
// Order: quit/escape, pause toggle, life-lost cooldown, fire, player
// update, enemy updates (collecting bombs), projectile updates, then the
// three collision passes and compaction.
func (w *World) Step(in core.InputFrame) {
	if in.WasPressed(core.ActionQuit) || in.WasPressed(core.ActionEscape) {
		if !w.quit {
			w.logger.Info("quit requested", "tick", w.tick)
		}
		w.quit = true
	}
	if w.quit {
		return
	}

	if in.WasPressed(core.ActionPause) {
		w.paused = !w.paused
	}
	if w.paused {
		return
	}

	if w.cooldown > 0 {
		w.cooldown--
		return
	}

	w.tick++

	if in.WasPressed(core.ActionFire) {
		w.fireThunder()
	}

	w.player.Update(in)

	for _, e := range w.enemies {
		if b := e.Update(); b != nil {
			w.bombs = append(w.bombs, b)
			w.logger.Debug("bomb dropped", "x", b.box.X, "y", b.box.Y, "tick", w.tick)
		}
	}
	for _, b := range w.bombs {
		b.Update()
	}
	for _, t := range w.thunders {
		t.Update()
	}

	w.resolveEnemyContact()
	w.resolveBombHits()
	w.resolveThunderHits()

	w.enemies = compact(w.enemies)
	w.bombs = compact(w.bombs)
	w.thunders = compact(w.thunders)
}

func (w *World) fireThunder() {
	x, y, dir := w.player.thunderOrigin(w.cfg.Thunder.Width)
	w.thunders = append(w.thunders, NewThunder(x, y, dir, w.cfg.Thunder, w.cfg.Viewport.Width))
}

// resolveEnemyContact costs the player one life per overlapping enemy.
// Enemies are unaffected, so contact keeps hurting every frame.
func (w *World) resolveEnemyContact() {
	for _, e := range w.enemies {
		if e.alive && e.box.Intersects(w.player.box) {
			w.damagePlayer(KindEnemy)
		}
	}
}

// resolveBombHits removes each bomb touching the player and costs one
// life per bomb.
func (w *World) resolveBombHits() {
	for _, b := range w.bombs {
		if b.alive && b.box.Intersects(w.player.box) {
			b.kill()
			w.damagePlayer(KindBomb)
		}
	}
}

// resolveThunderHits matches thunders against the enemies alive when the
// pass starts. Every overlapping pair costs the enemy one life and every
// thunder that hit anything is removed.
func (w *World) resolveThunderHits() {
	var struck []*Enemy
	for _, t := range w.thunders {
		if !t.alive {
			continue
		}
		hit := false
		for _, e := range w.enemies {
			if e.alive && t.box.Intersects(e.box) {
				struck = append(struck, e)
				hit = true
			}
		}
		if hit {
			t.kill()
		}
	}

	for _, e := range struck {
		if e.hit() {
			w.defeated++
			w.logger.Info("enemy defeated", "defeated", w.defeated, "remaining", w.aliveEnemies())
		}
	}
}

func (w *World) damagePlayer(by Kind) {
	if w.player.loseLife() {
		w.resets++
		w.cooldown = w.cfg.Session.LifeLostPauseTicks
		w.logger.Warn("all lives lost, restoring", "resets", w.resets, "pause", w.cooldown)
		return
	}
	w.logger.Debug("player hit", "by", by, "lives", w.player.Lives())
}

func (w *World) aliveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if e.alive {
			n++
		}
	}
	return n
}

// Player returns the player entity.
func (w *World) Player() *Player {
	return w.player
}

// Enemies returns the live enemies in spawn order.
func (w *World) Enemies() []*Enemy {
	return w.enemies
}

// Bombs returns the bombs in flight.
func (w *World) Bombs() []*Projectile {
	return w.bombs
}

// Thunders returns the thunders in flight.
func (w *World) Thunders() []*Projectile {
	return w.thunders
}

// Score returns the points earned from defeated enemies.
func (w *World) Score() int {
	return w.defeated * w.cfg.Session.ScorePerEnemy
}

// Cleared reports whether every enemy has been defeated.
func (w *World) Cleared() bool {
	return len(w.cfg.Spawns) > 0 && w.aliveEnemies() == 0
}

// State summarizes the world for the host.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.Score(),
		Lives:    w.player.Lives(),
		Tick:     w.tick,
		Defeated: w.defeated,
		Resets:   w.resets,
		Cleared:  w.Cleared(),
		Paused:   w.paused,
		Quit:     w.quit,
	}
}
