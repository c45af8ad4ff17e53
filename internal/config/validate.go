package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalidConfig is the sentinel wrapped by every ValidationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", ErrInvalidConfig, strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks that cfg describes a playable world. Spawn points are
// rejected here, at initialization, rather than discovered mid-simulation.
func Validate(cfg LeopardConfig) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for name, v := range floatFields(cfg) {
		if !finite(v) {
			add("%s must be a finite number, got %g", name, v)
		}
	}

	vp := cfg.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		add("viewport must be positive, got %gx%g", vp.Width, vp.Height)
	}
	if vp.GroundMargin < 0 || vp.GroundMargin >= vp.Height {
		add("ground_margin %g must be in [0, height)", vp.GroundMargin)
	}

	if cfg.Physics.Gravity <= 0 {
		add("gravity must be positive, got %g", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse >= 0 {
		add("jump_impulse must be negative (upward), got %g", cfg.Physics.JumpImpulse)
	}
	if cfg.Physics.WalkSpeed <= 0 || cfg.Physics.RunSpeed <= 0 {
		add("walk_speed and run_speed must be positive")
	}

	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		add("player size must be positive")
	}
	if cfg.Player.Width > vp.Width || cfg.Player.Height > vp.GroundY() {
		add("player %gx%g does not fit above the ground line", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Player.X < 0 || cfg.Player.X+cfg.Player.Width > vp.Width {
		add("player x %g places the player outside the viewport", cfg.Player.X)
	}
	if cfg.Player.Lives < 1 {
		add("player lives must be at least 1, got %d", cfg.Player.Lives)
	}

	if cfg.Enemy.Width <= 0 || cfg.Enemy.Height <= 0 {
		add("enemy size must be positive")
	}
	if cfg.Enemy.Lives < 1 {
		add("enemy lives must be at least 1, got %d", cfg.Enemy.Lives)
	}
	if cfg.Enemy.FireInterval < 1 {
		add("enemy fire_interval must be at least 1 tick, got %d", cfg.Enemy.FireInterval)
	}
	if cfg.Enemy.Variants < 1 {
		add("enemy variants must be at least 1, got %d", cfg.Enemy.Variants)
	}

	for name, p := range map[string]ProjectileConfig{"thunder": cfg.Thunder, "bomb": cfg.Bomb} {
		if p.Width <= 0 || p.Height <= 0 || p.Speed <= 0 {
			add("%s size and speed must be positive", name)
		}
	}

	if cfg.Session.LifeLostPauseTicks < 0 {
		add("life_lost_pause_ticks must not be negative")
	}
	if cfg.Session.ScorePerEnemy < 0 {
		add("score_per_enemy must not be negative")
	}

	for i, sp := range cfg.Spawns {
		if sp.X < 0 || sp.Y < 0 || sp.X+cfg.Enemy.Width > vp.Width || sp.Y+cfg.Enemy.Height > vp.Height {
			add("spawn %d at (%g, %g) puts the enemy outside the %gx%g viewport",
				i, sp.X, sp.Y, vp.Width, vp.Height)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	// Map iteration above is unordered; keep messages stable.
	slices.Sort(problems)
	return &ValidationError{Problems: problems}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// floatFields names every float in cfg. NaN fails every ordered
// comparison, so the range checks alone cannot catch it.
func floatFields(cfg LeopardConfig) map[string]float64 {
	fields := map[string]float64{
		"viewport.width":         cfg.Viewport.Width,
		"viewport.height":        cfg.Viewport.Height,
		"viewport.ground_margin": cfg.Viewport.GroundMargin,
		"physics.gravity":        cfg.Physics.Gravity,
		"physics.jump_impulse":   cfg.Physics.JumpImpulse,
		"physics.walk_speed":     cfg.Physics.WalkSpeed,
		"physics.run_speed":      cfg.Physics.RunSpeed,
		"player.x":               cfg.Player.X,
		"player.width":           cfg.Player.Width,
		"player.height":          cfg.Player.Height,
		"enemy.width":            cfg.Enemy.Width,
		"enemy.height":           cfg.Enemy.Height,
		"thunder.width":          cfg.Thunder.Width,
		"thunder.height":         cfg.Thunder.Height,
		"thunder.speed":          cfg.Thunder.Speed,
		"bomb.width":             cfg.Bomb.Width,
		"bomb.height":            cfg.Bomb.Height,
		"bomb.speed":             cfg.Bomb.Speed,
	}
	for i, sp := range cfg.Spawns {
		fields[fmt.Sprintf("spawns[%d].x", i)] = sp.X
		fields[fmt.Sprintf("spawns[%d].y", i)] = sp.Y
	}
	return fields
}
