// Package config provides YAML-based tuning for the Ninja Leopard game:
// viewport geometry, physics, entity sizes and the enemy spawn list.
package config

// LeopardConfig contains all configuration for the Ninja Leopard game.
type LeopardConfig struct {
	Viewport ViewportConfig   `yaml:"viewport"`
	Physics  PhysicsConfig    `yaml:"physics"`
	Player   PlayerConfig     `yaml:"player"`
	Enemy    EnemyConfig      `yaml:"enemy"`
	Thunder  ProjectileConfig `yaml:"thunder"`
	Bomb     ProjectileConfig `yaml:"bomb"`
	Session  SessionConfig    `yaml:"session"`
	Spawns   []SpawnPoint     `yaml:"spawns"`
}

// ViewportConfig defines the world rectangle in pixels.
type ViewportConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Ground line sits this far above the bottom edge
}

// GroundY returns the y coordinate the player lands on.
func (v ViewportConfig) GroundY() float64 {
	return v.Height - v.GroundMargin
}

// PhysicsConfig defines player movement parameters, per tick.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	WalkSpeed   float64 `yaml:"walk_speed"`
	RunSpeed    float64 `yaml:"run_speed"`
}

// PlayerConfig defines the player's start column, hitbox and health.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"`
}

// EnemyConfig defines enemy hitbox, health and firing cadence.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Lives        int     `yaml:"lives"`
	FireInterval int     `yaml:"fire_interval"` // Ticks between bombs
	Variants     int     `yaml:"variants"`      // Number of cosmetic looks
}

// ProjectileConfig defines a projectile's hitbox and speed.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SessionConfig defines run-level rules.
type SessionConfig struct {
	LifeLostPauseTicks int `yaml:"life_lost_pause_ticks"`
	ScorePerEnemy      int `yaml:"score_per_enemy"`
}

// SpawnPoint is the top-left corner of an enemy at world start.
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
