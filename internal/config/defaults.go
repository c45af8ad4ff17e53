package config

import (
	_ "embed"
)

//go:embed defaults/leopard.yaml
var defaultLeopardYAML []byte

// DefaultLeopardConfig returns the built-in Ninja Leopard configuration.
func DefaultLeopardConfig() LeopardConfig {
	return LeopardConfig{
		Viewport: ViewportConfig{
			Width:        800,
			Height:       600,
			GroundMargin: 10,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			JumpImpulse: -15,
			WalkSpeed:   5,
			RunSpeed:    8,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  110,
			Height: 55,
			Lives:  10,
		},
		Enemy: EnemyConfig{
			Width:        100,
			Height:       100,
			Lives:        3,
			FireInterval: 90, // 1.5s at 60 ticks/s
			Variants:     3,
		},
		Thunder: ProjectileConfig{
			Width:  50,
			Height: 50,
			Speed:  10,
		},
		Bomb: ProjectileConfig{
			Width:  30,
			Height: 30,
			Speed:  5,
		},
		Session: SessionConfig{
			LifeLostPauseTicks: 60,
			ScorePerEnemy:      100,
		},
		Spawns: []SpawnPoint{
			{X: 635, Y: 454},
			{X: 109, Y: 155},
			{X: 400, Y: 490},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLeopardYAML
}
