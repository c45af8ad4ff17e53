package leopard

import (
	"github.com/vovakirdan/ninja-leopard/internal/config"
)

// Enemy is a stationary shooter. It lobs a bomb toward the player's side
// every fire interval and is removed once its lives run out.
type Enemy struct {
	body
	lives        int
	fireTimer    int // Ticks since the last bomb
	fireInterval int
	variant      int
	bomb         config.ProjectileConfig
	viewportW    float64
}

// NewEnemy places an enemy with its top-left corner at sp.
// variant only selects the enemy's look.
func NewEnemy(sp config.SpawnPoint, cfg config.LeopardConfig, variant int) *Enemy {
	return &Enemy{
		body:         newBody(sp.X, sp.Y, cfg.Enemy.Width, cfg.Enemy.Height),
		lives:        cfg.Enemy.Lives,
		fireInterval: cfg.Enemy.FireInterval,
		variant:      variant,
		bomb:         cfg.Bomb,
		viewportW:    cfg.Viewport.Width,
	}
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind {
	return KindEnemy
}

// Lives returns the enemy's remaining lives.
func (e *Enemy) Lives() int {
	return e.lives
}

// Variant returns the cosmetic variant index.
func (e *Enemy) Variant() int {
	return e.variant
}

// FireTimer returns the ticks elapsed since the last bomb.
func (e *Enemy) FireTimer() int {
	return e.fireTimer
}

// Update advances the fire timer. When the timer reaches the fire
// interval it restarts and a new bomb is returned, launched leftward from
// the enemy's right edge at its vertical center.
func (e *Enemy) Update() *Projectile {
	if !e.alive {
		return nil
	}

	e.fireTimer++
	if e.fireTimer < e.fireInterval {
		return nil
	}

	e.fireTimer = 0
	return NewBomb(e.box.Right(), e.box.CenterY(), DirLeft, e.bomb, e.viewportW)
}

// hit takes one life and reports whether this hit defeated the enemy.
func (e *Enemy) hit() bool {
	if e.lives <= 0 {
		return false
	}
	e.lives--
	if e.lives == 0 {
		e.kill()
		return true
	}
	return false
}
