package leopard

import (
	"github.com/vovakirdan/ninja-leopard/internal/config"
)

// Projectile is a straight-line mover: a Bomb fired by an enemy or a
// Thunder fired by the player. The kinds differ only in tuning and in
// which group they damage.
type Projectile struct {
	body
	kind      Kind
	dir       Direction
	speed     float64
	viewportW float64
}

func newProjectile(kind Kind, x, y float64, dir Direction, cfg config.ProjectileConfig, viewportW float64) *Projectile {
	return &Projectile{
		body:      newBody(x, y, cfg.Width, cfg.Height),
		kind:      kind,
		dir:       dir,
		speed:     cfg.Speed,
		viewportW: viewportW,
	}
}

// NewBomb creates an enemy projectile with its top-left corner at (x, y).
func NewBomb(x, y float64, dir Direction, cfg config.ProjectileConfig, viewportW float64) *Projectile {
	return newProjectile(KindBomb, x, y, dir, cfg, viewportW)
}

// NewThunder creates a player projectile with its top-left corner at (x, y).
func NewThunder(x, y float64, dir Direction, cfg config.ProjectileConfig, viewportW float64) *Projectile {
	return newProjectile(KindThunder, x, y, dir, cfg, viewportW)
}

// Kind implements Entity.
func (p *Projectile) Kind() Kind {
	return p.kind
}

// Direction returns the travel direction.
func (p *Projectile) Direction() Direction {
	return p.dir
}

// Update moves the projectile one tick and retires it once it is fully
// past the viewport edge it travels toward. A dead projectile stays put.
func (p *Projectile) Update() {
	if !p.alive {
		return
	}

	if p.dir == DirRight {
		p.box.X += p.speed
		if p.box.X > p.viewportW {
			p.kill()
		}
		return
	}

	p.box.X -= p.speed
	if p.box.Right() < 0 {
		p.kill()
	}
}
