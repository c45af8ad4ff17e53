package leopard

import "github.com/vovakirdan/ninja-leopard/internal/core"

// Kind identifies one of the closed set of simulated entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBomb
	KindThunder
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBomb:
		return "bomb"
	case KindThunder:
		return "thunder"
	default:
		return "unknown"
	}
}

// Direction is the horizontal travel direction of a projectile.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// Entity is the capability every simulated object exposes to the World's
// collision and compaction passes. Per-frame updates differ by kind
// (the player reads input, enemies may emit a bomb) and are called on
// the concrete types.
type Entity interface {
	Kind() Kind
	Bounds() core.Box
	Alive() bool
}

// body holds the position, hitbox and liveness shared by all entities.
// A dead body is never revived.
type body struct {
	box   core.Box
	alive bool
}

func newBody(x, y, w, h float64) body {
	return body{box: core.NewBox(x, y, w, h), alive: true}
}

// Bounds returns the entity's axis-aligned hitbox.
func (b *body) Bounds() core.Box {
	return b.box
}

// Alive reports whether the entity still takes part in the simulation.
func (b *body) Alive() bool {
	return b.alive
}

func (b *body) kill() {
	b.alive = false
}

// compact drops dead entities in place, preserving order.
func compact[T Entity](s []T) []T {
	live := s[:0]
	for _, e := range s {
		if e.Alive() {
			live = append(live, e)
		}
	}
	clear(s[len(live):])
	return live
}
