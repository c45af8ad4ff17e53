package leopard

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/ninja-leopard/internal/core"
)

// EntityView is the read-only render view of one live entity.
type EntityView struct {
	Kind        Kind
	Box         core.Box
	Pose        Pose
	FacingRight bool
	Variant     int // Enemies only
}

// Snapshot is an immutable copy of the world handed to render hosts.
type Snapshot struct {
	Tick     int
	Lives    int
	MaxLives int
	Paused   bool
	Cooldown int
	Quit     bool
	Score    int
	Defeated int
	Resets   int
	Cleared  bool
	Viewport core.Box
	GroundY  float64
	Entities []EntityView // Enemies, bombs, thunders, then the player
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.tick,
		Lives:    w.player.Lives(),
		MaxLives: w.player.maxLives,
		Paused:   w.paused,
		Cooldown: w.cooldown,
		Quit:     w.quit,
		Score:    w.Score(),
		Defeated: w.defeated,
		Resets:   w.resets,
		Cleared:  w.Cleared(),
		Viewport: w.viewport,
		GroundY:  w.cfg.Viewport.GroundY(),
		Entities: make([]EntityView, 0, len(w.enemies)+len(w.bombs)+len(w.thunders)+1),
	}

	for _, e := range w.enemies {
		if e.alive {
			snap.Entities = append(snap.Entities, EntityView{Kind: KindEnemy, Box: e.box, Pose: PoseIdle, Variant: e.variant})
		}
	}
	for _, group := range [][]*Projectile{w.bombs, w.thunders} {
		for _, p := range group {
			if p.alive {
				snap.Entities = append(snap.Entities, EntityView{Kind: p.kind, Box: p.box, Pose: PoseFlying, FacingRight: p.dir == DirRight})
			}
		}
	}
	snap.Entities = append(snap.Entities, EntityView{
		Kind:        KindPlayer,
		Box:         w.player.box,
		Pose:        w.player.Pose(),
		FacingRight: w.player.facingRight,
	})

	return snap
}

// Hash returns an FNV-1a digest of the snapshot. Equal simulations yield
// equal hashes.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			putInt(1)
		} else {
			putInt(0)
		}
	}

	putInt(s.Tick)
	putInt(s.Lives)
	putBool(s.Paused)
	putInt(s.Cooldown)
	putBool(s.Quit)
	putInt(s.Score)
	putInt(s.Defeated)
	putInt(s.Resets)
	for _, e := range s.Entities {
		putInt(int(e.Kind))
		putFloat(e.Box.X)
		putFloat(e.Box.Y)
		putInt(int(e.Pose))
		putBool(e.FacingRight)
		putInt(e.Variant)
	}
	return h.Sum64()
}
