package leopard

import (
	"testing"

	"github.com/vovakirdan/ninja-leopard/internal/config"
)

func TestEnemyFiresOnInterval(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	e := NewEnemy(config.SpawnPoint{X: 400, Y: 200}, cfg, 0)

	for call := 1; call < cfg.Enemy.FireInterval; call++ {
		if b := e.Update(); b != nil {
			t.Fatalf("bomb emitted early on call %d", call)
		}
	}

	b := e.Update()
	if b == nil {
		t.Fatalf("no bomb on call %d", cfg.Enemy.FireInterval)
	}
	if e.FireTimer() != 0 {
		t.Errorf("FireTimer() = %d, want 0 after firing", e.FireTimer())
	}
	if b.Kind() != KindBomb || b.Direction() != DirLeft {
		t.Errorf("got %s moving %s, want bomb moving left", b.Kind(), b.Direction())
	}
	box := b.Bounds()
	if box.X != 500 || box.Y != 250 {
		t.Errorf("bomb origin = (%g, %g), want (500, 250)", box.X, box.Y)
	}
	if box.W != 30 || box.H != 30 {
		t.Errorf("bomb size = %gx%g, want 30x30", box.W, box.H)
	}

	// The next bomb needs another full interval.
	for call := 1; call < cfg.Enemy.FireInterval; call++ {
		if e.Update() != nil {
			t.Fatalf("second bomb emitted early on call %d", call)
		}
	}
	if e.Update() == nil {
		t.Error("second bomb missing")
	}
}

func TestEnemyHitDefeatsOnce(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	e := NewEnemy(config.SpawnPoint{X: 0, Y: 0}, cfg, 2)

	if e.hit() || e.hit() {
		t.Fatal("enemy with 3 lives defeated too early")
	}
	if !e.hit() {
		t.Fatal("third hit should defeat the enemy")
	}
	if e.Alive() || e.Lives() != 0 {
		t.Errorf("alive=%v lives=%d after defeat", e.Alive(), e.Lives())
	}
	if e.hit() {
		t.Error("a defeated enemy cannot be defeated again")
	}
	if e.Lives() != 0 {
		t.Errorf("lives went negative: %d", e.Lives())
	}
	if e.Update() != nil {
		t.Error("a defeated enemy must not fire")
	}
}

func TestProjectileMovement(t *testing.T) {
	cfg := config.DefaultLeopardConfig()

	thunder := NewThunder(100, 50, DirRight, cfg.Thunder, cfg.Viewport.Width)
	thunder.Update()
	if x := thunder.Bounds().X; x != 110 {
		t.Errorf("thunder x = %g, want 110", x)
	}

	bomb := NewBomb(100, 50, DirLeft, cfg.Bomb, cfg.Viewport.Width)
	bomb.Update()
	if x := bomb.Bounds().X; x != 95 {
		t.Errorf("bomb x = %g, want 95", x)
	}
}

func TestProjectileRetiresStrictlyPastEdge(t *testing.T) {
	cfg := config.DefaultLeopardConfig()

	right := NewThunder(790, 0, DirRight, cfg.Thunder, 800)
	right.Update()
	if !right.Alive() {
		t.Fatal("left edge exactly at viewport width must stay alive")
	}
	right.Update()
	if right.Alive() {
		t.Error("thunder past the right edge should be removed")
	}

	left := NewBomb(-25, 0, DirLeft, cfg.Bomb, 800)
	left.Update()
	if !left.Alive() {
		t.Fatal("right edge exactly at 0 must stay alive")
	}
	left.Update()
	if left.Alive() {
		t.Error("bomb past the left edge should be removed")
	}
}

func TestDeadProjectileUpdateIsNoOp(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	p := NewThunder(900, 0, DirRight, cfg.Thunder, 800)
	p.Update()
	if p.Alive() {
		t.Fatal("projectile should be dead")
	}

	before := p.Bounds()
	p.Update()
	p.Update()
	if p.Bounds() != before || p.Alive() {
		t.Errorf("dead projectile changed: %+v -> %+v", before, p.Bounds())
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	var ps []*Projectile
	for i := range 5 {
		ps = append(ps, NewBomb(float64(i*100), 0, DirLeft, cfg.Bomb, 800))
	}
	ps[1].kill()
	ps[3].kill()

	live := compact(ps)
	if len(live) != 3 {
		t.Fatalf("len = %d, want 3", len(live))
	}
	for i, want := range []float64{0, 200, 400} {
		if live[i].Bounds().X != want {
			t.Errorf("live[%d].X = %g, want %g", i, live[i].Bounds().X, want)
		}
	}
}
