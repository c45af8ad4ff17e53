package leopard

import (
	"testing"

	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/core"
)

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestPlayerStartsOnGround(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	p := NewPlayer(cfg)

	b := p.Bounds()
	if b.X != 50 || b.Bottom() != cfg.Viewport.GroundY() {
		t.Errorf("start box = %+v, want x=50 bottom=%g", b, cfg.Viewport.GroundY())
	}
	if p.Lives() != 10 {
		t.Errorf("Lives() = %d, want 10", p.Lives())
	}
	if !p.FacingRight() {
		t.Error("player should start facing right")
	}
	if p.Pose() != PoseStanding {
		t.Errorf("Pose() = %s, want standing", p.Pose())
	}
}

func TestPlayerWalkAndRun(t *testing.T) {
	tests := []struct {
		name        string
		in          core.InputFrame
		wantDX      float64
		wantFacing  bool
		wantRunning bool
	}{
		{"walk right", held(core.ActionRight), 5, true, false},
		{"walk left", held(core.ActionLeft), -5, false, false},
		{"run right", held(core.ActionRight, core.ActionRun), 8, true, true},
		{"run left", held(core.ActionLeft, core.ActionRun), -8, false, true},
		{"run in place", held(core.ActionRun), 0, true, true},
		{"idle", core.NewInputFrame(), 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultLeopardConfig()
			cfg.Player.X = 300
			p := NewPlayer(cfg)

			p.Update(tt.in)

			if dx := p.Bounds().X - 300; dx != tt.wantDX {
				t.Errorf("dx = %g, want %g", dx, tt.wantDX)
			}
			if p.FacingRight() != tt.wantFacing {
				t.Errorf("FacingRight() = %v, want %v", p.FacingRight(), tt.wantFacing)
			}
			if p.State().Running != tt.wantRunning {
				t.Errorf("Running = %v, want %v", p.State().Running, tt.wantRunning)
			}
		})
	}
}

func TestPlayerClampedToViewport(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	cfg.Player.X = 2
	p := NewPlayer(cfg)

	p.Update(held(core.ActionLeft))
	if p.Bounds().X != 0 {
		t.Errorf("x = %g, want 0 after clamping", p.Bounds().X)
	}

	cfg.Player.X = cfg.Viewport.Width - cfg.Player.Width - 1
	p = NewPlayer(cfg)
	for range 5 {
		p.Update(held(core.ActionRight, core.ActionRun))
	}
	if got := p.Bounds().Right(); got != cfg.Viewport.Width {
		t.Errorf("right = %g, want %g", got, cfg.Viewport.Width)
	}
}

func TestPlayerJumpLandsExactlyOnGround(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	groundY := cfg.Viewport.GroundY()
	p := NewPlayer(cfg)
	p.box.Y = groundY - 100 - p.box.H
	p.jumping = true
	p.vy = cfg.Physics.JumpImpulse

	landed := false
	for frame := 0; frame < 200 && !landed; frame++ {
		prevBottom := p.Bounds().Bottom()
		prevVY := p.VerticalSpeed()

		p.Update(core.NewInputFrame())

		bottom := p.Bounds().Bottom()
		if bottom > groundY {
			t.Fatalf("frame %d: bottom %g below ground %g", frame, bottom, groundY)
		}

		clamped := prevBottom+prevVY >= groundY
		if clamped != !p.Jumping() {
			t.Fatalf("frame %d: jumping=%v but clamp applied=%v", frame, p.Jumping(), clamped)
		}
		if clamped {
			landed = true
			if bottom != groundY {
				t.Errorf("landed bottom = %g, want %g", bottom, groundY)
			}
			if p.VerticalSpeed() != 0 {
				t.Errorf("vy after landing = %g, want 0", p.VerticalSpeed())
			}
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
}

func TestPlayerJumpNeedsFreshPress(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	p := NewPlayer(cfg)

	p.Update(held(core.ActionJump))
	if !p.Jumping() {
		t.Fatal("jump should start on press")
	}

	// Keep holding through the landing: no second jump.
	for range 200 {
		p.Update(held(core.ActionJump))
	}
	if p.Jumping() {
		t.Error("holding jump should not re-trigger after landing")
	}

	p.Update(core.NewInputFrame())
	p.Update(held(core.ActionJump))
	if !p.Jumping() {
		t.Error("jump should start again after release and press")
	}
}

func TestPlayerPoseWhileAirborne(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	p := NewPlayer(cfg)

	p.Update(held(core.ActionJump, core.ActionRun))
	if p.Pose() != PoseJumping {
		t.Errorf("rising pose = %s, want jumping", p.Pose())
	}

	for p.VerticalSpeed() <= 0 {
		p.Update(held(core.ActionRun))
	}
	if p.Pose() != PoseFalling {
		t.Errorf("descending pose = %s, want falling", p.Pose())
	}

	p.Update(held(core.ActionFire))
	if p.Pose() != PoseShooting {
		t.Errorf("pose with fire held = %s, want shooting", p.Pose())
	}
}

func TestPlayerLoseLifeRestoresAtZero(t *testing.T) {
	cfg := config.DefaultLeopardConfig()
	p := NewPlayer(cfg)

	for i := 1; i < cfg.Player.Lives; i++ {
		if p.loseLife() {
			t.Fatalf("loseLife reported a reset with %d lives left", p.Lives())
		}
	}
	if p.Lives() != 1 {
		t.Fatalf("Lives() = %d, want 1", p.Lives())
	}
	if !p.loseLife() {
		t.Error("losing the last life should report a reset")
	}
	if p.Lives() != cfg.Player.Lives {
		t.Errorf("Lives() = %d, want %d after reset", p.Lives(), cfg.Player.Lives)
	}
}
