package leopard

import (
	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/core"
)

// Player is the controllable leopard: it walks, runs, jumps under
// gravity and fires thunder. Its lives are managed by the World.
type Player struct {
	body
	physics  config.PhysicsConfig
	viewport core.Box
	groundY  float64

	speed       float64
	vy          float64
	jumping     bool
	running     bool
	shooting    bool
	facingRight bool
	jumpHeld    bool // Jump control state on the previous update

	lives    int
	maxLives int
}

// NewPlayer places a player standing on the ground at the configured x.
func NewPlayer(cfg config.LeopardConfig) *Player {
	groundY := cfg.Viewport.GroundY()
	return &Player{
		body:        newBody(cfg.Player.X, groundY-cfg.Player.Height, cfg.Player.Width, cfg.Player.Height),
		physics:     cfg.Physics,
		viewport:    core.NewBox(0, 0, cfg.Viewport.Width, cfg.Viewport.Height),
		groundY:     groundY,
		speed:       cfg.Physics.WalkSpeed,
		facingRight: true,
		lives:       cfg.Player.Lives,
		maxLives:    cfg.Player.Lives,
	}
}

// Kind implements Entity.
func (p *Player) Kind() Kind {
	return KindPlayer
}

// Lives returns the current life count.
func (p *Player) Lives() int {
	return p.lives
}

// FacingRight reports the last horizontal direction moved.
func (p *Player) FacingRight() bool {
	return p.facingRight
}

// Jumping reports whether the player is airborne.
func (p *Player) Jumping() bool {
	return p.jumping
}

// VerticalSpeed returns the current vertical velocity (positive is down).
func (p *Player) VerticalSpeed() float64 {
	return p.vy
}

// State returns the flags the player's pose is derived from.
func (p *Player) State() PlayerState {
	return PlayerState{
		Running:  p.running,
		Jumping:  p.jumping,
		Falling:  p.jumping && p.vy > 0,
		Shooting: p.shooting,
	}
}

// Pose returns the player's pose for the current frame.
func (p *Player) Pose() Pose {
	return DerivePose(p.State())
}

// Update applies one frame of held controls: run modifier, horizontal
// movement, jump start on a rising edge of the jump control, gravity with
// landing, and finally clamping into the viewport.
func (p *Player) Update(in core.InputFrame) {
	if !p.alive {
		return
	}

	p.running = in.Has(core.ActionRun)
	if p.running {
		p.speed = p.physics.RunSpeed
	} else {
		p.speed = p.physics.WalkSpeed
	}

	if in.Has(core.ActionLeft) {
		p.box.X -= p.speed
		p.facingRight = false
	}
	if in.Has(core.ActionRight) {
		p.box.X += p.speed
		p.facingRight = true
	}

	jumpHeld := in.Has(core.ActionJump)
	if jumpHeld && !p.jumpHeld && !p.jumping {
		p.jumping = true
		p.vy = p.physics.JumpImpulse
	}
	p.jumpHeld = jumpHeld

	if p.jumping {
		p.box.Y += p.vy
		p.vy += p.physics.Gravity
		if p.box.Bottom() >= p.groundY {
			p.box.Y = p.groundY - p.box.H
			p.jumping = false
			p.vy = 0
		}
	}

	p.shooting = in.Has(core.ActionFire)
	p.box = p.box.ClampInside(p.viewport)
}

// thunderOrigin returns the top-left corner for a thunder fired now:
// the leading edge in the facing direction, at the player's vertical
// center.
func (p *Player) thunderOrigin(thunderW float64) (float64, float64, Direction) {
	if p.facingRight {
		return p.box.Right(), p.box.CenterY(), DirRight
	}
	return p.box.X - thunderW, p.box.CenterY(), DirLeft
}

// loseLife takes one life. When none remain the lives are restored to
// full and loseLife reports true.
func (p *Player) loseLife() bool {
	p.lives--
	if p.lives <= 0 {
		p.lives = p.maxLives
		return true
	}
	return false
}
