package leopard

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ninja-leopard/internal/core"
)

// Pose is the symbolic name of an entity's look. Poses are cosmetic:
// they never change hitboxes or damage.
type Pose int

const (
	PoseStanding Pose = iota
	PoseRunning
	PoseJumping
	PoseFalling
	PoseShooting
	PoseIdle   // Enemies
	PoseFlying // Projectiles
)

var poseNames = [...]string{
	PoseStanding: "standing",
	PoseRunning:  "running",
	PoseJumping:  "jumping",
	PoseFalling:  "falling",
	PoseShooting: "shooting",
	PoseIdle:     "idle",
	PoseFlying:   "flying",
}

func (p Pose) String() string {
	if p >= 0 && int(p) < len(poseNames) {
		return poseNames[p]
	}
	return fmt.Sprintf("pose(%d)", int(p))
}

// PlayerState is the flag snapshot a player's pose is derived from.
type PlayerState struct {
	Running  bool
	Jumping  bool
	Falling  bool // Airborne and descending
	Shooting bool
}

// DerivePose picks the player's pose for a frame.
// Precedence, highest first: shooting, falling, jumping, running, standing.
func DerivePose(s PlayerState) Pose {
	switch {
	case s.Shooting:
		return PoseShooting
	case s.Jumping && s.Falling:
		return PoseFalling
	case s.Jumping:
		return PoseJumping
	case s.Running:
		return PoseRunning
	default:
		return PoseStanding
	}
}

// PosesFor lists every pose the simulation can assign to kind.
func PosesFor(kind Kind) []Pose {
	switch kind {
	case KindPlayer:
		return []Pose{PoseStanding, PoseRunning, PoseJumping, PoseFalling, PoseShooting}
	case KindEnemy:
		return []Pose{PoseIdle}
	case KindBomb, KindThunder:
		return []Pose{PoseFlying}
	default:
		return nil
	}
}

// ErrUnknownPose is returned by a PoseProvider with no sprite for a pose.
var ErrUnknownPose = errors.New("unknown pose")

// Sprite is a renderable look in the terminal: a fill glyph, a color and
// optional markers drawn on the leading column for each facing.
type Sprite struct {
	Glyph     rune
	Color     core.Color
	FaceRight rune
	FaceLeft  rune
}

// PoseProvider maps (kind, pose) to a sprite. The simulation only picks
// pose names; providers own the pixels.
type PoseProvider interface {
	Sprite(kind Kind, pose Pose) (Sprite, error)
}

// ValidateProvider checks that p knows every pose the simulation emits,
// so that rendering can never hit an unknown pose mid-game.
func ValidateProvider(p PoseProvider) error {
	for _, kind := range []Kind{KindPlayer, KindEnemy, KindBomb, KindThunder} {
		for _, pose := range PosesFor(kind) {
			if _, err := p.Sprite(kind, pose); err != nil {
				return err
			}
		}
	}
	return nil
}

// SpriteKey indexes a SpriteTable.
type SpriteKey struct {
	Kind Kind
	Pose Pose
}

// SpriteTable is a PoseProvider backed by a map.
type SpriteTable map[SpriteKey]Sprite

// Sprite implements PoseProvider.
func (t SpriteTable) Sprite(kind Kind, pose Pose) (Sprite, error) {
	if s, ok := t[SpriteKey{kind, pose}]; ok {
		return s, nil
	}
	return Sprite{}, fmt.Errorf("leopard: %w %q for %s", ErrUnknownPose, pose, kind)
}

// GlyphSprites returns the terminal sprite set.
func GlyphSprites() SpriteTable {
	return SpriteTable{
		{KindPlayer, PoseStanding}: {Glyph: '█', Color: core.ColorBrightYellow, FaceRight: '▶', FaceLeft: '◀'},
		{KindPlayer, PoseRunning}:  {Glyph: '▓', Color: core.ColorYellow, FaceRight: '»', FaceLeft: '«'},
		{KindPlayer, PoseJumping}:  {Glyph: '▀', Color: core.ColorBrightYellow, FaceRight: '▶', FaceLeft: '◀'},
		{KindPlayer, PoseFalling}:  {Glyph: '▄', Color: core.ColorOrange, FaceRight: '↻', FaceLeft: '↺'},
		{KindPlayer, PoseShooting}: {Glyph: '▒', Color: core.ColorBrightCyan, FaceRight: '▶', FaceLeft: '◀'},
		{KindEnemy, PoseIdle}:      {Glyph: '#', Color: core.ColorRed},
		{KindBomb, PoseFlying}:     {Glyph: '●', Color: core.ColorBrightRed},
		{KindThunder, PoseFlying}:  {Glyph: '≈', Color: core.ColorBrightBlue},
	}
}

// enemyColors tints enemies by their cosmetic variant.
var enemyColors = []core.Color{core.ColorRed, core.ColorMagenta, core.ColorGreen}

// EnemyColor returns the tint for an enemy variant.
func EnemyColor(variant int) core.Color {
	return enemyColors[variant%len(enemyColors)]
}
