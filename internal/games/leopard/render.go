package leopard

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ninja-leopard/internal/core"
)

const (
	hudRows    = 1
	groundChar = '▔'
)

// RenderSnapshot draws snap into dst, scaling world pixels to cells.
// The top row holds the HUD. It panics if sprites lacks a pose the
// snapshot uses; hosts validate providers at reset.
func RenderSnapshot(dst *core.Screen, snap Snapshot, sprites PoseProvider) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= hudRows || snap.Viewport.W <= 0 || snap.Viewport.H <= 0 {
		return
	}

	sx := float64(w) / snap.Viewport.W
	sy := float64(h-hudRows) / snap.Viewport.H
	cells := func(b core.Box) core.Rect {
		x0 := int(math.Floor(b.X * sx))
		y0 := int(math.Floor(b.Y * sy))
		x1 := int(math.Ceil(b.Right() * sx))
		y1 := int(math.Ceil(b.Bottom() * sy))
		return core.NewRect(x0, y0+hudRows, max(1, x1-x0), max(1, y1-y0))
	}

	groundRow := min(h-1, int(math.Ceil(snap.GroundY*sy))+hudRows-1)
	dst.DrawHLine(0, groundRow, w, groundChar, core.ColorGray)

	for _, e := range snap.Entities {
		sprite, err := sprites.Sprite(e.Kind, e.Pose)
		if err != nil {
			panic(err)
		}
		color := sprite.Color
		if e.Kind == KindEnemy {
			color = EnemyColor(e.Variant)
		}

		r := cells(e.Box)
		dst.DrawRectColor(r, sprite.Glyph, color)

		if e.FacingRight && sprite.FaceRight != 0 {
			dst.SetColor(r.Right()-1, r.Y, sprite.FaceRight, color)
		} else if !e.FacingRight && sprite.FaceLeft != 0 {
			dst.SetColor(r.X, r.Y, sprite.FaceLeft, color)
		}
	}

	drawHUD(dst, snap)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(0, 0, fmt.Sprintf("Lives: %d", snap.Lives), core.ColorBrightWhite)

	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColor(dst.Width()-len(score), 0, score, core.ColorBrightWhite)

	if banner, color := Banner(snap); banner != "" {
		dst.DrawTextColor((dst.Width()-len(banner))/2, 0, banner, color)
	}
}

// Banner returns the status line for snap, or "" during normal play.
func Banner(snap Snapshot) (string, core.Color) {
	switch {
	case snap.Quit:
		return "BYE", core.ColorBrightYellow
	case snap.Paused:
		return "PAUSED", core.ColorBrightYellow
	case snap.Cooldown > 0:
		return "OUCH! LIVES RESTORED", core.ColorBrightRed
	case snap.Cleared:
		return "ALL CLEAR", core.ColorBrightGreen
	}
	return "", core.ColorDefault
}
