package gui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ninja-leopard/internal/core"
	"github.com/vovakirdan/ninja-leopard/internal/games/leopard"
	"github.com/vovakirdan/ninja-leopard/internal/logging"
	"github.com/vovakirdan/ninja-leopard/internal/storage"
)

// debugGlyphW is the advance of ebitenutil's debug font.
const debugGlyphW = 6

var (
	background  = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}
	groundColor = color.RGBA{R: 0x5a, G: 0x5a, B: 0x5a, A: 0xff}
)

// rgba maps terminal colors to window colors.
var rgba = map[core.Color]color.RGBA{
	core.ColorRed:           {R: 0xc0, G: 0x30, B: 0x30, A: 0xff},
	core.ColorGreen:         {R: 0x30, G: 0xa0, B: 0x40, A: 0xff},
	core.ColorYellow:        {R: 0xc8, G: 0xa0, B: 0x20, A: 0xff},
	core.ColorBlue:          {R: 0x30, G: 0x50, B: 0xc0, A: 0xff},
	core.ColorMagenta:       {R: 0xa0, G: 0x30, B: 0xa0, A: 0xff},
	core.ColorCyan:          {R: 0x30, G: 0xa0, B: 0xb0, A: 0xff},
	core.ColorWhite:         {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x50, B: 0x50, A: 0xff},
	core.ColorBrightGreen:   {R: 0x60, G: 0xf0, B: 0x60, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xe0, B: 0x40, A: 0xff},
	core.ColorBrightBlue:    {R: 0x60, G: 0x90, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x60, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x60, G: 0xf0, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x8c, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
}

func toRGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorWhite]
}

// Options tunes the window host.
type Options struct {
	TickRate int // Simulation ticks per second; 60 if zero
	Scale    int // Window pixels per world pixel; 1 if zero
	Logger   *log.Logger
}

// Host implements ebiten.Game around a reset leopard game.
type Host struct {
	game   *leopard.Game
	store  *storage.Store
	logger *log.Logger
	keys   keySource
	state  core.GameState
	saved  bool
}

// NewHost wraps game, which must already be reset.
func NewHost(game *leopard.Game, store *storage.Store, logger *log.Logger) *Host {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Host{
		game:   game,
		store:  store,
		logger: logger,
		keys:   ebitenKeys{},
		state:  game.State(),
	}
}

// Update steps the simulation once per tick.
func (h *Host) Update() error {
	return h.step(readFrame(h.keys, ebiten.IsWindowBeingClosed()))
}

func (h *Host) step(frame core.InputFrame) error {
	h.state = h.game.Step(frame).State
	if h.state.Quit {
		h.saveRun()
		return ebiten.Termination
	}
	return nil
}

// saveRun records the finished run once.
func (h *Host) saveRun() {
	if h.saved || h.store == nil || h.state.Tick == 0 {
		return
	}
	h.saved = true
	_, err := h.store.SaveRun(storage.RunRecord{
		GameID:     h.game.ID(),
		Score:      h.state.Score,
		Defeated:   h.state.Defeated,
		LifeResets: h.state.Resets,
		Ticks:      h.state.Tick,
		Cleared:    h.state.Cleared,
	})
	if err != nil {
		h.logger.Error("could not save run", "error", err)
		return
	}
	h.logger.Info("run saved", "score", h.state.Score, "defeated", h.state.Defeated)
}

// Draw paints the latest snapshot in world coordinates.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	snap := h.game.Snapshot()
	vp := snap.Viewport
	vector.DrawFilledRect(screen, 0, float32(snap.GroundY), float32(vp.W), 2, groundColor, false)

	sprites := h.game.Sprites()
	for _, e := range snap.Entities {
		sprite, err := sprites.Sprite(e.Kind, e.Pose)
		if err != nil {
			panic(err)
		}
		c := toRGBA(sprite.Color)
		if e.Kind == leopard.KindEnemy {
			c = toRGBA(leopard.EnemyColor(e.Variant))
		}
		b := e.Box
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)

		if e.Kind == leopard.KindPlayer {
			drawFacing(screen, b, e.FacingRight)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", snap.Lives), 4, 4)
	score := fmt.Sprintf("Score: %d", snap.Score)
	ebitenutil.DebugPrintAt(screen, score, int(vp.W)-len(score)*debugGlyphW-4, 4)
	if banner, _ := leopard.Banner(snap); banner != "" {
		ebitenutil.DebugPrintAt(screen, banner, (int(vp.W)-len(banner)*debugGlyphW)/2, 4)
	}
}

// drawFacing marks the player's leading edge.
func drawFacing(screen *ebiten.Image, b core.Box, right bool) {
	const eye = 6
	x := b.X + 4
	if right {
		x = b.Right() - 4 - eye
	}
	vector.DrawFilledRect(screen, float32(x), float32(b.Y+6), eye, eye, background, false)
}

// Layout keeps the logical screen at the world viewport size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := h.game.Snapshot().Viewport
	return int(vp.W), int(vp.H)
}

// State returns the last state reported by the game.
func (h *Host) State() core.GameState {
	return h.state
}

// Run opens a window and plays game until the player quits or closes it.
// game is reset with rt before the window opens.
func Run(game *leopard.Game, store *storage.Store, rt core.RuntimeConfig, opts Options) error {
	if err := game.Reset(rt); err != nil {
		return err
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	host := NewHost(game, store, opts.Logger)
	vp := game.Snapshot().Viewport

	ebiten.SetWindowSize(int(vp.W)*opts.Scale, int(vp.H)*opts.Scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
