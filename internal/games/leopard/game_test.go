package leopard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/core"
	"github.com/vovakirdan/ninja-leopard/internal/registry"
)

func writeConfigFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leopard.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", GameID, err)
	}
	if g.Title() != "Ninja Leopard" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameResetAndStep(t *testing.T) {
	path := writeConfigFile(t, config.DefaultYAML())

	g := New(WithConfigPath(path))
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	st := g.State()
	if st.Lives != 10 || st.Score != 0 || st.Tick != 0 {
		t.Errorf("initial state = %+v", st)
	}
	if n := len(g.Snapshot().Entities); n != 4 {
		t.Errorf("entities = %d, want 3 enemies and the player", n)
	}

	res := g.Step(core.NewInputFrame())
	if res.State.Tick != 1 {
		t.Errorf("Tick = %d after one step", res.State.Tick)
	}
}

func TestGameResetKeepsWorldOnBadConfig(t *testing.T) {
	path := writeConfigFile(t, config.DefaultYAML())

	g := New(WithConfigPath(path))
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	g.Step(core.NewInputFrame())

	bad := "spawns:\n  - {x: 1524, y: 817}\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	err := g.Reset(core.DefaultConfig())
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("Reset() error = %v, want ErrInvalidConfig", err)
	}
	if g.State().Tick != 1 {
		t.Error("failed reset should leave the running world alone")
	}
}

func TestGamesKeepTheirOwnConfigPath(t *testing.T) {
	full := writeConfigFile(t, config.DefaultYAML())
	single := writeConfigFile(t, []byte("spawns:\n  - {x: 1000, y: 200}\n"))

	var firstLog, secondLog bytes.Buffer
	first := New(WithConfigPath(full), WithLogger(log.New(&firstLog)))
	second := New(WithConfigPath(single), WithLogger(log.New(&secondLog)))

	for _, g := range []*Game{first, second} {
		if err := g.Reset(core.DefaultConfig()); err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}
	}

	if n := len(first.Snapshot().Entities); n != 4 {
		t.Errorf("first game entities = %d, want 4", n)
	}
	if n := len(second.Snapshot().Entities); n != 2 {
		t.Errorf("second game entities = %d, want 2", n)
	}
	if !strings.Contains(firstLog.String(), "enemies=3") {
		t.Errorf("first game logged %q", firstLog.String())
	}
	if !strings.Contains(secondLog.String(), "enemies=1") {
		t.Errorf("second game logged %q", secondLog.String())
	}
}

func TestGameResetRejectsIncompleteProvider(t *testing.T) {
	table := GlyphSprites()
	delete(table, SpriteKey{KindThunder, PoseFlying})

	g := New(WithSprites(table))
	err := g.ResetWith(core.DefaultConfig(), config.DefaultLeopardConfig())
	if !errors.Is(err, ErrUnknownPose) {
		t.Fatalf("ResetWith() error = %v, want ErrUnknownPose", err)
	}
}

func TestGameQuit(t *testing.T) {
	g := New()
	if err := g.ResetWith(core.DefaultConfig(), config.DefaultLeopardConfig()); err != nil {
		t.Fatal(err)
	}

	res := g.Step(pressed(core.ActionQuit))
	if !res.State.Quit {
		t.Error("quit press should set Quit")
	}
}

func TestRenderDrawsHUDAndPlayer(t *testing.T) {
	g := New()
	if err := g.ResetWith(core.DefaultConfig(), config.DefaultLeopardConfig()); err != nil {
		t.Fatal(err)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	if !strings.HasPrefix(hud, "Lives: 10") {
		t.Errorf("HUD = %q, want it to start with Lives: 10", hud)
	}
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD = %q, want the score", hud)
	}

	// Player spans columns 5..15 and rows 21..23 on an 80x24 screen.
	if got := scr.GetCell(10, 22).Rune; got != '█' {
		t.Errorf("player body cell = %q, want '█'", got)
	}
	if got := scr.GetCell(15, 21).Rune; got != '▶' {
		t.Errorf("player face cell = %q, want '▶'", got)
	}
}

func TestRenderBanners(t *testing.T) {
	tests := []struct {
		name string
		snap func(Snapshot) Snapshot
		want string
	}{
		{"paused", func(s Snapshot) Snapshot { s.Paused = true; return s }, "PAUSED"},
		{"cooldown", func(s Snapshot) Snapshot { s.Cooldown = 10; return s }, "LIVES RESTORED"},
		{"cleared", func(s Snapshot) Snapshot { s.Cleared = true; return s }, "ALL CLEAR"},
	}

	w := newTestWorld(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := core.NewScreen(80, 24)
			RenderSnapshot(scr, tt.snap(w.Snapshot()), GlyphSprites())
			if !strings.Contains(scr.Row(0), tt.want) {
				t.Errorf("HUD = %q, want %q", scr.Row(0), tt.want)
			}
		})
	}
}

func TestRenderPanicsOnUnknownPose(t *testing.T) {
	w := newTestWorld(t)
	table := GlyphSprites()
	delete(table, SpriteKey{KindPlayer, PoseStanding})

	defer func() {
		if recover() == nil {
			t.Error("rendering an unknown pose should panic")
		}
	}()
	RenderSnapshot(core.NewScreen(80, 24), w.Snapshot(), table)
}
