package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/core"
	"github.com/vovakirdan/ninja-leopard/internal/games/leopard"
	"github.com/vovakirdan/ninja-leopard/internal/storage"
)

func newTestModel(t *testing.T, opts ...leopard.Option) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := leopard.New(opts...)
	if err := game.ResetWith(core.DefaultConfig(), config.DefaultLeopardConfig()); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}
	return NewModel(game, store, core.DefaultConfig(), Options{HoldTicks: 4}), store
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTicksAdvanceGame(t *testing.T) {
	m, _ := newTestModel(t)

	for range 5 {
		var cmd tea.Cmd
		m, cmd = step(t, m, TickMsg{})
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}
	if m.GameState().Tick != 5 {
		t.Errorf("Tick = %d, want 5", m.GameState().Tick)
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	m, store := newTestModel(t)

	m, _ = step(t, m, TickMsg{})
	m, _ = step(t, m, runeKey('q'))
	m, cmd := step(t, m, TickMsg{})

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should end the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	runs, err := store.RecentRuns(leopard.GameID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Ticks != 1 {
		t.Errorf("runs = %+v, want one run of 1 tick", runs)
	}
}

func TestModelPauseKey(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = step(t, m, runeKey('p'))
	m, _ = step(t, m, TickMsg{})
	if !m.GameState().Paused {
		t.Error("p should pause the game")
	}
}

func TestModelViewHasHUDAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "Lives: 10") {
		t.Error("view should include the HUD")
	}
	if !strings.Contains(view, "thunder") {
		t.Error("view should include the key help")
	}
}

func TestModelConfigChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leopard.yaml")
	m, _ := newTestModel(t, leopard.WithConfigPath(path))

	m, _ = step(t, m, TickMsg{})

	if err := os.WriteFile(path, []byte("player:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _ = step(t, m, configChangedMsg(path))
	if !strings.Contains(m.status, "rejected") {
		t.Errorf("status = %q, want a rejection", m.status)
	}
	if m.GameState().Tick != 1 {
		t.Error("a rejected config must not restart the run")
	}

	if err := os.WriteFile(path, []byte("player:\n  lives: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _ = step(t, m, configChangedMsg(path))
	if st := m.GameState(); st.Tick != 0 || st.Lives != 3 {
		t.Errorf("state after reload = %+v, want a fresh run with 3 lives", st)
	}
}
