package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-leopard/internal/core"
)

// DefaultHoldTicks is how long a terminal key press keeps its control held.
const DefaultHoldTicks = 12

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	RunLeft    key.Binding
	RunRight   key.Binding
	Run        key.Binding
	Jump       key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Escape     key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Run, k.Jump, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight, k.Run},
		{k.Jump, k.Fire},
		{k.Pause, k.Screenshot, k.Escape, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("S-←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("shift+right", "D"),
			key.WithHelp("S-→", "run right"),
		),
		Run: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "run"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "thunder"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
	}
}

// Actions translates a key message to the game actions it triggers.
// Shifted arrows trigger both a direction and the run modifier.
func (k GameKeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.RunLeft):
		return []core.Action{core.ActionLeft, core.ActionRun}
	case key.Matches(msg, k.RunRight):
		return []core.Action{core.ActionRight, core.ActionRun}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Run):
		return []core.Action{core.ActionRun}
	case key.Matches(msg, k.Jump):
		return []core.Action{core.ActionJump}
	case key.Matches(msg, k.Fire):
		return []core.Action{core.ActionFire}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	case key.Matches(msg, k.Escape):
		return []core.Action{core.ActionEscape}
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	}
	return nil
}

// HoldTracker builds input frames from terminal key events, which have no
// release. Every key event is a press edge; it also keeps its action held
// for a number of ticks, and key autorepeat refreshes the hold.
type HoldTracker struct {
	ticks     int
	remaining map[core.Action]int
	pressed   map[core.Action]bool
}

// NewHoldTracker creates a tracker holding each press for ticks frames.
func NewHoldTracker(ticks int) *HoldTracker {
	if ticks < 1 {
		ticks = 1
	}
	return &HoldTracker{
		ticks:     ticks,
		remaining: make(map[core.Action]int),
		pressed:   make(map[core.Action]bool),
	}
}

// Press records a key event for action a.
func (h *HoldTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	h.pressed[a] = true
	h.remaining[a] = h.ticks
}

// Frame returns the input for the next tick and ages the holds by one tick.
func (h *HoldTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, n := range h.remaining {
		in.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	for a := range h.pressed {
		in.Press(a)
	}
	clear(h.pressed)
	return in
}

// Release drops every hold and pending press.
func (h *HoldTracker) Release() {
	clear(h.remaining)
	clear(h.pressed)
}
