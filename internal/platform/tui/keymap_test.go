package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-leopard/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapActions(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"d", runeKey('d'), []core.Action{core.ActionRight}},
		{"shift right", tea.KeyMsg{Type: tea.KeyShiftRight}, []core.Action{core.ActionRight, core.ActionRun}},
		{"shift a", runeKey('A'), []core.Action{core.ActionLeft, core.ActionRun}},
		{"h runs", runeKey('h'), []core.Action{core.ActionRun}},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionJump}},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionJump}},
		{"x fires", runeKey('x'), []core.Action{core.ActionFire}},
		{"p pauses", runeKey('p'), []core.Action{core.ActionPause}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionEscape}},
		{"q", runeKey('q'), []core.Action{core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{"unbound", runeKey('z'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Actions(tt.msg); !slices.Equal(got, tt.want) {
				t.Errorf("Actions(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldTrackerHoldsForTicks(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionRight)

	for tick := range 3 {
		in := h.Frame()
		if !in.Has(core.ActionRight) {
			t.Fatalf("tick %d: right should be held", tick)
		}
		if in.WasPressed(core.ActionRight) != (tick == 0) {
			t.Errorf("tick %d: pressed = %v", tick, in.WasPressed(core.ActionRight))
		}
	}

	if h.Frame().Has(core.ActionRight) {
		t.Error("hold should expire after 3 ticks")
	}
}

func TestHoldTrackerAutorepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(core.ActionJump)
	h.Frame()
	h.Press(core.ActionJump)

	in := h.Frame()
	if !in.Has(core.ActionJump) || !in.WasPressed(core.ActionJump) {
		t.Fatalf("repeat should refresh the hold and report a press: %+v", in)
	}
	if !h.Frame().Has(core.ActionJump) {
		t.Error("refreshed hold should last another tick")
	}
	if h.Frame().Has(core.ActionJump) {
		t.Error("hold should expire")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionFire)
	h.Release()

	in := h.Frame()
	if in.Has(core.ActionLeft) || in.WasPressed(core.ActionFire) {
		t.Errorf("Release should drop everything: %+v", in)
	}
}
