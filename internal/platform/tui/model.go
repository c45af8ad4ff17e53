package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/core"
	"github.com/vovakirdan/ninja-leopard/internal/logging"
	"github.com/vovakirdan/ninja-leopard/internal/registry"
	"github.com/vovakirdan/ninja-leopard/internal/storage"
)

// statusTicks is how long a footer status message stays up.
const statusTicks = 120

// GameFactory builds a fresh game that logs to logger.
type GameFactory func(logger *log.Logger) registry.Game

// Options tunes a game session.
type Options struct {
	HoldTicks int                // Ticks a key press stays held; DefaultHoldTicks if zero
	Watcher   *config.Watcher    // Optional; changes reset the game with the new config
	Logger    *log.Logger        // Defaults to a discard logger
	Renderer  *lipgloss.Renderer // Per-session renderer for SSH; nil uses stdout
	NewGame   GameFactory        // Session runs only; nil creates the game from the registry
}

// configChangedMsg reports a rewritten config file.
type configChangedMsg string

// configErrorMsg reports a watcher failure.
type configErrorMsg struct{ err error }

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	holds     *HoldTracker
	painter   *ScreenRenderer
	footer    lipgloss.Style
	watcher   *config.Watcher
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
	runSaved  bool

	status      string
	statusTicks int
}

// NewModel creates a new Bubble Tea model for an already reset game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if opts.HoldTicks == 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:     store,
		config:    cfg,
		keys:      DefaultGameKeyMap(),
		help:      h,
		holds:     NewHoldTracker(opts.HoldTicks),
		painter:   NewScreenRenderer(r),
		footer:    r.NewStyle().Foreground(lipgloss.Color("241")),
		watcher:   opts.Watcher,
		logger:    opts.Logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop and, if configured, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// waitForConfig blocks until the watcher reports something.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case configChangedMsg:
		return m.handleConfigChange(string(msg))

	case configErrorMsg:
		m.logger.Warn("config watcher error", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey turns key events into held controls for the next ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.setStatus("screenshot failed")
		} else {
			m.setStatus("saved " + path)
		}
		return m, nil
	}

	for _, a := range m.keys.Actions(msg) {
		m.holds.Press(a)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.holds.Frame())
	m.gameState = result.State

	if m.statusTicks > 0 {
		m.statusTicks--
	}

	if m.gameState.Quit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// handleConfigChange restarts the game with the rewritten config. A config
// that fails validation is reported and the current run continues.
func (m Model) handleConfigChange(path string) (tea.Model, tea.Cmd) {
	previous := m.gameState
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Warn("config rejected", "path", path, "error", err)
		m.setStatus("config rejected, see log")
		return m, waitForConfig(m.watcher)
	}

	m.recordRun(previous)
	m.runSaved = false
	m.holds.Release()
	m.gameState = m.game.State()
	m.logger.Info("config reloaded", "path", path)
	m.setStatus("config reloaded")
	return m, waitForConfig(m.watcher)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = statusTicks
}

// saveRun records the current run once.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.recordRun(m.gameState)
	m.runSaved = true
}

func (m *Model) recordRun(st core.GameState) {
	if m.store == nil || st.Tick == 0 {
		return
	}
	run := storage.RunRecord{
		GameID:     m.game.ID(),
		Score:      st.Score,
		Defeated:   st.Defeated,
		LifeResets: st.Resets,
		Ticks:      st.Tick,
		Cleared:    st.Cleared,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "score", st.Score, "defeated", st.Defeated, "resets", st.Resets)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".leopard", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the game frame and a footer line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.statusTicks > 0 {
		footer = m.status
	}
	return m.painter.Render(m.screen) + "\n" + m.footer.Render(footer)
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run resets the game and plays it until the player quits. Configuration
// errors are returned before the terminal is taken over.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options, progOpts ...tea.ProgramOption) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	model := NewModel(game, store, cfg, opts)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	_, err := tea.NewProgram(model, progOpts...).Run()
	return err
}
