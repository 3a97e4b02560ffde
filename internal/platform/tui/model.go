package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// inputQueueSize bounds key presses buffered between frames.
// Keys are resolved to actions on the frame that consumes them, so a press
// made on the menu is read in whatever mode the game is in by then.
const inputQueueSize = 8

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *dragon.Game
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	input    *core.Queue[tea.KeyMsg]
	keys     KeyMap
	help     help.Model
	lastTick time.Time
	quitting bool

	screenshotDir string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *dragon.Game, cfg core.RuntimeConfig) Model {
	keys := DefaultKeyMap()
	keys.SetMode(game.Mode())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(),
		config:   cfg,
		input:    core.NewQueue[tea.KeyMsg](inputQueueSize),
		keys:     keys,
		help:     h,

		screenshotDir: defaultScreenshotDir(),
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(dragon.Title),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.game.Render(m.screen)
		//nolint:errcheck // Best-effort save, game continues regardless
		saveScreenshot(m.screenshotDir, m.screen, time.Now())
		return m, nil
	}

	m.input.Push(msg)
	return m, nil
}

// nextInput pops the oldest queued key and resolves it with the bindings of
// the current mode.
func (m *Model) nextInput() core.InputFrame {
	msg, ok := m.input.Pop()
	if !ok {
		return core.InputFrame{}
	}
	m.keys.SetMode(m.game.Mode())
	return core.NewInputFrame(m.keys.Action(msg))
}

// handleTick runs one game frame with at most one queued action.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := elapsedMs(m.lastTick, now)
	m.lastTick = now

	m.game.Update(elapsed, m.nextInput())
	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	m.keys.SetMode(m.game.Mode())
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game *dragon.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
