package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// KeyMap defines the key bindings of the game.
// P is bound twice: Play on the menu and game over screens, Pause while
// playing. SetMode enables only the bindings the current mode accepts, so a
// key press resolves to at most one action.
type KeyMap struct {
	Flap         key.Binding
	DevView      key.Binding
	Pause        key.Binding
	Play         key.Binding
	Quit         key.Binding
	Settings     key.Binding
	Menu         key.Binding
	FlapVelocity key.Binding
	MinGap       key.Binding
	Volume       key.Binding
	Screenshot   key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		DevView: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dev view"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main menu"),
		),
		FlapVelocity: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flap velocity"),
		),
		MinGap: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "min gap"),
		),
		Volume: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "volume"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

type actionBinding struct {
	binding *key.Binding
	action  core.Action
}

// actions pairs every mode-dependent binding with its action.
func (k *KeyMap) actions() []actionBinding {
	return []actionBinding{
		{&k.Flap, core.ActionFlap},
		{&k.DevView, core.ActionToggleDevOverlay},
		{&k.Pause, core.ActionPause},
		{&k.Play, core.ActionPlay},
		{&k.Quit, core.ActionQuit},
		{&k.Settings, core.ActionOpenSettings},
		{&k.Menu, core.ActionReturnToMenu},
		{&k.FlapVelocity, core.ActionCycleFlapVelocity},
		{&k.MinGap, core.ActionCycleMinGap},
		{&k.Volume, core.ActionCycleVolume},
	}
}

// SetMode enables the bindings that mode m accepts and disables the rest.
// Screenshot and ForceQuit stay enabled in every mode.
func (k *KeyMap) SetMode(m dragon.Mode) {
	for _, ab := range k.actions() {
		ab.binding.SetEnabled(dragon.Accepts(m, ab.action))
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound or disabled keys.
func (k *KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, ab := range k.actions() {
		if key.Matches(msg, *ab.binding) {
			return ab.action
		}
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Flap, k.Play, k.Pause, k.Settings, k.Menu,
		k.FlapVelocity, k.MinGap, k.Volume, k.DevView, k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Pause, k.DevView},
		{k.Play, k.Settings, k.Quit},
		{k.FlapVelocity, k.MinGap, k.Volume, k.Menu},
		{k.Screenshot, k.ForceQuit},
	}
}
