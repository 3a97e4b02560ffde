package dragon

import "github.com/vovakirdan/flappy-dragon/internal/core"

// Mode is the active screen of the game. Exactly one is active per frame.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeSettings
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeSettings:
		return "Settings"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// transitions lists every input-driven mode change.
// Playing -> End happens on death, not on input, and is not listed.
// Play edges go through Restart so the run starts from scratch.
var transitions = map[Mode]map[core.Action]Mode{
	ModeMenu: {
		core.ActionPlay:         ModePlaying,
		core.ActionOpenSettings: ModeSettings,
	},
	ModePlaying: {
		core.ActionPause: ModePaused,
	},
	ModePaused: {
		core.ActionPause: ModePlaying,
	},
	ModeSettings: {
		core.ActionReturnToMenu: ModeMenu,
	},
	ModeEnd: {
		core.ActionPlay:         ModePlaying,
		core.ActionOpenSettings: ModeSettings,
	},
}

// canQuit lists the modes that accept the quit command.
var canQuit = map[Mode]bool{
	ModeMenu: true,
	ModeEnd:  true,
}

// Next returns the mode reached from m on action a, if any.
func Next(m Mode, a core.Action) (Mode, bool) {
	next, ok := transitions[m][a]
	return next, ok
}

// Accepts reports whether action a does anything in mode m.
// The platform layer uses it to enable only the relevant key bindings.
func Accepts(m Mode, a core.Action) bool {
	if _, ok := Next(m, a); ok {
		return true
	}
	if a == core.ActionQuit {
		return canQuit[m]
	}
	switch m {
	case ModePlaying:
		return a == core.ActionFlap || a == core.ActionToggleDevOverlay
	case ModeSettings:
		return a == core.ActionCycleFlapVelocity || a == core.ActionCycleMinGap || a == core.ActionCycleVolume
	}
	return false
}
