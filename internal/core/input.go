package core

// Action represents a logical game command, abstracted from physical key presses.
type Action int

const (
	ActionNone              Action = iota
	ActionFlap                     // Space - upward impulse
	ActionToggleDevOverlay         // D - show/hide the diagnostic layer
	ActionPause                    // P while playing - pause/resume
	ActionPlay                     // P on menu and game over - start a new run
	ActionQuit                     // Q on menu and game over - exit
	ActionOpenSettings             // S - settings screen
	ActionReturnToMenu             // M - back to the main menu
	ActionCycleFlapVelocity        // F - stronger flap, wraps around
	ActionCycleMinGap              // G - larger minimum gap, wraps around
	ActionCycleVolume              // V - louder, wraps around
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionToggleDevOverlay:
		return "ToggleDevOverlay"
	case ActionPause:
		return "Pause"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	case ActionOpenSettings:
		return "OpenSettings"
	case ActionReturnToMenu:
		return "ReturnToMenu"
	case ActionCycleFlapVelocity:
		return "CycleFlapVelocity"
	case ActionCycleMinGap:
		return "CycleMinGap"
	case ActionCycleVolume:
		return "CycleVolume"
	default:
		return "Unknown"
	}
}

// InputFrame is the input consumed by a single frame: at most one action.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates a frame carrying the given action.
func NewInputFrame(a Action) InputFrame {
	return InputFrame{Action: a}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}

// Empty reports whether the frame carries no action.
func (f InputFrame) Empty() bool {
	return f.Action == ActionNone
}

// Queue buffers inputs that arrive between frames so that each frame
// consumes at most one of them. Items beyond the capacity are dropped.
type Queue[T any] struct {
	items []T
	limit int
}

// NewQueue creates a queue holding at most limit pending items.
func NewQueue[T any](limit int) *Queue[T] {
	if limit < 1 {
		limit = 1
	}
	return &Queue[T]{
		items: make([]T, 0, limit),
		limit: limit,
	}
}

// Push appends an item. Returns false if it was dropped.
func (q *Queue[T]) Push(v T) bool {
	if len(q.items) >= q.limit {
		return false
	}
	q.items = append(q.items, v)
	return true
}

// Pop removes the oldest pending item.
// Returns false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items = append(q.items[:0], q.items[1:]...)
	return v, true
}
