package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Player is the dragon's kinematic state.
// X doubles as the world-scroll offset and the distance flown.
type Player struct {
	X        int
	Y        int
	Velocity float64 // Positive is downward
	Frame    int     // Animation tick, wraps at the sprite cycle

	gravity    float64
	terminal   float64
	frameCycle int
}

// NewPlayer creates a player at rest at (x, y).
// frameCycle is the number of animation ticks before the sprite repeats.
func NewPlayer(x, y int, physics config.PhysicsConfig, frameCycle int) *Player {
	return &Player{
		X:          x,
		Y:          y,
		gravity:    physics.Gravity,
		terminal:   physics.TerminalVelocity,
		frameCycle: frameCycle,
	}
}

// Advance performs one physics step: accelerate toward terminal velocity,
// move by the truncated velocity, scroll one column and keep Y on screen top.
func (p *Player) Advance() {
	if p.Velocity < p.terminal {
		p.Velocity += p.gravity
		if p.Velocity > p.terminal {
			p.Velocity = p.terminal
		}
	}

	p.Y += int(p.Velocity)
	p.X++
	p.Y = core.Max(p.Y, 0)

	if p.frameCycle > 0 {
		p.Frame = (p.Frame + 1) % p.frameCycle
	}
}

// Flap replaces the current velocity with the impulse.
func (p *Player) Flap(impulse float64) {
	p.Velocity = impulse
}
