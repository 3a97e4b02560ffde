// Package config provides YAML-based tuning for the game and the gap
// difficulty curve.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// DragonConfig contains all tuning for Flappy Dragon.
type DragonConfig struct {
	Screen        ScreenConfig        `yaml:"screen"`
	Physics       PhysicsConfig       `yaml:"physics"`
	Obstacles     ObstacleConfig      `yaml:"obstacles"`
	Player        PlayerConfig        `yaml:"player"`
	Settings      SettingsConfig      `yaml:"settings"`
	Encouragement EncouragementConfig `yaml:"encouragement"`
}

// ScreenConfig defines the playfield size and the display refresh rate.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// Runtime converts the screen section into the platform's runtime config.
func (c DragonConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Screen.Width,
		ScreenH:  c.Screen.Height,
		TickRate: c.Screen.TickRate,
	}
}

// PhysicsConfig defines the kinematics of the dragon.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // Velocity added per physics step
	TerminalVelocity float64 `yaml:"terminal_velocity"` // No acceleration at or past this
	FrameDurationMs  float64 `yaml:"frame_duration_ms"` // Real time between physics steps
}

// ObstacleConfig defines where gaps appear and how fast they shrink.
type ObstacleConfig struct {
	GapBandMin        int `yaml:"gap_band_min"` // Inclusive
	GapBandMax        int `yaml:"gap_band_max"` // Exclusive
	BaselineGap       int `yaml:"baseline_gap"`
	GapShrinkPerPoint int `yaml:"gap_shrink_per_point"`
}

// PlayerConfig defines the starting position of the dragon.
type PlayerConfig struct {
	StartX  int `yaml:"start_x"`
	StartY  int `yaml:"start_y"`
	ScreenX int `yaml:"screen_x"` // Column the dragon is drawn at
}

// SettingsConfig defines defaults and cyclic bounds of the settings screen.
type SettingsConfig struct {
	FlapVelocity float64 `yaml:"flap_velocity"`
	FlapStep     float64 `yaml:"flap_step"`
	FlapLimit    float64 `yaml:"flap_limit"` // Wrap once the impulse goes below this
	FlapReset    float64 `yaml:"flap_reset"`
	MinGapSize   int     `yaml:"min_gap_size"`
	MinGapMax    int     `yaml:"min_gap_max"`
	Volume       int     `yaml:"volume"`
	VolumeMax    int     `yaml:"volume_max"`
}

// EncouragementConfig defines how often a cheer is shown and for how long.
type EncouragementConfig struct {
	Every         int `yaml:"every"`
	DisplayFrames int `yaml:"display_frames"`
}

// Validate checks that the configuration keeps the game's invariants:
// positive dimensions, a non-empty gap band, and every possible gap fitting
// on screen with half-size margins.
func (c DragonConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Screen.TickRate))
	}
	if c.Physics.FrameDurationMs <= 0 {
		errs = append(errs, fmt.Errorf("frame_duration_ms must be positive, got %v", c.Physics.FrameDurationMs))
	}
	if c.Physics.Gravity <= 0 || c.Physics.TerminalVelocity <= 0 {
		errs = append(errs, errors.New("gravity and terminal_velocity must be positive"))
	}

	o := c.Obstacles
	if o.GapBandMin >= o.GapBandMax {
		errs = append(errs, fmt.Errorf("gap band [%d, %d) is empty", o.GapBandMin, o.GapBandMax))
	}
	half := o.BaselineGap / 2
	if o.GapBandMin-half < 0 || o.GapBandMax-1+half >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("gap band [%d, %d) with baseline gap %d does not fit in height %d",
			o.GapBandMin, o.GapBandMax, o.BaselineGap, c.Screen.Height))
	}
	if o.GapShrinkPerPoint < 0 {
		errs = append(errs, fmt.Errorf("gap_shrink_per_point must not be negative, got %d", o.GapShrinkPerPoint))
	}

	s := c.Settings
	if s.FlapVelocity >= 0 || s.FlapReset >= 0 || s.FlapLimit >= 0 {
		errs = append(errs, errors.New("flap velocities must be negative (upward)"))
	}
	if s.FlapStep <= 0 {
		errs = append(errs, fmt.Errorf("flap_step must be positive, got %v", s.FlapStep))
	}
	if s.MinGapSize < 1 || s.MinGapSize > s.MinGapMax {
		errs = append(errs, fmt.Errorf("min_gap_size %d outside [1, %d]", s.MinGapSize, s.MinGapMax))
	}
	if s.MinGapMax > o.BaselineGap {
		errs = append(errs, fmt.Errorf("min_gap_max %d exceeds baseline_gap %d", s.MinGapMax, o.BaselineGap))
	}
	if s.Volume < 0 || s.Volume > s.VolumeMax {
		errs = append(errs, fmt.Errorf("volume %d outside [0, %d]", s.Volume, s.VolumeMax))
	}

	p := c.Player
	if p.StartY < 0 || p.StartY > c.Screen.Height {
		errs = append(errs, fmt.Errorf("player.start_y %d outside [0, %d]", p.StartY, c.Screen.Height))
	}
	if p.ScreenX < 0 || p.ScreenX >= c.Screen.Width {
		errs = append(errs, fmt.Errorf("player.screen_x %d outside [0, %d)", p.ScreenX, c.Screen.Width))
	}

	if c.Encouragement.DisplayFrames < 0 {
		errs = append(errs, fmt.Errorf("encouragement.display_frames must not be negative, got %d", c.Encouragement.DisplayFrames))
	}
	if c.Encouragement.Every <= 0 {
		errs = append(errs, fmt.Errorf("encouragement.every must be positive, got %d", c.Encouragement.Every))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
