package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the hardcoded default configuration.
// It mirrors defaults/dragon.yaml and is used when the embedded file cannot be parsed.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Screen: ScreenConfig{
			Width:    80,
			Height:   50,
			TickRate: 60,
		},
		Physics: PhysicsConfig{
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			FrameDurationMs:  30,
		},
		Obstacles: ObstacleConfig{
			GapBandMin:        10,
			GapBandMax:        40,
			BaselineGap:       20,
			GapShrinkPerPoint: 1,
		},
		Player: PlayerConfig{
			StartX:  5,
			StartY:  25,
			ScreenX: 4,
		},
		Settings: SettingsConfig{
			FlapVelocity: -2.0,
			FlapStep:     0.5,
			FlapLimit:    -4.0,
			FlapReset:    -1.5,
			MinGapSize:   2,
			MinGapMax:    10,
			Volume:       5,
			VolumeMax:    10,
		},
		Encouragement: EncouragementConfig{
			Every:         5,
			DisplayFrames: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
