package dragon

import "github.com/vovakirdan/flappy-dragon/internal/config"

// Settings holds the values adjustable from the settings screen.
// Each value cycles within its bounds.
type Settings struct {
	FlapVelocity float64
	MinGapSize   int
	Volume       int

	bounds config.SettingsConfig
}

// NewSettings creates settings at their configured defaults.
func NewSettings(cfg config.SettingsConfig) *Settings {
	return &Settings{
		FlapVelocity: cfg.FlapVelocity,
		MinGapSize:   cfg.MinGapSize,
		Volume:       cfg.Volume,
		bounds:       cfg,
	}
}

// CycleFlapVelocity makes the flap stronger by one step, wrapping to the
// reset value once it passes the limit.
func (s *Settings) CycleFlapVelocity() {
	s.FlapVelocity -= s.bounds.FlapStep
	if s.FlapVelocity < s.bounds.FlapLimit {
		s.FlapVelocity = s.bounds.FlapReset
	}
}

// CycleMinGap grows the minimum gap by one, wrapping to 1.
func (s *Settings) CycleMinGap() {
	s.MinGapSize++
	if s.MinGapSize > s.bounds.MinGapMax {
		s.MinGapSize = 1
	}
}

// CycleVolume raises the volume by one, wrapping to 0.
func (s *Settings) CycleVolume() {
	s.Volume++
	if s.Volume > s.bounds.VolumeMax {
		s.Volume = 0
	}
}

// VolumeScalar returns the volume as a playback factor in [0, 1].
func (s *Settings) VolumeScalar() float64 {
	if s.bounds.VolumeMax <= 0 {
		return 0
	}
	return float64(s.Volume) / float64(s.bounds.VolumeMax)
}
