package config

import "github.com/vovakirdan/flappy-dragon/internal/core"

// DifficultyManager turns the score into the current obstacle gap size.
// The gap shrinks linearly from the baseline as points accumulate until the
// player's configured minimum takes over.
type DifficultyManager struct {
	baseline int
	shrink   int
}

// NewDifficultyManager creates a difficulty manager for the obstacle tuning.
func NewDifficultyManager(cfg ObstacleConfig) *DifficultyManager {
	return &DifficultyManager{
		baseline: cfg.BaselineGap,
		shrink:   cfg.GapShrinkPerPoint,
	}
}

// GapSize returns max(minGap, baseline - score*shrink).
func (d *DifficultyManager) GapSize(score, minGap int) int {
	return core.Max(minGap, d.baseline-score*d.shrink)
}
