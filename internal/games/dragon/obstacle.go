package dragon

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// Obstacle is a vertical wall with a single gap.
// It never moves; the player scrolls past it.
type Obstacle struct {
	X    int // World column
	GapY int // Gap center row
	Size int // Gap height
}

// GapTop returns the highest row inside the gap.
func (o Obstacle) GapTop() int {
	return o.GapY - o.Size/2
}

// GapBottom returns the lowest row inside the gap.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.Size/2
}

// Collides reports whether the player hits the wall.
// Only the frame whose X equals the obstacle column is checked; rows from
// GapTop to GapBottom inclusive are safe.
func (o Obstacle) Collides(p *Player) bool {
	if p.X != o.X {
		return false
	}
	return p.Y < o.GapTop() || p.Y > o.GapBottom()
}

// ObstacleGenerator creates obstacles with a seeded RNG.
type ObstacleGenerator struct {
	rng        *rand.Rand
	bandMin    int
	bandMax    int
	difficulty *config.DifficultyManager
}

// NewObstacleGenerator creates a generator for the obstacle tuning.
func NewObstacleGenerator(rng *rand.Rand, cfg config.ObstacleConfig) *ObstacleGenerator {
	return &ObstacleGenerator{
		rng:        rng,
		bandMin:    cfg.GapBandMin,
		bandMax:    cfg.GapBandMax,
		difficulty: config.NewDifficultyManager(cfg),
	}
}

// Generate creates an obstacle at world column x.
// The gap center is uniform in the configured band and the gap shrinks with
// score down to minGap.
func (g *ObstacleGenerator) Generate(x, score, minGap int) Obstacle {
	return Obstacle{
		X:    x,
		GapY: g.bandMin + g.rng.Intn(g.bandMax-g.bandMin),
		Size: g.difficulty.GapSize(score, minGap),
	}
}
