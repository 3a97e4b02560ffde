package assets

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Pose selects the tilt of the dragon from its vertical velocity.
type Pose string

const (
	PoseRise  Pose = "rise"
	PoseLevel Pose = "level"
	PoseDive  Pose = "dive"
)

var allPoses = []Pose{PoseRise, PoseLevel, PoseDive}

// Sprite is an animated multi-frame text sprite.
// Every pose holds the same number of frames; a frame is a list of rows.
type Sprite struct {
	Name          string              `yaml:"name"`
	ColorName     string              `yaml:"color"`
	AnchorX       int                 `yaml:"anchor_x"`
	AnchorY       int                 `yaml:"anchor_y"`
	TicksPerFrame int                 `yaml:"ticks_per_frame"`
	Poses         map[Pose][][]string `yaml:"poses"`

	color core.Color
}

// ParseSprite decodes and validates a YAML sprite sheet.
func ParseSprite(data []byte) (*Sprite, error) {
	var s Sprite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Sprite) validate() error {
	if s.TicksPerFrame <= 0 {
		return fmt.Errorf("ticks_per_frame must be positive, got %d", s.TicksPerFrame)
	}
	c, ok := core.ParseColor(s.ColorName)
	if !ok {
		return fmt.Errorf("unknown color %q", s.ColorName)
	}
	s.color = c

	count := -1
	for _, p := range allPoses {
		frames := s.Poses[p]
		if len(frames) == 0 {
			return fmt.Errorf("pose %q has no frames", p)
		}
		if count >= 0 && len(frames) != count {
			return fmt.Errorf("pose %q has %d frames, expected %d", p, len(frames), count)
		}
		count = len(frames)
		for i, f := range frames {
			if len(f) == 0 {
				return fmt.Errorf("pose %q frame %d is empty", p, i)
			}
		}
	}
	if s.AnchorX < 0 || s.AnchorY < 0 {
		return errors.New("anchor must not be negative")
	}
	return nil
}

// FallbackSprite is a single-glyph dragon used when no sprite sheet is loaded.
func FallbackSprite() *Sprite {
	frame := [][]string{{"@"}}
	return &Sprite{
		Name:          "fallback",
		ColorName:     "yellow",
		TicksPerFrame: 1,
		Poses: map[Pose][][]string{
			PoseRise:  frame,
			PoseLevel: frame,
			PoseDive:  frame,
		},
		color: core.ColorYellow,
	}
}

// Color returns the sprite's foreground color.
func (s *Sprite) Color() core.Color {
	return s.color
}

// FrameCount returns the number of frames in each pose.
func (s *Sprite) FrameCount() int {
	return len(s.Poses[PoseLevel])
}

// Cycle returns the number of animation ticks before the frames repeat.
func (s *Sprite) Cycle() int {
	return s.FrameCount() * s.TicksPerFrame
}

// Frame returns the rows to draw for the pose at the given animation tick.
func (s *Sprite) Frame(pose Pose, tick int) []string {
	frames, ok := s.Poses[pose]
	if !ok {
		frames = s.Poses[PoseLevel]
	}
	if tick < 0 {
		tick = 0
	}
	return frames[(tick/s.TicksPerFrame)%len(frames)]
}

// PoseFor picks the pose matching a vertical velocity (negative is upward).
func PoseFor(velocity float64) Pose {
	switch {
	case velocity < 0:
		return PoseRise
	case velocity >= 1.5:
		return PoseDive
	default:
		return PoseLevel
	}
}

// Draw renders the frame so that the anchor cell lands on (x, y).
func (s *Sprite) Draw(dst *core.Screen, x, y int, pose Pose, tick int) {
	for dy, row := range s.Frame(pose, tick) {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetCell(x-s.AnchorX+dx, y-s.AnchorY+dy, r, s.color, core.ColorDefault)
			}
			dx++
		}
	}
}
