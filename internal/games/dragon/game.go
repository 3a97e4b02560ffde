// Package dragon implements Flappy Dragon: a dragon flaps through gaps in
// walls that scroll past, one point per wall.
//
// The Game value owns the whole state and is advanced by one Update call per
// display frame. Physics runs on its own fixed timestep inside Update.
package dragon

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/audio"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Title is the window title.
const Title = "Flappy Dragon"

// Options carries the collaborators of a Game. Zero values are replaced with
// an RNG seeded from Seed, a silent audio player, the fallback sprite and a
// discarding logger.
type Options struct {
	Seed   int64 // RNG seed when Rand is nil, 0 means time-based
	Rand   *rand.Rand
	Audio  audio.Player
	Sounds map[assets.Sound]string
	Sprite *assets.Sprite
	Logger *log.Logger
}

// Game is the Flappy Dragon state machine.
type Game struct {
	cfg config.DragonConfig

	mode      Mode
	player    *Player
	obstacle  Obstacle
	generator *ObstacleGenerator
	settings  *Settings
	picker    Picker
	frameTime float64 // ms accumulated toward the next physics step
	score     int
	quitting  bool

	devOverlay          bool
	encouragement       string
	encouragementFrames int
	deathMessage        string

	audio  audio.Player
	sounds map[assets.Sound]string
	sprite *assets.Sprite
	logger *log.Logger

	spriteLayer  *core.Screen
	overlayLayer *core.Screen
}

// New creates a game on the main menu.
func New(cfg config.DragonConfig, opts Options) *Game {
	if opts.Rand == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Sprite == nil {
		opts.Sprite = assets.FallbackSprite()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:          cfg,
		mode:         ModeMenu,
		generator:    NewObstacleGenerator(opts.Rand, cfg.Obstacles),
		settings:     NewSettings(cfg.Settings),
		picker:       NewPicker(opts.Rand),
		audio:        opts.Audio,
		sounds:       opts.Sounds,
		sprite:       opts.Sprite,
		logger:       opts.Logger,
		spriteLayer:  core.NewLayer(cfg.Screen.Width, cfg.Screen.Height),
		overlayLayer: core.NewLayer(cfg.Screen.Width, cfg.Screen.Height),
	}
	g.resetRun()
	return g
}

// resetRun puts the dragon and the first wall back at the start.
func (g *Game) resetRun() {
	g.player = NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Physics, g.sprite.Cycle())
	g.obstacle = g.generator.Generate(g.cfg.Screen.Width, 0, g.settings.MinGapSize)
	g.frameTime = 0
	g.score = 0
	g.encouragement = ""
	g.encouragementFrames = 0
	g.deathMessage = ""
}

// Restart begins a new run in Playing mode.
func (g *Game) Restart() {
	g.resetRun()
	g.setMode(ModePlaying)
}

// Update advances the game by one display frame.
// elapsedMs is the real time since the previous frame.
func (g *Game) Update(elapsedMs float64, in core.InputFrame) {
	switch g.mode {
	case ModeMenu:
		g.updateMenu(in)
	case ModePlaying:
		g.updatePlaying(elapsedMs, in)
	case ModePaused:
		g.updatePaused(in)
	case ModeSettings:
		g.updateSettings(in)
	case ModeEnd:
		g.updateEnd(in)
	}
}

func (g *Game) updateMenu(in core.InputFrame) {
	g.handleScreenCommand(in)
}

func (g *Game) updateEnd(in core.InputFrame) {
	g.handleScreenCommand(in)
}

// handleScreenCommand serves the menu and game over screens, which accept
// the same commands.
func (g *Game) handleScreenCommand(in core.InputFrame) {
	if in.Empty() {
		return
	}
	if in.Has(core.ActionQuit) && canQuit[g.mode] {
		g.quitting = true
		return
	}
	next, ok := Next(g.mode, in.Action)
	if !ok {
		return
	}
	if next == ModePlaying {
		g.Restart()
		return
	}
	g.setMode(next)
}

func (g *Game) updatePaused(in core.InputFrame) {
	if next, ok := Next(g.mode, in.Action); ok {
		g.setMode(next)
	}
}

func (g *Game) updateSettings(in core.InputFrame) {
	switch in.Action {
	case core.ActionCycleFlapVelocity:
		g.settings.CycleFlapVelocity()
	case core.ActionCycleMinGap:
		g.settings.CycleMinGap()
	case core.ActionCycleVolume:
		g.settings.CycleVolume()
		g.playSound(assets.SoundScore)
	default:
		if next, ok := Next(g.mode, in.Action); ok {
			g.setMode(next)
		}
	}
}

func (g *Game) updatePlaying(elapsedMs float64, in core.InputFrame) {
	g.frameTime += elapsedMs
	if g.frameTime > g.cfg.Physics.FrameDurationMs {
		g.frameTime = 0
		g.player.Advance()
	}

	switch in.Action {
	case core.ActionFlap:
		g.player.Flap(g.settings.FlapVelocity)
		g.playSound(assets.SoundFlap)
	case core.ActionToggleDevOverlay:
		g.devOverlay = !g.devOverlay
	case core.ActionPause:
		g.setMode(ModePaused)
	}

	if g.encouragementFrames > 0 {
		g.encouragementFrames--
	}

	if g.player.X > g.obstacle.X {
		g.score++
		g.playSound(assets.SoundScore)
		if g.score%g.cfg.Encouragement.Every == 0 {
			g.encouragement = g.picker.Pick(EncouragementPool)
			g.encouragementFrames = g.cfg.Encouragement.DisplayFrames
		}
		g.obstacle = g.generator.Generate(g.player.X+g.cfg.Screen.Width, g.score, g.settings.MinGapSize)
	}

	if g.player.Y > g.cfg.Screen.Height || g.obstacle.Collides(g.player) {
		g.deathMessage = g.picker.Pick(DeathPool)
		g.playSound(assets.SoundCrash)
		g.setMode(ModeEnd)
	}
}

func (g *Game) setMode(m Mode) {
	if m == g.mode {
		return
	}
	g.logger.Debug("mode change", "from", g.mode, "to", m, "score", g.score)
	g.mode = m
}

func (g *Game) playSound(s assets.Sound) {
	path, ok := g.sounds[s]
	if !ok {
		return
	}
	g.audio.Play(path, g.settings.VolumeScalar())
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of walls cleared in the current run.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the dragon's state.
func (g *Game) Player() Player {
	return *g.player
}

// Obstacle returns the current wall.
func (g *Game) Obstacle() Obstacle {
	return g.obstacle
}

// Settings returns the adjustable settings.
func (g *Game) Settings() Settings {
	return *g.settings
}

// Quitting reports whether the player asked to exit.
func (g *Game) Quitting() bool {
	return g.quitting
}

// DevOverlay reports whether the diagnostic layer is shown.
func (g *Game) DevOverlay() bool {
	return g.devOverlay
}

// Encouragement returns the current cheer and the frames it stays on screen.
func (g *Game) Encouragement() (string, int) {
	return g.encouragement, g.encouragementFrames
}

// DeathMessage returns the message chosen for the last crash.
func (g *Game) DeathMessage() string {
	return g.deathMessage
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.DragonConfig {
	return g.cfg
}
