package dragon

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/audio"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

var testSounds = map[assets.Sound]string{
	assets.SoundFlap:  "flap.wav",
	assets.SoundScore: "score.wav",
	assets.SoundCrash: "crash.wav",
}

func newTestGame(seed int64) (*Game, *audio.Recorder) {
	rec := &audio.Recorder{}
	g := New(config.DefaultDragonConfig(), Options{
		Rand:   rand.New(rand.NewSource(seed)),
		Audio:  rec,
		Sounds: testSounds,
	})
	return g, rec
}

func press(a core.Action) core.InputFrame {
	return core.NewInputFrame(a)
}

var noInput = core.InputFrame{}

func soundPaths(rec *audio.Recorder) []string {
	var paths []string
	for _, r := range rec.Requests() {
		paths = append(paths, r.Path)
	}
	return paths
}

func TestNewGameStartsOnMenu(t *testing.T) {
	g, _ := newTestGame(1)

	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected Menu", g.Mode())
	}
	if g.Quitting() {
		t.Error("new game should not be quitting")
	}

	// Menu ignores the clock
	g.Update(1000, noInput)
	if p := g.Player(); p.X != 5 || p.Y != 25 {
		t.Errorf("player moved on the menu: (%d, %d)", p.X, p.Y)
	}
}

func TestMenuCommands(t *testing.T) {
	g, _ := newTestGame(1)
	g.Update(16, press(core.ActionFlap))
	if g.Mode() != ModeMenu {
		t.Errorf("unmapped action changed mode to %v", g.Mode())
	}

	g.Update(16, press(core.ActionOpenSettings))
	if g.Mode() != ModeSettings {
		t.Errorf("Mode() = %v, expected Settings", g.Mode())
	}
	g.Update(16, press(core.ActionReturnToMenu))
	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected Menu", g.Mode())
	}

	g.Update(16, press(core.ActionPlay))
	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected Playing", g.Mode())
	}

	g2, _ := newTestGame(1)
	g2.Update(16, press(core.ActionQuit))
	if !g2.Quitting() {
		t.Error("Quit on the menu should request exit")
	}
}

func TestFixedTimestep(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()

	steps := []struct {
		elapsed   float64
		expectedX int
	}{
		{10, 5},  // 10ms accumulated
		{15, 5},  // 25ms
		{10, 6},  // 35ms > 30ms: one step, counter reset
		{30, 6},  // 30ms is not past the threshold
		{1, 7},   // 31ms
		{500, 8}, // a long frame still advances only once
	}

	for i, s := range steps {
		g.Update(s.elapsed, noInput)
		if got := g.Player().X; got != s.expectedX {
			t.Errorf("step %d: X = %d, expected %d", i, got, s.expectedX)
		}
	}
}

func TestFlapSetsVelocityAndPlaysSound(t *testing.T) {
	g, rec := newTestGame(1)
	g.Restart()

	g.Update(31, noInput)
	g.Update(0, press(core.ActionFlap))

	if v := g.Player().Velocity; v != -2.0 {
		t.Errorf("Velocity after flap = %v, expected -2.0", v)
	}
	reqs := rec.Requests()
	if len(reqs) != 1 || reqs[0].Path != "flap.wav" || reqs[0].Volume != 0.5 {
		t.Errorf("sound requests = %+v, expected one flap at volume 0.5", reqs)
	}
}

func TestDevOverlayToggle(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()

	g.Update(0, press(core.ActionToggleDevOverlay))
	if !g.DevOverlay() {
		t.Error("dev overlay should be on")
	}
	g.Update(0, press(core.ActionToggleDevOverlay))
	if g.DevOverlay() {
		t.Error("dev overlay should be off")
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()

	g.Update(0, press(core.ActionPause))
	if g.Mode() != ModePaused {
		t.Fatalf("Mode() = %v, expected Paused", g.Mode())
	}
	before := g.Player()

	for _, a := range []core.Action{core.ActionFlap, core.ActionQuit, core.ActionPlay, core.ActionToggleDevOverlay} {
		g.Update(1000, press(a))
	}
	if g.Player() != before {
		t.Errorf("player changed while paused: %+v -> %+v", before, g.Player())
	}
	if g.Mode() != ModePaused || g.Quitting() || g.DevOverlay() {
		t.Error("paused game should ignore everything but Pause")
	}

	g.Update(0, press(core.ActionPause))
	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected Playing after resume", g.Mode())
	}
	// Time spent paused does not count toward the next physics step
	g.Update(20, noInput)
	if g.Player().X != before.X {
		t.Error("physics should not run on the first 20ms after resuming")
	}
}

func TestScoringReplacesObstacle(t *testing.T) {
	g, rec := newTestGame(1)
	g.Restart()

	first := g.Obstacle()
	if first.X != 80 || first.Size != 20 {
		t.Fatalf("first obstacle = %+v, expected X 80 and size 20", first)
	}

	g.player.X = first.X + 1
	g.Update(0, noInput)

	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	next := g.Obstacle()
	if next.X != g.player.X+80 {
		t.Errorf("new obstacle X = %d, expected %d", next.X, g.player.X+80)
	}
	if next.Size != 19 {
		t.Errorf("new obstacle size = %d, expected 19", next.Size)
	}
	if !slices.Contains(soundPaths(rec), "score.wav") {
		t.Error("scoring should play the score sound")
	}
}

func TestGapShrinksToMinimum(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()
	g.score = 24

	g.player.X = g.obstacle.X + 1
	g.Update(0, noInput)

	if g.Obstacle().Size != 2 {
		t.Errorf("gap at score 25 = %d, expected minimum 2", g.Obstacle().Size)
	}
}

func TestEncouragementEveryFifthPoint(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()

	for point := 1; point <= 5; point++ {
		g.player.X = g.obstacle.X + 1
		g.player.Y = g.obstacle.GapY
		g.Update(0, noInput)

		msg, frames := g.Encouragement()
		if point < 5 && frames != 0 {
			t.Fatalf("encouragement armed at point %d", point)
		}
		if point == 5 {
			if frames != 60 {
				t.Errorf("countdown = %d, expected 60", frames)
			}
			if !slices.Contains(EncouragementPool, msg) {
				t.Errorf("encouragement %q not in pool", msg)
			}
		}
	}

	g.Update(0, noInput)
	if _, frames := g.Encouragement(); frames != 59 {
		t.Errorf("countdown after one frame = %d, expected 59", frames)
	}

	for i := 0; i < 100; i++ {
		g.Update(0, noInput)
	}
	if _, frames := g.Encouragement(); frames != 0 {
		t.Errorf("countdown should stop at 0, got %d", frames)
	}
}

func TestDeathBelowScreen(t *testing.T) {
	g, rec := newTestGame(1)
	g.Restart()

	g.player.Y = 50
	g.Update(0, noInput)
	if g.Mode() != ModePlaying {
		t.Fatal("Y equal to the screen height is still alive")
	}

	g.player.Y = 51
	g.Update(0, noInput)
	if g.Mode() != ModeEnd {
		t.Fatalf("Mode() = %v, expected End", g.Mode())
	}
	if !slices.Contains(DeathPool, g.DeathMessage()) {
		t.Errorf("death message %q not in pool", g.DeathMessage())
	}
	if !slices.Contains(soundPaths(rec), "crash.wav") {
		t.Error("death should play the crash sound")
	}
}

func TestDeathOnCollision(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()

	g.obstacle = Obstacle{X: g.player.X, GapY: 25, Size: 10}
	g.player.Y = 19
	g.Update(0, noInput)

	if g.Mode() != ModeEnd {
		t.Errorf("Mode() = %v, expected End after hitting the wall", g.Mode())
	}
}

func TestPassThroughGap(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()

	g.obstacle = Obstacle{X: g.player.X, GapY: 25, Size: 10}
	g.player.Y = 20
	g.Update(0, noInput)

	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected Playing inside the gap", g.Mode())
	}
}

func TestEndCommands(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()
	g.player.Y = 60
	g.Update(0, noInput)

	g.Update(0, press(core.ActionOpenSettings))
	if g.Mode() != ModeSettings {
		t.Errorf("Mode() = %v, expected Settings from End", g.Mode())
	}

	g2, _ := newTestGame(1)
	g2.Restart()
	g2.player.Y = 60
	g2.Update(0, noInput)
	g2.Update(0, press(core.ActionQuit))
	if !g2.Quitting() {
		t.Error("Quit on game over should request exit")
	}
}

func TestRestartResetsRun(t *testing.T) {
	g, _ := newTestGame(1)
	g.Restart()

	for point := 0; point < 5; point++ {
		g.player.X = g.obstacle.X + 1
		g.player.Y = g.obstacle.GapY
		g.Update(0, noInput)
	}
	g.player.Velocity = 1.4
	g.player.Y = 99
	g.Update(25, noInput)
	if g.Mode() != ModeEnd {
		t.Fatalf("Mode() = %v, expected End", g.Mode())
	}

	g.Update(0, press(core.ActionPlay))

	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected Playing", g.Mode())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	p := g.Player()
	if p.X != 5 || p.Y != 25 || p.Velocity != 0 {
		t.Errorf("player = %+v, expected at rest at (5, 25)", p)
	}
	if msg, frames := g.Encouragement(); frames != 0 || msg != "" {
		t.Errorf("encouragement = (%q, %d), expected cleared", msg, frames)
	}
	if g.Obstacle().X != 80 || g.Obstacle().Size != 20 {
		t.Errorf("obstacle = %+v, expected a fresh wall at X 80", g.Obstacle())
	}
	if g.frameTime != 0 {
		t.Errorf("frameTime = %v, expected 0", g.frameTime)
	}
}

func TestSettingsScreen(t *testing.T) {
	g, rec := newTestGame(1)
	g.Update(0, press(core.ActionOpenSettings))

	g.Update(0, press(core.ActionCycleFlapVelocity))
	g.Update(0, press(core.ActionCycleMinGap))
	g.Update(0, press(core.ActionCycleVolume))
	g.Update(0, press(core.ActionFlap)) // ignored

	s := g.Settings()
	if s.FlapVelocity != -2.5 || s.MinGapSize != 3 || s.Volume != 6 {
		t.Errorf("settings = (%v, %d, %d), expected (-2.5, 3, 6)", s.FlapVelocity, s.MinGapSize, s.Volume)
	}
	reqs := rec.Requests()
	if len(reqs) != 1 || reqs[0].Volume != 0.6 {
		t.Errorf("volume change should preview at the new volume, got %+v", reqs)
	}

	g.Update(0, press(core.ActionReturnToMenu))
	g.Update(0, press(core.ActionPlay))
	g.Update(0, press(core.ActionFlap))
	if v := g.Player().Velocity; v != -2.5 {
		t.Errorf("flap should use the new impulse, got %v", v)
	}
}

func TestMinGapSettingAppliesOnRestart(t *testing.T) {
	g, _ := newTestGame(1)
	g.Update(0, press(core.ActionOpenSettings))
	for i := 0; i < 8; i++ {
		g.Update(0, press(core.ActionCycleMinGap))
	}
	g.Update(0, press(core.ActionReturnToMenu))
	g.Update(0, press(core.ActionPlay))
	g.score = 30

	g.player.X = g.obstacle.X + 1
	g.Update(0, noInput)
	if g.Obstacle().Size != 10 {
		t.Errorf("gap size = %d, expected the configured minimum 10", g.Obstacle().Size)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs produce identical runs
	run := func() (int, Player, Obstacle) {
		g, _ := newTestGame(12345)
		g.Update(16, press(core.ActionPlay))
		for i := 0; i < 2000 && g.Mode() == ModePlaying; i++ {
			in := noInput
			if g.player.Y > g.obstacle.GapY {
				in = press(core.ActionFlap)
			}
			g.Update(16, in)
		}
		return g.Score(), g.Player(), g.Obstacle()
	}

	s1, p1, o1 := run()
	s2, p2, o2 := run()
	if s1 != s2 || p1 != p2 || o1 != o2 {
		t.Errorf("runs differ: score %d/%d, player %+v/%+v, obstacle %+v/%+v", s1, s2, p1, p2, o1, o2)
	}
}

func TestOptionsSeed(t *testing.T) {
	obstacles := func(seed int64) []Obstacle {
		g := New(config.DefaultDragonConfig(), Options{Seed: seed})
		var got []Obstacle
		for i := 0; i < 5; i++ {
			g.Restart()
			got = append(got, g.Obstacle())
		}
		return got
	}

	a, b := obstacles(7), obstacles(7)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("obstacle %d = %+v, expected %+v for the same seed", i, b[i], a[i])
		}
	}
}
