package beep

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/audio"
)

var _ audio.Player = (*Player)(nil)

func unpackSounds(t *testing.T) *assets.Bundle {
	t.Helper()
	b, err := assets.Unpack(t.TempDir())
	if err != nil {
		t.Fatalf("assets.Unpack() error: %v", err)
	}
	return b
}

// drain streams s to the end and returns the number of samples and the peak amplitude.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestLoadResamples(t *testing.T) {
	b := unpackSounds(t)

	s, err := Load(b.SoundPath(assets.SoundFlap), 1, beep.SampleRate(44100))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	n, peak := drain(s)

	// flap.wav is 80ms at 22050 Hz, resampled to 44100 Hz
	if n < 3400 || n > 3700 {
		t.Errorf("streamed %d samples, expected about 3528", n)
	}
	if peak == 0 {
		t.Error("clip should not be silent at full volume")
	}
}

func TestLoadZeroVolumeIsSilent(t *testing.T) {
	b := unpackSounds(t)

	s, err := Load(b.SoundPath(assets.SoundCrash), 0, beep.SampleRate(22050))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, peak := drain(s); peak != 0 {
		t.Errorf("peak = %v, expected silence", peak)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.wav"), 1, sampleRate); err == nil {
		t.Error("Load() should fail for a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(bad, []byte("not a wav file"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, 1, sampleRate); err == nil {
		t.Error("Load() should fail for a corrupt file")
	}
}

type captureSink struct {
	mu      sync.Mutex
	played  int
	samples int
}

func (c *captureSink) play(s beep.Streamer) {
	n, _ := drain(s)
	c.mu.Lock()
	c.played++
	c.samples += n
	c.mu.Unlock()
}

func TestPlayerPlaysAndLogsFailures(t *testing.T) {
	b := unpackSounds(t)
	var logs bytes.Buffer
	sink := &captureSink{}

	p := newPlayer(log.New(&logs), 8, sampleRate, sink.play)
	p.Play(b.SoundPath(assets.SoundScore), 0.5)
	p.Play(filepath.Join(b.Dir(), "sounds", "nope.wav"), 0.5)
	p.Play(b.SoundPath(assets.SoundFlap), 0) // muted, skipped
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if sink.played != 1 {
		t.Errorf("played %d clips, expected 1", sink.played)
	}
	if !strings.Contains(logs.String(), "sound playback failed") {
		t.Errorf("missing clip should be logged, logs: %q", logs.String())
	}

	// Requests after Close are dropped without panicking
	p.Play(b.SoundPath(assets.SoundScore), 1)
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestPlayerDropsWhenQueueFull(t *testing.T) {
	b := unpackSounds(t)
	var logs bytes.Buffer
	entered := make(chan struct{}, 4)
	release := make(chan struct{})

	p := newPlayer(log.New(&logs), 1, sampleRate, func(beep.Streamer) {
		entered <- struct{}{}
		<-release
	})
	clip := b.SoundPath(assets.SoundFlap)

	p.Play(clip, 1) // picked up by the worker
	<-entered       // worker is now busy in the sink
	p.Play(clip, 1) // fills the queue
	p.Play(clip, 1) // dropped
	close(release)
	p.Close()

	if !strings.Contains(logs.String(), "queue full") {
		t.Errorf("overflow should be logged, logs: %q", logs.String())
	}
}
