// Package beep plays clips through the system speaker with gopxl/beep.
// Player implements audio.Player.
package beep

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/flappy-dragon/internal/audio"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
	// DefaultQueueSize bounds pending requests; extra requests are dropped.
	DefaultQueueSize = 16
)

// ErrClosed is logged for requests made after Close.
var ErrClosed = errors.New("audio: player closed")

// Player plays WAV clips through the system speaker.
// A single worker goroutine decodes clips and hands them to the speaker
// mixer, so overlapping sounds are mixed rather than queued.
type Player struct {
	requests chan audio.Request
	logger   *log.Logger
	rate     beep.SampleRate
	sink     func(beep.Streamer)

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New opens the output device and starts the playback worker.
func New(logger *log.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	b := newPlayer(logger, DefaultQueueSize, sampleRate, func(s beep.Streamer) {
		speaker.Play(s)
	})
	return b, nil
}

func newPlayer(logger *log.Logger, queue int, rate beep.SampleRate, sink func(beep.Streamer)) *Player {
	b := &Player{
		requests: make(chan audio.Request, queue),
		logger:   logger,
		rate:     rate,
		sink:     sink,
	}
	b.wg.Add(1)
	go b.run()
	return b
}

// Play submits a clip for playback. It never blocks: when the queue is full
// or the player is closed the request is logged and dropped.
func (b *Player) Play(path string, volume float64) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.logger.Debug("sound dropped", "path", path, "error", ErrClosed)
		return
	}
	select {
	case b.requests <- audio.Request{Path: path, Volume: volume}:
	default:
		b.logger.Warn("sound dropped, queue full", "path", path)
	}
}

// Close stops the worker after pending requests are handed to the speaker.
func (b *Player) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.requests)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}

func (b *Player) run() {
	defer b.wg.Done()

	for req := range b.requests {
		if req.Volume <= 0 {
			continue
		}
		s, err := Load(req.Path, req.Volume, b.rate)
		if err != nil {
			b.logger.Warn("sound playback failed", "path", req.Path, "error", err)
			continue
		}
		b.sink(s)
	}
}

// Load decodes a WAV file into a streamer at the given rate and volume
// scalar (0 silent, 1 unchanged). The file is closed once the stream drains.
func Load(path string, volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	decoded, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	var s beep.Streamer = decoded
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}
	s = withVolume(s, volume)

	return beep.Seq(s, beep.Callback(func() {
		decoded.Close()
	})), nil
}

// withVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so zero volume is handled as silence.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume), Silent: false}
}
