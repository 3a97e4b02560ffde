// Package audio plays one-shot sound clips without blocking the game loop.
package audio

import "sync"

// Player accepts fire-and-forget playback requests.
// Play must never block and never report failures to the caller.
type Player interface {
	Play(path string, volume float64)
	Close() error
}

// Nop discards every request. Used when no output device is available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string, float64) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// Request is a single playback request.
type Request struct {
	Path   string
	Volume float64
}

// Recorder remembers requests instead of playing them.
type Recorder struct {
	mu       sync.Mutex
	requests []Request
}

// Play records the request.
func (r *Recorder) Play(path string, volume float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, Request{Path: path, Volume: volume})
}

// Close does nothing.
func (r *Recorder) Close() error { return nil }

// Requests returns a copy of the recorded requests.
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Request(nil), r.requests...)
}
