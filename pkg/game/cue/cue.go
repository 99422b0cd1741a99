// Package cue carries fire-and-forget feedback events (sounds) from menu
// transitions to whatever plays them.
package cue

import (
	"log"
	"sync"
)

// Cue names a feedback event.
type Cue int

const (
	Navigate Cue = iota
	Select
	Back
	Category
	Startup
)

// All lists every cue.
var All = [...]Cue{Navigate, Select, Back, Category, Startup}

// String returns the cue identifier.
func (c Cue) String() string {
	switch c {
	case Navigate:
		return "navigate"
	case Select:
		return "select"
	case Back:
		return "back"
	case Category:
		return "category"
	case Startup:
		return "startup"
	default:
		return "unknown"
	}
}

// Parse resolves a cue identifier.
func Parse(s string) (Cue, bool) {
	for _, c := range All {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Dispatcher receives cues. Dispatch must not block the caller.
type Dispatcher interface {
	Dispatch(c Cue)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(Cue)

// Dispatch calls f(c).
func (f DispatcherFunc) Dispatch(c Cue) { f(c) }

// Player realizes a cue, e.g. by playing a sound. Errors are reported to the
// dispatcher, which logs and drops them.
type Player interface {
	Play(c Cue) error
}

// Recorder is a Dispatcher that remembers every cue it receives.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Dispatch records c.
func (r *Recorder) Dispatch(c Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

// Reset forgets recorded cues.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.cues = nil
	r.mu.Unlock()
}

// DefaultQueueSize bounds the number of cues waiting to be played.
const DefaultQueueSize = 32

// Async hands cues to a Player on a single background goroutine. A full queue
// drops the cue; player errors and panics are logged and swallowed.
type Async struct {
	player Player
	queue  chan Cue
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewAsync starts the worker goroutine.
func NewAsync(p Player, size int) *Async {
	if size <= 0 {
		size = DefaultQueueSize
	}
	a := &Async{
		player: p,
		queue:  make(chan Cue, size),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

// Dispatch queues c without blocking.
func (a *Async) Dispatch(c Cue) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}
	select {
	case a.queue <- c:
	default:
		log.Printf("cue %s dropped: queue full", c)
	}
}

// Close stops accepting cues, waits for queued ones to finish and returns.
// It is safe to call more than once.
func (a *Async) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	<-a.done
}

func (a *Async) run() {
	defer close(a.done)
	for c := range a.queue {
		a.play(c)
	}
}

func (a *Async) play(c Cue) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("cue %s: player panic: %v", c, r)
		}
	}()
	if a.player == nil {
		return
	}
	if err := a.player.Play(c); err != nil {
		log.Printf("cue %s: %v", c, err)
	}
}
