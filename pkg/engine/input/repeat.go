package input

import (
	"sync"
	"time"

	"crossbar/pkg/engine/clock"
)

const (
	DefaultRepeatDelay = 400 * time.Millisecond // Initial delay before the first repeat
	DefaultRepeatRate  = 150 * time.Millisecond // Interval between repeats
)

// repeatTimers is the timer pair for one held direction. gen is bumped every
// time the pair is re-armed or cancelled, so a callback that raced its own
// cancellation can tell it is stale.
type repeatTimers struct {
	delay  clock.Timer
	repeat clock.Timer
	gen    uint64
}

// Repeater converts level-triggered snapshots into edge-triggered actions.
// Directions fire on press, then auto-repeat after an initial delay until
// released; buttons fire once per press.
//
// The handler runs with the repeater's lock held, from either the goroutine
// calling Update or a timer goroutine, never both at once.
type Repeater struct {
	mu      sync.Mutex
	clk     clock.Clock
	delay   time.Duration
	rate    time.Duration
	handler func(Action)

	prev   Snapshot
	timers map[Action]*repeatTimers
	closed bool
}

// NewRepeater creates a repeater. Non-positive durations fall back to the
// defaults; a nil clock uses the wall clock.
func NewRepeater(clk clock.Clock, delay, rate time.Duration, handler func(Action)) *Repeater {
	if clk == nil {
		clk = clock.Real{}
	}
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	if rate <= 0 {
		rate = DefaultRepeatRate
	}
	r := &Repeater{
		clk:     clk,
		delay:   delay,
		rate:    rate,
		handler: handler,
		timers:  make(map[Action]*repeatTimers, len(Directions)),
	}
	for _, dir := range Directions {
		r.timers[dir] = &repeatTimers{}
	}
	return r
}

// Update compares s with the previous snapshot and fires press edges.
func (r *Repeater) Update(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	for _, dir := range Directions {
		pressed, was := s.Pressed(dir), r.prev.Pressed(dir)
		switch {
		case pressed && !was:
			r.fire(dir)
			r.armLocked(dir)
		case !pressed && was:
			r.cancelLocked(dir)
		}
	}

	for _, btn := range Buttons {
		if s.Pressed(btn) && !r.prev.Pressed(btn) {
			r.fire(btn)
		}
	}

	r.prev = s
}

// Close cancels every outstanding timer. No handler call happens after Close
// returns. Calling Close again is a no-op.
func (r *Repeater) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, dir := range Directions {
		r.cancelLocked(dir)
	}
}

// Release cancels the repeat timers of every held direction without
// forgetting the held state, so no new press edge fires until the direction
// is let go and pressed again.
func (r *Repeater) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dir := range Directions {
		r.cancelLocked(dir)
	}
}

// Holding reports whether dir currently has a delay or repeat timer armed.
func (r *Repeater) Holding(dir Action) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.timers[dir]
	return ok && (t.delay != nil || t.repeat != nil)
}

func (r *Repeater) fire(a Action) {
	if r.handler != nil {
		r.handler(a)
	}
}

func (r *Repeater) armLocked(dir Action) {
	r.cancelLocked(dir)
	t := r.timers[dir]
	gen := t.gen
	t.delay = r.clk.AfterFunc(r.delay, func() { r.onDelay(dir, gen) })
}

// cancelLocked stops both timers of dir. Stopping an idle pair is a no-op.
func (r *Repeater) cancelLocked(dir Action) {
	t := r.timers[dir]
	if t.delay != nil {
		t.delay.Stop()
		t.delay = nil
	}
	if t.repeat != nil {
		t.repeat.Stop()
		t.repeat = nil
	}
	t.gen++
}

func (r *Repeater) onDelay(dir Action, gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.timers[dir]
	if r.closed || t.gen != gen {
		return
	}
	t.delay = nil
	t.repeat = r.clk.AfterFunc(r.rate, func() { r.onRepeat(dir, gen) })
}

func (r *Repeater) onRepeat(dir Action, gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.timers[dir]
	if r.closed || t.gen != gen {
		return
	}
	r.fire(dir)
	t.repeat = r.clk.AfterFunc(r.rate, func() { r.onRepeat(dir, gen) })
}
