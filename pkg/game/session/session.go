// Package session wires a mounted menu together: device polling, edge and
// repeat detection, the navigator, the start-up cue and the one-shot fetch
// that extends the dynamic category.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"crossbar/pkg/engine/clock"
	"crossbar/pkg/engine/input"
	"crossbar/pkg/game/cue"
	"crossbar/pkg/game/menu"
	"crossbar/pkg/game/nav"
)

// DefaultStartupDelay is how long after Mount the start-up cue plays.
const DefaultStartupDelay = 500 * time.Millisecond

// Options configures a Session. Zero values select defaults.
type Options struct {
	Clock           clock.Clock
	Pads            input.PadSource
	Deadzone        float64
	RepeatDelay     time.Duration
	RepeatRate      time.Duration
	StartupDelay    time.Duration
	InitialCategory int
	Cues            cue.Dispatcher

	// Gated starts the session disabled. The first key or button press opens
	// the gate and is otherwise consumed.
	Gated bool
}

// FetchFunc loads the entries appended to the dynamic category.
type FetchFunc func(ctx context.Context) ([]menu.Item, error)

// Session is one mounted menu.
type Session struct {
	model    *menu.Model
	nav      *nav.Navigator
	poller   *input.Poller
	repeater *input.Repeater
	clk      clock.Clock
	cues     cue.Dispatcher

	startupDelay time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	fetch  sync.WaitGroup

	mu      sync.Mutex
	gated   bool
	mounted bool
	closed  bool
	startup clock.Timer
	pad     *input.PadState
}

// New builds a session over model. Nothing runs until Mount.
func New(model *menu.Model, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.StartupDelay <= 0 {
		opts.StartupDelay = DefaultStartupDelay
	}
	if opts.Cues == nil {
		opts.Cues = cue.DispatcherFunc(func(cue.Cue) {})
	}

	s := &Session{
		model:        model,
		clk:          opts.Clock,
		cues:         opts.Cues,
		startupDelay: opts.StartupDelay,
		gated:        opts.Gated,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.nav = nav.New(model, opts.Cues, opts.InitialCategory)
	s.nav.SetEnabled(!opts.Gated)
	s.repeater = input.NewRepeater(opts.Clock, opts.RepeatDelay, opts.RepeatRate, func(a input.Action) {
		s.nav.Apply(a)
	})
	if opts.Pads != nil {
		s.poller = input.NewPoller(opts.Pads, opts.Deadzone)
	}
	return s
}

// Model returns the menu model.
func (s *Session) Model() *menu.Model { return s.model }

// State returns the current selection.
func (s *Session) State() nav.State { return s.nav.State() }

// Enabled reports whether input is being processed.
func (s *Session) Enabled() bool { return s.nav.Enabled() }

// SetEnabled gates all navigation. Enabling also opens the boot gate.
func (s *Session) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if enabled {
		s.gated = false
	}
	s.nav.SetEnabled(enabled)
}

// Pad returns the device used on the last frame, or nil.
func (s *Session) Pad() *input.PadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pad
}

// Mount schedules the start-up cue. Calling it again has no effect.
func (s *Session) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mounted || s.closed {
		return
	}
	s.mounted = true
	s.startup = s.clk.AfterFunc(s.startupDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.cues.Dispatch(cue.Startup)
		}
	})
	log.Printf("menu mounted with %d categories", s.model.Len())
}

// Frame polls the device once. Front-ends call it every tick.
func (s *Session) Frame() {
	var (
		snap input.Snapshot
		pad  *input.PadState
	)
	if s.poller != nil {
		snap, pad = s.poller.Poll()
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if (pad == nil) != (s.pad == nil) {
		if pad != nil {
			log.Printf("controller connected: %s", pad.Name)
		} else {
			log.Printf("controller disconnected")
		}
	}
	s.pad = pad
	s.mu.Unlock()

	// A press that opens the gate reaches the navigator while it is still
	// disabled, so it only unlocks. Holding it must not start repeating.
	s.repeater.Update(snap)
	if snap.Any() && s.openGate() {
		s.repeater.Release()
	}
}

// HandleKey applies one terminal key event, identified by its key code (see
// input.MapKey). It reports whether the code mapped to an action.
func (s *Session) HandleKey(code string) bool {
	return s.HandleEvent(input.RawInput{Device: input.DeviceTerminal, Code: code})
}

// HandleEvent applies one discrete device event. Events bypass the repeater;
// the device is expected to deliver its own key repeat.
func (s *Session) HandleEvent(ev input.RawInput) bool {
	intent := input.MapToIntent(input.NewDebouncedInput(ev))
	a := intent.Action
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return false
	}
	if s.openGate() {
		return a != input.ActionNone
	}
	if a == input.ActionNone {
		return false
	}
	s.nav.Apply(a)
	return true
}

// Apply feeds a logical action directly to the navigator.
func (s *Session) Apply(a input.Action) bool {
	return s.nav.Apply(a)
}

// openGate enables the session if it is still gated and reports whether it
// did so.
func (s *Session) openGate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gated || s.closed {
		return false
	}
	s.gated = false
	s.nav.SetEnabled(true)
	log.Printf("menu enabled")
	return true
}

// LoadDynamic runs fetch in the background and appends its result to the
// dynamic category. A failure is logged and leaves the static entries. The
// returned channel closes once the result has been merged.
func (s *Session) LoadDynamic(fetch FetchFunc) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(done)
		return done
	}
	s.fetch.Add(1)
	s.mu.Unlock()

	s.model.SetFetchStatus(menu.FetchPending)
	go func() {
		defer s.fetch.Done()
		defer close(done)

		items, err := fetch(s.ctx)
		if err != nil {
			log.Printf("dynamic category fetch failed: %v", err)
			s.model.SetFetchStatus(menu.FetchFailed)
			return
		}
		added, err := s.model.AppendDynamic(items)
		if err != nil {
			log.Printf("dynamic category not extended: %v", err)
			s.model.SetFetchStatus(menu.FetchFailed)
			return
		}
		s.nav.Reclamp()
		s.model.SetFetchStatus(menu.FetchDone)
		log.Printf("dynamic category extended with %d items", added)
	}()
	return done
}

// Close tears the session down: it disables input, cancels every repeat
// timer and the pending start-up cue, cancels and waits for an outstanding
// fetch, and stops the cue dispatcher if it has a Close method. No callback
// fires after Close returns. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.startup != nil {
		s.startup.Stop()
	}
	s.mu.Unlock()

	s.nav.SetEnabled(false)
	s.repeater.Close()
	s.cancel()
	s.fetch.Wait()

	if c, ok := s.cues.(interface{ Close() }); ok {
		c.Close()
	}
}
