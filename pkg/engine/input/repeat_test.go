package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossbar/pkg/engine/clock"
)

type recorder struct {
	fired []Action
}

func (r *recorder) handle(a Action) { r.fired = append(r.fired, a) }

func (r *recorder) count(a Action) int {
	n := 0
	for _, f := range r.fired {
		if f == a {
			n++
		}
	}
	return n
}

func held(actions ...Action) Snapshot {
	var s Snapshot
	for _, a := range actions {
		s.Set(a, true)
	}
	return s
}

func newTestRepeater() (*Repeater, *clock.Manual, *recorder) {
	clk := clock.NewManual(time.Unix(0, 0))
	rec := &recorder{}
	return NewRepeater(clk, DefaultRepeatDelay, DefaultRepeatRate, rec.handle), clk, rec
}

func TestRepeater_HoldDownTiming(t *testing.T) {
	r, clk, rec := newTestRepeater()

	r.Update(held(ActionDown))
	assert.Equal(t, 1, rec.count(ActionDown), "press fires immediately")

	clk.Advance(399 * time.Millisecond)
	assert.Equal(t, 1, rec.count(ActionDown), "no repeat before the initial delay")

	// Delay elapses at 400; the first repeat lands one rate later.
	clk.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, rec.count(ActionDown))
	clk.Advance(149 * time.Millisecond)
	assert.Equal(t, 1, rec.count(ActionDown))
	clk.Advance(1 * time.Millisecond)
	assert.Equal(t, 2, rec.count(ActionDown), "first repeat at 550ms")

	clk.Advance(150 * time.Millisecond)
	assert.Equal(t, 3, rec.count(ActionDown))
	clk.Advance(300 * time.Millisecond)
	assert.Equal(t, 5, rec.count(ActionDown))

	// Still held across frames: no extra edges.
	r.Update(held(ActionDown))
	assert.Equal(t, 5, rec.count(ActionDown))

	r.Update(Snapshot{})
	clk.Advance(5 * time.Second)
	assert.Equal(t, 5, rec.count(ActionDown), "release stops repeating")
	assert.Zero(t, clk.Pending())
}

func TestRepeater_ReleaseBeforeDelayFiresOnce(t *testing.T) {
	r, clk, rec := newTestRepeater()

	r.Update(held(ActionDown))
	clk.Advance(200 * time.Millisecond)
	r.Update(Snapshot{})
	clk.Advance(2 * time.Second)

	assert.Equal(t, []Action{ActionDown}, rec.fired)
	assert.False(t, r.Holding(ActionDown))
}

func TestRepeater_RepressRestartsDelay(t *testing.T) {
	r, clk, rec := newTestRepeater()

	r.Update(held(ActionUp))
	clk.Advance(300 * time.Millisecond)
	r.Update(Snapshot{})
	r.Update(held(ActionUp))
	clk.Advance(300 * time.Millisecond)
	assert.Equal(t, 2, rec.count(ActionUp), "old delay timer must not carry over")

	clk.Advance(250 * time.Millisecond)
	assert.Equal(t, 3, rec.count(ActionUp))
}

func TestRepeater_DirectionsIndependent(t *testing.T) {
	r, clk, rec := newTestRepeater()

	r.Update(held(ActionLeft))
	clk.Advance(100 * time.Millisecond)
	r.Update(held(ActionLeft, ActionDown))
	clk.Advance(450 * time.Millisecond) // Left at 550, Down at 100+550=650 not yet

	assert.Equal(t, 2, rec.count(ActionLeft))
	assert.Equal(t, 1, rec.count(ActionDown))

	r.Update(held(ActionDown))
	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, rec.count(ActionLeft), "released direction stops")
	assert.Equal(t, 2, rec.count(ActionDown), "held direction keeps its own cadence")
	assert.True(t, r.Holding(ActionDown))
	assert.False(t, r.Holding(ActionLeft))
}

func TestRepeater_ButtonsFireOncePerPress(t *testing.T) {
	r, clk, rec := newTestRepeater()

	r.Update(held(ActionConfirm))
	r.Update(held(ActionConfirm))
	clk.Advance(2 * time.Second)
	r.Update(Snapshot{})
	assert.Equal(t, 1, rec.count(ActionConfirm))

	r.Update(held(ActionConfirm, ActionShoulderRight))
	assert.Equal(t, 2, rec.count(ActionConfirm))
	assert.Equal(t, 1, rec.count(ActionShoulderRight))
	assert.Zero(t, clk.Pending(), "buttons never arm timers")
}

func TestRepeater_ReleaseKeepsHeldState(t *testing.T) {
	r, clk, rec := newTestRepeater()

	r.Update(held(ActionDown))
	r.Release()
	assert.False(t, r.Holding(ActionDown))
	assert.Zero(t, clk.Pending())

	clk.Advance(2 * time.Second)
	r.Update(held(ActionDown))
	assert.Equal(t, 1, rec.count(ActionDown), "still held, no new edge")

	r.Update(Snapshot{})
	r.Update(held(ActionDown))
	assert.Equal(t, 2, rec.count(ActionDown))
	assert.True(t, r.Holding(ActionDown))
}

func TestRepeater_CloseIsIdempotent(t *testing.T) {
	r, clk, rec := newTestRepeater()

	r.Update(held(ActionRight, ActionDown))
	require.Len(t, rec.fired, 2)

	r.Close()
	r.Close()
	clk.Advance(10 * time.Second)
	r.Update(Snapshot{})
	r.Update(held(ActionUp))

	assert.Len(t, rec.fired, 2, "nothing fires after Close")
	assert.Zero(t, clk.Pending())
}

func TestRepeater_CloseIdleRepeater(t *testing.T) {
	r, _, rec := newTestRepeater()
	assert.NotPanics(t, func() {
		r.Close()
		r.Close()
	})
	assert.Empty(t, rec.fired)
}

func TestRepeater_Defaults(t *testing.T) {
	r := NewRepeater(nil, 0, -1, nil)
	assert.Equal(t, DefaultRepeatDelay, r.delay)
	assert.Equal(t, DefaultRepeatRate, r.rate)
	assert.NotPanics(t, func() { r.Update(held(ActionUp)) })
	r.Close()
}
