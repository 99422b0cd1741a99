package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossbar/pkg/engine/clock"
	"crossbar/pkg/engine/input"
	"crossbar/pkg/game/cue"
	"crossbar/pkg/game/menu"
	"crossbar/pkg/game/nav"
)

// pads is a single-slot device whose buttons tests flip between frames.
type pads struct {
	pad *input.PadState
}

func (p *pads) Pads() []*input.PadState {
	if p.pad == nil {
		return nil
	}
	return []*input.PadState{p.pad}
}

func (p *pads) connect() {
	p.pad = &input.PadState{Name: "Test Pad", Buttons: make([]bool, input.StandardButtonCount)}
}

func (p *pads) press(button int, down bool) { p.pad.Buttons[button] = down }

type fixture struct {
	s    *Session
	clk  *clock.Manual
	pads *pads
	rec  *cue.Recorder
}

func newFixture(t *testing.T, gated bool) *fixture {
	t.Helper()
	m, err := menu.New([]menu.Category{
		{ID: "settings", Items: []menu.Item{{ID: "s1"}, {ID: "s2"}}},
		{ID: menu.GameCategoryID, Dynamic: true, Items: []menu.Item{{ID: "A"}, {ID: "B"}, {ID: "C"}}},
		{ID: "friends", Items: []menu.Item{{ID: "f1"}}},
	})
	require.NoError(t, err)

	f := &fixture{
		clk:  clock.NewManual(time.Unix(0, 0)),
		pads: &pads{},
		rec:  &cue.Recorder{},
	}
	f.s = New(m, Options{
		Clock:           f.clk,
		Pads:            f.pads,
		InitialCategory: m.IndexOf(menu.GameCategoryID),
		Cues:            f.rec,
		Gated:           gated,
	})
	t.Cleanup(f.s.Close)
	return f
}

func TestMount_StartupCueOnce(t *testing.T) {
	f := newFixture(t, false)
	f.s.Mount()
	f.s.Mount()

	f.clk.Advance(499 * time.Millisecond)
	assert.Empty(t, f.rec.Cues())
	f.clk.Advance(time.Millisecond)
	assert.Equal(t, []cue.Cue{cue.Startup}, f.rec.Cues())

	f.clk.Advance(10 * time.Second)
	assert.Len(t, f.rec.Cues(), 1)
}

func TestClose_CancelsStartupCue(t *testing.T) {
	f := newFixture(t, false)
	f.s.Mount()
	f.s.Close()
	f.clk.Advance(time.Second)
	assert.Empty(t, f.rec.Cues())
	assert.Zero(t, f.clk.Pending())
}

func TestFrame_HeldDirectionRepeats(t *testing.T) {
	f := newFixture(t, false)
	f.pads.connect()

	f.pads.press(input.ButtonDPadDown, true)
	f.s.Frame()
	assert.Equal(t, 1, f.s.State().Item)

	f.clk.Advance(input.DefaultRepeatDelay + input.DefaultRepeatRate)
	assert.Equal(t, 2, f.s.State().Item)

	// The column ends at C; further repeats are no-ops.
	f.clk.Advance(5 * input.DefaultRepeatRate)
	assert.Equal(t, 2, f.s.State().Item)
	assert.Equal(t, []cue.Cue{cue.Navigate, cue.Navigate}, f.rec.Cues())

	f.pads.press(input.ButtonDPadDown, false)
	f.s.Frame()
	assert.Zero(t, f.clk.Pending())
}

func TestFrame_DisconnectReleasesEverything(t *testing.T) {
	f := newFixture(t, false)
	f.pads.connect()
	f.pads.press(input.ButtonDPadRight, true)
	f.s.Frame()
	require.NotNil(t, f.s.Pad())
	assert.Equal(t, "Test Pad", f.s.Pad().Name)

	f.pads.pad = nil
	f.s.Frame()
	assert.Nil(t, f.s.Pad())
	assert.Zero(t, f.clk.Pending())
	assert.Equal(t, 2, f.s.State().Category)
}

func TestFrame_NoDevice(t *testing.T) {
	f := newFixture(t, false)
	before := f.s.State()
	f.s.Frame()
	assert.Equal(t, before, f.s.State())
	assert.Empty(t, f.rec.Cues())
}

func TestHandleEvent_OneActionPerKeyDown(t *testing.T) {
	f := newFixture(t, false)

	assert.True(t, f.s.HandleEvent(input.RawInput{Device: input.DeviceKeyboard, Code: "arrow_down"}))
	f.clk.Advance(5 * time.Second)
	assert.Equal(t, 1, f.s.State().Item)
	assert.Equal(t, []cue.Cue{cue.Navigate}, f.rec.Cues())
	assert.Zero(t, f.clk.Pending(), "keys never arm repeat timers")
}

func TestHandleEvent_IndependentOfHeldPad(t *testing.T) {
	f := newFixture(t, false)
	f.pads.connect()

	f.pads.press(input.ButtonDPadDown, true)
	f.s.Frame()
	require.Equal(t, 1, f.s.State().Item)

	f.s.HandleEvent(input.RawInput{Device: input.DeviceKeyboard, Code: "arrow_down"})
	f.s.Frame()
	assert.Equal(t, 2, f.s.State().Item)
	assert.Equal(t, []cue.Cue{cue.Navigate, cue.Navigate}, f.rec.Cues())
}

func TestHandleKey(t *testing.T) {
	f := newFixture(t, false)

	assert.True(t, f.s.HandleKey("arrow_left"))
	assert.True(t, f.s.HandleKey("Enter"))
	assert.False(t, f.s.HandleKey("f12"))

	assert.Equal(t, nav.State{Category: 0, Item: 0, Axis: nav.AxisItemColumn}, f.s.State())
	assert.Equal(t, []cue.Cue{cue.Category, cue.Select}, f.rec.Cues())
}

func TestHandleEvent_KeyboardDevice(t *testing.T) {
	f := newFixture(t, false)

	assert.True(t, f.s.HandleEvent(input.RawInput{Device: input.DeviceKeyboard, Code: "arrow_down"}))
	assert.False(t, f.s.HandleEvent(input.RawInput{Device: input.DeviceKeyboard, Code: ""}))
	assert.Equal(t, 1, f.s.State().Item)
}

func TestGate_FirstKeyOnlyUnlocks(t *testing.T) {
	f := newFixture(t, true)
	require.False(t, f.s.Enabled())

	assert.True(t, f.s.HandleKey("arrow_down"))
	assert.True(t, f.s.Enabled())
	assert.Equal(t, 0, f.s.State().Item)
	assert.Empty(t, f.rec.Cues())

	f.s.HandleKey("arrow_down")
	assert.Equal(t, 1, f.s.State().Item)
}

func TestGate_HeldDirectionOnlyUnlocks(t *testing.T) {
	f := newFixture(t, true)
	f.pads.connect()

	f.pads.press(input.ButtonDPadDown, true)
	f.s.Frame()
	require.True(t, f.s.Enabled())

	f.clk.Advance(input.DefaultRepeatDelay + 3*input.DefaultRepeatRate)
	f.s.Frame()
	assert.Equal(t, nav.State{Category: 1, Item: 0, Axis: nav.AxisItemColumn}, f.s.State())
	assert.Empty(t, f.rec.Cues())
	assert.Zero(t, f.clk.Pending())

	f.pads.press(input.ButtonDPadDown, false)
	f.s.Frame()
	f.pads.press(input.ButtonDPadDown, true)
	f.s.Frame()
	assert.Equal(t, 1, f.s.State().Item)
}

func TestGate_FirstButtonOnlyUnlocks(t *testing.T) {
	f := newFixture(t, true)
	f.pads.connect()

	f.pads.press(input.ButtonCross, true)
	f.s.Frame()
	assert.True(t, f.s.Enabled())
	assert.Empty(t, f.rec.Cues())

	f.pads.press(input.ButtonCross, false)
	f.s.Frame()
	f.pads.press(input.ButtonCross, true)
	f.s.Frame()
	assert.Equal(t, []cue.Cue{cue.Select}, f.rec.Cues())
}

func TestSetEnabled(t *testing.T) {
	f := newFixture(t, false)
	f.s.SetEnabled(false)
	assert.True(t, f.s.HandleKey("arrow_down"))
	assert.Equal(t, 0, f.s.State().Item)

	f.s.SetEnabled(true)
	f.s.HandleKey("arrow_down")
	assert.Equal(t, 1, f.s.State().Item)
}

func TestLoadDynamic_AppendsWithoutMovingFocus(t *testing.T) {
	f := newFixture(t, false)
	f.s.HandleKey("arrow_down")
	f.s.HandleKey("arrow_down")
	require.Equal(t, 2, f.s.State().Item)

	release := make(chan struct{})
	done := f.s.LoadDynamic(func(ctx context.Context) ([]menu.Item, error) {
		<-release
		return []menu.Item{{ID: "D"}, {ID: "E"}}, nil
	})
	assert.Equal(t, menu.FetchPending, f.s.Model().FetchStatus())

	// Input keeps working against the static list while the fetch runs.
	f.s.HandleKey("arrow_down")
	assert.Equal(t, 2, f.s.State().Item)

	close(release)
	<-done
	assert.Equal(t, menu.FetchDone, f.s.Model().FetchStatus())
	assert.Equal(t, 5, f.s.Model().ItemCount(1))

	st := f.s.State()
	it, ok := f.s.Model().Item(st.Category, st.Item)
	require.True(t, ok)
	assert.Equal(t, "C", it.ID)

	f.s.HandleKey("arrow_down")
	assert.Equal(t, 3, f.s.State().Item)
}

func TestLoadDynamic_FailureKeepsStatics(t *testing.T) {
	f := newFixture(t, false)
	<-f.s.LoadDynamic(func(context.Context) ([]menu.Item, error) {
		return nil, errors.New("network down")
	})
	assert.Equal(t, menu.FetchFailed, f.s.Model().FetchStatus())
	assert.Equal(t, 3, f.s.Model().ItemCount(1))
}

func TestClose_CancelsFetch(t *testing.T) {
	f := newFixture(t, false)
	started := make(chan struct{})
	done := f.s.LoadDynamic(func(ctx context.Context) ([]menu.Item, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	<-started
	f.s.Close()

	select {
	case <-done:
	default:
		t.Fatal("Close returned before the fetch finished")
	}
	assert.Equal(t, menu.FetchFailed, f.s.Model().FetchStatus())
}

type closingRecorder struct {
	cue.Recorder
	closed int
}

func (c *closingRecorder) Close() { c.closed++ }

func TestClose_Idempotent(t *testing.T) {
	m, err := menu.New(menu.DefaultCategories())
	require.NoError(t, err)
	clk := clock.NewManual(time.Unix(0, 0))
	cues := &closingRecorder{}
	s := New(m, Options{Clock: clk, Cues: cues, Pads: &pads{}})

	s.Mount()
	s.Close()
	s.Close()

	assert.Equal(t, 1, cues.closed)
	assert.False(t, s.Enabled())
	assert.False(t, s.HandleKey("arrow_left"))
	s.Frame()
	<-s.LoadDynamic(func(context.Context) ([]menu.Item, error) { return nil, nil })
	assert.Empty(t, cues.Cues())
}
