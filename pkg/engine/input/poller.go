package input

// DefaultDeadzone is the stick deflection below which an axis reads as centered.
const DefaultDeadzone = 0.5

// MaxPadSlots is the number of device slots scanned, in priority order.
const MaxPadSlots = 4

// Standard gamepad layout button indices.
const (
	ButtonCross         = 0
	ButtonCircle        = 1
	ButtonSquare        = 2
	ButtonTriangle      = 3
	ButtonL1            = 4
	ButtonR1            = 5
	ButtonL2            = 6
	ButtonR2            = 7
	ButtonSelect        = 8
	ButtonStart         = 9
	ButtonDPadUp        = 12
	ButtonDPadDown      = 13
	ButtonDPadLeft      = 14
	ButtonDPadRight     = 15
	StandardButtonCount = 17
)

// Standard gamepad layout axis indices (left stick).
const (
	AxisLeftX = 0
	AxisLeftY = 1
)

// Snapshot holds the pressed state of every action for one polling tick.
type Snapshot [actionCount]bool

// Pressed reports whether a is held in this snapshot.
func (s Snapshot) Pressed(a Action) bool {
	if !a.Valid() {
		return false
	}
	return s[a]
}

// Set records the state of a. Invalid actions are ignored.
func (s *Snapshot) Set(a Action, pressed bool) {
	if !a.Valid() {
		return
	}
	s[a] = pressed
}

// Any reports whether at least one action is held.
func (s Snapshot) Any() bool {
	for _, v := range s {
		if v {
			return true
		}
	}
	return false
}

// PadState is one sampled device slot, in standard gamepad layout order.
type PadState struct {
	Name    string
	Axes    []float64
	Buttons []bool
}

// Button returns the state of button i; missing buttons read as released.
func (p *PadState) Button(i int) bool {
	return i >= 0 && i < len(p.Buttons) && p.Buttons[i]
}

// Axis returns the value of axis i; missing axes read as centered.
func (p *PadState) Axis(i int) float64 {
	if i < 0 || i >= len(p.Axes) {
		return 0
	}
	return p.Axes[i]
}

// PadSource samples connected devices. Slots are returned in priority order
// and absent slots are nil.
type PadSource interface {
	Pads() []*PadState
}

// Poller turns raw device state into a Snapshot once per frame.
type Poller struct {
	source   PadSource
	deadzone float64
}

// NewPoller creates a poller over source. A non-positive deadzone falls back
// to DefaultDeadzone.
func NewPoller(source PadSource, deadzone float64) *Poller {
	if deadzone <= 0 {
		deadzone = DefaultDeadzone
	}
	return &Poller{source: source, deadzone: deadzone}
}

// Poll samples the first present device. When no device is present it
// returns an all-false snapshot and a nil pad; that is not an error.
func (p *Poller) Poll() (Snapshot, *PadState) {
	pad := p.firstPad()
	if pad == nil {
		return Snapshot{}, nil
	}
	return p.snapshot(pad), pad
}

func (p *Poller) firstPad() *PadState {
	if p.source == nil {
		return nil
	}
	pads := p.source.Pads()
	for i := 0; i < len(pads) && i < MaxPadSlots; i++ {
		if pads[i] != nil {
			return pads[i]
		}
	}
	return nil
}

func (p *Poller) snapshot(pad *PadState) Snapshot {
	// Axes: 0 = X (left = -1, right = +1), 1 = Y (up = -1, down = +1)
	x := pad.Axis(AxisLeftX)
	y := pad.Axis(AxisLeftY)
	dz := p.deadzone

	var s Snapshot
	s.Set(ActionUp, pad.Button(ButtonDPadUp) || y < -dz)
	s.Set(ActionDown, pad.Button(ButtonDPadDown) || y > dz)
	s.Set(ActionLeft, pad.Button(ButtonDPadLeft) || x < -dz)
	s.Set(ActionRight, pad.Button(ButtonDPadRight) || x > dz)
	s.Set(ActionConfirm, pad.Button(ButtonCross))
	s.Set(ActionCancel, pad.Button(ButtonCircle))
	s.Set(ActionSquare, pad.Button(ButtonSquare))
	s.Set(ActionTriangle, pad.Button(ButtonTriangle))
	s.Set(ActionShoulderLeft, pad.Button(ButtonL1))
	s.Set(ActionShoulderRight, pad.Button(ButtonR1))
	s.Set(ActionTriggerLeft, pad.Button(ButtonL2))
	s.Set(ActionTriggerRight, pad.Button(ButtonR2))
	s.Set(ActionSelect, pad.Button(ButtonSelect))
	s.Set(ActionStart, pad.Button(ButtonStart))
	return s
}
