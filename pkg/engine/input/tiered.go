package input

import (
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a logical menu action. The set is closed: every consumer
// switches over all of the values below.
type Action int

const (
	ActionNone Action = iota

	// Directions (repeat while held on a gamepad)
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Buttons (fire once per press)
	ActionConfirm // Cross / A, Enter
	ActionCancel  // Circle / B, Escape, Backspace
	ActionSquare
	ActionTriangle
	ActionShoulderLeft  // L1
	ActionShoulderRight // R1
	ActionTriggerLeft   // L2
	ActionTriggerRight  // R2
	ActionSelect
	ActionStart

	actionCount
)

// Directions lists the four directional actions in a fixed order.
var Directions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// Buttons lists the non-directional actions that have press callbacks.
var Buttons = [...]Action{
	ActionConfirm,
	ActionCancel,
	ActionTriangle,
	ActionSquare,
	ActionShoulderLeft,
	ActionShoulderRight,
	ActionStart,
	ActionSelect,
}

// IsDirection reports whether a is one of the four directions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// Valid reports whether a is a real action (not ActionNone or out of range).
func (a Action) Valid() bool {
	return a > ActionNone && a < actionCount
}

// String returns a human-friendly name for an action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionSquare:
		return "Square"
	case ActionTriangle:
		return "Triangle"
	case ActionShoulderLeft:
		return "ShoulderLeft"
	case ActionShoulderRight:
		return "ShoulderRight"
	case ActionTriggerLeft:
		return "TriggerLeft"
	case ActionTriggerRight:
		return "TriggerRight"
	case ActionSelect:
		return "Select"
	case ActionStart:
		return "Start"
	default:
		return "None"
	}
}

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action
	Device Device
}

// RawInput is an event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "enter", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a raw event after deduplication. Keyboard events arrive
// once per key-down from the front-end, so this is a thin wrapper; gamepad
// state goes through the Repeater instead.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// MapToIntent applies the binding table to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	return Intent{Action: MapKey(ev.Code), Device: ev.Device}
}
