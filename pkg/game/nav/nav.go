// Package nav implements the two-axis selection state machine of the bar:
// a horizontal row of categories and a vertical column of items.
package nav

import (
	"sync"

	"github.com/zyedidia/generic"

	"crossbar/pkg/engine/input"
	"crossbar/pkg/game/cue"
)

// Axis is the navigation dimension that currently has focus.
type Axis int

const (
	AxisItemColumn Axis = iota
	AxisCategoryRow
)

func (a Axis) String() string {
	if a == AxisCategoryRow {
		return "CategoryRow"
	}
	return "ItemColumn"
}

// State is the current selection.
type State struct {
	Category int
	Item     int
	Axis     Axis
}

// Bounds is the read side of the menu model the navigator needs. It is
// consulted on every action, never cached.
type Bounds interface {
	Len() int
	ItemCount(category int) int
}

// Navigator owns the selection. All mutations go through one mutex, so
// frame polls, repeat timers and key events may call Apply from any
// goroutine. Cues are dispatched while the lock is held, which keeps them in
// transition order; dispatchers must not call back into the navigator.
type Navigator struct {
	mu       sync.Mutex
	model    Bounds
	cues     cue.Dispatcher
	state    State
	disabled bool
}

// New creates a navigator focused on item 0 of initialCategory, with the item
// column active. An out-of-range category is clamped.
func New(model Bounds, cues cue.Dispatcher, initialCategory int) *Navigator {
	n := &Navigator{
		model: model,
		cues:  cues,
		state: State{Category: initialCategory, Axis: AxisItemColumn},
	}
	n.clampLocked()
	return n
}

// State returns the selection, re-validated against the current model.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clampLocked()
	return n.state
}

// SetEnabled gates action processing. While disabled every action is a no-op.
func (n *Navigator) SetEnabled(enabled bool) {
	n.mu.Lock()
	n.disabled = !enabled
	n.mu.Unlock()
}

// Enabled reports whether actions are processed.
func (n *Navigator) Enabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return !n.disabled
}

// Reclamp pulls the indices back into range after the model changed. Growth
// never moves focus.
func (n *Navigator) Reclamp() {
	n.mu.Lock()
	n.clampLocked()
	n.mu.Unlock()
}

// Apply performs one action and reports whether the state changed or a cue
// was dispatched.
func (n *Navigator) Apply(a input.Action) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.disabled {
		return false
	}
	n.clampLocked()

	switch a {
	case input.ActionLeft, input.ActionShoulderLeft:
		return n.moveCategoryLocked(-1)
	case input.ActionRight, input.ActionShoulderRight:
		return n.moveCategoryLocked(+1)
	case input.ActionUp:
		return n.upLocked()
	case input.ActionDown:
		return n.downLocked()
	case input.ActionConfirm:
		// Dispatched even while the category row has focus.
		n.dispatch(cue.Select)
		return true
	case input.ActionCancel:
		if n.state.Axis != AxisItemColumn {
			return false
		}
		n.state.Axis = AxisCategoryRow
		n.state.Item = 0
		n.dispatch(cue.Back)
		return true
	case input.ActionSquare, input.ActionTriangle,
		input.ActionTriggerLeft, input.ActionTriggerRight,
		input.ActionStart, input.ActionSelect, input.ActionNone:
		return false
	}
	return false
}

func (n *Navigator) moveCategoryLocked(delta int) bool {
	next := n.state.Category + delta
	if next < 0 || next >= n.model.Len() {
		return false
	}
	n.state = State{Category: next, Item: 0, Axis: AxisItemColumn}
	n.dispatch(cue.Category)
	return true
}

func (n *Navigator) upLocked() bool {
	if n.state.Axis != AxisItemColumn {
		return false
	}
	if n.state.Item > 0 {
		n.state.Item--
		n.dispatch(cue.Navigate)
		return true
	}
	n.state.Axis = AxisCategoryRow
	n.dispatch(cue.Back)
	return true
}

func (n *Navigator) downLocked() bool {
	count := n.model.ItemCount(n.state.Category)
	switch {
	case n.state.Axis == AxisCategoryRow && count > 0:
		n.state.Axis = AxisItemColumn
		n.state.Item = 0
	case n.state.Axis == AxisItemColumn && n.state.Item < count-1:
		n.state.Item++
	default:
		return false
	}
	n.dispatch(cue.Navigate)
	return true
}

func (n *Navigator) clampLocked() {
	last := n.model.Len() - 1
	n.state.Category = generic.Clamp(n.state.Category, 0, generic.Max(last, 0))
	lastItem := n.model.ItemCount(n.state.Category) - 1
	n.state.Item = generic.Clamp(n.state.Item, 0, generic.Max(lastItem, 0))
}

func (n *Navigator) dispatch(c cue.Cue) {
	if n.cues != nil {
		n.cues.Dispatch(c)
	}
}
