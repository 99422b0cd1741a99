package input

import (
	"sort"
	"strings"
)

// QuitCode is reported by key readers for Ctrl+C. It is not bound to an
// action; front-ends treat it as a request to tear the menu down.
const QuitCode = "ctrl+c"

// bindings maps key codes to actions. Multiple codes may point to the same
// Action; each key-down event resolves to exactly one.
var bindings = map[string]Action{
	// Arrows
	"arrow_up":    ActionUp,
	"arrow_down":  ActionDown,
	"arrow_left":  ActionLeft,
	"arrow_right": ActionRight,

	// Vim
	"k": ActionUp,
	"j": ActionDown,
	"h": ActionLeft,
	"l": ActionRight,

	// WASD
	"w": ActionUp,
	"s": ActionDown,
	"a": ActionLeft,
	"d": ActionRight,

	// Confirm / back
	"enter":     ActionConfirm,
	"escape":    ActionCancel,
	"backspace": ActionCancel,

	// Category paging
	"q": ActionShoulderLeft,
	"e": ActionShoulderRight,

	// Gamepad codes, for front-ends that deliver buttons as events
	"gamepad_dpad_up":    ActionUp,
	"gamepad_dpad_down":  ActionDown,
	"gamepad_dpad_left":  ActionLeft,
	"gamepad_dpad_right": ActionRight,
	"gamepad_a":          ActionConfirm,
	"gamepad_b":          ActionCancel,
	"gamepad_x":          ActionSquare,
	"gamepad_y":          ActionTriangle,
	"gamepad_l1":         ActionShoulderLeft,
	"gamepad_r1":         ActionShoulderRight,
	"gamepad_l2":         ActionTriggerLeft,
	"gamepad_r2":         ActionTriggerRight,
	"gamepad_select":     ActionSelect,
	"gamepad_start":      ActionStart,
}

// MapKey resolves a key code to its action, or ActionNone when unbound.
// Codes are matched case-insensitively.
func MapKey(code string) Action {
	if act, ok := bindings[strings.ToLower(code)]; ok {
		return act
	}
	return ActionNone
}

// GetBindingsByAction returns the bindings grouped by action, with codes
// sorted so help output is stable.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
