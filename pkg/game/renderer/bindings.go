package renderer

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "crossbar/pkg/engine/input"
)

// Unbound is shown for an action with no key codes.
const Unbound = "(unbound)"

// BindingLine is one row of the key help listing.
type BindingLine struct {
	Action engineinput.Action
	Label  string
	Keys   string
}

// helpOrder lists the actions in the order the help listing shows them.
var helpOrder = func() []engineinput.Action {
	order := append([]engineinput.Action{}, engineinput.Directions[:]...)
	order = append(order, engineinput.Buttons[:]...)
	return append(order, engineinput.ActionTriggerLeft, engineinput.ActionTriggerRight)
}()

// Bindings returns the key help listing for every action.
func Bindings() []BindingLine {
	byAction := engineinput.GetBindingsByAction()
	lines := make([]BindingLine, 0, len(helpOrder))
	for _, act := range helpOrder {
		keys := strings.Join(byAction[act], ", ")
		if keys == "" {
			keys = gotext.Get(Unbound)
		}
		lines = append(lines, BindingLine{
			Action: act,
			Label:  gotext.Get(act.String(), []any{}...), // no vars: plain catalog lookup
			Keys:   keys,
		})
	}
	return lines
}
