package input

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		code     string
		expected Action
	}{
		{"arrow_up", ActionUp},
		{"ARROW_DOWN", ActionDown},
		{"h", ActionLeft},
		{"d", ActionRight},
		{"enter", ActionConfirm},
		{"escape", ActionCancel},
		{"backspace", ActionCancel},
		{"q", ActionShoulderLeft},
		{"e", ActionShoulderRight},
		{"gamepad_start", ActionStart},
		{QuitCode, ActionNone},
		{"", ActionNone},
		{"unknown", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapKey(tt.code))
		})
	}
}

func TestMapToIntent(t *testing.T) {
	intent := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: "arrow_left"}))
	assert.Equal(t, Intent{Action: ActionLeft, Device: DeviceTerminal}, intent)
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	got := GetBindingsByAction()
	assert.Equal(t, []string{"arrow_up", "gamepad_dpad_up", "k", "w"}, got[ActionUp])
	assert.Equal(t, []string{"backspace", "escape", "gamepad_b"}, got[ActionCancel])
}

func TestActionClassification(t *testing.T) {
	for _, d := range Directions {
		assert.True(t, d.IsDirection(), d.String())
	}
	for _, b := range Buttons {
		assert.False(t, b.IsDirection(), b.String())
	}
	assert.False(t, ActionNone.Valid())
	assert.Equal(t, "None", Action(99).String())
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		codes []string
	}{
		{"arrows csi", "\x1b[A\x1b[B\x1b[C\x1b[D", []string{"arrow_up", "arrow_down", "arrow_right", "arrow_left"}},
		{"arrows ss3", "\x1bOA", []string{"arrow_up"}},
		{"lone escape", "\x1b", []string{"escape"}},
		{"enter", "\r\n", []string{"enter", "enter"}},
		{"backspace", "\x7f\x08", []string{"backspace", "backspace"}},
		{"ctrl c", "\x03", []string{QuitCode}},
		{"letters", "kJ", []string{"k", "j"}},
		{"modified arrow discarded", "\x1b[1;5Ax", []string{"", "x"}},
		{"unknown escape", "\x1bxk", []string{"", "k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd := bufio.NewReader(strings.NewReader(tt.input))
			var got []string
			for range tt.codes {
				code, err := readKey(rd)
				require.NoError(t, err)
				got = append(got, code)
			}
			assert.Equal(t, tt.codes, got)
		})
	}
}
