package terminal

import (
	"bytes"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Portal 2", 10, "Portal 2"},
		{"cut with ellipsis", "Grand Theft Auto V", 8, "Grand T…"},
		{"zero width", "abc", 0, ""},
		{"wide runes", "ゲーム設定", 5, "ゲー…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, 6, runewidth.StringWidth(Pad("ゲーム設定", 6)))
}

func TestEscapes(t *testing.T) {
	var buf bytes.Buffer
	Clear(&buf)
	HideCursor(&buf)
	ShowCursor(&buf)
	assert.Equal(t, "\x1b[H\x1b[2J\x1b[?25l\x1b[?25h", buf.String())
}
