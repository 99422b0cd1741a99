package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossbar/pkg/game/library"
)

func testSource() *library.Source {
	return library.NewSource(filepath.Join("pkg", "game", "library", "testdata", "games.json"), nil)
}

func TestRunSearch_Matches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &buf, testSource(), "portal"))

	out := color.ClearCode(buf.String())
	assert.Contains(t, out, "1 matching games")
	assert.Contains(t, out, "Portal 2 #4200")
	assert.Contains(t, out, "  Game\n")
	assert.Contains(t, out, "  Rating 4.61\n")
	assert.Contains(t, out, "  Metacritic 95\n")
	assert.Contains(t, out, "  Released 2011-04-18\n")
}

func TestRunSearch_Suggests(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &buf, testSource(), "portl"))

	out := color.ClearCode(buf.String())
	assert.Contains(t, out, `No games match "portl"`)
	assert.Contains(t, out, "Did you mean: Portal 2")
}

func TestRunDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDetails(context.Background(), &buf, testSource(), "3498"))
	out := color.ClearCode(buf.String())
	assert.Contains(t, out, "Grand Theft Auto V #3498")
	assert.Contains(t, out, "  Action, Adventure\n")

	assert.ErrorIs(t, runDetails(context.Background(), &buf, testSource(), "1"), library.ErrNotFound)
	assert.Error(t, runDetails(context.Background(), &buf, testSource(), "abc"))
}

func TestPrintKeys(t *testing.T) {
	var buf bytes.Buffer
	printKeys(&buf)

	out := color.ClearCode(buf.String())
	assert.Contains(t, out, "Confirm        enter, gamepad_a\n")
	assert.Contains(t, out, "ShoulderLeft   gamepad_l1, q\n")
}
