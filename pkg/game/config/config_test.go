package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFrom_DefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadFrom([]string{filepath.Join(t.TempDir(), "none.toml")})
	require.NoError(t, err)

	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Equal(t, "game", cfg.InitialCategory)
	assert.Equal(t, 400*time.Millisecond, cfg.RepeatDelay())
	assert.Equal(t, 150*time.Millisecond, cfg.RepeatRate())
	assert.InDelta(t, 0.5, cfg.Input.Deadzone, 1e-9)
	assert.Equal(t, 15, cfg.Library.PageSize)
	assert.True(t, cfg.Sound.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.toml", `
renderer = "tui"

[input]
repeat_delay_ms = 300
deadzone = 0.3

[library]
path = "~/games.json"
`)
	local := writeFile(t, dir, "local.toml", `
[input]
repeat_delay_ms = 250
`)

	cfg, err := LoadFrom([]string{user, local})
	require.NoError(t, err)

	assert.Equal(t, RendererTUI, cfg.Renderer)
	assert.Equal(t, 250, cfg.Input.RepeatDelayMS)
	assert.Equal(t, 150, cfg.Input.RepeatRateMS, "unset keys keep their default")
	assert.InDelta(t, 0.3, cfg.Input.Deadzone, 1e-9)

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, "games.json"), cfg.Library.Path)
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	bad := writeFile(t, t.TempDir(), "bad.toml", "renderer = [")
	_, err := LoadFrom([]string{bad})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown renderer", func(c *Config) { c.Renderer = "opengl" }, "renderer"},
		{"zero delay", func(c *Config) { c.Input.RepeatDelayMS = 0 }, "input.repeat_delay_ms"},
		{"negative rate", func(c *Config) { c.Input.RepeatRateMS = -5 }, "input.repeat_rate_ms"},
		{"deadzone too large", func(c *Config) { c.Input.Deadzone = 1 }, "input.deadzone"},
		{"zero page size", func(c *Config) { c.Library.PageSize = 0 }, "library.page_size"},
		{"zero scale", func(c *Config) { c.UI.Scale = 0 }, "ui.scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.field)
		})
	}
}

func TestOverride(t *testing.T) {
	cfg := Default()
	cfg.Override("TUI", "", "/tmp/x.log")
	assert.Equal(t, RendererTUI, cfg.Renderer)
	assert.Equal(t, Default().Library.Path, cfg.Library.Path)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)

	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.log", path)
}

func TestSetScale_PersistsAndKeepsOtherKeys(t *testing.T) {
	dir := t.TempDir()
	prefs := writeFile(t, dir, "config.toml", "renderer = \"tui\"\n")

	cfg, err := LoadFrom([]string{prefs})
	require.NoError(t, err)
	require.NoError(t, cfg.SetScale(1.5))
	assert.InDelta(t, 1.5, cfg.UI.Scale, 1e-9)

	reloaded, err := LoadFrom([]string{prefs})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, reloaded.UI.Scale, 1e-9)
	assert.Equal(t, RendererTUI, reloaded.Renderer)
}

func TestSetScale_CreatesFile(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := LoadFrom([]string{prefs})
	require.NoError(t, err)
	require.NoError(t, cfg.SetScale(2))

	reloaded, err := LoadFrom([]string{prefs})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, reloaded.UI.Scale, 1e-9)
}

func TestCurrent(t *testing.T) {
	orig := Current()
	t.Cleanup(func() { Set(orig) })

	cfg := Default()
	cfg.Renderer = RendererTUI
	Set(cfg)
	assert.Same(t, cfg, Current())
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, "config.toml", paths[len(paths)-1])
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
}
