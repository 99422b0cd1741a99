package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "crossbar"

// Renderer names accepted by the renderer key.
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

type Config struct {
	Renderer        string `koanf:"renderer"`         // "ebiten" or "tui"
	InitialCategory string `koanf:"initial_category"` // category ID focused at start-up
	LogFile         string `koanf:"log_file"`         // empty means the XDG state dir

	Input   InputConfig   `koanf:"input"`
	Library LibraryConfig `koanf:"library"`
	Sound   SoundConfig   `koanf:"sound"`
	Locale  LocaleConfig  `koanf:"locale"`
	UI      UIConfig      `koanf:"ui"`

	// prefsPath is where SetScale writes.
	prefsPath string
}

type InputConfig struct {
	RepeatDelayMS int     `koanf:"repeat_delay_ms"`
	RepeatRateMS  int     `koanf:"repeat_rate_ms"`
	Deadzone      float64 `koanf:"deadzone"`
	BootGate      bool    `koanf:"boot_gate"` // wait for a first key press before accepting input
}

type LibraryConfig struct {
	Path     string `koanf:"path"` // games.json path or http(s) URL
	PageSize int    `koanf:"page_size"`
}

type SoundConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"` // holds ps3/snd_*.ch{0,1}.wav
}

type LocaleConfig struct {
	Dir  string `koanf:"dir"`
	Lang string `koanf:"lang"`
}

type UIConfig struct {
	Scale      float64 `koanf:"scale"`
	Background bool    `koanf:"background"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Renderer:        RendererEbiten,
		InitialCategory: "game",
		Input: InputConfig{
			RepeatDelayMS: 400,
			RepeatRateMS:  150,
			Deadzone:      0.5,
			BootGate:      true,
		},
		Library: LibraryConfig{
			Path:     filepath.Join("assets", "games.json"),
			PageSize: 15,
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     "assets",
		},
		Locale: LocaleConfig{
			Dir:  "locales",
			Lang: "en",
		},
		UI: UIConfig{
			Scale:      1,
			Background: true,
		},
	}
}

// Load reads the default config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads paths in order, later files overriding earlier ones.
// Missing files are skipped. Preferences are saved to the first path.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if len(paths) > 0 {
		cfg.prefsPath = paths[0]
	}

	cfg.Renderer = strings.ToLower(strings.TrimSpace(cfg.Renderer))
	cfg.Library.Path = expandPath(cfg.Library.Path)
	cfg.Sound.Dir = expandPath(cfg.Sound.Dir)
	cfg.Locale.Dir = expandPath(cfg.Locale.Dir)
	cfg.LogFile = expandPath(cfg.LogFile)
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/crossbar/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Renderer != RendererEbiten && c.Renderer != RendererTUI {
		errs = append(errs, fmt.Errorf("renderer: unknown renderer %q", c.Renderer))
	}
	if c.Input.RepeatDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("input.repeat_delay_ms: must be positive, got %d", c.Input.RepeatDelayMS))
	}
	if c.Input.RepeatRateMS <= 0 {
		errs = append(errs, fmt.Errorf("input.repeat_rate_ms: must be positive, got %d", c.Input.RepeatRateMS))
	}
	if c.Input.Deadzone <= 0 || c.Input.Deadzone >= 1 {
		errs = append(errs, fmt.Errorf("input.deadzone: must be between 0 and 1, got %g", c.Input.Deadzone))
	}
	if c.Library.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("library.page_size: must be positive, got %d", c.Library.PageSize))
	}
	if c.UI.Scale <= 0 {
		errs = append(errs, fmt.Errorf("ui.scale: must be positive, got %g", c.UI.Scale))
	}
	return errors.Join(errs...)
}

// RepeatDelay returns the initial auto-repeat delay.
func (c *Config) RepeatDelay() time.Duration {
	return time.Duration(c.Input.RepeatDelayMS) * time.Millisecond
}

// RepeatRate returns the auto-repeat interval.
func (c *Config) RepeatRate() time.Duration {
	return time.Duration(c.Input.RepeatRateMS) * time.Millisecond
}

// Override applies command-line values. Empty strings leave the setting.
func (c *Config) Override(renderer, libraryPath, logFile string) {
	if renderer != "" {
		c.Renderer = strings.ToLower(renderer)
	}
	if libraryPath != "" {
		c.Library.Path = libraryPath
	}
	if logFile != "" {
		c.LogFile = logFile
	}
}

// LogPath returns the log file, defaulting to the XDG state directory.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// SetScale stores the UI scale and persists it as ui.scale in the
// preferences file, keeping the file's other settings.
func (c *Config) SetScale(scale float64) error {
	c.UI.Scale = scale
	if c.prefsPath == "" {
		return nil
	}

	k := koanf.New(".")
	if _, err := os.Stat(c.prefsPath); err == nil {
		if err := k.Load(file.Provider(c.prefsPath), toml.Parser()); err != nil {
			return fmt.Errorf("load %s: %w", c.prefsPath, err)
		}
	}
	if err := k.Set("ui.scale", scale); err != nil {
		return err
	}
	b, err := k.Marshal(toml.Parser())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.prefsPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.prefsPath, b, 0o644)
}

var (
	currentMu sync.RWMutex
	current   = Default()
)

// Current returns the active configuration.
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Set replaces the active configuration.
func Set(cfg *Config) {
	currentMu.Lock()
	current = cfg
	currentMu.Unlock()
}
