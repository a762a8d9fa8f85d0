// Package config provides YAML-based configuration for the narration engine,
// build mode, speech output and the transcript store.
package config

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-narrator/internal/build"
	"github.com/vovakirdan/tui-narrator/internal/menu"
)

// Config contains every tunable of the narrator.
type Config struct {
	Narration NarrationConfig `yaml:"narration"`
	Build     BuildConfig     `yaml:"build"`
	Speech    SpeechConfig    `yaml:"speech"`
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
}

// NarrationConfig tunes the menu narrator.
type NarrationConfig struct {
	CollisionWindow      time.Duration `yaml:"collision_window"`
	ModeRepeatWindow     time.Duration `yaml:"mode_repeat_window"`
	FocusGrace           time.Duration `yaml:"focus_grace"`
	BackThrottle         time.Duration `yaml:"back_throttle"`
	FocusFailureLogLimit int           `yaml:"focus_failure_log_limit"`
	ScaleEpsilon         float64       `yaml:"scale_epsilon"`
	SliderStep           int           `yaml:"slider_step"` // percentage points
	LegacyLabels         []string      `yaml:"legacy_labels"`
}

// BuildConfig tunes build mode.
type BuildConfig struct {
	TileSize          int   `yaml:"tile_size"`       // pixels
	ViewportMargin    int   `yaml:"viewport_margin"` // tiles
	HurtGraceTicks    int   `yaml:"hurt_grace_ticks"`
	MaxCellAttempts   int   `yaml:"max_cell_attempts"`
	WallExcludedTiles []int `yaml:"wall_excluded_tiles"`
}

// SpeechConfig controls announcement delivery.
type SpeechConfig struct {
	Dedupe bool `yaml:"dedupe"` // drop identical consecutive unforced text
	Record bool `yaml:"record"` // persist announcements to the transcript store
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig locates the transcript database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig controls the SSH sandbox server.
type ServerConfig struct {
	Address     string        `yaml:"address"`       // host:port to listen on
	HostKeyPath string        `yaml:"host_key_path"` // empty means ~/.narrator/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// MenuOptions converts the narration section to narrator options.
func (c Config) MenuOptions() menu.Options {
	n := c.Narration
	return menu.Options{
		CollisionWindow:      n.CollisionWindow,
		ModeRepeatWindow:     n.ModeRepeatWindow,
		FocusGrace:           n.FocusGrace,
		BackThrottle:         n.BackThrottle,
		FocusFailureLogLimit: n.FocusFailureLogLimit,
		ScaleEpsilon:         n.ScaleEpsilon,
		SliderStep:           n.SliderStep,
	}
}

// CatalogOptions returns the catalog options implied by the configuration.
func (c Config) CatalogOptions() []menu.CatalogOption {
	if len(c.Narration.LegacyLabels) == 0 {
		return nil
	}
	return []menu.CatalogOption{menu.WithLegacyLabels(c.Narration.LegacyLabels)}
}

// BuildOptions converts the build section to controller options.
func (c Config) BuildOptions() build.Options {
	b := c.Build
	return build.Options{
		TileSize:          b.TileSize,
		ViewportMargin:    b.ViewportMargin,
		HurtGraceTicks:    b.HurtGraceTicks,
		MaxCellAttempts:   b.MaxCellAttempts,
		WallExcludedTiles: append([]int(nil), b.WallExcludedTiles...),
	}
}

// LogLevel parses the configured level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
