package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in each search location.
const FileName = "narrator.yaml"

// Load loads the narrator configuration. Values missing from a file keep
// their defaults.
// Search order: customPath -> ~/.narrator/narrator.yaml -> ./configs/narrator.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultNarratorYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".narrator", filename)
}

// Validate reports every out-of-range value.
func (c Config) Validate() error {
	var errs []error
	n := c.Narration
	for _, w := range []struct {
		name string
		d    time.Duration
	}{
		{"narration.collision_window", n.CollisionWindow},
		{"narration.mode_repeat_window", n.ModeRepeatWindow},
		{"narration.focus_grace", n.FocusGrace},
		{"narration.back_throttle", n.BackThrottle},
	} {
		if w.d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", w.name))
		}
	}
	if n.FocusFailureLogLimit < 0 {
		errs = append(errs, errors.New("narration.focus_failure_log_limit must not be negative"))
	}
	if n.ScaleEpsilon < 0 {
		errs = append(errs, errors.New("narration.scale_epsilon must not be negative"))
	}
	if n.SliderStep < 1 {
		errs = append(errs, errors.New("narration.slider_step must be at least 1"))
	}

	b := c.Build
	if b.TileSize <= 0 {
		errs = append(errs, errors.New("build.tile_size must be positive"))
	}
	if b.ViewportMargin < 0 {
		errs = append(errs, errors.New("build.viewport_margin must not be negative"))
	}
	if b.HurtGraceTicks < 0 {
		errs = append(errs, errors.New("build.hurt_grace_ticks must not be negative"))
	}
	if b.MaxCellAttempts <= 0 {
		errs = append(errs, errors.New("build.max_cell_attempts must be positive"))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server.idle_timeout must not be negative"))
	}
	return errors.Join(errs...)
}
