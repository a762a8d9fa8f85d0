package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultNarratorYAML)
	if err != nil {
		t.Fatalf("parse(embedded) error: %v", err)
	}
	def := Default()

	if cfg.Narration.CollisionWindow != def.Narration.CollisionWindow {
		t.Errorf("collision_window = %v, expected %v", cfg.Narration.CollisionWindow, def.Narration.CollisionWindow)
	}
	if cfg.Narration.FocusGrace != 250*time.Millisecond {
		t.Errorf("focus_grace = %v, expected 250ms", cfg.Narration.FocusGrace)
	}
	if cfg.Narration.ScaleEpsilon != def.Narration.ScaleEpsilon {
		t.Errorf("scale_epsilon = %v, expected %v", cfg.Narration.ScaleEpsilon, def.Narration.ScaleEpsilon)
	}
	if cfg.Build.TileSize != 16 || cfg.Build.ViewportMargin != 2 {
		t.Errorf("build = %+v, expected tile size 16 and margin 2", cfg.Build)
	}
	if len(cfg.Build.WallExcludedTiles) != 1 || cfg.Build.WallExcludedTiles[0] != 21 {
		t.Errorf("wall_excluded_tiles = %v, expected [21]", cfg.Build.WallExcludedTiles)
	}
	if cfg.Server.IdleTimeout != def.Server.IdleTimeout {
		t.Errorf("idle_timeout = %v, expected %v", cfg.Server.IdleTimeout, def.Server.IdleTimeout)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
narration:
  collision_window: 1500ms
build:
  max_cell_attempts: 3
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Narration.CollisionWindow != 1500*time.Millisecond {
		t.Errorf("collision_window = %v, expected 1.5s", cfg.Narration.CollisionWindow)
	}
	if cfg.Build.MaxCellAttempts != 3 {
		t.Errorf("max_cell_attempts = %d, expected 3", cfg.Build.MaxCellAttempts)
	}
	// untouched keys keep defaults
	if cfg.Narration.ModeRepeatWindow != time.Second {
		t.Errorf("mode_repeat_window = %v, expected default 1s", cfg.Narration.ModeRepeatWindow)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, expected debug", cfg.LogLevel())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "narration: [not, a, map]\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad yaml) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "build:\n  tile_size: 0\n")
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "tile_size") {
		t.Errorf("Load(invalid) error = %v, expected tile_size complaint", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Narration.CollisionWindow != 900*time.Millisecond {
		t.Errorf("embedded collision_window = %v, expected 900ms", cfg.Narration.CollisionWindow)
	}

	writeFile(t, filepath.Join(work, "configs", FileName), "log:\n  level: warn\n")
	cfg, _ = Load("")
	if cfg.Log.Level != "warn" {
		t.Errorf("local config level = %q, expected warn", cfg.Log.Level)
	}

	writeFile(t, filepath.Join(home, ".narrator", FileName), "log:\n  level: error\n")
	cfg, _ = Load("")
	if cfg.Log.Level != "error" {
		t.Errorf("user config level = %q, expected error", cfg.Log.Level)
	}

	// a broken user file falls through to the next location
	writeFile(t, filepath.Join(home, ".narrator", FileName), "log: [\n")
	cfg, _ = Load("")
	if cfg.Log.Level != "warn" {
		t.Errorf("level with broken user config = %q, expected warn", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative window", func(c *Config) { c.Narration.CollisionWindow = -time.Second }, "collision_window"},
		{"negative grace", func(c *Config) { c.Narration.FocusGrace = -1 }, "focus_grace"},
		{"zero step", func(c *Config) { c.Narration.SliderStep = 0 }, "slider_step"},
		{"zero tile size", func(c *Config) { c.Build.TileSize = 0 }, "tile_size"},
		{"zero attempts", func(c *Config) { c.Build.MaxCellAttempts = 0 }, "max_cell_attempts"},
		{"negative idle", func(c *Config) { c.Server.IdleTimeout = -time.Minute }, "idle_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, expected mention of %s", err, tt.want)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Narration.SliderStep = 5
	cfg.Build.WallExcludedTiles = []int{21, 88}

	if got := cfg.MenuOptions().SliderStep; got != 5 {
		t.Errorf("MenuOptions().SliderStep = %d, expected 5", got)
	}
	opts := cfg.BuildOptions()
	if len(opts.WallExcludedTiles) != 2 {
		t.Fatalf("BuildOptions().WallExcludedTiles = %v", opts.WallExcludedTiles)
	}
	opts.WallExcludedTiles[0] = 1
	if cfg.Build.WallExcludedTiles[0] != 21 {
		t.Error("BuildOptions() shares the excluded tile slice")
	}

	if cfg.CatalogOptions() != nil {
		t.Error("CatalogOptions() without legacy labels should be nil")
	}
	cfg.Narration.LegacyLabels = []string{"Play", "Quit"}
	if n := len(cfg.CatalogOptions()); n != 1 {
		t.Errorf("len(CatalogOptions()) = %d, expected 1", n)
	}

	cfg.Log.Level = "loud"
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() = %v, expected info fallback", cfg.LogLevel())
	}
}
