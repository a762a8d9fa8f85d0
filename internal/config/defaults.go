package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-narrator/internal/build"
	"github.com/vovakirdan/tui-narrator/internal/menu"
)

//go:embed defaults/narrator.yaml
var defaultNarratorYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	m := menu.DefaultOptions()
	b := build.DefaultOptions()
	return Config{
		Narration: NarrationConfig{
			CollisionWindow:      m.CollisionWindow,
			ModeRepeatWindow:     m.ModeRepeatWindow,
			FocusGrace:           m.FocusGrace,
			BackThrottle:         m.BackThrottle,
			FocusFailureLogLimit: m.FocusFailureLogLimit,
			ScaleEpsilon:         m.ScaleEpsilon,
			SliderStep:           m.SliderStep,
		},
		Build: BuildConfig{
			TileSize:          b.TileSize,
			ViewportMargin:    b.ViewportMargin,
			HurtGraceTicks:    b.HurtGraceTicks,
			MaxCellAttempts:   b.MaxCellAttempts,
			WallExcludedTiles: b.WallExcludedTiles,
		},
		Speech: SpeechConfig{
			Dedupe: true,
			Record: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.narrator/transcripts.db",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
