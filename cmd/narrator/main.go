// narrator is a screen-reader narration engine for a tile-based sandbox game:
// it announces menu focus, sliders and hovered widgets, and drives build mode
// tile selection.
//
// Usage:
//
//	narrator modes                 - List known menu modes
//	narrator replay <script>       - Replay a recorded session and print announcements
//	narrator demo                  - Interactive narrated sandbox
//	narrator serve                 - Host the sandbox over SSH
//	narrator transcript [session]  - Show recorded announcements
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.narrator and ./configs)
//	--db <path>         - Transcript database (default: from config)
//	--log-level <lvl>   - debug, info, warn or error (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-narrator/internal/config"
	"github.com/vovakirdan/tui-narrator/internal/logging"
	"github.com/vovakirdan/tui-narrator/internal/sim"
	"github.com/vovakirdan/tui-narrator/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

// Loaded by the root command before any subcommand runs.
var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "narrator",
	Short: "Screen-reader narration for a tile sandbox game",
	Long: `Narrator speaks the game's menus and build mode out loud.

Available commands:
  modes       - Show every known menu mode
  replay      - Replay a scripted session and print what would be spoken
  demo        - Play the narrated sandbox in this terminal
  serve       - Start SSH server hosting the sandbox
  transcript  - View recorded announcements

Examples:
  narrator modes
  narrator replay testdata/clear.yaml
  narrator demo --log-level debug
  narrator serve --ssh :2222
  narrator transcript`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to transcript database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(transcriptCmd)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	cfg = loaded
	logger = logging.New(os.Stderr, "narrator", cfg.LogLevel())
	logger.Debug("config loaded", "db", cfg.Storage.Path, "level", cfg.Log.Level)
	return nil
}

// hostOptions builds the engine tunables from the loaded config.
func hostOptions() sim.HostOptions {
	return sim.HostOptions{
		Menu:    cfg.MenuOptions(),
		Catalog: cfg.CatalogOptions(),
		Build:   cfg.BuildOptions(),
	}
}

// openStore opens the transcript store when recording is on. A store that
// cannot be opened is logged and skipped.
func openStore() *storage.Store {
	if !cfg.Speech.Record {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open transcript database", "path", cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}
