package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/platform/tui"
	"github.com/vovakirdan/tui-narrator/internal/speech"
)

var (
	flagFPS  int
	flagMono bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the narrated sandbox in this terminal",
	Long: `Start a simulated game: walk its menus and use build mode while every
announcement appears in the "Spoken" panel.

Controls:
  Up/Down       - Move menu focus (cursor in game)
  Left/Right    - Adjust the focused setting (cursor in game)
  Enter / Esc   - Select / back
  B, C          - Toggle build mode, place a corner
  U or Space    - Hold or release use
  1-5           - Select inventory slot
  M, H          - Walk, take damage
  ?             - Help
  Q             - Quit

Examples:
  narrator demo
  narrator demo --fps 30 --mono`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	demoCmd.Flags().BoolVar(&flagMono, "mono", false, "Use the monochrome theme")
}

func runDemo(_ *cobra.Command, _ []string) error {
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// The TUI owns the terminal, so engine logs are discarded.
	opts := tui.Options{
		Engines: hostOptions(),
		Runtime: runtime,
		Dedupe:  cfg.Speech.Dedupe,
	}
	if flagMono {
		theme := tui.MonochromeTheme()
		opts.Theme = &theme
	}
	if store := openStore(); store != nil {
		defer store.Close()
		sink := speech.NewStoreSink(store, "", logger)
		opts.Sink = sink
		defer fmt.Printf("Transcript recorded as session %s\n", sink.SessionID())
	}

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run sandbox: %w", err)
	}
	return nil
}
