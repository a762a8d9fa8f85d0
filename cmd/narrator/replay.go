package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-narrator/internal/sim"
	"github.com/vovakirdan/tui-narrator/internal/speech"
)

var flagQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a scripted session and print every announcement",
	Long: `Feed a recorded sequence of menu frames and build mode ticks through a
fresh narrator and build controller, printing each announcement as it would
be spoken.

Script format (YAML):
  menu:   frames with at, mode, state, hover/unhover, active
  build:  world size, fills, inventory and input ticks

Examples:
  narrator replay session.yaml
  narrator replay session.yaml --quiet --db ./transcripts.db`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only record, do not print announcements")
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := sim.LoadScript(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sinks := speech.Multi{}
	if !flagQuiet {
		sinks = append(sinks, speech.SinkFunc(func(text string, force bool) {
			mark := " "
			if force {
				mark = "!"
			}
			fmt.Fprintf(out, "%s %s\n", mark, text)
		}))
	}
	if store := openStore(); store != nil {
		defer store.Close()
		sink := speech.NewStoreSink(store, "", logger)
		sinks = append(sinks, sink)
		defer fmt.Fprintf(out, "\nrecorded as session %s\n", sink.SessionID())
	}
	var sink speech.Sink = sinks
	if cfg.Speech.Dedupe {
		sink = speech.NewDeduper(sink)
	}

	outcome, err := sim.NewHost(hostOptions(), logger).Run(cmd.Context(), script, sink)
	if err != nil {
		return err
	}
	logger.Info("replay finished", "script", script.Name, "frames", outcome.Frames, "ticks", outcome.Ticks)
	return nil
}
