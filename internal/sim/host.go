package sim

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-narrator/internal/build"
	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/engine"
	"github.com/vovakirdan/tui-narrator/internal/logging"
	"github.com/vovakirdan/tui-narrator/internal/menu"
	"github.com/vovakirdan/tui-narrator/internal/speech"
	"github.com/vovakirdan/tui-narrator/internal/uiprobe"
)

// TickRate is the host's simulation rate in ticks per second.
const TickRate = 60

// Epoch is the wall-clock time a script's offsets are measured from.
var Epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// HostOptions configures the engines a Host drives.
type HostOptions struct {
	Menu    menu.Options
	Catalog []menu.CatalogOption
	Build   build.Options
}

// DefaultHostOptions returns the engines' standard tunables.
func DefaultHostOptions() HostOptions {
	return HostOptions{Menu: menu.DefaultOptions(), Build: build.DefaultOptions()}
}

// Host replays scripts through a fresh narrator and build controller.
type Host struct {
	opts   HostOptions
	logger *log.Logger
}

// NewHost creates a host. A nil logger discards output.
func NewHost(opts HostOptions, logger *log.Logger) *Host {
	return &Host{opts: opts, logger: logging.OrDiscard(logger)}
}

// Outcome is the final state of a replay.
type Outcome struct {
	Frames     int
	Ticks      int
	Grid       *Grid
	Player     *Player
	Controller *build.Controller
}

// Run replays s, delivering every announcement to sink. Menu frames run
// first, then build ticks. Only context cancellation stops a run early.
func (h *Host) Run(ctx context.Context, s *Script, sink speech.Sink) (*Outcome, error) {
	if sink == nil {
		sink = speech.Discard
	}
	out := &Outcome{}

	reader := engine.NewMapReader(nil)
	hover := &uiprobe.StaticProvider{}
	probe := uiprobe.NewIntrospector(hover, nil)
	narrator := menu.NewNarrator(reader, probe, h.opts.Menu, h.logger.WithPrefix("menu"), h.opts.Catalog...)
	pipeline := menu.NewPipeline(sink, narrator, menu.NewWorldCreationHandler(reader, h.logger))

	for _, f := range s.Menu {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		applyFrame(reader, hover, f)
		active := f.Active == nil || *f.Active
		var root uiprobe.Root
		if f.Root != "" {
			root = uiprobe.Widget{ID: "root", Label: f.Root}
		}
		pipeline.Step(menu.Context{Active: active, Mode: menu.Mode(f.Mode), Root: root, Now: Epoch.Add(f.At)})
		out.Frames++
	}

	if s.Build == nil {
		return out, nil
	}
	b := s.Build
	out.Grid = b.NewGrid()
	out.Player = b.NewPlayer()
	out.Controller = build.NewController(out.Grid, out.Player, h.opts.Build, h.logger.WithPrefix("build"))

	start := Epoch
	if n := len(s.Menu); n > 0 {
		start = Epoch.Add(s.Menu[n-1].At)
	}
	held := core.NewInputFrame()
	var cursor core.Point
	vp := b.viewport()

	for _, t := range b.Ticks {
		press, _ := parseActions(t.Press)
		hold, _ := parseActions(t.Hold)
		release, _ := parseActions(t.Release)
		for _, a := range hold {
			held.Set(a)
		}
		for _, a := range release {
			delete(held.Actions, a)
		}
		if len(t.Cursor) == 2 {
			cursor = core.Pt(t.Cursor[0], t.Cursor[1])
		}

		for i := 0; i < core.Max(t.Repeat, 1); i++ {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			in := held.Clone()
			for _, a := range press {
				in.Set(a)
			}
			events := out.Controller.ProcessTick(build.TickInput{
				Input:    in,
				Cursor:   cursor,
				Gamepad:  t.Gamepad,
				Moved:    t.Moved && i == 0,
				Hurt:     t.Hurt && i == 0,
				Viewport: vp,
			})
			out.Ticks++
			at := start.Add(time.Duration(out.Ticks) * time.Second / TickRate)
			for _, ev := range events {
				speech.Deliver(sink, speech.Utterance{
					Text:   ev.Text,
					Force:  ev.Force,
					Source: "build",
					Kind:   ev.Kind.String(),
					At:     at,
				})
			}
		}
	}
	h.logger.Debug("replay finished", "script", s.Name, "frames", out.Frames, "ticks", out.Ticks)
	return out, nil
}

// applyFrame publishes a frame's engine values and hover state.
func applyFrame(reader *engine.MapReader, hover *uiprobe.StaticProvider, f MenuFrame) {
	for k, v := range f.State {
		if v == nil {
			reader.Delete(engine.Key(k))
			continue
		}
		reader.Set(engine.Key(k), v)
	}
	switch {
	case f.Unhover:
		hover.Set(nil)
	case f.Hover != nil:
		w := uiprobe.Widget{ID: f.Hover.ID, Label: f.Hover.Label}
		if f.Hover.Value != nil {
			w.Value, w.HasValue = *f.Hover.Value, true
		}
		hover.Set(w)
	}
}
