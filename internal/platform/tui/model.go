package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-narrator/internal/build"
	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/engine"
	"github.com/vovakirdan/tui-narrator/internal/logging"
	"github.com/vovakirdan/tui-narrator/internal/menu"
	"github.com/vovakirdan/tui-narrator/internal/sim"
	"github.com/vovakirdan/tui-narrator/internal/speech"
	"github.com/vovakirdan/tui-narrator/internal/uiprobe"
)

// worldW and worldH are the sandbox world size in tiles.
const (
	worldW = 64
	worldH = 32
)

// Options configures a sandbox model. Zero engine options mean the defaults.
type Options struct {
	Engines sim.HostOptions
	Runtime core.RuntimeConfig
	Dedupe  bool        // drop identical consecutive unforced announcements
	Sink    speech.Sink // additional destination, e.g. a transcript store
	Logger  *log.Logger
	Theme   *Theme
}

// Model is the Bubble Tea model of the narrated sandbox. Every tick it runs
// one narrator frame while a menu is showing, or one build mode tick while a
// world is being played.
type Model struct {
	sandbox  *Sandbox
	pipeline *menu.Pipeline
	recorder *speech.Recorder
	sink     speech.Sink

	grid       *sim.Grid
	player     *sim.Player
	controller *build.Controller
	cursor     core.Point
	input      *WorldInput

	keys   KeyMap
	help   help.Model
	theme  Theme
	config core.RuntimeConfig
	logger *log.Logger

	quitting bool
}

// NewModel creates a sandbox with its own narrator, controller and world.
func NewModel(opts Options) *Model {
	logger := logging.OrDiscard(opts.Logger)
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = sim.TickRate
	}
	if opts.Engines.Menu == (menu.Options{}) {
		opts.Engines.Menu = menu.DefaultOptions()
	}
	if opts.Engines.Build.TileSize == 0 {
		opts.Engines.Build = build.DefaultOptions()
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	recorder := &speech.Recorder{}
	var sink speech.Sink = recorder
	if opts.Sink != nil {
		sink = speech.Multi{recorder, opts.Sink}
	}
	if opts.Dedupe {
		sink = speech.NewDeduper(sink)
	}

	reader := engine.NewMapReader(nil)
	sandbox := NewSandbox(reader)
	// The sandbox has no mouse, so nothing is ever hovered.
	probe := uiprobe.NewIntrospector(&uiprobe.StaticProvider{}, nil)
	narrator := menu.NewNarrator(reader, probe, opts.Engines.Menu, logger.WithPrefix("menu"), opts.Engines.Catalog...)

	grid := newSandboxWorld()
	tile, wall := 0, 4
	player := sim.NewPlayer(
		sim.ItemSpec{ID: 1, Name: "Copper Pickaxe", Pick: 35, UseTime: 6}.Item(),
		sim.ItemSpec{ID: 2, Name: "Copper Axe", Axe: 35, UseTime: 8}.Item(),
		sim.ItemSpec{ID: 3, Name: "Wooden Hammer", Hammer: 25, UseTime: 10}.Item(),
		sim.ItemSpec{ID: 4, Name: "Dirt Block", Stack: 250, Consumable: true, Tile: &tile, UseTime: 4}.Item(),
		sim.ItemSpec{ID: 5, Name: "Wood Wall", Stack: 250, Consumable: true, Wall: wall, UseTime: 4}.Item(),
	)

	return &Model{
		sandbox:    sandbox,
		pipeline:   menu.NewPipeline(sink, narrator, menu.NewWorldCreationHandler(reader, logger)),
		recorder:   recorder,
		sink:       sink,
		grid:       grid,
		player:     player,
		controller: build.NewController(grid, player, opts.Engines.Build, logger.WithPrefix("build")),
		cursor:     core.Pt(worldW/2, worldH/2),
		input:      NewWorldInput(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      theme,
		config:     opts.Runtime,
		logger:     logger,
	}
}

// newSandboxWorld builds ground with a tree trunk and a back wall.
func newSandboxWorld() *sim.Grid {
	g := sim.NewGrid(worldW, worldH)
	g.Fill(core.NewRect(0, worldH/2+2, worldW, worldH/2-2), build.Tile{Active: true, Type: 0})
	g.Fill(core.NewRect(worldW/2-6, worldH/2-4, 3, 6), build.Tile{Active: true, Type: 5, NeedsAxe: true})
	g.Fill(core.NewRect(worldW/2+4, worldH/2-3, 6, 5), build.Tile{Wall: 4})
	return g
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		m.step(time.Time(msg))
		if m.sandbox.Quit() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || (!m.sandbox.Typing() && key.Matches(msg, m.keys.Quit)) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.sandbox.InGame() {
		m.handleWorldKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.sandbox.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.sandbox.Move(1)
	case key.Matches(msg, m.keys.Left):
		m.sandbox.Adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.sandbox.Adjust(1)
	case key.Matches(msg, m.keys.Select):
		m.sandbox.Select()
	case key.Matches(msg, m.keys.Back):
		m.sandbox.Back()
	case m.sandbox.Typing() && msg.Type == tea.KeyBackspace:
		m.sandbox.Backspace()
	case m.sandbox.Typing() && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace):
		m.sandbox.Type(string(msg.Runes))
	case key.Matches(msg, m.keys.Delete):
		m.sandbox.Delete()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) handleWorldKey(msg tea.KeyMsg) {
	bounds := m.grid.Bounds()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Y = core.Clamp(m.cursor.Y-1, 0, bounds.H-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Y = core.Clamp(m.cursor.Y+1, 0, bounds.H-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.X = core.Clamp(m.cursor.X-1, 0, bounds.W-1)
	case key.Matches(msg, m.keys.Right):
		m.cursor.X = core.Clamp(m.cursor.X+1, 0, bounds.W-1)
	case key.Matches(msg, m.keys.Back):
		m.input.Reset()
		m.sandbox.Back()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		m.player.SelectSlot(int(msg.Runes[0] - '1'))
	default:
		m.input.Apply(m.keys, msg)
	}
}

// step runs one frame of whichever engine owns the screen.
func (m *Model) step(now time.Time) {
	// The narrator also runs in game so it sees the menu close.
	m.pipeline.Step(m.sandbox.Context(now))
	if !m.sandbox.InGame() {
		return
	}

	frame, moved, hurt := m.input.Take()
	events := m.controller.ProcessTick(build.TickInput{
		Input:    frame,
		Cursor:   m.cursor,
		Moved:    moved,
		Hurt:     hurt,
		Viewport: core.Viewport{Width: m.config.ScreenW * 8, Height: m.config.ScreenH * 16, Zoom: 1},
	})
	for _, ev := range events {
		speech.Deliver(m.sink, speech.Utterance{
			Text:   ev.Text,
			Force:  ev.Force,
			Source: "build",
			Kind:   ev.Kind.String(),
			At:     now,
		})
	}
}

// Utterances returns everything announced so far.
func (m *Model) Utterances() []speech.Utterance {
	return m.recorder.Utterances()
}

// View renders the sandbox and the announcement panel side by side.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	w := core.Max(m.config.ScreenW, 40)
	h := core.Max(m.config.ScreenH, 12)
	leftW := w * 3 / 5
	bodyH := h - 3

	var left string
	if m.sandbox.InGame() {
		left = RenderWorld(m.theme, m.grid, m.controller.Selection(), m.cursor, leftW, bodyH-1) + "\n" + m.worldStatus()
	} else {
		left = RenderMenu(m.theme, m.sandbox)
	}
	left = lipgloss.NewStyle().Width(leftW).Height(bodyH).Render(left)
	right := RenderAnnouncements(m.theme, m.recorder.Utterances(), w-leftW, bodyH)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.help.View(m.keys),
	)
}

func (m *Model) worldStatus() string {
	held := "empty hand"
	if it, ok := build.HeldItem(m.player); ok {
		held = it.Name
	}
	state := "build mode off"
	if m.controller.Enabled() {
		state = m.controller.State().String()
	}
	use := ""
	if m.input.UseHeld() {
		use = "  [using]"
	}
	return m.theme.Status.Render("holding " + held + "  " + state + "  at " + m.cursor.String() + use)
}
