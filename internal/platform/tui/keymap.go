package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-narrator/internal/core"
)

// KeyMap defines the sandbox key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Delete key.Binding

	Build  key.Binding
	Corner key.Binding
	Use    key.Binding
	Move   key.Binding
	Hurt   key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Delete},
		{k.Build, k.Corner, k.Use, k.Move, k.Hurt},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default sandbox bindings. Letter keys double as
// text input on the world-name field, so only ctrl+c quits there.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "decrease / cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "increase / cursor right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "x"),
			key.WithHelp("x", "delete world"),
		),
		Build: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle build mode"),
		),
		Corner: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "place corner"),
		),
		Use: key.NewBinding(
			key.WithKeys("u", " "),
			key.WithHelp("u/space", "hold/release use"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "walk"),
		),
		Hurt: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "take damage"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WorldInput accumulates one tick of in-world input from key presses.
// Terminals report no key releases, so use is a latch toggled by its key.
type WorldInput struct {
	frame   core.InputFrame
	useHeld bool
	moved   bool
	hurt    bool
}

// NewWorldInput creates an empty input accumulator.
func NewWorldInput() *WorldInput {
	return &WorldInput{frame: core.NewInputFrame()}
}

// Apply records a key press. It reports whether the key was consumed.
func (w *WorldInput) Apply(k KeyMap, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, k.Build):
		w.frame.Set(core.ActionToggleBuild)
	case key.Matches(msg, k.Corner):
		w.frame.Set(core.ActionPlaceCorner)
	case key.Matches(msg, k.Use):
		w.useHeld = !w.useHeld
	case key.Matches(msg, k.Move):
		w.moved = true
	case key.Matches(msg, k.Hurt):
		w.hurt = true
	default:
		return false
	}
	return true
}

// UseHeld reports whether the use latch is on.
func (w *WorldInput) UseHeld() bool {
	return w.useHeld
}

// Take returns this tick's input and clears the one-shot parts.
func (w *WorldInput) Take() (frame core.InputFrame, moved, hurt bool) {
	frame = w.frame.Clone()
	if w.useHeld {
		frame.Set(core.ActionUse)
	}
	moved, hurt = w.moved, w.hurt
	w.frame.Clear()
	w.moved, w.hurt = false, false
	return frame, moved, hurt
}

// Reset drops all held input.
func (w *WorldInput) Reset() {
	w.frame.Clear()
	w.useHeld, w.moved, w.hurt = false, false, false
}
