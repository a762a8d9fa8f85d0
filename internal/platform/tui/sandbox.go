package tui

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/engine"
	"github.com/vovakirdan/tui-narrator/internal/menu"
	"github.com/vovakirdan/tui-narrator/internal/uiprobe"
)

var (
	resolutions  = []string{"1280x720", "1920x1080", "2560x1440"}
	lightingOpts = []string{"Color", "White", "Retro", "Trippy"}
	worldSizes   = []string{"Small", "Medium", "Large"}
	difficulties = []string{"Journey", "Classic", "Expert", "Master"}
)

// Sandbox is a simulated host menu system. It publishes its state to an
// engine reader the same way the real host exposes it, so the narrator sees
// only polled values and never the sandbox itself.
type Sandbox struct {
	reader  *engine.MapReader
	catalog *menu.Catalog

	mode   menu.Mode
	focus  int
	back   []menu.Mode
	inGame bool
	quit   bool

	players []string
	worlds  []string
	name    string // world-name input
	target  string // item awaiting deletion
}

// NewSandbox creates a sandbox on the title screen.
func NewSandbox(reader *engine.MapReader) *Sandbox {
	s := &Sandbox{
		reader:  reader,
		catalog: menu.NewCatalog(reader),
		mode:    menu.ModeTitle,
		players: []string{"Andrew"},
		worlds:  []string{"Forest Hill", "Crimson Deep"},
	}
	reader.Set(engine.KeyMusicVolume, 0.75)
	reader.Set(engine.KeySoundVolume, 1.0)
	reader.Set(engine.KeyAmbientVolume, 0.5)
	reader.Set(engine.KeyZoom, 1.0)
	reader.Set(engine.KeyInterfaceScale, 1.0)
	reader.Set(engine.KeyParallax, 0.0)
	reader.Set(engine.KeyFullscreen, false)
	reader.Set(engine.KeyResolution, resolutions[1])
	reader.Set(engine.KeyLighting, lightingOpts[0])
	reader.Set(engine.KeyAutosave, true)
	reader.Set(engine.KeyAutopause, false)
	reader.Set(engine.KeyMapEnabled, true)
	reader.Set(engine.KeySmartCursor, false)
	reader.Set(engine.KeyLanguage, "English")
	reader.Set(engine.KeyWorldSize, worldSizes[1])
	reader.Set(engine.KeyWorldDifficult, difficulties[1])
	s.publish()
	return s
}

// Mode returns the current menu screen.
func (s *Sandbox) Mode() menu.Mode { return s.mode }

// Focus returns the focused option index.
func (s *Sandbox) Focus() int { return s.focus }

// InGame reports whether a world is being played.
func (s *Sandbox) InGame() bool { return s.inGame }

// Quit reports whether Exit was chosen.
func (s *Sandbox) Quit() bool { return s.quit }

// Typing reports whether key presses go to the world-name input.
func (s *Sandbox) Typing() bool {
	return !s.inGame && s.mode == menu.ModeWorldCreation && s.focus == 0
}

// Context is the narrator frame context for now.
func (s *Sandbox) Context(now time.Time) menu.Context {
	return menu.Context{
		Active: !s.inGame,
		Mode:   s.mode,
		Root:   uiprobe.Widget{ID: "root", Label: s.mode.String()},
		Now:    now,
	}
}

// Options returns the spoken labels of the current screen's options.
func (s *Sandbox) Options() []string {
	n := s.optionCount()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = s.catalog.DescribeMenuItem(s.mode, i)
	}
	return out
}

func (s *Sandbox) optionCount() int {
	switch s.mode {
	case menu.ModePlayerSelect:
		return len(s.players) + 2
	case menu.ModeWorldSelect:
		return len(s.worlds) + 2
	}
	return s.catalog.OptionCount(s.mode)
}

// Move shifts focus by delta, wrapping around.
func (s *Sandbox) Move(delta int) {
	n := s.optionCount()
	if n == 0 || s.inGame {
		return
	}
	s.focus = ((s.focus+delta)%n + n) % n
	s.publish()
}

// Adjust changes the focused setting: sliders step by a twentieth of their
// range, choices cycle and toggles flip.
func (s *Sandbox) Adjust(dir int) {
	switch s.mode {
	case menu.ModeAudioSettings:
		keys := []engine.Key{engine.KeyMusicVolume, engine.KeySoundVolume, engine.KeyAmbientVolume}
		if s.focus < len(keys) {
			s.step(keys[s.focus], 0.05*float64(dir), 0, 1)
		}
	case menu.ModeVideoSettings:
		switch s.focus {
		case 0:
			s.flip(engine.KeyFullscreen)
		case 1:
			s.cycle(engine.KeyResolution, resolutions, dir)
		case 2:
			s.step(engine.KeyZoom, 0.05*float64(dir), 1, 2)
		case 3:
			s.step(engine.KeyInterfaceScale, 0.05*float64(dir), 0.5, 2)
		case 4:
			s.step(engine.KeyParallax, 5*float64(dir), 0, 100)
		case 5:
			s.cycle(engine.KeyLighting, lightingOpts, dir)
		}
	case menu.ModeGeneralSettings:
		toggles := []engine.Key{engine.KeyAutosave, engine.KeyAutopause, engine.KeyMapEnabled, engine.KeySmartCursor}
		if s.focus < len(toggles) {
			s.flip(toggles[s.focus])
		}
	case menu.ModeWorldCreation:
		switch s.focus {
		case 1:
			s.cycle(engine.KeyWorldSize, worldSizes, dir)
		case 2:
			s.cycle(engine.KeyWorldDifficult, difficulties, dir)
		}
	}
}

func (s *Sandbox) step(key engine.Key, delta, lo, hi float64) {
	v, _ := engine.Float(s.reader, key)
	s.reader.Set(key, core.ClampF(v+delta, lo, hi))
}

func (s *Sandbox) flip(key engine.Key) {
	v, _ := engine.Bool(s.reader, key)
	s.reader.Set(key, !v)
}

func (s *Sandbox) cycle(key engine.Key, values []string, dir int) {
	cur, _ := engine.Text(s.reader, key)
	i := slices.Index(values, cur)
	n := len(values)
	s.reader.Set(key, values[((i+dir)%n+n)%n])
}

// Select activates the focused option.
func (s *Sandbox) Select() {
	label := s.catalog.DescribeMenuItem(s.mode, s.focus)
	if label == "Back" {
		s.Back()
		return
	}

	switch s.mode {
	case menu.ModeTitle:
		switch s.focus {
		case 0:
			s.push(menu.ModePlayerSelect)
		case 3:
			s.push(menu.ModeSettings)
		case 5:
			s.quit = true
		}
	case menu.ModeSettings:
		switch s.focus {
		case 0:
			s.push(menu.ModeGeneralSettings)
		case 1:
			s.push(menu.ModeInterfaceSettings)
		case 2:
			s.push(menu.ModeVideoSettings)
		case 3:
			s.push(menu.ModeAudioSettings)
		}
	case menu.ModeGeneralSettings, menu.ModeVideoSettings:
		s.Adjust(1)
	case menu.ModePlayerSelect:
		switch {
		case s.focus < len(s.players):
			s.push(menu.ModeWorldSelect)
		case s.focus == len(s.players):
			s.players = append(s.players, fmt.Sprintf("Player %d", len(s.players)+1))
		}
	case menu.ModeWorldSelect:
		switch {
		case s.focus < len(s.worlds):
			s.inGame = true
		case s.focus == len(s.worlds):
			s.name = ""
			s.push(menu.ModeWorldCreation)
		}
	case menu.ModeWorldCreation:
		if s.focus == 3 && s.name != "" {
			s.worlds = append(s.worlds, s.name)
			s.Back()
		}
	case menu.ModeDeleteWorld:
		switch s.focus {
		case 1:
			s.worlds = slices.DeleteFunc(s.worlds, func(w string) bool { return w == s.target })
			s.Back()
		case 2:
			s.Back()
		}
	}
	s.publish()
}

// Delete asks to delete the focused world.
func (s *Sandbox) Delete() {
	if s.mode != menu.ModeWorldSelect || s.focus >= len(s.worlds) {
		return
	}
	s.target = s.worlds[s.focus]
	s.push(menu.ModeDeleteWorld)
	s.focus = 2 // Cancel
	s.publish()
}

// Back leaves the world or returns to the previous screen.
func (s *Sandbox) Back() {
	if s.inGame {
		s.inGame = false
		s.publish()
		return
	}
	if len(s.back) == 0 {
		return
	}
	s.mode = s.back[len(s.back)-1]
	s.back = s.back[:len(s.back)-1]
	s.focus = 0
	s.publish()
}

func (s *Sandbox) push(m menu.Mode) {
	s.back = append(s.back, s.mode)
	s.mode = m
	s.focus = 0
}

// Type appends text to the world-name input.
func (s *Sandbox) Type(text string) {
	if !s.Typing() {
		return
	}
	s.name += text
	s.publish()
}

// Backspace removes the last character of the world-name input.
func (s *Sandbox) Backspace() {
	if !s.Typing() || s.name == "" {
		return
	}
	r := []rune(s.name)
	s.name = string(r[:len(r)-1])
	s.publish()
}

// publish writes the menu state where the narrator reads it.
func (s *Sandbox) publish() {
	s.reader.Set(engine.KeyFocusMenu, s.focus)
	s.reader.Set(engine.KeyPlayerNames, slices.Clone(s.players))
	s.reader.Set(engine.KeyWorldNames, slices.Clone(s.worlds))
	s.reader.Set(engine.KeyWorldNameInput, s.name)
	s.reader.Set(engine.KeyDeleteTarget, s.target)

	slider := -1
	switch {
	case s.mode == menu.ModeAudioSettings && s.focus <= 2:
		slider = s.focus
	case s.mode == menu.ModeVideoSettings && s.focus >= 2 && s.focus <= 4:
		slider = s.focus
	}
	s.reader.Set(engine.KeySliderIndex, slider)
}
