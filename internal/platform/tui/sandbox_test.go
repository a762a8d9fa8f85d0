package tui

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-narrator/internal/engine"
	"github.com/vovakirdan/tui-narrator/internal/menu"
)

func TestSandboxTitle(t *testing.T) {
	s := NewSandbox(engine.NewMapReader(nil))

	if s.Mode() != menu.ModeTitle || s.Focus() != 0 {
		t.Fatalf("start = %v/%d, expected title/0", s.Mode(), s.Focus())
	}
	opts := s.Options()
	if len(opts) != 6 || opts[0] != "Single Player" || opts[5] != "Exit" {
		t.Errorf("Options() = %q", opts)
	}

	s.Move(-1)
	if s.Focus() != 5 {
		t.Errorf("Move(-1) from 0 = %d, expected wrap to 5", s.Focus())
	}
	s.Select()
	if !s.Quit() {
		t.Error("selecting Exit should quit")
	}
}

func TestSandboxAudioSlider(t *testing.T) {
	r := engine.NewMapReader(nil)
	s := NewSandbox(r)

	s.Move(3)
	s.Select() // Settings
	s.Move(3)
	s.Select() // Audio
	if s.Mode() != menu.ModeAudioSettings {
		t.Fatalf("Mode() = %v, expected audio settings", s.Mode())
	}
	if idx, _ := engine.Int(r, engine.KeySliderIndex); idx != 0 {
		t.Errorf("slider index = %d, expected 0", idx)
	}

	s.Adjust(-1)
	if v, _ := engine.Float(r, engine.KeyMusicVolume); math.Abs(v-0.70) > 1e-9 {
		t.Errorf("music volume = %v, expected 0.70", v)
	}
	for i := 0; i < 7; i++ {
		s.Adjust(1)
	}
	if v, _ := engine.Float(r, engine.KeyMusicVolume); v != 1 {
		t.Errorf("music volume = %v, expected clamp at 1", v)
	}

	s.Move(3)
	if idx, _ := engine.Int(r, engine.KeySliderIndex); idx != -1 {
		t.Errorf("slider index on Back = %d, expected -1", idx)
	}
	s.Select()
	if s.Mode() != menu.ModeSettings || s.Focus() != 0 {
		t.Errorf("after Back = %v/%d, expected settings/0", s.Mode(), s.Focus())
	}
	s.Back()
	if s.Mode() != menu.ModeTitle {
		t.Errorf("Back() = %v, expected title", s.Mode())
	}
	s.Back()
	if s.Mode() != menu.ModeTitle {
		t.Error("Back() on the title screen should stay")
	}
}

func TestSandboxVideoChoices(t *testing.T) {
	r := engine.NewMapReader(nil)
	s := NewSandbox(r)
	s.Move(3)
	s.Select()
	s.Move(2)
	s.Select() // Video

	s.Select() // fullscreen toggles
	if on, _ := engine.Bool(r, engine.KeyFullscreen); !on {
		t.Error("Select() on Fullscreen should turn it on")
	}
	s.Move(1)
	s.Adjust(1)
	if res, _ := engine.Text(r, engine.KeyResolution); res != "2560x1440" {
		t.Errorf("resolution = %q, expected 2560x1440", res)
	}
	s.Adjust(1)
	if res, _ := engine.Text(r, engine.KeyResolution); res != "1280x720" {
		t.Errorf("resolution = %q, expected wrap to 1280x720", res)
	}
	if got := s.Options()[1]; got != "Resolution: 1280 by 720" {
		t.Errorf("Options()[1] = %q", got)
	}
}

func TestSandboxWorlds(t *testing.T) {
	r := engine.NewMapReader(nil)
	s := NewSandbox(r)

	s.Select() // Single Player
	if got := s.Options(); len(got) != 3 || got[0] != "Andrew" || got[1] != "New player" {
		t.Fatalf("player options = %q", got)
	}
	s.Select() // Andrew
	if s.Mode() != menu.ModeWorldSelect {
		t.Fatalf("Mode() = %v, expected world select", s.Mode())
	}

	s.Move(1)
	s.Delete()
	if s.Mode() != menu.ModeDeleteWorld || s.Focus() != 2 {
		t.Fatalf("Delete() = %v/%d, expected delete world/2", s.Mode(), s.Focus())
	}
	if target, _ := engine.Text(r, engine.KeyDeleteTarget); target != "Crimson Deep" {
		t.Errorf("delete target = %q", target)
	}
	s.Move(-1)
	s.Select()
	if s.Mode() != menu.ModeWorldSelect {
		t.Fatalf("Mode() = %v, expected world select", s.Mode())
	}
	if got := s.Options(); len(got) != 3 || got[0] != "Forest Hill" {
		t.Errorf("world options = %q", got)
	}

	s.Move(1)
	s.Select() // New world
	if !s.Typing() {
		t.Fatal("world creation should start on the name field")
	}
	s.Type("Ab")
	s.Backspace()
	if name, _ := engine.Text(r, engine.KeyWorldNameInput); name != "A" {
		t.Errorf("name input = %q, expected A", name)
	}

	s.Move(3)
	if s.Typing() {
		t.Error("Typing() should be off away from the name field")
	}
	s.Type("ignored")
	s.Select() // Create
	if got := s.Options(); len(got) != 4 || got[1] != "A" {
		t.Errorf("world options = %q", got)
	}

	s.Select()
	if !s.InGame() {
		t.Fatal("selecting a world should enter the game")
	}
	if s.Context(time.Now()).Active {
		t.Error("menu context should be inactive in game")
	}
	s.Back()
	if s.InGame() || !s.Context(time.Now()).Active {
		t.Error("Back() should leave the game")
	}
}
