package sim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-narrator/internal/build"
	"github.com/vovakirdan/tui-narrator/internal/core"
)

// Script is a recorded host session: menu frames followed by build mode
// input ticks.
type Script struct {
	Name  string       `yaml:"name"`
	Menu  []MenuFrame  `yaml:"menu"`
	Build *BuildScript `yaml:"build"`
}

// MenuFrame is one rendered menu frame. State and hover persist across
// frames until changed.
type MenuFrame struct {
	At     time.Duration  `yaml:"at"`     // offset from the session start
	Active *bool          `yaml:"active"` // defaults to true
	Mode   int            `yaml:"mode"`
	Root   string         `yaml:"root"` // label of the UI root; empty means none
	State  map[string]any `yaml:"state"`
	Hover  *HoverSpec     `yaml:"hover"`
	// Unhover clears the hovered element.
	Unhover bool `yaml:"unhover"`
}

// HoverSpec describes the hovered UI element.
type HoverSpec struct {
	ID    string   `yaml:"id"`
	Label string   `yaml:"label"`
	Value *float64 `yaml:"value"`
}

// BuildScript sets up a world and player and lists input ticks.
type BuildScript struct {
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Fill      []FillSpec   `yaml:"fill"`
	Hardness  map[int]int  `yaml:"hardness"` // tool power needed per tile type
	Inventory []ItemSpec   `yaml:"inventory"`
	Selected  int          `yaml:"selected"`
	Viewport  ViewportSpec `yaml:"viewport"`
	Ticks     []TickSpec   `yaml:"ticks"`
}

// FillSpec fills a rectangle of the world.
type FillSpec struct {
	X        int  `yaml:"x"`
	Y        int  `yaml:"y"`
	W        int  `yaml:"w"`
	H        int  `yaml:"h"`
	Type     int  `yaml:"type"`
	Solid    bool `yaml:"solid"`
	Wall     int  `yaml:"wall"`
	NeedsAxe bool `yaml:"needs_axe"`
}

// ItemSpec is an inventory slot.
type ItemSpec struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Stack      int    `yaml:"stack"`
	Consumable bool   `yaml:"consumable"`
	Pick       int    `yaml:"pick"`
	Axe        int    `yaml:"axe"`
	Hammer     int    `yaml:"hammer"`
	Tile       *int   `yaml:"tile"`
	Style      int    `yaml:"style"`
	Wall       int    `yaml:"wall"`
	UseTime    int    `yaml:"use_time"`
}

// ViewportSpec is the visible screen area.
type ViewportSpec struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Zoom   float64 `yaml:"zoom"`
}

// TickSpec is one simulation tick, optionally repeated.
type TickSpec struct {
	Press   []string `yaml:"press"`   // held for this tick only
	Hold    []string `yaml:"hold"`    // held from this tick on
	Release []string `yaml:"release"` // stop holding
	Cursor  []int    `yaml:"cursor"`  // [x, y], persists
	Moved   bool     `yaml:"moved"`
	Hurt    bool     `yaml:"hurt"`
	Gamepad bool     `yaml:"gamepad"`
	Repeat  int      `yaml:"repeat"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("sim: %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks frame ordering and action names.
func (s *Script) Validate() error {
	var last time.Duration
	for i, f := range s.Menu {
		if f.At < last {
			return fmt.Errorf("menu frame %d: at %v is before the previous frame", i, f.At)
		}
		last = f.At
	}
	if s.Build == nil {
		return nil
	}
	if s.Build.Width <= 0 || s.Build.Height <= 0 {
		return fmt.Errorf("build: world size %dx%d must be positive", s.Build.Width, s.Build.Height)
	}
	for i, t := range s.Build.Ticks {
		for _, names := range [][]string{t.Press, t.Hold, t.Release} {
			if _, err := parseActions(names); err != nil {
				return fmt.Errorf("build tick %d: %w", i, err)
			}
		}
		if len(t.Cursor) != 0 && len(t.Cursor) != 2 {
			return fmt.Errorf("build tick %d: cursor needs [x, y]", i)
		}
		if t.Repeat < 0 {
			return fmt.Errorf("build tick %d: negative repeat", i)
		}
	}
	return nil
}

func parseActions(names []string) ([]core.Action, error) {
	out := make([]core.Action, 0, len(names))
	for _, name := range names {
		a, ok := core.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		out = append(out, a)
	}
	return out, nil
}

// Item converts the spec to a build item.
func (it ItemSpec) Item() build.Item {
	out := build.Item{
		ID:          it.ID,
		Name:        it.Name,
		Stack:       it.Stack,
		Consumable:  it.Consumable,
		PickPower:   it.Pick,
		AxePower:    it.Axe,
		HammerPower: it.Hammer,
		TileStyle:   it.Style,
		WallID:      it.Wall,
		PlacesWall:  it.Wall != 0,
		UseTime:     it.UseTime,
	}
	if it.Tile != nil {
		out.PlacesTile, out.TileID = true, *it.Tile
	}
	if out.Stack == 0 && out.ID != 0 {
		out.Stack = 1
	}
	return out
}

// NewGrid builds the scripted world.
func (b *BuildScript) NewGrid() *Grid {
	g := NewGrid(b.Width, b.Height)
	for k, v := range b.Hardness {
		g.Hardness[k] = v
	}
	for _, f := range b.Fill {
		w, h := core.Max(f.W, 1), core.Max(f.H, 1)
		g.Fill(core.NewRect(f.X, f.Y, w, h), build.Tile{
			Active:   f.Solid,
			Type:     f.Type,
			Wall:     f.Wall,
			NeedsAxe: f.NeedsAxe,
		})
	}
	return g
}

// NewPlayer builds the scripted player.
func (b *BuildScript) NewPlayer() *Player {
	items := make([]build.Item, len(b.Inventory))
	for i, spec := range b.Inventory {
		items[i] = spec.Item()
	}
	p := NewPlayer(items...)
	p.SelectSlot(b.Selected)
	return p
}

// viewport returns the configured viewport, defaulting to 1080p.
func (b *BuildScript) viewport() core.Viewport {
	vp := core.Viewport{Width: b.Viewport.Width, Height: b.Viewport.Height, Zoom: b.Viewport.Zoom}
	if vp.Width <= 0 || vp.Height <= 0 {
		vp.Width, vp.Height = 1920, 1080
	}
	if vp.Zoom <= 0 {
		vp.Zoom = 1
	}
	return vp
}
