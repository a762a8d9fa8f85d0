package sim

import "github.com/vovakirdan/tui-narrator/internal/build"

// Player is an inventory-holding player implementing build.Player.
type Player struct {
	items          []build.Item
	selected       int
	rangeX, rangeY int
	pickSpeed      float64
	placeSpeed     float64
}

// NewPlayer creates a player holding items with the default reach.
func NewPlayer(items ...build.Item) *Player {
	return &Player{
		items:      append([]build.Item(nil), items...),
		rangeX:     5,
		rangeY:     4,
		pickSpeed:  1,
		placeSpeed: 1,
	}
}

// Inventory returns a copy of the slots.
func (p *Player) Inventory() []build.Item {
	return append([]build.Item(nil), p.items...)
}

func (p *Player) SelectedSlot() int {
	return p.selected
}

// SelectSlot changes the held slot; invalid slots are ignored.
func (p *Player) SelectSlot(slot int) {
	if slot >= 0 && slot < len(p.items) {
		p.selected = slot
	}
}

// ConsumeHeld removes one unit from the held stack, emptying the slot when
// the stack runs out.
func (p *Player) ConsumeHeld() {
	if p.selected < 0 || p.selected >= len(p.items) {
		return
	}
	it := &p.items[p.selected]
	if it.Stack > 0 {
		it.Stack--
	}
	if it.Stack == 0 {
		*it = build.Item{}
	}
}

func (p *Player) TileRange() (int, int) {
	return p.rangeX, p.rangeY
}

func (p *Player) SetTileRange(x, y int) {
	p.rangeX, p.rangeY = x, y
}

func (p *Player) PickSpeed() float64 {
	return p.pickSpeed
}

func (p *Player) PlaceSpeed() float64 {
	return p.placeSpeed
}

// SetSpeeds overrides the tool and placement speed multipliers.
func (p *Player) SetSpeeds(pick, place float64) {
	p.pickSpeed, p.placeSpeed = pick, place
}
