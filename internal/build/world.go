// Package build implements build mode: the player marks a rectangle of tiles
// with two corners and the held tool, block or wall is applied to every cell
// of it, one cell per simulation tick.
package build

import "github.com/vovakirdan/tui-narrator/internal/core"

// Tile is a snapshot of one world cell.
type Tile struct {
	Active   bool // a solid tile occupies the cell
	Type     int
	Style    int
	Wall     int // 0 means no wall
	NeedsAxe bool
}

// World is the host's tile grid. Mutations report success and never panic.
type World interface {
	Bounds() core.Rect
	Tile(x, y int) (Tile, bool)
	TryRemoveTile(x, y, power int) bool
	TryRemoveWall(x, y, power int) bool
	TryPlaceTile(x, y, tileID, style int) bool
	TryPlaceWall(x, y, wallID int) bool
}

// Item describes an inventory item.
type Item struct {
	ID         int
	Name       string
	Stack      int
	Consumable bool

	PickPower   int
	AxePower    int
	HammerPower int

	PlacesTile bool
	TileID     int
	TileStyle  int
	PlacesWall bool
	WallID     int

	UseTime int // ticks per use
}

// Empty reports whether the slot holds nothing.
func (it Item) Empty() bool {
	return it.ID == 0 || it.Stack <= 0
}

// ActionKind is what an item does to a selection.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClear
	ActionPlaceTile
	ActionPlaceWall
)

// String returns the kind's name.
func (k ActionKind) String() string {
	switch k {
	case ActionClear:
		return "Clear"
	case ActionPlaceTile:
		return "PlaceTile"
	case ActionPlaceWall:
		return "PlaceWall"
	default:
		return "None"
	}
}

// KindOf derives the action from an item's tool flags.
func KindOf(it Item) ActionKind {
	switch {
	case it.Empty():
		return ActionNone
	case it.PickPower > 0 || it.AxePower > 0 || it.HammerPower > 0:
		return ActionClear
	case it.PlacesTile:
		return ActionPlaceTile
	case it.PlacesWall:
		return ActionPlaceWall
	}
	return ActionNone
}

// Player is the host player as seen by build mode.
type Player interface {
	// Inventory returns the hotbar and inventory slots. Empty slots are zero Items.
	Inventory() []Item
	SelectedSlot() int
	SelectSlot(slot int)
	// ConsumeHeld removes one unit of the held item.
	ConsumeHeld()

	// TileRange is the reach in tiles for block interaction.
	TileRange() (x, y int)
	SetTileRange(x, y int)

	PickSpeed() float64  // multiplier applied to tool use time
	PlaceSpeed() float64 // placement speed multiplier
}

// HeldItem returns the item in the player's selected slot.
func HeldItem(p Player) (Item, bool) {
	inv := p.Inventory()
	slot := p.SelectedSlot()
	if slot < 0 || slot >= len(inv) || inv[slot].Empty() {
		return Item{}, false
	}
	return inv[slot], true
}
