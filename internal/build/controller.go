package build

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/logging"
)

// Options tunes the controller.
type Options struct {
	TileSize        int // pixels per tile, for viewport reach
	ViewportMargin  int // extra tiles of reach beyond the viewport
	HurtGraceTicks  int // ticks actions stay paused after taking damage
	MaxCellAttempts int // failed attempts before a cell is skipped

	// WallExcludedTiles are tile types walls are never placed behind.
	WallExcludedTiles []int
}

// DefaultOptions returns the standard tunables.
func DefaultOptions() Options {
	return Options{
		TileSize:          16,
		ViewportMargin:    2,
		HurtGraceTicks:    30,
		MaxCellAttempts:   10,
		WallExcludedTiles: []int{21},
	}
}

// EventKind classifies build mode announcements.
type EventKind int

const (
	EventToggle EventKind = iota
	EventCorner
	EventSelection
	EventCompletion
)

// String returns the kind's name.
func (k EventKind) String() string {
	switch k {
	case EventToggle:
		return "Toggle"
	case EventCorner:
		return "Corner"
	case EventSelection:
		return "Selection"
	case EventCompletion:
		return "Completion"
	default:
		return "Unknown"
	}
}

// Event is one build mode announcement.
type Event struct {
	Text  string
	Force bool
	Kind  EventKind
}

// TickInput is the raw input state of one simulation tick.
type TickInput struct {
	Input    core.InputFrame // actions held this tick
	Cursor   core.Point      // tile under the cursor
	Gamepad  bool
	Moved    bool
	Hurt     bool
	Viewport core.Viewport
}

// Controller runs build mode for one player. It is driven from the host's
// simulation loop and is not safe for concurrent use.
type Controller struct {
	opts   Options
	world  World
	player Player
	logger *log.Logger

	enabled     bool
	sel         Selection
	action      ActiveAction
	reach       *Reach
	prev        core.InputFrame
	hurtGrace   int
	needRelease bool // an interrupted action waits for use to be released
	excluded    map[int]bool
}

// NewController creates a controller acting on world for player.
func NewController(world World, player Player, opts Options, logger *log.Logger) *Controller {
	logger = logging.OrDiscard(logger)
	if opts.MaxCellAttempts <= 0 {
		opts.MaxCellAttempts = 1
	}
	excluded := make(map[int]bool, len(opts.WallExcludedTiles))
	for _, t := range opts.WallExcludedTiles {
		excluded[t] = true
	}
	return &Controller{
		opts:     opts,
		world:    world,
		player:   player,
		logger:   logger,
		reach:    NewReach(opts.TileSize, opts.ViewportMargin),
		prev:     core.NewInputFrame(),
		excluded: excluded,
	}
}

// Enabled reports whether build mode is on.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// State returns the corner-placement phase.
func (c *Controller) State() SelectionState {
	if !c.enabled {
		return Inactive
	}
	return c.sel.State()
}

// Selection returns the current corners.
func (c *Controller) Selection() Selection {
	return c.sel
}

// Action returns a copy of the active action.
func (c *Controller) Action() ActiveAction {
	return c.action
}

// ProcessTick advances build mode by one simulation tick.
func (c *Controller) ProcessTick(in TickInput) []Event {
	pressed := func(a core.Action) bool {
		return in.Input.Has(a) && !c.prev.Has(a)
	}
	defer func() { c.prev = in.Input.Clone() }()

	var events []Event
	if pressed(core.ActionToggleBuild) {
		if c.enabled {
			return append(events, c.disable())
		}
		c.enabled = true
		c.sel.Clear()
		c.logger.Debug("build mode enabled")
		events = append(events, Event{Text: "Build mode on", Force: true, Kind: EventToggle})
	}
	if !c.enabled {
		return events
	}

	c.reach.Expand(c.player, in.Viewport)

	if in.Hurt {
		c.hurtGrace = c.opts.HurtGraceTicks
		c.interrupt("hurt")
	} else if c.hurtGrace > 0 {
		c.hurtGrace--
	}
	if in.Moved {
		c.interrupt("moved")
	}

	click := !in.Gamepad && pressed(core.ActionMouseLeft) && c.sel.State() != HasSelection
	place := click || pressed(core.ActionPlaceCorner) || (in.Gamepad && pressed(core.ActionQuickMount))
	if place {
		// the click that completes a selection must not also start using it
		c.needRelease = click
		return append(events, c.placeCorner(in.Cursor))
	}

	use := in.Input.Has(core.ActionUse) ||
		(!in.Gamepad && in.Input.Has(core.ActionMouseLeft) && c.sel.State() == HasSelection)
	if !use {
		c.needRelease = false
		if c.action.Active() {
			c.resetAction("use released")
		}
		return events
	}
	if c.needRelease || c.hurtGrace > 0 {
		return events
	}

	if ev, ok := c.step(); ok {
		events = append(events, ev)
	}
	return events
}

func (c *Controller) disable() Event {
	c.resetAction("build mode off")
	c.reach.Restore(c.player)
	c.sel.Clear()
	c.enabled = false
	c.hurtGrace = 0
	c.needRelease = false
	c.logger.Debug("build mode disabled")
	return Event{Text: "Build mode off", Force: true, Kind: EventToggle}
}

func (c *Controller) placeCorner(p core.Point) Event {
	c.sel.Place(p)
	c.resetAction("selection changed")
	if rect, ok := c.sel.Rect(); ok {
		c.logger.Debug("selection complete", "rect", rect)
		return Event{
			Text:  fmt.Sprintf("Selection is %d by %d tiles.", rect.W, rect.H),
			Force: true,
			Kind:  EventSelection,
		}
	}
	c.logger.Debug("first corner placed", "at", p)
	return Event{Text: fmt.Sprintf("First corner set at %s.", p), Force: true, Kind: EventCorner}
}

// interrupt drops the action and zeroes its cooldown; the player must
// release use before the action starts again.
func (c *Controller) interrupt(reason string) {
	if c.action.Active() {
		c.resetAction(reason)
		c.needRelease = true
	}
}

func (c *Controller) resetAction(reason string) {
	if !c.action.Active() && !c.action.Tool.Pending() {
		return
	}
	c.action.Tool.Revert(c.player)
	c.logger.Debug("build action reset", "reason", reason, "index", c.action.Index)
	c.action = ActiveAction{}
}

// baseItem is the item the player chose, ignoring an automatic tool swap.
func (c *Controller) baseItem() (Item, bool) {
	if slot, ok := c.action.Tool.Original(); ok {
		inv := c.player.Inventory()
		if slot >= 0 && slot < len(inv) && !inv[slot].Empty() {
			return inv[slot], true
		}
		return Item{}, false
	}
	return HeldItem(c.player)
}

// step runs the active action for one tick.
func (c *Controller) step() (Event, bool) {
	rect, ok := c.sel.Rect()
	if !ok {
		return Event{}, false
	}
	item, ok := c.baseItem()
	kind := KindOf(item)
	if !ok || kind == ActionNone {
		if c.action.Active() {
			c.resetAction("no usable item")
		}
		return Event{}, false
	}

	a := &c.action
	if !a.Active() || a.Rect != rect || a.Kind != kind || a.ItemID != item.ID {
		c.resetAction("action changed")
		a.start(rect, kind, item)
		c.logger.Debug("build action started", "kind", kind, "item", a.ItemName, "rect", rect)
	}
	if a.Announced {
		return Event{}, false
	}

	if a.Cooldown > 0 {
		a.Cooldown--
	}
	if a.Cooldown == 0 {
		c.processNextCell()
	}

	if a.Index >= rect.Area() {
		a.Announced = true
		a.Tool.Revert(c.player)
		summary := a.Summary()
		c.logger.Debug("build action complete", "summary", summary)
		return Event{Text: summary, Force: true, Kind: EventCompletion}, true
	}
	return Event{}, false
}

// processNextCell works on the next in-bounds cell. Out-of-bounds cells are
// skipped without using up the tick.
func (c *Controller) processNextCell() {
	a := &c.action
	bounds := c.world.Bounds()
	for a.Index < a.Rect.Area() {
		p := a.Rect.Cell(a.Index)
		if !bounds.Contains(p.X, p.Y) {
			a.advance()
			continue
		}
		tile, ok := c.world.Tile(p.X, p.Y)
		if !ok {
			a.advance()
			continue
		}

		var done, changed bool
		switch a.Kind {
		case ActionClear:
			done, changed = c.clearCell(p, tile)
		case ActionPlaceTile:
			done, changed = c.placeTile(p, tile)
		case ActionPlaceWall:
			done, changed = c.placeWall(p, tile)
		}

		switch {
		case done:
			a.advance()
		case !changed:
			a.attempts++
			if a.attempts >= c.opts.MaxCellAttempts {
				c.logger.Debug("skipping stubborn cell", "at", p, "attempts", a.attempts)
				a.advance()
			}
		}
		return
	}
}

func toolPower(it Item, t Tile) int {
	if t.NeedsAxe {
		return it.AxePower
	}
	return it.PickPower
}

func (c *Controller) clearWork(it Item, t Tile) (tile, wall bool) {
	return t.Active && toolPower(it, t) > 0, t.Wall != 0 && it.HammerPower > 0
}

// clearCell reports whether the cell needs no more work and whether the
// attempt changed it.
func (c *Controller) clearCell(p core.Point, t Tile) (done, changed bool) {
	a := &c.action
	held, _ := HeldItem(c.player)
	switch {
	case t.Active && t.NeedsAxe && held.AxePower == 0:
		if slot, ok := BestAxe(c.player.Inventory()); ok {
			a.Tool.SwapTo(c.player, slot)
			held, _ = HeldItem(c.player)
			c.logger.Debug("swapped to axe", "slot", slot)
		}
	case a.Tool.Pending() && !(t.Active && t.NeedsAxe):
		a.Tool.Revert(c.player)
		held, _ = HeldItem(c.player)
	}

	doTile, doWall := c.clearWork(held, t)
	if !doTile && !doWall {
		return true, false
	}

	if doTile {
		c.world.TryRemoveTile(p.X, p.Y, toolPower(held, t))
		if after, ok := c.world.Tile(p.X, p.Y); ok && !after.Active {
			a.TilesCleared++
			changed = true
		}
	}
	if doWall {
		c.world.TryRemoveWall(p.X, p.Y, held.HammerPower)
		if after, ok := c.world.Tile(p.X, p.Y); ok && after.Wall == 0 {
			a.WallsCleared++
			changed = true
		}
	}
	a.Cooldown = ClearCooldown(held.UseTime, c.player.PickSpeed())

	after, _ := c.world.Tile(p.X, p.Y)
	moreTile, moreWall := c.clearWork(held, after)
	return !moreTile && !moreWall, changed
}

func (c *Controller) placeTile(p core.Point, t Tile) (done, changed bool) {
	a := &c.action
	held, ok := HeldItem(c.player)
	if !ok {
		a.Index = a.Rect.Area() - 1
		return true, false
	}
	if t.Active {
		// Occupied, possibly by the very tile we place.
		return true, false
	}

	c.world.TryPlaceTile(p.X, p.Y, held.TileID, held.TileStyle)
	a.Cooldown = PlaceCooldown(held.UseTime, c.player.PlaceSpeed())
	after, ok := c.world.Tile(p.X, p.Y)
	if !ok || !after.Active || after.Type != held.TileID {
		return false, false
	}
	a.TilesPlaced++
	c.consume(held)
	return true, true
}

func (c *Controller) placeWall(p core.Point, t Tile) (done, changed bool) {
	a := &c.action
	held, ok := HeldItem(c.player)
	if !ok {
		a.Index = a.Rect.Area() - 1
		return true, false
	}
	if t.Wall == held.WallID || (t.Active && c.excluded[t.Type]) {
		return true, false
	}

	c.world.TryPlaceWall(p.X, p.Y, held.WallID)
	a.Cooldown = PlaceCooldown(held.UseTime, c.player.PlaceSpeed())
	after, ok := c.world.Tile(p.X, p.Y)
	if !ok || after.Wall != held.WallID {
		return false, false
	}
	a.WallsPlaced++
	c.consume(held)
	return true, true
}

// consume uses up one placed item; running out ends the action early.
func (c *Controller) consume(held Item) {
	if !held.Consumable {
		return
	}
	c.player.ConsumeHeld()
	if _, ok := HeldItem(c.player); !ok {
		c.logger.Debug("ran out of item", "item", held.Name)
		c.action.Index = c.action.Rect.Area() - 1
	}
}
