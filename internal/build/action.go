package build

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/textnorm"
)

// ActiveAction is the progress of applying one item to one selection.
type ActiveAction struct {
	Rect     core.Rect
	Kind     ActionKind
	ItemID   int
	ItemName string

	// Index is the linear row-major progress, 0..Rect.Area().
	Index int

	TilesCleared int
	WallsCleared int
	TilesPlaced  int
	WallsPlaced  int

	Announced bool
	Cooldown  int
	Tool      ToolSwap

	attempts int // failed attempts on the current cell
	active   bool
}

// Active reports whether an action is in progress or finished but not reset.
func (a *ActiveAction) Active() bool {
	return a.active
}

// Done reports whether every cell has been visited.
func (a *ActiveAction) Done() bool {
	return a.active && a.Index >= a.Rect.Area()
}

func (a *ActiveAction) start(rect core.Rect, kind ActionKind, it Item) {
	tool := a.Tool
	*a = ActiveAction{
		Rect:     rect,
		Kind:     kind,
		ItemID:   it.ID,
		ItemName: textnorm.Clean(it.Name),
		Tool:     tool,
		active:   true,
	}
}

// advance moves to the next cell.
func (a *ActiveAction) advance() {
	a.Index++
	a.attempts = 0
}

// Summary is the completion announcement.
func (a *ActiveAction) Summary() string {
	switch a.Kind {
	case ActionClear:
		var parts []string
		if a.TilesCleared > 0 {
			parts = append(parts, plural(a.TilesCleared, "tile"))
		}
		if a.WallsCleared > 0 {
			parts = append(parts, plural(a.WallsCleared, "wall"))
		}
		if len(parts) == 0 {
			return "Nothing to clear."
		}
		return "Cleared " + strings.Join(parts, " and ") + "."
	case ActionPlaceTile, ActionPlaceWall:
		placed, unit := a.TilesPlaced, "tile"
		if a.Kind == ActionPlaceWall {
			placed, unit = a.WallsPlaced, "wall"
		}
		name := a.ItemName
		if name == "" {
			name = "item"
		}
		if placed == 0 {
			return "Could not place " + name + "."
		}
		return fmt.Sprintf("Placed %s of %s.", plural(placed, unit), name)
	}
	return ""
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ClearCooldown is the tick delay after a clear attempt.
func ClearCooldown(useTime int, pickSpeed float64) int {
	if pickSpeed <= 0 {
		pickSpeed = 1
	}
	return core.Max(1, int(math.Ceil(float64(useTime)*pickSpeed)))
}

// PlaceCooldown is the tick delay after a placement attempt.
func PlaceCooldown(useTime int, placeSpeed float64) int {
	if placeSpeed <= 0 {
		return core.Max(1, useTime)
	}
	return core.Max(1, int(math.Ceil(float64(useTime)/placeSpeed)))
}
