// Package sim is a scripted stand-in for the host game: an in-memory tile
// world, an inventory-holding player and a runner that feeds recorded menu
// frames and input ticks through the narration and build engines.
package sim

import (
	"github.com/vovakirdan/tui-narrator/internal/build"
	"github.com/vovakirdan/tui-narrator/internal/core"
)

// Grid is an in-memory tile world implementing build.World.
type Grid struct {
	width, height int
	tiles         []build.Tile

	// Hardness is the tool power needed to remove a tile type.
	Hardness map[int]int
}

// NewGrid creates an empty world of width x height tiles.
func NewGrid(width, height int) *Grid {
	width, height = core.Max(width, 0), core.Max(height, 0)
	return &Grid{
		width:    width,
		height:   height,
		tiles:    make([]build.Tile, width*height),
		Hardness: make(map[int]int),
	}
}

// Bounds returns the world rectangle anchored at the origin.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

func (g *Grid) index(x, y int) (int, bool) {
	if !g.Bounds().Contains(x, y) {
		return 0, false
	}
	return y*g.width + x, true
}

// Tile returns the cell at (x, y).
func (g *Grid) Tile(x, y int) (build.Tile, bool) {
	i, ok := g.index(x, y)
	if !ok {
		return build.Tile{}, false
	}
	return g.tiles[i], true
}

// Set overwrites a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t build.Tile) {
	if i, ok := g.index(x, y); ok {
		g.tiles[i] = t
	}
}

// Fill sets every in-bounds cell of r to t.
func (g *Grid) Fill(r core.Rect, t build.Tile) {
	for i := 0; i < r.Area(); i++ {
		p := r.Cell(i)
		g.Set(p.X, p.Y, t)
	}
}

// Count returns how many cells satisfy fn.
func (g *Grid) Count(fn func(build.Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if fn(t) {
			n++
		}
	}
	return n
}

// TryRemoveTile removes a solid tile if power meets its hardness.
func (g *Grid) TryRemoveTile(x, y, power int) bool {
	i, ok := g.index(x, y)
	if !ok || !g.tiles[i].Active || power <= 0 || power < g.Hardness[g.tiles[i].Type] {
		return false
	}
	t := g.tiles[i]
	g.tiles[i] = build.Tile{Wall: t.Wall}
	return true
}

// TryRemoveWall removes the cell's wall.
func (g *Grid) TryRemoveWall(x, y, power int) bool {
	i, ok := g.index(x, y)
	if !ok || g.tiles[i].Wall == 0 || power <= 0 {
		return false
	}
	g.tiles[i].Wall = 0
	return true
}

// TryPlaceTile places a tile into an empty cell.
func (g *Grid) TryPlaceTile(x, y, tileID, style int) bool {
	i, ok := g.index(x, y)
	if !ok || g.tiles[i].Active {
		return false
	}
	g.tiles[i].Active = true
	g.tiles[i].Type = tileID
	g.tiles[i].Style = style
	return true
}

// TryPlaceWall places a wall where there is none.
func (g *Grid) TryPlaceWall(x, y, wallID int) bool {
	i, ok := g.index(x, y)
	if !ok || g.tiles[i].Wall != 0 || wallID == 0 {
		return false
	}
	g.tiles[i].Wall = wallID
	return true
}
