package build

import "github.com/vovakirdan/tui-narrator/internal/core"

// Reach raises the player's tile interaction range to cover the visible
// viewport while build mode is on. The original range is captured once on
// the first expansion and restored once.
type Reach struct {
	tileSize int
	margin   int

	origX, origY int
	saved        bool
}

// NewReach creates a Reach for tiles of tileSize pixels plus margin tiles.
func NewReach(tileSize, margin int) *Reach {
	if tileSize <= 0 {
		tileSize = 16
	}
	return &Reach{tileSize: tileSize, margin: margin}
}

// Expanded reports whether an original range is being held for restore.
func (r *Reach) Expanded() bool {
	return r.saved
}

// Expand sets the player's range to half the viewport span plus the margin,
// never lowering it below the original.
func (r *Reach) Expand(p Player, vp core.Viewport) {
	if !r.saved {
		r.origX, r.origY = p.TileRange()
		r.saved = true
	}
	spanX, spanY := vp.TileSpan(r.tileSize)
	x := core.Max(r.origX, spanX/2+r.margin)
	y := core.Max(r.origY, spanY/2+r.margin)
	if cx, cy := p.TileRange(); cx != x || cy != y {
		p.SetTileRange(x, y)
	}
}

// Restore puts the original range back. Only the first call after an
// expansion does anything.
func (r *Reach) Restore(p Player) bool {
	if !r.saved {
		return false
	}
	p.SetTileRange(r.origX, r.origY)
	r.saved = false
	return true
}
