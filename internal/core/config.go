package core

import "math"

// RuntimeConfig contains configuration passed to the sandbox host at start.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Viewport describes the host's visible world area in pixels.
type Viewport struct {
	Width  int     // Screen width in pixels
	Height int     // Screen height in pixels
	Zoom   float64 // World zoom factor; values <= 0 are treated as 1
}

// TileSpan returns how many tiles fit across the viewport horizontally and
// vertically, rounded up.
func (v Viewport) TileSpan(tileSize int) (int, int) {
	if tileSize <= 0 {
		return 0, 0
	}
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w := math.Ceil(float64(v.Width) / zoom / float64(tileSize))
	h := math.Ceil(float64(v.Height) / zoom / float64(tileSize))
	return int(w), int(h)
}
