package build

import "github.com/vovakirdan/tui-narrator/internal/core"

// SelectionState is the corner-placement phase of build mode.
type SelectionState int

const (
	Inactive SelectionState = iota
	AwaitingFirstCorner
	AwaitingSecondCorner
	HasSelection
)

// String returns the state's name.
func (s SelectionState) String() string {
	switch s {
	case AwaitingFirstCorner:
		return "AwaitingFirstCorner"
	case AwaitingSecondCorner:
		return "AwaitingSecondCorner"
	case HasSelection:
		return "HasSelection"
	default:
		return "Inactive"
	}
}

// Selection holds up to two tile corners.
type Selection struct {
	first, second       core.Point
	hasFirst, hasSecond bool
}

// Place records a corner. A third corner starts a new selection with the
// point as its first corner.
func (s *Selection) Place(p core.Point) {
	switch {
	case !s.hasFirst:
		s.first, s.hasFirst = p, true
	case !s.hasSecond:
		s.second, s.hasSecond = p, true
	default:
		s.first, s.hasFirst = p, true
		s.second, s.hasSecond = core.Point{}, false
	}
}

// Clear drops both corners.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Corners returns the corners placed so far.
func (s Selection) Corners() (first core.Point, hasFirst bool, second core.Point, hasSecond bool) {
	return s.first, s.hasFirst, s.second, s.hasSecond
}

// Rect returns the inclusive rectangle spanned by both corners. It exists
// only when both corners are set and is always at least 1x1.
func (s Selection) Rect() (core.Rect, bool) {
	if !s.hasFirst || !s.hasSecond {
		return core.Rect{}, false
	}
	return core.RectFromCorners(s.first, s.second), true
}

// State reports the corner-placement phase for an active build mode.
func (s Selection) State() SelectionState {
	switch {
	case s.hasFirst && s.hasSecond:
		return HasSelection
	case s.hasFirst:
		return AwaitingSecondCorner
	default:
		return AwaitingFirstCorner
	}
}
