package menu

import (
	"time"

	"github.com/vovakirdan/tui-narrator/internal/uiprobe"
)

// Context is the per-frame snapshot handed to the narrator.
// It is rebuilt from engine globals every frame and never stored.
type Context struct {
	Active bool // the menu system is showing
	Mode   Mode
	Root   uiprobe.Root // current UI root, may be nil
	Now    time.Time
}

// Kind classifies an announcement.
type Kind int

const (
	KindModeChanged Kind = iota
	KindHover
	KindFocus
	KindSlider
	KindWorldCreation
	KindModConfig
	KindSpecialFeature
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindModeChanged:
		return "ModeChanged"
	case KindHover:
		return "Hover"
	case KindFocus:
		return "Focus"
	case KindSlider:
		return "Slider"
	case KindWorldCreation:
		return "WorldCreation"
	case KindModConfig:
		return "ModConfig"
	case KindSpecialFeature:
		return "SpecialFeature"
	default:
		return "Unknown"
	}
}

// Event is one announcement decided by the narrator.
type Event struct {
	Text string
	// Force asks the sink to speak even if the text equals the last utterance.
	Force bool
	Kind  Kind
}

// FocusSource tags which signal produced a Focus.
type FocusSource int

const (
	FocusNone FocusSource = iota
	FocusExplicit
	FocusSelected
	FocusScaleDelta
	FocusScaleMax
	FocusLegacy
	FocusSlider
)

// String returns the source's name.
func (s FocusSource) String() string {
	switch s {
	case FocusExplicit:
		return "explicit"
	case FocusSelected:
		return "selected"
	case FocusScaleDelta:
		return "scale-delta"
	case FocusScaleMax:
		return "scale-max"
	case FocusLegacy:
		return "legacy"
	case FocusSlider:
		return "slider"
	default:
		return "none"
	}
}

// Inferred reports whether the focus was guessed from visual scales rather
// than read from an explicit field.
func (s FocusSource) Inferred() bool {
	return s == FocusScaleDelta || s == FocusScaleMax
}

// Focus is the option that currently has keyboard/gamepad focus.
type Focus struct {
	Index  int
	Source FocusSource
}
