// Package menu decides, frame by frame, what the screen reader should say
// about the host's menus. The host emits no change events, so the narrator
// polls focus, hover, slider and label state every frame, infers what
// changed and arbitrates between competing announcements.
package menu

import (
	"fmt"
	"sort"
)

// Mode identifies a host menu screen.
type Mode int

// Known host menu modes.
const (
	ModeTitle             Mode = 0
	ModePlayerSelect      Mode = 1
	ModeCreatePlayer      Mode = 2
	ModeDeletePlayer      Mode = 5
	ModeWorldSelect       Mode = 6
	ModeDeleteWorld       Mode = 9
	ModeLoading           Mode = 10
	ModeSettings          Mode = 14
	ModeWorldCreation     Mode = 16
	ModeAudioSettings     Mode = 26
	ModeVideoSettings     Mode = 111
	ModeGeneralSettings   Mode = 112
	ModeInterfaceSettings Mode = 1112
	ModeModConfig         Mode = 888
)

// ModeInfo contains metadata about a known mode.
type ModeInfo struct {
	Mode  Mode
	Label string
}

var modeLabels = map[Mode]string{
	ModeTitle:             "Main menu",
	ModePlayerSelect:      "Select player",
	ModeCreatePlayer:      "Create player",
	ModeDeletePlayer:      "Delete player",
	ModeWorldSelect:       "Select world",
	ModeDeleteWorld:       "Delete world",
	ModeLoading:           "Loading",
	ModeSettings:          "Settings",
	ModeWorldCreation:     "Create world",
	ModeAudioSettings:     "Audio settings",
	ModeVideoSettings:     "Video settings",
	ModeGeneralSettings:   "General settings",
	ModeInterfaceSettings: "Interface settings",
	ModeModConfig:         "Mod configuration",
}

// String returns the bare label, or "Mode N" for unknown modes.
func (m Mode) String() string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return fmt.Sprintf("Mode %d", int(m))
}

// Known reports whether the mode has a built-in label.
func (m Mode) Known() bool {
	_, ok := modeLabels[m]
	return ok
}

// IsSettings reports whether the mode is one of the settings screens.
func (m Mode) IsSettings() bool {
	switch m {
	case ModeSettings, ModeAudioSettings, ModeVideoSettings, ModeGeneralSettings, ModeInterfaceSettings:
		return true
	}
	return false
}

// IsDeletion reports whether the mode is a deletion confirmation.
func (m Mode) IsDeletion() bool {
	return m == ModeDeletePlayer || m == ModeDeleteWorld
}

// Modes lists every known mode in ascending order.
func Modes() []ModeInfo {
	result := make([]ModeInfo, 0, len(modeLabels))
	for m, label := range modeLabels {
		result = append(result, ModeInfo{Mode: m, Label: label})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Mode < result[j].Mode
	})
	return result
}
