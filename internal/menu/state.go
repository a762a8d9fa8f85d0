package menu

import "time"

// State is the narrator's durable memory between frames. It is owned by a
// single Narrator and mutated only from its frame update.
type State struct {
	active bool

	lastMode Mode
	hasMode  bool

	lastFocus      Focus
	hasFocus       bool
	lastFocusLabel string // label of lastFocus, spoken or not

	lastFocusText string // last focus text actually spoken
	lastFocusAt   time.Time
	lastHoverKey  string
	lastHoverText string
	lastHoverAt   time.Time
	lastModeText  string
	lastModeAt    time.Time
	lastSpoken    string
	lastBackAt    time.Time

	sawHover          bool
	focusAnnounced    bool
	announcedFallback bool
	forceNextFocus    bool

	sliderValues   map[SliderKind]int
	lastSliderKind SliderKind
	lastSliderID   string
	hasSlider      bool

	modeEnteredAt time.Time
	focusFailures int
}

// ResetForMode clears per-mode tracking when the menu mode changes. The next
// focus resolution is always announced.
func (s *State) ResetForMode(mode Mode, now time.Time) {
	s.active = true
	s.lastMode, s.hasMode = mode, true

	s.lastFocus, s.hasFocus = Focus{}, false
	s.lastFocusLabel = ""
	s.lastFocusText, s.lastFocusAt = "", time.Time{}
	s.lastHoverKey = ""
	s.lastBackAt = time.Time{}

	s.sawHover = false
	s.focusAnnounced = false
	s.announcedFallback = false
	s.forceNextFocus = true

	s.resetSlider()
	s.sliderValues = make(map[SliderKind]int)

	s.modeEnteredAt = now
	s.focusFailures = 0
}

// ResetAll forgets everything; used when the menu system closes.
func (s *State) ResetAll() {
	*s = State{}
}

func (s *State) resetSlider() {
	s.lastSliderKind = SliderUnknown
	s.lastSliderID = ""
	s.hasSlider = false
}

// Mode returns the mode the state is tracking.
func (s State) Mode() (Mode, bool) {
	return s.lastMode, s.hasMode
}

// Focus returns the last resolved focus.
func (s State) Focus() (Focus, bool) {
	return s.lastFocus, s.hasFocus
}

// SawHover reports whether a hover was announced since the mode was entered.
func (s State) SawHover() bool {
	return s.sawHover
}

// ForceNextFocus reports whether the next focus will be announced regardless of change.
func (s State) ForceNextFocus() bool {
	return s.forceNextFocus
}

// SliderValue returns the cached last announced value of a slider kind.
func (s State) SliderValue(kind SliderKind) (int, bool) {
	v, ok := s.sliderValues[kind]
	return v, ok
}

// FocusFailures returns the consecutive focus-resolution failure count.
func (s State) FocusFailures() int {
	return s.focusFailures
}
