package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the build controller to work with intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionToggleBuild        // B - toggle build mode
	ActionPlaceCorner        // dedicated corner key
	ActionQuickMount         // gamepad quick-mount button, re-bound to corner placement in build mode
	ActionMouseLeft          // left mouse button is down (level, not edge)
	ActionUse                // use-item input is held
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleBuild:
		return "ToggleBuild"
	case ActionPlaceCorner:
		return "PlaceCorner"
	case ActionQuickMount:
		return "QuickMount"
	case ActionMouseLeft:
		return "MouseLeft"
	case ActionUse:
		return "Use"
	default:
		return "Unknown"
	}
}

// ParseAction maps a script/action name back to its Action.
func ParseAction(name string) (Action, bool) {
	for a := ActionToggleBuild; a <= ActionUse; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
