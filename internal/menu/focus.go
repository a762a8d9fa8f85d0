package menu

import "github.com/vovakirdan/tui-narrator/internal/engine"

// DefaultScaleEpsilon is the smallest per-frame scale growth treated as a
// focus transition.
const DefaultScaleEpsilon = 0.005

// FocusResolver works out which option has focus from a prioritized list of
// engine signals. It keeps the previous frame's scale array for delta
// detection and the last reported legacy focus value.
type FocusResolver struct {
	reader     engine.Reader
	epsilon    float64
	prevScales []float64
	lastLegacy int
	hasLegacy  bool
}

// NewFocusResolver creates a resolver. epsilon <= 0 uses DefaultScaleEpsilon.
func NewFocusResolver(r engine.Reader, epsilon float64) *FocusResolver {
	if epsilon <= 0 {
		epsilon = DefaultScaleEpsilon
	}
	return &FocusResolver{reader: r, epsilon: epsilon}
}

// Reset forgets the scale snapshot and legacy value.
func (f *FocusResolver) Reset() {
	f.prevScales = nil
	f.lastLegacy = 0
	f.hasLegacy = false
}

// TryGetFocus resolves the focused option. Signals, first hit wins:
// explicit focus field, selection field, largest scale increase since last
// frame, single largest scale, then the legacy focus field (reported only
// when its value changes). The scale array is snapshotted on every call.
func (f *FocusResolver) TryGetFocus() (Focus, bool) {
	scales, hasScales := engine.Floats(f.reader, engine.KeyItemScales)
	prev := f.prevScales
	if hasScales {
		f.prevScales = scales
	} else {
		f.prevScales = nil
	}

	if idx, ok := engine.Int(f.reader, engine.KeyFocusMenu); ok && idx >= 0 {
		return Focus{Index: idx, Source: FocusExplicit}, true
	}
	if idx, ok := engine.Int(f.reader, engine.KeySelectedMenu); ok && idx >= 0 {
		return Focus{Index: idx, Source: FocusSelected}, true
	}

	if hasScales {
		if idx, ok := f.largestIncrease(prev, scales); ok {
			return Focus{Index: idx, Source: FocusScaleDelta}, true
		}
		if idx, ok := f.singleLargest(scales); ok {
			return Focus{Index: idx, Source: FocusScaleMax}, true
		}
	}

	if idx, ok := engine.Int(f.reader, engine.KeyLegacyFocus); ok && idx >= 0 {
		if !f.hasLegacy || idx != f.lastLegacy {
			f.lastLegacy, f.hasLegacy = idx, true
			return Focus{Index: idx, Source: FocusLegacy}, true
		}
	}
	return Focus{}, false
}

func (f *FocusResolver) largestIncrease(prev, cur []float64) (int, bool) {
	if prev == nil {
		return 0, false
	}
	best, bestDelta := -1, f.epsilon
	for i := 0; i < len(cur) && i < len(prev); i++ {
		if d := cur[i] - prev[i]; d > bestDelta {
			best, bestDelta = i, d
		}
	}
	return best, best >= 0
}

func (f *FocusResolver) singleLargest(scales []float64) (int, bool) {
	best, bestScale, tied := -1, 0.0, false
	for i, s := range scales {
		switch {
		case s > bestScale+f.epsilon:
			best, bestScale, tied = i, s, false
		case best >= 0 && s > bestScale-f.epsilon:
			tied = true
		}
	}
	if best < 0 || tied {
		return 0, false
	}
	return best, true
}
