package menu

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/engine"
	"github.com/vovakirdan/tui-narrator/internal/logging"
	"github.com/vovakirdan/tui-narrator/internal/textnorm"
	"github.com/vovakirdan/tui-narrator/internal/uiprobe"
)

// Options holds the narrator's timing and threshold tunables.
type Options struct {
	// CollisionWindow suppresses a focus announcement that repeats a hover or
	// the previous focus announcement spoken within the window.
	CollisionWindow time.Duration

	// ModeRepeatWindow suppresses re-speaking the same mode label.
	ModeRepeatWindow time.Duration

	// FocusGrace is how long after entering a mode scale-inferred focus is
	// ignored unless a hover has been seen.
	FocusGrace time.Duration

	// BackThrottle limits "Back" announcements on the audio settings screen.
	BackThrottle time.Duration

	// FocusFailureLogLimit caps consecutive focus failure log lines per mode.
	FocusFailureLogLimit int

	ScaleEpsilon float64

	// SliderStep is the minimum change in percentage points worth announcing.
	SliderStep int
}

// DefaultOptions returns the standard tunables.
func DefaultOptions() Options {
	return Options{
		CollisionWindow:      900 * time.Millisecond,
		ModeRepeatWindow:     time.Second,
		FocusGrace:           250 * time.Millisecond,
		BackThrottle:         time.Second,
		FocusFailureLogLimit: 5,
		ScaleEpsilon:         DefaultScaleEpsilon,
		SliderStep:           1,
	}
}

// Narrator is the menu narration state machine. Call ProcessFrame once per
// rendered frame from the host's main loop.
type Narrator struct {
	opts    Options
	reader  engine.Reader
	probe   *uiprobe.Introspector
	catalog *Catalog
	focus   *FocusResolver
	sliders *SliderDetector
	logger  *log.Logger

	state State

	// recent mode announcements, pruned to ModeRepeatWindow
	modeHistory map[string]time.Time
}

// NewNarrator wires a narrator. reader is wrapped with engine.Safe so a
// failing host lookup reads as absence. A nil logger discards output.
func NewNarrator(reader engine.Reader, probe *uiprobe.Introspector, opts Options, logger *log.Logger, catalogOpts ...CatalogOption) *Narrator {
	logger = logging.OrDiscard(logger)
	if opts.SliderStep <= 0 {
		opts.SliderStep = 1
	}

	n := &Narrator{
		opts:        opts,
		probe:       probe,
		logger:      logger,
		modeHistory: make(map[string]time.Time),
	}
	n.reader = engine.Safe(reader, func(key engine.Key, rec any) {
		n.logger.Debug("engine lookup failed", "key", key, "panic", rec)
	})
	if probe != nil {
		probe.OnPanic(func(where string, rec any) {
			n.logger.Debug("ui probe failed", "where", where, "panic", rec)
		})
	}

	catalogOpts = append([]CatalogOption{WithPanicObserver(func(where string, rec any) {
		n.logger.Debug("catalog resolver failed", "where", where, "panic", rec)
	})}, catalogOpts...)
	n.catalog = NewCatalog(n.reader, catalogOpts...)
	n.focus = NewFocusResolver(n.reader, opts.ScaleEpsilon)
	n.sliders = NewSliderDetector(n.reader, n.catalog)
	return n
}

// Catalog returns the narrator's option catalog.
func (n *Narrator) Catalog() *Catalog {
	return n.catalog
}

// State returns a copy of the narrator's current state.
func (n *Narrator) State() State {
	return n.state
}

// Reset forgets all state, including the mode repeat history.
func (n *Narrator) Reset() {
	n.state.ResetAll()
	n.focus.Reset()
	n.modeHistory = make(map[string]time.Time)
}

// ProcessFrame runs one frame of arbitration and returns the announcements
// to speak. Checks run in order hover, slider, focus, fallback; the first
// that speaks ends the frame. A mode change additionally speaks the mode's
// label first and forces the rest of the frame.
func (n *Narrator) ProcessFrame(ctx Context) []Event {
	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	if !ctx.Active {
		if n.state.active {
			n.logger.Debug("menu closed")
			n.state.ResetAll()
			n.focus.Reset()
		}
		return nil
	}

	var events []Event
	forced := false
	if mode, ok := n.state.Mode(); !ok || mode != ctx.Mode {
		n.logger.Debug("menu mode changed", "from", mode, "to", ctx.Mode, "known", ok)
		n.state.ResetForMode(ctx.Mode, now)
		n.focus.Reset()
		forced = true
		if ev, ok := n.announceMode(ctx, now); ok {
			events = append(events, ev)
		}
	}

	if ev, ok := n.checkHover(ctx, now, forced); ok {
		return append(events, ev)
	}

	ev, spoke, sliderActive := n.checkSlider(ctx, now, forced)
	if spoke {
		return append(events, ev)
	}

	focusFound := sliderActive
	if !sliderActive {
		var ok bool
		ev, ok, focusFound = n.checkFocus(ctx, now, forced)
		if ok {
			return append(events, ev)
		}
	}

	if !focusFound {
		if ev, ok := n.fallback(ctx, now, forced); ok {
			events = append(events, ev)
		}
	}
	return events
}

func (n *Narrator) announceMode(ctx Context, now time.Time) (Event, bool) {
	label := n.catalog.DescribeMenuMode(ctx.Mode, ctx.Root)
	if label == "" {
		return Event{}, false
	}

	for text, at := range n.modeHistory {
		if now.Sub(at) >= n.opts.ModeRepeatWindow {
			delete(n.modeHistory, text)
		}
	}
	if at, ok := n.modeHistory[label]; ok && now.Sub(at) < n.opts.ModeRepeatWindow {
		n.logger.Debug("mode label repeated within window", "label", label)
		return Event{}, false
	}

	n.modeHistory[label] = now
	n.state.lastModeText, n.state.lastModeAt = label, now
	n.state.lastSpoken = label
	return Event{Text: label, Force: true, Kind: KindModeChanged}, true
}

func (n *Narrator) checkHover(ctx Context, now time.Time, forced bool) (Event, bool) {
	if n.probe == nil {
		return Event{}, false
	}
	h, ok := n.probe.Hovered(ctx.Root)
	if !ok {
		n.state.lastHoverKey = ""
		return Event{}, false
	}

	key, text, kind := h.Key, h.Label, KindHover
	if ctx.Mode == ModeModConfig {
		kind = KindModConfig
		if v, ok := n.probe.Value(h.Element); ok {
			value := formatValue(v)
			key += "|" + value
			text = textnorm.JoinWithComma(h.Label, value)
		}
	}
	if key == n.state.lastHoverKey {
		return Event{}, false
	}

	n.state.lastHoverKey = key
	n.state.sawHover = true

	n.state.lastHoverText, n.state.lastHoverAt = text, now
	n.state.lastSpoken = text
	return Event{Text: text, Force: forced, Kind: kind}, true
}

// checkSlider reports the event, whether it should be spoken, and whether a
// slider signal currently owns focus, classified or not.
func (n *Narrator) checkSlider(ctx Context, now time.Time, forced bool) (Event, bool, bool) {
	sig, ok := n.sliders.Detect(ctx.Mode)
	if !ok {
		return Event{}, false, false
	}
	kind := n.sliders.Classify(ctx.Mode, sig)
	if kind == SliderUnknown {
		// unclassified sliders hold focus silently
		n.state.resetSlider()
		return Event{}, false, true
	}

	if sig.HasIndex {
		n.state.lastFocus, n.state.hasFocus = Focus{Index: sig.Index, Source: FocusSlider}, true
		n.state.lastFocusLabel = n.catalog.DescribeMenuItem(ctx.Mode, sig.Index)
	}

	pct, ok := ReadPercent(n.reader, kind)
	if !ok {
		return Event{}, false, true
	}

	id := sig.identity(kind)
	identityChanged := !n.state.hasSlider || n.state.lastSliderID != id
	last, seen := n.state.sliderValues[kind]
	valueChanged := !seen || core.Abs(pct-last) >= n.opts.SliderStep
	n.state.lastSliderKind, n.state.lastSliderID, n.state.hasSlider = kind, id, true

	if !identityChanged && !valueChanged {
		return Event{}, false, true
	}
	n.state.sliderValues[kind] = pct

	text := fmt.Sprintf("%d percent", pct)
	if identityChanged {
		text = fmt.Sprintf("%s %d percent", kind.Label(), pct)
	}
	evKind := KindSlider
	if sig.HasFeature {
		evKind = KindSpecialFeature
	}

	n.state.forceNextFocus = false
	n.state.focusAnnounced = true
	n.state.lastSpoken = text
	return Event{Text: text, Force: forced || identityChanged, Kind: evKind}, true, true
}

// checkFocus reports the event, whether it should be spoken, and whether a
// focus was resolved at all.
func (n *Narrator) checkFocus(ctx Context, now time.Time, forced bool) (Event, bool, bool) {
	f, ok := n.focus.TryGetFocus()
	if ok && f.Source.Inferred() && !n.state.sawHover && now.Sub(n.state.modeEnteredAt) < n.opts.FocusGrace {
		ok = false
	}
	if !ok {
		n.noteFocusFailure(ctx.Mode)
		return Event{}, false, false
	}
	n.state.focusFailures = 0

	label := n.catalog.DescribeMenuItem(ctx.Mode, f.Index)
	if combined, ok := n.catalog.DeletionCombined(ctx.Mode, f.Index); ok {
		label = combined
	}

	indexChanged := !n.state.hasFocus || n.state.lastFocus.Index != f.Index
	// typed world names are narrated keystroke by keystroke elsewhere
	textChanged := label != n.state.lastFocusLabel && ctx.Mode != ModeWorldCreation
	force := forced || n.state.forceNextFocus
	announce := force || indexChanged || textChanged

	n.state.lastFocus, n.state.hasFocus = f, true
	n.state.lastFocusLabel = label
	if !announce || label == "" {
		return Event{}, false, true
	}
	n.state.forceNextFocus = false

	if n.suppressFocus(ctx.Mode, label, now) {
		n.logger.Debug("focus announcement suppressed", "label", label, "index", f.Index, "source", f.Source)
		return Event{}, false, true
	}

	n.state.lastFocusText, n.state.lastFocusAt = label, now
	if isBack(label) {
		n.state.lastBackAt = now
	}
	n.state.focusAnnounced = true
	n.state.lastSpoken = label
	n.state.resetSlider()
	return Event{Text: label, Force: force, Kind: KindFocus}, true, true
}

func (n *Narrator) suppressFocus(mode Mode, label string, now time.Time) bool {
	s := &n.state
	if label == s.lastHoverText && !s.lastHoverAt.IsZero() && now.Sub(s.lastHoverAt) <= n.opts.CollisionWindow {
		return true
	}
	if label == s.lastFocusText && !s.lastFocusAt.IsZero() && now.Sub(s.lastFocusAt) <= n.opts.CollisionWindow {
		return true
	}
	if mode == ModeAudioSettings && isBack(label) {
		if s.lastSpoken == label {
			return true
		}
		if !s.lastBackAt.IsZero() && now.Sub(s.lastBackAt) < n.opts.BackThrottle {
			return true
		}
	}
	return false
}

func (n *Narrator) noteFocusFailure(mode Mode) {
	n.state.focusFailures++
	limit := n.opts.FocusFailureLogLimit
	switch {
	case n.state.focusFailures < limit:
		n.logger.Debug("could not resolve menu focus", "mode", mode, "failures", n.state.focusFailures)
	case n.state.focusFailures == limit:
		n.logger.Debug("could not resolve menu focus, suppressing further reports", "mode", mode, "failures", n.state.focusFailures)
	}
}

func (n *Narrator) fallback(ctx Context, now time.Time, forced bool) (Event, bool) {
	s := &n.state
	if s.focusAnnounced || s.announcedFallback {
		return Event{}, false
	}
	if !ctx.Mode.IsSettings() && ctx.Mode != ModeTitle && ctx.Root != nil && !s.sawHover {
		return Event{}, false
	}

	label := n.catalog.DescribeMenuItem(ctx.Mode, 0)
	if label == "" {
		return Event{}, false
	}
	s.announcedFallback = true
	s.forceNextFocus = false
	s.lastFocus, s.hasFocus = Focus{Index: 0, Source: FocusNone}, true
	s.lastFocusLabel = label
	s.lastFocusText, s.lastFocusAt = label, now
	s.lastSpoken = label
	n.logger.Debug("announcing fallback option", "mode", ctx.Mode, "label", label)
	return Event{Text: label, Force: forced, Kind: KindFocus}, true
}

func isBack(label string) bool {
	return strings.EqualFold(strings.TrimSpace(label), "back")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
