package menu

import (
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/tui-narrator/internal/engine"
)

// SliderKind is the semantic classification of a settings slider.
type SliderKind int

const (
	SliderUnknown SliderKind = iota
	SliderMusic
	SliderSound
	SliderAmbient
	SliderZoom
	SliderInterfaceScale
	SliderParallax
)

type sliderSpec struct {
	label     string
	key       engine.Key
	toPercent func(v float64) float64
}

func fraction(v float64) float64 { return v * 100 }

var sliderSpecs = map[SliderKind]sliderSpec{
	SliderMusic:          {"Music volume", engine.KeyMusicVolume, fraction},
	SliderSound:          {"Sound volume", engine.KeySoundVolume, fraction},
	SliderAmbient:        {"Ambient volume", engine.KeyAmbientVolume, fraction},
	SliderZoom:           {"Zoom", engine.KeyZoom, func(v float64) float64 { return (v - 1) * 100 }},
	SliderInterfaceScale: {"Interface scale", engine.KeyInterfaceScale, fraction},
	SliderParallax:       {"Background parallax", engine.KeyParallax, func(v float64) float64 { return v }},
}

// Label returns the default spoken label of the kind.
func (k SliderKind) Label() string {
	if spec, ok := sliderSpecs[k]; ok {
		return spec.label
	}
	return "Slider"
}

// String returns the kind's name.
func (k SliderKind) String() string {
	switch k {
	case SliderMusic:
		return "Music"
	case SliderSound:
		return "Sound"
	case SliderAmbient:
		return "Ambient"
	case SliderZoom:
		return "Zoom"
	case SliderInterfaceScale:
		return "InterfaceScale"
	case SliderParallax:
		return "Parallax"
	default:
		return "Unknown"
	}
}

// ReadPercent reads the live value of a slider as a whole percentage.
func ReadPercent(r engine.Reader, kind SliderKind) (int, bool) {
	spec, ok := sliderSpecs[kind]
	if !ok {
		return 0, false
	}
	v, ok := engine.Float(r, spec.key)
	if !ok {
		return 0, false
	}
	return int(math.Round(spec.toPercent(v))), true
}

// SliderSignal is the raw slider focus signal read from the engine.
type SliderSignal struct {
	Index      int // focused slider row, valid when HasIndex
	HasIndex   bool
	Feature    int // special feature code, valid when HasFeature
	HasFeature bool
	Category   int
}

// identity distinguishes one focused slider from another.
func (s SliderSignal) identity(kind SliderKind) string {
	return fmt.Sprintf("%d/%d/%d", kind, s.Index, s.Feature)
}

// Special-feature codes and category ids used by the host.
var (
	featureKinds = map[int]SliderKind{
		1: SliderZoom,
		2: SliderInterfaceScale,
		3: SliderParallax,
		4: SliderMusic,
		5: SliderSound,
		6: SliderAmbient,
	}
	categoryKinds = map[int]SliderKind{
		10: SliderMusic,
		11: SliderSound,
		12: SliderAmbient,
		20: SliderZoom,
		21: SliderInterfaceScale,
		22: SliderParallax,
	}
	modeIndexKinds = map[Mode]map[int]SliderKind{
		ModeAudioSettings: {0: SliderMusic, 1: SliderSound, 2: SliderAmbient},
		ModeVideoSettings: {2: SliderZoom, 3: SliderInterfaceScale, 4: SliderParallax},
	}
)

type sliderKeyword struct {
	word string
	kind SliderKind
}

// Ordered so that more specific words win ("ambient volume" is not "sound").
var sliderKeywords = []sliderKeyword{
	{"parallax", SliderParallax},
	{"ambient", SliderAmbient},
	{"ambience", SliderAmbient},
	{"music", SliderMusic},
	{"sound", SliderSound},
	{"sfx", SliderSound},
	{"zoom", SliderZoom},
	{"interface", SliderInterfaceScale},
	{"ui scale", SliderInterfaceScale},
}

// SliderDetector finds and classifies the focused settings slider.
type SliderDetector struct {
	reader  engine.Reader
	catalog *Catalog
}

// NewSliderDetector creates a detector reading from r and labeling through c.
func NewSliderDetector(r engine.Reader, c *Catalog) *SliderDetector {
	return &SliderDetector{reader: r, catalog: c}
}

// Detect reads the slider focus signal. Outside settings screens only a
// special-feature slider counts.
func (d *SliderDetector) Detect(mode Mode) (SliderSignal, bool) {
	var sig SliderSignal
	if idx, ok := engine.Int(d.reader, engine.KeySliderIndex); ok && idx >= 0 && mode.IsSettings() {
		sig.Index, sig.HasIndex = idx, true
	} else {
		sig.Index = -1
	}
	if code, ok := engine.Int(d.reader, engine.KeySpecialFeature); ok && code > 0 {
		sig.Feature, sig.HasFeature = code, true
	}
	if cat, ok := engine.Int(d.reader, engine.KeySliderCategory); ok {
		sig.Category = cat
	}
	return sig, sig.HasIndex || sig.HasFeature
}

// Classify decides which slider the signal refers to: label keywords first,
// then the mode's index table, then the special-feature table, then the
// category id. SliderUnknown means the narrator should stay silent.
func (d *SliderDetector) Classify(mode Mode, sig SliderSignal) SliderKind {
	if sig.HasIndex && d.catalog != nil {
		if kind := ClassifyLabel(d.catalog.DescribeMenuItem(mode, sig.Index)); kind != SliderUnknown {
			return kind
		}
	}
	if sig.HasIndex {
		if kind, ok := modeIndexKinds[mode][sig.Index]; ok {
			return kind
		}
	}
	if sig.HasFeature {
		if kind, ok := featureKinds[sig.Feature]; ok {
			return kind
		}
	}
	if kind, ok := categoryKinds[sig.Category]; ok {
		return kind
	}
	return SliderUnknown
}

// ClassifyLabel matches a slider label against the keyword vocabulary,
// tolerating small misspellings in the host's wording.
func ClassifyLabel(label string) SliderKind {
	lower := strings.ToLower(label)
	if lower == "" {
		return SliderUnknown
	}
	for _, kw := range sliderKeywords {
		if strings.Contains(lower, kw.word) {
			return kw.kind
		}
	}

	for _, word := range strings.Fields(lower) {
		if len(word) < 5 {
			continue
		}
		for _, kw := range sliderKeywords {
			if strings.Contains(kw.word, " ") {
				continue
			}
			if levenshtein.ComputeDistance(word, kw.word) <= fuzzyLimit(len(kw.word)) {
				return kw.kind
			}
		}
	}
	return SliderUnknown
}

func fuzzyLimit(length int) int {
	if length <= 6 {
		return 1
	}
	return 2
}
