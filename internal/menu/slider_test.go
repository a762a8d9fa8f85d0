package menu

import (
	"testing"

	"github.com/vovakirdan/tui-narrator/internal/engine"
)

func TestClassifyLabel(t *testing.T) {
	tests := []struct {
		label string
		want  SliderKind
	}{
		{"Music volume", SliderMusic},
		{"Sound volume 40 percent", SliderSound},
		{"SFX", SliderSound},
		{"Ambient volume", SliderAmbient},
		{"Ambience", SliderAmbient},
		{"Zoom", SliderZoom},
		{"Interface scale", SliderInterfaceScale},
		{"UI scale", SliderInterfaceScale},
		{"Background parallax", SliderParallax},
		{"Paralax", SliderParallax},
		{"Musik", SliderMusic},
		{"Language", SliderUnknown},
		{"Back", SliderUnknown},
		{"", SliderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ClassifyLabel(tt.label); got != tt.want {
				t.Errorf("ClassifyLabel(%q) = %v, expected %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestSliderDetectorClassifyLayers(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		values   map[engine.Key]any
		noLabels bool
		want     SliderKind
	}{
		{
			name:   "label",
			mode:   ModeVideoSettings,
			values: map[engine.Key]any{engine.KeySliderIndex: 3},
			want:   SliderInterfaceScale,
		},
		{
			name:     "mode index table",
			mode:     ModeVideoSettings,
			values:   map[engine.Key]any{engine.KeySliderIndex: 4},
			noLabels: true,
			want:     SliderParallax,
		},
		{
			name:   "special feature",
			mode:   ModeTitle,
			values: map[engine.Key]any{engine.KeySpecialFeature: 1},
			want:   SliderZoom,
		},
		{
			name:   "category fallback",
			mode:   ModeSettings,
			values: map[engine.Key]any{engine.KeySliderIndex: 0, engine.KeySliderCategory: 11},
			want:   SliderSound,
		},
		{
			name:   "unknown",
			mode:   ModeSettings,
			values: map[engine.Key]any{engine.KeySliderIndex: 0},
			want:   SliderUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := engine.NewMapReader(tt.values)
			var c *Catalog
			if !tt.noLabels {
				c = NewCatalog(r)
			}
			d := NewSliderDetector(r, c)
			sig, ok := d.Detect(tt.mode)
			if !ok {
				t.Fatalf("Detect(%v) = false, expected a signal", tt.mode)
			}
			if got := d.Classify(tt.mode, sig); got != tt.want {
				t.Errorf("Classify() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSliderDetectIgnoresIndexOutsideSettings(t *testing.T) {
	r := engine.NewMapReader(map[engine.Key]any{engine.KeySliderIndex: 2})
	d := NewSliderDetector(r, nil)

	if _, ok := d.Detect(ModeTitle); ok {
		t.Error("Detect(Title) = true, expected slider index ignored")
	}
	if sig, ok := d.Detect(ModeAudioSettings); !ok || sig.Index != 2 {
		t.Errorf("Detect(Audio) = %+v, %v, expected index 2", sig, ok)
	}
}

func TestReadPercent(t *testing.T) {
	r := engine.NewMapReader(map[engine.Key]any{
		engine.KeyMusicVolume:    0.333,
		engine.KeyZoom:           1.75,
		engine.KeyInterfaceScale: 1.25,
		engine.KeyParallax:       30,
	})

	tests := []struct {
		kind SliderKind
		want int
		ok   bool
	}{
		{SliderMusic, 33, true},
		{SliderZoom, 75, true},
		{SliderInterfaceScale, 125, true},
		{SliderParallax, 30, true},
		{SliderSound, 0, false},
		{SliderUnknown, 0, false},
	}

	for _, tt := range tests {
		got, ok := ReadPercent(r, tt.kind)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ReadPercent(%v) = %d, %v, expected %d, %v", tt.kind, got, ok, tt.want, tt.ok)
		}
	}
}
