package menu

import (
	"testing"

	"github.com/vovakirdan/tui-narrator/internal/engine"
)

func TestTryGetFocusPriority(t *testing.T) {
	tests := []struct {
		name   string
		values map[engine.Key]any
		want   Focus
		wantOK bool
	}{
		{
			name:   "explicit wins",
			values: map[engine.Key]any{engine.KeyFocusMenu: 2, engine.KeySelectedMenu: 4, engine.KeyLegacyFocus: 5},
			want:   Focus{Index: 2, Source: FocusExplicit},
			wantOK: true,
		},
		{
			name:   "selected when explicit is unset",
			values: map[engine.Key]any{engine.KeyFocusMenu: -1, engine.KeySelectedMenu: 4},
			want:   Focus{Index: 4, Source: FocusSelected},
			wantOK: true,
		},
		{
			name:   "single largest scale",
			values: map[engine.Key]any{engine.KeyItemScales: []float64{1, 1.2, 1}},
			want:   Focus{Index: 1, Source: FocusScaleMax},
			wantOK: true,
		},
		{
			name:   "tied scales fall through to legacy",
			values: map[engine.Key]any{engine.KeyItemScales: []float64{1.2, 1.2}, engine.KeyLegacyFocus: 3},
			want:   Focus{Index: 3, Source: FocusLegacy},
			wantOK: true,
		},
		{
			name:   "nothing",
			values: map[engine.Key]any{engine.KeyItemScales: []float64{1, 1}},
			wantOK: false,
		},
		{
			name:   "wrong types are absent",
			values: map[engine.Key]any{engine.KeyFocusMenu: "two", engine.KeyItemScales: "big"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFocusResolver(engine.NewMapReader(tt.values), 0)
			got, ok := f.TryGetFocus()
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("TryGetFocus() = %+v, %v, expected %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTryGetFocusScaleDelta(t *testing.T) {
	r := engine.NewMapReader(map[engine.Key]any{engine.KeyItemScales: []float64{1, 1, 1}})
	f := NewFocusResolver(r, 0)

	if _, ok := f.TryGetFocus(); ok {
		t.Fatal("flat scales should not resolve")
	}

	r.Set(engine.KeyItemScales, []float64{1, 1.003, 1})
	if _, ok := f.TryGetFocus(); ok {
		t.Error("growth below epsilon should not resolve")
	}

	// Index 2 starts growing while index 0 is still the largest.
	r.Set(engine.KeyItemScales, []float64{1.3, 1.003, 1.05})
	f.Reset()
	f.TryGetFocus()
	r.Set(engine.KeyItemScales, []float64{1.25, 1.003, 1.1})
	got, ok := f.TryGetFocus()
	if !ok || got != (Focus{Index: 2, Source: FocusScaleDelta}) {
		t.Errorf("TryGetFocus() = %+v, %v, expected index 2 from scale delta", got, ok)
	}
}

func TestTryGetFocusLegacyOnlyOnChange(t *testing.T) {
	r := engine.NewMapReader(map[engine.Key]any{engine.KeyLegacyFocus: 1})
	f := NewFocusResolver(r, 0)

	if got, ok := f.TryGetFocus(); !ok || got.Index != 1 {
		t.Fatalf("first TryGetFocus() = %+v, %v", got, ok)
	}
	if _, ok := f.TryGetFocus(); ok {
		t.Error("unchanged legacy focus should not resolve again")
	}
	r.Set(engine.KeyLegacyFocus, 2)
	if got, ok := f.TryGetFocus(); !ok || got.Index != 2 {
		t.Errorf("changed TryGetFocus() = %+v, %v", got, ok)
	}

	f.Reset()
	if got, ok := f.TryGetFocus(); !ok || got.Index != 2 {
		t.Errorf("after Reset TryGetFocus() = %+v, %v", got, ok)
	}
}

func TestFocusSourceInferred(t *testing.T) {
	for _, s := range []FocusSource{FocusExplicit, FocusSelected, FocusLegacy, FocusSlider} {
		if s.Inferred() {
			t.Errorf("%v.Inferred() = true, expected false", s)
		}
	}
	for _, s := range []FocusSource{FocusScaleDelta, FocusScaleMax} {
		if !s.Inferred() {
			t.Errorf("%v.Inferred() = false, expected true", s)
		}
	}
}
