package textnorm

import (
	"sync"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "  Settings  ", "Settings"},
		{"color span keeps text", "[c/FF0000:Danger] zone", "Danger zone"},
		{"short hex color", "[c/f00:Red]", "Red"},
		{"name reference", "Talk to [n:Guide]", "Talk to Guide"},
		{"icon dropped", "Sell [i:29] Life Crystal", "Sell Life Crystal"},
		{"sized icon dropped", "[i/s10:74] coins", "coins"},
		{"glyph dropped", "Press [g:0] to jump", "Press to jump"},
		{"decorative tags", "[rb]Rainbow[/rb] and [wave=2]wavy[/wave]", "Rainbow and wavy"},
		{"angle tags", "<color=#ffcc00>Gold</color> <b>bold</b>", "Gold bold"},
		{"unknown tag dropped", "Hello [zz:whatever] world", "Hello world"},
		{"comparison not a tag", "a < b", "a < b"},
		{"empty", "", ""},
		{"only markup", "[i:1][g:2]", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.raw); got != tc.want {
				t.Errorf("Clean(%q) = %q, expected %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestJoinWithComma(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"Delete", "World Foo"}, "Delete, World Foo"},
		{[]string{"", "[i:1]", "Yes"}, "Yes"},
		{[]string{" a ", "b", "  "}, "a, b"},
		{nil, ""},
	}

	for _, tc := range tests {
		if got := JoinWithComma(tc.parts...); got != tc.want {
			t.Errorf("JoinWithComma(%q) = %q, expected %q", tc.parts, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"numeric glyph tag", "Press [g:4] to swap", "Press left bumper to swap"},
		{"named glyph tag", "Hold [g:RightTrigger] to use", "Hold right trigger to use"},
		{"unknown glyph humanized", "Open [g:RadialHotbar]", "Open Radial Hotbar"},
		{"snake case glyph", "[g:quick_heal]", "Quick Heal"},
		{"bare number after Press", "Press 1 to cancel", "Press B button to cancel"},
		{"bare number before noun", "Use 6 trigger", "Use left trigger"},
		{"press with noun", "Press 0 button", "Press A button"},
		{"colon prefix", "Jump: 0", "Jump: A button"},
		{"ordinary number untouched", "Stack of 30 torches", "Stack of 30 torches"},
		{"out of range glyph number", "Press 42 now", "Press 42 now"},
		{"markup still cleaned", "[c/00FF00:Press [g:0]]", "Press A button"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, expected %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"RadialHotbar":  "Radial Hotbar",
		"radial_hotbar": "Radial Hotbar",
		"smart-cursor":  "Smart Cursor",
		"Inventory2":    "Inventory2",
	}
	for in, want := range tests {
		if got := Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	inputs := map[string]string{
		"Open [g:RadialHotbar]":   "Open Radial Hotbar",
		"Press [g:A] to continue": "Press A button to continue",
		"[g:quick_heal]":          "Quick Heal",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for in, want := range inputs {
			in, want := in, want
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					if got := Normalize(in); got != want {
						t.Errorf("Normalize(%q) = %q, expected %q", in, got, want)
						return
					}
				}
			}()
		}
	}
	wg.Wait()
}
