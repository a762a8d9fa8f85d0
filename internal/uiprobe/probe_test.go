package uiprobe

import (
	"strings"
	"testing"
)

// hostButton mimics a host element family without any capability methods.
type hostButton struct {
	caption string
}

// brokenElement panics whenever its label is requested.
type brokenElement struct{}

func (brokenElement) TryGetLabel() (string, bool) { panic("stale UI reference") }

type named string

func (n named) String() string { return string(n) }

func TestRegistryPriorityOrder(t *testing.T) {
	reg := DefaultRegistry()
	reg.Register(Extractor{
		Name:     "host-button",
		Priority: 10,
		Match: func(el Element) bool {
			_, ok := el.(hostButton)
			return ok
		},
		Label: func(el Element) (string, bool) {
			return el.(hostButton).caption, true
		},
	})

	list := reg.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 extractors, got %d", len(list))
	}
	if list[0].Name != "host-button" || list[2].Name != "stringer" {
		t.Errorf("unexpected order: %+v", list)
	}

	if label, ok := reg.ExtractLabel(hostButton{caption: "[c/FFFFFF:Play]"}); !ok || label != "Play" {
		t.Errorf("ExtractLabel(hostButton) = %q, %v", label, ok)
	}
	if label, ok := reg.ExtractLabel(named("Credits")); !ok || label != "Credits" {
		t.Errorf("ExtractLabel(stringer) = %q, %v", label, ok)
	}
	if _, ok := reg.ExtractLabel(42); ok {
		t.Error("unsupported element types should have no label")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	reg := DefaultRegistry()
	reg.Register(Extractor{Name: "labeler", Match: func(Element) bool { return true }, Label: func(Element) (string, bool) { return "", false }})
}

func TestRegistryRecoversExtractorPanics(t *testing.T) {
	reg := DefaultRegistry()
	var where string
	reg.OnPanic(func(w string, _ any) { where = w })

	if _, ok := reg.ExtractLabel(brokenElement{}); ok {
		t.Error("panicking extractor should report absence")
	}
	if !strings.HasPrefix(where, "labeler") {
		t.Errorf("panic observer saw %q", where)
	}
}

func TestIntrospectorHovered(t *testing.T) {
	p := &StaticProvider{}
	in := NewIntrospector(p, nil)

	if _, ok := in.Hovered(nil); ok {
		t.Fatal("nothing hovered should be absent")
	}

	p.Set(Widget{ID: "btn-settings", Label: "Settings"})
	h, ok := in.Hovered(nil)
	if !ok || h.Label != "Settings" {
		t.Fatalf("Hovered() = %+v, %v", h, ok)
	}
	if h.Key != "btn-settings|Settings" {
		t.Errorf("Key = %q", h.Key)
	}

	p.Set(Widget{ID: "blank"})
	if _, ok := in.Hovered(nil); ok {
		t.Error("elements without labels should be absent")
	}
}

func TestIntrospectorProviderPanic(t *testing.T) {
	in := NewIntrospector(ProviderFunc(func(Root) (Element, bool) {
		panic("ui root disposed")
	}), nil)
	called := false
	in.OnPanic(func(string, any) { called = true })

	if _, ok := in.Hovered(nil); ok {
		t.Error("panicking provider should report absence")
	}
	if !called {
		t.Error("panic observer should be notified")
	}
}

func TestIntrospectorValue(t *testing.T) {
	in := NewIntrospector(&StaticProvider{}, nil)
	if v, ok := in.Value(Widget{Label: "Zoom", Value: 0.5, HasValue: true}); !ok || v != 0.5 {
		t.Errorf("Value() = %f, %v", v, ok)
	}
	if _, ok := in.Value(Widget{Label: "Back"}); ok {
		t.Error("widgets without values should be absent")
	}
}
