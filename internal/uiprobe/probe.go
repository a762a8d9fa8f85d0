// Package uiprobe is the boundary to the host's UI tree. Host elements are
// opaque handles; labels and values are pulled out of them by a registry of
// extractors tried in priority order. Failures in host code surface as absence.
package uiprobe

import "fmt"

// Root is an opaque handle to the host's current UI root.
type Root any

// Element is an opaque handle to a host UI element.
type Element any

// Provider locates the hovered leaf element under a UI root.
type Provider interface {
	HoveredElement(root Root) (Element, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(root Root) (Element, bool)

// HoveredElement implements Provider.
func (f ProviderFunc) HoveredElement(root Root) (Element, bool) {
	return f(root)
}

// Labeler is implemented by elements that can describe themselves.
type Labeler interface {
	TryGetLabel() (string, bool)
}

// Valuer is implemented by elements carrying a numeric value (sliders, toggles).
type Valuer interface {
	TryGetValue() (float64, bool)
}

// Identifier is implemented by elements with a stable identity.
type Identifier interface {
	ElementID() string
}

// Hover is the resolved hovered element of a frame.
type Hover struct {
	Element Element
	Label   string
	// Key identifies the element+label pair; two hovers with the same key
	// describe the same thing.
	Key string
}

// Introspector combines a Provider with a label Registry.
type Introspector struct {
	provider Provider
	registry *Registry
	onPanic  func(where string, recovered any)
}

// NewIntrospector creates an Introspector. A nil registry uses DefaultRegistry.
func NewIntrospector(p Provider, reg *Registry) *Introspector {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Introspector{provider: p, registry: reg}
}

// OnPanic installs an observer for recovered host panics.
func (in *Introspector) OnPanic(fn func(where string, recovered any)) {
	in.onPanic = fn
	in.registry.OnPanic(fn)
}

// Registry returns the extractor registry.
func (in *Introspector) Registry() *Registry {
	return in.registry
}

// Hovered returns the hovered element and its label. Elements without a
// usable label are reported as absent.
func (in *Introspector) Hovered(root Root) (Hover, bool) {
	if in == nil || in.provider == nil {
		return Hover{}, false
	}
	el, ok := in.hoveredElement(root)
	if !ok || el == nil {
		return Hover{}, false
	}
	label, ok := in.registry.ExtractLabel(el)
	if !ok {
		return Hover{}, false
	}
	return Hover{Element: el, Label: label, Key: identity(el) + "|" + label}, true
}

// Value returns the numeric value of an element, if any extractor provides one.
func (in *Introspector) Value(el Element) (float64, bool) {
	if in == nil {
		return 0, false
	}
	return in.registry.ExtractValue(el)
}

func (in *Introspector) hoveredElement(root Root) (el Element, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			if in.onPanic != nil {
				in.onPanic("HoveredElement", rec)
			}
			el, ok = nil, false
		}
	}()
	return in.provider.HoveredElement(root)
}

func identity(el Element) string {
	if id, ok := el.(Identifier); ok {
		return id.ElementID()
	}
	return fmt.Sprintf("%T", el)
}

// StaticProvider reports a fixed hovered element. Used by scripted hosts and tests.
type StaticProvider struct {
	element Element
}

// Set changes the hovered element; nil means nothing is hovered.
func (p *StaticProvider) Set(el Element) {
	p.element = el
}

// HoveredElement implements Provider.
func (p *StaticProvider) HoveredElement(Root) (Element, bool) {
	if p.element == nil {
		return nil, false
	}
	return p.element, true
}

// Widget is a minimal self-describing element.
type Widget struct {
	ID       string
	Label    string
	Value    float64
	HasValue bool
}

// TryGetLabel implements Labeler.
func (w Widget) TryGetLabel() (string, bool) {
	return w.Label, w.Label != ""
}

// TryGetValue implements Valuer.
func (w Widget) TryGetValue() (float64, bool) {
	return w.Value, w.HasValue
}

// ElementID implements Identifier.
func (w Widget) ElementID() string {
	return w.ID
}
