package uiprobe

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-narrator/internal/textnorm"
)

// Extractor pulls a label (and optionally a value) out of one family of host
// elements. Match decides whether the extractor applies to an element.
type Extractor struct {
	// Name identifies the extractor (e.g., "slider", "checkbox").
	Name string

	// Priority orders extractors; higher runs first.
	Priority int

	Match func(el Element) bool
	Label func(el Element) (string, bool)

	// Value is optional.
	Value func(el Element) (float64, bool)
}

// ExtractorInfo contains metadata about a registered extractor.
type ExtractorInfo struct {
	Name     string
	Priority int
}

// Registry holds extractors tried in priority order.
type Registry struct {
	mu         sync.RWMutex
	extractors []Extractor
	onPanic    func(where string, recovered any)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry with the capability-based extractors:
// elements implementing Labeler/Valuer, then fmt.Stringer as a last resort.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Extractor{
		Name:     "labeler",
		Priority: 0,
		Match: func(el Element) bool {
			_, ok := el.(Labeler)
			return ok
		},
		Label: func(el Element) (string, bool) {
			return el.(Labeler).TryGetLabel()
		},
		Value: func(el Element) (float64, bool) {
			if v, ok := el.(Valuer); ok {
				return v.TryGetValue()
			}
			return 0, false
		},
	})
	r.Register(Extractor{
		Name:     "stringer",
		Priority: -100,
		Match: func(el Element) bool {
			_, ok := el.(fmt.Stringer)
			return ok
		},
		Label: func(el Element) (string, bool) {
			return el.(fmt.Stringer).String(), true
		},
	})
	return r
}

// OnPanic installs an observer for recovered extractor panics.
func (r *Registry) OnPanic(fn func(where string, recovered any)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onPanic = fn
}

// Register adds an extractor.
// Panics if an extractor with the same name is already registered.
func (r *Registry) Register(e Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.extractors {
		if existing.Name == e.Name {
			panic(fmt.Sprintf("uiprobe: extractor %q already registered", e.Name))
		}
	}
	if e.Match == nil || e.Label == nil {
		panic(fmt.Sprintf("uiprobe: extractor %q needs Match and Label", e.Name))
	}

	r.extractors = append(r.extractors, e)
	sort.SliceStable(r.extractors, func(i, j int) bool {
		return r.extractors[i].Priority > r.extractors[j].Priority
	})
}

// List returns the registered extractors in the order they are tried.
func (r *Registry) List() []ExtractorInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ExtractorInfo, 0, len(r.extractors))
	for _, e := range r.extractors {
		result = append(result, ExtractorInfo{Name: e.Name, Priority: e.Priority})
	}
	return result
}

// ExtractLabel returns the cleaned label of the first matching extractor that
// yields a non-empty label.
func (r *Registry) ExtractLabel(el Element) (string, bool) {
	if el == nil {
		return "", false
	}
	for _, e := range r.snapshot() {
		if !r.safeMatch(e, el) {
			continue
		}
		label, ok := r.safeLabel(e, el)
		if !ok {
			continue
		}
		if clean := textnorm.Normalize(label); clean != "" {
			return clean, true
		}
	}
	return "", false
}

// ExtractValue returns the value of the first matching extractor that has one.
func (r *Registry) ExtractValue(el Element) (float64, bool) {
	if el == nil {
		return 0, false
	}
	for _, e := range r.snapshot() {
		if e.Value == nil || !r.safeMatch(e, el) {
			continue
		}
		if v, ok := r.safeValue(e, el); ok {
			return v, true
		}
	}
	return 0, false
}

func (r *Registry) snapshot() []Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Extractor(nil), r.extractors...)
}

func (r *Registry) recovered(where string, rec any) {
	r.mu.RLock()
	fn := r.onPanic
	r.mu.RUnlock()
	if fn != nil {
		fn(where, rec)
	}
}

func (r *Registry) safeMatch(e Extractor, el Element) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.recovered(e.Name+".Match", rec)
			ok = false
		}
	}()
	return e.Match(el)
}

func (r *Registry) safeLabel(e Extractor, el Element) (label string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.recovered(e.Name+".Label", rec)
			label, ok = "", false
		}
	}()
	return e.Label(el)
}

func (r *Registry) safeValue(e Extractor, el Element) (v float64, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.recovered(e.Name+".Value", rec)
			v, ok = 0, false
		}
	}()
	return e.Value(el)
}
