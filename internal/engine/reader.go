// Package engine abstracts read-only access to the host engine's named flags
// and values. Every lookup either succeeds or reports absence; a host
// callback that panics is treated as absent.
package engine

import (
	"fmt"
	"math"
	"sync"
)

// Key names an engine value.
type Key string

// Reader is read-only access to host engine state.
type Reader interface {
	// Value returns the current value for key, or false if it is absent.
	Value(key Key) (any, bool)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(key Key) (any, bool)

// Value implements Reader.
func (f ReaderFunc) Value(key Key) (any, bool) {
	return f(key)
}

// Safe wraps r so that a panicking lookup reports absence instead of
// unwinding into the caller. onPanic, if non-nil, observes the recovered value.
func Safe(r Reader, onPanic func(key Key, recovered any)) Reader {
	if r == nil {
		return ReaderFunc(func(Key) (any, bool) { return nil, false })
	}
	return ReaderFunc(func(key Key) (v any, ok bool) {
		defer func() {
			if rec := recover(); rec != nil {
				if onPanic != nil {
					onPanic(key, rec)
				}
				v, ok = nil, false
			}
		}()
		return r.Value(key)
	})
}

// Int reads an integer value. Floats are truncated.
func Int(r Reader, key Key) (int, bool) {
	v, ok := lookup(r, key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// Float reads a floating point value. Integers are widened.
func Float(r Reader, key Key) (float64, bool) {
	v, ok := lookup(r, key)
	if !ok {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Bool reads a boolean flag.
func Bool(r Reader, key Key) (bool, bool) {
	v, ok := lookup(r, key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Text reads a string value. Values implementing fmt.Stringer are accepted.
func Text(r Reader, key Key) (string, bool) {
	v, ok := lookup(r, key)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

// Floats reads a float slice, such as per-option visual scales.
// The returned slice is a copy.
func Floats(r Reader, key Key) ([]float64, bool) {
	v, ok := lookup(r, key)
	if !ok {
		return nil, false
	}
	switch s := v.(type) {
	case []float64:
		return append([]float64(nil), s...), true
	case []float32:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, true
	case []any:
		out := make([]float64, 0, len(s))
		for _, e := range s {
			switch n := e.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			default:
				return nil, false
			}
		}
		return out, true
	}
	return nil, false
}

// Strings reads a string slice, such as the engine's raw menu item labels.
// The returned slice is a copy.
func Strings(r Reader, key Key) ([]string, bool) {
	v, ok := lookup(r, key)
	if !ok {
		return nil, false
	}
	switch s := v.(type) {
	case []string:
		return append([]string(nil), s...), true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, isStr := e.(string)
			if !isStr {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

func lookup(r Reader, key Key) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.Value(key)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// MapReader is an in-memory Reader backed by a map. It is safe for
// concurrent use so a host goroutine can publish values while the frame loop reads.
type MapReader struct {
	mu     sync.RWMutex
	values map[Key]any
}

// NewMapReader creates a MapReader seeded with values.
func NewMapReader(values map[Key]any) *MapReader {
	m := &MapReader{values: make(map[Key]any, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Value implements Reader.
func (m *MapReader) Value(key Key) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value.
func (m *MapReader) Set(key Key, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[Key]any)
	}
	m.values[key] = v
}

// Delete removes a value so later reads report absence.
func (m *MapReader) Delete(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Replace swaps the whole value set.
func (m *MapReader) Replace(values map[Key]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[Key]any, len(values))
	for k, v := range values {
		m.values[k] = v
	}
}
