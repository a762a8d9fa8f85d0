package engine

import (
	"math"
	"testing"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestTypedReads(t *testing.T) {
	r := NewMapReader(map[Key]any{
		"int":      7,
		"int64":    int64(9),
		"float":    0.62,
		"nan":      math.NaN(),
		"bool":     true,
		"text":     "Settings",
		"stringer": stringer("Zoom"),
		"floats":   []float32{1, 1.5},
		"anyfloat": []any{1.0, 2},
		"strings":  []any{"a", "b"},
		"nil":      nil,
	})

	if v, ok := Int(r, "int"); !ok || v != 7 {
		t.Errorf("Int(int) = %d, %v", v, ok)
	}
	if v, ok := Int(r, "int64"); !ok || v != 9 {
		t.Errorf("Int(int64) = %d, %v", v, ok)
	}
	if v, ok := Int(r, "float"); !ok || v != 0 {
		t.Errorf("Int(float) = %d, %v", v, ok)
	}
	if _, ok := Int(r, "nan"); ok {
		t.Error("Int(nan) should be absent")
	}
	if v, ok := Float(r, "int"); !ok || v != 7 {
		t.Errorf("Float(int) = %f, %v", v, ok)
	}
	if _, ok := Float(r, "nan"); ok {
		t.Error("Float(nan) should be absent")
	}
	if v, ok := Bool(r, "bool"); !ok || !v {
		t.Errorf("Bool(bool) = %v, %v", v, ok)
	}
	if _, ok := Bool(r, "text"); ok {
		t.Error("Bool(text) should be absent on type mismatch")
	}
	if v, ok := Text(r, "stringer"); !ok || v != "Zoom" {
		t.Errorf("Text(stringer) = %q, %v", v, ok)
	}
	if v, ok := Floats(r, "floats"); !ok || len(v) != 2 || v[1] != 1.5 {
		t.Errorf("Floats(floats) = %v, %v", v, ok)
	}
	if v, ok := Floats(r, "anyfloat"); !ok || v[1] != 2 {
		t.Errorf("Floats(anyfloat) = %v, %v", v, ok)
	}
	if v, ok := Strings(r, "strings"); !ok || v[0] != "a" {
		t.Errorf("Strings(strings) = %v, %v", v, ok)
	}
	if _, ok := Text(r, "nil"); ok {
		t.Error("nil values should be absent")
	}
	if _, ok := Int(r, "missing"); ok {
		t.Error("missing keys should be absent")
	}
	if _, ok := Int(nil, "int"); ok {
		t.Error("nil reader should be absent")
	}
}

func TestFloatsReturnsCopy(t *testing.T) {
	src := []float64{1, 2}
	r := NewMapReader(map[Key]any{"s": src})
	got, _ := Floats(r, "s")
	got[0] = 99
	if src[0] != 1 {
		t.Error("Floats should not alias the engine's slice")
	}
}

func TestSafeRecoversPanics(t *testing.T) {
	var seen Key
	panicky := ReaderFunc(func(key Key) (any, bool) {
		panic("reflection failure")
	})
	r := Safe(panicky, func(key Key, _ any) { seen = key })

	if _, ok := Int(r, KeyFocusMenu); ok {
		t.Error("panicking lookup should be absent")
	}
	if seen != KeyFocusMenu {
		t.Errorf("onPanic saw %q", seen)
	}

	if _, ok := Safe(nil, nil).Value(KeyFocusMenu); ok {
		t.Error("Safe(nil) should always be absent")
	}
}

func TestMapReaderMutation(t *testing.T) {
	r := NewMapReader(nil)
	r.Set(KeyZoom, 1.5)
	if v, ok := Float(r, KeyZoom); !ok || v != 1.5 {
		t.Errorf("Float after Set = %f, %v", v, ok)
	}
	r.Delete(KeyZoom)
	if _, ok := Float(r, KeyZoom); ok {
		t.Error("Delete should make the key absent")
	}
	r.Replace(map[Key]any{KeyFullscreen: true})
	if v, _ := Bool(r, KeyFullscreen); !v {
		t.Error("Replace should install new values")
	}
}
