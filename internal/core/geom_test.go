package core

import "testing"

func TestRectFromCorners(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"same tile", Pt(5, 5), Pt(5, 5), NewRect(5, 5, 1, 1)},
		{"top-left first", Pt(10, 10), Pt(12, 11), NewRect(10, 10, 3, 2)},
		{"bottom-right first", Pt(12, 11), Pt(10, 10), NewRect(10, 10, 3, 2)},
		{"anti-diagonal", Pt(12, 10), Pt(10, 11), NewRect(10, 10, 3, 2)},
		{"negative coords", Pt(-3, -1), Pt(0, -4), NewRect(-3, -4, 4, 4)},
		{"single row", Pt(0, 7), Pt(9, 7), NewRect(0, 7, 10, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RectFromCorners(tc.a, tc.b)
			if got != tc.want {
				t.Errorf("RectFromCorners(%v, %v) = %+v, expected %+v", tc.a, tc.b, got, tc.want)
			}
			if rev := RectFromCorners(tc.b, tc.a); rev != got {
				t.Errorf("RectFromCorners is not symmetric: %+v vs %+v", got, rev)
			}
			if got.W < 1 || got.H < 1 {
				t.Errorf("degenerate rectangle %+v", got)
			}
		})
	}
}

func TestRectFromCornersAlwaysNonEmpty(t *testing.T) {
	for ax := -3; ax <= 3; ax++ {
		for ay := -3; ay <= 3; ay++ {
			for bx := -3; bx <= 3; bx++ {
				for by := -3; by <= 3; by++ {
					r := RectFromCorners(Pt(ax, ay), Pt(bx, by))
					if r.W < 1 || r.H < 1 {
						t.Fatalf("corners (%d,%d)-(%d,%d) gave %+v", ax, ay, bx, by, r)
					}
					if !r.Contains(ax, ay) || !r.Contains(bx, by) {
						t.Fatalf("rect %+v does not contain both corners", r)
					}
				}
			}
		}
	}
}

func TestRectCellRowMajor(t *testing.T) {
	r := NewRect(10, 10, 3, 2)
	want := []Point{
		Pt(10, 10), Pt(11, 10), Pt(12, 10),
		Pt(10, 11), Pt(11, 11), Pt(12, 11),
	}
	if r.Area() != len(want) {
		t.Fatalf("Area() = %d, expected %d", r.Area(), len(want))
	}
	for i, p := range want {
		if got := r.Cell(i); got != p {
			t.Errorf("Cell(%d) = %v, expected %v", i, got, p)
		}
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(10, -2).String(); got != "10, -2" {
		t.Errorf("String() = %q", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF(1.5, 0, 1) should be 1")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max broken")
	}
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs broken")
	}
}
