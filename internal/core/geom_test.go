package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewBox(0, 0, 10, 10), NewBox(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewBox(0, 0, 10, 10), NewBox(0, 15, 10, 10), false},
		{"touching edges", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 10, 10), true},
		{"contained", NewBox(0, 0, 110, 55), NewBox(40, 10, 30, 30), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	if b.CenterY() != 17.5 {
		t.Errorf("CenterY() = %v, expected 17.5", b.CenterY())
	}
}

func TestBoxClampInside(t *testing.T) {
	bounds := NewBox(0, 0, 800, 600)

	tests := []struct {
		name string
		in   Box
		want Box
	}{
		{"already inside", NewBox(10, 10, 50, 50), NewBox(10, 10, 50, 50)},
		{"past left", NewBox(-7, 10, 50, 50), NewBox(0, 10, 50, 50)},
		{"past right", NewBox(790, 10, 50, 50), NewBox(750, 10, 50, 50)},
		{"past top", NewBox(10, -3, 50, 50), NewBox(10, 0, 50, 50)},
		{"past bottom", NewBox(10, 580, 50, 50), NewBox(10, 550, 50, 50)},
		{"past corner", NewBox(900, 900, 50, 50), NewBox(750, 550, 50, 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.ClampInside(bounds)
			if got != tc.want {
				t.Errorf("ClampInside() = %+v, expected %+v", got, tc.want)
			}
			if got.X < 0 || got.Y < 0 || got.Right() > bounds.Right() || got.Bottom() > bounds.Bottom() {
				t.Errorf("clamped box %+v is not inside bounds", got)
			}
		})
	}
}
