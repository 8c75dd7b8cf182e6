package core

import "testing"

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.48, 0, 1, 0.48},
		{-3, 0, 1, 0},
		{1.7, 0, 1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (25, 25)", r.Right(), r.Bottom())
	}
}

func TestBoxEdgesAndTranslate(t *testing.T) {
	b := NewBox(10, 20, 32, 50).Translate(-4, 6)

	if b.Left != 6 || b.Top != 26 {
		t.Errorf("Translate() = (%v, %v), expected (6, 26)", b.Left, b.Top)
	}
	if b.Right() != 38 {
		t.Errorf("Right() = %v, expected 38", b.Right())
	}
	if b.Bottom() != 76 {
		t.Errorf("Bottom() = %v, expected 76", b.Bottom())
	}
}

func TestBoxScale(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		sx, sy   float64
		expected Rect
	}{
		{"aligned", NewBox(20, 40, 20, 40), 10, 20, NewRect(2, 2, 2, 2)},
		{"partial cells round outward", NewBox(15, 30, 10, 10), 10, 20, NewRect(1, 1, 2, 1)},
		{"thin box keeps one cell", NewBox(12, 41, 0.5, 0.5), 10, 20, NewRect(1, 2, 1, 1)},
		{"off the left edge", NewBox(-25, 0, 10, 20), 10, 20, NewRect(-3, 0, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Scale(tc.sx, tc.sy); got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
