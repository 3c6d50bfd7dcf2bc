package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestScaleViewport(t *testing.T) {
	s := Scale{CellW: 10, CellH: 20}

	w, h := s.Viewport(80, 24)
	if w != 800 || h != 480 {
		t.Errorf("Viewport(80, 24) = %dx%d, expected 800x480", w, h)
	}
}

func TestScaleColRow(t *testing.T) {
	s := Scale{CellW: 10, CellH: 20}

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{9.99, 19.99, 0, 0},
		{10, 20, 1, 1},
		{55, 150, 5, 7},
		{-0.5, -1, -1, -1}, // left of the screen stays off-screen
	}

	for _, tc := range tests {
		if got := s.Col(tc.x); got != tc.col {
			t.Errorf("Col(%v) = %d, expected %d", tc.x, got, tc.col)
		}
		if got := s.Row(tc.y); got != tc.row {
			t.Errorf("Row(%v) = %d, expected %d", tc.y, got, tc.row)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
