package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Left() != 5 || r.Top() != 10 {
		t.Errorf("Left/Top = (%v, %v), expected (5, 10)", r.Left(), r.Top())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestRectSetters(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	r.SetRight(100)
	if r.X != 80 || r.Right() != 100 {
		t.Errorf("SetRight(100): X = %v, Right = %v", r.X, r.Right())
	}

	r.SetBottom(50)
	if r.Y != 40 || r.Bottom() != 50 {
		t.Errorf("SetBottom(50): Y = %v, Bottom = %v", r.Y, r.Bottom())
	}

	r.SetLeft(-3)
	r.SetTop(7)
	if r.X != -3 || r.Y != 7 {
		t.Errorf("SetLeft/SetTop: got (%v, %v), expected (-3, 7)", r.X, r.Y)
	}

	r.SetCenter(0, 0)
	if r.X != -10 || r.Y != -5 {
		t.Errorf("SetCenter(0, 0): got (%v, %v), expected (-10, -5)", r.X, r.Y)
	}

	r.Move(10, 5)
	if r.X != 0 || r.Y != 0 {
		t.Errorf("Move(10, 5): got (%v, %v), expected (0, 0)", r.X, r.Y)
	}
}

func TestRectResizeKeepsCenter(t *testing.T) {
	r := NewRect(390, 530, 20, 20)
	cx, cy := r.Center()

	r.Resize(40, 40)
	if r.W != 40 || r.H != 40 {
		t.Errorf("Resize: size = %vx%v, expected 40x40", r.W, r.H)
	}
	if gx, gy := r.Center(); gx != cx || gy != cy {
		t.Errorf("Resize moved center from (%v, %v) to (%v, %v)", cx, cy, gx, gy)
	}

	r.Resize(20, 20)
	if r.X != 390 || r.Y != 530 {
		t.Errorf("Resize back: got (%v, %v), expected (390, 530)", r.X, r.Y)
	}
}

func TestRectValid(t *testing.T) {
	if !NewRect(0, 0, 1, 1).Valid() {
		t.Error("1x1 rect should be valid")
	}
	if NewRect(0, 0, 0, 1).Valid() {
		t.Error("zero-width rect should be invalid")
	}
	if NewRect(0, 0, 1, -1).Valid() {
		t.Error("negative-height rect should be invalid")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
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
