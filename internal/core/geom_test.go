package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent edges (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
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

func TestRectFOverlapsX(t *testing.T) {
	player := NewRectF(100, 0, 40, 40)

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"directly below", NewRectF(100, 500, 100, 20), true},
		{"partial from left", NewRectF(70, 500, 100, 20), true},
		{"partial from right", NewRectF(139, 500, 100, 20), true},
		{"fully left", NewRectF(-50, 500, 100, 20), false},
		{"fully right", NewRectF(140, 500, 100, 20), false},
		{"touching right edge", NewRectF(140, 0, 100, 20), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.OverlapsX(tc.other); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5.5, 0, 10); got != 5.5 {
		t.Errorf("ClampF(5.5, 0, 10) = %v, expected 5.5", got)
	}
	if got := ClampF(-3, 0, 10); got != 0 {
		t.Errorf("ClampF(-3, 0, 10) = %v, expected 0", got)
	}
	if got := ClampF(42, 0, 10); got != 10 {
		t.Errorf("ClampF(42, 0, 10) = %v, expected 10", got)
	}
}
