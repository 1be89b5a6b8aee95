package physics

import (
	"math"
	"testing"
)

func TestDirection(t *testing.T) {
	nx, ny, d := Direction(0, 0, 3, 4)
	if d != 5 {
		t.Fatalf("dist = %v, want 5", d)
	}
	if math.Abs(nx-0.6) > 1e-12 || math.Abs(ny-0.8) > 1e-12 {
		t.Fatalf("unit = (%v,%v), want (0.6,0.8)", nx, ny)
	}

	nx, ny, _ = Direction(1, 1, 1, 1)
	if nx != 0 || ny != 0 {
		t.Fatalf("coincident points gave (%v,%v), want zero vector", nx, ny)
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"inside", RectAround(0, 0, 1, 1), RectAround(0.5, 0.5, 0.2, 0.2), true},
		{"partial", RectAround(0, 0, 1, 1), RectAround(1.5, 0, 1, 1), true},
		{"touching", RectAround(0, 0, 1, 1), RectAround(2, 0, 1, 1), false},
		{"apart vertically", RectAround(0, 0, 1, 1), RectAround(0, 5, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Fatalf("Overlaps not symmetric")
			}
		})
	}
}

func TestLerpClamps(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("Lerp = %v, want 3", got)
	}
	if got := Lerp(2, 4, 2); got != 4 {
		t.Fatalf("Lerp past 1 = %v, want 4", got)
	}
}
