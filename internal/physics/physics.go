// Package physics provides distance and axis-aligned overlap utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction returns the unit vector pointing from (x1,y1) to (x2,y2) and the
// distance between the points. The vector is zero when the points coincide.
func Direction(x1, y1, x2, y2 float64) (nx, ny, dist float64) {
	dist = Distance(x1, y1, x2, y2)
	if dist < 1e-9 {
		return 0, 0, dist
	}
	return (x2 - x1) / dist, (y2 - y1) / dist, dist
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectAround builds a box centred on (x, y) with the given half extents.
func RectAround(x, y, halfW, halfH float64) Rect {
	return Rect{MinX: x - halfW, MinY: y - halfH, MaxX: x + halfW, MaxY: y + halfH}
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}
