package object

import (
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/physics"
)

// Bounds holds the world-coordinate edges of the visible play area.
// It is captured once when a session starts.
type Bounds struct {
	Left, Right float64
	Bottom, Top float64
}

// DefaultBounds returns the logical play area every front end renders.
func DefaultBounds() Bounds {
	return Bounds{
		Left:   config.WorldLeft,
		Right:  config.WorldRight,
		Bottom: config.WorldBottom,
		Top:    config.WorldTop,
	}
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// MiddleY returns the vertical centre line.
func (b Bounds) MiddleY() float64 { return b.Bottom + b.Height()/2 }

// Offscreen reports whether (x, y) lies more than margin beyond any edge.
func (b Bounds) Offscreen(x, y, margin float64) bool {
	return x < b.Left-margin || x > b.Right+margin || y < b.Bottom-margin || y > b.Top+margin
}

// ClampX keeps x at least margin inside the left and right edges.
func (b Bounds) ClampX(x, margin float64) float64 {
	return physics.Clamp(x, b.Left+margin, b.Right-margin)
}
