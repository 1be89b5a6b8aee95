package object

import (
	"math"

	"github.com/tomz197/firedodge/internal/physics"
)

// Motion moves one obstacle per tick. Implementations may keep their own
// phase; Obstacle.Age is the local time before the current tick is added.
type Motion interface {
	Step(o *Obstacle, ctx UpdateContext)
}

// LinearMotion applies the obstacle's constant velocity.
// Drifter, Faller and Riser use it.
type LinearMotion struct{}

// Step implements Motion.
func (LinearMotion) Step(o *Obstacle, ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	o.X += o.VX * dt
	o.Y += o.VY * dt
}

// PursuitMotion steers straight at the player every tick.
type PursuitMotion struct {
	Speed float64
}

// Step implements Motion. Without a player to chase the obstacle holds still.
func (m PursuitMotion) Step(o *Obstacle, ctx UpdateContext) {
	if ctx.Player == nil {
		return
	}
	px, py := ctx.Player.Position()
	nx, ny, _ := physics.Direction(o.X, o.Y, px, py)
	step := m.Speed * ctx.Delta.Seconds()
	o.X += nx * step
	o.Y += ny * step
}

// PendulumMotion places the obstacle on a closed-form swinging arc.
type PendulumMotion struct {
	Speed     float64
	Amplitude float64
}

// Step implements Motion.
func (m PendulumMotion) Step(o *Obstacle, ctx UpdateContext) {
	o.X, o.Y = PendulumAt(o.Age, ctx.Bounds, m.Speed, m.Amplitude)
}

// PendulumAt returns the pendulum position at local time t. X sweeps between
// left+1 and right-1; Y dips below the top edge by |sin| scaled by amplitude,
// so it never rises above the top.
func PendulumAt(t float64, b Bounds, speed, amplitude float64) (x, y float64) {
	s := math.Sin(t * speed)
	x = physics.Lerp(b.Left+1, b.Right-1, s*0.5+0.5)
	y = b.Top - math.Abs(s*amplitude)
	return x, y
}
