package object

import (
	"github.com/google/uuid"
	"github.com/tomz197/firedodge/internal/physics"
)

// Archetype is one of the five obstacle behaviours. Values match the draw
// index used by the spawn scheduler.
type Archetype int

const (
	Drifter  Archetype = 1 // crosses the screen horizontally
	Faller   Archetype = 2 // drops from above the top edge
	Riser    Archetype = 3 // telegraphed, rises from the bottom
	Pursuer  Archetype = 4 // telegraphed, chases the player
	Pendulum Archetype = 5 // swings along a downward arc
)

// ArchetypeCount is the number of archetypes that can be unlocked.
const ArchetypeCount = 5

func (a Archetype) String() string {
	switch a {
	case Drifter:
		return "drifter"
	case Faller:
		return "faller"
	case Riser:
		return "riser"
	case Pursuer:
		return "pursuer"
	case Pendulum:
		return "pendulum"
	default:
		return "unknown"
	}
}

// Kind returns the sprite kind for the archetype.
func (a Archetype) Kind() Kind {
	return KindDrifter + Kind(a-Drifter)
}

// Clip returns the spawn cue for the archetype.
func (a Archetype) Clip() Clip {
	switch a {
	case Drifter:
		return ClipFire1
	case Faller:
		return ClipFire2
	case Riser:
		return ClipFire3
	case Pursuer:
		return ClipFire4
	case Pendulum:
		return ClipFire5
	default:
		return ""
	}
}

// Obstacle is a hazard owned by exactly one Motion for its whole life.
type Obstacle struct {
	ID        uuid.UUID
	Archetype Archetype
	X, Y      float64 // Position (center)
	VX, VY    float64 // Velocity, used by LinearMotion
	Age       float64 // Local motion time in seconds
	Lifetime  float64 // Hard timeout in seconds; 0 = none
	HalfSize  float64
	Motion    Motion

	boundsChecked bool
	margin        float64
	sprite        uuid.UUID
	visuals       Visuals
	registry      *Registry
	destroyed     bool
}

// NewObstacle creates an obstacle of the given archetype at (x, y). Timeout
// and off-screen rules follow the archetype: Faller and Pendulum only time
// out, Drifter only leaves the screen, Riser and Pursuer do both.
func NewObstacle(env Env, arch Archetype, x, y float64, motion Motion) *Obstacle {
	t := env.Tuning
	o := &Obstacle{
		ID:        uuid.New(),
		Archetype: arch,
		X:         x,
		Y:         y,
		HalfSize:  t.ObstacleHalfSize,
		Motion:    motion,
		margin:    t.OffscreenMargin,
		visuals:   env.visuals(),
	}

	switch arch {
	case Drifter:
		o.boundsChecked = true
	case Faller:
		o.Lifetime = t.ObstacleTimeout
	case Riser, Pursuer:
		o.Lifetime = t.ObstacleTimeout
		o.boundsChecked = true
	case Pendulum:
		o.Lifetime = t.PendulumTimeout
	}

	o.sprite = o.visuals.Spawn(arch.Kind(), x, y)
	return o
}

// Update runs the motion strategy, then the termination checks.
func (o *Obstacle) Update(ctx UpdateContext) (bool, error) {
	if o.destroyed {
		return true, nil
	}

	dt := ctx.Delta.Seconds()
	if o.Motion != nil {
		o.Motion.Step(o, ctx)
	}
	o.Age += dt
	o.visuals.Move(o.sprite, o.X, o.Y)

	if o.Lifetime > 0 && o.Age >= o.Lifetime {
		o.MarkDestroyed()
		return true, nil
	}
	if o.boundsChecked && ctx.Bounds.Offscreen(o.X, o.Y, o.margin) {
		o.MarkDestroyed()
		return true, nil
	}
	return false, nil
}

// MarkDestroyed removes the obstacle from the live set and the screen.
// Calling it again is a no-op.
func (o *Obstacle) MarkDestroyed() {
	if o.destroyed {
		return
	}
	o.destroyed = true
	if o.registry != nil {
		o.registry.Remove(o)
		o.registry = nil
	}
	o.visuals.Destroy(o.sprite)
}

// IsDestroyed returns true if the obstacle is marked for destruction.
func (o *Obstacle) IsDestroyed() bool {
	return o.destroyed
}

// Box returns the collision box.
func (o *Obstacle) Box() physics.Rect {
	return physics.RectAround(o.X, o.Y, o.HalfSize, o.HalfSize)
}
