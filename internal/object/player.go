package object

import (
	"github.com/google/uuid"
	"github.com/tomz197/firedodge/internal/physics"
)

// Player is the runner at the bottom of the screen.
//
// Posture is {Standing, Ducking} and support is {Grounded, Airborne}. Ducking
// only squashes the sprite; the collision box keeps its full height. A jump is
// a single upward impulse, allowed only while grounded and standing. Whether
// the player is grounded is decided by the GroundProbe each tick.
type Player struct {
	X, Y         float64 // Position (center)
	VY           float64 // Vertical velocity
	Ducking      bool
	Grounded     bool
	SurvivalTime float64 // Seconds survived this round
	HighScore    float64 // Best survival time, loaded from Prefs

	HalfW, HalfH float64

	moveSpeed   float64
	jumpImpulse float64
	gravity     float64
	probeReach  float64
	probe       GroundProbe
	sprite      uuid.UUID
	visuals     Visuals
}

// NewPlayer creates a player standing on the ground at horizontal position x.
func NewPlayer(env Env, x float64, probe GroundProbe, highScore float64) *Player {
	t := env.Tuning
	p := &Player{
		X:           x,
		HighScore:   highScore,
		HalfW:       t.PlayerHalfW,
		HalfH:       t.PlayerHalfH,
		moveSpeed:   t.MoveSpeed,
		jumpImpulse: t.JumpImpulse,
		gravity:     t.Gravity,
		probeReach:  t.GroundProbe,
		probe:       probe,
		visuals:     env.visuals(),
	}
	groundY, _ := probe.Probe(x, 0, 0)
	p.Y = groundY + p.HalfH
	p.Grounded = true
	p.sprite = p.visuals.Spawn(KindPlayer, p.X, p.Y)
	return p
}

// Update applies input, the ground probe and gravity.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	p.SurvivalTime += dt

	move := 0.0
	if ctx.Input.Left {
		move--
	}
	if ctx.Input.Right {
		move++
	}
	p.X = ctx.Bounds.ClampX(p.X+move*p.moveSpeed*dt, p.HalfW)

	groundY, hit := p.probe.Probe(p.X, p.Y-p.HalfH, p.probeReach)
	p.Grounded = hit && p.VY <= 0
	if p.Grounded {
		p.Y = groundY + p.HalfH
		p.VY = 0
	}

	p.setDucking(ctx.Input.Duck)

	if ctx.Input.Jump && p.Grounded && !p.Ducking {
		p.VY = p.jumpImpulse
		p.Grounded = false
	}

	if !p.Grounded {
		p.VY -= p.gravity * dt
		p.Y += p.VY * dt
	}

	p.visuals.Move(p.sprite, p.X, p.Y)
	return false, nil
}

func (p *Player) setDucking(duck bool) {
	if duck == p.Ducking {
		return
	}
	p.Ducking = duck
	if duck {
		p.visuals.SetScale(p.sprite, 1, 0.5)
	} else {
		p.visuals.SetScale(p.sprite, 1, 1)
	}
}

// Position implements PlayerLocator.
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}

// Box returns the collision box. Ducking does not shrink it.
func (p *Player) Box() physics.Rect {
	return physics.RectAround(p.X, p.Y, p.HalfW, p.HalfH)
}
