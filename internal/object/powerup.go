package object

import (
	"github.com/google/uuid"
	"github.com/tomz197/firedodge/internal/physics"
)

// PowerUp is the water collectible. It wanders left and right near the
// bottom edge, blinks before it expires and clears every fire when touched.
type PowerUp struct {
	ID       uuid.UUID
	X, Y     float64
	VX       float64 // Horizontal velocity (sign chosen every wander interval)
	Age      float64
	Visible  bool
	Blinking bool

	lifetime      float64
	wanderSpeed   float64
	wanderEvery   float64
	wanderLeft    float64 // Seconds until the next direction change
	blinkStart    float64 // Clock value after which blinking may start
	blinkDuration float64
	blinkInterval float64
	blinkTime     float64 // Time spent in the current blink loop
	blinkNext     float64 // Seconds until the next toggle
	ageClock      bool
	margin        float64
	halfSize      float64

	rand      Rand
	sprite    uuid.UUID
	visuals   Visuals
	collected bool
	destroyed bool
}

// NewPowerUp creates a power-up at (x, y) and picks its first direction.
func NewPowerUp(env Env, x, y float64) *PowerUp {
	env = env.WithDefaults()
	t := env.Tuning
	p := &PowerUp{
		ID:            uuid.New(),
		X:             x,
		Y:             y,
		Visible:       true,
		lifetime:      t.PowerUpLifetime,
		wanderSpeed:   t.PowerUpWanderSpeed,
		wanderEvery:   t.PowerUpWanderInterval,
		wanderLeft:    t.PowerUpWanderInterval,
		blinkStart:    t.PowerUpSpawnRate - t.PowerUpBlinkDuration,
		blinkDuration: t.PowerUpBlinkDuration,
		blinkInterval: t.BlinkInterval,
		ageClock:      t.PowerUpBlinkAgeClock,
		margin:        t.PowerUpEdgeMargin,
		halfSize:      t.PowerUpHalfSize,
		rand:          env.Rand,
		visuals:       env.Visuals,
	}
	if p.wanderEvery <= 0 {
		p.wanderEvery = 1
		p.wanderLeft = 1
	}
	p.pickDirection()
	p.sprite = p.visuals.Spawn(KindPowerUp, x, y)
	return p
}

// Update runs the wander and blink loops and the lifetime check.
func (p *PowerUp) Update(ctx UpdateContext) (bool, error) {
	if p.destroyed {
		return true, nil
	}

	dt := ctx.Delta.Seconds()
	p.Age += dt
	if p.Age >= p.lifetime {
		p.MarkDestroyed()
		return true, nil
	}

	p.X = ctx.Bounds.ClampX(p.X+p.VX*dt, p.margin)

	p.wanderLeft -= dt
	for p.wanderLeft <= 0 {
		p.wanderLeft += p.wanderEvery
		if !p.Blinking && p.blinkClock(ctx) > p.blinkStart {
			p.startBlink()
		}
		p.pickDirection()
	}

	if p.Blinking {
		p.advanceBlink(dt)
	}

	p.visuals.Move(p.sprite, p.X, p.Y)
	return false, nil
}

// blinkClock is the round clock, so a power-up spawned late in a round
// starts blinking at its first wander boundary. With the age clock configured
// it is the power-up's own age instead.
func (p *PowerUp) blinkClock(ctx UpdateContext) float64 {
	if p.ageClock {
		return p.Age
	}
	return ctx.Elapsed.Seconds()
}

func (p *PowerUp) pickDirection() {
	dir := -1.0
	if p.rand.Float64() > 0.5 {
		dir = 1
	}
	p.VX = dir * p.wanderSpeed
}

func (p *PowerUp) startBlink() {
	if p.blinkInterval <= 0 || p.blinkDuration <= 0 {
		return
	}
	p.Blinking = true
	p.blinkTime = 0
	p.blinkNext = p.blinkInterval
	p.toggle()
}

// advanceBlink toggles once per blink interval until blinkDuration is spent.
func (p *PowerUp) advanceBlink(dt float64) {
	p.blinkNext -= dt
	for p.Blinking && p.blinkNext <= 0 {
		p.blinkNext += p.blinkInterval
		p.blinkTime += p.blinkInterval
		if p.blinkTime >= p.blinkDuration {
			p.Blinking = false
			p.Visible = true
			p.visuals.SetVisible(p.sprite, true)
			return
		}
		p.toggle()
	}
}

func (p *PowerUp) toggle() {
	p.Visible = !p.Visible
	p.visuals.SetVisible(p.sprite, p.Visible)
}

// Collect marks the power-up as picked up and removes it.
func (p *PowerUp) Collect() {
	p.collected = true
	p.MarkDestroyed()
}

// Collected reports whether the player picked the power-up up.
func (p *PowerUp) Collected() bool {
	return p.collected
}

// MarkDestroyed removes the power-up. Calling it again is a no-op.
func (p *PowerUp) MarkDestroyed() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.visuals.Destroy(p.sprite)
}

// IsDestroyed returns true if the power-up has been collected or expired.
func (p *PowerUp) IsDestroyed() bool {
	return p.destroyed
}

// Box returns the collision box.
func (p *PowerUp) Box() physics.Rect {
	return physics.RectAround(p.X, p.Y, p.halfSize, p.halfSize)
}
