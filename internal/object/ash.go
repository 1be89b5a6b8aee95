package object

import (
	"sync"

	"github.com/google/uuid"
)

// ashPool is a sync.Pool for reusing Ash objects; a water blast can leave
// many of them at once.
var ashPool = sync.Pool{
	New: func() any {
		return &Ash{}
	},
}

// Ash is the short-lived remains of an extinguished obstacle.
type Ash struct {
	X, Y     float64
	Lifetime float64 // Seconds remaining

	sprite  uuid.UUID
	visuals Visuals
}

// NewAsh creates an ash effect from the pool at (x, y).
func NewAsh(env Env, x, y float64) *Ash {
	a := ashPool.Get().(*Ash)
	a.X = x
	a.Y = y
	a.Lifetime = env.Tuning.AshLifetime
	a.visuals = env.visuals()
	a.sprite = a.visuals.Spawn(KindAsh, x, y)
	return a
}

// Update counts down the lifetime and removes the sprite when it runs out.
func (a *Ash) Update(ctx UpdateContext) (bool, error) {
	a.Lifetime -= ctx.Delta.Seconds()
	if a.Lifetime <= 0 {
		a.visuals.Destroy(a.sprite)
		a.sprite = uuid.Nil
		return true, nil
	}
	return false, nil
}

// Release returns the ash to the pool for reuse.
// Should be called when the ash is removed from the game.
func (a *Ash) Release() {
	*a = Ash{}
	ashPool.Put(a)
}
