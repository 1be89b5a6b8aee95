// Package object holds the entities of a round (obstacles, telegraphs,
// power-ups, ash, sky pulses, the player) and the capability contracts they
// talk to. Every entity is a task in the session's update queue.
package object

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/input"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Elapsed time.Duration // time since the round started
	Input   Input
	Bounds  Bounds
	Spawner Spawner
	Player  PlayerLocator
}

// Object is an updatable game entity. Each Update runs the entity to its next
// suspension point.
type Object interface {
	// Update advances the object by ctx.Delta. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)
}

// Destructible is implemented by objects that own sprites or registry entries
// and must release them when the round is torn down.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next update cycle.
	// It must be idempotent.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Env bundles the session-scoped collaborators entities are built with.
type Env struct {
	Tuning  config.Tuning
	Visuals Visuals
	Audio   AudioCue
	Rand    Rand
	Log     *log.Logger
}

// WithDefaults fills missing collaborators with no-op stand-ins so a missing
// renderer or audio device never stops the game.
func (e Env) WithDefaults() Env {
	if e.Log == nil {
		e.Log = log.New(io.Discard)
	}
	if e.Visuals == nil {
		e.Visuals = NopVisuals{}
	}
	if e.Audio == nil {
		e.Audio = nopAudio{log: e.Log}
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

func (e Env) visuals() Visuals {
	if e.Visuals == nil {
		return NopVisuals{}
	}
	return e.Visuals
}
