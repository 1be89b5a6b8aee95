// Package difficulty turns elapsed play time into harder spawning: first more
// obstacle archetypes, then shorter spawn delays.
package difficulty

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/object"
)

// State is the current difficulty of a round.
type State struct {
	Unlocked int     // Archetypes that can spawn, in [1, MaxUnlocked]
	MinDelay float64 // Lower bound of the spawn delay in seconds
	MaxDelay float64 // Upper bound of the spawn delay in seconds
	Elapsed  float64 // Seconds accumulated towards the next escalation
}

// Controller escalates a State. It is owned by the session goroutine.
type Controller struct {
	State

	maxUnlocked int
	step        float64
	minFloor    float64
	maxFloor    float64
	period      float64
	log         *log.Logger
}

// New creates a controller with one archetype unlocked and the tuned delays.
// The tuned archetype ceiling is clamped to the archetypes that exist.
func New(t config.Tuning, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		State: State{
			Unlocked: 1,
			MinDelay: t.MinSpawnTime,
			MaxDelay: t.MaxSpawnTime,
		},
		maxUnlocked: min(max(t.MaxArchetypes, 1), object.ArchetypeCount),
		step:        t.SpawnTimeStep,
		minFloor:    t.MinSpawnTimeFloor,
		maxFloor:    t.MaxSpawnTimeFloor,
		period:      t.EscalationPeriod,
		log:         logger.WithPrefix("difficulty"),
	}
}

// Escalate unlocks one more archetype, or once all are unlocked shrinks both
// delay bounds by one step down to their floors.
func (c *Controller) Escalate() {
	if c.Unlocked < c.maxUnlocked {
		c.Unlocked++
	} else {
		c.MinDelay = math.Max(c.minFloor, c.MinDelay-c.step)
		c.MaxDelay = math.Max(c.maxFloor, c.MaxDelay-c.step)
	}
	c.log.Info("escalated", "unlocked", c.Unlocked, "min", c.MinDelay, "max", c.MaxDelay)
}

// Accumulate adds dt seconds to the escalation counter. When the counter
// reaches the escalation period it escalates once, resets the counter and
// reports true.
func (c *Controller) Accumulate(dt float64) bool {
	c.Elapsed += dt
	if c.Elapsed < c.period {
		return false
	}
	c.Escalate()
	c.Elapsed = 0
	return true
}
