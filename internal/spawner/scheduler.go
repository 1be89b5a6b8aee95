// Package spawner drives obstacle and power-up creation over a round and the
// water blast that clears the field.
package spawner

import (
	"github.com/charmbracelet/log"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/difficulty"
	"github.com/tomz197/firedodge/internal/object"
)

// waitEpsilon absorbs float drift in the accumulated tick time.
const waitEpsilon = 1e-9

// Scheduler is the spawn loop of a round. Each cycle it waits a random delay
// within the current difficulty's bounds, spawns one obstacle, and advances
// the escalation and power-up counters by that delay.
type Scheduler struct {
	env        object.Env
	bounds     object.Bounds
	difficulty *difficulty.Controller
	registry   *object.Registry
	log        *log.Logger

	delay          float64 // Delay of the current cycle
	wait           float64 // Seconds left before the cycle fires
	powerUpElapsed float64
	stopped        bool
}

// NewScheduler creates the spawn loop and draws its first delay.
func NewScheduler(env object.Env, bounds object.Bounds, d *difficulty.Controller, reg *object.Registry) *Scheduler {
	env = env.WithDefaults()
	s := &Scheduler{
		env:        env,
		bounds:     bounds,
		difficulty: d,
		registry:   reg,
		log:        env.Log.WithPrefix("spawner"),
	}
	s.nextDelay()
	return s
}

// Update counts down the current delay. Leftover time carries into the next
// cycle, so a long tick can fire more than one cycle.
func (s *Scheduler) Update(ctx object.UpdateContext) (bool, error) {
	if s.stopped {
		return true, nil
	}

	s.wait -= ctx.Delta.Seconds()
	for s.wait <= waitEpsilon && !s.stopped {
		s.cycle(ctx)
		carry := s.wait
		s.nextDelay()
		s.wait += carry
	}
	return s.stopped, nil
}

// Stop ends the loop on its next update.
func (s *Scheduler) Stop() {
	s.stopped = true
}

func (s *Scheduler) nextDelay() {
	d := object.Uniform(s.env.Rand, s.difficulty.MinDelay, s.difficulty.MaxDelay)
	if d <= 0 {
		d = config.TickTime.Seconds()
	}
	s.delay = d
	s.wait = d
}

func (s *Scheduler) cycle(ctx object.UpdateContext) {
	arch := object.Archetype(1 + s.env.Rand.Intn(s.difficulty.Unlocked))
	s.dispatch(ctx, arch)

	s.difficulty.Accumulate(s.delay)

	s.powerUpElapsed += s.delay
	if s.powerUpElapsed >= s.env.Tuning.PowerUpSpawnRate {
		s.powerUpElapsed = 0
		s.SpawnPowerUp(ctx)
	}
}

func (s *Scheduler) dispatch(ctx object.UpdateContext, arch object.Archetype) {
	t := s.env.Tuning
	b := s.bounds

	switch arch {
	case object.Drifter:
		x, vx := b.Right+1, -t.ObstacleSpeed
		if s.env.Rand.Float64() < 0.5 {
			x, vx = b.Left-1, t.ObstacleSpeed
		}
		y := object.Uniform(s.env.Rand, b.Bottom, b.MiddleY())
		o := object.NewObstacle(s.env, arch, x, y, object.LinearMotion{})
		o.VX = vx
		s.launch(ctx, o)

	case object.Faller:
		x := object.Uniform(s.env.Rand, b.Left, b.Right)
		o := object.NewObstacle(s.env, arch, x, b.Top+1, object.LinearMotion{})
		o.VY = -t.ObstacleSpeed
		s.launch(ctx, o)

	case object.Riser:
		x := object.Uniform(s.env.Rand, b.Left, b.Right)
		s.telegraph(ctx, x, b.Bottom+t.RiserWarningOffset, func(ctx object.UpdateContext, x, y float64) {
			o := object.NewObstacle(s.env, object.Riser, x, y, object.LinearMotion{})
			o.VY = t.ObstacleSpeed
			s.launch(ctx, o)
		})

	case object.Pursuer:
		x := object.Uniform(s.env.Rand, b.Left, b.Right)
		y := object.Uniform(s.env.Rand, b.Bottom, b.Top)
		s.telegraph(ctx, x, y, func(ctx object.UpdateContext, x, y float64) {
			o := object.NewObstacle(s.env, object.Pursuer, x, y, object.PursuitMotion{Speed: t.PursuerSpeed})
			s.launch(ctx, o)
		})

	case object.Pendulum:
		m := object.PendulumMotion{Speed: t.PendulumSpeed, Amplitude: t.PendulumAmplitude}
		x, y := object.PendulumAt(0, b, m.Speed, m.Amplitude)
		s.launch(ctx, object.NewObstacle(s.env, arch, x, y, m))

	default:
		s.log.Warn("unknown archetype", "archetype", int(arch))
	}
}

func (s *Scheduler) telegraph(ctx object.UpdateContext, x, y float64, complete func(object.UpdateContext, float64, float64)) {
	w := object.Telegraph(s.env, x, y, s.env.Tuning.WarningDuration, complete)
	ctx.Spawner.Spawn(w)
}

// launch registers a new obstacle, queues it and plays its cue.
func (s *Scheduler) launch(ctx object.UpdateContext, o *object.Obstacle) {
	s.registry.Track(o)
	ctx.Spawner.Spawn(o)
	s.env.Audio.Play(o.Archetype.Clip())
	s.log.Debug("spawned", "archetype", o.Archetype, "x", o.X, "y", o.Y)
}

// SpawnPowerUp places a power-up at a random horizontal position just above
// the bottom edge.
func (s *Scheduler) SpawnPowerUp(ctx object.UpdateContext) *object.PowerUp {
	t := s.env.Tuning
	x := object.Uniform(s.env.Rand, s.bounds.Left+t.PowerUpEdgeMargin, s.bounds.Right-t.PowerUpEdgeMargin)
	p := object.NewPowerUp(s.env, x, s.bounds.Bottom+1)
	ctx.Spawner.Spawn(p)
	s.log.Debug("power-up spawned", "x", x)
	return p
}
