package loop

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/difficulty"
	"github.com/tomz197/firedodge/internal/draw"
	"github.com/tomz197/firedodge/internal/input"
	"github.com/tomz197/firedodge/internal/object"
	"github.com/tomz197/firedodge/internal/spawner"
)

// SessionOptions configures a Session. A zero Tuning means the defaults;
// nil collaborators get no-op defaults.
type SessionOptions struct {
	Tuning config.Tuning
	Prefs  object.Prefs
	Audio  object.AudioCue
	Rand   object.Rand
	Log    *log.Logger
}

// Session is one player's game: the current round plus what survives a
// round reset (preferences, audio, logger). It is driven by a single
// goroutine through Tick.
type Session struct {
	opts   SessionOptions
	bounds object.Bounds
	log    *log.Logger

	// Current round
	env        object.Env
	scene      *draw.Scene
	world      *World
	registry   *object.Registry
	sky        *object.SkyTint
	player     *object.Player
	difficulty *difficulty.Controller
	scheduler  *spawner.Scheduler
	blast      *spawner.Blast
	gate       *object.Gate
	elapsed    time.Duration

	rounds       int
	resetPending bool
}

// NewSession creates a session and starts its first round.
func NewSession(opts SessionOptions) *Session {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Log == nil {
		opts.Log = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{
		opts:   opts,
		bounds: object.DefaultBounds(),
		log:    opts.Log.WithPrefix("session"),
	}
	s.startRound()
	return s
}

// startRound builds a fresh round. The high score is read back from Prefs.
func (s *Session) startRound() {
	t := s.opts.Tuning
	s.scene = draw.NewScene(t, s.bounds, s.opts.Log)
	s.env = object.Env{
		Tuning:  t,
		Visuals: s.scene,
		Audio:   s.opts.Audio,
		Rand:    s.opts.Rand,
		Log:     s.opts.Log,
	}.WithDefaults()

	s.world = NewWorld()
	s.registry = object.NewRegistry()
	s.sky = object.NewSkyTint(s.env)

	groundY := s.bounds.Bottom + t.GroundHeight
	s.scene.Spawn(object.KindGround, 0, groundY)

	highScore := 0.0
	if s.opts.Prefs != nil {
		highScore = s.opts.Prefs.GetFloat(config.HighScoreKey, 0)
	}
	s.player = object.NewPlayer(s.env, 0, object.FlatGround{Y: groundY}, highScore)

	s.difficulty = difficulty.New(t, s.opts.Log)
	s.scheduler = spawner.NewScheduler(s.env, s.bounds, s.difficulty, s.registry)
	s.blast = spawner.NewBlast(s.env, s.registry, s.sky, s.world)
	s.gate = &object.Gate{Prefs: s.opts.Prefs, Round: s, Blast: s.blast, Log: s.opts.Log}

	s.world.AddObject(s.player)
	s.world.AddObject(s.scheduler)

	s.elapsed = 0
	s.resetPending = false
	s.rounds++
	s.log.Info("round started", "round", s.rounds, "highScore", highScore)
}

// ResetRound implements object.RoundControl. The round is rebuilt at the end
// of the current tick.
func (s *Session) ResetRound() {
	s.resetPending = true
}

// Tick advances the session by dt: input, update queue, collision pass.
func (s *Session) Tick(in input.Input, dt time.Duration) error {
	if in.Reset {
		s.gate.ResetHighScore(s.player)
		s.log.Info("high score reset")
	}

	ctx := object.UpdateContext{
		Delta:   dt,
		Elapsed: s.elapsed,
		Input:   in,
		Bounds:  s.bounds,
		Spawner: s.world,
		Player:  s.player,
	}
	if err := s.world.Update(ctx); err != nil {
		return fmt.Errorf("update round %d: %w", s.rounds, err)
	}
	s.elapsed += dt

	s.collide()
	s.world.FlushSpawned()

	if s.resetPending {
		s.log.Info("round over", "survived", s.player.SurvivalTime)
		s.scheduler.Stop()
		s.world.Clear()
		s.startRound()
	}
	return nil
}

// collide hands player overlaps to the gate. An obstacle hit ends the round,
// so power-ups are only checked while the player is still alive.
func (s *Session) collide() {
	box := s.player.Box()
	for _, o := range s.registry.Snapshot() {
		if !o.IsDestroyed() && box.Overlaps(o.Box()) {
			s.gate.ObstacleHit(s.player)
			return
		}
	}

	for _, obj := range s.world.Objects {
		pu, ok := obj.(*object.PowerUp)
		if !ok || pu.IsDestroyed() {
			continue
		}
		if box.Overlaps(pu.Box()) {
			s.gate.PowerUpTouched(pu)
		}
	}
}

// Scene returns the current round's scene for rendering.
func (s *Session) Scene() *draw.Scene {
	return s.scene
}

// Player returns the current round's player.
func (s *Session) Player() *object.Player {
	return s.player
}

// Registry returns the current round's live obstacles.
func (s *Session) Registry() *object.Registry {
	return s.registry
}

// World returns the current round's update queue.
func (s *Session) World() *World {
	return s.world
}

// Rounds returns how many rounds have started.
func (s *Session) Rounds() int {
	return s.rounds
}

// HUD returns the score line.
func (s *Session) HUD() string {
	return fmt.Sprintf("Score: %.2fs  High Score: %.2fs", s.player.SurvivalTime, s.player.HighScore)
}
