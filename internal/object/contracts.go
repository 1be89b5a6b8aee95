package object

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind selects the sprite a Visuals implementation draws for an entity.
type Kind int

const (
	KindSky Kind = iota
	KindGround
	KindPlayer
	KindDrifter
	KindFaller
	KindRiser
	KindPursuer
	KindPendulum
	KindWarning
	KindPowerUp
	KindAsh
)

var kindNames = [...]string{
	KindSky:      "sky",
	KindGround:   "ground",
	KindPlayer:   "player",
	KindDrifter:  "drifter",
	KindFaller:   "faller",
	KindRiser:    "riser",
	KindPursuer:  "pursuer",
	KindPendulum: "pendulum",
	KindWarning:  "warning",
	KindPowerUp:  "powerup",
	KindAsh:      "ash",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Visuals is the sprite factory of the presentation layer. uuid.Nil is the
// "no sprite" handle; every method must accept it and unknown handles.
type Visuals interface {
	Spawn(kind Kind, x, y float64) uuid.UUID
	Move(h uuid.UUID, x, y float64)
	SetVisible(h uuid.UUID, visible bool)
	SetColor(h uuid.UUID, c colorful.Color)
	SetScale(h uuid.UUID, sx, sy float64)
	Destroy(h uuid.UUID)
}

// NopVisuals discards everything. Used when no renderer is attached.
type NopVisuals struct{}

func (NopVisuals) Spawn(Kind, float64, float64) uuid.UUID { return uuid.Nil }
func (NopVisuals) Move(uuid.UUID, float64, float64)       {}
func (NopVisuals) SetVisible(uuid.UUID, bool)             {}
func (NopVisuals) SetColor(uuid.UUID, colorful.Color)     {}
func (NopVisuals) SetScale(uuid.UUID, float64, float64)   {}
func (NopVisuals) Destroy(uuid.UUID)                      {}

// Clip identifies an audio cue.
type Clip string

const (
	ClipFire1      Clip = "fire1"
	ClipFire2      Clip = "fire2"
	ClipFire3      Clip = "fire3"
	ClipFire4      Clip = "fire4"
	ClipFire5      Clip = "fire5"
	ClipWater      Clip = "water"
	ClipExtinguish Clip = "extinguish"
)

// AudioCue plays a clip fire-and-forget. Implementations log and skip clips
// they do not have.
type AudioCue interface {
	Play(clip Clip)
}

// nopAudio stands in when no audio device is attached.
type nopAudio struct {
	log *log.Logger
}

func (a nopAudio) Play(clip Clip) {
	a.log.Debug("audio disabled, dropping clip", "clip", clip)
}

// PlayerLocator reports where the player currently is.
type PlayerLocator interface {
	Position() (x, y float64)
}

// Prefs is the persistent key/value store for scalar settings.
type Prefs interface {
	GetFloat(key string, def float64) float64
	SetFloat(key string, value float64)
	// SetFloatIfGreater stores value only if it beats the stored one, as one
	// step. It returns the value now stored and whether it was raised.
	SetFloatIfGreater(key string, value float64) (float64, bool)
	Flush() error
}

// RoundControl restarts the playable session.
type RoundControl interface {
	ResetRound()
}

// Rand is the random source used for every gameplay draw. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Uniform draws from [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// GroundProbe answers the downward proximity probe under the player's feet.
type GroundProbe interface {
	// Probe returns the ground surface below (x, feetY) and whether it lies
	// within reach of the feet (or above them).
	Probe(x, feetY, reach float64) (groundY float64, hit bool)
}

// FlatGround is a level floor at height Y.
type FlatGround struct {
	Y float64
}

// Probe implements GroundProbe.
func (g FlatGround) Probe(_, feetY, reach float64) (float64, bool) {
	return g.Y, feetY-reach <= g.Y
}
