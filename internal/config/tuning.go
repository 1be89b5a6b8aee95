package config

import "time"

// Tick rate for every session loop.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Logical play area in world units (y grows upward).
const (
	WorldLeft   = -16.0
	WorldRight  = 16.0
	WorldBottom = -9.0
	WorldTop    = 9.0
)

// HighScoreKey is the preference key the best survival time is stored under.
const HighScoreKey = "HighScore"

// Tuning holds every gameplay constant. Times are in seconds, distances in
// world units.
type Tuning struct {
	// Spawn cadence
	MinSpawnTime      float64
	MaxSpawnTime      float64
	EscalationPeriod  float64 // spawn delay accumulated before each escalation
	MaxArchetypes     int
	SpawnTimeStep     float64
	MinSpawnTimeFloor float64
	MaxSpawnTimeFloor float64

	// Obstacles
	ObstacleSpeed     float64
	PursuerSpeed      float64
	PendulumSpeed     float64
	PendulumAmplitude float64
	ObstacleTimeout   float64 // Faller, Riser, Pursuer
	PendulumTimeout   float64
	OffscreenMargin   float64
	ObstacleHalfSize  float64

	// Telegraph
	WarningDuration    float64
	BlinkInterval      float64
	RiserWarningOffset float64

	// Power-up
	PowerUpSpawnRate         float64
	PowerUpLifetime          float64
	PowerUpWanderSpeed       float64
	PowerUpWanderInterval    float64
	PowerUpBlinkDuration     float64
	PowerUpEdgeMargin        float64
	PowerUpHalfSize          float64
	PowerUpBlinkAgeClock     bool // compare the blink window with the power-up's age instead of round time

	// Water blast
	AshLifetime float64
	SkyFade     float64
	SkyHold     float64
	SkyBase     string // hex colour
	SkyTarget   string

	// Player
	MoveSpeed    float64
	JumpImpulse  float64
	Gravity      float64
	GroundProbe  float64 // extra reach of the downward probe below the feet
	GroundHeight float64 // ground surface above the bottom edge
	PlayerHalfW  float64
	PlayerHalfH  float64
}

// DefaultTuning returns the values the game was balanced with.
func DefaultTuning() Tuning {
	return Tuning{
		MinSpawnTime:      2,
		MaxSpawnTime:      5,
		EscalationPeriod:  5,
		MaxArchetypes:     5,
		SpawnTimeStep:     0.2,
		MinSpawnTimeFloor: 0.5,
		MaxSpawnTimeFloor: 1.0,

		ObstacleSpeed:     5,
		PursuerSpeed:      3,
		PendulumSpeed:     2,
		PendulumAmplitude: 4,
		ObstacleTimeout:   10,
		PendulumTimeout:   15,
		OffscreenMargin:   1,
		ObstacleHalfSize:  0.5,

		WarningDuration:    1.5,
		BlinkInterval:      0.2,
		RiserWarningOffset: 1.5,

		PowerUpSpawnRate:      10,
		PowerUpLifetime:       10,
		PowerUpWanderSpeed:    2,
		PowerUpWanderInterval: 1,
		PowerUpBlinkDuration:  1.5,
		PowerUpEdgeMargin:     0.5,
		PowerUpHalfSize:       0.4,

		AshLifetime: 2,
		SkyFade:     1.5,
		SkyHold:     0.1,
		SkyBase:     "#87ceeb",
		SkyTarget:   "#0000ff",

		MoveSpeed:    5,
		JumpImpulse:  10,
		Gravity:      20,
		GroundProbe:  0.1,
		GroundHeight: 0.5,
		PlayerHalfW:  0.5,
		PlayerHalfH:  1,
	}
}

// TuningFromEnv starts from DefaultTuning and applies environment overrides.
func TuningFromEnv() Tuning {
	t := DefaultTuning()
	t.MinSpawnTime = GetFloat("MIN_SPAWN_TIME", t.MinSpawnTime)
	t.MaxSpawnTime = GetFloat("MAX_SPAWN_TIME", t.MaxSpawnTime)
	t.EscalationPeriod = GetFloat("ESCALATION_PERIOD", t.EscalationPeriod)
	t.ObstacleSpeed = GetFloat("OBSTACLE_SPEED", t.ObstacleSpeed)
	t.PursuerSpeed = GetFloat("PURSUER_SPEED", t.PursuerSpeed)
	t.PendulumSpeed = GetFloat("PENDULUM_SPEED", t.PendulumSpeed)
	t.PendulumAmplitude = GetFloat("PENDULUM_AMPLITUDE", t.PendulumAmplitude)
	t.WarningDuration = GetFloat("WARNING_DURATION", t.WarningDuration)
	t.BlinkInterval = GetFloat("BLINK_INTERVAL", t.BlinkInterval)
	t.PowerUpSpawnRate = GetFloat("POWERUP_SPAWN_RATE", t.PowerUpSpawnRate)
	t.PowerUpBlinkAgeClock = GetBool("POWERUP_BLINK_AGE_CLOCK", t.PowerUpBlinkAgeClock)
	t.SkyBase = GetEnv("SKY_COLOR", t.SkyBase)
	t.SkyTarget = GetEnv("SKY_BLAST_COLOR", t.SkyTarget)
	t.MoveSpeed = GetFloat("PLAYER_SPEED", t.MoveSpeed)
	t.JumpImpulse = GetFloat("PLAYER_JUMP", t.JumpImpulse)

	if t.MaxSpawnTime < t.MinSpawnTime {
		t.MaxSpawnTime = t.MinSpawnTime
	}
	if t.BlinkInterval <= 0 {
		t.BlinkInterval = DefaultTuning().BlinkInterval
	}
	return t
}
