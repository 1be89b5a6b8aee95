package object

import (
	"errors"
	"testing"

	"github.com/tomz197/firedodge/internal/config"
)

func newTestPlayer(v Visuals) (*Player, FlatGround) {
	b := DefaultBounds()
	ground := FlatGround{Y: b.Bottom + config.DefaultTuning().GroundHeight}
	return NewPlayer(testEnv(v), 0, ground, 0), ground
}

func TestPlayerStartsGrounded(t *testing.T) {
	p, ground := newTestPlayer(nil)
	if !p.Grounded || p.Y != ground.Y+p.HalfH {
		t.Errorf("Expected the player standing on the ground, got y=%v grounded=%v", p.Y, p.Grounded)
	}

	p.Update(tick(0))
	if !p.Grounded || p.Y != ground.Y+p.HalfH {
		t.Error("Expected the player to stay on the ground without input")
	}
}

func TestPlayerJumpAndLand(t *testing.T) {
	p, ground := newTestPlayer(nil)

	ctx := tick(0)
	ctx.Input.Jump = true
	p.Update(ctx)
	if p.Grounded || p.VY <= 0 || p.Y <= ground.Y+p.HalfH {
		t.Fatalf("Expected the player airborne and rising, got y=%v vy=%v", p.Y, p.VY)
	}

	// Holding jump in the air does not add another impulse.
	vy := p.VY
	p.Update(ctx)
	if p.VY >= vy {
		t.Error("Expected gravity to slow the rise")
	}

	for range 120 {
		p.Update(tick(0))
	}
	if !p.Grounded || p.Y != ground.Y+p.HalfH || p.VY != 0 {
		t.Errorf("Expected the player to land, got y=%v vy=%v", p.Y, p.VY)
	}
}

func TestPlayerCannotJumpWhileDucking(t *testing.T) {
	v := newRecordingVisuals()
	p, _ := newTestPlayer(v)
	box := p.Box()

	ctx := tick(0)
	ctx.Input.Duck = true
	ctx.Input.Jump = true
	p.Update(ctx)

	if !p.Ducking || !p.Grounded || p.VY != 0 {
		t.Errorf("Expected a grounded duck, got ducking=%v grounded=%v vy=%v", p.Ducking, p.Grounded, p.VY)
	}
	s := v.ofKind(KindPlayer)[0]
	if s.sx != 1 || s.sy != 0.5 {
		t.Errorf("Expected the sprite squashed to half height, got %vx%v", s.sx, s.sy)
	}
	if p.Box() != box {
		t.Error("Expected ducking to leave the collision box unchanged")
	}

	p.Update(tick(0))
	if p.Ducking || s.sy != 1 {
		t.Error("Expected the player to stand again on release")
	}
}

func TestPlayerMovesWithinBounds(t *testing.T) {
	p, _ := newTestPlayer(nil)
	b := DefaultBounds()

	ctx := tick(0)
	ctx.Input.Right = true
	for range 60 * 10 {
		p.Update(ctx)
	}
	if p.X != b.Right-p.HalfW {
		t.Errorf("Expected x clamped at right-halfW, got %v", p.X)
	}

	ctx.Input = Input{Left: true, Right: true}
	x := p.X
	p.Update(ctx)
	if p.X != x {
		t.Error("Expected opposite keys to cancel out")
	}
}

func TestPlayerSurvivalTime(t *testing.T) {
	p, _ := newTestPlayer(nil)
	for range 60 {
		p.Update(tick(0))
	}
	if p.SurvivalTime < 0.99 || p.SurvivalTime > 1.01 {
		t.Errorf("Expected about 1s survived, got %v", p.SurvivalTime)
	}
}

func TestGateObstacleHit(t *testing.T) {
	tests := []struct {
		name      string
		stored    float64 // value in Prefs at collision time
		local     float64 // player's copy, read when the round started
		survival  float64
		wantHigh  float64
		wantFlush int
	}{
		{"new record", 10.0, 10.0, 12.3, 12.3, 1},
		{"short round", 10.0, 10.0, 8.0, 10.0, 0},
		{"tie", 10.0, 10.0, 10.0, 10.0, 0},
		{"beaten elsewhere", 15.0, 10.0, 12.0, 15.0, 0},
		{"short round beaten elsewhere", 15.0, 10.0, 8.0, 15.0, 0},
		{"record over a raised score", 15.0, 10.0, 16.0, 16.0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := &memPrefs{values: map[string]float64{config.HighScoreKey: tt.stored}}
			round := &countingRound{}
			g := &Gate{Prefs: prefs, Round: round}

			p, _ := newTestPlayer(nil)
			p.HighScore = tt.local
			p.SurvivalTime = tt.survival

			g.ObstacleHit(p)

			if got := prefs.GetFloat(config.HighScoreKey, 0); got != tt.wantHigh {
				t.Errorf("Expected persisted high score %v, got %v", tt.wantHigh, got)
			}
			if p.HighScore != tt.wantHigh {
				t.Errorf("Expected player high score %v, got %v", tt.wantHigh, p.HighScore)
			}
			if prefs.flushes != tt.wantFlush {
				t.Errorf("Expected %d flushes, got %d", tt.wantFlush, prefs.flushes)
			}
			if round.resets != 1 {
				t.Errorf("Expected one round reset, got %d", round.resets)
			}
		})
	}
}

type failingPrefs struct{ memPrefs }

func (p *failingPrefs) Flush() error { return errors.New("disk full") }

func TestGateFlushErrorStillResets(t *testing.T) {
	round := &countingRound{}
	g := &Gate{Prefs: &failingPrefs{}, Round: round}
	p, _ := newTestPlayer(nil)
	p.SurvivalTime = 5

	g.ObstacleHit(p)
	if round.resets != 1 || p.HighScore != 5 {
		t.Error("Expected the round to reset even when saving fails")
	}
}

func TestGatePowerUpTouched(t *testing.T) {
	blast := &countingBlaster{}
	g := &Gate{Blast: blast}
	pu := NewPowerUp(testEnv(nil), 0, -8)

	g.PowerUpTouched(pu)
	g.PowerUpTouched(pu)

	if !pu.Collected() || !pu.IsDestroyed() {
		t.Error("Expected the power-up collected")
	}
	if blast.triggers != 1 {
		t.Errorf("Expected one blast, got %d", blast.triggers)
	}
}

func TestGateResetHighScore(t *testing.T) {
	prefs := &memPrefs{values: map[string]float64{config.HighScoreKey: 42}}
	g := &Gate{Prefs: prefs}
	p, _ := newTestPlayer(nil)
	p.HighScore = 42

	g.ResetHighScore(p)
	if p.HighScore != 0 || prefs.GetFloat(config.HighScoreKey, -1) != 0 || prefs.flushes != 1 {
		t.Error("Expected the high score cleared and saved")
	}
}
