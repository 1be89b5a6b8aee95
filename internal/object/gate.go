package object

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/firedodge/internal/config"
)

// Blaster clears every live obstacle and returns how many it cleared.
type Blaster interface {
	Trigger() int
}

// Gate turns player collisions into round and score events.
type Gate struct {
	Prefs Prefs
	Round RoundControl
	Blast Blaster
	Log   *log.Logger
}

func (g *Gate) logger() *log.Logger {
	if g.Log == nil {
		return log.New(io.Discard)
	}
	return g.Log
}

// ObstacleHit ends the round. A survival time above the high score is
// persisted first. The stored score may have been raised by another session
// since the round started, so it is compared again at write time and the
// player's copy is refreshed from it.
func (g *Gate) ObstacleHit(p *Player) {
	switch {
	case g.Prefs == nil:
		if p.SurvivalTime > p.HighScore {
			p.HighScore = p.SurvivalTime
			g.logger().Info("new high score", "seconds", p.HighScore)
		}
	case p.SurvivalTime > p.HighScore:
		best, raised := g.Prefs.SetFloatIfGreater(config.HighScoreKey, p.SurvivalTime)
		p.HighScore = best
		if raised {
			if err := g.Prefs.Flush(); err != nil {
				g.logger().Error("failed to save high score", "err", err)
			}
			g.logger().Info("new high score", "seconds", best)
		}
	default:
		p.HighScore = max(p.HighScore, g.Prefs.GetFloat(config.HighScoreKey, 0))
	}
	if g.Round != nil {
		g.Round.ResetRound()
	}
}

// PowerUpTouched collects the power-up and sets off the water blast.
func (g *Gate) PowerUpTouched(pu *PowerUp) {
	if pu.IsDestroyed() {
		return
	}
	pu.Collect()
	if g.Blast != nil {
		n := g.Blast.Trigger()
		g.logger().Debug("water blast", "cleared", n)
	}
}

// ResetHighScore sets the persisted high score back to zero.
func (g *Gate) ResetHighScore(p *Player) {
	p.HighScore = 0
	if g.Prefs == nil {
		return
	}
	g.Prefs.SetFloat(config.HighScoreKey, 0)
	if err := g.Prefs.Flush(); err != nil {
		g.logger().Error("failed to reset high score", "err", err)
	}
}
