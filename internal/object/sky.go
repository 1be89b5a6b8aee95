package object

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// SkyTint is the session's background colour. Only the most recent pulse
// may change it.
type SkyTint struct {
	Base    colorful.Color
	Target  colorful.Color
	Current colorful.Color

	generation int
	sprite     uuid.UUID
	visuals    Visuals
}

// NewSkyTint creates the sky sprite in its base colour. Unparsable hex
// colours fall back to sky blue and pure blue.
func NewSkyTint(env Env) *SkyTint {
	env = env.WithDefaults()
	base := parseColor(env.Log, env.Tuning.SkyBase, colorful.Color{R: 0.53, G: 0.81, B: 0.92})
	target := parseColor(env.Log, env.Tuning.SkyTarget, colorful.Color{B: 1})
	s := &SkyTint{
		Base:    base,
		Target:  target,
		Current: base,
		visuals: env.Visuals,
	}
	s.sprite = s.visuals.Spawn(KindSky, 0, 0)
	s.visuals.SetColor(s.sprite, base)
	return s
}

func parseColor(logger *log.Logger, hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		logger.Warn("invalid sky colour, using fallback", "value", hex, "err", err)
		return fallback
	}
	return c
}

func (s *SkyTint) set(c colorful.Color) {
	s.Current = c
	s.visuals.SetColor(s.sprite, c)
}

// Pulse starts a fade to Target and back to Base. A running pulse is
// superseded and stops on its next update.
func (s *SkyTint) Pulse(fade, hold float64) *SkyPulse {
	s.generation++
	return &SkyPulse{
		tint:       s,
		generation: s.generation,
		from:       s.Current,
		fade:       fade,
		hold:       hold,
	}
}

type pulsePhase int

const (
	pulseIn pulsePhase = iota
	pulseHold
	pulseOut
)

// SkyPulse animates one flash of the sky tint. Colours are interpolated per
// channel: a + (b-a)*t with t = elapsed/fade.
type SkyPulse struct {
	tint       *SkyTint
	generation int
	from       colorful.Color
	fade       float64
	hold       float64
	phase      pulsePhase
	elapsed    float64
}

// Update advances the pulse by one tick.
func (p *SkyPulse) Update(ctx UpdateContext) (bool, error) {
	if p.tint.generation != p.generation {
		return true, nil
	}

	p.elapsed += ctx.Delta.Seconds()
	switch p.phase {
	case pulseIn:
		if p.elapsed < p.fade {
			p.tint.set(p.from.BlendRgb(p.tint.Target, p.elapsed/p.fade))
			return false, nil
		}
		p.tint.set(p.tint.Target)
		p.phase = pulseHold
		p.elapsed = 0
	case pulseHold:
		if p.elapsed >= p.hold {
			p.phase = pulseOut
			p.elapsed = 0
		}
	case pulseOut:
		if p.elapsed < p.fade {
			p.tint.set(p.tint.Target.BlendRgb(p.tint.Base, p.elapsed/p.fade))
			return false, nil
		}
		p.tint.set(p.tint.Base)
		return true, nil
	}
	return false, nil
}
