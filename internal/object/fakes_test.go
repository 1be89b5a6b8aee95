package object

import (
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/firedodge/internal/config"
)

type sprite struct {
	kind    Kind
	x, y    float64
	visible bool
	color   colorful.Color
	sx, sy  float64
	toggles int
}

// recordingVisuals keeps every live sprite so tests can inspect it.
type recordingVisuals struct {
	sprites   map[uuid.UUID]*sprite
	destroyed int
}

func newRecordingVisuals() *recordingVisuals {
	return &recordingVisuals{sprites: map[uuid.UUID]*sprite{}}
}

func (v *recordingVisuals) Spawn(kind Kind, x, y float64) uuid.UUID {
	h := uuid.New()
	v.sprites[h] = &sprite{kind: kind, x: x, y: y, visible: true, sx: 1, sy: 1}
	return h
}

func (v *recordingVisuals) Move(h uuid.UUID, x, y float64) {
	if s, ok := v.sprites[h]; ok {
		s.x, s.y = x, y
	}
}

func (v *recordingVisuals) SetVisible(h uuid.UUID, visible bool) {
	if s, ok := v.sprites[h]; ok {
		s.visible = visible
		s.toggles++
	}
}

func (v *recordingVisuals) SetColor(h uuid.UUID, c colorful.Color) {
	if s, ok := v.sprites[h]; ok {
		s.color = c
	}
}

func (v *recordingVisuals) SetScale(h uuid.UUID, sx, sy float64) {
	if s, ok := v.sprites[h]; ok {
		s.sx, s.sy = sx, sy
	}
}

func (v *recordingVisuals) Destroy(h uuid.UUID) {
	if _, ok := v.sprites[h]; ok {
		delete(v.sprites, h)
		v.destroyed++
	}
}

func (v *recordingVisuals) ofKind(k Kind) []*sprite {
	var out []*sprite
	for _, s := range v.sprites {
		if s.kind == k {
			out = append(out, s)
		}
	}
	return out
}

// fixedRand always returns the same draws.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return min(r.i, n-1) }

type memPrefs struct {
	values  map[string]float64
	flushes int
}

func (p *memPrefs) GetFloat(key string, def float64) float64 {
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

func (p *memPrefs) SetFloat(key string, value float64) {
	if p.values == nil {
		p.values = map[string]float64{}
	}
	p.values[key] = value
}

func (p *memPrefs) SetFloatIfGreater(key string, value float64) (float64, bool) {
	if cur, ok := p.values[key]; ok && cur >= value {
		return cur, false
	}
	p.SetFloat(key, value)
	return value, true
}

func (p *memPrefs) Flush() error {
	p.flushes++
	return nil
}

type countingRound struct{ resets int }

func (r *countingRound) ResetRound() { r.resets++ }

type countingBlaster struct{ triggers int }

func (b *countingBlaster) Trigger() int {
	b.triggers++
	return 0
}

type fixedPlayer struct{ x, y float64 }

func (p fixedPlayer) Position() (float64, float64) { return p.x, p.y }

func testEnv(v Visuals) Env {
	return Env{Tuning: config.DefaultTuning(), Visuals: v, Rand: fixedRand{}}.WithDefaults()
}

func tick(elapsed time.Duration) UpdateContext {
	return UpdateContext{
		Delta:   config.TickTime,
		Elapsed: elapsed,
		Bounds:  DefaultBounds(),
	}
}
