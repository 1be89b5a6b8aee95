package draw

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/object"
)

// Sprite is one drawable entity of the scene.
type Sprite struct {
	Kind    object.Kind
	X, Y    float64
	Visible bool
	Color   colorful.Color
	ScaleX  float64
	ScaleY  float64
	order   int
}

// Palette colours per sprite kind.
var palette = map[object.Kind]colorful.Color{
	object.KindGround:   {R: 0.36, G: 0.25, B: 0.13},
	object.KindPlayer:   {R: 0.95, G: 0.95, B: 0.95},
	object.KindDrifter:  {R: 1.00, G: 0.45, B: 0.00},
	object.KindFaller:   {R: 0.90, G: 0.10, B: 0.05},
	object.KindRiser:    {R: 1.00, G: 0.75, B: 0.10},
	object.KindPursuer:  {R: 0.85, G: 0.00, B: 0.45},
	object.KindPendulum: {R: 1.00, G: 0.30, B: 0.20},
	object.KindWarning:  {R: 1.00, G: 0.90, B: 0.00},
	object.KindPowerUp:  {R: 0.10, G: 0.45, B: 1.00},
	object.KindAsh:      {R: 0.35, G: 0.35, B: 0.35},
}

// Scene implements object.Visuals by keeping every sprite in a map and
// drawing them onto a Canvas each frame. It belongs to one session goroutine.
type Scene struct {
	sprites map[uuid.UUID]*Sprite
	sky     uuid.UUID
	next    int
	tuning  config.Tuning
	bounds  object.Bounds
	log     *log.Logger

	drawBuf []*Sprite
	polyBuf []Point
}

// NewScene creates an empty scene for the given play area.
func NewScene(t config.Tuning, b object.Bounds, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scene{
		sprites: map[uuid.UUID]*Sprite{},
		tuning:  t,
		bounds:  b,
		log:     logger.WithPrefix("scene"),
	}
}

// Spawn implements object.Visuals.
func (s *Scene) Spawn(kind object.Kind, x, y float64) uuid.UUID {
	col, ok := palette[kind]
	if !ok && kind != object.KindSky {
		s.log.Warn("no sprite for kind", "kind", kind)
		return uuid.Nil
	}
	h := uuid.New()
	s.next++
	s.sprites[h] = &Sprite{Kind: kind, X: x, Y: y, Visible: true, Color: col, ScaleX: 1, ScaleY: 1, order: s.next}
	if kind == object.KindSky {
		s.sky = h
	}
	return h
}

// Move implements object.Visuals.
func (s *Scene) Move(h uuid.UUID, x, y float64) {
	if sp, ok := s.sprites[h]; ok {
		sp.X, sp.Y = x, y
	}
}

// SetVisible implements object.Visuals.
func (s *Scene) SetVisible(h uuid.UUID, visible bool) {
	if sp, ok := s.sprites[h]; ok {
		sp.Visible = visible
	}
}

// SetColor implements object.Visuals.
func (s *Scene) SetColor(h uuid.UUID, c colorful.Color) {
	if sp, ok := s.sprites[h]; ok {
		sp.Color = c
	}
}

// SetScale implements object.Visuals.
func (s *Scene) SetScale(h uuid.UUID, sx, sy float64) {
	if sp, ok := s.sprites[h]; ok {
		sp.ScaleX, sp.ScaleY = sx, sy
	}
}

// Destroy implements object.Visuals.
func (s *Scene) Destroy(h uuid.UUID) {
	delete(s.sprites, h)
	if h == s.sky {
		s.sky = uuid.Nil
	}
}

// Sprite returns the sprite behind a handle.
func (s *Scene) Sprite(h uuid.UUID) (*Sprite, bool) {
	sp, ok := s.sprites[h]
	return sp, ok
}

// Len returns the number of live sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// SkyColor returns the current background colour.
func (s *Scene) SkyColor() colorful.Color {
	if sp, ok := s.sprites[s.sky]; ok {
		return sp.Color
	}
	return colorful.Color{}
}

// Draw paints every visible sprite onto the canvas in spawn order, over the
// sky colour.
func (s *Scene) Draw(c *Canvas) {
	c.Clear(s.SkyColor())

	s.drawBuf = s.drawBuf[:0]
	for _, sp := range s.sprites {
		if sp.Visible && sp.Kind != object.KindSky {
			s.drawBuf = append(s.drawBuf, sp)
		}
	}
	sort.Slice(s.drawBuf, func(i, j int) bool { return s.drawBuf[i].order < s.drawBuf[j].order })

	for _, sp := range s.drawBuf {
		s.drawSprite(c, sp)
	}
}

func (s *Scene) drawSprite(c *Canvas, sp *Sprite) {
	t := s.tuning
	switch sp.Kind {
	case object.KindGround:
		c.FillRect(s.bounds.Left, s.bounds.Bottom, s.bounds.Right, sp.Y, sp.Color)

	case object.KindPlayer:
		// Squash towards the feet so ducking keeps the player on the ground.
		hw, hh := t.PlayerHalfW*sp.ScaleX, t.PlayerHalfH*sp.ScaleY
		feet := sp.Y - t.PlayerHalfH
		c.FillRect(sp.X-hw, feet, sp.X+hw, feet+2*hh, sp.Color)

	case object.KindDrifter, object.KindFaller, object.KindRiser, object.KindPursuer, object.KindPendulum:
		c.FillPolygon(s.flame(sp.X, sp.Y, t.ObstacleHalfSize), sp.Color)

	case object.KindWarning:
		c.FillPolygon(s.triangle(sp.X, sp.Y, t.ObstacleHalfSize), sp.Color)

	case object.KindPowerUp:
		c.FillPolygon(s.diamond(sp.X, sp.Y, t.PowerUpHalfSize), sp.Color)

	case object.KindAsh:
		r := t.ObstacleHalfSize / 2
		c.FillRect(sp.X-r, sp.Y-r, sp.X+r, sp.Y, sp.Color)
	}
}

func (s *Scene) points(n int) []Point {
	if cap(s.polyBuf) < n {
		s.polyBuf = make([]Point, n)
	}
	return s.polyBuf[:n]
}

// flame is a teardrop pointing up.
func (s *Scene) flame(x, y, r float64) []Point {
	p := s.points(5)
	p[0] = Point{x, y + r*1.4}
	p[1] = Point{x + r, y}
	p[2] = Point{x + r*0.6, y - r}
	p[3] = Point{x - r*0.6, y - r}
	p[4] = Point{x - r, y}
	return p
}

func (s *Scene) triangle(x, y, r float64) []Point {
	p := s.points(3)
	p[0] = Point{x, y + r}
	p[1] = Point{x + r, y - r}
	p[2] = Point{x - r, y - r}
	return p
}

func (s *Scene) diamond(x, y, r float64) []Point {
	p := s.points(4)
	p[0] = Point{x, y + r}
	p[1] = Point{x + r, y}
	p[2] = Point{x, y - r}
	p[3] = Point{x - r, y}
	return p
}
