package object

import (
	"math"

	"github.com/google/uuid"
)

// blinkEpsilon absorbs float drift when comparing accumulated tick time
// against multiples of the blink interval.
const blinkEpsilon = 1e-9

// Warning is the blinking telegraph shown before an obstacle appears.
// It toggles once per elapsed interval, floor(Duration/Interval) times in
// total, then removes its sprite and hands its position to the callback.
type Warning struct {
	X, Y     float64
	Duration float64
	Interval float64
	Elapsed  float64
	Visible  bool
	Toggles  int

	target   int
	sprite   uuid.UUID
	visuals  Visuals
	complete func(ctx UpdateContext, x, y float64)
	finished bool
}

// Telegraph starts a warning at (x, y) lasting duration seconds. complete
// runs exactly once, on the tick the warning ends; the caller spawns the
// real obstacle there.
func Telegraph(env Env, x, y, duration float64, complete func(ctx UpdateContext, x, y float64)) *Warning {
	interval := env.Tuning.BlinkInterval
	target := 0
	if interval > 0 && duration > 0 {
		target = int(math.Floor(duration/interval + blinkEpsilon))
	}
	w := &Warning{
		X:        x,
		Y:        y,
		Duration: duration,
		Interval: interval,
		Visible:  true,
		target:   target,
		visuals:  env.visuals(),
		complete: complete,
	}
	w.sprite = w.visuals.Spawn(KindWarning, x, y)
	return w
}

// Update advances the blink schedule.
func (w *Warning) Update(ctx UpdateContext) (bool, error) {
	if w.finished {
		return true, nil
	}

	w.Elapsed += ctx.Delta.Seconds()
	for w.Toggles < w.target && w.Elapsed+blinkEpsilon >= float64(w.Toggles+1)*w.Interval {
		w.Visible = !w.Visible
		w.Toggles++
		w.visuals.SetVisible(w.sprite, w.Visible)
	}

	if w.Toggles < w.target || w.Elapsed+blinkEpsilon < w.Duration {
		return false, nil
	}

	w.finished = true
	w.visuals.Destroy(w.sprite)
	if w.complete != nil {
		w.complete(ctx, w.X, w.Y)
	}
	return true, nil
}

// MarkDestroyed drops the warning without spawning anything. Calling it
// after completion is a no-op.
func (w *Warning) MarkDestroyed() {
	if w.finished {
		return
	}
	w.finished = true
	w.visuals.Destroy(w.sprite)
}

// IsDestroyed reports whether the warning has completed or been dropped.
func (w *Warning) IsDestroyed() bool {
	return w.finished
}
