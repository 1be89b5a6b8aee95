package object

import (
	"math"
	"testing"
	"time"
)

func TestPendulumAt(t *testing.T) {
	b := DefaultBounds()
	const speed, amp = 2.0, 4.0

	x, y := PendulumAt(0, b, speed, amp)
	if x != 0 || y != b.Top {
		t.Errorf("Expected the arc to start at (0, top), got (%v, %v)", x, y)
	}

	// Quarter period: sin = 1, far right and lowest point.
	x, y = PendulumAt(math.Pi/(2*speed), b, speed, amp)
	if math.Abs(x-(b.Right-1)) > 1e-9 || math.Abs(y-(b.Top-amp)) > 1e-9 {
		t.Errorf("Expected (right-1, top-amp) at a quarter period, got (%v, %v)", x, y)
	}

	period := 2 * math.Pi / speed
	for i := 0; i < 1000; i++ {
		tt := float64(i) * 0.037
		x, y := PendulumAt(tt, b, speed, amp)
		if y > b.Top {
			t.Fatalf("y above top at t=%v: %v", tt, y)
		}
		if x < b.Left+1-1e-9 || x > b.Right-1+1e-9 {
			t.Fatalf("x outside swing range at t=%v: %v", tt, x)
		}
		x2, y2 := PendulumAt(tt+period, b, speed, amp)
		if math.Abs(x-x2) > 1e-6 || math.Abs(y-y2) > 1e-6 {
			t.Fatalf("Expected periodic motion at t=%v", tt)
		}
	}
}

func TestPursuitMotion(t *testing.T) {
	env := testEnv(nil)
	o := NewObstacle(env, Pursuer, 0, 0, PursuitMotion{Speed: 3})

	ctx := UpdateContext{Delta: time.Second, Bounds: DefaultBounds(), Player: fixedPlayer{x: 6, y: 8}}
	o.Motion.Step(o, ctx)
	if math.Abs(o.X-1.8) > 1e-9 || math.Abs(o.Y-2.4) > 1e-9 {
		t.Errorf("Expected a 3-unit step towards the player, got (%v, %v)", o.X, o.Y)
	}

	// Sitting on the player: no direction, no move.
	o.X, o.Y = 6, 8
	o.Motion.Step(o, ctx)
	if o.X != 6 || o.Y != 8 {
		t.Errorf("Expected no move on top of the player, got (%v, %v)", o.X, o.Y)
	}

	ctx.Player = nil
	o.Motion.Step(o, ctx)
	if o.X != 6 || o.Y != 8 {
		t.Error("Expected no move without a player")
	}
}

func TestOffscreenRemovedWithinOneTick(t *testing.T) {
	b := DefaultBounds()
	tests := []struct {
		name string
		arch Archetype
		x, y float64
	}{
		{"drifter past right", Drifter, b.Right + 1.01, 0},
		{"drifter past left", Drifter, b.Left - 1.5, 0},
		{"pursuer below", Pursuer, 0, b.Bottom - 1.2},
		{"pursuer above", Pursuer, 0, b.Top + 2},
		{"riser above", Riser, 0, b.Top + 1.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newRecordingVisuals()
			reg := NewRegistry()
			o := NewObstacle(testEnv(v), tt.arch, tt.x, tt.y, LinearMotion{})
			reg.Track(o)

			remove, err := o.Update(tick(0))
			if err != nil || !remove {
				t.Fatalf("Expected removal on the next tick, got remove=%v err=%v", remove, err)
			}
			if !o.IsDestroyed() || reg.Len() != 0 || len(v.sprites) != 0 {
				t.Error("Expected the obstacle destroyed, unregistered and its sprite gone")
			}
		})
	}
}

func TestOnscreenAtMarginKept(t *testing.T) {
	b := DefaultBounds()
	o := NewObstacle(testEnv(nil), Drifter, b.Right+1, 0, LinearMotion{})
	if remove, _ := o.Update(tick(0)); remove {
		t.Error("Expected an obstacle exactly on the margin to stay")
	}
}

func TestTimeouts(t *testing.T) {
	b := DefaultBounds()
	tests := []struct {
		name    string
		arch    Archetype
		x, y    float64
		timeout float64
	}{
		// Fallers and pendulums ignore the bounds check.
		{"faller", Faller, 0, b.Top + 5, 10},
		{"pendulum", Pendulum, 0, b.Top + 5, 15},
		{"pursuer", Pursuer, 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObstacle(testEnv(nil), tt.arch, tt.x, tt.y, LinearMotion{})
			ctx := tick(0)
			ctx.Delta = 100 * time.Millisecond

			steps := 0
			for {
				remove, _ := o.Update(ctx)
				steps++
				if remove {
					break
				}
				if steps > 1000 {
					t.Fatal("Expected the obstacle to time out")
				}
			}
			if math.Abs(o.Age-tt.timeout) > 0.1+1e-9 {
				t.Errorf("Expected timeout near %vs, got %vs", tt.timeout, o.Age)
			}
		})
	}
}

func TestDrifterHasNoTimeout(t *testing.T) {
	o := NewObstacle(testEnv(nil), Drifter, 0, 0, LinearMotion{})
	ctx := tick(0)
	ctx.Delta = time.Second
	for range 30 {
		if remove, _ := o.Update(ctx); remove {
			t.Fatal("Expected a stationary drifter on screen to live on")
		}
	}
}

func TestMarkDestroyedIdempotent(t *testing.T) {
	v := newRecordingVisuals()
	reg := NewRegistry()
	o := NewObstacle(testEnv(v), Faller, 0, 0, LinearMotion{})
	reg.Track(o)

	o.MarkDestroyed()
	o.MarkDestroyed()
	if v.destroyed != 1 {
		t.Errorf("Expected one sprite destroy, got %d", v.destroyed)
	}
	if reg.Len() != 0 {
		t.Error("Expected the obstacle to leave the registry")
	}
	if remove, _ := o.Update(tick(0)); !remove {
		t.Error("Expected a destroyed obstacle to be removed on update")
	}

	reg.Track(o)
	if reg.Len() != 0 {
		t.Error("Expected a destroyed obstacle not to be tracked")
	}
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	reg := NewRegistry()
	env := testEnv(nil)
	a := NewObstacle(env, Faller, 0, 0, LinearMotion{})
	b := NewObstacle(env, Faller, 1, 0, LinearMotion{})
	reg.Track(a)
	reg.Track(b)

	snap := reg.Snapshot()
	for _, o := range snap {
		o.MarkDestroyed()
	}
	if len(snap) != 2 || reg.Len() != 0 {
		t.Errorf("Expected the snapshot to survive removals, got snap=%d live=%d", len(snap), reg.Len())
	}
}

func TestArchetypeClips(t *testing.T) {
	want := map[Archetype]Clip{
		Drifter: ClipFire1, Faller: ClipFire2, Riser: ClipFire3, Pursuer: ClipFire4, Pendulum: ClipFire5,
	}
	for a, c := range want {
		if a.Clip() != c {
			t.Errorf("%v: got clip %q, want %q", a, a.Clip(), c)
		}
	}
	if Pendulum.Kind() != KindPendulum || Drifter.Kind() != KindDrifter {
		t.Error("Expected archetype kinds to line up with sprite kinds")
	}
}
