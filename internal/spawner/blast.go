package spawner

import "github.com/tomz197/firedodge/internal/object"

// Blast clears the field when the player collects water.
type Blast struct {
	env      object.Env
	registry *object.Registry
	sky      *object.SkyTint
	spawner  object.Spawner
}

// NewBlast creates the blast for a round. Ash and sky pulses are queued on sp.
func NewBlast(env object.Env, reg *object.Registry, sky *object.SkyTint, sp object.Spawner) *Blast {
	return &Blast{
		env:      env.WithDefaults(),
		registry: reg,
		sky:      sky,
		spawner:  sp,
	}
}

// Trigger plays the water cue, pulses the sky and turns every obstacle live
// at the time of the call into ash. It returns the number of obstacles
// cleared.
func (b *Blast) Trigger() int {
	b.env.Audio.Play(object.ClipWater)
	if b.sky != nil {
		b.spawner.Spawn(b.sky.Pulse(b.env.Tuning.SkyFade, b.env.Tuning.SkyHold))
	}

	live := b.registry.Snapshot()
	for _, o := range live {
		b.spawner.Spawn(object.NewAsh(b.env, o.X, o.Y))
		b.env.Audio.Play(object.ClipExtinguish)
		o.MarkDestroyed()
	}
	return len(live)
}
