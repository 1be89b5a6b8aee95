package loop

import "github.com/tomz197/firedodge/internal/object"

// World is the update queue of a round. Objects run in insertion order;
// objects spawned during a pass are queued and appended after it.
type World struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// AddObject adds an object to the world immediately.
func (w *World) AddObject(obj object.Object) {
	w.Objects = append(w.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the world and clears the queue.
func (w *World) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Update runs every object once and drops the ones that ask for removal.
// Pooled objects are released when dropped.
func (w *World) Update(ctx object.UpdateContext) error {
	kept := w.Objects[:0] // reuse backing array
	for _, obj := range w.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept

	w.FlushSpawned()
	return nil
}

// Clear drops every object, queued ones included. Destructible objects are
// destroyed first, so obstacles leave the registry and pending telegraphs
// never fire.
func (w *World) Clear() {
	for _, objs := range [][]object.Object{w.Objects, w.toSpawn} {
		for _, obj := range objs {
			if d, ok := obj.(object.Destructible); ok {
				d.MarkDestroyed()
			}
			object.ReleaseObject(obj)
		}
	}
	clear(w.Objects)
	w.Objects = w.Objects[:0]
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}
