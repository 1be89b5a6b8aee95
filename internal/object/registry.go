package object

import "slices"

// Registry is the set of live obstacles of a session, in spawn order.
// It replaces any scene-wide lookup: obstacles join when spawned and leave
// when they are destroyed, whatever destroyed them. It is owned by the
// session goroutine.
type Registry struct {
	live []*Obstacle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Track adds an obstacle to the live set. The obstacle removes itself when
// destroyed.
func (r *Registry) Track(o *Obstacle) {
	if o == nil || o.destroyed {
		return
	}
	o.registry = r
	r.live = append(r.live, o)
}

// Remove drops an obstacle from the live set. Unknown obstacles are ignored.
func (r *Registry) Remove(o *Obstacle) {
	if i := slices.Index(r.live, o); i >= 0 {
		r.live = slices.Delete(r.live, i, i+1)
	}
}

// Snapshot returns a point-in-time copy of the live set. Callers applying
// bulk effects iterate the copy so removals during the sweep are safe.
func (r *Registry) Snapshot() []*Obstacle {
	return slices.Clone(r.live)
}

// Len returns the number of live obstacles.
func (r *Registry) Len() int {
	return len(r.live)
}
