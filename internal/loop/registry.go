package loop

import (
	"github.com/kamstrup/intmap"

	"github.com/tomz197/spaceshooter/internal/object"
)

// ID identifies an entity for the lifetime of a session. IDs are never reused.
type ID uint32

// Registry owns every live entity. Entities are kept in creation order, with
// meteors and lasers additionally bucketed for collision queries.
//
// Removal is mark-and-sweep: entities are marked destroyed during the update
// and collision passes, and Sweep compacts every bucket in one pass.
type Registry struct {
	all     []object.Object
	ids     []ID // Parallel to all
	meteors []*object.Meteor
	lasers  []*object.Laser

	index  *intmap.Map[ID, object.Object]
	nextID ID

	toSpawn []object.Object // Objects to add after the current update pass
}

// Compile-time check that Registry can be handed to entities as their spawner.
var _ object.Spawner = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index:  intmap.New[ID, object.Object](64),
		nextID: 1,
	}
}

// Add inserts obj immediately and returns its ID.
func (r *Registry) Add(obj object.Object) ID {
	id := r.nextID
	r.nextID++

	r.all = append(r.all, obj)
	r.ids = append(r.ids, id)
	r.index.Put(id, obj)

	switch o := obj.(type) {
	case *object.Meteor:
		r.meteors = append(r.meteors, o)
	case *object.Laser:
		r.lasers = append(r.lasers, o)
	}
	return id
}

// Spawn queues obj to be added by the next FlushSpawned.
// Implements object.Spawner.
func (r *Registry) Spawn(obj object.Object) {
	r.toSpawn = append(r.toSpawn, obj)
}

// FlushSpawned adds all queued objects and clears the queue.
func (r *Registry) FlushSpawned() {
	for _, obj := range r.toSpawn {
		r.Add(obj)
	}
	clear(r.toSpawn)
	r.toSpawn = r.toSpawn[:0]
}

// Lookup returns the live entity with the given ID. Entities marked destroyed
// are reported as missing even before the next Sweep.
func (r *Registry) Lookup(id ID) (object.Object, bool) {
	obj, ok := r.index.Get(id)
	if !ok || obj.IsDestroyed() {
		return nil, false
	}
	return obj, true
}

// Update runs one update pass over the entities present when it starts, in
// creation order. Entities whose update asks for removal are marked destroyed.
// Objects spawned during the pass stay queued until FlushSpawned.
func (r *Registry) Update(ctx object.UpdateContext) {
	n := len(r.all)
	for i := 0; i < n; i++ {
		obj := r.all[i]
		if obj.IsDestroyed() {
			continue
		}
		if obj.Update(ctx) {
			obj.MarkDestroyed()
		}
	}
}

// Sweep drops every entity marked destroyed, preserving order.
func (r *Registry) Sweep() {
	kept := 0
	for i, obj := range r.all {
		if obj.IsDestroyed() {
			r.index.Del(r.ids[i])
			continue
		}
		r.all[kept] = obj
		r.ids[kept] = r.ids[i]
		kept++
	}
	clear(r.all[kept:])
	r.all = r.all[:kept]
	r.ids = r.ids[:kept]

	r.meteors = sweepBucket(r.meteors)
	r.lasers = sweepBucket(r.lasers)
}

func sweepBucket[T object.Object](bucket []T) []T {
	kept := bucket[:0]
	for _, obj := range bucket {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
		}
	}
	clear(bucket[len(kept):])
	return kept
}

// Objects returns all entities in creation order, which is also draw order.
// The slice is owned by the registry and valid until the next mutation.
func (r *Registry) Objects() []object.Object {
	return r.all
}

// Meteors returns the meteor bucket in creation order.
func (r *Registry) Meteors() []*object.Meteor {
	return r.meteors
}

// Lasers returns the laser bucket in creation order.
func (r *Registry) Lasers() []*object.Laser {
	return r.lasers
}

// Len returns the number of entities, including any marked but not yet swept.
func (r *Registry) Len() int {
	return len(r.all)
}

// Count returns the number of live entities in the given category.
func (r *Registry) Count(c object.Category) int {
	n := 0
	for _, obj := range r.all {
		if obj.Category() == c && !obj.IsDestroyed() {
			n++
		}
	}
	return n
}
