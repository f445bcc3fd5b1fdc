package loop

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

var testEpoch = time.Unix(1_700_000_000, 0)

func solid(w, h int) *sprite.Image {
	im := sprite.New(w, h, color.RGBA{A: 255})
	im.FillRect(0, 0, w, h)
	return im
}

// countingStar counts its updates.
type countingStar struct {
	*object.Star
	updates int
}

func (s *countingStar) Update(object.UpdateContext) bool {
	s.updates++
	return false
}

// spawningStar spawns child on its first update.
type spawningStar struct {
	countingStar
	child object.Object
}

func (s *spawningStar) Update(ctx object.UpdateContext) bool {
	s.countingStar.Update(ctx)
	if s.updates == 1 {
		ctx.Spawner.Spawn(s.child)
	}
	return false
}

func newCountingStar() *countingStar {
	return &countingStar{Star: object.NewStar(physics.Vec{}, solid(1, 1))}
}

func TestRegistryAddAndBuckets(t *testing.T) {
	r := NewRegistry()

	star := object.NewStar(physics.Vec{}, solid(1, 1))
	m := object.NewMeteor(physics.Vec{}, physics.Vec{Y: 1}, 400, 40, solid(10, 10), testEpoch)
	l := object.NewLaser(physics.Vec{}, solid(2, 4))

	id1 := r.Add(star)
	id2 := r.Add(m)
	id3 := r.Add(l)

	assert.Less(t, id1, id2)
	assert.Less(t, id2, id3)
	assert.Equal(t, []object.Object{star, m, l}, r.Objects())
	assert.Equal(t, []*object.Meteor{m}, r.Meteors())
	assert.Equal(t, []*object.Laser{l}, r.Lasers())

	got, ok := r.Lookup(id2)
	require.True(t, ok)
	assert.Same(t, m, got)

	_, ok = r.Lookup(ID(999))
	assert.False(t, ok)
}

func TestRegistrySpawnIsDeferred(t *testing.T) {
	r := NewRegistry()
	child := newCountingStar()
	parent := &spawningStar{countingStar: *newCountingStar(), child: child}
	r.Add(parent)

	r.Update(object.UpdateContext{Spawner: r})
	assert.Equal(t, 1, r.Len(), "spawned objects wait for the flush")

	r.FlushSpawned()
	assert.Equal(t, 2, r.Len())
	assert.Zero(t, child.updates)

	r.Update(object.UpdateContext{Spawner: r})
	assert.Equal(t, 2, parent.updates)
	assert.Equal(t, 1, child.updates)
	assert.Equal(t, 2, r.Len())
}

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry()

	var meteors []*object.Meteor
	var ids []ID
	for i := 0; i < 4; i++ {
		m := object.NewMeteor(physics.Vec{X: float64(i)}, physics.Vec{Y: 1}, 400, 40, solid(10, 10), testEpoch)
		meteors = append(meteors, m)
		ids = append(ids, r.Add(m))
	}

	meteors[1].MarkDestroyed()
	meteors[3].MarkDestroyed()

	// Marked entities read as gone before the sweep
	_, ok := r.Lookup(ids[1])
	assert.False(t, ok)
	assert.Equal(t, 2, r.Count(object.CategoryMeteor))
	assert.Equal(t, 4, r.Len())

	r.Sweep()

	assert.Equal(t, []*object.Meteor{meteors[0], meteors[2]}, r.Meteors())
	assert.Equal(t, []object.Object{meteors[0], meteors[2]}, r.Objects())
	_, ok = r.Lookup(ids[2])
	assert.True(t, ok)
	assert.Equal(t, 2, r.index.Len())
}

func TestRegistryUpdateMarksRemoved(t *testing.T) {
	r := NewRegistry()
	l := object.NewLaser(physics.Vec{X: 10, Y: 1}, solid(2, 4))
	r.Add(l)

	r.Update(object.UpdateContext{
		Delta:  100 * time.Millisecond,
		Bounds: physics.Rect{W: 100, H: 100},
	})
	assert.True(t, l.IsDestroyed())

	r.Sweep()
	assert.Empty(t, r.Lasers())
	assert.Zero(t, r.Len())
}
