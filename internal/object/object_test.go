package object

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

var (
	testBounds = physics.Rect{W: config.ViewWidth, H: config.ViewHeight}
	testEpoch  = time.Unix(1_700_000_000, 0)
)

func solid(w, h int) *sprite.Image {
	im := sprite.New(w, h, color.RGBA{A: 255})
	im.FillRect(0, 0, w, h)
	return im
}

// spawnRecorder collects spawned objects.
type spawnRecorder struct {
	spawned []Object
}

func (r *spawnRecorder) Spawn(obj Object) {
	r.spawned = append(r.spawned, obj)
}

// soundRecorder collects played sounds.
type soundRecorder struct {
	played []audio.Sound
}

func (r *soundRecorder) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func ctxAt(now time.Time, delta time.Duration, in Input) UpdateContext {
	return UpdateContext{
		Delta:  delta,
		Now:    now,
		Input:  in,
		Bounds: testBounds,
	}
}

func TestLaserMovesUp(t *testing.T) {
	l := NewLaser(physics.Vec{X: 500, Y: 600}, solid(8, 52))

	assert.Equal(t, physics.Vec{X: 500, Y: 574}, l.Pos)
	assert.Equal(t, 600.0, l.Visual().Rect.Bottom())
	assert.Equal(t, CategoryLaser, l.Category())

	remove := l.Update(ctxAt(testEpoch, 250*time.Millisecond, Input{}))
	assert.False(t, remove)
	assert.InDelta(t, 574-100, l.Pos.Y, 1e-9)
}

func TestLaserRemovedAboveView(t *testing.T) {
	l := NewLaser(physics.Vec{X: 500, Y: 10}, solid(8, 52))

	// Bottom at 10 -> 0 after 25ms: still touching the edge
	assert.False(t, l.Update(ctxAt(testEpoch, 25*time.Millisecond, Input{})))
	assert.True(t, l.Update(ctxAt(testEpoch, time.Millisecond, Input{})))
}

func TestMeteorMovesAndSpins(t *testing.T) {
	m := NewMeteor(physics.Vec{X: 500, Y: -50}, physics.Vec{X: 0, Y: 2}, 450, 60, solid(100, 86), testEpoch)

	assert.Equal(t, physics.Vec{X: 0, Y: 450}, m.Velocity)
	assert.Equal(t, testEpoch, m.CreatedAt())

	remove := m.Update(ctxAt(testEpoch.Add(100*time.Millisecond), 100*time.Millisecond, Input{}))
	require.False(t, remove)

	assert.InDelta(t, -5, m.Pos.Y, 1e-9)
	assert.InDelta(t, 6, m.Rotation, 1e-9)

	v := m.Visual()
	assert.Equal(t, m.Pos, v.Rect.Center())
	assert.Greater(t, v.Rect.W, 100.0)
	assert.Same(t, m.base, v.Image.Source)
}

func TestMeteorLifetime(t *testing.T) {
	m := NewMeteor(physics.Vec{X: 500, Y: -50}, physics.Vec{Y: 1}, 400, 40, solid(100, 86), testEpoch)

	step := 100 * time.Millisecond
	now := testEpoch
	for i := 0; i < 19; i++ {
		now = now.Add(step)
		require.False(t, m.Update(ctxAt(now, step, Input{})), "removed early at %v", now.Sub(testEpoch))
	}

	now = now.Add(step)
	assert.True(t, m.Update(ctxAt(now, step, Input{})))
}

func TestMeteorSpawnerRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewMeteorSpawner(testBounds, config.SpawnInterval, solid(100, 86), rng, testEpoch)

	for i := 0; i < 200; i++ {
		m := s.Spawn(testEpoch)
		assert.GreaterOrEqual(t, m.Pos.X, 0.0)
		assert.LessOrEqual(t, m.Pos.X, float64(config.ViewWidth))
		assert.GreaterOrEqual(t, m.Pos.Y, float64(config.MeteorSpawnMinY))
		assert.LessOrEqual(t, m.Pos.Y, float64(config.MeteorSpawnMaxY))
		assert.Equal(t, m.Pos.X, math.Trunc(m.Pos.X))

		speed := m.Velocity.Len()
		assert.GreaterOrEqual(t, speed, float64(config.MeteorMinSpeed)-1e-9)
		assert.LessOrEqual(t, speed, float64(config.MeteorMaxSpeed)+1e-9)
		assert.Greater(t, m.Velocity.Y, 0.0)
		assert.LessOrEqual(t, math.Abs(m.Velocity.X/m.Velocity.Y), config.MeteorDriftMax)

		assert.GreaterOrEqual(t, m.Spin, float64(config.MeteorMinSpinDegree))
		assert.LessOrEqual(t, m.Spin, float64(config.MeteorMaxSpinDegree))
	}
}

func TestMeteorSpawnerInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewMeteorSpawner(testBounds, 500*time.Millisecond, solid(100, 86), rng, testEpoch)

	_, ok := s.Tick(testEpoch.Add(499 * time.Millisecond))
	assert.False(t, ok)

	// Late tick: the next interval is measured from here, not from 500ms
	m, ok := s.Tick(testEpoch.Add(520 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, testEpoch.Add(520*time.Millisecond), m.CreatedAt())

	_, ok = s.Tick(testEpoch.Add(1000 * time.Millisecond))
	assert.False(t, ok)
	_, ok = s.Tick(testEpoch.Add(1020 * time.Millisecond))
	assert.True(t, ok)
}

func TestExplosionRunsOnce(t *testing.T) {
	frames := make([]*sprite.Image, 21)
	for i := range frames {
		frames[i] = solid(10+i, 10+i)
	}
	e := NewExplosion(physics.Vec{X: 100, Y: 100}, frames)

	assert.Equal(t, 0, e.Frame())
	assert.Same(t, frames[0], e.Visual().Image)

	step := 100 * time.Millisecond
	assert.False(t, e.Update(ctxAt(testEpoch, step, Input{})))
	assert.Equal(t, 3, e.Frame())
	assert.Same(t, frames[3], e.Visual().Image)
	assert.Equal(t, physics.Vec{X: 100, Y: 100}, e.Visual().Rect.Center())

	// 21 frames at 30fps last 700ms
	for i := 0; i < 5; i++ {
		require.False(t, e.Update(ctxAt(testEpoch, step, Input{})))
	}
	assert.True(t, e.Update(ctxAt(testEpoch, step, Input{})))
}

func TestStarField(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	stars := NewStarField(config.StarCount, testBounds, solid(15, 15), rng)

	require.Len(t, stars, config.StarCount)
	for _, s := range stars {
		assert.GreaterOrEqual(t, s.Pos.X, 0.0)
		assert.LessOrEqual(t, s.Pos.X, float64(config.ViewWidth))
		assert.GreaterOrEqual(t, s.Pos.Y, 0.0)
		assert.LessOrEqual(t, s.Pos.Y, float64(config.ViewHeight))

		before := s.Pos
		assert.False(t, s.Update(ctxAt(testEpoch, time.Second, Input{})))
		assert.Equal(t, before, s.Pos)
		assert.Equal(t, CategoryNone, s.Category())
	}
}

func TestLifecycle(t *testing.T) {
	var objs = []Object{
		NewStar(physics.Vec{}, solid(1, 1)),
		NewLaser(physics.Vec{}, solid(1, 1)),
		NewExplosion(physics.Vec{}, []*sprite.Image{solid(1, 1)}),
	}
	for _, o := range objs {
		assert.False(t, o.IsDestroyed())
		o.MarkDestroyed()
		assert.True(t, o.IsDestroyed())
	}
}
