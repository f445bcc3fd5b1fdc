package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
	"github.com/tomz197/spaceshooter/internal/timer"
)

// MeteorSpawner drops one meteor per interval from a band above the view.
// Each interval is measured from the previous spawn, so frame jitter
// accumulates as drift.
type MeteorSpawner struct {
	image  *sprite.Image
	rng    *rand.Rand
	bounds physics.Rect
	timer  timer.Timer
}

// NewMeteorSpawner creates a spawner whose first interval starts at now.
func NewMeteorSpawner(bounds physics.Rect, interval time.Duration, image *sprite.Image, rng *rand.Rand, now time.Time) *MeteorSpawner {
	return &MeteorSpawner{
		image:  image,
		rng:    rng,
		bounds: bounds,
		timer:  timer.New(interval, now),
	}
}

// Tick returns a new meteor if the interval has elapsed, restarting it.
func (s *MeteorSpawner) Tick(now time.Time) (*Meteor, bool) {
	if !s.timer.Expired(now) {
		return nil, false
	}
	s.timer.Start(now)
	return s.Spawn(now), true
}

// Spawn creates a meteor with randomized position, heading, speed and spin.
func (s *MeteorSpawner) Spawn(now time.Time) *Meteor {
	pos := physics.Vec{
		X: s.bounds.X + float64(s.rng.Intn(int(s.bounds.W)+1)),
		Y: s.bounds.Y + float64(randRange(s.rng, config.MeteorSpawnMinY, config.MeteorSpawnMaxY)),
	}
	dir := physics.Vec{
		X: (s.rng.Float64()*2 - 1) * config.MeteorDriftMax,
		Y: 1,
	}
	speed := float64(randRange(s.rng, config.MeteorMinSpeed, config.MeteorMaxSpeed))
	spin := float64(randRange(s.rng, config.MeteorMinSpinDegree, config.MeteorMaxSpinDegree))

	return NewMeteor(pos, dir, speed, spin, s.image, now)
}

// randRange returns an integer in [lo, hi], both ends included.
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
