package object

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
	"github.com/tomz197/spaceshooter/internal/timer"
)

// Meteor is a spinning rock falling through the view. It expires after a
// fixed lifetime whether or not it was hit.
type Meteor struct {
	lifecycle

	Pos      physics.Vec // Position (center); rotation never moves it
	Velocity physics.Vec // Pixels per second
	Rotation float64     // Current rotation angle, degrees
	Spin     float64     // Rotation speed, degrees per second

	base  *sprite.Image // Unrotated image, never modified
	image *sprite.Image // base rotated by Rotation
	life  timer.Timer
}

// NewMeteor creates a meteor at pos moving along dir (normalized here) at
// speed, created at now.
func NewMeteor(pos, dir physics.Vec, speed, spin float64, image *sprite.Image, now time.Time) *Meteor {
	return &Meteor{
		Pos:      pos,
		Velocity: dir.Normalize().Scale(speed),
		Spin:     spin,
		base:     image,
		image:    image,
		life:     timer.New(config.MeteorLifetime, now),
	}
}

// CreatedAt returns the time the meteor was created.
func (m *Meteor) CreatedAt() time.Time {
	return m.life.Origin()
}

// Category implements Object.
func (m *Meteor) Category() Category {
	return CategoryMeteor
}

// Visual implements Object. The rotated image is re-centred on Pos, so the
// bounding box grows with rotation but its centre does not drift.
func (m *Meteor) Visual() Visual {
	return visualAt(m.image, m.Pos)
}

// Update moves and rotates the meteor. Returns true once its lifetime is over.
func (m *Meteor) Update(ctx UpdateContext) bool {
	dt := ctx.Delta.Seconds()

	m.Pos = m.Pos.Add(m.Velocity.Scale(dt))
	if m.life.Expired(ctx.Now) {
		return true
	}

	m.Rotation += m.Spin * dt
	m.image = m.base.Rotate(m.Rotation)
	return false
}
