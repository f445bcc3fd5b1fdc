package object

import (
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

// Laser is a bolt fired by the player. It flies straight up.
type Laser struct {
	lifecycle

	Pos   physics.Vec // Position (center)
	Speed float64     // Upward speed, pixels per second

	image *sprite.Image
}

// NewLaser creates a laser whose bottom edge midpoint sits at origin.
func NewLaser(origin physics.Vec, image *sprite.Image) *Laser {
	rect := physics.RectFromMidBottom(origin, float64(image.W), float64(image.H))
	return &Laser{
		Pos:   rect.Center(),
		Speed: config.LaserSpeed,
		image: image,
	}
}

// Category implements Object.
func (l *Laser) Category() Category {
	return CategoryLaser
}

// Visual implements Object.
func (l *Laser) Visual() Visual {
	return visualAt(l.image, l.Pos)
}

// Update moves the laser up and removes it once it has fully left the top
// of the view.
func (l *Laser) Update(ctx UpdateContext) bool {
	l.Pos.Y -= l.Speed * ctx.Delta.Seconds()
	return l.Visual().Rect.Bottom() < ctx.Bounds.Y
}
