package object

import (
	"math/rand"

	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

// Star is a static background decoration.
type Star struct {
	lifecycle

	Pos   physics.Vec
	image *sprite.Image
}

// NewStar creates a star centred on pos.
func NewStar(pos physics.Vec, image *sprite.Image) *Star {
	return &Star{Pos: pos, image: image}
}

// NewStarField scatters count stars at integer positions uniformly over
// bounds, edges included.
func NewStarField(count int, bounds physics.Rect, image *sprite.Image, rng *rand.Rand) []*Star {
	stars := make([]*Star, count)
	for i := range stars {
		pos := physics.Vec{
			X: bounds.X + float64(rng.Intn(int(bounds.W)+1)),
			Y: bounds.Y + float64(rng.Intn(int(bounds.H)+1)),
		}
		stars[i] = NewStar(pos, image)
	}
	return stars
}

// Category implements Object.
func (s *Star) Category() Category {
	return CategoryNone
}

// Visual implements Object.
func (s *Star) Visual() Visual {
	return visualAt(s.image, s.Pos)
}

// Update is a no-op for static stars.
func (s *Star) Update(UpdateContext) bool {
	return false
}
