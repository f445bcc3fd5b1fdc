package object

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Now     time.Time // Frame timestamp, sampled once per frame
	Input   Input
	Bounds  physics.Rect // Visible area
	Spawner Spawner
	Audio   audio.Sink
}

// Category tags an object for collision queries. Each object belongs to at
// most one gameplay category.
type Category int

const (
	CategoryNone   Category = iota // Decoration: stars, explosions
	CategoryPlayer                 // The ship
	CategoryLaser                  // Player projectiles
	CategoryMeteor                 // Hazards
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryLaser:
		return "laser"
	case CategoryMeteor:
		return "meteor"
	default:
		return "none"
	}
}

// Visual is what a renderer needs to draw an object: an image and the
// rectangle it occupies. The same rectangle is the object's collision box.
type Visual struct {
	Image *sprite.Image
	Rect  physics.Rect
}

// Object is an updatable, drawable game entity.
type Object interface {
	// Update advances the object by one frame. Returns true if the object
	// should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Visual returns the current image and its placement.
	Visual() Visual

	// Category returns the collision group the object belongs to.
	Category() Category

	Destructible
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the frame.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// lifecycle implements Destructible for embedding.
type lifecycle struct {
	destroyed bool
}

// MarkDestroyed marks the object for removal.
func (l *lifecycle) MarkDestroyed() {
	l.destroyed = true
}

// IsDestroyed returns true if the object is marked for destruction.
func (l *lifecycle) IsDestroyed() bool {
	return l.destroyed
}

// visualAt places im centred on pos.
func visualAt(im *sprite.Image, pos physics.Vec) Visual {
	return Visual{
		Image: im,
		Rect:  physics.RectFromCenter(pos, float64(im.W), float64(im.H)),
	}
}
