package object

import (
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

// Explosion plays a frame animation once and removes itself.
type Explosion struct {
	lifecycle

	Pos    physics.Vec
	Frames []*sprite.Image
	Rate   float64 // Frames per second

	index float64 // Fractional frame position
}

// NewExplosion starts an explosion animation centred on pos.
func NewExplosion(pos physics.Vec, frames []*sprite.Image) *Explosion {
	return &Explosion{
		Pos:    pos,
		Frames: frames,
		Rate:   config.ExplosionFrameRate,
	}
}

// Frame returns the index of the frame currently shown.
func (e *Explosion) Frame() int {
	return int(e.index)
}

// Category implements Object.
func (e *Explosion) Category() Category {
	return CategoryNone
}

// Visual implements Object.
func (e *Explosion) Visual() Visual {
	i := min(e.Frame(), len(e.Frames)-1)
	return visualAt(e.Frames[i], e.Pos)
}

// Update advances the animation. Returns true when it has run past the last frame.
func (e *Explosion) Update(ctx UpdateContext) bool {
	e.index += e.Rate * ctx.Delta.Seconds()
	return e.index >= float64(len(e.Frames))
}
