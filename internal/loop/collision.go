package loop

import (
	"math"

	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

// resolver detects and resolves laser-meteor and player-meteor overlaps.
type resolver struct {
	// Broad phase for laser-meteor checks, rebuilt every frame
	meteorGrid *physics.SpatialGrid

	explosion []*sprite.Image
	audio     audio.Sink
}

// newResolver sizes the meteor grid so that any laser overlapping a meteor
// has that meteor's centre in one of the 3x3 cells around the laser's centre.
func newResolver(bounds physics.Rect, meteor, laser *sprite.Image, explosion []*sprite.Image, sink audio.Sink) *resolver {
	return &resolver{
		meteorGrid: physics.NewSpatialGrid(bounds, gridCellSize(meteor, laser)),
		explosion:  explosion,
		audio:      sink,
	}
}

// gridCellSize returns the largest centre distance (per axis) at which a laser
// can still overlap a meteor in any rotation.
func gridCellSize(meteor, laser *sprite.Image) float64 {
	meteorSpan := math.Ceil(math.Hypot(float64(meteor.W), float64(meteor.H)))
	laserSpan := float64(max(laser.W, laser.H))
	return (meteorSpan+laserSpan)/2 + 1
}

// resolve runs both checks, lasers first so meteors shot this frame can no
// longer hit the player. Returns true if the player was hit.
func (c *resolver) resolve(r *Registry, player *object.Player) bool {
	c.lasersVsMeteors(r)
	if player == nil {
		return false
	}
	return c.playerVsMeteors(r, player)
}

// lasersVsMeteors destroys each laser together with at most one meteor it
// overlaps. When several meteors overlap, the one whose centre is nearest to
// the laser's centre wins, ties going to the older meteor.
func (c *resolver) lasersVsMeteors(r *Registry) {
	meteors := r.Meteors()
	lasers := r.Lasers()
	if len(meteors) == 0 || len(lasers) == 0 {
		return
	}

	c.meteorGrid.Clear()
	for i, m := range meteors {
		if !m.IsDestroyed() {
			c.meteorGrid.Insert(m.Pos.X, m.Pos.Y, i)
		}
	}

	for _, l := range lasers {
		if l.IsDestroyed() {
			continue
		}
		lr := l.Visual().Rect
		lc := lr.Center()

		best := -1
		bestDist := 0.0
		c.meteorGrid.QueryAround(lc.X, lc.Y, func(i int) bool {
			m := meteors[i]
			if m.IsDestroyed() || !lr.Overlaps(m.Visual().Rect) {
				return false
			}
			d := physics.DistanceSquared(lc.X, lc.Y, m.Pos.X, m.Pos.Y)
			if best < 0 || d < bestDist || (d == bestDist && i < best) {
				best, bestDist = i, d
			}
			return false
		})
		if best < 0 {
			continue
		}

		l.MarkDestroyed()
		meteors[best].MarkDestroyed()
		r.Add(object.NewExplosion(l.Pos, c.explosion))
		c.audio.Play(audio.SoundExplosion)
	}
}

// playerVsMeteors destroys every live meteor whose mask overlaps the
// player's. Returns true on any hit.
func (c *resolver) playerVsMeteors(r *Registry, player *object.Player) bool {
	pv := player.Visual()
	hit := false

	for _, m := range r.Meteors() {
		if m.IsDestroyed() {
			continue
		}
		mv := m.Visual()
		if !pv.Rect.Overlaps(mv.Rect) {
			continue
		}
		dx, dy := physics.MaskOffset(pv.Rect, mv.Rect)
		if physics.MasksOverlap(pv.Image, mv.Image, dx, dy) {
			m.MarkDestroyed()
			hit = true
		}
	}

	if hit {
		c.audio.Play(audio.SoundDamage)
	}
	return hit
}
