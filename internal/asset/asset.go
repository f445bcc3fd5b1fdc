// Package asset builds the immutable images the game draws.
// Everything is generated procedurally so the binaries carry no image files.
package asset

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

// ExplosionFrames is the number of frames in the explosion animation.
const ExplosionFrames = 21

// Image dimensions in logical pixels.
const (
	PlayerWidth     = 96
	PlayerHeight    = 80
	LaserWidth      = 8
	LaserHeight     = 52
	MeteorWidth     = 100
	MeteorHeight    = 86
	StarSize        = 15
	ExplosionSize   = 110
	meteorVertices  = 11
	meteorShapeSeed = 197
)

var (
	colorPlayer    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	colorLaser     = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	colorMeteor    = color.RGBA{R: 170, G: 150, B: 130, A: 255}
	colorStar      = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	colorExplosion = color.RGBA{R: 255, G: 170, B: 60, A: 255}
)

// Assets holds every visual handle. Nothing in it is mutated after Load.
type Assets struct {
	Player    *sprite.Image
	Star      *sprite.Image
	Laser     *sprite.Image
	Meteor    *sprite.Image
	Explosion []*sprite.Image
}

// Load generates the full asset set. The result is deterministic.
func Load() *Assets {
	return &Assets{
		Player:    playerImage(),
		Star:      starImage(),
		Laser:     laserImage(),
		Meteor:    meteorImage(rand.New(rand.NewSource(meteorShapeSeed))),
		Explosion: explosionFrames(),
	}
}

// playerImage draws an arrow-shaped ship pointing up.
func playerImage() *sprite.Image {
	im := sprite.New(PlayerWidth, PlayerHeight, colorPlayer)
	w, h := float64(PlayerWidth), float64(PlayerHeight)
	im.FillPolygon([]physics.Vec{
		{X: w / 2, Y: 0},          // Nose
		{X: w, Y: h * 0.85},       // Right wing tip
		{X: w * 0.62, Y: h * 0.7}, // Right engine notch
		{X: w * 0.55, Y: h},       // Right exhaust
		{X: w * 0.45, Y: h},       // Left exhaust
		{X: w * 0.38, Y: h * 0.7}, // Left engine notch
		{X: 0, Y: h * 0.85},       // Left wing tip
	})
	return im
}

func laserImage() *sprite.Image {
	im := sprite.New(LaserWidth, LaserHeight, colorLaser)
	im.FillRect(0, 0, LaserWidth, LaserHeight)
	return im
}

// starImage draws a four-pointed twinkle.
func starImage() *sprite.Image {
	im := sprite.New(StarSize, StarSize, colorStar)
	c := float64(StarSize) / 2
	im.FillPolygon([]physics.Vec{
		{X: c, Y: 0},
		{X: c + 2, Y: c - 2},
		{X: StarSize, Y: c},
		{X: c + 2, Y: c + 2},
		{X: c, Y: StarSize},
		{X: c - 2, Y: c + 2},
		{X: 0, Y: c},
		{X: c - 2, Y: c - 2},
	})
	return im
}

// meteorImage draws an irregular polygon with jittered vertex distances.
func meteorImage(rng *rand.Rand) *sprite.Image {
	im := sprite.New(MeteorWidth, MeteorHeight, colorMeteor)
	rx := float64(MeteorWidth) / 2
	ry := float64(MeteorHeight) / 2

	points := make([]physics.Vec, meteorVertices)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / meteorVertices
		// Vary radius by ±20% for irregular shape
		k := 0.8 + rng.Float64()*0.2
		points[i] = physics.Vec{
			X: rx + math.Cos(angle)*rx*k,
			Y: ry + math.Sin(angle)*ry*k,
		}
	}
	im.FillPolygon(points)
	return im
}

// explosionFrames draws an expanding, thinning ring.
func explosionFrames() []*sprite.Image {
	frames := make([]*sprite.Image, ExplosionFrames)
	c := physics.Vec{X: ExplosionSize / 2, Y: ExplosionSize / 2}
	maxR := float64(ExplosionSize) / 2

	for i := range frames {
		progress := float64(i+1) / ExplosionFrames
		outer := maxR * progress
		thickness := math.Max(2, maxR*0.5*(1-progress))
		inner := math.Max(0, outer-thickness)
		if i < 3 {
			inner = 0 // Solid flash at the start
		}

		im := sprite.New(ExplosionSize, ExplosionSize, colorExplosion)
		im.FillRing(c, inner, outer)
		frames[i] = im
	}
	return frames
}
