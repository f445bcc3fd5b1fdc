package object

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
	"github.com/tomz197/spaceshooter/internal/timer"
)

// Player is the ship. It moves in eight directions at constant speed and
// fires lasers gated by a cooldown.
type Player struct {
	lifecycle

	Pos       physics.Vec // Position (center of ship)
	Direction physics.Vec // Zero or unit length
	Speed     float64     // Pixels per second

	image      *sprite.Image
	laserImage *sprite.Image

	// Shooting: Ready -> OnCooldown on fire, back to Ready once the
	// cooldown window has elapsed.
	ready    bool
	cooldown timer.Timer
}

// NewPlayer creates a ship centred on pos, ready to fire.
func NewPlayer(pos physics.Vec, image, laserImage *sprite.Image) *Player {
	return &Player{
		Pos:        pos,
		Speed:      config.PlayerSpeed,
		image:      image,
		laserImage: laserImage,
		ready:      true,
		cooldown:   timer.Timer{Duration: config.FireCooldown},
	}
}

// Ready reports whether the next fresh fire press will shoot.
func (p *Player) Ready() bool {
	return p.ready
}

// Category implements Object.
func (p *Player) Category() Category {
	return CategoryPlayer
}

// Visual implements Object.
func (p *Player) Visual() Visual {
	return visualAt(p.image, p.Pos)
}

// Update handles the cooldown, movement and shooting. The player is never
// removed by its own update.
func (p *Player) Update(ctx UpdateContext) bool {
	p.recheckCooldown(ctx.Now)
	p.handleInput(ctx.Input, ctx.Delta)
	p.tryFire(ctx)
	return false
}

// handleInput sets the direction from the held keys and integrates position.
func (p *Player) handleInput(in Input, delta time.Duration) {
	raw := physics.Vec{
		X: axis(in.Right) - axis(in.Left),
		Y: axis(in.Down) - axis(in.Up),
	}
	// Normalize so diagonals are not faster
	p.Direction = raw.Normalize()
	p.Pos = p.Pos.Add(p.Direction.Scale(p.Speed * delta.Seconds()))
}

// tryFire shoots on a fresh press while ready. Anything else is a no-op.
func (p *Player) tryFire(ctx UpdateContext) {
	if !ctx.Input.FirePressed || !p.ready || ctx.Spawner == nil {
		return
	}

	// Laser leaves from the nose of the ship
	nose := p.Visual().Rect.MidTop()
	ctx.Spawner.Spawn(NewLaser(nose, p.laserImage))

	p.ready = false
	p.cooldown.Start(ctx.Now)
	if ctx.Audio != nil {
		ctx.Audio.Play(audio.SoundLaser)
	}
}

// recheckCooldown flips back to Ready once the cooldown has elapsed.
func (p *Player) recheckCooldown(now time.Time) {
	if !p.ready && p.cooldown.Expired(now) {
		p.ready = true
	}
}

func axis(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}
