// Package config centralizes all tunable game parameters.
package config

import "time"

// Visible area in logical pixels. Renderers scale this to their surface.
const (
	ViewWidth  = 1000
	ViewHeight = 700
)

// Stars
const (
	StarCount = 20
)

// Player
const (
	PlayerSpeed  = 300.0 // Pixels per second
	FireCooldown = 400 * time.Millisecond
)

// Laser
const (
	LaserSpeed = 400.0 // Pixels per second, upward
)

// Meteors
const (
	SpawnInterval       = 500 * time.Millisecond
	MeteorLifetime      = 2000 * time.Millisecond
	MeteorSpawnMinY     = -100
	MeteorSpawnMaxY     = -10
	MeteorDriftMax      = 0.5 // Horizontal bias range [-MeteorDriftMax, MeteorDriftMax]
	MeteorMinSpeed      = 400
	MeteorMaxSpeed      = 500
	MeteorMinSpinDegree = 40 // Degrees per second
	MeteorMaxSpinDegree = 80
)

// Explosions
const (
	ExplosionFrameRate = 30.0 // Animation frames per second
)

// Scoring
const (
	ScoreTick = 100 * time.Millisecond // One point per tick survived
)

// Score box placement, relative to the bottom-centre of the view.
const (
	ScoreBottomMargin = 50
	ScoreBoxPadX      = 20
	ScoreBoxPadY      = 10
	ScoreBoxLift      = 7
)

// Frame pacing for the terminal and SSH frontends. 0 disables the cap.
const (
	DefaultTargetFPS = 60
)
