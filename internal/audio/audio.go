// Package audio plays the game's sound effects.
package audio

// Sound identifies a sound effect.
type Sound int

const (
	SoundLaser     Sound = iota // Laser fired
	SoundExplosion              // Meteor destroyed by a laser
	SoundDamage                 // Player struck by a meteor
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case SoundDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Sink accepts fire-and-forget playback requests.
type Sink interface {
	Play(s Sound)
}

// Nop discards every sound. Used when no audio device is wanted or available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sound) {}
