package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDimensions(t *testing.T) {
	a := Load()

	assert.Equal(t, PlayerWidth, a.Player.W)
	assert.Equal(t, PlayerHeight, a.Player.H)
	assert.Equal(t, LaserWidth, a.Laser.W)
	assert.Equal(t, LaserHeight, a.Laser.H)
	assert.Equal(t, MeteorWidth, a.Meteor.W)
	assert.Equal(t, MeteorHeight, a.Meteor.H)
	assert.Equal(t, StarSize, a.Star.W)
	require.Len(t, a.Explosion, ExplosionFrames)
}

func TestLoadImagesAreDrawn(t *testing.T) {
	a := Load()

	assert.Equal(t, LaserWidth*LaserHeight, a.Laser.Count(), "laser is a solid bar")
	assert.Positive(t, a.Player.Count())
	assert.Positive(t, a.Star.Count())
	assert.Positive(t, a.Meteor.Count())
	for i, f := range a.Explosion {
		assert.Positive(t, f.Count(), "frame %d", i)
	}

	// The ship is not a rectangle: its top corners are clear.
	assert.False(t, a.Player.Opaque(0, 0))
	assert.True(t, a.Player.Opaque(PlayerWidth/2, PlayerHeight/2))
}

func TestLoadDeterministic(t *testing.T) {
	a := Load()
	b := Load()
	assert.Equal(t, a.Meteor.Count(), b.Meteor.Count())
	for y := 0; y < MeteorHeight; y++ {
		for x := 0; x < MeteorWidth; x++ {
			if a.Meteor.Opaque(x, y) != b.Meteor.Opaque(x, y) {
				t.Fatalf("meteor pixel (%d,%d) differs between loads", x, y)
			}
		}
	}
}
