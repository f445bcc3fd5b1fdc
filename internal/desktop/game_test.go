package desktop

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestMapKeys(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		want        object.Input
	}{
		{"nothing", nil, nil, object.Input{}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, nil, object.Input{Left: true, Up: true}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, nil, object.Input{Right: true, Down: true}},
		{"fresh fire", []ebiten.Key{ebiten.KeySpace}, []ebiten.Key{ebiten.KeySpace}, object.Input{Fire: true, FirePressed: true}},
		{"held fire", []ebiten.Key{ebiten.KeySpace}, nil, object.Input{Fire: true}},
		{"escape quits", []ebiten.Key{ebiten.KeyEscape}, nil, object.Input{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapKeys(keySet(tt.pressed...), keySet(tt.justPressed...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlacementCentresImage(t *testing.T) {
	im := sprite.New(10, 20, color.RGBA{A: 255})
	v := object.Visual{Image: im, Rect: physics.RectFromCenter(physics.Vec{X: 100, Y: 50}, 10, 20)}

	src, geo := placement(v)
	assert.Same(t, im, src)

	x, y := geo.Apply(0, 0)
	assert.InDelta(t, 95, x, 1e-9)
	assert.InDelta(t, 40, y, 1e-9)
}

func TestPlacementUsesRotationSource(t *testing.T) {
	base := sprite.New(10, 20, color.RGBA{A: 255})
	rotated := base.Rotate(90)
	v := object.Visual{Image: rotated, Rect: physics.RectFromCenter(physics.Vec{X: 100, Y: 50}, float64(rotated.W), float64(rotated.H))}

	src, geo := placement(v)
	assert.Same(t, base, src)

	// Quarter turn counter-clockwise: the source's top-left lands bottom-left
	x, y := geo.Apply(0, 0)
	assert.InDelta(t, 90, x, 1e-9)
	assert.InDelta(t, 55, y, 1e-9)

	cx, cy := geo.Apply(5, 10)
	assert.InDelta(t, 100, cx, 1e-9)
	assert.InDelta(t, 50, cy, 1e-9)
}

func TestToRGBA(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	im := sprite.New(3, 2, c)
	im.Set(1, 1)

	out := toRGBA(im)
	assert.Equal(t, 3, out.Bounds().Dx())
	assert.Equal(t, 2, out.Bounds().Dy())
	assert.Equal(t, c, out.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, out.RGBAAt(0, 0))
}
