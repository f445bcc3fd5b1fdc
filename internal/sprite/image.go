// Package sprite provides the bitmap images used as visual handles.
// An Image doubles as its own collision mask.
package sprite

import (
	"image/color"
	"math"
)

// Image is an immutable-after-construction bitmap. Set pixels are opaque.
type Image struct {
	W, H  int
	Color color.RGBA // Tint used by colour-capable renderers

	pix []bool

	// Source and Angle are set on images produced by Rotate so renderers that
	// can rotate natively may draw the original instead.
	Source *Image
	Angle  float64 // Degrees, counter-clockwise
}

// New creates a blank w×h image.
func New(w, h int, c color.RGBA) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{W: w, H: h, Color: c, pix: make([]bool, w*h)}
}

// Size returns the image dimensions (implements physics.Mask).
func (im *Image) Size() (int, int) {
	return im.W, im.H
}

// Opaque reports whether the pixel at (x, y) is set (implements physics.Mask).
// Coordinates outside the image are transparent.
func (im *Image) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= im.W || y >= im.H {
		return false
	}
	return im.pix[y*im.W+x]
}

// Set marks the pixel at (x, y) opaque. Out-of-range writes are ignored.
func (im *Image) Set(x, y int) {
	if x >= 0 && y >= 0 && x < im.W && y < im.H {
		im.pix[y*im.W+x] = true
	}
}

// Count returns the number of opaque pixels.
func (im *Image) Count() int {
	n := 0
	for _, p := range im.pix {
		if p {
			n++
		}
	}
	return n
}

// Rotate returns a copy rotated counter-clockwise by deg degrees around its
// centre. The result is sized to the rotated bounding box, so its centre maps
// to the original centre.
func (im *Image) Rotate(deg float64) *Image {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)

	w := float64(im.W)
	h := float64(im.H)
	nw := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin) - 1e-9))
	nh := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos) - 1e-9))

	out := New(nw, nh, im.Color)
	out.Source = im
	out.Angle = deg
	if im.Source != nil {
		out.Source = im.Source
		out.Angle = im.Angle + deg
	}

	halfW, halfH := w/2, h/2
	halfNW, halfNH := float64(nw)/2, float64(nh)/2

	// Inverse mapping: sample the source pixel that lands on each output pixel.
	for y := 0; y < nh; y++ {
		dy := float64(y) + 0.5 - halfNH
		for x := 0; x < nw; x++ {
			dx := float64(x) + 0.5 - halfNW
			sx := dx*cos - dy*sin + halfW
			sy := dx*sin + dy*cos + halfH
			if im.Opaque(int(math.Floor(sx)), int(math.Floor(sy))) {
				out.pix[y*nw+x] = true
			}
		}
	}
	return out
}
