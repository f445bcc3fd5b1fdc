package sprite

import (
	"math"
	"sort"

	"github.com/tomz197/spaceshooter/internal/physics"
)

// FillPolygon fills a polygon using scanline algorithm.
// Points are in image pixel space; pixels are sampled at their centres.
func (im *Image) FillPolygon(points []physics.Vec) {
	if len(points) < 3 {
		return
	}

	// Find bounding box
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	var intersections []float64
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections = intersections[:0]

		// Find intersections with all edges
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}

		sort.Float64s(intersections)

		// Fill between pairs of intersections
		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				im.Set(x, y)
			}
		}
	}
}

// FillRing sets every pixel whose centre lies between radii inner and outer
// from c. An inner radius of 0 gives a filled disc.
func (im *Image) FillRing(c physics.Vec, inner, outer float64) {
	inner2 := inner * inner
	outer2 := outer * outer
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			d2 := physics.DistanceSquared(float64(x)+0.5, float64(y)+0.5, c.X, c.Y)
			if d2 >= inner2 && d2 <= outer2 {
				im.Set(x, y)
			}
		}
	}
}

// FillRect sets every pixel in the w×h block at (x, y).
func (im *Image) FillRect(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			im.Set(col, row)
		}
	}
}
