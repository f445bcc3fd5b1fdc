package physics

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(g *SpatialGrid, x, y float64) []int {
	var got []int
	g.QueryAround(x, y, func(i int) bool {
		got = append(got, i)
		return false
	})
	sort.Ints(got)
	return got
}

func TestSpatialGridNeighborhood(t *testing.T) {
	g := NewSpatialGrid(Rect{W: 100, H: 100}, 10)
	g.Insert(5, 5, 0)   // cell (0,0)
	g.Insert(15, 15, 1) // cell (1,1)
	g.Insert(55, 55, 2) // far away

	assert.Equal(t, []int{0, 1}, collect(g, 8, 8))
	assert.Equal(t, []int{2}, collect(g, 50, 50))
	assert.Empty(t, collect(g, 90, 10))
}

func TestSpatialGridClampsOutside(t *testing.T) {
	g := NewSpatialGrid(Rect{W: 100, H: 100}, 10)
	g.Insert(50, -80, 0) // above the area, lands in row 0
	g.Insert(-30, 50, 1) // left of the area, lands in col 0

	assert.Equal(t, []int{0}, collect(g, 52, 3))
	assert.Equal(t, []int{1}, collect(g, 2, 48))
}

func TestSpatialGridDoesNotWrap(t *testing.T) {
	g := NewSpatialGrid(Rect{W: 100, H: 100}, 10)
	g.Insert(95, 50, 0)

	assert.Empty(t, collect(g, 2, 50))
}

func TestSpatialGridClearAndEarlyStop(t *testing.T) {
	g := NewSpatialGrid(Rect{W: 100, H: 100}, 10)
	for i := 0; i < 5; i++ {
		g.Insert(5, 5, i)
	}

	calls := 0
	g.QueryAround(5, 5, func(int) bool {
		calls++
		return true
	})
	assert.Equal(t, 1, calls)

	g.Clear()
	assert.Empty(t, collect(g, 5, 5))
	assert.Equal(t, 10.0, g.CellSize())
}
