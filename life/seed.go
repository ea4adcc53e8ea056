package life

import (
	"math/rand"

	"github.com/they4kman/gocross/grid"
)

// SeedCrosses draws count random equal-armed crosses of live cells into g,
// then scatters live cells at random over the empty areas around them
func SeedCrosses(g *Grid, rng *rand.Rand, count int) {
	for i := 0; i < count; i++ {
		drawRandomCross(g, rng)
	}

	rows, cols := g.Dimensions()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// keep scattered cells from touching the crosses
			if grid.NeighborhoodOf(g, row, col) == (Neighborhood{}) {
				_ = g.Set(row, col, CellState(rng.Intn(2)))
			}
		}
	}
}

func drawRandomCross(g *Grid, rng *rand.Rand) {
	rows, cols := g.Dimensions()

	size := 3
	if rows/2 > size {
		size += rng.Intn(rows/2 - size)
	}
	size = min(size, rows, cols)
	if size == 0 {
		return
	}

	top, left := 0, 0
	if rows > size {
		top = rng.Intn(rows - size)
	}
	if cols > size {
		left = rng.Intn(cols - size)
	}

	for i := 0; i < size; i++ {
		_ = g.Set(top+i, left+size/2, Alive)
		_ = g.Set(top+size/2, left+i, Alive)
	}
}
