package life

import "github.com/they4kman/gocross/grid"

// ConwayEngine is the classic B3/S23 rule. Only Alive counts as a live
// neighbor; wave markers are treated as dead.
type ConwayEngine struct{}

func (ConwayEngine) Name() string {
	return "conway"
}

func (ConwayEngine) Next(neighborhood Neighborhood) CellState {
	neighbors := neighborhood.CountAround(func(state CellState) bool {
		return state == Alive
	})

	alive := neighborhood[grid.Center] == Alive
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return Alive
	}
	return Dead
}
