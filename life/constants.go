package life

import (
	"fmt"

	"github.com/they4kman/gocross/grid"
)

type CellState uint8

const (
	Dead CellState = iota
	Alive
	RedWave
	BlueWave
	// Green is part of the display palette; no transition produces it
	Green
)

var CellStates = []CellState{
	Dead,
	Alive,
	RedWave,
	BlueWave,
	Green,
}

var cellStateNames = map[CellState]string{
	Dead:     "dead",
	Alive:    "alive",
	RedWave:  "red",
	BlueWave: "blue",
	Green:    "green",
}

func (state CellState) String() string {
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return fmt.Sprintf("CellState(%d)", uint8(state))
}

func (state CellState) Valid() bool {
	return state <= Green
}

type (
	Grid         = grid.Grid[CellState]
	Neighborhood = grid.Neighborhood[CellState]
	ChangeRecord = grid.ChangeRecord[CellState]
)

func NewGrid(rows, cols int) *Grid {
	return grid.New[CellState](rows, cols)
}
