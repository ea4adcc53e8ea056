package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/gocross/director/random"
	"github.com/they4kman/gocross/game"
	"github.com/they4kman/gocross/grid"
	"github.com/they4kman/gocross/util/collections"
)

// Director plays by deduction, guessing only when deduction is stuck
type Director struct {
	game   *game.Game
	random random.Director
}

// Observation says numMines of cells hold a mine, as read from the number at origin
type Observation struct {
	origin   grid.Point
	numMines int
	cells    collections.Set[grid.Point]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range observation.cells.Sorted(pointLess) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", observation.origin, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func pointLess(a, b grid.Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.random.Init(g)
}

func (director *Director) Act() bool {
	actors := []func() bool{
		director.actDeliberate,
		director.actInferred,
		director.actLowestProbability,
		director.random.Act,
	}

	for _, actor := range actors {
		if actor() {
			return true
		}
	}
	return false
}

// actDeliberate plays one deduction pass
func (director *Director) actDeliberate() bool {
	deduction, err := director.game.NextDay()
	if err != nil {
		logrus.WithError(err).Debug("Deduction failed")
		return false
	}
	return len(deduction.Changes) > 0
}

// actInferred combines overlapping observations. When one observation's cells
// all lie inside another's, the other's remaining cells hold the difference
// in mines. When a one-mine observation shares cells with another, the
// other's cells outside it hold at least all but one of its mines.
func (director *Director) actInferred() bool {
	flags := collections.NewSet[grid.Point]()
	opens := collections.NewSet[grid.Point]()

	resolve := func(cells collections.Set[grid.Point], numMines int) {
		if len(cells) == 0 {
			return
		}
		switch numMines {
		case len(cells):
			for cell := range cells {
				flags.Add(cell)
			}
		case 0:
			for cell := range cells {
				opens.Add(cell)
			}
		}
	}

	observations := Observations(director.game.Visible())
	for i, observation := range observations {
		for j, intersectingObs := range observations {
			if i == j {
				continue
			}

			sharedCells, isSubset := observation.cells.IntersectionEx(intersectingObs.cells)
			if len(sharedCells) == 0 {
				continue
			}

			leftOnlyCells := intersectingObs.cells.Difference(observation.cells)
			if isSubset {
				resolve(leftOnlyCells, intersectingObs.numMines-observation.numMines)
			} else if observation.numMines == 1 {
				occludedMines := intersectingObs.numMines - observation.numMines
				if occludedMines == len(leftOnlyCells) {
					resolve(leftOnlyCells, occludedMines)
				}
			}
		}
	}

	// an inconsistent board can ask for both; leave those cells alone
	conflicts := flags.Intersection(opens)

	acted := false
	for _, cell := range flags.Difference(conflicts).Sorted(pointLess) {
		if err := director.game.ToggleFlag(cell.Row, cell.Col); err != nil {
			return acted
		}
		acted = true
	}
	for _, cell := range opens.Difference(conflicts).Sorted(pointLess) {
		if err := director.game.Reveal(cell.Row, cell.Col); err != nil {
			return acted
		}
		acted = true
	}

	if acted {
		logrus.WithFields(logrus.Fields{
			"flagged":  len(flags) - len(conflicts),
			"revealed": len(opens) - len(conflicts),
		}).Debug("Inferred from overlapping observations")
	}
	return acted
}

// actLowestProbability opens the hidden cell with the smallest chance of
// holding a mine according to the numbers around it
func (director *Director) actLowestProbability() bool {
	cellProbabilities := make(map[grid.Point]float64)
	for _, observation := range Observations(director.game.Visible()) {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			// a cell is at least as risky as its riskiest observation says
			if past, ok := cellProbabilities[cell]; !ok || probability > past {
				cellProbabilities[cell] = probability
			}
		}
	}

	lowestProbability := math.Inf(1)
	for _, probability := range cellProbabilities {
		lowestProbability = math.Min(lowestProbability, probability)
	}
	if lowestProbability >= 1 {
		return false
	}

	lowestProbabilityCells := collections.NewSet[grid.Point]()
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells.Add(cell)
		}
	}

	candidates := lowestProbabilityCells.Sorted(pointLess)
	director.game.Rand().Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	choice := candidates[0]
	logrus.WithFields(logrus.Fields{
		"cell":        choice,
		"probability": lowestProbability,
	}).Debug("Guessing lowest probability cell")

	return director.game.Reveal(choice.Row, choice.Col) == nil
}

// Observations reads one observation from every revealed number that still
// borders hidden cells
func Observations(board *game.Board) []Observation {
	var observations []Observation
	board.Each(func(row, col int, symbol game.Symbol) {
		count, ok := symbol.Count()
		if !ok {
			return
		}

		observation := Observation{
			origin:   grid.Point{Row: row, Col: col},
			numMines: count,
			cells:    collections.NewSet[grid.Point](),
		}
		for _, neighbor := range grid.NeighborPoints(board, row, col) {
			switch neighborSymbol, _ := board.Get(neighbor.Row, neighbor.Col); neighborSymbol {
			case game.Flagged:
				observation.numMines--
			case game.Hidden:
				observation.cells.Add(neighbor)
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	})
	return observations
}
