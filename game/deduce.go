package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gocross/grid"
	"github.com/they4kman/gocross/util/collections"
)

// Deduction is the outcome of a single deduction pass over a board
type Deduction struct {
	// Board after the pass: new flags as Flagged, safe cells as ToBeRevealed
	Board *Board

	Flagged  []grid.Point
	Revealed []grid.Point
	// Hidden cells that one source wanted flagged and another wanted revealed
	Conflicts []grid.Point

	Changes []grid.ChangeRecord[Symbol]
}

func pointLess(a, b grid.Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// Deduce applies the two counting rules to every revealed number on the board.
// Every rule reads the board as given, never the partially updated result.
func Deduce(board *Board) (*Deduction, error) {
	var invalid error
	board.Each(func(row, col int, symbol Symbol) {
		if invalid == nil && !symbol.Valid() {
			invalid = errors.Wrapf(grid.ErrInvalidCellValue, "symbol %d at %v", symbol, grid.Point{Row: row, Col: col})
		}
	})
	if invalid != nil {
		return nil, invalid
	}

	flags := collections.NewSet[grid.Point]()
	reveals := collections.NewSet[grid.Point]()

	board.Each(func(row, col int, symbol Symbol) {
		count, ok := symbol.Count()
		if !ok {
			return
		}

		var hidden []grid.Point
		numFlagged := 0
		for _, point := range grid.NeighborPoints(board, row, col) {
			neighbor, _ := board.Get(point.Row, point.Col)
			switch neighbor {
			case Hidden:
				hidden = append(hidden, point)
			case Flagged:
				numFlagged++
			}
		}
		if len(hidden) == 0 {
			return
		}

		if len(hidden)+numFlagged == count {
			for _, point := range hidden {
				flags.Add(point)
			}
		}
		if numFlagged == count {
			for _, point := range hidden {
				reveals.Add(point)
			}
		}
	})

	conflicts := flags.Intersection(reveals)
	deduction := &Deduction{
		Board:     board.Clone(),
		Flagged:   flags.Difference(conflicts).Sorted(pointLess),
		Revealed:  reveals.Difference(conflicts).Sorted(pointLess),
		Conflicts: conflicts.Sorted(pointLess),
	}

	for _, point := range deduction.Flagged {
		deduction.Board.Set(point.Row, point.Col, Flagged)
	}
	for _, point := range deduction.Revealed {
		deduction.Board.Set(point.Row, point.Col, ToBeRevealed)
	}

	changes, err := grid.Diff(board, deduction.Board)
	if err != nil {
		return nil, err
	}
	deduction.Changes = changes

	logrus.WithFields(logrus.Fields{
		"flagged":   len(deduction.Flagged),
		"revealed":  len(deduction.Revealed),
		"conflicts": len(deduction.Conflicts),
	}).Debug("Deduction pass")

	return deduction, nil
}
