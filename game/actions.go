package game

import (
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gocross/grid"
)

// Reveal opens a hidden, unflagged cell. Opening a cell with no neighboring
// mines cascades to its neighbors. Opening a mine loses the game.
func (game *Game) Reveal(row, col int) error {
	if err := game.checkMove(row, col); err != nil {
		return err
	}

	point := grid.Point{Row: row, Col: col}
	cell := game.cell(point)
	if cell.isRevealed || cell.isFlagged {
		return nil
	}

	game.remember()

	if !game.hasRevealed {
		game.hasRevealed = true

		if game.mode == Win7 {
			game.clearSurroundingMines(point)
		}
	}

	game.open(point)
	return nil
}

// open reveals point, cascading over empty cells
func (game *Game) open(point grid.Point) {
	cell := game.cell(point)
	if cell.isRevealed || cell.isFlagged {
		return
	}

	if cell.isMine {
		cell.isRevealed = true
		cell.isLosingMine = true
		game.setCell(point, cell)
		game.lose(point)
		return
	}

	numRevealed := game.numRevealed
	flood(
		point,
		func(point grid.Point) bool {
			cell := game.cell(point)
			if cell.isRevealed || cell.isFlagged || cell.isMine {
				return false
			}

			cell.isRevealed = true
			game.setCell(point, cell)
			game.numRevealed++

			return cell.numMines == 0
		},
		game.neighbors,
	)

	logrus.WithFields(logrus.Fields{
		"cell":     point,
		"revealed": game.numRevealed - numRevealed,
	}).Debug("Revealed cells")

	if game.numRevealed == game.numSafeCells() {
		game.win()
	}
}

// ToggleFlag flags or unflags a hidden cell. Revealed cells are left alone.
func (game *Game) ToggleFlag(row, col int) error {
	if err := game.checkMove(row, col); err != nil {
		return err
	}

	point := grid.Point{Row: row, Col: col}
	cell := game.cell(point)
	if cell.isRevealed {
		return nil
	}

	game.remember()

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		game.numFlags++
	} else {
		game.numFlags--
	}
	game.setCell(point, cell)

	return nil
}

// Hint opens the first hidden, unflagged, safe cell in row-major order
func (game *Game) Hint() (grid.Point, bool, error) {
	if !game.canPlay() {
		return grid.Point{}, false, ErrGameOver
	}

	var hint *grid.Point
	game.cells.Each(func(row, col int, cell Cell) {
		if hint == nil && !cell.isRevealed && !cell.isFlagged && !cell.isMine {
			hint = &grid.Point{Row: row, Col: col}
		}
	})
	if hint == nil {
		return grid.Point{}, false, nil
	}

	return *hint, true, game.Reveal(hint.Row, hint.Col)
}

// NextDay runs one deduction pass over the visible board and plays its
// result: deduced mines are flagged, deduced safe cells are opened
func (game *Game) NextDay() (*Deduction, error) {
	if !game.canPlay() {
		return nil, ErrGameOver
	}

	deduction, err := Deduce(game.Visible())
	if err != nil {
		return nil, err
	}
	if len(deduction.Changes) == 0 {
		return deduction, nil
	}

	game.remember()

	for _, point := range deduction.Flagged {
		cell := game.cell(point)
		cell.isFlagged = true
		game.setCell(point, cell)
		game.numFlags++
	}
	for _, point := range deduction.Revealed {
		if !game.canPlay() {
			break
		}
		game.open(point)
	}

	return deduction, nil
}

// Undo steps back to the state before the last move, reporting whether there
// was a move to undo
func (game *Game) Undo() bool {
	last, ok := game.history.pop()
	if !ok {
		return false
	}

	game.cells = last.cells
	game.state = last.state
	game.numFlags = last.numFlags
	game.numRevealed = last.numRevealed
	game.hasRevealed = last.hasRevealed
	return true
}

// CanUndo returns the number of moves Undo can step back through
func (game *Game) CanUndo() int {
	return game.history.Len()
}

func (game *Game) remember() {
	game.history.push(turn{
		cells:       game.cells.Clone(),
		state:       game.state,
		numFlags:    game.numFlags,
		numRevealed: game.numRevealed,
		hasRevealed: game.hasRevealed,
	})
}
