package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gocross/grid"
	"github.com/they4kman/gocross/util/collections"
)

var ErrGameOver = errors.New("game is over")

// Game holds the hidden truth of a minesweeper board and the moves made on it
type Game struct {
	rows, cols int
	numMines   int
	mode       GameMode
	seed       int64
	cells      *grid.Grid[Cell]

	state       BoardState
	numFlags    int
	numRevealed int
	hasRevealed bool

	history *history
	rand    *rand.Rand
}

func NewGame(config GameConfig) (*Game, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateGame(config, config.LoadSnapshotFresh)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	game := newGame(config, config.Rows, config.Cols)
	game.numMines = config.NumMines

	// Shuffle cell indexes and fill mines from the front
	cellIndexes := game.rand.Perm(game.rows * game.cols)
	for _, cellIdx := range cellIndexes[:config.NumMines] {
		point := grid.Point{Row: cellIdx / game.cols, Col: cellIdx % game.cols}
		cell := game.cell(point)
		cell.isMine = true
		game.setCell(point, cell)
	}
	game.countMines()

	logrus.WithFields(logrus.Fields{
		"rows":  game.rows,
		"cols":  game.cols,
		"mines": game.numMines,
		"seed":  game.seed,
		"mode":  game.mode,
	}).Debug("Created game")

	return game, nil
}

func newGame(config GameConfig, rows, cols int) *Game {
	return &Game{
		rows:    rows,
		cols:    cols,
		mode:    config.Mode,
		seed:    config.Seed,
		cells:   grid.New[Cell](rows, cols),
		state:   Ongoing,
		history: newHistory(config.HistoryLimit),
		rand:    rand.New(rand.NewSource(config.Seed)),
	}
}

func (game *Game) Dimensions() (rows, cols int) {
	return game.rows, game.cols
}

func (game *Game) NumMines() int {
	return game.numMines
}

func (game *Game) NumFlags() int {
	return game.numFlags
}

func (game *Game) State() BoardState {
	return game.state
}

func (game *Game) Mode() GameMode {
	return game.mode
}

func (game *Game) Seed() int64 {
	return game.seed
}

// Rand is the game's seeded source, shared with directors so whole games
// replay from a seed
func (game *Game) Rand() *rand.Rand {
	return game.rand
}

func (game *Game) CellAt(row, col int) (Cell, error) {
	return game.cells.Get(row, col)
}

// Visible assembles what a player can see of the board
func (game *Game) Visible() *Board {
	board := grid.New[Symbol](game.rows, game.cols)
	game.cells.Each(func(row, col int, cell Cell) {
		board.Set(row, col, cell.symbol())
	})
	return board
}

func (game *Game) cell(point grid.Point) Cell {
	cell, _ := game.cells.Get(point.Row, point.Col)
	return cell
}

func (game *Game) setCell(point grid.Point, cell Cell) {
	game.cells.Set(point.Row, point.Col, cell)
}

func (game *Game) neighbors(point grid.Point) []grid.Point {
	return grid.NeighborPoints(game.cells, point.Row, point.Col)
}

func (game *Game) numSafeCells() int {
	return game.rows*game.cols - game.numMines
}

func (game *Game) canPlay() bool {
	return game.state == Ongoing
}

func (game *Game) checkMove(row, col int) error {
	if !game.cells.InBounds(row, col) {
		return errors.Wrapf(grid.ErrOutOfBounds, "cell (%d, %d) on a %dx%d board", row, col, game.rows, game.cols)
	}
	if !game.canPlay() {
		return errors.Wrapf(ErrGameOver, "game is %v", game.state)
	}
	return nil
}

// countMines recalculates every cell's count of neighboring mines
func (game *Game) countMines() {
	game.cells.Each(func(row, col int, cell Cell) {
		point := grid.Point{Row: row, Col: col}
		cell.numMines = 0
		for _, neighbor := range game.neighbors(point) {
			if game.cell(neighbor).isMine {
				cell.numMines++
			}
		}
		game.setCell(point, cell)
	})
}

// clearSurroundingMines moves any mines in the 3x3 block around point to
// random cells outside of it, as far as free cells allow
func (game *Game) clearSurroundingMines(point grid.Point) {
	block := append([]grid.Point{point}, game.neighbors(point)...)
	protected := collections.NewSet(block...)

	var free []grid.Point
	game.cells.Each(func(row, col int, cell Cell) {
		candidate := grid.Point{Row: row, Col: col}
		if !cell.isMine && !protected.Contains(candidate) {
			free = append(free, candidate)
		}
	})
	game.rand.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	moved := 0
	for _, blockPoint := range block {
		cell := game.cell(blockPoint)
		if !cell.isMine || moved >= len(free) {
			continue
		}

		cell.isMine = false
		game.setCell(blockPoint, cell)

		target := game.cell(free[moved])
		target.isMine = true
		game.setCell(free[moved], target)
		moved++
	}

	if moved > 0 {
		game.countMines()
		logrus.WithFields(logrus.Fields{
			"cell":  point,
			"moved": moved,
		}).Debug("Cleared mines around first reveal")
	}
}

func (game *Game) win() {
	game.state = Won
	logrus.WithField("seed", game.seed).Info("Game won")
}

func (game *Game) lose(point grid.Point) {
	game.state = Lost

	game.cells.Each(func(row, col int, cell Cell) {
		if cell.isMine && !cell.isFlagged {
			cell.isRevealed = true
			game.setCell(grid.Point{Row: row, Col: col}, cell)
		}
	})

	logrus.WithFields(logrus.Fields{
		"seed": game.seed,
		"cell": point,
	}).Info("Game lost")
}
