package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/gocross/grid"
)

// BoardSnapshot stores a game's mines and progress, one character per cell:
//
//	# hidden cell   . revealed cell   f flagged safe cell
//	O hidden mine   F flagged mine    * revealed (losing) mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Snapshot captures the game so it can be replayed or resumed with CreateGame
func (game *Game) Snapshot() *BoardSnapshot {
	boardBuilder := strings.Builder{}
	for y, row := range game.cells.Rows() {
		if y > 0 {
			boardBuilder.WriteByte('\n')
		}
		for _, cell := range row {
			boardBuilder.WriteString(cell.serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            game.seed,
		SerializedBoard: boardBuilder.String(),
	}
}

// CreateGame rebuilds a game from the snapshot. With fresh set, only the
// mines are kept and every cell starts hidden.
func (snapshot *BoardSnapshot) CreateGame(config GameConfig, fresh bool) (*Game, error) {
	var rows [][]Cell
	for y, line := range strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row := make([]Cell, 0, len(line))
		for x, c := range line {
			cell, ok := deserializeCell(c, fresh)
			if !ok {
				return nil, errors.Wrapf(grid.ErrInvalidCellValue, "snapshot cell %q at (%d, %d)", c, y, x)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	cells, err := grid.FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "loading snapshot")
	}
	numRows, numCols := cells.Dimensions()
	if numRows == 0 || numCols == 0 {
		return nil, errors.New("snapshot board is empty")
	}

	config.Seed = snapshot.Seed
	game := newGame(config, numRows, numCols)
	game.cells = cells
	game.countMines()

	lost := false
	cells.Each(func(row, col int, cell Cell) {
		if cell.isMine {
			game.numMines++
		} else if cell.isRevealed {
			game.numRevealed++
		}
		if cell.isFlagged {
			game.numFlags++
		}
		lost = lost || cell.isLosingMine
	})
	game.hasRevealed = game.numRevealed > 0 || lost

	switch {
	case lost:
		game.state = Lost
	case game.numRevealed == game.numSafeCells():
		game.state = Won
	}

	return game, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing board snapshot")
	}
	return &snapshot, nil
}
