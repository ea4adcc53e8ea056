package game

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/gocross/grid"
)

// Board is the symbolic view of a minesweeper grid
type Board = grid.Grid[Symbol]

var symbolRunes = map[Symbol]rune{
	Hidden:       '_',
	Empty:        '0',
	Number1:      '1',
	Number2:      '2',
	Number3:      '3',
	Number4:      '4',
	Number5:      '5',
	Number6:      '6',
	Number7:      '7',
	Number8:      '8',
	Flagged:      'F',
	Mine:         '*',
	ToBeRevealed: 'X',
}

var runeSymbols = func() map[rune]Symbol {
	symbols := make(map[rune]Symbol, len(symbolRunes))
	for symbol, c := range symbolRunes {
		symbols[c] = symbol
	}
	return symbols
}()

func ParseSymbol(c rune) (Symbol, error) {
	if symbol, ok := runeSymbols[c]; ok {
		return symbol, nil
	}
	return Hidden, errors.Wrapf(grid.ErrInvalidCellValue, "unknown symbol %q", c)
}

func (symbol Symbol) Valid() bool {
	_, ok := symbolRunes[symbol]
	return ok
}

func (symbol Symbol) Rune() rune {
	if c, ok := symbolRunes[symbol]; ok {
		return c
	}
	return '?'
}

func (symbol Symbol) String() string {
	return string(symbol.Rune())
}

// IsRevealed reports whether the symbol shows a neighbor count
func (symbol Symbol) IsRevealed() bool {
	return symbol >= Empty && symbol <= Number8
}

// Count returns the number of neighboring mines a revealed cell shows
func (symbol Symbol) Count() (int, bool) {
	if !symbol.IsRevealed() {
		return 0, false
	}
	return int(symbol), true
}

// ParseBoard reads one line of symbols per row; blank lines are skipped
func ParseBoard(in string) (*Board, error) {
	var rows [][]Symbol
	for y, line := range strings.Split(strings.TrimSpace(in), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row := make([]Symbol, 0, len(line))
		for x, c := range line {
			symbol, err := ParseSymbol(c)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", y+1, x+1)
			}
			row = append(row, symbol)
		}
		rows = append(rows, row)
	}
	return grid.FromRows(rows)
}

func FormatBoard(board *Board) string {
	boardBuilder := strings.Builder{}
	for _, row := range board.Rows() {
		for _, symbol := range row {
			boardBuilder.WriteRune(symbol.Rune())
		}
		boardBuilder.WriteByte('\n')
	}
	return boardBuilder.String()
}
