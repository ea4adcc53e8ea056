package game

import "fmt"

// Cell is the full truth about one square of a game
type Cell struct {
	numMines uint8

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%s, mines=%d)", cell.serialize(), cell.numMines)
}

func (cell Cell) IsMine() bool {
	return cell.isMine
}

func (cell Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell Cell) IsFlagged() bool {
	return cell.isFlagged
}

func (cell Cell) NumMines() int {
	return int(cell.numMines)
}

// symbol is what a player sees of the cell
func (cell Cell) symbol() Symbol {
	switch {
	case cell.isFlagged:
		return Flagged
	case !cell.isRevealed:
		return Hidden
	case cell.isMine:
		return Mine
	default:
		return Symbol(cell.numMines)
	}
}

func (cell Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isFlagged:
		return "f"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

// deserializeCell reads one snapshot character. With fresh set, only mine
// placement is kept.
func deserializeCell(c rune, fresh bool) (Cell, bool) {
	var cell Cell
	switch c {
	case '*':
		cell.isMine = true
		if !fresh {
			cell.isLosingMine = true
			cell.isRevealed = true
		}
	case 'F':
		cell.isMine = true
		cell.isFlagged = !fresh
	case 'O':
		cell.isMine = true
	case 'f':
		cell.isFlagged = !fresh
	case '.':
		cell.isRevealed = !fresh
	case '#':
	default:
		return cell, false
	}
	return cell, true
}
