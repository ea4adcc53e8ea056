package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrOutOfBounds       = errors.New("index out of bounds")
	ErrDimensionMismatch = errors.New("grid dimensions differ")
	ErrInvalidCellValue  = errors.New("invalid cell value")
)

// Point addresses a single cell by row and column
type Point struct {
	Row, Col int
}

func (point Point) String() string {
	return fmt.Sprintf("(%d, %d)", point.Row, point.Col)
}

// Grid is a fixed-size, row-major 2D container of cell states. Its dimensions
// never change once constructed.
type Grid[S comparable] struct {
	rows, cols int
	cells      []S
}

// New allocates a rows x cols grid filled with the zero value of S
func New[S comparable](rows, cols int) *Grid[S] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", rows, cols))
	}
	return &Grid[S]{
		rows:  rows,
		cols:  cols,
		cells: make([]S, rows*cols),
	}
}

// FromRows builds a grid from a slice of equally long rows
func FromRows[S comparable](rows [][]S) (*Grid[S], error) {
	if len(rows) == 0 {
		return New[S](0, 0), nil
	}

	grid := New[S](len(rows), len(rows[0]))
	for row, values := range rows {
		if len(values) != grid.cols {
			return nil, errors.Wrapf(ErrDimensionMismatch, "row %d has %d cells, expected %d", row, len(values), grid.cols)
		}
		copy(grid.cells[row*grid.cols:], values)
	}
	return grid, nil
}

func (grid *Grid[S]) Dimensions() (rows, cols int) {
	return grid.rows, grid.cols
}

func (grid *Grid[S]) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < grid.rows && col < grid.cols
}

func (grid *Grid[S]) checkBounds(row, col int) error {
	if !grid.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "(%d, %d) outside %dx%d grid", row, col, grid.rows, grid.cols)
	}
	return nil
}

func (grid *Grid[S]) Get(row, col int) (S, error) {
	if err := grid.checkBounds(row, col); err != nil {
		var zero S
		return zero, err
	}
	return grid.cells[row*grid.cols+col], nil
}

func (grid *Grid[S]) Set(row, col int, state S) error {
	if err := grid.checkBounds(row, col); err != nil {
		return err
	}
	grid.cells[row*grid.cols+col] = state
	return nil
}

// at reads a cell the caller already knows to be in bounds
func (grid *Grid[S]) at(row, col int) S {
	return grid.cells[row*grid.cols+col]
}

// Clone returns an independent deep copy
func (grid *Grid[S]) Clone() *Grid[S] {
	clone := &Grid[S]{
		rows:  grid.rows,
		cols:  grid.cols,
		cells: make([]S, len(grid.cells)),
	}
	copy(clone.cells, grid.cells)
	return clone
}

func (grid *Grid[S]) SameShape(other *Grid[S]) bool {
	return grid.rows == other.rows && grid.cols == other.cols
}

func (grid *Grid[S]) Equal(other *Grid[S]) bool {
	if !grid.SameShape(other) {
		return false
	}
	for i, state := range grid.cells {
		if other.cells[i] != state {
			return false
		}
	}
	return true
}

// Rows copies the grid out as a slice of rows
func (grid *Grid[S]) Rows() [][]S {
	rows := make([][]S, grid.rows)
	for row := range rows {
		rows[row] = make([]S, grid.cols)
		copy(rows[row], grid.cells[row*grid.cols:(row+1)*grid.cols])
	}
	return rows
}

func (grid *Grid[S]) Fill(state S) {
	for i := range grid.cells {
		grid.cells[i] = state
	}
}

// Count returns the number of cells satisfying match
func (grid *Grid[S]) Count(match func(S) bool) int {
	total := 0
	for _, state := range grid.cells {
		if match(state) {
			total++
		}
	}
	return total
}

// Each visits every cell in row-major order
func (grid *Grid[S]) Each(visit func(row, col int, state S)) {
	for i, state := range grid.cells {
		visit(i/grid.cols, i%grid.cols, state)
	}
}
