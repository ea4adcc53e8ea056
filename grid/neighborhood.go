package grid

// Neighborhood is the 3x3 sample around a cell in row-major order, the cell
// itself at index Center.
type Neighborhood[S comparable] [9]S

const (
	TopLeft = iota
	Up
	TopRight
	Left
	Center
	Right
	BottomLeft
	Down
	BottomRight
)

// Offsets lists the (row, col) offsets of each neighborhood index
var Offsets = [9]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Orthogonal lists the indices of the four edge-sharing neighbors
var Orthogonal = [4]int{Up, Left, Right, Down}

// NeighborhoodOf samples the 3x3 block centered on (row, col). Positions
// outside the grid read as the zero value of S, so edge cells behave as if
// the grid were bordered by a permanently empty ring.
func NeighborhoodOf[S comparable](grid *Grid[S], row, col int) Neighborhood[S] {
	var neighborhood Neighborhood[S]
	for i, offset := range Offsets {
		r, c := row+offset.Row, col+offset.Col
		if grid.InBounds(r, c) {
			neighborhood[i] = grid.at(r, c)
		}
	}
	return neighborhood
}

// Contains reports whether any of the nine positions holds state
func (neighborhood Neighborhood[S]) Contains(state S) bool {
	for _, s := range neighborhood {
		if s == state {
			return true
		}
	}
	return false
}

// CountAround counts matching states among the eight cells around the center
func (neighborhood Neighborhood[S]) CountAround(match func(S) bool) int {
	total := 0
	for i, s := range neighborhood {
		if i != Center && match(s) {
			total++
		}
	}
	return total
}

// NeighborPoints returns the in-bounds cells around (row, col), center
// excluded, in neighborhood scan order
func NeighborPoints[S comparable](grid *Grid[S], row, col int) []Point {
	points := make([]Point, 0, 8)
	for i, offset := range Offsets {
		if i == Center {
			continue
		}
		r, c := row+offset.Row, col+offset.Col
		if grid.InBounds(r, c) {
			points = append(points, Point{r, c})
		}
	}
	return points
}
