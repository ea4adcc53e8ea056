package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/gocross/grid"
)

type NeighborGetter func(grid.Point) []grid.Point

// Visitor handles one cell of the flood, returning whether the flood should
// spread to the cell's neighbors
type Visitor func(grid.Point) bool

// flood visits start and then, breadth first, every cell reachable through
// cells whose visit returned true. Each cell is visited at most once.
func flood(start grid.Point, visit Visitor, getNeighbors NeighborGetter) int {
	visited := map[grid.Point]struct{}{start: {}}

	var visitQueue deque.Deque
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		point := visitQueue.PopFront().(grid.Point)
		if !visit(point) {
			continue
		}

		for _, neighbor := range getNeighbors(point) {
			// Don't visit, if already visited
			if _, alreadyVisited := visited[neighbor]; alreadyVisited {
				continue
			}
			visited[neighbor] = struct{}{}
			visitQueue.PushBack(neighbor)
		}
	}

	return len(visited)
}
