package grid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Rule computes the next state of one cell from the previous generation
type Rule[S comparable] func(grid *Grid[S], row, col int) S

// Step applies rule to every cell of grid. Every next state is computed from
// grid alone and written into a fresh grid, so no cell sees a neighbor that
// was already updated.
func Step[S comparable](grid *Grid[S], rule Rule[S]) *Grid[S] {
	next := New[S](grid.rows, grid.cols)
	stepRows(grid, next, rule, 0, grid.rows)
	return next
}

// StepParallel is Step with the rows split into bands, one band per worker.
// Workers share read access to grid and write disjoint rows of the result.
func StepParallel[S comparable](ctx context.Context, grid *Grid[S], rule Rule[S], workers int) (*Grid[S], error) {
	if workers <= 1 || grid.rows <= 1 {
		return Step(grid, rule), nil
	}
	if workers > grid.rows {
		workers = grid.rows
	}

	next := New[S](grid.rows, grid.cols)
	band := (grid.rows + workers - 1) / workers

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for start := 0; start < grid.rows; start += band {
		start, end := start, min(start+band, grid.rows)
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stepRows(grid, next, rule, start, end)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

func stepRows[S comparable](grid, next *Grid[S], rule Rule[S], start, end int) {
	for row := start; row < end; row++ {
		for col := 0; col < grid.cols; col++ {
			next.cells[row*grid.cols+col] = rule(grid, row, col)
		}
	}
}
