package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

// ChangeRecord describes one cell whose state differs between two snapshots
type ChangeRecord[S comparable] struct {
	Value    S
	Row, Col int
}

func (change ChangeRecord[S]) String() string {
	return fmt.Sprintf("%v@(%d, %d)", change.Value, change.Row, change.Col)
}

// Diff lists, in row-major order, every cell of after that differs from before
func Diff[S comparable](before, after *Grid[S]) ([]ChangeRecord[S], error) {
	if !before.SameShape(after) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%dx%d vs %dx%d", before.rows, before.cols, after.rows, after.cols)
	}

	var changes []ChangeRecord[S]
	for i, state := range after.cells {
		if before.cells[i] != state {
			changes = append(changes, ChangeRecord[S]{
				Value: state,
				Row:   i / after.cols,
				Col:   i % after.cols,
			})
		}
	}
	return changes, nil
}

// Apply writes each change into grid
func Apply[S comparable](grid *Grid[S], changes []ChangeRecord[S]) error {
	for _, change := range changes {
		if err := grid.Set(change.Row, change.Col, change.Value); err != nil {
			return errors.Wrapf(err, "applying change %v", change)
		}
	}
	return nil
}

// Track snapshots grid, runs transition on it and reports the new grid
// together with the cells that changed relative to the snapshot
func Track[S comparable](grid *Grid[S], transition func(*Grid[S]) (*Grid[S], error)) (*Grid[S], []ChangeRecord[S], error) {
	before := grid.Clone()

	after, err := transition(grid)
	if err != nil {
		return nil, nil, err
	}

	changes, err := Diff(before, after)
	if err != nil {
		return nil, nil, errors.Wrap(err, "transition changed grid shape")
	}
	return after, changes, nil
}
