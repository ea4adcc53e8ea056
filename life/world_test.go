package life

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/they4kman/gocross/grid"
)

func TestResetDeterministic(t *testing.T) {
	config := NewConfig()
	config.Rows, config.Cols = 20, 24
	config.Seed = 99

	first, err := NewWorld(config)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewWorld(config)
	if err != nil {
		t.Fatal(err)
	}

	if !first.Grid().Equal(second.Grid()) {
		t.Fatal("worlds with the same seed differ")
	}
	if first.Grid().Count(func(state CellState) bool { return state == Alive }) == 0 {
		t.Fatal("seeded world has no live cells")
	}
}

func TestDrawRandomCrossIsPlusShaped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		g := NewGrid(16, 16)
		drawRandomCross(g, rng)

		rowCounts := make(map[int]int)
		colCounts := make(map[int]int)
		alive := 0
		g.Each(func(row, col int, state CellState) {
			if state == Alive {
				rowCounts[row]++
				colCounts[col]++
				alive++
			}
		})

		// a cross of size n has 2n-1 cells: one full row, one full column
		size := (alive + 1) / 2
		if alive%2 == 0 || size < 3 || size >= 8 {
			t.Fatalf("cross has %d cells", alive)
		}
		if len(rowCounts) != size || len(colCounts) != size {
			t.Fatalf("cross of size %d spans %d rows and %d cols", size, len(rowCounts), len(colCounts))
		}
	}
}

func TestSeedCrossesTinyGrid(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 5}, {3, 3}, {6, 2}} {
		g := NewGrid(size[0], size[1])
		SeedCrosses(g, rand.New(rand.NewSource(1)), 2)
	}
}

func TestNextDayReportsChanges(t *testing.T) {
	config := NewConfig()
	config.Snapshot = &GridSnapshot{Rows: []string{"00000", "00100", "01110", "00100", "00000"}}
	config.Workers = 3

	world, err := NewWorld(config)
	if err != nil {
		t.Fatal(err)
	}

	before := world.Grid()
	changes, err := world.NextDay(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if world.Generation() != 1 {
		t.Fatalf("generation = %d", world.Generation())
	}

	// replaying the changes on the previous generation yields the current one
	if err := grid.Apply(before, changes); err != nil {
		t.Fatal(err)
	}
	if !before.Equal(world.Grid()) {
		t.Fatalf("replayed %v, world is %v", gridRows(before), gridRows(world.Grid()))
	}
	if len(changes) != 5 {
		t.Fatalf("changes = %v, expected 5", changes)
	}
}

func TestRunStopsAtFixedPoint(t *testing.T) {
	config := NewConfig()
	config.Snapshot = &GridSnapshot{Rows: []string{"00000", "00100", "01110", "00100", "00000"}}

	world, err := NewWorld(config)
	if err != nil {
		t.Fatal(err)
	}

	var changeCounts []int
	ran, err := world.Run(context.Background(), 50, func(generation int, changes []ChangeRecord) {
		changeCounts = append(changeCounts, len(changes))
	})
	if err != nil {
		t.Fatal(err)
	}
	if ran != 3 {
		t.Fatalf("ran %d generations (%v), expected 3", ran, changeCounts)
	}
	if changeCounts[len(changeCounts)-1] != 0 {
		t.Fatalf("last generation still changed: %v", changeCounts)
	}
}

func TestToggleClearAndMode(t *testing.T) {
	config := NewConfig()
	config.Rows, config.Cols = 4, 4

	world, err := NewWorld(config)
	if err != nil {
		t.Fatal(err)
	}

	world.Clear()
	if world.Grid().Count(func(state CellState) bool { return state != Dead }) != 0 {
		t.Fatal("Clear left live cells")
	}

	change, err := world.Toggle(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if change != (ChangeRecord{Value: Alive, Row: 1, Col: 2}) {
		t.Fatalf("Toggle = %v", change)
	}
	if change, _ = world.Toggle(1, 2); change.Value != Dead {
		t.Fatalf("second Toggle = %v", change)
	}
	if _, err := world.Toggle(4, 0); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Fatalf("Toggle out of bounds err = %v", err)
	}

	if world.ToggleMode() != Conway || world.Mode() != Conway {
		t.Fatal("ToggleMode did not switch to conway")
	}
}

func TestNewWorldRejectsBadConfig(t *testing.T) {
	config := NewConfig()
	config.Rows = 0
	if _, err := NewWorld(config); err == nil {
		t.Fatal("NewWorld accepted an empty grid")
	}

	config = NewConfig()
	config.Snapshot = &GridSnapshot{Rows: []string{"012", "0a2"}}
	if _, err := NewWorld(config); !errors.Is(err, grid.ErrInvalidCellValue) {
		t.Fatalf("err = %v, expected ErrInvalidCellValue", err)
	}
}
