package life

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gocross/grid"
)

// World owns the grid between generations and drives the transitions
type World struct {
	config Config

	grid       *Grid
	mode       Mode
	generation int
	rand       *rand.Rand
}

func NewWorld(config Config) (*World, error) {
	world := &World{
		config: config,
		mode:   config.Mode,
		rand:   rand.New(rand.NewSource(config.Seed)),
	}

	if config.Snapshot != nil {
		g, err := config.Snapshot.Grid()
		if err != nil {
			return nil, errors.Wrap(err, "loading snapshot")
		}
		mode, err := config.Snapshot.ParseMode()
		if err != nil {
			return nil, errors.Wrap(err, "loading snapshot")
		}
		world.grid = g
		world.mode = mode
		world.generation = config.Snapshot.Generation
	} else {
		if config.Rows <= 0 || config.Cols <= 0 {
			return nil, errors.Errorf("invalid world size %dx%d", config.Rows, config.Cols)
		}
		world.grid = NewGrid(config.Rows, config.Cols)
		world.Reset()
	}

	return world, nil
}

// Grid returns a copy of the current generation
func (world *World) Grid() *Grid {
	return world.grid.Clone()
}

func (world *World) Generation() int {
	return world.generation
}

func (world *World) Mode() Mode {
	return world.mode
}

func (world *World) SetMode(mode Mode) {
	world.mode = mode
}

func (world *World) ToggleMode() Mode {
	world.mode = world.mode.Toggle()
	return world.mode
}

// NextDay advances the world by one generation and returns the changed cells
func (world *World) NextDay(ctx context.Context) ([]ChangeRecord, error) {
	next, changes, err := grid.Track(world.grid, func(g *Grid) (*Grid, error) {
		return TransitionParallel(ctx, g, world.mode, world.config.Workers)
	})
	if err != nil {
		return nil, err
	}

	world.grid = next
	world.generation++

	logrus.WithFields(logrus.Fields{
		"generation": world.generation,
		"mode":       world.mode,
		"changes":    len(changes),
	}).Debug("next day")
	return changes, nil
}

// Run advances up to generations steps, stopping early once a generation
// changes nothing. It returns the number of generations computed.
func (world *World) Run(ctx context.Context, generations int, onChanges func(generation int, changes []ChangeRecord)) (int, error) {
	for i := 0; i < generations; i++ {
		changes, err := world.NextDay(ctx)
		if err != nil {
			return i, err
		}
		if onChanges != nil {
			onChanges(world.generation, changes)
		}
		if len(changes) == 0 {
			return i + 1, nil
		}
	}
	return generations, nil
}

// Clear kills every cell
func (world *World) Clear() []ChangeRecord {
	return world.replace(func(g *Grid) {
		g.Fill(Dead)
	})
}

// Reset replaces the grid with freshly seeded crosses and random cells
func (world *World) Reset() []ChangeRecord {
	changes := world.replace(func(g *Grid) {
		g.Fill(Dead)
		SeedCrosses(g, world.rand, world.config.Crosses)
	})
	world.generation = 0
	return changes
}

func (world *World) replace(fill func(*Grid)) []ChangeRecord {
	next, changes, _ := grid.Track(world.grid, func(g *Grid) (*Grid, error) {
		rows, cols := g.Dimensions()
		next := NewGrid(rows, cols)
		fill(next)
		return next, nil
	})
	world.grid = next
	return changes
}

// Toggle flips a cell between Dead and Alive; any other state becomes Dead
func (world *World) Toggle(row, col int) (ChangeRecord, error) {
	state, err := world.grid.Get(row, col)
	if err != nil {
		return ChangeRecord{}, err
	}

	next := Dead
	if state == Dead {
		next = Alive
	}
	_ = world.grid.Set(row, col, next)
	return ChangeRecord{Value: next, Row: row, Col: col}, nil
}

func (world *World) Snapshot() *GridSnapshot {
	return SnapshotOf(world.grid, world.mode, world.generation, world.config.Seed)
}
