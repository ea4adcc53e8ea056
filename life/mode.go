package life

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gocross/grid"
)

// Engine maps a cell's neighborhood to the cell's next state
type Engine interface {
	Name() string
	Next(Neighborhood) CellState
}

type Mode int

const (
	Cross Mode = iota
	Conway
)

var Modes = map[string]Mode{
	"cross":  Cross,
	"conway": Conway,
}

func ParseMode(value string) (Mode, error) {
	if mode, ok := Modes[value]; ok {
		return mode, nil
	}
	return Cross, errors.Errorf("invalid mode %q", value)
}

func (mode Mode) String() string {
	for name, m := range Modes {
		if m == mode {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

func (mode Mode) Engine() Engine {
	if mode == Conway {
		return ConwayEngine{}
	}
	return CrossEngine{}
}

// Toggle switches between the two rule sets
func (mode Mode) Toggle() Mode {
	if mode == Cross {
		return Conway
	}
	return Cross
}

func cellRule(engine Engine) grid.Rule[CellState] {
	return func(g *Grid, row, col int) CellState {
		return engine.Next(grid.NeighborhoodOf(g, row, col))
	}
}

// TransitionCell computes the next state of a single cell
func TransitionCell(engine Engine, g *Grid, row, col int) (CellState, error) {
	if _, err := g.Get(row, col); err != nil {
		return Dead, err
	}
	return engine.Next(grid.NeighborhoodOf(g, row, col)), nil
}

// Transition advances g by one generation under mode, leaving g untouched
func Transition(g *Grid, mode Mode) *Grid {
	return grid.Step(g, cellRule(mode.Engine()))
}

// TransitionParallel is Transition with rows spread over workers
func TransitionParallel(ctx context.Context, g *Grid, mode Mode, workers int) (*Grid, error) {
	engine := mode.Engine()
	next, err := grid.StepParallel(ctx, g, cellRule(engine), workers)
	if err != nil {
		return nil, errors.Wrapf(err, "%s generation", engine.Name())
	}

	rows, cols := g.Dimensions()
	logrus.WithFields(logrus.Fields{
		"mode":    engine.Name(),
		"rows":    rows,
		"cols":    cols,
		"workers": workers,
	}).Debug("computed generation")
	return next, nil
}
