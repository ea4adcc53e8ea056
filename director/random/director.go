package random

import (
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gocross/game"
	"github.com/they4kman/gocross/grid"
)

// Director opens a random hidden cell each step
type Director struct {
	game *game.Game
}

func (director *Director) Init(g *game.Game) {
	director.game = g
}

func (director *Director) Act() bool {
	var candidates []grid.Point
	director.game.Visible().Each(func(row, col int, symbol game.Symbol) {
		if symbol == game.Hidden {
			candidates = append(candidates, grid.Point{Row: row, Col: col})
		}
	})
	if len(candidates) == 0 {
		return false
	}

	choice := candidates[director.game.Rand().Intn(len(candidates))]
	if err := director.game.Reveal(choice.Row, choice.Col); err != nil {
		logrus.WithError(err).WithField("cell", choice).Debug("Random reveal failed")
		return false
	}

	logrus.WithField("cell", choice).Debug("Random reveal")
	return true
}
