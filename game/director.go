package game

import "github.com/sirupsen/logrus"

type Director interface {
	// Init binds the director to the game it plays
	Init(*Game)

	// Act performs a single step of actions, returning false when it found
	// nothing to do
	Act() bool
}

// Play lets director act until the game ends, the director gives up, or
// maxSteps steps were taken (no limit when maxSteps <= 0). It returns the
// number of steps taken.
func Play(game *Game, director Director, maxSteps int) int {
	director.Init(game)

	steps := 0
	for game.canPlay() && (maxSteps <= 0 || steps < maxSteps) {
		if !director.Act() {
			break
		}
		steps++
	}

	logrus.WithFields(logrus.Fields{
		"steps": steps,
		"state": game.State(),
	}).Debug("Director finished")
	return steps
}
