package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/gocross/grid"
)

// turn is an immutable copy of everything an action can change
type turn struct {
	cells       *grid.Grid[Cell]
	state       BoardState
	numFlags    int
	numRevealed int
	hasRevealed bool
}

// history is a bounded undo stack; the oldest turns fall off the front
type history struct {
	limit int
	turns deque.Deque
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

func (stack *history) push(entry turn) {
	if stack.limit <= 0 {
		return
	}
	stack.turns.PushBack(entry)
	for stack.turns.Len() > stack.limit {
		stack.turns.PopFront()
	}
}

func (stack *history) pop() (turn, bool) {
	if stack.turns.Len() == 0 {
		return turn{}, false
	}
	return stack.turns.PopBack().(turn), true
}

func (stack *history) Len() int {
	return stack.turns.Len()
}
