package game

// Symbol is what a player can see of a cell
type Symbol int8
type BoardState int

const (
	Hidden Symbol = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flagged
	Mine
	ToBeRevealed
)

var Symbols = []Symbol{
	Hidden,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flagged,
	Mine,
	ToBeRevealed,
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

var boardStateNames = map[BoardState]string{
	Lost:    "lost",
	Won:     "won",
	Ongoing: "ongoing",
}

func (state BoardState) String() string {
	return boardStateNames[state]
}
