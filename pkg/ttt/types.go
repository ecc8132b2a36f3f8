package ttt

// Cell is the content of a single square
type Cell uint8

// Turn says who is to move, flip it with !turn
type Turn bool

const (
	Empty    Cell = 0
	Computer Cell = 1
	Opponent Cell = 2
)

const (
	ComputerTurn Turn = true
	OpponentTurn Turn = false
)

// Number of squares on the board, also the maximum depth of a game
const Cells = 9

// Get the cell value the side to move places
func (t Turn) Cell() Cell {
	if t == ComputerTurn {
		return Computer
	}
	return Opponent
}

func (t Turn) String() string {
	if t == ComputerTurn {
		return "computer"
	}
	return "opponent"
}

func (c Cell) String() string {
	switch c {
	case Computer:
		return "C"
	case Opponent:
		return "U"
	default:
		return "_"
	}
}
