package game

type Outcome int

const (
	InProgress Outcome = iota
	ComputerWon
	OpponentWon
	Draw
)

func (o Outcome) String() string {
	switch o {
	case ComputerWon:
		return "computer won"
	case OpponentWon:
		return "opponent won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}
