package minimax

import "fmt"

// Evaluation of a position, always from the computer's perspective
type Value int8

const (
	OpponentWinning Value = -1
	Drawn           Value = 0
	ComputerWinning Value = 1
)

func (v Value) String() string {
	switch v {
	case OpponentWinning:
		return "-1"
	case ComputerWinning:
		return "+1"
	default:
		return "0"
	}
}

// Optional search bound, the zero value is unbounded (-inf for alpha, +inf for beta)
type Bound struct {
	value Value
	set   bool
}

func Unbounded() Bound {
	return Bound{}
}

func BoundAt(v Value) Bound {
	return Bound{value: v, set: true}
}

func (b Bound) IsSet() bool {
	return b.set
}

// Only meaningful if IsSet returns true
func (b Bound) Value() Value {
	return b.value
}

func (b Bound) String() string {
	if !b.set {
		return "unset"
	}
	return fmt.Sprint(b.value)
}
