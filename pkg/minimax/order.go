package minimax

import (
	"math/rand"

	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

// Order is the move generation order used by every position of a single game.
// Which of the equally good moves is found first depends only on it, so a fresh
// shuffle per game gives varied but reproducible play.
type Order [ttt.Cells]ttt.Coord

// Squares in index order, a1 b1 c1 a2 ...
func IdentityOrder() Order {
	var o Order
	for i := range o {
		o[i] = ttt.Coord(i)
	}
	return o
}

// Get a freshly shuffled order
func NewOrder(r *rand.Rand) Order {
	o := IdentityOrder()
	o.Shuffle(r)
	return o
}

func (o *Order) Shuffle(r *rand.Rand) {
	r.Shuffle(len(o), func(i, j int) {
		o[i], o[j] = o[j], o[i]
	})
}

// Reports whether every square appears exactly once
func (o Order) Valid() bool {
	seen := uint16(0)
	for _, c := range o {
		if !c.Valid() || seen&(1<<c) != 0 {
			return false
		}
		seen |= 1 << c
	}
	return seen == 0b111111111
}

func (o Order) String() string {
	ml := ttt.MoveList{Moves: o, Size: ttt.Cells}
	return ml.String()
}
