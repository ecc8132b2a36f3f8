package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

// Moves leading to children with the same evaluation as this position,
// the children stay in place
func (p *Position) BestMoves() ([]ttt.Coord, error) {
	moves := make([]ttt.Coord, 0, len(p.children))
	for i := range p.children {
		if p.children[i].evaluation == p.evaluation {
			moves = append(moves, p.children[i].move)
		}
	}

	if len(moves) == 0 {
		return nil, p.noBestMove()
	}
	return moves, nil
}

// Moves the children out of the position (see TakeChildren) and keeps only
// those with the same evaluation as this position
func (p *Position) TakeBestChildren() ([]Position, error) {
	eval := p.evaluation
	candidates := p.TakeChildren()
	best := candidates[:0]
	for i := range candidates {
		if candidates[i].evaluation == eval {
			best = append(best, candidates[i])
		}
	}

	if len(best) == 0 {
		return nil, p.noBestMove()
	}
	return best, nil
}

func (p *Position) noBestMove() error {
	return fmt.Errorf("%w: board %v, turn %v, depth %d, eval %v",
		ErrNoBestMove, p.board, p.turn, p.depth, p.evaluation)
}
