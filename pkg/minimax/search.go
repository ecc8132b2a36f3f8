package minimax

import "github.com/IlikeChooros/go-alphabeta/pkg/ttt"

// Search evaluates positions with a fixed move order and collects statistics.
// It's not safe for concurrent use.
type Search struct {
	order Order
	stats Stats
}

func NewSearch(order Order) *Search {
	return &Search{order: order}
}

func (s *Search) Order() Order {
	return s.order
}

// Statistics accumulated by all evaluations made with this search
func (s *Search) Stats() Stats {
	return s.stats
}

// Make and evaluate a position with given bounds
func (s *Search) Position(board ttt.Board, turn ttt.Turn, depth int, alpha, beta Bound) *Position {
	pos := &Position{
		board: board,
		turn:  turn,
		depth: depth,
		move:  ttt.CoordIllegal,
		alpha: alpha,
		beta:  beta,
	}
	s.evaluate(pos)
	return pos
}

// Make and evaluate a position with unbounded alpha and beta
func (s *Search) Root(board ttt.Board, turn ttt.Turn, depth int) *Position {
	return s.Position(board, turn, depth, Unbounded(), Unbounded())
}

// Minimax with alpha-beta pruning. Fills in the evaluation and children of 'pos'.
//
// Whenever a branch is cut off, its evaluation is forced to the extreme its parent
// likes the least (+1 below a minimizing parent, -1 below a maximizing one), instead
// of the bound itself. The parent then never picks it over the line that caused the cutoff.
func (s *Search) evaluate(pos *Position) {
	s.stats.Nodes++
	s.stats.MaxDepth = max(s.stats.MaxDepth, pos.depth)

	switch {
	case pos.ComputerWon():
		pos.evaluation = ComputerWinning
		s.stats.Terminals++
		return
	case pos.OpponentWon():
		pos.evaluation = OpponentWinning
		s.stats.Terminals++
		return
	case pos.depth >= ttt.Cells || pos.board.IsFull():
		pos.evaluation = Drawn
		s.stats.Terminals++
		return
	}

	maximizing := pos.turn == ttt.ComputerTurn
	mover := pos.turn.Cell()
	alpha, beta := pos.alpha, pos.beta
	eval := Unbounded()

	pos.children = make([]Position, 0, pos.board.Count(ttt.Empty))
	for _, coord := range s.order {
		if !pos.board.IsEmpty(coord) {
			continue
		}

		pos.children = append(pos.children, Position{
			board: pos.board.Set(coord, mover),
			turn:  !pos.turn,
			depth: pos.depth + 1,
			move:  coord,
			alpha: alpha,
			beta:  beta,
		})
		child := &pos.children[len(pos.children)-1]
		s.evaluate(child)
		childEval := child.evaluation

		// Side to move can win right away
		if (maximizing && childEval == ComputerWinning) || (!maximizing && childEval == OpponentWinning) {
			pos.evaluation = childEval
			s.stats.ShortCircuits++
			return
		}

		switch {
		case !eval.IsSet():
			eval = BoundAt(childEval)
		case maximizing && childEval > eval.Value():
			eval = BoundAt(childEval)
		case !maximizing && childEval < eval.Value():
			eval = BoundAt(childEval)
		}

		if maximizing {
			if beta.IsSet() && beta.Value() <= eval.Value() {
				pos.evaluation = ComputerWinning
				s.stats.Cutoffs++
				return
			}
			if !alpha.IsSet() || eval.Value() > alpha.Value() {
				alpha = eval
			}
		} else {
			if alpha.IsSet() && alpha.Value() >= eval.Value() {
				pos.evaluation = OpponentWinning
				s.stats.Cutoffs++
				return
			}
			if !beta.IsSet() || eval.Value() < beta.Value() {
				beta = eval
			}
		}
	}

	pos.evaluation = eval.Value()
}
