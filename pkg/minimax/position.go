package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

// Minimum number of plies before anyone can have three in a row
const MinWinDepth = 5

// A position is one node of the game tree: the board, who is to move, how
// many plies were played, and its evaluation. It's fully evaluated when
// constructed (see NewPosition) and never changes afterwards, apart from
// handing over its children with TakeChildren.
type Position struct {
	board      ttt.Board
	turn       ttt.Turn
	depth      int
	move       ttt.Coord // move that led here, CoordIllegal for roots
	evaluation Value
	alpha      Bound
	beta       Bound
	children   []Position
}

// Evaluate given position with the alpha-beta bounds inherited from its parent.
// Returns its evaluation and the children explored before the search stopped.
func Evaluate(board ttt.Board, turn ttt.Turn, depth int, alpha, beta Bound, order Order) (Value, []Position) {
	pos := NewSearch(order).Position(board, turn, depth, alpha, beta)
	return pos.evaluation, pos.children
}

// Make a new, evaluated position
func NewPosition(board ttt.Board, turn ttt.Turn, depth int, alpha, beta Bound, order Order) *Position {
	return NewSearch(order).Position(board, turn, depth, alpha, beta)
}

// Make a new, evaluated position with unbounded alpha and beta,
// this is what a game driver should use after every actual move
func NewRoot(board ttt.Board, turn ttt.Turn, depth int, order Order) *Position {
	return NewSearch(order).Root(board, turn, depth)
}

func (p *Position) Board() ttt.Board {
	return p.board
}

func (p *Position) Turn() ttt.Turn {
	return p.turn
}

func (p *Position) Depth() int {
	return p.depth
}

func (p *Position) Move() ttt.Coord {
	return p.move
}

func (p *Position) Evaluation() Value {
	return p.evaluation
}

// Alpha bound this position was searched with
func (p *Position) Alpha() Bound {
	return p.alpha
}

// Beta bound this position was searched with
func (p *Position) Beta() Bound {
	return p.beta
}

// Children explored during the evaluation, must not be modified
func (p *Position) Children() []Position {
	return p.children
}

func (p *Position) ChildCount() int {
	return len(p.children)
}

// Transfers the children to the caller, the position is left without any
func (p *Position) TakeChildren() []Position {
	children := p.children
	p.children = nil
	return children
}

// True if at least one child has given evaluation
func (p *Position) EvaluationInChildren(v Value) bool {
	for i := range p.children {
		if p.children[i].evaluation == v {
			return true
		}
	}
	return false
}

// The computer just moved and has three in a row
func (p *Position) ComputerWon() bool {
	return p.turn == ttt.OpponentTurn && p.depth >= MinWinDepth && p.board.ThreeInARow(ttt.Computer)
}

// The opponent just moved and has three in a row
func (p *Position) OpponentWon() bool {
	return p.turn == ttt.ComputerTurn && p.depth >= MinWinDepth && p.board.ThreeInARow(ttt.Opponent)
}

// Assumes no one has won, then the game is drawn only if the board is full
func (p *Position) IsDrawn() bool {
	return p.board.IsFull()
}

func (p *Position) IsTerminated() bool {
	return p.ComputerWon() || p.OpponentWon() || p.IsDrawn()
}

func (p *Position) String() string {
	return fmt.Sprintf("Position={board=%v, turn=%v, depth=%d, eval=%v, children=%d}",
		p.board, p.turn, p.depth, p.evaluation, len(p.children))
}
