package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-alphabeta/pkg/game"
	"github.com/IlikeChooros/go-alphabeta/pkg/minimax"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

var ErrInvalidPiece = errors.New("piece must be x or o")

// Symbol the opponent plays with, the computer gets the other one
type Piece byte

const (
	PieceX Piece = 'X'
	PieceO Piece = 'O'
)

func ParsePiece(s string) (Piece, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PieceX, nil
	case "O":
		return PieceO, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrInvalidPiece, s)
}

func (p Piece) Other() Piece {
	if p == PieceX {
		return PieceO
	}
	return PieceX
}

func (p Piece) String() string {
	return string(rune(p))
}

type Renderer struct {
	profile  termenv.Profile
	opponent Piece
}

func NewRenderer(profile termenv.Profile, opponent Piece) *Renderer {
	if opponent != PieceX && opponent != PieceO {
		opponent = PieceX
	}
	return &Renderer{profile: profile, opponent: opponent}
}

func (r *Renderer) OpponentPiece() Piece {
	return r.opponent
}

// Symbol of a cell, a space for an empty one
func (r *Renderer) Symbol(c ttt.Cell) string {
	switch c {
	case ttt.Opponent:
		return r.opponent.String()
	case ttt.Computer:
		return r.opponent.Other().String()
	}
	return " "
}

func (r *Renderer) cell(c ttt.Cell, highlight bool) string {
	s := r.profile.String(r.Symbol(c))
	switch c {
	case ttt.Opponent:
		s = s.Foreground(r.profile.Color("#5fafff")).Bold()
	case ttt.Computer:
		s = s.Foreground(r.profile.Color("#ff5f5f")).Bold()
	}
	if highlight {
		s = s.Reverse()
	}
	return s.String()
}

func EvaluationMessage(v minimax.Value) string {
	switch v {
	case minimax.OpponentWinning:
		return "EVALUATION: You are winning!"
	case minimax.ComputerWinning:
		return "EVALUATION: The computer is winning!"
	}
	return "EVALUATION: The game is equal!"
}

// Draw the board with column letters, row numbers and the evaluation next to
// the middle row. cursor is highlighted, pass ttt.CoordIllegal for none.
func (r *Renderer) Board(board ttt.Board, eval minimax.Value, cursor ttt.Coord) string {
	var sb strings.Builder
	sb.WriteString("\n    A   B   C\n\n")

	for row := range 3 {
		fmt.Fprintf(&sb, "%d   ", row+1)
		for col := range 3 {
			c := ttt.NewCoord(row, col)
			sb.WriteString(r.cell(board.At(c), c == cursor))
			if col < 2 {
				sb.WriteString(" | ")
			}
		}

		if row == 1 {
			sb.WriteString("\t")
			sb.WriteString(EvaluationMessage(eval))
		}
		sb.WriteString("\n")

		if row < 2 {
			sb.WriteString("   ---|---|---\n")
		}
	}
	return sb.String()
}

func (r *Renderer) Outcome(o game.Outcome) string {
	var msg string
	switch o {
	case game.ComputerWon:
		msg = "The computer won!"
	case game.OpponentWon:
		msg = "You won!"
	case game.Draw:
		msg = "The game is a draw!"
	default:
		return ""
	}
	return r.profile.String(msg).Bold().String()
}
