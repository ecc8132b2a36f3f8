package ttt

import (
	"fmt"
	"strings"
)

// Board notation is 9 characters in row-major order:
//
//	C - computer's piece
//	U - opponent's (user's) piece
//	_ - empty square (' ' and '.' are accepted too)
//
// For example "CUCCUU_CU" is the board:
//
//	C | U | C
//	C | U | U
//	  | C | U
func ParseBoard(notation string) (Board, error) {
	var board Board
	if len(notation) != Cells {
		return board, fmt.Errorf("%w: expected %d squares, got %d", ErrInvalidNotation, Cells, len(notation))
	}

	for i := range Cells {
		switch notation[i] {
		case 'C', 'c':
			board[i] = Computer
		case 'U', 'u':
			board[i] = Opponent
		case '_', ' ', '.':
			board[i] = Empty
		default:
			return board, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidNotation, notation[i], i)
		}
	}

	return board, nil
}

// Panics on invalid notation, meant for fixtures
func MustParseBoard(notation string) Board {
	board, err := ParseBoard(notation)
	if err != nil {
		panic(err)
	}
	return board
}

func (b Board) String() string {
	builder := strings.Builder{}
	builder.Grow(Cells)
	for _, cell := range b {
		builder.WriteString(cell.String())
	}
	return builder.String()
}
