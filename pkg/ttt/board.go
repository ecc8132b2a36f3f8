package ttt

import "math/bits"

const _fullBitboard uint16 = 0b111111111

// Board is a 3x3 grid in row-major order. It's a value type, so copying
// it (or calling Set) never changes the original.
type Board [Cells]Cell

// Get the cell at given coordinate
func (b Board) At(c Coord) Cell {
	return b[c]
}

func (b Board) IsEmpty(c Coord) bool {
	return b[c] == Empty
}

// Returns a copy of the board with the cell placed on given square
func (b Board) Set(c Coord, cell Cell) Board {
	b[c] = cell
	return b
}

// Bitboard of all squares holding given cell value, bit i is the square i
func (b Board) Bitboard(cell Cell) uint16 {
	bb := uint16(0)
	for i := range Cells {
		if b[i] == cell {
			bb |= 1 << i
		}
	}
	return bb
}

// Number of squares with given cell value
func (b Board) Count(cell Cell) int {
	return bits.OnesCount16(b.Bitboard(cell))
}

// True if no empty square remains
func (b Board) IsFull() bool {
	return b.Bitboard(Empty) == 0
}

// List the empty squares, in index order
func (b Board) EmptyCells() *MoveList {
	ml := &MoveList{}
	free := uint(b.Bitboard(Empty) & _fullBitboard)
	for free != 0 {
		ml.Append(Coord(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return ml
}
