package ttt

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// True if any row, column or diagonal is filled with given cell value
func (b Board) ThreeInARow(cell Cell) bool {
	bb := b.Bitboard(cell)
	for _, pattern := range _winningBitboardPatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}
