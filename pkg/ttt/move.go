package ttt

import (
	"fmt"
	"strings"
)

// Coord is a square index in row-major order, "a1" is 0 and "c3" is 8.
type Coord uint8

const (
	CoordIllegal Coord = 255
)

// Make a coordinate from the row and column, both in range [0, 3)
func NewCoord(row, col int) Coord {
	return Coord(row*3 + col)
}

func (c Coord) Row() int {
	return int(c) / 3
}

func (c Coord) Col() int {
	return int(c) % 3
}

func (c Coord) Valid() bool {
	return c < Cells
}

// Column letter followed by the row digit, for example "b3"
func (c Coord) String() string {
	if !c.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col(), c.Row()+1)
}

// Parse a coordinate like "a1" or "C2", letter picks the column and digit the row
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return CoordIllegal, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}

	letter := s[0] | 0x20 // lower case
	digit := s[1]
	if letter < 'a' || letter > 'c' || digit < '1' || digit > '3' {
		return CoordIllegal, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}

	return NewCoord(int(digit-'1'), int(letter-'a')), nil
}

// Fixed size list of coordinates, no allocations
type MoveList struct {
	Moves [Cells]Coord
	Size  uint8
}

func (ml *MoveList) Append(c Coord) {
	ml.Moves[ml.Size] = c
	ml.Size++
}

// Get the actual slice of moves
func (ml *MoveList) Slice() []Coord {
	return ml.Moves[:ml.Size]
}

func (ml *MoveList) String() string {
	if ml.Size == 0 {
		return "empty"
	}

	str := make([]string, ml.Size)
	for i, c := range ml.Slice() {
		str[i] = c.String()
	}
	return strings.Join(str, " ")
}
