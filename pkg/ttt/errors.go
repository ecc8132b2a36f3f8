package ttt

import "errors"

var (
	ErrInvalidCoord    = errors.New("invalid coordinate")
	ErrInvalidNotation = errors.New("invalid board notation")
	ErrOccupied        = errors.New("square is already taken")
)
