package game

import "errors"

var (
	ErrGameOver        = errors.New("game is over")
	ErrNotOpponentTurn = errors.New("it's not the opponent's turn")
	ErrNotComputerTurn = errors.New("it's not the computer's turn")
)
