package bench

import "errors"

var (
	ErrUnknownPlayer = errors.New("unknown player")
	ErrNoGames       = errors.New("number of games and workers must be positive")
)
