package minimax

import "errors"

// Returned when no child matches the parent's evaluation. Minimax guarantees at
// least one match, so seeing this means the evaluator itself is broken.
var ErrNoBestMove = errors.New("no child matches the position's evaluation")
