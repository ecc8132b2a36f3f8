package bench

import (
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-alphabeta/pkg/game"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

// Scripted opponent of the engine
type Player interface {
	Name() string
	// Square to play, the session has the opponent to move
	Choose(s *game.Session) (ttt.Coord, error)
	// Independent copy for a worker goroutine
	Clone(seed int64) Player
}

// Plays a uniformly random free square
type RandomPlayer struct {
	rand *rand.Rand
}

func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{rand: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Name() string { return "random" }

func (p *RandomPlayer) Choose(s *game.Session) (ttt.Coord, error) {
	free := s.Board().EmptyCells()
	if free.Size == 0 {
		return ttt.CoordIllegal, game.ErrGameOver
	}
	return free.Moves[p.rand.Intn(int(free.Size))], nil
}

func (p *RandomPlayer) Clone(seed int64) Player {
	return NewRandomPlayer(seed)
}

// Plays the engine's own best move for the opponent's side
type PerfectPlayer struct{}

func (PerfectPlayer) Name() string { return "perfect" }

func (PerfectPlayer) Choose(s *game.Session) (ttt.Coord, error) {
	return s.Hint()
}

func (p PerfectPlayer) Clone(int64) Player {
	return p
}

// Player by name, as used in the configuration
func NewPlayer(name string, seed int64) (Player, error) {
	switch name {
	case "random":
		return NewRandomPlayer(seed), nil
	case "perfect":
		return PerfectPlayer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
}
