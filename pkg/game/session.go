package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-alphabeta/pkg/minimax"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

type Settings struct {
	// Computer makes the first move
	ComputerFirst bool
	// Seed for the move order and the choice between equally good moves,
	// 0 uses minimax.SeedGeneratorFn
	Seed int64
}

// Session drives a single game between the computer and an opponent.
// After every move the current position is re-derived from scratch as a
// new root, nothing from the previous search is reused. Not safe for
// concurrent use.
type Session struct {
	id       uuid.UUID
	settings Settings
	rand     *rand.Rand
	order    minimax.Order
	root     *minimax.Position
	moves    []ttt.Coord
	stats    minimax.Stats
	log      *zap.SugaredLogger
}

// Create a session and start the first game
func NewSession(settings Settings, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	seed := settings.Seed
	if seed == 0 {
		seed = minimax.SeedGeneratorFn()
	}

	s := &Session{
		settings: settings,
		rand:     rand.New(rand.NewSource(seed)),
		log:      log,
	}
	s.NewGame()
	return s
}

// Start a new game, with a freshly shuffled move order
func (s *Session) NewGame() {
	s.id = uuid.New()
	s.order = minimax.NewOrder(s.rand)
	s.moves = s.moves[:0]

	turn := ttt.OpponentTurn
	if s.settings.ComputerFirst {
		turn = ttt.ComputerTurn
	}
	s.derive(ttt.Board{}, turn, 0)

	s.log.Infow("new game",
		"game", s.id,
		"computerFirst", s.settings.ComputerFirst,
		"order", s.order.String(),
		"eval", s.root.Evaluation(),
	)
}

// Evaluate the new actual game state
func (s *Session) derive(board ttt.Board, turn ttt.Turn, depth int) {
	search := minimax.NewSearch(s.order)
	s.root = search.Root(board, turn, depth)
	s.stats = search.Stats()

	s.log.Debugw("position evaluated",
		"game", s.id,
		"board", board.String(),
		"turn", turn,
		"depth", depth,
		"eval", s.root.Evaluation(),
		"nodes", s.stats.Nodes,
		"cutoffs", s.stats.Cutoffs,
	)
}

// Play the opponent's move on given square
func (s *Session) PlayOpponent(c ttt.Coord) error {
	if s.Over() {
		return ErrGameOver
	}
	if s.root.Turn() != ttt.OpponentTurn {
		return ErrNotOpponentTurn
	}
	if !c.Valid() {
		return fmt.Errorf("%w: square %d", ttt.ErrInvalidCoord, c)
	}
	if !s.root.Board().IsEmpty(c) {
		return fmt.Errorf("%w: %v", ttt.ErrOccupied, c)
	}

	s.apply(c, s.root.Board().Set(c, ttt.Opponent))
	return nil
}

// Let the computer choose and play its move, picking at random among the
// children with the same evaluation as the current position
func (s *Session) PlayComputer() (ttt.Coord, error) {
	if s.Over() {
		return ttt.CoordIllegal, ErrGameOver
	}
	if s.root.Turn() != ttt.ComputerTurn {
		return ttt.CoordIllegal, ErrNotComputerTurn
	}

	best, err := s.root.TakeBestChildren()
	if err != nil {
		s.log.Errorw("no best move", "game", s.id, "error", err)
		return ttt.CoordIllegal, err
	}

	choice := best[s.rand.Intn(len(best))]
	s.apply(choice.Move(), choice.Board())
	return choice.Move(), nil
}

// Best move for the side to move, leaves the current position untouched
func (s *Session) Hint() (ttt.Coord, error) {
	if s.Over() {
		return ttt.CoordIllegal, ErrGameOver
	}

	moves, err := s.root.BestMoves()
	if err != nil {
		return ttt.CoordIllegal, err
	}
	return moves[s.rand.Intn(len(moves))], nil
}

func (s *Session) apply(c ttt.Coord, board ttt.Board) {
	mover := s.root.Turn()
	s.moves = append(s.moves, c)
	s.derive(board, !mover, s.root.Depth()+1)

	s.log.Infow("move",
		"game", s.id,
		"side", mover,
		"square", c.String(),
		"eval", s.root.Evaluation(),
	)

	if s.Over() {
		s.log.Infow("game over", "game", s.id, "outcome", s.Outcome(), "moves", len(s.moves))
	}
}

// Independent copy of the session in the same state, with its own random
// number generator derived from this one
func (s *Session) Clone() *Session {
	clone := &Session{
		id:       s.id,
		settings: s.settings,
		rand:     rand.New(rand.NewSource(s.rand.Int63())),
		order:    s.order,
		moves:    append([]ttt.Coord(nil), s.moves...),
		log:      s.log,
	}
	clone.derive(s.root.Board(), s.root.Turn(), s.root.Depth())
	return clone
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Settings() Settings {
	return s.settings
}

// Current root position, TakeChildren must not be called on it
func (s *Session) Position() *minimax.Position {
	return s.root
}

func (s *Session) Board() ttt.Board {
	return s.root.Board()
}

func (s *Session) Turn() ttt.Turn {
	return s.root.Turn()
}

func (s *Session) Depth() int {
	return s.root.Depth()
}

func (s *Session) Evaluation() minimax.Value {
	return s.root.Evaluation()
}

func (s *Session) Order() minimax.Order {
	return s.order
}

// Moves played so far in this game
func (s *Session) Moves() []ttt.Coord {
	return s.moves
}

// Search statistics of the current position's evaluation
func (s *Session) LastStats() minimax.Stats {
	return s.stats
}

func (s *Session) Outcome() Outcome {
	switch {
	case s.root.ComputerWon():
		return ComputerWon
	case s.root.OpponentWon():
		return OpponentWon
	case s.root.IsDrawn():
		return Draw
	default:
		return InProgress
	}
}

func (s *Session) Over() bool {
	return s.Outcome() != InProgress
}
