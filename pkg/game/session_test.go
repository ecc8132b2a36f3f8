package game

import (
	"errors"
	"os"
	"testing"

	"github.com/IlikeChooros/go-alphabeta/pkg/minimax"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

func TestMain(m *testing.M) {
	minimax.SetSeedGeneratorFn(func() int64 { return 42 })
	os.Exit(m.Run())
}

func TestNewGame(t *testing.T) {
	for _, computerFirst := range []bool{true, false} {
		s := NewSession(Settings{ComputerFirst: computerFirst}, nil)

		if s.Depth() != 0 || s.Board() != (ttt.Board{}) {
			t.Fatalf("expected an empty board at depth 0, got %v at %d", s.Board(), s.Depth())
		}
		if s.Evaluation() != minimax.Drawn {
			t.Errorf("empty board should be drawn, got %v", s.Evaluation())
		}
		wantTurn := ttt.Turn(computerFirst)
		if s.Turn() != wantTurn {
			t.Errorf("expected %v to move, got %v", wantTurn, s.Turn())
		}
		if !s.Order().Valid() {
			t.Errorf("invalid order %v", s.Order())
		}
		if s.Outcome() != InProgress {
			t.Errorf("expected game in progress, got %v", s.Outcome())
		}
	}
}

func TestNewGameResets(t *testing.T) {
	s := NewSession(Settings{}, nil)
	id := s.ID()
	if err := s.PlayOpponent(ttt.NewCoord(1, 1)); err != nil {
		t.Fatal(err)
	}

	s.NewGame()
	if s.ID() == id {
		t.Error("new game should get a new id")
	}
	if len(s.Moves()) != 0 || s.Depth() != 0 || s.Board() != (ttt.Board{}) {
		t.Errorf("new game not reset: moves %v, depth %d, board %v", s.Moves(), s.Depth(), s.Board())
	}
}

func TestSameSeedSameGame(t *testing.T) {
	a := NewSession(Settings{ComputerFirst: true, Seed: 7}, nil)
	b := NewSession(Settings{ComputerFirst: true, Seed: 7}, nil)

	if a.Order() != b.Order() {
		t.Fatalf("orders differ: %v vs %v", a.Order(), b.Order())
	}
	for !a.Over() {
		var ma, mb ttt.Coord
		var err error
		if a.Turn() == ttt.ComputerTurn {
			if ma, err = a.PlayComputer(); err != nil {
				t.Fatal(err)
			}
			if mb, err = b.PlayComputer(); err != nil {
				t.Fatal(err)
			}
		} else {
			if ma, err = a.Hint(); err != nil {
				t.Fatal(err)
			}
			if mb, err = b.Hint(); err != nil {
				t.Fatal(err)
			}
			if ma != mb {
				t.Fatalf("hints differ: %v vs %v", ma, mb)
			}
			if err = a.PlayOpponent(ma); err != nil {
				t.Fatal(err)
			}
			if err = b.PlayOpponent(mb); err != nil {
				t.Fatal(err)
			}
		}
		if ma != mb {
			t.Fatalf("sessions diverged: %v vs %v", ma, mb)
		}
	}
}

func TestPlayOpponentErrors(t *testing.T) {
	s := NewSession(Settings{ComputerFirst: true}, nil)
	if err := s.PlayOpponent(ttt.NewCoord(0, 0)); !errors.Is(err, ErrNotOpponentTurn) {
		t.Errorf("expected ErrNotOpponentTurn, got %v", err)
	}
	if _, err := s.Hint(); err != nil {
		t.Errorf("hint failed: %v", err)
	}

	c, err := s.PlayComputer()
	if err != nil {
		t.Fatal(err)
	}
	if s.Board().At(c) != ttt.Computer {
		t.Fatalf("computer move %v not on the board %v", c, s.Board())
	}
	if _, err := s.PlayComputer(); !errors.Is(err, ErrNotComputerTurn) {
		t.Errorf("expected ErrNotComputerTurn, got %v", err)
	}
	if err := s.PlayOpponent(c); !errors.Is(err, ttt.ErrOccupied) {
		t.Errorf("expected ErrOccupied, got %v", err)
	}
	if err := s.PlayOpponent(ttt.Coord(9)); !errors.Is(err, ttt.ErrInvalidCoord) {
		t.Errorf("expected ErrInvalidCoord, got %v", err)
	}
	if err := s.PlayOpponent(ttt.CoordIllegal); !errors.Is(err, ttt.ErrInvalidCoord) {
		t.Errorf("expected ErrInvalidCoord, got %v", err)
	}
	if len(s.Moves()) != 1 || s.Depth() != 1 {
		t.Errorf("rejected moves should not be recorded, moves %v, depth %d", s.Moves(), s.Depth())
	}
}

func TestGameOver(t *testing.T) {
	s := NewSession(Settings{}, nil)
	for !s.Over() {
		var err error
		if s.Turn() == ttt.ComputerTurn {
			_, err = s.PlayComputer()
		} else {
			// always the first free square, easy to beat
			err = s.PlayOpponent(s.Board().EmptyCells().Moves[0])
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if s.Outcome() != ComputerWon {
		t.Errorf("expected the computer to beat a naive opponent, got %v on %v", s.Outcome(), s.Board())
	}
	if err := s.PlayOpponent(s.Board().EmptyCells().Moves[0]); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
	if _, err := s.PlayComputer(); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
	if _, err := s.Hint(); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestClone(t *testing.T) {
	s := NewSession(Settings{}, nil)
	if err := s.PlayOpponent(ttt.NewCoord(0, 0)); err != nil {
		t.Fatal(err)
	}

	clone := s.Clone()
	if clone.Board() != s.Board() || clone.Turn() != s.Turn() || clone.Depth() != s.Depth() {
		t.Fatalf("clone differs: %v vs %v", clone.Position(), s.Position())
	}
	if clone.Evaluation() != s.Evaluation() {
		t.Errorf("clone evaluation %v, expected %v", clone.Evaluation(), s.Evaluation())
	}

	if _, err := clone.PlayComputer(); err != nil {
		t.Fatal(err)
	}
	if s.Depth() != 1 || len(s.Moves()) != 1 {
		t.Errorf("playing on the clone changed the original: depth %d, moves %v", s.Depth(), s.Moves())
	}
}

// Walk every possible opponent reply, the computer answering with its best move
func neverLoses(t *testing.T, s *Session, games *int) {
	for !s.Over() && s.Turn() == ttt.ComputerTurn {
		if _, err := s.PlayComputer(); err != nil {
			t.Fatalf("computer failed to move on %v: %v", s.Board(), err)
		}
	}

	if s.Over() {
		*games++
		if s.Outcome() == OpponentWon {
			t.Fatalf("computer lost, moves %v, board %v", s.Moves(), s.Board())
		}
		return
	}

	for _, c := range s.Board().EmptyCells().Slice() {
		branch := s.Clone()
		if err := branch.PlayOpponent(c); err != nil {
			t.Fatal(err)
		}
		neverLoses(t, branch, games)
	}
}

func TestComputerNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive game lines")
	}

	for _, computerFirst := range []bool{true, false} {
		games := 0
		neverLoses(t, NewSession(Settings{ComputerFirst: computerFirst}, nil), &games)
		if games == 0 {
			t.Fatalf("no games played, computer first: %v", computerFirst)
		}
		t.Logf("computer first: %v, games: %d", computerFirst, games)
	}
}
