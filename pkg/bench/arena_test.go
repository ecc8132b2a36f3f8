package bench

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/IlikeChooros/go-alphabeta/pkg/minimax"
)

func TestMain(m *testing.M) {
	minimax.SetSeedGeneratorFn(func() int64 { return 42 })
	os.Exit(m.Run())
}

type countingListener struct {
	mu        sync.Mutex
	moves     int
	games     int
	workers   int
	summaries int
	summary   SummaryInfo
}

func (l *countingListener) OnMoveMade(WorkerInfo) {
	l.mu.Lock()
	l.moves++
	l.mu.Unlock()
}

func (l *countingListener) OnFinishedGame(WorkerInfo) {
	l.mu.Lock()
	l.games++
	l.mu.Unlock()
}

func (l *countingListener) OnFinishedWork(WorkerInfo) {
	l.mu.Lock()
	l.workers++
	l.mu.Unlock()
}

func (l *countingListener) Summary(info SummaryInfo) {
	l.mu.Lock()
	l.summary = info
	l.summaries++
	l.mu.Unlock()
}

func TestArenaAgainstRandom(t *testing.T) {
	nGames := 120
	if testing.Short() {
		nGames = 20
	}

	listener := &countingListener{}
	arena := NewArena(NewRandomPlayer(1)).Setup(nGames, 4).WithListener(listener)
	summary, err := arena.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if summary.TotalGames != nGames {
		t.Errorf("expected %d games, got %d", nGames, summary.TotalGames)
	}
	if summary.OpponentWins != 0 {
		t.Errorf("the computer lost %d games against a random player", summary.OpponentWins)
	}
	if summary.ComputerWins == 0 {
		t.Error("the computer never beat a random player")
	}
	if summary.ComputerFirstGames == 0 || summary.ComputerFirstGames == nGames {
		t.Errorf("expected both sides to start some games, computer started %d", summary.ComputerFirstGames)
	}
	if summary.OpponentName != "random" || summary.Workers != 4 {
		t.Errorf("unexpected summary %+v", summary)
	}

	if listener.games != nGames || listener.workers != 4 || listener.summaries != 1 {
		t.Errorf("listener saw %d games, %d workers, %d summaries", listener.games, listener.workers, listener.summaries)
	}
	if listener.moves < 5*nGames || listener.moves > 9*nGames {
		t.Errorf("unexpected number of moves %d for %d games", listener.moves, nGames)
	}
	if listener.summary != summary {
		t.Errorf("listener summary %+v, returned %+v", listener.summary, summary)
	}
}

func TestArenaAgainstPerfect(t *testing.T) {
	summary, err := NewArena(PerfectPlayer{}).Setup(10, 3).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalGames != 10 || summary.Draws != 10 {
		t.Errorf("perfect play should always draw, got %+v", summary)
	}
}

func TestArenaMoreWorkersThanGames(t *testing.T) {
	summary, err := NewArena(NewRandomPlayer(3)).Setup(2, 5).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalGames != 2 {
		t.Errorf("expected 2 games, got %d", summary.TotalGames)
	}
}

func TestArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewArena(NewRandomPlayer(1)).Setup(10, 2).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if summary.TotalGames != 0 {
		t.Errorf("no game should finish, got %d", summary.TotalGames)
	}
}

func TestArenaInvalidSetup(t *testing.T) {
	if _, err := NewArena(PerfectPlayer{}).Setup(0, 1).Run(context.Background()); !errors.Is(err, ErrNoGames) {
		t.Errorf("expected ErrNoGames, got %v", err)
	}
}

func TestNewPlayer(t *testing.T) {
	for _, name := range []string{"random", "perfect"} {
		p, err := NewPlayer(name, 1)
		if err != nil {
			t.Fatal(err)
		}
		if p.Name() != name {
			t.Errorf("expected %s, got %s", name, p.Name())
		}
	}
	if _, err := NewPlayer("minimax", 1); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("expected ErrUnknownPlayer, got %v", err)
	}
}
