package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-alphabeta/pkg/game"
	"github.com/IlikeChooros/go-alphabeta/pkg/minimax"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

/*
Arena benchmark subpackage, plays a series of games between the engine and
a scripted opponent, who starts is decided at random for every game.
*/

type Arena struct {
	ArenaStats
	Opponent Player
	NGames   int
	NWorkers int
	// Base seed, worker i uses Seed + i, 0 means minimax.SeedGeneratorFn
	Seed     int64
	Listener Listener
	log      *zap.SugaredLogger
}

func NewArena(opponent Player) *Arena {
	return &Arena{
		Opponent: opponent,
		NGames:   100,
		NWorkers: 2,
		Listener: DefaultListener{},
		log:      zap.NewNop().Sugar(),
	}
}

func (a *Arena) Setup(nGames, nWorkers int) *Arena {
	a.NGames = nGames
	a.NWorkers = nWorkers
	return a
}

func (a *Arena) WithListener(l Listener) *Arena {
	if l != nil {
		a.Listener = l
	}
	return a
}

// Logger handed to every game session
func (a *Arena) WithLogger(log *zap.SugaredLogger) *Arena {
	if log != nil {
		a.log = log
	}
	return a
}

// Play all games, blocks until every worker is done. Cancelling the context
// stops the workers between moves, the summary then covers finished games only.
func (a *Arena) Run(ctx context.Context) (SummaryInfo, error) {
	if a.NGames <= 0 || a.NWorkers <= 0 {
		return SummaryInfo{}, ErrNoGames
	}

	seed := a.Seed
	if seed == 0 {
		seed = minimax.SeedGeneratorFn()
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	// Equally distributed work between the workers
	nGames := a.NGames / a.NWorkers
	rest := a.NGames % a.NWorkers
	for i := range a.NWorkers {
		n := nGames
		if i < rest {
			n++
		}
		if n == 0 {
			continue
		}

		id := i
		workerSeed := seed + int64(id)
		opponent := a.Opponent.Clone(workerSeed)
		g.Go(func() error {
			return a.worker(ctx, id, n, workerSeed, opponent)
		})
	}

	err := g.Wait()
	summary := SummaryInfo{
		TotalGames:         a.Total(),
		ComputerWins:       a.ComputerWins(),
		OpponentWins:       a.OpponentWins(),
		Draws:              a.Draws(),
		ComputerFirstGames: a.ComputerFirstGames(),
		Workers:            a.NWorkers,
		OpponentName:       a.Opponent.Name(),
		Elapsed:            time.Since(start),
	}
	a.Listener.Summary(summary)
	return summary, err
}

func (a *Arena) worker(ctx context.Context, id, nGames int, seed int64, opponent Player) error {
	r := rand.New(rand.NewSource(seed))
	local := ArenaStats{}
	info := WorkerInfo{
		WorkerID:     id,
		NGames:       nGames,
		OpponentName: opponent.Name(),
	}

	for range nGames {
		computerFirst := r.Intn(2) == 0
		session := game.NewSession(game.Settings{
			ComputerFirst: computerFirst,
			Seed:          r.Int63() | 1,
		}, a.log)

		info.GameID = session.ID()
		info.ComputerFirst = computerFirst
		info.Outcome = game.InProgress
		if err := a.playGame(ctx, session, opponent, &info); err != nil {
			return fmt.Errorf("worker %d, game %s: %w", id, session.ID(), err)
		}

		a.add(session.Outcome(), computerFirst)
		local.add(session.Outcome(), computerFirst)

		info.Outcome = session.Outcome()
		info.FinishedGames = local.Total()
		info.ComputerWins = local.ComputerWins()
		info.OpponentWins = local.OpponentWins()
		info.Draws = local.Draws()
		a.Listener.OnFinishedGame(info)
	}

	a.Listener.OnFinishedWork(info)
	return nil
}

func (a *Arena) playGame(ctx context.Context, s *game.Session, opponent Player, info *WorkerInfo) error {
	var (
		c   ttt.Coord
		err error
	)

	for !s.Over() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.Turn() == ttt.ComputerTurn {
			c, err = s.PlayComputer()
		} else if c, err = opponent.Choose(s); err == nil {
			err = s.PlayOpponent(c)
		}
		if err != nil {
			return err
		}

		info.Moves = s.Moves()
		a.Listener.OnMoveMade(*info)
	}
	return nil
}
