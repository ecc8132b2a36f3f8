package main

import (
	"context"
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-alphabeta/internal/bootstrap"
	"github.com/IlikeChooros/go-alphabeta/pkg/bench"
)

func runBench(ctx context.Context, cfg *bootstrap.Config, log *zap.SugaredLogger, out io.Writer) error {
	opponent, err := bench.NewPlayer(cfg.BenchOpponent, cfg.Seed)
	if err != nil {
		return err
	}

	arena := bench.NewArena(opponent).
		Setup(cfg.BenchGames, cfg.BenchWorkers).
		WithListener(bench.NewLogListener(log.Named("arena")))
	arena.Seed = cfg.Seed

	log.Infow("arena started",
		"games", cfg.BenchGames,
		"workers", cfg.BenchWorkers,
		"opponent", opponent.Name(),
	)
	summary, err := arena.Run(ctx)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(summary); encErr != nil && err == nil {
		err = encErr
	}
	return err
}
