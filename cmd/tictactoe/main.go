package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-alphabeta/internal/bootstrap"
	"github.com/IlikeChooros/go-alphabeta/pkg/game"
	"github.com/IlikeChooros/go-alphabeta/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "Configuration file (.env, .yaml or .json), TTT_* environment variables override it")
	benchMode := flag.Bool("bench", false, "Play the engine against a scripted opponent and print a JSON summary")
	flag.Parse()

	cfg, err := bootstrap.Setup(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg, *benchMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *benchMode {
		err = runBench(ctx, cfg, log, os.Stdout)
	} else {
		err = play(cfg, log)
	}

	if err != nil {
		log.Errorw("exiting", "error", err)
		fmt.Fprintln(os.Stderr, err)
		if !errors.Is(err, context.Canceled) {
			logger.Sync()
			os.Exit(1)
		}
	}
}

// Logs go to the configured file, the terminal belongs to the game.
// In bench mode without a file, logs go to stderr.
func newLogger(cfg *bootstrap.Config, benchMode bool) (*zap.Logger, error) {
	if cfg.LogFile == "" && !benchMode {
		return zap.NewNop(), nil
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	} else {
		zc.OutputPaths = []string{"stderr"}
	}
	return zc.Build()
}

func play(cfg *bootstrap.Config, log *zap.SugaredLogger) error {
	piece, err := cfg.Piece()
	if err != nil {
		return err
	}

	session := game.NewSession(game.Settings{
		ComputerFirst: cfg.ComputerFirst,
		Seed:          cfg.Seed,
	}, log.Named("game"))
	renderer := render.NewRenderer(termenv.EnvColorProfile(), piece)

	final, err := tea.NewProgram(newModel(session, renderer, cfg.ThinkDelay, log)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}
