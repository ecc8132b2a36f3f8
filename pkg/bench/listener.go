package bench

import "go.uber.org/zap"

// Receives the arena's progress, methods are called from the worker
// goroutines concurrently
type Listener interface {
	OnMoveMade(info WorkerInfo)
	OnFinishedGame(info WorkerInfo)
	OnFinishedWork(info WorkerInfo)
	Summary(info SummaryInfo)
}

type DefaultListener struct{}

func (DefaultListener) OnMoveMade(WorkerInfo)     {}
func (DefaultListener) OnFinishedGame(WorkerInfo) {}
func (DefaultListener) OnFinishedWork(WorkerInfo) {}
func (DefaultListener) Summary(SummaryInfo)       {}

// Logs finished games and the summary, moves only at debug level
type LogListener struct {
	log *zap.SugaredLogger
}

func NewLogListener(log *zap.SugaredLogger) *LogListener {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LogListener{log: log}
}

func (l *LogListener) OnMoveMade(info WorkerInfo) {
	if len(info.Moves) == 0 {
		return
	}
	l.log.Debugw("move",
		"worker", info.WorkerID,
		"game", info.GameID,
		"ply", len(info.Moves),
		"square", info.Moves[len(info.Moves)-1].String(),
	)
}

func (l *LogListener) OnFinishedGame(info WorkerInfo) {
	l.log.Infow("game finished",
		"worker", info.WorkerID,
		"game", info.GameID,
		"computerFirst", info.ComputerFirst,
		"outcome", info.Outcome.String(),
		"moves", len(info.Moves),
		"progress", info.FinishedGames,
		"of", info.NGames,
	)
}

func (l *LogListener) OnFinishedWork(info WorkerInfo) {
	l.log.Infow("worker done",
		"worker", info.WorkerID,
		"games", info.FinishedGames,
		"computerWins", info.ComputerWins,
		"opponentWins", info.OpponentWins,
		"draws", info.Draws,
	)
}

func (l *LogListener) Summary(info SummaryInfo) {
	l.log.Infow("arena finished",
		"games", info.TotalGames,
		"opponent", info.OpponentName,
		"computerWins", info.ComputerWins,
		"opponentWins", info.OpponentWins,
		"draws", info.Draws,
		"elapsed", info.Elapsed,
	)
}
