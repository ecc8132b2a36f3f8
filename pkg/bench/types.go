package bench

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/IlikeChooros/go-alphabeta/pkg/game"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

type ArenaStats struct {
	computerWins       uint32
	opponentWins       uint32
	draws              uint32
	computerFirstGames uint32
}

func (as *ArenaStats) Total() int {
	return as.ComputerWins() + as.OpponentWins() + as.Draws()
}

func (as *ArenaStats) ComputerWins() int {
	return int(atomic.LoadUint32(&as.computerWins))
}

func (as *ArenaStats) OpponentWins() int {
	return int(atomic.LoadUint32(&as.opponentWins))
}

func (as *ArenaStats) Draws() int {
	return int(atomic.LoadUint32(&as.draws))
}

// Number of games in which the computer made the first move
func (as *ArenaStats) ComputerFirstGames() int {
	return int(atomic.LoadUint32(&as.computerFirstGames))
}

func (as *ArenaStats) add(outcome game.Outcome, computerFirst bool) {
	switch outcome {
	case game.ComputerWon:
		atomic.AddUint32(&as.computerWins, 1)
	case game.OpponentWon:
		atomic.AddUint32(&as.opponentWins, 1)
	default:
		atomic.AddUint32(&as.draws, 1)
	}
	if computerFirst {
		atomic.AddUint32(&as.computerFirstGames, 1)
	}
}

type WorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameID        uuid.UUID
	ComputerFirst bool
	Moves         []ttt.Coord
	Outcome       game.Outcome
	ComputerWins  int
	OpponentWins  int
	Draws         int
	OpponentName  string
}

type SummaryInfo struct {
	TotalGames         int           `json:"total_games"`
	ComputerWins       int           `json:"computer_wins"`
	OpponentWins       int           `json:"opponent_wins"`
	Draws              int           `json:"draws"`
	ComputerFirstGames int           `json:"computer_first_games"`
	Workers            int           `json:"workers"`
	OpponentName       string        `json:"opponent_name"`
	Elapsed            time.Duration `json:"elapsed_ns"`
}
