package engine

import (
	"errors"
	"fmt"

	"ur/game"
	"ur/metrics"
)

// MaxTurns bounds a game; Ur games end long before it.
const MaxTurns = 10000

var ErrTurnLimit = errors.New("turn limit reached without a winner")

// Turn is one throw of the dice and the move it produced.
type Turn struct {
	Player  game.Player
	Roll    int
	Move    game.Move
	Effects game.Effects
}

func (t Turn) String() string {
	return fmt.Sprintf("%s rolled %d: %s", t.Player, t.Roll, t.Move)
}

// Record is the full history of a game.
type Record struct {
	Turns    []Turn
	Final    game.State
	Winner   game.Player
	Finished bool
	Captures [2]int

	Metric   metrics.GameMetric
	Searches []metrics.MoveMetric // one per searched move, forced moves are skipped
}

// Moves renders the turns, for comparing games.
func (r Record) Moves() []string {
	moves := make([]string, len(r.Turns))
	for i, turn := range r.Turns {
		moves[i] = turn.String()
	}
	return moves
}
