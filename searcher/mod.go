package searcher

import (
	"errors"

	"ur/game"
	"ur/metrics"
)

var ErrInvalidConfig = errors.New("invalid search configuration")

const (
	DefaultSimulations  = 1000
	DefaultCutoff       = 1000 // plies before a playout is cut off and evaluated
	DefaultPlayoutGreed = 0.7
	DefaultArenaLimit   = 1 << 20
)

// Edge holds the statistics of one root move.
type Edge struct {
	Move   game.Move
	Visits int64
	Value  float64 // mean reward for the player to move
}

type Result struct {
	Move     game.Move
	Edges    []Edge
	Fallback bool // no playout completed, Move is the heuristic choice
	Forced   bool // single legal move, no search ran
	Metric   metrics.SearchMetric
}
