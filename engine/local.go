package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ur/agent"
	"ur/game"
	"ur/metrics"
)

type Option func(e *Engine)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithStart plays from state instead of the opening position.
func WithStart(state game.State) Option {
	return func(e *Engine) {
		e.start = state
	}
}

// Engine runs one game between two agents on a single goroutine. The engine
// owns the dice; agents only see the roll.
type Engine struct {
	agents   [2]agent.Agent
	src      game.Source
	maxTurns int
	start    game.State
}

func New(one, two agent.Agent, src game.Source, options ...Option) *Engine {
	e := &Engine{
		agents:   [2]agent.Agent{one, two},
		src:      src,
		maxTurns: MaxTurns,
		start:    game.NewState(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until a player wins. An agent error or an illegal move ends the
// game with an error, and the record holds the turns played so far.
func (e *Engine) Run(ctx context.Context) (record Record, err error) {
	record.Final = e.start
	record.Metric.StartTime = time.Now()
	record.Metric.Winner = -1
	defer func() {
		record.Metric.EndTime = time.Now()
		record.Metric.Duration = record.Metric.EndTime.Sub(record.Metric.StartTime)
	}()

	log.Info().Msgf("%s is starting", e.start.Turn())

	state := e.start
	for step := 1; ; step++ {
		if winner, over := state.Winner(); over {
			record.Winner = winner
			record.Finished = true
			record.Metric.Winner = int(winner)
			log.Info().Msgf("game over! winner: %s after %d turns", winner, len(record.Turns))
			return record, nil
		}
		if step > e.maxTurns {
			return record, fmt.Errorf("%w: %d turns", ErrTurnLimit, e.maxTurns)
		}
		if err = ctx.Err(); err != nil {
			return record, err
		}

		player := state.Turn()
		roll := game.Roll(e.src)
		move, err := e.choose(ctx, &record, step, state, roll)
		if err != nil {
			return record, fmt.Errorf("%s choosing with roll %d: %w", player, roll, err)
		}

		next, effects, err := state.Apply(move)
		if err != nil {
			return record, fmt.Errorf("%s played %s: %w", player, move, err)
		}
		log.Debug().
			Int("step", step).
			Str("player", player.String()).
			Int("roll", roll).
			Str("move", move.String()).
			Bool("capture", effects.Capture).
			Bool("extra", effects.ExtraTurn).
			Msg("turn")

		record.Turns = append(record.Turns, Turn{Player: player, Roll: roll, Move: move, Effects: effects})
		record.Metric.TotalMoves++
		if effects.Capture {
			record.Captures[player]++
			record.Metric.Captures[player]++
		}
		state = next
		record.Final = state
	}
}

func (e *Engine) choose(ctx context.Context, record *Record, step int, state game.State, roll int) (game.Move, error) {
	player := state.Turn()
	s, ok := e.agents[player].(agent.Searcher)
	if !ok {
		return e.agents[player].Choose(state, roll)
	}

	result, err := s.Search(ctx, state, roll)
	if err != nil {
		return game.Move{}, err
	}
	if result.Forced {
		return result.Move, nil
	}
	if result.Fallback {
		log.Warn().Int("step", step).Msgf("%s fell back to the heuristic", player)
	}
	record.Searches = append(record.Searches, metrics.MoveMetric{
		Step:         step,
		Player:       int(player),
		SearchMetric: result.Metric,
	})
	return result.Move, nil
}
