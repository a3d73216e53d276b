package agent

import (
	"context"
	"errors"
	"fmt"

	"ur/game"
	"ur/searcher"
)

// MCTSAgent chooses moves with a parallel tree search.
type MCTSAgent struct {
	mcts *searcher.MCTS
}

func NewMCTS(options ...searcher.Option) (*MCTSAgent, error) {
	m, err := searcher.NewMCTS(options...)
	if err != nil {
		return nil, fmt.Errorf("mcts agent: %w", err)
	}
	return &MCTSAgent{mcts: m}, nil
}

func (a *MCTSAgent) Choose(state game.State, roll int) (game.Move, error) {
	result, err := a.Search(context.Background(), state, roll)
	if err != nil {
		return game.Move{}, err
	}
	return result.Move, nil
}

func (a *MCTSAgent) Search(ctx context.Context, state game.State, roll int) (searcher.Result, error) {
	result, err := a.mcts.Search(ctx, state, roll)
	if errors.Is(err, game.ErrGameOver) {
		return searcher.Result{}, fmt.Errorf("%w: %s", ErrNoLegalMoves, state)
	}
	return result, err
}
