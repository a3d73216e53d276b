package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ur/config"
	"ur/game"
	"ur/searcher"
)

var (
	ErrNoLegalMoves = errors.New("no legal moves - the game is over")
	ErrUnknownKind  = errors.New("unknown agent kind")
)

type Agent interface {
	// Choose returns the move to play in state after throwing roll. The move
	// is always a member of state.LegalMoves(roll).
	Choose(state game.State, roll int) (game.Move, error)
}

// Searcher is an Agent that also reports the statistics of its search.
type Searcher interface {
	Agent
	Search(ctx context.Context, state game.State, roll int) (searcher.Result, error)
}

type Kind uint8

const (
	Random Kind = iota
	Smart
	MCTS
)

var kindNames = [...]string{"random", "smart", "mcts"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func ParseKind(name string) (Kind, error) {
	for i, kindName := range kindNames {
		if strings.EqualFold(name, kindName) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Config selects an agent kind together with its tuning.
type Config struct {
	Kind    Kind
	Seed    uint64
	Weights *game.Weights // nil uses game.DefaultWeights
	Search  config.Search // zero fields take config.DefaultSearch values
}

func New(cfg Config) (Agent, error) {
	weights := game.DefaultWeights()
	if cfg.Weights != nil {
		weights = *cfg.Weights
	}

	switch cfg.Kind {
	case Random:
		return NewRandom(game.NewSource(cfg.Seed)), nil
	case Smart:
		return NewSmart(weights), nil
	case MCTS:
		cfg.Search = cfg.Search.WithDefaults()
		options := []searcher.Option{
			searcher.WithSimulations(cfg.Search.Simulations),
			searcher.WithDuration(cfg.Search.Duration),
			searcher.WithExploration(cfg.Search.Exploration),
			searcher.WithCutoff(cfg.Search.Cutoff),
			searcher.WithPlayoutGreed(cfg.Search.PlayoutGreed),
			searcher.WithArenaLimit(cfg.Search.ArenaLimit),
			searcher.WithWeights(weights),
			searcher.WithSeed(cfg.Seed),
		}
		if cfg.Search.Goroutines != 0 {
			options = append(options, searcher.WithGoroutines(cfg.Search.Goroutines))
		}
		if cfg.Search.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		m, err := NewMCTS(options...)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, cfg.Kind)
	}
}

// legalMoves returns the moves an agent chooses from. It fails with
// game.ErrInvalidRoll for an impossible roll and ErrNoLegalMoves once the game is over.
func legalMoves(state game.State, roll int) ([]game.Move, error) {
	if !game.ValidRoll(roll) {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidRoll, roll)
	}
	moves := state.LegalMoves(roll)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLegalMoves, state)
	}
	return moves, nil
}
