package searcher

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"ur/game"
	"ur/metrics"
)

type Option func(mcts *MCTS)

// MCTS searches a single tree shared by a pool of goroutines. The tree is
// rebuilt for every search. An MCTS runs one search at a time.
type MCTS struct {
	simulations int
	duration    time.Duration
	goroutines  int
	exploration float64
	cutoff      int
	greed       float64
	arenaLimit  int
	evaluate    game.Evaluate
	weights     game.Weights
	metrics     metrics.Collector

	mu  sync.Mutex
	rng *rand.Rand
}

// WithSimulations sets the number of playouts per search. With a duration as
// well, the search stops at whichever budget runs out first.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		m.simulations = simulations
	}
}

// WithDuration bounds a search by wall time. Pass WithSimulations(0) for a
// search limited by time only.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = duration
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		m.goroutines = goroutines
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		m.cutoff = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithPlayoutGreed sets the chance that a playout step follows the heuristic
// instead of a uniformly random move.
func WithPlayoutGreed(p float64) Option {
	return func(m *MCTS) {
		m.greed = p
	}
}

// WithWeights sets the heuristic used by playouts and by the fallback.
func WithWeights(weights game.Weights) Option {
	return func(m *MCTS) {
		m.weights = weights
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// WithArenaLimit caps the number of tree nodes a search may allocate. Once
// full, playouts start from the deepest node reached.
func WithArenaLimit(nodes int) Option {
	return func(m *MCTS) {
		m.arenaLimit = nodes
	}
}

func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		simulations: DefaultSimulations,
		goroutines:  runtime.NumCPU(),
		exploration: DefaultExploration,
		cutoff:      DefaultCutoff,
		greed:       DefaultPlayoutGreed,
		arenaLimit:  DefaultArenaLimit,
		evaluate:    game.EvaluateProgress,
		weights:     game.DefaultWeights(),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MCTS) validate() error {
	switch {
	case m.simulations < 0:
		return fmt.Errorf("%w: simulations must not be negative, got %d", ErrInvalidConfig, m.simulations)
	case m.duration < 0:
		return fmt.Errorf("%w: duration must not be negative, got %s", ErrInvalidConfig, m.duration)
	case m.simulations == 0 && m.duration == 0:
		return fmt.Errorf("%w: must specify search simulations or duration", ErrInvalidConfig)
	case m.goroutines <= 0:
		return fmt.Errorf("%w: goroutines must be positive, got %d", ErrInvalidConfig, m.goroutines)
	case math.IsNaN(m.exploration) || math.IsInf(m.exploration, 0) || m.exploration < 0:
		return fmt.Errorf("%w: exploration must be a non-negative number, got %v", ErrInvalidConfig, m.exploration)
	case m.cutoff <= 0:
		return fmt.Errorf("%w: cutoff must be positive, got %d", ErrInvalidConfig, m.cutoff)
	case !(m.greed >= 0 && m.greed <= 1):
		return fmt.Errorf("%w: playout greed must be in [0, 1], got %v", ErrInvalidConfig, m.greed)
	case m.arenaLimit <= 0 || m.arenaLimit > MaxArenaLimit:
		return fmt.Errorf("%w: arena limit must be in [1, %d], got %d", ErrInvalidConfig, MaxArenaLimit, m.arenaLimit)
	}
	return nil
}

// Choose searches for the move to play with roll.
func (m *MCTS) Choose(state game.State, roll int) (game.Move, error) {
	result, err := m.Search(context.Background(), state, roll)
	if err != nil {
		return game.Move{}, err
	}
	return result.Move, nil
}

// Search runs simulations from state, where the player to move has thrown
// roll, and returns the most visited root move. A position with a single
// legal move is answered without searching. If ctx ends before any playout
// completes, the heuristic choice is returned with Fallback set.
func (m *MCTS) Search(ctx context.Context, state game.State, roll int) (Result, error) {
	if !game.ValidRoll(roll) {
		return Result{}, fmt.Errorf("%w: %d", game.ErrInvalidRoll, roll)
	}
	moves := state.LegalMoves(roll)
	switch len(moves) {
	case 0:
		return Result{}, fmt.Errorf("%w: %s", game.ErrGameOver, state)
	case 1:
		return Result{Move: moves[0], Edges: []Edge{{Move: moves[0]}}, Forced: true}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	t := newTree(state, roll, m.arenaLimit, m.exploration)
	seed := m.rng.Uint64()

	m.metrics.Start(m.goroutines, m.cutoff)
	err := m.iterate(ctx, t, seed)
	m.metrics.SetNodes(t.arena.len())
	metric := m.metrics.Complete()
	if err != nil {
		return Result{}, err
	}

	result := Result{Edges: t.edges(), Metric: metric}
	ith, ok := t.robustChild()
	if !ok {
		log.Warn().Str("state", state.String()).Int("roll", roll).Msg("no playout completed, falling back to the heuristic")
		result.Move = m.weights.Best(state, moves)
		result.Fallback = true
		return result, nil
	}
	result.Move = t.root().moves[ith]

	log.Debug().
		Str("move", result.Move.String()).
		Int64("visits", t.root().Visits()).
		Int("nodes", t.arena.len()).
		Msg("search complete")
	return result, nil
}

// iterate runs the worker pool until the simulation tickets are used up or
// ctx ends. A started simulation always finishes and is backed up.
func (m *MCTS) iterate(ctx context.Context, t *tree, seed uint64) error {
	var task chan struct{}
	if m.simulations > 0 {
		task = make(chan struct{}, m.simulations)
		for i := 0; i < m.simulations; i++ {
			task <- struct{}{}
		}
		close(task)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < m.goroutines; i++ {
		w := &worker{
			mcts: m,
			tree: t,
			rng:  rand.New(rand.NewSource(seed + uint64(i))),
		}
		g.Go(func() error {
			for {
				if task != nil {
					if _, ok := <-task; !ok {
						return nil
					}
				}
				if ctx.Err() != nil {
					return nil
				}
				w.simulate()
			}
		})
	}
	return g.Wait()
}
