package searcher

import (
	"golang.org/x/exp/rand"

	"ur/game"
)

// worker owns the randomness and scratch space of one search goroutine.
type worker struct {
	mcts  *MCTS
	tree  *tree
	rng   *rand.Rand
	moves []game.Move
}

func (w *worker) simulate() {
	leaf := w.tree.selectThenExpand(w.rng)
	n := w.tree.arena.at(leaf)

	roll := -1
	if n.kind == decisionNode {
		roll = int(n.roll)
	}
	player, score := w.rollout(n.state, roll)
	w.tree.backup(leaf, player, score)
	w.mcts.metrics.AddSimulation()
}

// rollout plays from state till the game is over or for cutoff number of
// moves. A negative roll means the dice have not been thrown yet. It returns
// the player the score is for.
func (w *worker) rollout(state game.State, roll int) (game.Player, float64) {
	m := w.mcts
	for depth := 0; depth < m.cutoff; depth++ {
		if winner, over := state.Winner(); over {
			m.metrics.AddFullPlayout()
			return winner, Win
		}
		if roll < 0 {
			roll = game.Roll(w.rng)
		}
		w.moves = state.AppendLegalMoves(w.moves[:0], roll)
		state, _ = state.Play(w.pick(state))
		roll = -1
	}

	if winner, over := state.Winner(); over {
		m.metrics.AddFullPlayout()
		return winner, Win
	}
	// At cutoff state, return an evaluation score from current player's perspective
	m.metrics.AddCutoff()
	return state.Turn(), m.evaluate(state)
}

// pick mixes heuristic and uniformly random moves.
func (w *worker) pick(state game.State) game.Move {
	if len(w.moves) == 1 {
		return w.moves[0]
	}
	if w.rng.Float64() < w.mcts.greed {
		return w.mcts.weights.Best(state, w.moves)
	}
	return w.moves[w.rng.Intn(len(w.moves))]
}
