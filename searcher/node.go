package searcher

import (
	"math"
	"sync"
	"sync/atomic"

	"ur/game"
)

type kind uint8

const (
	decisionNode kind = iota // player to move picks a move for a known roll
	chanceNode               // dice decide the roll of the next decision
)

// Rewards are stored as fixed point so they can be added atomically.
const rewardScale = 1e3

// node is one vertex of the shared search tree. The mutex guards the child
// lists; visits and rewards are updated atomically without it.
//
// A decision node holds the state before its owner moves and the roll it
// moves with; it has one chance child per legal move, created in move order.
// A chance node holds the state after a move; it has at most one decision
// child per roll, created the first time the roll is sampled.
type node struct {
	sync.Mutex
	parent   int32
	kind     kind
	terminal bool
	player   game.Player // rewards are credited from this player's view
	roll     int8
	move     game.Move
	state    game.State
	moves    []game.Move
	children []int32
	outcomes [game.MaxRoll + 1]int32

	// Visits are counted when a worker selects the node and rewards when its
	// playout returns, so an in-flight visit acts as a virtual loss.
	visits  atomic.Int64
	rewards atomic.Int64
}

func (n *node) initDecision(parent int32, state game.State, roll int) {
	n.parent = parent
	n.kind = decisionNode
	n.state = state
	n.roll = int8(roll)
	n.player = state.Turn()
	n.moves = state.LegalMoves(roll)
	n.terminal = len(n.moves) == 0
	n.children = make([]int32, 0, len(n.moves))
	n.visits.Store(1)
}

func (n *node) initChance(parent int32, player game.Player, move game.Move, state game.State) {
	n.parent = parent
	n.kind = chanceNode
	n.player = player
	n.move = move
	n.state = state
	n.terminal = state.IsOver()
	for i := range n.outcomes {
		n.outcomes[i] = noNode
	}
	n.visits.Store(1)
}

func (n *node) applyLoss() {
	n.visits.Add(1)
}

// addReward credits score, earned by player, to the node.
func (n *node) addReward(player game.Player, score float64) {
	if player != n.player {
		score = Win - score
	}
	n.rewards.Add(int64(math.Round(score * rewardScale)))
}

func (n *node) Visits() int64 {
	return n.visits.Load()
}

func (n *node) Rewards() float64 {
	return float64(n.rewards.Load()) / rewardScale
}

// Value is the mean reward, 0 for an unvisited node.
func (n *node) Value() float64 {
	visits := n.Visits()
	if visits == 0 {
		return 0
	}
	return n.Rewards() / float64(visits)
}

func (n *node) score(policy ucb1) float64 {
	return policy.bound(n.Rewards(), n.Visits())
}
