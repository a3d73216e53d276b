package searcher

import (
	"math"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"ur/game"
)

const rootIndex int32 = 0

// tree is the search tree shared by every worker of one search.
type tree struct {
	arena     *arena
	cSquared  float64
	exhausted atomic.Bool
}

func newTree(state game.State, roll int, arenaLimit int, exploration float64) *tree {
	t := &tree{
		arena:    newArena(arenaLimit),
		cSquared: exploration * exploration,
	}
	index, root, ok := t.arena.alloc()
	if !ok || index != rootIndex {
		panic("arena cannot hold the root")
	}
	root.initDecision(noNode, state, roll)
	root.visits.Store(0) // root visits are counted at backup
	return t
}

func (t *tree) root() *node {
	return t.arena.at(rootIndex)
}

// full reports the first failed allocation of the search.
func (t *tree) full() {
	if t.exhausted.CompareAndSwap(false, true) {
		log.Warn().Int("nodes", t.arena.len()).Msg("search tree is full, playing out from inner nodes")
	}
}

// selectThenExpand walks from the root to the node the next playout starts
// from, applying a virtual loss to every node it enters.
func (t *tree) selectThenExpand(rng game.Source) int32 {
	index := rootIndex
	for {
		n := t.arena.at(index)
		var child int32
		var selected bool
		switch n.kind {
		case decisionNode:
			child, selected = t.selectOrExpandDecision(index, n)
		case chanceNode:
			child, selected = t.selectOrExpandChance(index, n, rng)
		default:
			panic("unexpected node kind")
		}
		if !selected {
			return child
		}
		index = child
	}
}

// backup credits a playout result to every node from leaf up to the root.
func (t *tree) backup(leaf int32, player game.Player, score float64) {
	for index := leaf; index != noNode; {
		n := t.arena.at(index)
		if n.parent == noNode {
			n.applyLoss()
		}
		n.addReward(player, score)
		index = n.parent
	}
}

// robustChild returns the index of the most visited root move, the earliest
// one on ties. ok is false when no root move was visited.
func (t *tree) robustChild() (ith int, ok bool) {
	root := t.root()
	ith = -1
	var maxVisits int64
	for i, child := range root.children {
		if v := t.arena.at(child).Visits(); v > maxVisits {
			ith, maxVisits = i, v
		}
	}
	return ith, ith >= 0
}

// edges reports the statistics of every root move in generation order.
func (t *tree) edges() []Edge {
	root := t.root()
	edges := make([]Edge, len(root.moves))
	for i, move := range root.moves {
		edges[i].Move = move
		if i < len(root.children) {
			child := t.arena.at(root.children[i])
			edges[i].Visits = child.Visits()
			edges[i].Value = child.Value()
		}
	}
	return edges
}

func (t *tree) pickChild(d *node) int {
	policy := newUCB1(t.cSquared, d.Visits())

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := t.arena.at(child).score(policy); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}
