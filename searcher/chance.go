package searcher

import "ur/game"

// selectOrExpandChance samples the next roll for chance node c and descends
// to the decision node of that outcome, creating it on first sight. selected
// is false when the walk stops at the returned node.
func (t *tree) selectOrExpandChance(index int32, c *node, rng game.Source) (child int32, selected bool) {
	if c.terminal {
		return index, false
	}
	roll := game.Roll(rng)

	c.Lock()
	defer c.Unlock()

	// Select if explored outcome
	if child = c.outcomes[roll]; child != noNode {
		t.arena.at(child).applyLoss()
		return child, true
	}

	// Expand if unexplored outcome
	child, d, ok := t.arena.alloc()
	if !ok {
		t.full()
		return index, false
	}
	d.initDecision(index, c.state, roll)
	c.outcomes[roll] = child
	return child, false
}
