package searcher

// selectOrExpandDecision descends one step from decision node d. selected is
// false when the walk stops at the returned node: a new chance child, or d
// itself when d is terminal or nothing can be added to a childless d.
func (t *tree) selectOrExpandDecision(index int32, d *node) (child int32, selected bool) {
	d.Lock()
	defer d.Unlock()

	if d.terminal {
		return index, false
	}

	if len(d.moves) > len(d.children) { // Expandable node
		if child, ok := t.addChild(index, d); ok {
			return child, false
		}
		if len(d.children) == 0 {
			return index, false
		}
	}

	// Fully expanded node, or a partially expanded one in a full arena
	child = d.children[t.pickChild(d)]
	t.arena.at(child).applyLoss()
	return child, true
}

func (t *tree) addChild(index int32, d *node) (int32, bool) {
	child, c, ok := t.arena.alloc()
	if !ok {
		t.full()
		return noNode, false
	}
	move := d.moves[len(d.children)]
	next, _ := d.state.Play(move)
	c.initChance(index, d.player, move, next)
	d.children = append(d.children, child)
	return child, true
}
